package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryRecord holds the mastery level for one (plan, knowledge unit)
// pair. An absent row is equivalent to level 0 (unseen). Written only by
// the assessment pipeline.
type MasteryRecord struct {
	ent.Schema
}

func (MasteryRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("plan_id").
			NotEmpty().
			Immutable(),
		field.String("unit_id").
			NotEmpty().
			Immutable(),
		field.Float("level").
			Min(0).
			Max(1),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (MasteryRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("plan_id", "unit_id").Unique(),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryEvent records one mastery level change for audit. The previous
// level is always captured so updates can be replayed or inspected.
type MasteryEvent struct {
	ent.Schema
}

func (MasteryEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (MasteryEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("plan_id").NotEmpty(),
		field.String("unit_id").NotEmpty(),
		field.Float("from_level"),
		field.Float("to_level"),
		field.String("trigger").
			NotEmpty().
			Comment("assessment or manual"),
		field.String("session_id").Optional(),
		field.String("question_id").Optional(),
	}
}

func (MasteryEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("plan_id", "unit_id"),
	}
}

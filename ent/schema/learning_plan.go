package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// LearningPlan is the unit of study scope: an ordered set of source
// documents plus the knowledge units extracted from them. Completion is a
// derived, optional marker and never gates further sessions.
type LearningPlan struct {
	ent.Schema
}

func (LearningPlan) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable(),
		field.JSON("document_ids", []string{}).
			Comment("Ordered source document ids"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

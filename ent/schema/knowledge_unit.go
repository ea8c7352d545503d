package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// KnowledgeUnit is an atomic, independently verifiable statement extracted
// from a document. Owned by exactly one learning plan, sourced from exactly
// one document. Never mutated after creation; retirement excludes a unit
// from future selection without deleting it.
type KnowledgeUnit struct {
	ent.Schema
}

func (KnowledgeUnit) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable(),
		field.String("plan_id").
			NotEmpty().
			Immutable(),
		field.String("document_id").
			NotEmpty().
			Immutable(),
		field.Enum("kind").
			Values("claim", "skill").
			Immutable().
			Comment("claim = verifiable from the text; skill = requires applying a rule beyond it"),
		field.Text("text").
			NotEmpty().
			Immutable(),
		field.Text("source_claim").
			Default("").
			Immutable().
			Comment("Optional quote of the source passage the unit was derived from"),
		field.Int("position").
			Immutable().
			Comment("Creation order within the plan; the deterministic selection tiebreaker"),
		field.Bool("retired").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (KnowledgeUnit) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("plan_id"),
		index.Fields("plan_id", "position").Unique(),
	}
}

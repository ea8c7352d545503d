package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is generated against exactly one knowledge unit and belongs to
// exactly one session (regeneration, not reuse, when a unit recurs).
// The generated fields are immutable; user_answer mutates until a verdict
// is recorded, after which the whole row is frozen.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable(),
		field.String("session_id").
			NotEmpty().
			Immutable(),
		field.String("unit_id").
			NotEmpty().
			Immutable(),
		field.Int("position").
			Immutable().
			Comment("Index in the session's frozen question order"),
		field.Text("text").
			NotEmpty().
			Immutable(),
		field.Int("difficulty").
			Range(1, 5).
			Immutable(),
		field.Text("canonical_answer").
			Default("").
			Immutable().
			Comment("Reference answer from generation; empty when the generator gave none"),
		field.Text("user_answer").
			Optional().
			Nillable().
			Comment("Absent until the learner submits; editable until assessed"),
		field.Time("answered_at").
			Optional().
			Nillable(),
		field.Bool("is_correct").
			Optional().
			Nillable().
			Comment("The verdict; immutable once set"),
		field.Text("explanation").
			Default(""),
		field.Text("correct_answer").
			Default("").
			Comment("Grader-supplied correct answer, when it returned one"),
		field.Time("assessed_at").
			Optional().
			Nillable(),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("session_id", "position").Unique(),
	}
}

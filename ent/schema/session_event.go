package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle milestones (created/completed).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("plan_id").
			NotEmpty(),
		field.String("session_id").
			NotEmpty(),
		field.String("action").
			NotEmpty().
			Comment("created or completed"),
		field.Int("question_count").
			Default(0),
		field.Int("correct_count").
			Default(0).
			Comment("Correct verdicts so far (on completed only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StudySession is one fixed, ordered batch of questions drawn for a single
// study pass over a learning plan. The question list is frozen at creation;
// only per-question answer/verdict state mutates afterward. Sessions are
// never deleted — they are the audit trail for mastery changes.
type StudySession struct {
	ent.Schema
}

func (StudySession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable(),
		field.String("plan_id").
			NotEmpty().
			Immutable(),
		field.Int("max_questions").
			Positive().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (StudySession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("plan_id"),
	}
}

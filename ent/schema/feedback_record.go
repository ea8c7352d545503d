package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FeedbackRecord is an append-only quality signal on a question or its
// assessment. The unique index enforces at most one record per
// (session, question, kind); later submissions are rejected, never merged,
// so disagreement signals stay auditable.
type FeedbackRecord struct {
	ent.Schema
}

func (FeedbackRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Immutable(),
		field.String("question_id").
			NotEmpty().
			Immutable(),
		field.Enum("kind").
			Values("question_helpfulness", "assessment_agreement").
			Immutable(),
		field.Bool("flag").
			Immutable().
			Comment("helpful / agrees, depending on kind"),
		field.Text("comment").
			Default("").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (FeedbackRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "question_id", "kind").Unique(),
	}
}

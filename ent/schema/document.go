package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Document is an ingested source text. Immutable once stored; learning
// plans reference documents but do not own them.
type Document struct {
	ent.Schema
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Comment("UUID assigned at ingestion"),
		field.String("title").
			NotEmpty(),
		field.Text("content").
			NotEmpty().
			Immutable().
			Comment("Plain extracted text; OCR/parsing happens upstream"),
		field.String("source").
			Default("").
			Comment("Origin hint, e.g. the file path it was read from"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

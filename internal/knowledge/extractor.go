package knowledge

import (
	"context"

	"github.com/abhisek/recall/internal/store"
)

// SourceDocument is the text handed to extraction.
type SourceDocument struct {
	ID      string
	Title   string
	Content string
}

// ExtractedUnit is one knowledge unit as returned by extraction, before
// it is assigned a plan and a position.
type ExtractedUnit struct {
	Kind        store.UnitKind
	Text        string
	SourceClaim string
}

// Extractor turns a document into knowledge units.
type Extractor interface {
	// Extract produces the knowledge units found in one document.
	// Returned units are cleaned and deduplicated within the document;
	// an empty slice means the document yielded nothing usable.
	Extract(ctx context.Context, doc SourceDocument) ([]ExtractedUnit, error)
}

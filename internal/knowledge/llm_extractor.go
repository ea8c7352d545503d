package knowledge

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/recall/internal/llm"
	"github.com/abhisek/recall/internal/store"
)

// LLMExtractor implements Extractor using the LLM provider.
type LLMExtractor struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMExtractor with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMExtractor {
	return &LLMExtractor{provider: provider, config: cfg}
}

// unitOutput is the raw LLM response before cleaning.
type unitOutput struct {
	Units []struct {
		Kind        string `json:"kind"`
		Text        string `json:"text"`
		SourceClaim string `json:"source_claim"`
	} `json:"units"`
}

// Extract produces the knowledge units found in one document.
func (e *LLMExtractor) Extract(ctx context.Context, doc SourceDocument) ([]ExtractedUnit, error) {
	ctx = llm.WithPurpose(ctx, "unit-extract")

	content := doc.Content
	if e.config.MaxContentChars > 0 && len(content) > e.config.MaxContentChars {
		content = content[:e.config.MaxContentChars]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n\n", doc.Title)
	b.WriteString(content)

	req := llm.Request{
		System: extractSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: b.String()},
		},
		Schema:      UnitListSchema,
		MaxTokens:   e.config.MaxTokens,
		Temperature: e.config.Temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return nil, &llm.CapabilityError{Op: "unit extraction", Err: err}
	}

	var raw unitOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse extraction response: %w", err)
	}

	return e.clean(raw), nil
}

// clean drops empty units, defaults unknown kinds to claim, caps the
// count, and deduplicates on normalized text within the document.
func (e *LLMExtractor) clean(raw unitOutput) []ExtractedUnit {
	seen := make(map[string]bool)
	var units []ExtractedUnit

	for _, u := range raw.Units {
		text := strings.TrimSpace(u.Text)
		if text == "" {
			continue
		}

		key := Normalize(text)
		if seen[key] {
			continue
		}
		seen[key] = true

		kind := store.UnitKind(u.Kind)
		if kind != store.UnitClaim && kind != store.UnitSkill {
			kind = store.UnitClaim
		}

		units = append(units, ExtractedUnit{
			Kind:        kind,
			Text:        text,
			SourceClaim: strings.TrimSpace(u.SourceClaim),
		})

		if e.config.MaxUnits > 0 && len(units) >= e.config.MaxUnits {
			break
		}
	}

	return units
}

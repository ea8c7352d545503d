package knowledge

import "github.com/abhisek/recall/internal/llm"

// UnitListSchema defines the JSON schema for LLM extraction responses.
var UnitListSchema = &llm.Schema{
	Name:        "knowledge-units",
	Description: "The knowledge units extracted from one document",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"units": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"kind": map[string]any{
							"type":        "string",
							"enum":        []any{"claim", "skill"},
							"description": "claim = verifiable from the text; skill = requires applying a rule beyond it",
						},
						"text": map[string]any{
							"type":        "string",
							"description": "The unit as a complete standalone sentence",
						},
						"source_claim": map[string]any{
							"type":        "string",
							"description": "Quote of the source passage for claims; empty for skills",
						},
					},
					"required":             []any{"kind", "text", "source_claim"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"units"},
		"additionalProperties": false,
	},
}

package grading

import "github.com/abhisek/recall/internal/llm"

// VerdictSchema defines the JSON schema for LLM grading responses.
var VerdictSchema = &llm.Schema{
	Name:        "answer-verdict",
	Description: "The grading verdict for one submitted answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"is_correct": map[string]any{
				"type":        "boolean",
				"description": "Whether the answer demonstrates the tested knowledge",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "One or two sentences addressed to the learner",
			},
			"correct_answer": map[string]any{
				"type":        "string",
				"description": "The answer that would have been accepted, stated briefly",
			},
		},
		"required":             []any{"is_correct", "explanation", "correct_answer"},
		"additionalProperties": false,
	},
}

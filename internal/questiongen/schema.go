package questiongen

import "github.com/abhisek/recall/internal/llm"

// QuestionSchema defines the JSON schema for LLM question generation
// responses.
var QuestionSchema = &llm.Schema{
	Name:        "study-question",
	Description: "A single open-ended study question with its reference answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question_text": map[string]any{
				"type":        "string",
				"description": "The question shown to the learner, in plain text",
			},
			"canonical_answer": map[string]any{
				"type":        "string",
				"description": "The short reference answer used for grading",
			},
		},
		"required":             []any{"question_text", "canonical_answer"},
		"additionalProperties": false,
	},
}

// HintSchema defines the JSON schema for LLM hint responses.
var HintSchema = &llm.Schema{
	Name:        "question-hint",
	Description: "A short hint that nudges without revealing the answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"hint": map[string]any{
				"type":        "string",
				"description": "At most two sentences; never the answer itself",
			},
		},
		"required":             []any{"hint"},
		"additionalProperties": false,
	},
}

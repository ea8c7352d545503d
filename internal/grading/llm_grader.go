package grading

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/recall/internal/llm"
)

// LLMGrader implements Grader using the LLM provider.
type LLMGrader struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGrader with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGrader {
	return &LLMGrader{provider: provider, config: cfg}
}

// verdictOutput is the raw LLM response.
type verdictOutput struct {
	IsCorrect     bool   `json:"is_correct"`
	Explanation   string `json:"explanation"`
	CorrectAnswer string `json:"correct_answer"`
}

// Grade returns the verdict for one submitted answer.
func (g *LLMGrader) Grade(ctx context.Context, input Input) (*Verdict, error) {
	ctx = llm.WithPurpose(ctx, "grading")

	req := llm.Request{
		System: gradeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGradeMessage(input)},
		},
		Schema:      VerdictSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, &llm.CapabilityError{Op: "answer grading", Err: err}
	}

	var raw verdictOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse grading response: %w", err)
	}

	return &Verdict{
		IsCorrect:     raw.IsCorrect,
		Explanation:   strings.TrimSpace(raw.Explanation),
		CorrectAnswer: strings.TrimSpace(raw.CorrectAnswer),
	}, nil
}

// buildGradeMessage constructs the user message for one grading call.
func buildGradeMessage(input Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Knowledge being tested: %s\n", input.Unit.Text)
	if input.Unit.SourceClaim != "" {
		fmt.Fprintf(&b, "Source passage: %s\n", input.Unit.SourceClaim)
	}
	fmt.Fprintf(&b, "Question: %s\n", input.QuestionText)
	if input.CanonicalAnswer != "" {
		fmt.Fprintf(&b, "Reference answer: %s\n", input.CanonicalAnswer)
	}
	fmt.Fprintf(&b, "Learner's answer: %s\n", input.UserAnswer)

	return b.String()
}

package questiongen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/recall/internal/llm"
	"github.com/abhisek/recall/internal/store"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionOutput is the raw LLM response before validation.
type questionOutput struct {
	QuestionText    string `json:"question_text"`
	CanonicalAnswer string `json:"canonical_answer"`
}

// Generate produces a single question probing the given unit.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*GeneratedQuestion, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: generateSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		Schema:      QuestionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, &llm.CapabilityError{Op: "question generation", Err: err}
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse generation response: %w", err)
	}

	return &GeneratedQuestion{
		Text:            strings.TrimSpace(raw.QuestionText),
		CanonicalAnswer: strings.TrimSpace(raw.CanonicalAnswer),
	}, nil
}

// hintOutput is the raw LLM hint response.
type hintOutput struct {
	Hint string `json:"hint"`
}

// GenerateHint produces a short nudge for a question.
func (g *LLMGenerator) GenerateHint(ctx context.Context, questionText string, unit *store.Unit) (string, error) {
	ctx = llm.WithPurpose(ctx, "hint")

	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\n", questionText)
	fmt.Fprintf(&b, "It probes this knowledge: %s\n", unit.Text)

	req := llm.Request{
		System: hintSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: b.String()},
		},
		Schema:      HintSchema,
		MaxTokens:   g.config.HintMaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return "", &llm.CapabilityError{Op: "hint generation", Err: err}
	}

	var raw hintOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return "", fmt.Errorf("failed to parse hint response: %w", err)
	}

	return strings.TrimSpace(raw.Hint), nil
}

// buildUserMessage constructs the user message from GenerateInput and
// Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Knowledge unit (%s): %s\n", input.Unit.Kind, input.Unit.Text)
	if input.Unit.SourceClaim != "" {
		fmt.Fprintf(&b, "Source passage: %s\n", input.Unit.SourceClaim)
	}
	fmt.Fprintf(&b, "Difficulty: %d\n", input.Difficulty)

	b.WriteString("\nAlready asked about this unit:\n")
	b.WriteString(buildDedup(input.PriorQuestions, cfg.MaxPriorQuestions))

	return b.String()
}

// buildDedup formats prior questions for the prompt, respecting the max
// limit. Returns "None" if there are no prior questions.
func buildDedup(priorQuestions []string, max int) string {
	if len(priorQuestions) == 0 {
		return "None"
	}

	// Keep only the most recent N questions.
	if max > 0 && len(priorQuestions) > max {
		priorQuestions = priorQuestions[len(priorQuestions)-max:]
	}

	var b strings.Builder
	for i, q := range priorQuestions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}

package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/recall/internal/llm"
	"github.com/abhisek/recall/internal/store"
)

var testUnit = &store.Unit{
	ID:          "unit-1",
	PlanID:      "plan-1",
	Kind:        store.UnitClaim,
	Text:        "Mitochondria produce ATP.",
	SourceClaim: "the mitochondrion produces ATP",
}

func TestGenerate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"question_text":"What molecule do mitochondria produce?","canonical_answer":"ATP"}`),
	})

	g := New(mock, DefaultConfig())
	q, err := g.Generate(context.Background(), GenerateInput{
		Unit:       testUnit,
		Difficulty: 2,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if q.Text != "What molecule do mitochondria produce?" {
		t.Errorf("text = %q", q.Text)
	}
	if q.CanonicalAnswer != "ATP" {
		t.Errorf("canonical answer = %q, want ATP", q.CanonicalAnswer)
	}

	req := mock.Calls[0]
	if req.Schema != QuestionSchema {
		t.Error("request should carry the question schema")
	}
	userMsg := req.Messages[0].Content
	if !strings.Contains(userMsg, "Mitochondria produce ATP.") {
		t.Error("prompt should contain the unit text")
	}
	if !strings.Contains(userMsg, "Difficulty: 2") {
		t.Error("prompt should contain the target difficulty")
	}
}

func TestGeneratePriorQuestionsInPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"question_text":"q","canonical_answer":"a"}`),
	})

	g := New(mock, DefaultConfig())
	_, err := g.Generate(context.Background(), GenerateInput{
		Unit:           testUnit,
		Difficulty:     1,
		PriorQuestions: []string{"What do mitochondria produce?"},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	userMsg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(userMsg, "1. What do mitochondria produce?") {
		t.Error("prompt should list prior questions")
	}
}

func TestGenerateProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrRateLimit{},
	})

	g := New(mock, DefaultConfig())
	_, err := g.Generate(context.Background(), GenerateInput{Unit: testUnit, Difficulty: 1})

	var capErr *llm.CapabilityError
	if !errors.As(err, &capErr) {
		t.Fatalf("err = %v, want CapabilityError", err)
	}
}

func TestGenerateHint(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"hint":"Think about what powers the cell."}`),
	})

	g := New(mock, DefaultConfig())
	hint, err := g.GenerateHint(context.Background(), "What molecule do mitochondria produce?", testUnit)
	if err != nil {
		t.Fatalf("hint: %v", err)
	}
	if hint != "Think about what powers the cell." {
		t.Errorf("hint = %q", hint)
	}
}

func TestBuildDedupLimits(t *testing.T) {
	prior := []string{"q1", "q2", "q3", "q4"}
	got := buildDedup(prior, 2)
	if strings.Contains(got, "q1") || strings.Contains(got, "q2") {
		t.Errorf("dedup = %q, should keep only the most recent 2", got)
	}
	if !strings.Contains(got, "q3") || !strings.Contains(got, "q4") {
		t.Errorf("dedup = %q, missing recent questions", got)
	}

	if got := buildDedup(nil, 5); got != "None" {
		t.Errorf("empty dedup = %q, want None", got)
	}
}

package grading

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/recall/internal/llm"
	"github.com/abhisek/recall/internal/store"
)

var testInput = Input{
	Unit: &store.Unit{
		ID:   "unit-1",
		Kind: store.UnitClaim,
		Text: "Mitochondria produce ATP.",
	},
	QuestionText:    "What molecule do mitochondria produce?",
	CanonicalAnswer: "ATP",
	UserAnswer:      "they make atp",
}

func TestGradeCorrect(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"is_correct":true,"explanation":"Right, ATP is the cell's energy currency.","correct_answer":"ATP"}`),
	})

	g := New(mock, DefaultConfig())
	v, err := g.Grade(context.Background(), testInput)
	if err != nil {
		t.Fatalf("grade: %v", err)
	}

	if !v.IsCorrect {
		t.Error("verdict should be correct")
	}
	if v.CorrectAnswer != "ATP" {
		t.Errorf("correct answer = %q, want ATP", v.CorrectAnswer)
	}

	req := mock.Calls[0]
	if req.Schema != VerdictSchema {
		t.Error("request should carry the verdict schema")
	}
	userMsg := req.Messages[0].Content
	for _, want := range []string{"Mitochondria produce ATP.", "What molecule", "Reference answer: ATP", "they make atp"} {
		if !strings.Contains(userMsg, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestGradeIncorrect(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"is_correct":false,"explanation":"Proteins are made by ribosomes, not mitochondria.","correct_answer":"ATP"}`),
	})

	g := New(mock, DefaultConfig())
	input := testInput
	input.UserAnswer = "proteins"

	v, err := g.Grade(context.Background(), input)
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if v.IsCorrect {
		t.Error("verdict should be incorrect")
	}
	if v.Explanation == "" {
		t.Error("incorrect verdicts should explain why")
	}
}

func TestGradeWithoutReferenceAnswer(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"is_correct":true,"explanation":"ok","correct_answer":"ATP"}`),
	})

	g := New(mock, DefaultConfig())
	input := testInput
	input.CanonicalAnswer = ""

	if _, err := g.Grade(context.Background(), input); err != nil {
		t.Fatalf("grade: %v", err)
	}

	userMsg := mock.Calls[0].Messages[0].Content
	if strings.Contains(userMsg, "Reference answer:") {
		t.Error("prompt should omit the reference line when there is none")
	}
}

func TestGradeProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})

	g := New(mock, DefaultConfig())
	_, err := g.Grade(context.Background(), testInput)

	var capErr *llm.CapabilityError
	if !errors.As(err, &capErr) {
		t.Fatalf("err = %v, want CapabilityError", err)
	}
}

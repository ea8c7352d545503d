package grading

import (
	"context"

	"github.com/abhisek/recall/internal/store"
)

// Input is everything the grader sees for one assessment.
type Input struct {
	Unit            *store.Unit
	QuestionText    string
	CanonicalAnswer string
	UserAnswer      string
}

// Verdict is the grader's judgment on one answer.
type Verdict struct {
	IsCorrect     bool
	Explanation   string
	CorrectAnswer string
}

// Grader judges a learner's answer against a question.
type Grader interface {
	// Grade returns the verdict for one submitted answer.
	Grade(ctx context.Context, input Input) (*Verdict, error)
}

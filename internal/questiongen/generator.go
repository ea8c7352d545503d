package questiongen

import (
	"context"

	"github.com/abhisek/recall/internal/store"
)

// GenerateInput is the context for generating one question.
type GenerateInput struct {
	// Unit is the knowledge unit the question must probe.
	Unit *store.Unit

	// Difficulty is the target difficulty on the 1..5 scale, derived
	// from the learner's current mastery of the unit.
	Difficulty int

	// PriorQuestions are question texts already asked for this unit,
	// used to steer the LLM away from repeats.
	PriorQuestions []string
}

// GeneratedQuestion is the output of generation, before persistence.
type GeneratedQuestion struct {
	Text            string
	CanonicalAnswer string
}

// Generator produces study questions for knowledge units.
type Generator interface {
	// Generate produces a single question probing the given unit at the
	// given difficulty.
	Generate(ctx context.Context, input GenerateInput) (*GeneratedQuestion, error)

	// GenerateHint produces a short nudge toward answering the question
	// without giving the answer away.
	GenerateHint(ctx context.Context, questionText string, unit *store.Unit) (string, error)
}

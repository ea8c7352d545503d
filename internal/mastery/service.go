package mastery

import (
	"context"
	"fmt"

	"github.com/abhisek/recall/internal/store"
)

// Service exposes mastery state for a plan's knowledge units. Reads go
// through the repo; writes happen in the assessment pipeline, which
// commits the verdict and the level change together.
type Service struct {
	repo  store.MasteryRepo
	delta float64
}

// NewService creates a mastery service. A non-positive delta falls back
// to DefaultDelta.
func NewService(repo store.MasteryRepo, delta float64) *Service {
	if delta <= 0 {
		delta = DefaultDelta
	}
	return &Service{repo: repo, delta: delta}
}

// Delta returns the configured step size.
func (s *Service) Delta() float64 { return s.delta }

// Level returns the mastery level for one unit. Unseen units are 0.
func (s *Service) Level(ctx context.Context, planID, unitID string) (float64, error) {
	return s.repo.Level(ctx, planID, unitID)
}

// Levels returns the recorded levels for a plan keyed by unit id.
// Units without a record are absent; callers treat absence as 0.
func (s *Service) Levels(ctx context.Context, planID string) (map[string]float64, error) {
	return s.repo.Levels(ctx, planID)
}

// Advance computes the next level for a verdict without persisting it.
func (s *Service) Advance(level float64, correct bool) float64 {
	return Step(level, correct, s.delta)
}

// SetLevel overwrites a unit's level out-of-band (e.g. an explicit
// reset). The assessment pipeline does not go through here.
func (s *Service) SetLevel(ctx context.Context, planID, unitID string, level float64) error {
	return s.repo.SetLevel(ctx, planID, unitID, Clamp(level), "manual")
}

// Average returns the mean mastery across the given units, counting
// unseen units as 0. An empty unit list yields 0.
func (s *Service) Average(ctx context.Context, planID string, unitIDs []string) (float64, error) {
	if len(unitIDs) == 0 {
		return 0, nil
	}

	levels, err := s.repo.Levels(ctx, planID)
	if err != nil {
		return 0, fmt.Errorf("load levels: %w", err)
	}

	var sum float64
	for _, id := range unitIDs {
		sum += levels[id]
	}
	return sum / float64(len(unitIDs)), nil
}

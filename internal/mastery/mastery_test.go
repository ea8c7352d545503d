package mastery

import (
	"context"
	"testing"
)

func TestStep(t *testing.T) {
	tests := []struct {
		name    string
		level   float64
		correct bool
		want    float64
	}{
		{"correct from zero", 0, true, 0.15},
		{"correct mid-range", 0.5, true, 0.65},
		{"correct clamps at one", 0.95, true, 1.0},
		{"correct at ceiling stays", 1.0, true, 1.0},
		{"incorrect steps down half", 0.5, false, 0.425},
		{"incorrect clamps at zero", 0.05, false, 0},
		{"incorrect at floor stays", 0, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Step(tt.level, tt.correct, DefaultDelta)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Step(%v, %v) = %v, want %v", tt.level, tt.correct, got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-0.1, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{1.2, 1},
	}
	for _, tt := range tests {
		if got := Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDifficultyFor(t *testing.T) {
	tests := []struct {
		level float64
		want  int
	}{
		{0, 1},
		{0.1, 1},    // 1.4 rounds down
		{0.13, 2},   // 1.52 rounds up
		{0.5, 3},
		{0.75, 4},
		{0.9, 5},    // 4.6 rounds up
		{1, 5},
		{-0.5, 1},   // clamped before mapping
		{1.5, 5},
	}
	for _, tt := range tests {
		if got := DifficultyFor(tt.level); got != tt.want {
			t.Errorf("DifficultyFor(%v) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

// mockMasteryRepo is an in-memory MasteryRepo for service tests.
type mockMasteryRepo struct {
	levels map[string]float64 // keyed by unit id, single plan
}

func (m *mockMasteryRepo) Level(_ context.Context, _, unitID string) (float64, error) {
	return m.levels[unitID], nil
}

func (m *mockMasteryRepo) Levels(_ context.Context, _ string) (map[string]float64, error) {
	out := make(map[string]float64, len(m.levels))
	for k, v := range m.levels {
		out[k] = v
	}
	return out, nil
}

func (m *mockMasteryRepo) SetLevel(_ context.Context, _, unitID string, level float64, _ string) error {
	m.levels[unitID] = level
	return nil
}

func TestServiceAverage(t *testing.T) {
	repo := &mockMasteryRepo{levels: map[string]float64{
		"u1": 0.6,
		"u2": 0.3,
	}}
	svc := NewService(repo, 0)
	ctx := context.Background()

	// u3 has no record and counts as 0.
	avg, err := svc.Average(ctx, "plan", []string{"u1", "u2", "u3"})
	if err != nil {
		t.Fatalf("average: %v", err)
	}
	if diff := avg - 0.3; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("average = %v, want 0.3", avg)
	}

	// No units means no progress, not a division by zero.
	avg, err = svc.Average(ctx, "plan", nil)
	if err != nil {
		t.Fatalf("average empty: %v", err)
	}
	if avg != 0 {
		t.Errorf("average of no units = %v, want 0", avg)
	}
}

func TestServiceAdvanceUsesConfiguredDelta(t *testing.T) {
	svc := NewService(&mockMasteryRepo{levels: map[string]float64{}}, 0.2)

	if got := svc.Advance(0.5, true); got != 0.7 {
		t.Errorf("advance correct = %v, want 0.7", got)
	}
	if got := svc.Advance(0.5, false); got != 0.4 {
		t.Errorf("advance incorrect = %v, want 0.4", got)
	}
}

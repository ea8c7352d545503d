package knowledge

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/abhisek/recall/internal/llm"
	"github.com/abhisek/recall/internal/store"
)

func unitsJSON(t *testing.T, units ...map[string]string) json.RawMessage {
	t.Helper()
	payload := map[string]any{"units": units}
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal canned units: %v", err)
	}
	return data
}

func TestExtract(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: unitsJSON(t,
			map[string]string{"kind": "claim", "text": "Mitochondria produce ATP.", "source_claim": "the mitochondrion produces ATP"},
			map[string]string{"kind": "skill", "text": "Relate organelle structure to function.", "source_claim": ""},
		),
	})

	e := New(mock, DefaultConfig())
	units, err := e.Extract(context.Background(), SourceDocument{
		ID:      "doc-1",
		Title:   "Cell Biology",
		Content: "The mitochondrion produces ATP...",
	})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	if len(units) != 2 {
		t.Fatalf("units = %d, want 2", len(units))
	}
	if units[0].Kind != store.UnitClaim || units[1].Kind != store.UnitSkill {
		t.Errorf("kinds = [%s %s], want [claim skill]", units[0].Kind, units[1].Kind)
	}
	if units[0].SourceClaim == "" {
		t.Error("claim should carry its source quote")
	}

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != UnitListSchema {
		t.Error("request should carry the unit list schema")
	}
}

func TestExtractCleansOutput(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: unitsJSON(t,
			map[string]string{"kind": "claim", "text": "  Water boils at 100C.  ", "source_claim": ""},
			map[string]string{"kind": "claim", "text": "", "source_claim": "dropped"},
			map[string]string{"kind": "claim", "text": "water   boils at 100c.", "source_claim": ""}, // dup after normalization
			map[string]string{"kind": "recipe", "text": "Unknown kinds default to claim.", "source_claim": ""},
		),
	})

	e := New(mock, DefaultConfig())
	units, err := e.Extract(context.Background(), SourceDocument{ID: "d", Title: "t", Content: "c"})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	if len(units) != 2 {
		t.Fatalf("units = %d, want 2 (empty and duplicate dropped)", len(units))
	}
	if units[0].Text != "Water boils at 100C." {
		t.Errorf("text = %q, want trimmed original", units[0].Text)
	}
	if units[1].Kind != store.UnitClaim {
		t.Errorf("unknown kind = %q, want claim fallback", units[1].Kind)
	}
}

func TestExtractCapsUnits(t *testing.T) {
	var many []map[string]string
	for i := 0; i < 5; i++ {
		many = append(many, map[string]string{
			"kind": "claim", "text": string(rune('A'+i)) + " is a letter.", "source_claim": "",
		})
	}
	mock := llm.NewMockProvider(llm.MockResponse{Content: unitsJSON(t, many...)})

	cfg := DefaultConfig()
	cfg.MaxUnits = 3
	e := New(mock, cfg)

	units, err := e.Extract(context.Background(), SourceDocument{ID: "d", Title: "t", Content: "c"})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(units) != 3 {
		t.Errorf("units = %d, want 3 (capped)", len(units))
	}
}

func TestExtractProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})

	e := New(mock, DefaultConfig())
	_, err := e.Extract(context.Background(), SourceDocument{ID: "d", Title: "t", Content: "c"})

	var capErr *llm.CapabilityError
	if !errors.As(err, &capErr) {
		t.Fatalf("err = %v, want CapabilityError", err)
	}
	var unavailable *llm.ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Error("cause should remain inspectable through the wrapper")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		a, b string
		same bool
	}{
		{"Water boils.", "water   BOILS.", true},
		{" spaced  out ", "spaced out", true},
		{"Water boils.", "Water freezes.", false},
	}
	for _, tt := range tests {
		got := Normalize(tt.a) == Normalize(tt.b)
		if got != tt.same {
			t.Errorf("Normalize(%q) == Normalize(%q): %v, want %v", tt.a, tt.b, got, tt.same)
		}
	}
}

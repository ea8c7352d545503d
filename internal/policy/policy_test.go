package policy

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default policy invalid: %v", err)
	}
}

func TestLoadFileOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "policy.yaml")
	err := os.WriteFile(path, []byte("mastered_threshold: 0.8\ndelta: 0.2\n"), 0o644)
	if err != nil {
		t.Fatalf("write policy: %v", err)
	}

	cfg := Default()
	if err := loadFile(&cfg, path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MasteredThreshold != 0.8 {
		t.Errorf("threshold = %v, want 0.8", cfg.MasteredThreshold)
	}
	if cfg.Delta != 0.2 {
		t.Errorf("delta = %v, want 0.2", cfg.Delta)
	}
	// Untouched key keeps its default.
	if cfg.DefaultMaxQuestions != 6 {
		t.Errorf("max questions = %d, want 6", cfg.DefaultMaxQuestions)
	}
}

func TestLoadFileMissingIsFine(t *testing.T) {
	cfg := Default()
	if err := loadFile(&cfg, filepath.Join(t.TempDir(), "absent.yaml")); err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("RECALL_MASTERED_THRESHOLD", "0.95")
	t.Setenv("RECALL_MAX_QUESTIONS", "10")

	cfg := Default()
	applyEnv(&cfg)

	if cfg.MasteredThreshold != 0.95 {
		t.Errorf("threshold = %v, want 0.95", cfg.MasteredThreshold)
	}
	if cfg.DefaultMaxQuestions != 10 {
		t.Errorf("max questions = %d, want 10", cfg.DefaultMaxQuestions)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*Config)
	}{
		{"zero threshold", func(c *Config) { c.MasteredThreshold = 0 }},
		{"threshold above one", func(c *Config) { c.MasteredThreshold = 1.1 }},
		{"negative delta", func(c *Config) { c.Delta = -0.1 }},
		{"zero max questions", func(c *Config) { c.DefaultMaxQuestions = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mut(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

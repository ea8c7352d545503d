package policy

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable study policy knobs. Defaults are sensible
// for self-study; a policy file or env vars adjust them per machine.
type Config struct {
	// MasteredThreshold is the mastery level at or above which a unit
	// is excluded from primary question selection.
	MasteredThreshold float64 `yaml:"mastered_threshold"`

	// Delta is the mastery increment for a correct verdict; incorrect
	// steps down by half of it.
	Delta float64 `yaml:"delta"`

	// DefaultMaxQuestions is the session size when the caller gives none.
	DefaultMaxQuestions int `yaml:"default_max_questions"`
}

// Default returns the built-in policy.
func Default() Config {
	return Config{
		MasteredThreshold:   0.9,
		Delta:               0.15,
		DefaultMaxQuestions: 6,
	}
}

// Load resolves the effective policy: defaults, overlaid by the policy
// file (when present), overlaid by RECALL_* env vars.
func Load() (Config, error) {
	cfg := Default()

	path, err := DefaultPath()
	if err != nil {
		return cfg, err
	}
	if err := loadFile(&cfg, path); err != nil {
		return cfg, err
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// DefaultPath returns the policy file location:
// $XDG_CONFIG_HOME/recall/policy.yaml, falling back to ~/.config.
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "recall", "policy.yaml"), nil
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read policy file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse policy file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("RECALL_MASTERED_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.MasteredThreshold = f
		}
	}
	if v := os.Getenv("RECALL_DELTA"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Delta = f
		}
	}
	if v := os.Getenv("RECALL_MAX_QUESTIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.DefaultMaxQuestions = n
		}
	}
}

// Validate rejects values outside their meaningful ranges.
func (c Config) Validate() error {
	if c.MasteredThreshold <= 0 || c.MasteredThreshold > 1 {
		return fmt.Errorf("mastered_threshold must be in (0, 1], got %v", c.MasteredThreshold)
	}
	if c.Delta <= 0 || c.Delta > 1 {
		return fmt.Errorf("delta must be in (0, 1], got %v", c.Delta)
	}
	if c.DefaultMaxQuestions < 1 {
		return fmt.Errorf("default_max_questions must be at least 1, got %d", c.DefaultMaxQuestions)
	}
	return nil
}

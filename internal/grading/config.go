package grading

// Config controls the behavior of the LLMGrader.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0). Grading
	// wants determinism.
	Temperature float64
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   256,
		Temperature: 0.0,
	}
}

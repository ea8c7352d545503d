package knowledge

// Config controls the behavior of the LLMExtractor.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0). Extraction
	// wants determinism, not variety.
	Temperature float64

	// MaxUnits caps the number of units kept per document (0 = no cap).
	MaxUnits int

	// MaxContentChars truncates oversized documents before prompting
	// (0 = no truncation).
	MaxContentChars int
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:       4096,
		Temperature:     0.0,
		MaxUnits:        50,
		MaxContentChars: 24000,
	}
}

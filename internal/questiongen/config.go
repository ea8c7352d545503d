package questiongen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// MaxTokens is the token budget for a generation response.
	MaxTokens int

	// HintMaxTokens is the token budget for a hint response.
	HintMaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0). Some
	// variety is wanted so regenerated questions differ.
	Temperature float64

	// MaxPriorQuestions is the maximum number of prior questions to
	// include in the prompt for deduplication.
	MaxPriorQuestions int
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:         512,
		HintMaxTokens:     128,
		Temperature:       0.7,
		MaxPriorQuestions: 8,
	}
}

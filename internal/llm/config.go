// Package llm provides the LLM client abstraction used for job-posting
// analysis and text rewriting.
package llm

// ModelTier selects a capability level for a request.
type ModelTier string

const (
	// TierFast is for extraction and classification tasks.
	TierFast ModelTier = "fast"
	// TierDeep is for rewriting and revision tasks that need nuance.
	TierDeep ModelTier = "deep"
)

// Provider identifies an LLM provider.
type Provider string

// Supported providers.
const (
	ProviderGemini Provider = "gemini"
)

// Config holds the model selection for the application.
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the default Gemini configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierFast: "gemini-2.5-flash",
			TierDeep: "gemini-2.5-pro",
		},
	}
}

// Model returns the model name for a tier, falling back to the fast tier.
func (c *Config) Model(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	return c.Models[TierFast]
}

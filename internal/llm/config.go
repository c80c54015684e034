package llm

import (
	"fmt"
	"os"
	"time"
)

// tierModels maps a tier to a friendly model name for one provider.
type tierModels map[Tier]string

// Default model per provider and tier. Free tiers pick the cheapest
// usable model; paid tiers the strongest one the mentor needs.
var (
	anthropicTiers = tierModels{TierFree: "claude-haiku", TierPaid: "claude-sonnet"}
	openaiTiers    = tierModels{TierFree: "gpt-4o-mini", TierPaid: "gpt-4o"}
	geminiTiers    = tierModels{TierFree: "gemini-flash", TierPaid: "gemini-pro"}
)

// Config holds the LLM provider configuration.
type Config struct {
	// Provider selects the backend: "anthropic", "openai", "gemini",
	// or "mock".
	Provider string

	// Tier selects which model map entry to use when no explicit
	// model is configured.
	Tier Tier

	Anthropic ProviderConfig
	OpenAI    ProviderConfig
	Gemini    ProviderConfig
	Retry     RetryConfig

	// Timeout bounds a single request including retries.
	Timeout time.Duration
}

// ProviderConfig is the per-backend key and model override.
type ProviderConfig struct {
	APIKey string
	Model  string // overrides the tier default when set
}

// RetryConfig tunes transient-failure retries.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns the defaults: anthropic free tier, three
// attempts with exponential backoff.
func DefaultConfig() Config {
	return Config{
		Provider: "anthropic",
		Tier:     TierFree,
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv reads LEXIQUEST_* variables over the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("LEXIQUEST_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}
	if t := os.Getenv("LEXIQUEST_LLM_TIER"); t == string(TierPaid) {
		cfg.Tier = TierPaid
	}

	readProvider := func(pc *ProviderConfig, prefix string) {
		if k := os.Getenv(prefix + "_API_KEY"); k != "" {
			pc.APIKey = k
		}
		if m := os.Getenv(prefix + "_MODEL"); m != "" {
			pc.Model = m
		}
	}
	readProvider(&cfg.Anthropic, "LEXIQUEST_ANTHROPIC")
	readProvider(&cfg.OpenAI, "LEXIQUEST_OPENAI")
	readProvider(&cfg.Gemini, "LEXIQUEST_GEMINI")

	return cfg
}

// DiscoverConfig probes the standard API key variables (Gemini, then
// OpenAI, then Anthropic) and returns a Config for the first hit.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// Validate checks the selected provider has its key.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("LEXIQUEST_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("LEXIQUEST_OPENAI_API_KEY is required for the openai provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("LEXIQUEST_GEMINI_API_KEY is required for the gemini provider")
		}
	case "mock":
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}

// modelFor resolves the friendly model name for a backend: explicit
// override first, then the tier default.
func modelFor(pc ProviderConfig, tier Tier, tiers tierModels) string {
	if pc.Model != "" {
		return pc.Model
	}
	if m, ok := tiers[tier]; ok {
		return m
	}
	return tiers[TierFree]
}

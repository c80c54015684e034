package llm

import (
	"context"
	"fmt"

	"github.com/tmaru/lexiquest/internal/store"
)

// NewProvider builds the configured provider wrapped in the standard
// middleware: caller → retry → logging → backend.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic, cfg.Tier)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI, cfg.Tier)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini, cfg.Tier)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(WithLogging(base, cfg.Provider, events), cfg.Retry), nil
}

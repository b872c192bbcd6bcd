package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// NewProvider builds the configured provider wrapped as
// retry -> logging -> base. It fails when no provider is selected.
func NewProvider(ctx context.Context, cfg Config, logger *zap.Logger) (Provider, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("no LLM provider configured")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderMock:
		base = NewMockProvider()
	}
	if err != nil {
		return nil, fmt.Errorf("init %s provider: %w", cfg.Provider, err)
	}

	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("llm")
	return WithRetry(WithLogging(base, logger), cfg.Retry, logger), nil
}

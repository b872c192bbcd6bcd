package llm

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
)

// Provider names accepted in Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config selects and configures the LLM provider. Field tags are relative;
// the caller supplies the prefix (CAREERFIT_LLM_ in the CLI).
type Config struct {
	// Provider is empty when no LLM is configured.
	Provider string `env:"PROVIDER"`

	// Timeout bounds one Generate call, retries included.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`

	Anthropic  AnthropicConfig  `envPrefix:"ANTHROPIC_"`
	OpenAI     OpenAIConfig     `envPrefix:"OPENAI_"`
	Gemini     GeminiConfig     `envPrefix:"GEMINI_"`
	OpenRouter OpenRouterConfig `envPrefix:"OPENROUTER_"`
	Retry      RetryConfig      `envPrefix:"RETRY_"`
}

type AnthropicConfig struct {
	APIKey string `env:"API_KEY"`
	Model  string `env:"MODEL" envDefault:"claude-haiku"`
}

type OpenAIConfig struct {
	APIKey  string `env:"API_KEY"`
	Model   string `env:"MODEL" envDefault:"gpt-4o-mini"`
	BaseURL string `env:"BASE_URL"`
}

type GeminiConfig struct {
	APIKey string `env:"API_KEY"`
	Model  string `env:"MODEL" envDefault:"gemini-flash"`
}

type OpenRouterConfig struct {
	APIKey  string `env:"API_KEY"`
	Model   string `env:"MODEL" envDefault:"google/gemini-2.0-flash-001"`
	BaseURL string `env:"BASE_URL" envDefault:"https://openrouter.ai/api/v1"`
}

// RetryConfig controls exponential backoff between attempts.
type RetryConfig struct {
	MaxAttempts int           `env:"MAX_ATTEMPTS" envDefault:"3"`
	InitialWait time.Duration `env:"INITIAL_WAIT" envDefault:"1s"`
	MaxWait     time.Duration `env:"MAX_WAIT" envDefault:"10s"`
	Multiplier  float64       `env:"MULTIPLIER" envDefault:"2"`
}

// DefaultConfig returns the envDefault values with no provider selected.
func DefaultConfig() Config {
	var cfg Config
	// Parsing an empty environment only applies defaults; it cannot fail
	// for these field types.
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}}); err != nil {
		panic(fmt.Sprintf("llm: default config: %v", err))
	}
	return cfg
}

// Enabled reports whether a provider is selected.
func (c Config) Enabled() bool {
	return c.Provider != ""
}

// vendorKeys is the probe order for Discover.
var vendorKeys = []struct {
	env      string
	provider string
}{
	{"GEMINI_API_KEY", ProviderGemini},
	{"OPENAI_API_KEY", ProviderOpenAI},
	{"ANTHROPIC_API_KEY", ProviderAnthropic},
	{"OPENROUTER_API_KEY", ProviderOpenRouter},
}

// Discover fills in a provider from the vendors' standard API key
// variables when none was configured explicitly. It returns the config
// unchanged and false when no key is found.
func (c Config) Discover() (Config, bool) {
	if c.Enabled() {
		return c, true
	}
	for _, vk := range vendorKeys {
		key := os.Getenv(vk.env)
		if key == "" {
			continue
		}
		c.Provider = vk.provider
		switch vk.provider {
		case ProviderGemini:
			c.Gemini.APIKey = key
		case ProviderOpenAI:
			c.OpenAI.APIKey = key
		case ProviderAnthropic:
			c.Anthropic.APIKey = key
		case ProviderOpenRouter:
			c.OpenRouter.APIKey = key
		}
		return c, true
	}
	return c, false
}

// Validate checks the selected provider has what it needs.
func (c Config) Validate() error {
	var key string
	switch c.Provider {
	case ProviderAnthropic:
		key = c.Anthropic.APIKey
	case ProviderOpenAI:
		key = c.OpenAI.APIKey
	case ProviderGemini:
		key = c.Gemini.APIKey
	case ProviderOpenRouter:
		key = c.OpenRouter.APIKey
	case ProviderMock, "":
		return nil
	default:
		return fmt.Errorf("unknown LLM provider %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("%s provider needs an API key", c.Provider)
	}
	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("retry max attempts must be at least 1, got %d", c.Retry.MaxAttempts)
	}
	return nil
}

package llm

import (
	"context"
	"strings"
	"testing"
	"time"
)

func clearVendorKeys(t *testing.T) {
	t.Helper()
	for _, vk := range vendorKeys {
		t.Setenv(vk.env, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Enabled() {
		t.Errorf("default config selects provider %q", cfg.Provider)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %s", cfg.Timeout)
	}
	if cfg.Anthropic.Model != "claude-haiku" || cfg.OpenAI.Model != "gpt-4o-mini" || cfg.Gemini.Model != "gemini-flash" {
		t.Errorf("models = %q %q %q", cfg.Anthropic.Model, cfg.OpenAI.Model, cfg.Gemini.Model)
	}
	if cfg.OpenRouter.BaseURL != "https://openrouter.ai/api/v1" {
		t.Errorf("OpenRouter.BaseURL = %q", cfg.OpenRouter.BaseURL)
	}
	if cfg.Retry.MaxAttempts != 3 || cfg.Retry.InitialWait != time.Second || cfg.Retry.MaxWait != 10*time.Second || cfg.Retry.Multiplier != 2 {
		t.Errorf("Retry = %+v", cfg.Retry)
	}
}

func TestDiscover_Priority(t *testing.T) {
	clearVendorKeys(t)
	t.Setenv("ANTHROPIC_API_KEY", "a-key")
	t.Setenv("OPENAI_API_KEY", "o-key")

	cfg, ok := DefaultConfig().Discover()
	if !ok {
		t.Fatal("Discover found nothing")
	}
	if cfg.Provider != ProviderOpenAI || cfg.OpenAI.APIKey != "o-key" {
		t.Errorf("provider = %q key = %q", cfg.Provider, cfg.OpenAI.APIKey)
	}
}

func TestDiscover_ExplicitProviderWins(t *testing.T) {
	clearVendorKeys(t)
	t.Setenv("GEMINI_API_KEY", "g-key")

	base := DefaultConfig()
	base.Provider = ProviderMock
	cfg, ok := base.Discover()
	if !ok || cfg.Provider != ProviderMock || cfg.Gemini.APIKey != "" {
		t.Errorf("Discover overrode explicit provider: %+v", cfg)
	}
}

func TestDiscover_None(t *testing.T) {
	clearVendorKeys(t)
	if _, ok := DefaultConfig().Discover(); ok {
		t.Error("Discover reported a provider with no keys set")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"disabled", func(c *Config) {}, ""},
		{"mock", func(c *Config) { c.Provider = ProviderMock }, ""},
		{"anthropic with key", func(c *Config) { c.Provider = ProviderAnthropic; c.Anthropic.APIKey = "k" }, ""},
		{"openai without key", func(c *Config) { c.Provider = ProviderOpenAI }, "needs an API key"},
		{"gemini without key", func(c *Config) { c.Provider = ProviderGemini }, "needs an API key"},
		{"unknown", func(c *Config) { c.Provider = "llama" }, "unknown LLM provider"},
		{"zero attempts", func(c *Config) {
			c.Provider = ProviderOpenRouter
			c.OpenRouter.APIKey = "k"
			c.Retry.MaxAttempts = 0
		}, "at least 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestNewProvider(t *testing.T) {
	if _, err := NewProvider(context.Background(), DefaultConfig(), nil); err == nil {
		t.Error("expected error with no provider")
	}

	cfg := DefaultConfig()
	cfg.Provider = ProviderOpenAI
	if _, err := NewProvider(context.Background(), cfg, nil); err == nil {
		t.Error("expected error without key")
	}

	cfg.Provider = ProviderMock
	p, err := NewProvider(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("NewProvider(mock): %v", err)
	}
	if _, ok := p.(*RetryProvider); !ok {
		t.Errorf("provider = %T, want *RetryProvider", p)
	}
	if p.ModelID() != "mock" {
		t.Errorf("ModelID = %q", p.ModelID())
	}
}

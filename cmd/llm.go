package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bhavyasrideva22/career-fit-quiz/internal/llm"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the LLM configuration used for coaching notes",
}

var llmStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which LLM provider and model are configured",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		c := e.cfg.LLM
		if !c.Enabled() {
			fmt.Println("No LLM provider configured; coaching notes are disabled.")
			fmt.Println("Set CAREERFIT_LLM_PROVIDER or one of GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, OPENROUTER_API_KEY.")
			return nil
		}

		model, key := providerDetails(c)
		fmt.Printf("%-12s  %s\n", "Provider", c.Provider)
		fmt.Printf("%-12s  %s\n", "Model", model)
		fmt.Printf("%-12s  %s\n", "API key", maskKey(key))
		fmt.Printf("%-12s  %s\n", "Timeout", c.Timeout)
		fmt.Printf("%-12s  %d attempts, %s..%s backoff\n", "Retry",
			c.Retry.MaxAttempts, c.Retry.InitialWait, c.Retry.MaxWait)
		return nil
	},
}

func init() {
	llmCmd.AddCommand(llmStatusCmd)
}

func providerDetails(c llm.Config) (model, key string) {
	switch c.Provider {
	case llm.ProviderAnthropic:
		return c.Anthropic.Model, c.Anthropic.APIKey
	case llm.ProviderOpenAI:
		return c.OpenAI.Model, c.OpenAI.APIKey
	case llm.ProviderGemini:
		return c.Gemini.Model, c.Gemini.APIKey
	case llm.ProviderOpenRouter:
		return c.OpenRouter.Model, c.OpenRouter.APIKey
	}
	return "mock", ""
}

// maskKey keeps the last four characters of an API key.
func maskKey(key string) string {
	if key == "" {
		return "(none)"
	}
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", 8) + key[len(key)-4:]
}

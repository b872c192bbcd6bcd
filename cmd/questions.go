package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bhavyasrideva22/career-fit-quiz/internal/catalog"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the assessment questions (optionally one section)",
	RunE: func(cmd *cobra.Command, args []string) error {
		section, _ := cmd.Flags().GetString("section")

		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		qs := e.cat.Questions()
		if section != "" {
			sec := catalog.Section(section)
			if !sec.Valid() {
				return fmt.Errorf("unknown section %q (want psychological, technical or wiscar)", section)
			}
			qs = e.cat.BySection(sec)
		}

		fmt.Printf("%-20s  %-13s  %-11s  %-15s  %6s  %s\n",
			"ID", "Section", "Category", "Type", "Weight", "Prompt")
		fmt.Println(strings.Repeat("─", 120))

		for _, q := range qs {
			prompt := q.Prompt
			if len(prompt) > 50 {
				prompt = prompt[:47] + "..."
			}
			fmt.Printf("%-20s  %-13s  %-11s  %-15s  %6.1f  %s\n",
				q.ID, q.Section, q.Category, q.Type, q.Weight, prompt)
		}

		fmt.Printf("\n%d questions\n", len(qs))
		return nil
	},
}

func init() {
	questionsCmd.Flags().String("section", "", "Filter by section (psychological, technical, wiscar)")
}

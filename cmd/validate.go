package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bhavyasrideva22/career-fit-quiz/internal/catalog"
)

var validateCmd = &cobra.Command{
	Use:   "validate <catalog-file>",
	Short: "Check a question catalog file for errors",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load(args[0])
		if err != nil {
			return err
		}

		title := cat.Title()
		if title == "" {
			title = "(untitled)"
		}
		fmt.Printf("%s: ok\n", args[0])
		fmt.Printf("  title:    %s\n", title)
		fmt.Printf("  schema:   %s\n", cat.Version())
		for _, sec := range catalog.AllSections() {
			fmt.Printf("  %-9s %d questions\n", string(sec)+":", len(cat.BySection(sec)))
		}
		return nil
	},
}

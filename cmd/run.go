package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bhavyasrideva22/career-fit-quiz/internal/app"
)

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	noSplash, _ := cmd.Flags().GetBool("no-splash")
	opts := app.Options{
		Catalog:     e.cat,
		Logger:      e.logger,
		SkipWelcome: noSplash,
	}

	svc, err := e.coach(cmd.Context())
	switch {
	case err != nil:
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Coaching notes will be unavailable.")
	case svc != nil:
		opts.Coach = svc
		opts.CoachModel = svc.Model()
	}

	return app.Run(opts)
}

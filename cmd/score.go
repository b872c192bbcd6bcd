package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bhavyasrideva22/career-fit-quiz/internal/answersheet"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/assessment"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/coach"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/report"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score <answers-file>",
	Short: "Score a YAML or JSON answer sheet without the TUI",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		formatFlag, _ := cmd.Flags().GetString("format")
		withCoach, _ := cmd.Flags().GetBool("coach")

		format, err := report.ParseFormat(formatFlag)
		if err != nil {
			return err
		}

		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		sheet, err := answersheet.Load(args[0])
		if err != nil {
			return err
		}
		if unknown := scoring.UnknownIDs(sheet.Answers, e.cat); len(unknown) > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: ignoring unknown question ids: %s\n", strings.Join(unknown, ", "))
			for _, id := range unknown {
				delete(sheet.Answers, id)
			}
		}

		engine := assessment.NewEngine(e.cat, assessment.WithLogger(e.logger))
		out, err := answersheet.Replay(engine, sheet)
		if err != nil {
			return err
		}
		if out.Answered < e.cat.Len() {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %d of %d questions unanswered; they score as zero\n",
				e.cat.Len()-out.Answered, e.cat.Len())
		}

		rep := report.Report{
			SessionID: out.SessionID,
			Answered:  out.Answered,
			Total:     e.cat.Len(),
			Scores:    out.Scores,
			Result:    out.Result,
		}

		if withCoach {
			svc, err := e.coach(cmd.Context())
			switch {
			case err != nil:
				return fmt.Errorf("coach: %w", err)
			case svc == nil:
				return fmt.Errorf("coach: no LLM provider configured (set CAREERFIT_LLM_PROVIDER or a vendor API key)")
			}
			note, err := svc.Generate(cmd.Context(), coach.Input{Result: out.Result, Scores: out.Scores})
			if err != nil {
				e.logger.Warn("coach note failed", zap.Error(err))
				fmt.Fprintln(cmd.ErrOrStderr(), "Coaching note unavailable:", err)
			} else {
				rep.Coach = note
			}
		}

		return report.Render(cmd.OutOrStdout(), format, rep)
	},
}

func init() {
	scoreCmd.Flags().StringP("format", "f", "text", "Output format: text, json or yaml")
	scoreCmd.Flags().Bool("coach", false, "Add an AI coaching note (needs an LLM provider)")
}

package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "careerfit",
	Short: "Should I learn Cloud DevOps? A terminal self-assessment",
	Long: "careerfit walks you through a 17-question self-assessment covering " +
		"psychological readiness, technical aptitude and the WISCAR framework, " +
		"then recommends whether to pursue Cloud DevOps and which roles fit best.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("catalog", "", "Path to a question catalog YAML file (overrides CAREERFIT_CATALOG)")
	rootCmd.PersistentFlags().String("log-file", "", "Write JSON logs to this file (overrides CAREERFIT_LOG_FILE)")
	rootCmd.Flags().Bool("no-splash", false, "Skip the welcome animation")

	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

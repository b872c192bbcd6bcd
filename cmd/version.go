package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"

	"github.com/bhavyasrideva22/career-fit-quiz/internal/catalog"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the careerfit version and the built-in catalog it ships",
	Run: func(cmd *cobra.Command, args []string) {
		cat := catalog.Default()
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "careerfit", version)
		fmt.Fprintf(out, "catalog %q: %d questions, schema %s (accepts %s.x)\n",
			cat.Title(), cat.Len(), cat.Version(), semver.Major(catalog.SchemaVersion))
	},
}

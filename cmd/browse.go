package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hrcore/competency/internal/app"
)

var browseCmd = &cobra.Command{
	Use:         "browse",
	Short:       "Browse collections in the terminal UI",
	Annotations: map[string]string{annotationTUI: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse(cmd)
	},
}

// runBrowse launches the TUI over the opened environment. Logs go to the
// configured log file only.
func runBrowse(cmd *cobra.Command) error {
	return app.Run(envFrom(cmd))
}

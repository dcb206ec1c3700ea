package cli

import (
	"github.com/spf13/cobra"

	"scraper/internal/task"
)

// The external-tool tasks become plain subcommands: no flags, no config,
// just the fixed argv from the task table.
func init() {
	for _, t := range task.Tasks() {
		t := t
		rootCmd.AddCommand(&cobra.Command{
			Use:   t.Name,
			Short: t.Summary,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return task.Run(cmd.Context(), t)
			},
		})
	}
}

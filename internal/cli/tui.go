package cli

import (
	"github.com/spf13/cobra"

	"github.com/runoshun/gantt/internal/app"
)

// newTUICommand creates the tui command for launching the interactive TUI.
// This is the same as running `gantt` without arguments.
func newTUICommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch interactive editor",
		Long: `Launch the interactive terminal editor.

Move with the arrow keys, pick a column with left/right and press enter to edit
a cell. Edits re-resolve the schedule immediately. Press v to view the chart.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}
	return cmd
}

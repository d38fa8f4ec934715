// Package cli provides the command-line interface for gantt.
package cli

import (
	"fmt"

	"github.com/runoshun/gantt/internal/app"
	"github.com/runoshun/gantt/internal/tui"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupSetup   = "setup"
	groupProject = "project"
	groupTask    = "task"
	groupOutput  = "output"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = tui.Run

// NewRootCommand creates the root command for gantt.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var projectFile string

	root := &cobra.Command{
		Use:   "gantt",
		Short: "Project schedule and Gantt chart CLI",
		Long: `gantt keeps an ordered task list for a project and draws it as a Gantt chart.

Each task may name one predecessor. A dependent task starts on the day its
predecessor ends; every edit re-resolves the whole schedule.

Run without arguments to open the interactive editor.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}

			if projectFile != "" {
				if err := c.UseProjectFile(projectFile); err != nil {
					return fmt.Errorf("project file: %w", err)
				}
			}

			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	root.PersistentFlags().StringVar(&projectFile, "project", "", "Project file to use instead of .gantt/project.json")

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupProject, Title: "Project Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupOutput, Title: "Output Commands:"},
	)

	// Setup commands
	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	presetsCmd := newPresetsCommand(c)
	presetsCmd.GroupID = groupSetup

	// Project commands
	newCmd := newNewCommand(c)
	newCmd.GroupID = groupProject

	resolveCmd := newResolveCommand(c)
	resolveCmd.GroupID = groupProject

	importCmd := newImportCommand(c)
	importCmd.GroupID = groupProject

	// Task management commands
	listCmd := newListCommand(c)
	listCmd.GroupID = groupTask

	addCmd := newAddCommand(c)
	addCmd.GroupID = groupTask

	editCmd := newEditCommand(c)
	editCmd.GroupID = groupTask

	rmCmd := newRmCommand(c)
	rmCmd.GroupID = groupTask

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupTask

	// Output commands
	chartCmd := newChartCommand(c)
	chartCmd.GroupID = groupOutput

	exportCmd := newExportCommand(c)
	exportCmd.GroupID = groupOutput

	calendarCmd := newCalendarCommand(c)
	calendarCmd.GroupID = groupOutput

	root.AddCommand(
		configCmd,
		presetsCmd,
		newCmd,
		resolveCmd,
		importCmd,
		listCmd,
		addCmd,
		editCmd,
		rmCmd,
		tuiCmd,
		chartCmd,
		exportCmd,
		calendarCmd,
	)

	return root
}

package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/runoshun/gantt/internal/app"
	"github.com/runoshun/gantt/internal/domain"
	"github.com/runoshun/gantt/internal/usecase"
	"github.com/spf13/cobra"
)

// newNewCommand creates the new command for creating a project.
func newNewCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Complexity string
		Tasks      int
		Force      bool
	}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a project",
		Long: `Create a project of default tasks.

The task count comes from --tasks, or from a complexity preset (see 'gantt presets').
Without either, the first preset is used. Each task starts a few days from today
with the default duration and colour from the [project] config section.

Examples:
  # Create a project from the "Medium Project" preset
  gantt new --complexity "Medium Project"

  # Create exactly 4 tasks, replacing any existing project
  gantt new --tasks 4 --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := usecase.CreateProjectInput{
				Complexity: opts.Complexity,
				Force:      opts.Force,
			}
			if cmd.Flags().Changed("tasks") {
				input.TaskCount = &opts.Tasks
			}

			uc := c.CreateProjectUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out.Preset != "" {
				_, _ = fmt.Fprintf(w, "Created project with %d tasks (%s): %s\n", len(out.Tasks), out.Preset, c.Config.StorePath)
			} else {
				_, _ = fmt.Fprintf(w, "Created project with %d tasks: %s\n", len(out.Tasks), c.Config.StorePath)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Tasks, "tasks", 0, "Number of tasks (overrides --complexity)")
	cmd.Flags().StringVar(&opts.Complexity, "complexity", "", "Complexity preset label")
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "Replace an existing project")

	return cmd
}

// newResolveCommand creates the resolve command.
func newResolveCommand(c *app.Container) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Pin dependent tasks to their predecessors",
		Long: `Move every task that names a predecessor so it starts on the day the
predecessor ends, repeating until nothing moves.

Resolution stops after one pass per task. A dependency cycle never settles;
the tasks still moving are reported as pending.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ResolveScheduleUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ResolveScheduleInput{DryRun: dryRun})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(out.Moved) == 0 {
				_, _ = fmt.Fprintln(w, "Schedule already resolved")
			} else {
				tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
				_, _ = fmt.Fprintln(tw, "ID\tSTART\tEND\tAFTER")
				for _, id := range out.Moved {
					t := domain.FindTask(out.Tasks, id)
					if t == nil {
						continue
					}
					_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.ID, domain.FormatDate(t.StartDate), domain.FormatDate(t.EndDate), t.Dependency)
				}
				_ = tw.Flush()
				if dryRun {
					_, _ = fmt.Fprintln(w, "(dry run, not saved)")
				}
			}

			if out.Report.Truncated() {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: stopped after %d passes; dependency cycle among: %s\n",
					out.Report.Passes, strings.Join(out.Report.Pending, ", "))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show moves without saving")

	return cmd
}

// newPresetsCommand creates the presets command.
func newPresetsCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List complexity presets and palette colours",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			_, _ = fmt.Fprintln(tw, "COMPLEXITY\tTASKS")
			for _, p := range c.AppConfig.Complexities {
				_, _ = fmt.Fprintf(tw, "%s\t%d\n", p.Label, p.TaskCount)
			}
			_, _ = fmt.Fprintln(tw)
			_, _ = fmt.Fprintln(tw, "COLOUR\tHEX")
			for _, col := range c.AppConfig.Palette {
				_, _ = fmt.Fprintf(tw, "%s\t%s\n", col.Name, col.Hex)
			}
			return tw.Flush()
		},
	}
	return cmd
}

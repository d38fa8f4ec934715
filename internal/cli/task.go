package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/runoshun/gantt/internal/app"
	"github.com/runoshun/gantt/internal/domain"
	"github.com/runoshun/gantt/internal/usecase"
	"github.com/spf13/cobra"
)

// listItem is one task in `gantt list --json` output.
type listItem struct {
	*domain.Task
	State domain.DependencyState `json:"state"`
}

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `Display the project's tasks in order.

Output format is tab-separated with columns:
  ID, NAME, DURATION, START, END, COLOUR, DEPENDENCY, STATE

STATE is "satisfied" when the task starts on its predecessor's end, "pending"
when it does not (run 'gantt resolve'), and "unresolved" when there is no
predecessor or it names no task.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListTasksInput{})
			if err != nil {
				return err
			}

			if asJSON {
				items := make([]listItem, 0, len(out.Tasks))
				for i, t := range out.Tasks {
					items = append(items, listItem{Task: t, State: out.States[i]})
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(items)
			}

			printTaskList(cmd.OutOrStdout(), out.Tasks, out.States)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

// printTaskList prints tasks in a tab-separated table.
func printTaskList(w io.Writer, tasks []*domain.Task, states []domain.DependencyState) {
	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(w, "No tasks")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tNAME\tDURATION\tSTART\tEND\tCOLOUR\tDEPENDENCY\tSTATE")
	for i, t := range tasks {
		duration := fmt.Sprintf("%dd", t.Duration)
		if t.IsMilestone() {
			duration = "milestone"
		}
		dep := t.Dependency
		if dep == "" {
			dep = "-"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.Name, duration, domain.FormatDate(t.StartDate), domain.FormatDate(t.EndDate),
			t.Colour, dep, states[i])
	}
	_ = tw.Flush()
}

// newAddCommand creates the add command.
func newAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Name       string
		Dependency string
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a task",
		Long: `Append a task with the next free ID and the configured defaults.

With --dep the task is scheduled to start when its predecessor ends.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.AddTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.AddTaskInput{
				Name:       opts.Name,
				Dependency: opts.Dependency,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %s %q (%s → %s)\n",
				out.Task.ID, out.Task.Name, domain.FormatDate(out.Task.StartDate), domain.FormatDate(out.Task.EndDate))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Name, "name", "n", "", "Task name")
	cmd.Flags().StringVar(&opts.Dependency, "dep", "", "Predecessor task ID")

	return cmd
}

// newRmCommand creates the rm command.
func newRmCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a task",
		Long: `Remove a task from the project.

Tasks that named the removed task keep the reference; it no longer moves them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.RemoveTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.RemoveTaskInput{TaskID: args[0]})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %s %q\n", out.Task.ID, out.Task.Name)
			if len(out.Dependents) > 0 {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s still depend on %s\n",
					strings.Join(out.Dependents, ", "), out.Task.ID)
			}
			return nil
		},
	}
	return cmd
}

// newEditCommand creates the edit command.
func newEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Name       string
		Start      string
		Colour     string
		Dependency string
		Duration   int
		NoDep      bool
	}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task",
		Long: `Edit one or more fields of a task.

The end date is always derived from the start date and duration. After the edit
the whole schedule is resolved, so dependents of the task move with it.

Examples:
  # Lengthen a task and move it
  gantt edit T-002 --duration 8 --start 2024-03-11

  # Make a milestone that follows T-004
  gantt edit T-005 --duration 0 --dep T-004`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			input := usecase.EditTaskInput{TaskID: args[0], ClearDependency: opts.NoDep}

			if flags.Changed("name") {
				input.Name = &opts.Name
			}
			if flags.Changed("duration") {
				input.Duration = &opts.Duration
			}
			if flags.Changed("start") {
				start, err := domain.ParseDate(opts.Start)
				if err != nil {
					return err
				}
				input.StartDate = &start
			}
			if flags.Changed("colour") {
				input.Colour = &opts.Colour
			}
			if flags.Changed("dep") {
				if opts.NoDep {
					return fmt.Errorf("--dep and --no-dep cannot be used together")
				}
				input.Dependency = &opts.Dependency
			}

			uc := c.EditTaskUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Updated %s (%s → %s)\n",
				out.Task.ID, domain.FormatDate(out.Task.StartDate), domain.FormatDate(out.Task.EndDate))
			var moved []string
			for _, id := range out.Moved {
				if id != out.Task.ID {
					moved = append(moved, id)
				}
			}
			if len(moved) > 0 {
				_, _ = fmt.Fprintf(w, "Moved %s\n", strings.Join(moved, ", "))
			}
			if out.Report.Truncated() {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: dependency cycle among: %s\n",
					strings.Join(out.Report.Pending, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Name, "name", "n", "", "New name")
	cmd.Flags().IntVarP(&opts.Duration, "duration", "d", 0, "New duration in days (0 = milestone)")
	cmd.Flags().StringVarP(&opts.Start, "start", "s", "", "New start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.Colour, "colour", "", "New palette colour")
	cmd.Flags().StringVar(&opts.Dependency, "dep", "", "New predecessor task ID")
	cmd.Flags().BoolVar(&opts.NoDep, "no-dep", false, "Remove the dependency")

	return cmd
}

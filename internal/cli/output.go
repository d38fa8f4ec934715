package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/runoshun/gantt/internal/app"
	"github.com/runoshun/gantt/internal/usecase"
	"github.com/spf13/cobra"
)

// newChartCommand creates the chart command.
func newChartCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Width   int
		NoColor bool
	}

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Draw the Gantt chart",
		Long: `Draw the project as a Gantt chart in the terminal.

Bars are coloured with the task's palette colour. Milestones are drawn as a
diamond, today's column is marked when it falls inside the project range, and
dependency links are listed below the chart. Run 'gantt resolve' first if the
list shows pending tasks.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ShowChartUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowChartInput{
				Width:   opts.Width,
				NoColor: opts.NoColor,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), out.Text)
			if !strings.HasSuffix(out.Text, "\n") {
				_, _ = fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.Width, "width", "w", 0, "Chart width in cells (default 120)")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false, "Disable colours")

	return cmd
}

// newExportCommand creates the export command.
func newExportCommand(c *app.Container) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export tasks as CSV",
		Long: `Write the task table as CSV with the header
  ID, Task Name, Duration, Start Date, End Date, Colour, Dependency

Edit the file in a spreadsheet and load it back with 'gantt import'.`,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			var w io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, createErr := os.Create(output)
				if createErr != nil {
					return fmt.Errorf("create %s: %w", output, createErr)
				}
				defer func() {
					if cerr := f.Close(); cerr != nil && err == nil {
						err = cerr
					}
				}()
				w = f
			}

			uc := c.ExportTableUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ExportTableInput{Writer: w})
			if err != nil {
				return err
			}
			if w != cmd.OutOrStdout() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d tasks to %s\n", out.Rows, output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")

	return cmd
}

// newImportCommand creates the import command.
func newImportCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace tasks from CSV",
		Long: `Replace the project's tasks with the rows of a CSV file ("-" reads stdin).

Columns are matched by header name; End Date is ignored and recomputed. The
import is all or nothing: the first malformed row leaves the project untouched.
The imported schedule is resolved before it is saved.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open %s: %w", args[0], err)
				}
				defer func() { _ = f.Close() }()
				r = f
			}

			uc := c.ImportTableUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ImportTableInput{Reader: r})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Imported %d tasks\n", len(out.Tasks))
			if len(out.Moved) > 0 {
				_, _ = fmt.Fprintf(w, "Moved %s\n", strings.Join(out.Moved, ", "))
			}
			if out.Report.Truncated() {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: dependency cycle among: %s\n",
					strings.Join(out.Report.Pending, ", "))
			}
			return nil
		},
	}
	return cmd
}

// newCalendarCommand creates the calendar command.
func newCalendarCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Publish the schedule to Google Calendar",
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newCalendarSyncCommand(c))

	return cmd
}

// newCalendarSyncCommand creates the calendar sync subcommand.
func newCalendarSyncCommand(c *app.Container) *cobra.Command {
	var calendarID string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Create or update one all-day event per task",
		Long: `Publish the resolved schedule to a Google Calendar.

Each task becomes an all-day event tagged with its ID, so running sync again
updates the same events. Authorization uses the OAuth client file named by
[calendar] credentials_file; the first run opens a browser consent flow and
caches the token.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.SyncCalendarUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.SyncCalendarInput{CalendarID: calendarID})
			if err != nil {
				return err
			}

			r := out.Result
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Synced %d tasks to %s: %d created, %d updated, %d unchanged\n",
				len(r.Created)+len(r.Updated)+len(r.Unchanged), out.CalendarID,
				len(r.Created), len(r.Updated), len(r.Unchanged))
			return nil
		},
	}

	cmd.Flags().StringVar(&calendarID, "calendar", "", "Calendar ID (default [calendar] calendar_id)")

	return cmd
}

// Package render turns a resolved task list into a Gantt chart.
package render

import (
	"fmt"
	"time"

	"github.com/runoshun/gantt/internal/domain"
)

// Chart layout constants.
const (
	RangePadDays   = 3
	MilestoneLabel = "Milestone"
	MilestoneHex   = "#555555"
	TodayHex       = "#E05252"
	HeaderHex      = "#1B3A6B"
	Title          = "Project Gantt Chart"
	EmptyMessage   = "No tasks to display"
)

// Row is one task line of the chart.
// Fields are ordered to minimize memory padding.
type Row struct {
	Start         time.Time
	End           time.Time
	ID            string
	Name          string
	DurationLabel string // "Nd" or "Milestone"
	DateLabel     string // "02 Jan → 07 Jan"
	Hex           string // Bar colour
	Milestone     bool
}

// Link is a finish-to-start arrow between two rows.
type Link struct {
	FromID string
	ToID   string
	From   int // Row index of the predecessor
	To     int // Row index of the dependent
}

// LegendEntry is one legend swatch.
type LegendEntry struct {
	Label     string
	Hex       string
	Milestone bool
}

// Chart is a renderable Gantt chart.
// Fields are ordered to minimize memory padding.
type Chart struct {
	RangeStart time.Time // Earliest start minus RangePadDays
	RangeEnd   time.Time // Latest end plus RangePadDays
	Today      time.Time
	Rows       []Row
	Links      []Link
	MonthTicks []time.Time // First-of-month dates inside the range
	Legend     []LegendEntry
	Subtitle   string
	ShowToday  bool // Today falls inside the range
}

// Build creates the chart for tasks in list order. Colours missing from
// palette use domain.FallbackHex. An empty task list yields an empty chart.
func Build(tasks []*domain.Task, palette domain.Palette, today time.Time) *Chart {
	chart := &Chart{Today: domain.Day(today)}
	if len(tasks) == 0 {
		return chart
	}

	start, end := tasks[0].StartDate, tasks[0].EndDate
	for _, t := range tasks {
		if t.StartDate.Before(start) {
			start = t.StartDate
		}
		if t.EndDate.After(end) {
			end = t.EndDate
		}
	}
	chart.RangeStart = domain.Day(start).AddDate(0, 0, -RangePadDays)
	chart.RangeEnd = domain.Day(end).AddDate(0, 0, RangePadDays)
	chart.ShowToday = !chart.Today.Before(chart.RangeStart) && !chart.Today.After(chart.RangeEnd)
	chart.MonthTicks = monthTicks(chart.RangeStart, chart.RangeEnd)

	for _, t := range tasks {
		chart.Rows = append(chart.Rows, Row{
			Start:         t.StartDate,
			End:           t.EndDate,
			ID:            t.ID,
			Name:          t.Name,
			DurationLabel: durationLabel(t),
			DateLabel:     t.StartDate.Format("02 Jan") + " → " + t.EndDate.Format("02 Jan"),
			Hex:           palette.Hex(t.Colour),
			Milestone:     t.IsMilestone(),
		})
	}

	for _, l := range domain.DependencyLinks(tasks) {
		chart.Links = append(chart.Links, Link{
			From:   l.From,
			To:     l.To,
			FromID: tasks[l.From].ID,
			ToID:   tasks[l.To].ID,
		})
	}

	for _, c := range palette {
		chart.Legend = append(chart.Legend, LegendEntry{Label: c.Name, Hex: c.Hex})
	}
	chart.Legend = append(chart.Legend, LegendEntry{Label: MilestoneLabel, Hex: MilestoneHex, Milestone: true})

	chart.Subtitle = fmt.Sprintf("Generated %s · %d tasks · %s – %s",
		chart.Today.Format("02 January 2006"),
		len(tasks),
		chart.RangeStart.Format("Jan 2006"),
		chart.RangeEnd.Format("Jan 2006"),
	)
	return chart
}

// Empty reports whether the chart has no rows.
func (c *Chart) Empty() bool {
	return len(c.Rows) == 0
}

// Days returns the number of days spanned by the range.
func (c *Chart) Days() int {
	return int(c.RangeEnd.Sub(c.RangeStart).Hours() / 24)
}

func durationLabel(t *domain.Task) string {
	if t.IsMilestone() {
		return MilestoneLabel
	}
	return fmt.Sprintf("%dd", t.Duration)
}

// monthTicks returns the first day of every month within [start, end].
func monthTicks(start, end time.Time) []time.Time {
	var ticks []time.Time
	d := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	if d.Before(start) {
		d = d.AddDate(0, 1, 0)
	}
	for !d.After(end) {
		ticks = append(ticks, d)
		d = d.AddDate(0, 1, 0)
	}
	return ticks
}

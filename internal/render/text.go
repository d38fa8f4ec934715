package render

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Text layout constants.
const (
	DefaultWidth     = 120
	minTimelineWidth = 20
	maxNameWidth     = 24

	barRune       = '█'
	milestoneRune = '◆'
	todayRune     = '┊'
	tickRune      = '·'
	swatch        = "■"
)

// Options controls text rendering.
type Options struct {
	Width   int  // Total width in cells; DefaultWidth when zero
	NoColor bool // Plain text without ANSI styling
}

// styles holds the lipgloss styles used by Render.
type styles struct {
	title  lipgloss.Style
	muted  lipgloss.Style
	header lipgloss.Style
	color  bool
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{title: plain, muted: plain, header: plain}
	}
	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(HeaderHex)),
		muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("#64748B")),
		header: lipgloss.NewStyle().Bold(true),
		color:  true,
	}
}

func (s styles) fg(hex, text string) string {
	if !s.color || hex == "" {
		return text
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(text)
}

// cell is one timeline position.
type cell struct {
	hex string
	r   rune
}

// Render draws the chart as text: a task table on the left, a timeline on
// the right, then dependency links and the legend.
func (c *Chart) Render(opts Options) string {
	if c.Empty() {
		return EmptyMessage + "\n"
	}
	st := newStyles(!opts.NoColor)

	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}

	cols := c.columnWidths()
	left := 0
	for _, w := range cols {
		left += w
	}
	left += 2 * (len(cols) - 1)
	timeline := width - left - 3
	if timeline < minTimelineWidth {
		timeline = minTimelineWidth
	}

	var b strings.Builder
	b.WriteString(st.title.Render(Title) + "\n")
	b.WriteString(st.muted.Render(c.Subtitle) + "\n\n")

	header := joinCells(cols, []string{"ID", "Task Name", "Duration", "Dates"})
	b.WriteString(st.header.Render(header) + " │ " + st.header.Render(c.axis(timeline)) + "\n")
	b.WriteString(strings.Repeat("─", left) + "─┼─" + strings.Repeat("─", timeline) + "\n")

	for _, row := range c.Rows {
		text := joinCells(cols, []string{row.ID, row.Name, row.DurationLabel, row.DateLabel})
		b.WriteString(text + " │ " + renderCells(st, c.timelineCells(row, timeline)) + "\n")
	}

	if len(c.Links) > 0 {
		b.WriteString("\nDependencies\n")
		for _, l := range c.Links {
			b.WriteString("  " + l.FromID + " → " + l.ToID + "\n")
		}
	}

	b.WriteString("\n" + c.legend(st) + "\n")
	return b.String()
}

func (c *Chart) columnWidths() []int {
	cols := []int{len("ID"), len("Task Name"), len("Duration"), len("Dates")}
	for _, row := range c.Rows {
		cols[0] = max(cols[0], lipgloss.Width(row.ID))
		cols[1] = max(cols[1], min(maxNameWidth, lipgloss.Width(row.Name)))
		cols[2] = max(cols[2], lipgloss.Width(row.DurationLabel))
		cols[3] = max(cols[3], lipgloss.Width(row.DateLabel))
	}
	return cols
}

// column maps a date onto a timeline of width cells.
func (c *Chart) column(d time.Time, width int) int {
	days := c.Days()
	if days <= 0 || width <= 1 {
		return 0
	}
	offset := int(d.Sub(c.RangeStart).Hours() / 24)
	col := offset * (width - 1) / days
	return min(max(col, 0), width-1)
}

// axis returns the month labels positioned over the timeline.
func (c *Chart) axis(width int) string {
	line := []rune(strings.Repeat(" ", width))
	next := 0
	for _, tick := range c.MonthTicks {
		label := []rune(tick.Format("Jan '06"))
		col := c.column(tick, width)
		if col < next || col+len(label) > width {
			continue
		}
		copy(line[col:], label)
		next = col + len(label) + 1
	}
	return string(line)
}

func (c *Chart) timelineCells(row Row, width int) []cell {
	cells := make([]cell, width)
	for i := range cells {
		cells[i] = cell{r: ' '}
	}
	for _, tick := range c.MonthTicks {
		cells[c.column(tick, width)] = cell{r: tickRune}
	}
	if c.ShowToday {
		cells[c.column(c.Today, width)] = cell{r: todayRune, hex: TodayHex}
	}

	start := c.column(row.Start, width)
	if row.Milestone {
		cells[start] = cell{r: milestoneRune, hex: row.Hex}
		return cells
	}
	end := max(c.column(row.End, width), start+1)
	for i := start; i < end && i < width; i++ {
		cells[i] = cell{r: barRune, hex: row.Hex}
	}
	return cells
}

// renderCells writes cells, styling runs of the same colour together.
func renderCells(st styles, cells []cell) string {
	var b strings.Builder
	var run strings.Builder
	hex := ""
	flush := func() {
		if run.Len() > 0 {
			b.WriteString(st.fg(hex, run.String()))
			run.Reset()
		}
	}
	for _, c := range cells {
		if c.hex != hex {
			flush()
			hex = c.hex
		}
		run.WriteRune(c.r)
	}
	flush()
	return strings.TrimRight(b.String(), " ")
}

func (c *Chart) legend(st styles) string {
	parts := make([]string, 0, len(c.Legend)+1)
	for _, e := range c.Legend {
		mark := swatch
		if e.Milestone {
			mark = string(milestoneRune)
		}
		parts = append(parts, st.fg(e.Hex, mark)+" "+e.Label)
	}
	if c.ShowToday {
		parts = append(parts, st.fg(TodayHex, string(todayRune))+" Today")
	}
	return strings.Join(parts, "  ")
}

func joinCells(widths []int, values []string) string {
	padded := make([]string, len(values))
	for i, v := range values {
		padded[i] = pad(v, widths[i])
	}
	return strings.Join(padded, "  ")
}

// pad fits s into exactly w display cells, truncating with an ellipsis.
func pad(s string, w int) string {
	if lipgloss.Width(s) > w {
		runes := []rune(s)
		for len(runes) > 0 && lipgloss.Width(string(runes))+1 > w {
			runes = runes[:len(runes)-1]
		}
		s = string(runes) + "…"
	}
	return s + strings.Repeat(" ", max(0, w-lipgloss.Width(s)))
}

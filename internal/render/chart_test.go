package render

import (
	"testing"
	"time"

	"github.com/runoshun/gantt/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTask(id, name string, start time.Time, duration int, colour, dep string) *domain.Task {
	t := &domain.Task{ID: id, Name: name, Duration: duration, Colour: colour, Dependency: dep}
	t.SetStart(start)
	return t
}

func sampleTasks() []*domain.Task {
	return []*domain.Task{
		newTask("T-001", "Design", date(2024, 1, 29), 5, "Teal", ""),
		newTask("T-002", "Build", date(2024, 2, 3), 10, "Unknown", "T-001"),
		newTask("T-003", "Launch", date(2024, 2, 13), 0, "Charcoal", "T-002"),
		newTask("T-004", "Orphan", date(2024, 2, 1), 2, "Teal", "T-404"),
	}
}

func TestBuild(t *testing.T) {
	chart := Build(sampleTasks(), domain.DefaultPalette(), date(2024, 2, 5))

	assert.Equal(t, date(2024, 1, 26), chart.RangeStart)
	assert.Equal(t, date(2024, 2, 16), chart.RangeEnd)
	assert.Equal(t, 21, chart.Days())
	assert.True(t, chart.ShowToday)
	assert.Equal(t, []time.Time{date(2024, 2, 1)}, chart.MonthTicks)

	require.Len(t, chart.Rows, 4)
	assert.Equal(t, Row{
		Start:         date(2024, 1, 29),
		End:           date(2024, 2, 3),
		ID:            "T-001",
		Name:          "Design",
		DurationLabel: "5d",
		DateLabel:     "29 Jan → 03 Feb",
		Hex:           "#2A7F7F",
	}, chart.Rows[0])
	assert.Equal(t, domain.FallbackHex, chart.Rows[1].Hex)
	assert.True(t, chart.Rows[2].Milestone)
	assert.Equal(t, MilestoneLabel, chart.Rows[2].DurationLabel)
	assert.Equal(t, "13 Feb → 13 Feb", chart.Rows[2].DateLabel)

	assert.Equal(t, []Link{
		{From: 0, To: 1, FromID: "T-001", ToID: "T-002"},
		{From: 1, To: 2, FromID: "T-002", ToID: "T-003"},
	}, chart.Links)

	require.Len(t, chart.Legend, 6)
	assert.Equal(t, LegendEntry{Label: "Dark Blue", Hex: "#1B3A6B"}, chart.Legend[0])
	assert.Equal(t, LegendEntry{Label: MilestoneLabel, Hex: MilestoneHex, Milestone: true}, chart.Legend[5])

	assert.Equal(t, "Generated 05 February 2024 · 4 tasks · Jan 2024 – Feb 2024", chart.Subtitle)
}

func TestBuild_TodayOutsideRange(t *testing.T) {
	chart := Build(sampleTasks(), domain.DefaultPalette(), date(2025, 1, 1))
	assert.False(t, chart.ShowToday)
}

func TestBuild_Empty(t *testing.T) {
	chart := Build(nil, domain.DefaultPalette(), date(2024, 1, 1))
	assert.True(t, chart.Empty())
	assert.Empty(t, chart.Links)
}

func TestMonthTicks(t *testing.T) {
	ticks := monthTicks(date(2024, 11, 1), date(2025, 2, 10))
	assert.Equal(t, []time.Time{date(2024, 11, 1), date(2024, 12, 1), date(2025, 1, 1), date(2025, 2, 1)}, ticks)

	assert.Empty(t, monthTicks(date(2024, 3, 2), date(2024, 3, 30)))
}

// Package gcal publishes a resolved schedule to Google Calendar.
package gcal

import (
	"fmt"

	"github.com/runoshun/gantt/internal/domain"
	"google.golang.org/api/calendar/v3"
)

// TaskIDProperty is the private extended property linking an event to a task.
const TaskIDProperty = "gantt_task_id"

// EventFor converts a task into an all-day event.
// Calendar end dates are exclusive, so a task ends on its EndDate and a
// milestone occupies its single start day.
func EventFor(task *domain.Task) *calendar.Event {
	end := task.EndDate
	if task.IsMilestone() {
		end = task.StartDate.AddDate(0, 0, 1)
	}

	return &calendar.Event{
		Summary:     summary(task),
		Description: description(task),
		Start:       &calendar.EventDateTime{Date: domain.FormatDate(task.StartDate)},
		End:         &calendar.EventDateTime{Date: domain.FormatDate(end)},
		// All-day plan items should not block free/busy time.
		Transparency: "transparent",
		ExtendedProperties: &calendar.EventExtendedProperties{
			Private: map[string]string{TaskIDProperty: task.ID},
		},
	}
}

func summary(task *domain.Task) string {
	if task.IsMilestone() {
		return "◆ " + task.Name
	}
	return task.Name
}

func description(task *domain.Task) string {
	length := fmt.Sprintf("%d days", task.Duration)
	if task.IsMilestone() {
		length = "milestone"
	}
	desc := fmt.Sprintf("%s (%s)", task.ID, length)
	if task.HasDependency() {
		desc += "\nAfter " + task.Dependency
	}
	return desc
}

// needsUpdate reports whether existing differs from desired in any field
// EventFor sets.
func needsUpdate(existing, desired *calendar.Event) bool {
	if existing.Summary != desired.Summary || existing.Description != desired.Description {
		return true
	}
	if existing.Transparency != desired.Transparency {
		return true
	}
	return eventDate(existing.Start) != eventDate(desired.Start) ||
		eventDate(existing.End) != eventDate(desired.End)
}

func eventDate(dt *calendar.EventDateTime) string {
	if dt == nil {
		return ""
	}
	return dt.Date
}

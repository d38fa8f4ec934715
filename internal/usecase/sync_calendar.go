package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/gantt/internal/domain"
)

// SyncCalendarInput contains the parameters for publishing to a calendar.
type SyncCalendarInput struct {
	CalendarID string // Target calendar (empty = [calendar] calendar_id)
}

// SyncCalendarOutput contains the result of publishing to a calendar.
type SyncCalendarOutput struct {
	Result     *domain.PublishResult
	CalendarID string
}

// SyncCalendar is the use case for publishing the resolved schedule as
// all-day calendar events. The stored project is not modified.
type SyncCalendar struct {
	project   domain.ProjectRepository
	publisher domain.CalendarPublisher
	config    *domain.Config
	logger    domain.Logger
}

// NewSyncCalendar creates a new SyncCalendar use case.
func NewSyncCalendar(project domain.ProjectRepository, publisher domain.CalendarPublisher, config *domain.Config, logger domain.Logger) *SyncCalendar {
	return &SyncCalendar{
		project:   project,
		publisher: publisher,
		config:    config,
		logger:    logger,
	}
}

// Execute resolves a copy of the schedule and publishes it.
func (uc *SyncCalendar) Execute(ctx context.Context, in SyncCalendarInput) (*SyncCalendarOutput, error) {
	calendarID := in.CalendarID
	if calendarID == "" {
		calendarID = uc.config.Calendar.CalendarID
	}
	if calendarID == "" {
		return nil, domain.ErrCalendarNotConfigured
	}

	tasks, err := uc.project.Load()
	if err != nil {
		return nil, fmt.Errorf("load project: %w", err)
	}
	resolveSchedule(tasks, domain.NopLogger{})

	result, err := uc.publisher.Publish(ctx, calendarID, tasks)
	if err != nil {
		uc.logger.Error("", "calendar", fmt.Sprintf("publish to %s failed: %v", calendarID, err))
		return nil, fmt.Errorf("publish calendar: %w", err)
	}

	uc.logger.Info("", "calendar", fmt.Sprintf("published to %s: %d created, %d updated, %d unchanged",
		calendarID, len(result.Created), len(result.Updated), len(result.Unchanged)))
	return &SyncCalendarOutput{Result: result, CalendarID: calendarID}, nil
}

package gcal

import (
	"context"
	"fmt"
	"io"

	"github.com/runoshun/gantt/internal/domain"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Ensure Publisher implements domain.CalendarPublisher.
var _ domain.CalendarPublisher = (*Publisher)(nil)

// eventsAPI is the subset of the Calendar events service used for publishing.
type eventsAPI interface {
	FindByTaskID(ctx context.Context, calendarID, taskID string) (*calendar.Event, error)
	Insert(ctx context.Context, calendarID string, event *calendar.Event) (*calendar.Event, error)
	Patch(ctx context.Context, calendarID, eventID string, event *calendar.Event) (*calendar.Event, error)
}

// Publisher writes one all-day event per task and updates events it wrote
// before, matched by TaskIDProperty.
type Publisher struct {
	connect func(ctx context.Context) (eventsAPI, error)
	api     eventsAPI
}

// NewPublisher creates a Publisher that authorizes on first use.
// Consent prompts are written to out.
func NewPublisher(cfg domain.CalendarConfig, out io.Writer) *Publisher {
	return &Publisher{
		connect: func(ctx context.Context) (eventsAPI, error) {
			client, err := HTTPClient(ctx, cfg, out)
			if err != nil {
				return nil, err
			}
			srv, err := calendar.NewService(ctx, option.WithHTTPClient(client))
			if err != nil {
				return nil, fmt.Errorf("create calendar service: %w", err)
			}
			return &serviceAPI{srv: srv}, nil
		},
	}
}

func newPublisherWithAPI(api eventsAPI) *Publisher {
	return &Publisher{api: api}
}

// Publish creates or updates an event for every task, in order.
// It stops at the first API error and returns what was done so far.
func (p *Publisher) Publish(ctx context.Context, calendarID string, tasks []*domain.Task) (*domain.PublishResult, error) {
	if calendarID == "" {
		return nil, domain.ErrCalendarNotConfigured
	}
	if p.api == nil {
		api, err := p.connect(ctx)
		if err != nil {
			return nil, err
		}
		p.api = api
	}

	result := &domain.PublishResult{}
	for _, task := range tasks {
		desired := EventFor(task)

		existing, err := p.api.FindByTaskID(ctx, calendarID, task.ID)
		if err != nil {
			return result, fmt.Errorf("find event for %s: %w", task.ID, err)
		}

		switch {
		case existing == nil:
			if _, err := p.api.Insert(ctx, calendarID, desired); err != nil {
				return result, fmt.Errorf("insert event for %s: %w", task.ID, err)
			}
			result.Created = append(result.Created, task.ID)
		case needsUpdate(existing, desired):
			if _, err := p.api.Patch(ctx, calendarID, existing.Id, desired); err != nil {
				return result, fmt.Errorf("update event for %s: %w", task.ID, err)
			}
			result.Updated = append(result.Updated, task.ID)
		default:
			result.Unchanged = append(result.Unchanged, task.ID)
		}
	}
	return result, nil
}

// serviceAPI implements eventsAPI on a calendar.Service.
type serviceAPI struct {
	srv *calendar.Service
}

func (s *serviceAPI) FindByTaskID(ctx context.Context, calendarID, taskID string) (*calendar.Event, error) {
	events, err := s.srv.Events.List(calendarID).
		PrivateExtendedProperty(fmt.Sprintf("%s=%s", TaskIDProperty, taskID)).
		ShowDeleted(false).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}
	if len(events.Items) > 0 {
		return events.Items[0], nil
	}
	return nil, nil
}

func (s *serviceAPI) Insert(ctx context.Context, calendarID string, event *calendar.Event) (*calendar.Event, error) {
	return s.srv.Events.Insert(calendarID, event).Context(ctx).Do()
}

func (s *serviceAPI) Patch(ctx context.Context, calendarID, eventID string, event *calendar.Event) (*calendar.Event, error) {
	return s.srv.Events.Patch(calendarID, eventID, event).Context(ctx).Do()
}

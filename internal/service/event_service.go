package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/KaxitJayswal/Campus-Connect-backend/internal/domain"
	"github.com/KaxitJayswal/Campus-Connect-backend/internal/repository"
)

var (
	// ErrEventNotFound is returned when an event lookup fails.
	ErrEventNotFound = errors.New("event not found")

	// ErrNotEventOwner is returned when a mutation is attempted by anyone
	// other than the event's organizer.
	ErrNotEventOwner = errors.New("not the event owner")
)

// Date filter values accepted on event listing. Anything else lists all.
const (
	DateFilterPast     = "past"
	DateFilterUpcoming = "upcoming"
)

// EventService coordinates event CRUD and discovery.
type EventService struct {
	events repository.EventRepository
	now    func() time.Time
}

// NewEventService builds the service.
func NewEventService(events repository.EventRepository) *EventService {
	return &EventService{events: events, now: time.Now}
}

// CreateEventParams carries event creation input. The organizer comes from
// the authenticated identity, never from the payload.
type CreateEventParams struct {
	Title            string
	Description      string
	Date             time.Time
	Venue            string
	College          string
	Category         string
	RegistrationLink *string
}

// UpdateEventParams carries a partial update; nil fields are left unchanged.
type UpdateEventParams struct {
	Title            *string
	Description      *string
	Date             *time.Time
	Venue            *string
	College          *string
	Category         *string
	RegistrationLink *string
}

// ListEventsParams are the raw listing query inputs.
type ListEventsParams struct {
	College    string
	Category   string
	Search     string
	DateFilter string
}

// Create stores a new event owned by the given organizer.
func (s *EventService) Create(ctx context.Context, organizerID string, params CreateEventParams) (*domain.Event, error) {
	event := &domain.Event{
		Title:            params.Title,
		Description:      params.Description,
		Date:             params.Date,
		Venue:            params.Venue,
		College:          params.College,
		Category:         params.Category,
		OrganizerID:      organizerID,
		RegistrationLink: params.RegistrationLink,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// List returns events matching the filter parameters.
func (s *EventService) List(ctx context.Context, params ListEventsParams) ([]domain.Event, error) {
	return s.events.ListWithFilter(ctx, buildEventFilter(params, s.now()))
}

// buildEventFilter translates listing parameters into store clauses. The
// pivot for past/upcoming classification is local midnight of the current
// day: past events sort most-recent-first, everything else soonest-first.
func buildEventFilter(params ListEventsParams, now time.Time) repository.EventFilter {
	var filter repository.EventFilter

	if params.College != "" {
		filter.College = &params.College
	}
	if params.Category != "" {
		filter.Category = &params.Category
	}
	if params.Search != "" {
		filter.Search = &params.Search
	}

	pivot := startOfDay(now)
	switch params.DateFilter {
	case DateFilterPast:
		filter.DateBefore = &pivot
		filter.SortDescending = true
	case DateFilterUpcoming:
		filter.DateFrom = &pivot
	}
	return filter
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MyEvents returns all events owned by the organizer, most recent first.
func (s *EventService) MyEvents(ctx context.Context, organizerID string) ([]domain.Event, error) {
	return s.events.ListByOrganizer(ctx, organizerID)
}

// Get fetches one event with its organizer resolved.
func (s *EventService) Get(ctx context.Context, id string) (*domain.EventDetail, error) {
	detail, err := s.events.GetDetail(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return detail, nil
}

// Update mutates an event after a fresh ownership check.
func (s *EventService) Update(ctx context.Context, requesterID, id string, params UpdateEventParams) (*domain.Event, error) {
	event, err := s.loadOwned(ctx, requesterID, id)
	if err != nil {
		return nil, err
	}

	if params.Title != nil {
		event.Title = *params.Title
	}
	if params.Description != nil {
		event.Description = *params.Description
	}
	if params.Date != nil {
		event.Date = *params.Date
	}
	if params.Venue != nil {
		event.Venue = *params.Venue
	}
	if params.College != nil {
		event.College = *params.College
	}
	if params.Category != nil {
		event.Category = *params.Category
	}
	if params.RegistrationLink != nil {
		event.RegistrationLink = params.RegistrationLink
	}

	if err := s.events.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Delete removes an event after a fresh ownership check.
func (s *EventService) Delete(ctx context.Context, requesterID, id string) error {
	if _, err := s.loadOwned(ctx, requesterID, id); err != nil {
		return err
	}
	return s.events.Delete(ctx, id)
}

// loadOwned performs the ownership check on every mutating call; prior
// decisions are never cached.
func (s *EventService) loadOwned(ctx context.Context, requesterID, id string) (*domain.Event, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	if event.OrganizerID != requesterID {
		return nil, ErrNotEventOwner
	}
	return event, nil
}

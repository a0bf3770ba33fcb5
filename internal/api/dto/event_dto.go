package dto

import (
	"time"

	"github.com/KaxitJayswal/Campus-Connect-backend/internal/domain"
)

// CreateEventRequest payload for new events.
type CreateEventRequest struct {
	Title            string    `json:"title" validate:"required"`
	Description      string    `json:"description" validate:"required"`
	Date             time.Time `json:"date" validate:"required"`
	Venue            string    `json:"venue" validate:"required"`
	College          string    `json:"college" validate:"required"`
	Category         string    `json:"category" validate:"required"`
	RegistrationLink *string   `json:"registrationLink"`
}

// UpdateEventRequest payload for partial updates; absent fields are left
// unchanged.
type UpdateEventRequest struct {
	Title            *string    `json:"title"`
	Description      *string    `json:"description"`
	Date             *time.Time `json:"date"`
	Venue            *string    `json:"venue"`
	College          *string    `json:"college"`
	Category         *string    `json:"category"`
	RegistrationLink *string    `json:"registrationLink"`
}

// OrganizerRef is the public slice of an event's organizer.
type OrganizerRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// EventResponse is the client view of an event. Organizer is populated on
// single-event fetches only.
type EventResponse struct {
	ID               string        `json:"id"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	Date             time.Time     `json:"date"`
	Venue            string        `json:"venue"`
	College          string        `json:"college"`
	Category         string        `json:"category"`
	OrganizerID      string        `json:"organizer"`
	OrganizerDetail  *OrganizerRef `json:"organizerDetail,omitempty"`
	RegistrationLink *string       `json:"registrationLink,omitempty"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

// NewEventResponse shapes a domain event for clients.
func NewEventResponse(event *domain.Event) EventResponse {
	return EventResponse{
		ID:               event.ID,
		Title:            event.Title,
		Description:      event.Description,
		Date:             event.Date,
		Venue:            event.Venue,
		College:          event.College,
		Category:         event.Category,
		OrganizerID:      event.OrganizerID,
		RegistrationLink: event.RegistrationLink,
		CreatedAt:        event.CreatedAt,
		UpdatedAt:        event.UpdatedAt,
	}
}

// NewEventResponses shapes a slice of events.
func NewEventResponses(events []domain.Event) []EventResponse {
	result := make([]EventResponse, 0, len(events))
	for i := range events {
		result = append(result, NewEventResponse(&events[i]))
	}
	return result
}

// NewEventDetailResponse shapes an event with its organizer populated.
func NewEventDetailResponse(detail *domain.EventDetail) EventResponse {
	resp := NewEventResponse(&detail.Event)
	resp.OrganizerDetail = &OrganizerRef{
		ID:    detail.OrganizerID,
		Name:  detail.OrganizerName,
		Email: detail.OrganizerEmail,
	}
	return resp
}

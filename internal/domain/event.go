package domain

import "time"

// Event is a campus event listing. OrganizerID references the User who
// created it; only that user may mutate or delete the event.
type Event struct {
	ID               string
	Title            string
	Description      string
	Date             time.Time
	Venue            string
	College          string
	Category         string
	OrganizerID      string
	RegistrationLink *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// EventDetail is an event with its organizer's public fields resolved.
type EventDetail struct {
	Event
	OrganizerName  string
	OrganizerEmail string
}

package domain

import "time"

// Role classifies what a user is allowed to do on the platform.
type Role string

const (
	RoleStudent   Role = "student"
	RoleOrganizer Role = "organizer"
	RoleAdmin     Role = "admin"
)

// Valid reports whether the role is one of the closed set.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleOrganizer, RoleAdmin:
		return true
	}
	return false
}

// OrganizerStatus tracks a user's application to become an organizer.
type OrganizerStatus string

const (
	OrganizerStatusNone     OrganizerStatus = "none"
	OrganizerStatusPending  OrganizerStatus = "pending"
	OrganizerStatusApproved OrganizerStatus = "approved"
)

// User is the identity record. PasswordHash is never serialized to clients;
// response shaping happens in the dto package.
type User struct {
	ID              string
	Name            string
	Email           string
	PasswordHash    string
	College         *string
	Role            Role
	OrganizerStatus OrganizerStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

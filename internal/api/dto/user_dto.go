package dto

import (
	"time"

	"github.com/KaxitJayswal/Campus-Connect-backend/internal/domain"
)

// UserResponse is the non-secret view of a user. The password hash never
// appears here.
type UserResponse struct {
	ID              string                 `json:"id"`
	Name            string                 `json:"name"`
	Email           string                 `json:"email"`
	College         *string                `json:"college,omitempty"`
	Role            domain.Role            `json:"role"`
	OrganizerStatus domain.OrganizerStatus `json:"organizerStatus"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
}

// NewUserResponse shapes a domain user for clients.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:              user.ID,
		Name:            user.Name,
		Email:           user.Email,
		College:         user.College,
		Role:            user.Role,
		OrganizerStatus: user.OrganizerStatus,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}
}

// NewUserResponses shapes a slice of users.
func NewUserResponses(users []domain.User) []UserResponse {
	result := make([]UserResponse, 0, len(users))
	for i := range users {
		result = append(result, NewUserResponse(&users[i]))
	}
	return result
}

// ProfileResponse is a user with their saved events resolved.
type ProfileResponse struct {
	UserResponse
	SavedEvents []EventResponse `json:"savedEvents"`
}

// NewProfileResponse shapes a profile for clients.
func NewProfileResponse(user *domain.User, savedEvents []domain.Event) ProfileResponse {
	return ProfileResponse{
		UserResponse: NewUserResponse(user),
		SavedEvents:  NewEventResponses(savedEvents),
	}
}

package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/KaxitJayswal/Campus-Connect-backend/internal/domain"
	"github.com/KaxitJayswal/Campus-Connect-backend/internal/repository"
)

var (
	// ErrEventAlreadySaved is returned when saving an event that is already
	// on the user's list.
	ErrEventAlreadySaved = errors.New("event already saved")

	// ErrApplicationExists is returned when applying to become an organizer
	// from any state other than none.
	ErrApplicationExists = errors.New("organizer application already submitted")
)

// Profile is a user together with their saved events resolved to full
// event records.
type Profile struct {
	User        *domain.User
	SavedEvents []domain.Event
}

// UserService covers profile and saved-events operations.
type UserService struct {
	users  repository.UserRepository
	events repository.EventRepository
	saved  repository.SavedEventRepository
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, events repository.EventRepository, saved repository.SavedEventRepository) *UserService {
	return &UserService{users: users, events: events, saved: saved}
}

// Profile returns the user's profile with saved events populated.
func (s *UserService) Profile(ctx context.Context, userID string) (*Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	savedEvents, err := s.saved.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Profile{User: user, SavedEvents: savedEvents}, nil
}

// SaveEvent appends an event to the user's saved list exactly once and
// returns the refreshed profile.
func (s *UserService) SaveEvent(ctx context.Context, userID, eventID string) (*Profile, error) {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	added, err := s.saved.Add(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}
	if !added {
		return nil, ErrEventAlreadySaved
	}
	return s.Profile(ctx, userID)
}

// UnsaveEvent removes an event from the saved list. Removing an absent id
// is a no-op, not an error.
func (s *UserService) UnsaveEvent(ctx context.Context, userID, eventID string) (*Profile, error) {
	if err := s.saved.Remove(ctx, userID, eventID); err != nil {
		return nil, err
	}
	return s.Profile(ctx, userID)
}

// ApplyOrganizer moves a user's application state from none to pending.
func (s *UserService) ApplyOrganizer(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.OrganizerStatus != domain.OrganizerStatusNone {
		return nil, ErrApplicationExists
	}

	if err := s.users.UpdateOrganizerState(ctx, userID, user.Role, domain.OrganizerStatusPending); err != nil {
		return nil, err
	}
	user.OrganizerStatus = domain.OrganizerStatusPending
	return user, nil
}

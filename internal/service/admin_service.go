package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/KaxitJayswal/Campus-Connect-backend/internal/domain"
	"github.com/KaxitJayswal/Campus-Connect-backend/internal/repository"
)

var (
	// ErrUserNotFound is returned when the target of an admin action is gone.
	ErrUserNotFound = errors.New("user not found")

	// ErrNoPendingApplication is returned when approving or rejecting a user
	// whose application is not in the pending state.
	ErrNoPendingApplication = errors.New("no pending organizer application")
)

// AdminService covers the organizer approval workflow. It is the only code
// path that mutates a user's role.
type AdminService struct {
	users repository.UserRepository
}

// NewAdminService builds the service.
func NewAdminService(users repository.UserRepository) *AdminService {
	return &AdminService{users: users}
}

// PendingOrganizers lists users awaiting an approval decision.
func (s *AdminService) PendingOrganizers(ctx context.Context) ([]domain.User, error) {
	return s.users.ListByOrganizerStatus(ctx, domain.OrganizerStatusPending)
}

// ApproveOrganizer promotes a pending applicant to the organizer role.
func (s *AdminService) ApproveOrganizer(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.loadPending(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.users.UpdateOrganizerState(ctx, userID, domain.RoleOrganizer, domain.OrganizerStatusApproved); err != nil {
		return nil, err
	}
	user.Role = domain.RoleOrganizer
	user.OrganizerStatus = domain.OrganizerStatusApproved
	return user, nil
}

// RejectOrganizer resets a pending application back to none. The user's
// role is left untouched.
func (s *AdminService) RejectOrganizer(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.loadPending(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.users.UpdateOrganizerState(ctx, userID, user.Role, domain.OrganizerStatusNone); err != nil {
		return nil, err
	}
	user.OrganizerStatus = domain.OrganizerStatusNone
	return user, nil
}

func (s *AdminService) loadPending(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.OrganizerStatus != domain.OrganizerStatusPending {
		return nil, ErrNoPendingApplication
	}
	return user, nil
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/KaxitJayswal/Campus-Connect-backend/internal/auth"
	"github.com/KaxitJayswal/Campus-Connect-backend/internal/config"
	"github.com/KaxitJayswal/Campus-Connect-backend/internal/domain"
	"github.com/KaxitJayswal/Campus-Connect-backend/internal/repository"
)

var (
	// ErrEmailTaken is returned when registering with an existing email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned for both unknown email and wrong
	// password, so login failures never leak account existence.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTLMinutes),
		bcryptCost: cfg.BcryptCost,
	}
}

// RegisterParams carries registration input. Role is not accepted from
// clients; every account starts as a student and changes role only through
// the admin approval flow.
type RegisterParams struct {
	Name     string
	Email    string
	Password string
	College  *string
}

// Register creates a new account with a hashed password.
func (s *AuthService) Register(ctx context.Context, params RegisterParams) (*domain.User, error) {
	if _, err := s.users.GetByEmail(ctx, params.Email); err == nil {
		return nil, ErrEmailTaken
	} else if err != pgx.ErrNoRows {
		return nil, err
	}

	hash, err := auth.HashPassword(params.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:            params.Name,
		Email:           params.Email,
		PasswordHash:    hash,
		College:         params.College,
		Role:            domain.RoleStudent,
		OrganizerStatus: domain.OrganizerStatusNone,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a user and issues a signed token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", time.Time{}, ErrInvalidCredentials
		}
		return "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return "", time.Time{}, ErrInvalidCredentials
	}
	return s.tokenMgr.Issue(user.ID, user.Role)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/KaxitJayswal/Campus-Connect-backend/internal/domain"
	"github.com/KaxitJayswal/Campus-Connect-backend/internal/repository"
	apperrors "github.com/KaxitJayswal/Campus-Connect-backend/pkg/util"
)

const userKey = "auth_user"

// Middleware validates bearer tokens and loads the requesting user. The
// embedded identity is always re-resolved against the store, so a token
// held by a deleted user stops working at its next use.
type Middleware struct {
	tokens *TokenManager
	users  repository.UserRepository
}

// NewMiddleware constructs the auth gate.
func NewMiddleware(tokens *TokenManager, users repository.UserRepository) *Middleware {
	return &Middleware{tokens: tokens, users: users}
}

// Handle enforces authentication for protected routes. The three failure
// messages deliberately do not distinguish malformed from expired tokens.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("Not authorized, no token")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("Not authorized, no token")
	}

	identity, err := m.tokens.Verify(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("Not authorized, token failed")
	}

	user, err := m.users.GetByID(c.Context(), identity.ID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewUnauthorized("Not authorized, user not found")
		}
		return apperrors.MapError(err)
	}

	c.Locals(userKey, user)
	return c.Next()
}

// CurrentUser retrieves the authenticated user attached by Handle.
func CurrentUser(c *fiber.Ctx) (*domain.User, bool) {
	val := c.Locals(userKey)
	if val == nil {
		return nil, false
	}
	user, ok := val.(*domain.User)
	return user, ok
}

package auth

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/KaxitJayswal/Campus-Connect-backend/internal/domain"
	apperrors "github.com/KaxitJayswal/Campus-Connect-backend/pkg/util"
)

// RequireRole restricts an already-authenticated route to a single role.
// It must be chained after Middleware.Handle; a request reaching it without
// a resolved user is rejected outright.
func RequireRole(required domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c)
		if !ok {
			return apperrors.NewUnauthorized("Not authorized, no token")
		}
		if user.Role != required {
			return apperrors.NewForbidden(fmt.Sprintf("Not authorized as an %s", required))
		}
		return c.Next()
	}
}

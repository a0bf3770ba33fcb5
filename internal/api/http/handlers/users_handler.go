package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/KaxitJayswal/Campus-Connect-backend/internal/api/dto"
	"github.com/KaxitJayswal/Campus-Connect-backend/internal/auth"
	"github.com/KaxitJayswal/Campus-Connect-backend/internal/service"
	apperrors "github.com/KaxitJayswal/Campus-Connect-backend/pkg/util"
)

// UsersHandler exposes profile and saved-events endpoints.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs the handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{users: userService}
}

// Profile handles GET /api/users/me.
func (h *UsersHandler) Profile(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("Not authorized, no token")
	}

	profile, err := h.users.Profile(c.Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewProfileResponse(profile.User, profile.SavedEvents))
}

// SaveEvent handles POST /api/users/me/events/:id.
func (h *UsersHandler) SaveEvent(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("Not authorized, no token")
	}

	profile, err := h.users.SaveEvent(c.Context(), user.ID, c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventAlreadySaved):
			return apperrors.NewValidationError("Event already saved")
		case errors.Is(err, service.ErrEventNotFound):
			return apperrors.NewNotFound("Event not found")
		}
		return err
	}
	return c.JSON(dto.NewProfileResponse(profile.User, profile.SavedEvents))
}

// UnsaveEvent handles DELETE /api/users/me/events/:id. Unsaving an absent
// id succeeds with the unchanged list.
func (h *UsersHandler) UnsaveEvent(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("Not authorized, no token")
	}

	profile, err := h.users.UnsaveEvent(c.Context(), user.ID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewProfileResponse(profile.User, profile.SavedEvents))
}

// ApplyOrganizer handles POST /api/users/me/apply-organizer.
func (h *UsersHandler) ApplyOrganizer(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("Not authorized, no token")
	}

	updated, err := h.users.ApplyOrganizer(c.Context(), user.ID)
	if err != nil {
		if errors.Is(err, service.ErrApplicationExists) {
			return apperrors.NewValidationError("Organizer application already submitted")
		}
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Organizer application submitted",
		"user":    dto.NewUserResponse(updated),
	})
}

package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/KaxitJayswal/Campus-Connect-backend/internal/api/dto"
	"github.com/KaxitJayswal/Campus-Connect-backend/internal/service"
	apperrors "github.com/KaxitJayswal/Campus-Connect-backend/pkg/util"
)

// AdminHandler exposes the organizer approval workflow.
type AdminHandler struct {
	admin *service.AdminService
}

// NewAdminHandler constructs the handler.
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{admin: adminService}
}

// PendingOrganizers handles GET /api/admin/pending-organizers.
func (h *AdminHandler) PendingOrganizers(c *fiber.Ctx) error {
	pending, err := h.admin.PendingOrganizers(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserResponses(pending))
}

// ApproveOrganizer handles PUT /api/admin/approve-organizer/:id.
func (h *AdminHandler) ApproveOrganizer(c *fiber.Ctx) error {
	user, err := h.admin.ApproveOrganizer(c.Context(), c.Params("id"))
	if err != nil {
		return mapAdminError(err)
	}
	return c.JSON(fiber.Map{
		"message": "User approved as organizer",
		"user":    dto.NewUserResponse(user),
	})
}

// RejectOrganizer handles PUT /api/admin/reject-organizer/:id.
func (h *AdminHandler) RejectOrganizer(c *fiber.Ctx) error {
	user, err := h.admin.RejectOrganizer(c.Context(), c.Params("id"))
	if err != nil {
		return mapAdminError(err)
	}
	return c.JSON(fiber.Map{
		"message": "Application rejected",
		"user":    dto.NewUserResponse(user),
	})
}

func mapAdminError(err error) error {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return apperrors.NewNotFound("User not found")
	case errors.Is(err, service.ErrNoPendingApplication):
		return apperrors.NewValidationError("This user does not have a pending application")
	default:
		return err
	}
}

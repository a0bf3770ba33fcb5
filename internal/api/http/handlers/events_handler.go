package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/KaxitJayswal/Campus-Connect-backend/internal/api/dto"
	"github.com/KaxitJayswal/Campus-Connect-backend/internal/auth"
	"github.com/KaxitJayswal/Campus-Connect-backend/internal/service"
	apperrors "github.com/KaxitJayswal/Campus-Connect-backend/pkg/util"
)

// EventsHandler exposes event CRUD and discovery endpoints.
type EventsHandler struct {
	events   *service.EventService
	validate *validator.Validate
}

// NewEventsHandler constructs the handler.
func NewEventsHandler(eventService *service.EventService) *EventsHandler {
	return &EventsHandler{events: eventService, validate: validator.New()}
}

// Create handles POST /api/events. The route is gated to organizers; the
// organizer reference always comes from the authenticated identity.
func (h *EventsHandler) Create(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("Not authorized, no token")
	}

	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := h.validate.Struct(req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "title, description, date, venue, college and category are required")
	}

	event, err := h.events.Create(c.Context(), user.ID, service.CreateEventParams{
		Title:            req.Title,
		Description:      req.Description,
		Date:             req.Date,
		Venue:            req.Venue,
		College:          req.College,
		Category:         req.Category,
		RegistrationLink: req.RegistrationLink,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.NewEventResponse(event))
}

// List handles GET /api/events with optional college, category, search and
// dateFilter query parameters.
func (h *EventsHandler) List(c *fiber.Ctx) error {
	events, err := h.events.List(c.Context(), service.ListEventsParams{
		College:    c.Query("college"),
		Category:   c.Query("category"),
		Search:     c.Query("search"),
		DateFilter: c.Query("dateFilter"),
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewEventResponses(events))
}

// MyEvents handles GET /api/events/myevents for the logged-in organizer.
func (h *EventsHandler) MyEvents(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("Not authorized, no token")
	}

	events, err := h.events.MyEvents(c.Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewEventResponses(events))
}

// Get handles GET /api/events/:id with the organizer populated.
func (h *EventsHandler) Get(c *fiber.Ctx) error {
	detail, err := h.events.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			return apperrors.NewNotFound("Event not found")
		}
		return err
	}
	return c.JSON(dto.NewEventDetailResponse(detail))
}

// Update handles PUT /api/events/:id; only the owning organizer may update.
func (h *EventsHandler) Update(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("Not authorized, no token")
	}

	var req dto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	event, err := h.events.Update(c.Context(), user.ID, c.Params("id"), service.UpdateEventParams{
		Title:            req.Title,
		Description:      req.Description,
		Date:             req.Date,
		Venue:            req.Venue,
		College:          req.College,
		Category:         req.Category,
		RegistrationLink: req.RegistrationLink,
	})
	if err != nil {
		return mapOwnershipError(err)
	}
	return c.JSON(dto.NewEventResponse(event))
}

// Delete handles DELETE /api/events/:id; only the owning organizer may delete.
func (h *EventsHandler) Delete(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("Not authorized, no token")
	}

	if err := h.events.Delete(c.Context(), user.ID, c.Params("id")); err != nil {
		return mapOwnershipError(err)
	}
	return c.JSON(fiber.Map{"message": "Event removed"})
}

func mapOwnershipError(err error) error {
	switch {
	case errors.Is(err, service.ErrEventNotFound):
		return apperrors.NewNotFound("Event not found")
	case errors.Is(err, service.ErrNotEventOwner):
		return apperrors.NewUnauthorized("User not authorized")
	default:
		return err
	}
}

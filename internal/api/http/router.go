package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/KaxitJayswal/Campus-Connect-backend/internal/api/http/handlers"
	"github.com/KaxitJayswal/Campus-Connect-backend/internal/auth"
	"github.com/KaxitJayswal/Campus-Connect-backend/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Events         *handlers.EventsHandler
	Users          *handlers.UsersHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Welcome to Campus Connect API"})
	})

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	protect := cfg.AuthMiddleware.Handle
	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/me", protect, cfg.Auth.Me)

	// /myevents must register before /:id so it is not captured as an id.
	eventsGroup := api.Group("/events")
	eventsGroup.Post("/", protect, auth.RequireRole(domain.RoleOrganizer), cfg.Events.Create)
	eventsGroup.Get("/", cfg.Events.List)
	eventsGroup.Get("/myevents", protect, cfg.Events.MyEvents)
	eventsGroup.Get("/:id", cfg.Events.Get)
	eventsGroup.Put("/:id", protect, cfg.Events.Update)
	eventsGroup.Delete("/:id", protect, cfg.Events.Delete)

	usersGroup := api.Group("/users", protect)
	usersGroup.Get("/me", cfg.Users.Profile)
	usersGroup.Post("/me/apply-organizer", cfg.Users.ApplyOrganizer)
	usersGroup.Post("/me/events/:id", cfg.Users.SaveEvent)
	usersGroup.Delete("/me/events/:id", cfg.Users.UnsaveEvent)

	adminGroup := api.Group("/admin", protect, auth.RequireRole(domain.RoleAdmin))
	adminGroup.Get("/pending-organizers", cfg.Admin.PendingOrganizers)
	adminGroup.Put("/approve-organizer/:id", cfg.Admin.ApproveOrganizer)
	adminGroup.Put("/reject-organizer/:id", cfg.Admin.RejectOrganizer)
}

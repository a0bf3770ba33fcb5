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

// AuthHandler exposes registration, login, and identity echo endpoints.
type AuthHandler struct {
	auth     *service.AuthService
	validate *validator.Validate
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService, validate: validator.New()}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := h.validate.Struct(req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "name, email and password are required")
	}

	user, err := h.auth.Register(c.Context(), service.RegisterParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		College:  req.College,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return apperrors.NewValidationError("User already exists")
		}
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"user": dto.NewUserResponse(user),
	})
}

// Login handles POST /api/auth/login. The failure message is identical for
// unknown email and wrong password.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := h.validate.Struct(req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "email and password are required")
	}

	token, expiresAt, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return apperrors.NewValidationError("Invalid Credentials")
		}
		return err
	}

	return c.JSON(dto.LoginResponse{Token: token, ExpiresAt: expiresAt})
}

// Me handles GET /api/auth/me, echoing the identity the auth gate resolved.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("Not authorized, no token")
	}
	return c.JSON(dto.NewUserResponse(user))
}

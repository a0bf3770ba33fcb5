package auth

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/KaxitJayswal/Campus-Connect-backend/internal/domain"
	apperrors "github.com/KaxitJayswal/Campus-Connect-backend/pkg/util"
)

type fakeUserStore struct {
	users map[string]*domain.User
}

func (f *fakeUserStore) Create(ctx context.Context, user *domain.User) error { return nil }

func (f *fakeUserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserStore) UpdateOrganizerState(ctx context.Context, id string, role domain.Role, status domain.OrganizerStatus) error {
	return nil
}

func (f *fakeUserStore) ListByOrganizerStatus(ctx context.Context, status domain.OrganizerStatus) ([]domain.User, error) {
	return nil, nil
}

func newTestApp(mw *Middleware, extra ...fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		err := c.Next()
		if err != nil {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"message": domainErr.Message})
		}
		return nil
	})
	handlers := append([]fiber.Handler{mw.Handle}, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c)
		if !ok {
			return fiber.NewError(fiber.StatusInternalServerError, "no user in context")
		}
		return c.JSON(fiber.Map{"id": user.ID})
	})
	app.Get("/protected", handlers...)
	return app
}

func TestMiddlewareRejectsMissingHeader(t *testing.T) {
	store := &fakeUserStore{users: map[string]*domain.User{}}
	app := newTestApp(NewMiddleware(NewTokenManager("secret", 60), store))

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestMiddlewareRejectsNonBearerHeader(t *testing.T) {
	store := &fakeUserStore{users: map[string]*domain.User{}}
	app := newTestApp(NewMiddleware(NewTokenManager("secret", 60), store))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestMiddlewareRejectsBadToken(t *testing.T) {
	store := &fakeUserStore{users: map[string]*domain.User{}}
	app := newTestApp(NewMiddleware(NewTokenManager("secret", 60), store))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestMiddlewareRejectsDeletedUser(t *testing.T) {
	tokens := NewTokenManager("secret", 60)
	store := &fakeUserStore{users: map[string]*domain.User{}}
	app := newTestApp(NewMiddleware(tokens, store))

	// Valid token, but the user no longer exists in the store.
	token, _, err := tokens.Issue("ghost", domain.RoleStudent)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestMiddlewareAttachesUser(t *testing.T) {
	tokens := NewTokenManager("secret", 60)
	store := &fakeUserStore{users: map[string]*domain.User{
		"u1": {ID: "u1", Email: "a@x.com", Role: domain.RoleStudent},
	}}
	app := newTestApp(NewMiddleware(tokens, store))

	token, _, err := tokens.Issue("u1", domain.RoleStudent)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestRequireRole(t *testing.T) {
	tokens := NewTokenManager("secret", 60)
	store := &fakeUserStore{users: map[string]*domain.User{
		"student": {ID: "student", Role: domain.RoleStudent},
		"admin":   {ID: "admin", Role: domain.RoleAdmin},
	}}
	app := newTestApp(NewMiddleware(tokens, store), RequireRole(domain.RoleAdmin))

	cases := []struct {
		userID string
		role   domain.Role
		want   int
	}{
		{"student", domain.RoleStudent, fiber.StatusForbidden},
		{"admin", domain.RoleAdmin, fiber.StatusOK},
	}
	for _, tc := range cases {
		token, _, err := tokens.Issue(tc.userID, tc.role)
		if err != nil {
			t.Fatalf("issue failed: %v", err)
		}
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != tc.want {
			t.Fatalf("user %s: expected %d, got %d", tc.userID, tc.want, resp.StatusCode)
		}
	}
}

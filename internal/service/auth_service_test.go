package service

import (
	"context"
	"errors"
	"testing"

	"github.com/KaxitJayswal/Campus-Connect-backend/internal/config"
	"github.com/KaxitJayswal/Campus-Connect-backend/internal/domain"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{JWTSecret: "test-secret", TokenTTLMinutes: 60, BcryptCost: 4}
}

func TestRegisterCreatesStudent(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(testAuthConfig(), users)

	user, err := svc.Register(context.Background(), RegisterParams{
		Name: "Alice", Email: "a@x.com", Password: "pw1",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Role != domain.RoleStudent {
		t.Fatalf("expected student role, got %s", user.Role)
	}
	if user.OrganizerStatus != domain.OrganizerStatusNone {
		t.Fatalf("expected organizer status none, got %s", user.OrganizerStatus)
	}
	if user.PasswordHash == "pw1" || user.PasswordHash == "" {
		t.Fatal("password was not hashed")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(testAuthConfig(), users)

	if _, err := svc.Register(context.Background(), RegisterParams{Name: "Alice", Email: "a@x.com", Password: "pw1"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	// Same email, otherwise valid payload.
	_, err := svc.Register(context.Background(), RegisterParams{Name: "Bob", Email: "a@x.com", Password: "pw2"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if len(users.byID) != 1 {
		t.Fatalf("expected one stored user, got %d", len(users.byID))
	}
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(testAuthConfig(), users)

	registered, err := svc.Register(context.Background(), RegisterParams{Name: "Alice", Email: "a@x.com", Password: "pw1"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, _, err := svc.Login(context.Background(), "a@x.com", "pw1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	identity, err := svc.TokenManager().Verify(token)
	if err != nil {
		t.Fatalf("issued token did not verify: %v", err)
	}
	if identity.ID != registered.ID || identity.Role != domain.RoleStudent {
		t.Fatalf("identity mismatch: %+v", identity)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(testAuthConfig(), users)

	if _, err := svc.Register(context.Background(), RegisterParams{Name: "Alice", Email: "a@x.com", Password: "pw1"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _, unknownEmail := svc.Login(context.Background(), "nobody@x.com", "pw1")
	_, _, wrongPassword := svc.Login(context.Background(), "a@x.com", "wrong")

	if !errors.Is(unknownEmail, ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownEmail)
	}
	if !errors.Is(wrongPassword, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassword)
	}
}

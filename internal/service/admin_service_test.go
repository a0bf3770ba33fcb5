package service

import (
	"context"
	"errors"
	"testing"

	"github.com/KaxitJayswal/Campus-Connect-backend/internal/domain"
)

func TestApproveOrganizer(t *testing.T) {
	users := newFakeUserRepo(&domain.User{
		ID: "u1", Role: domain.RoleStudent, OrganizerStatus: domain.OrganizerStatusPending,
	})
	svc := NewAdminService(users)

	user, err := svc.ApproveOrganizer(context.Background(), "u1")
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if user.Role != domain.RoleOrganizer {
		t.Fatalf("expected organizer role, got %s", user.Role)
	}
	if user.OrganizerStatus != domain.OrganizerStatusApproved {
		t.Fatalf("expected approved status, got %s", user.OrganizerStatus)
	}
}

func TestApproveRequiresPendingApplication(t *testing.T) {
	for _, status := range []domain.OrganizerStatus{domain.OrganizerStatusNone, domain.OrganizerStatusApproved} {
		users := newFakeUserRepo(&domain.User{ID: "u1", Role: domain.RoleStudent, OrganizerStatus: status})
		svc := NewAdminService(users)

		if _, err := svc.ApproveOrganizer(context.Background(), "u1"); !errors.Is(err, ErrNoPendingApplication) {
			t.Fatalf("status %s: expected ErrNoPendingApplication, got %v", status, err)
		}
		if len(users.stateUpdates) != 0 {
			t.Fatalf("status %s: state must be unchanged", status)
		}
		if users.byID["u1"].Role != domain.RoleStudent || users.byID["u1"].OrganizerStatus != status {
			t.Fatalf("status %s: user mutated", status)
		}
	}
}

func TestRejectOrganizerResetsToNone(t *testing.T) {
	users := newFakeUserRepo(&domain.User{
		ID: "u1", Role: domain.RoleStudent, OrganizerStatus: domain.OrganizerStatusPending,
	})
	svc := NewAdminService(users)

	user, err := svc.RejectOrganizer(context.Background(), "u1")
	if err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	if user.OrganizerStatus != domain.OrganizerStatusNone {
		t.Fatalf("expected status none, got %s", user.OrganizerStatus)
	}
	if user.Role != domain.RoleStudent {
		t.Fatalf("reject must not change role, got %s", user.Role)
	}
}

func TestRejectRequiresPendingApplication(t *testing.T) {
	users := newFakeUserRepo(&domain.User{ID: "u1", OrganizerStatus: domain.OrganizerStatusNone})
	svc := NewAdminService(users)

	if _, err := svc.RejectOrganizer(context.Background(), "u1"); !errors.Is(err, ErrNoPendingApplication) {
		t.Fatalf("expected ErrNoPendingApplication, got %v", err)
	}
}

func TestAdminActionsOnMissingUser(t *testing.T) {
	svc := NewAdminService(newFakeUserRepo())

	if _, err := svc.ApproveOrganizer(context.Background(), "ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("approve: expected ErrUserNotFound, got %v", err)
	}
	if _, err := svc.RejectOrganizer(context.Background(), "ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("reject: expected ErrUserNotFound, got %v", err)
	}
}

func TestPendingOrganizersListsOnlyPending(t *testing.T) {
	users := newFakeUserRepo(
		&domain.User{ID: "u1", OrganizerStatus: domain.OrganizerStatusPending},
		&domain.User{ID: "u2", OrganizerStatus: domain.OrganizerStatusNone},
		&domain.User{ID: "u3", OrganizerStatus: domain.OrganizerStatusApproved},
	)
	svc := NewAdminService(users)

	pending, err := svc.PendingOrganizers(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != "u1" {
		t.Fatalf("expected only u1 pending, got %+v", pending)
	}
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/KaxitJayswal/Campus-Connect-backend/internal/domain"
	"github.com/KaxitJayswal/Campus-Connect-backend/internal/repository"
)

type stateUpdate struct {
	id     string
	role   domain.Role
	status domain.OrganizerStatus
}

type fakeUserRepo struct {
	byID         map[string]*domain.User
	createErr    error
	stateUpdates []stateUpdate
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{byID: make(map[string]*domain.User)}
	for _, user := range users {
		repo.byID[user.ID] = user
	}
	return repo
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	user.ID = fmt.Sprintf("user-%d", len(f.byID)+1)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, user := range f.byID {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) UpdateOrganizerState(ctx context.Context, id string, role domain.Role, status domain.OrganizerStatus) error {
	user, ok := f.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	f.stateUpdates = append(f.stateUpdates, stateUpdate{id: id, role: role, status: status})
	user.Role = role
	user.OrganizerStatus = status
	return nil
}

func (f *fakeUserRepo) ListByOrganizerStatus(ctx context.Context, status domain.OrganizerStatus) ([]domain.User, error) {
	var result []domain.User
	for _, user := range f.byID {
		if user.OrganizerStatus == status {
			result = append(result, *user)
		}
	}
	return result, nil
}

type fakeEventRepo struct {
	byID       map[string]*domain.Event
	updates    []*domain.Event
	deleted    []string
	lastFilter *repository.EventFilter
}

func newFakeEventRepo(events ...*domain.Event) *fakeEventRepo {
	repo := &fakeEventRepo{byID: make(map[string]*domain.Event)}
	for _, event := range events {
		repo.byID[event.ID] = event
	}
	return repo
}

func (f *fakeEventRepo) Create(ctx context.Context, event *domain.Event) error {
	event.ID = fmt.Sprintf("event-%d", len(f.byID)+1)
	event.CreatedAt = time.Now()
	event.UpdatedAt = event.CreatedAt
	f.byID[event.ID] = event
	return nil
}

func (f *fakeEventRepo) Update(ctx context.Context, event *domain.Event) error {
	if _, ok := f.byID[event.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *event
	f.updates = append(f.updates, &copied)
	f.byID[event.ID] = &copied
	return nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	f.deleted = append(f.deleted, id)
	delete(f.byID, id)
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	event, ok := f.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *event
	return &copied, nil
}

func (f *fakeEventRepo) GetDetail(ctx context.Context, id string) (*domain.EventDetail, error) {
	event, ok := f.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &domain.EventDetail{Event: *event, OrganizerName: "Org Name", OrganizerEmail: "org@x.com"}, nil
}

func (f *fakeEventRepo) ListWithFilter(ctx context.Context, filter repository.EventFilter) ([]domain.Event, error) {
	f.lastFilter = &filter
	var result []domain.Event
	for _, event := range f.byID {
		result = append(result, *event)
	}
	return result, nil
}

func (f *fakeEventRepo) ListByOrganizer(ctx context.Context, organizerID string) ([]domain.Event, error) {
	var result []domain.Event
	for _, event := range f.byID {
		if event.OrganizerID == organizerID {
			result = append(result, *event)
		}
	}
	return result, nil
}

type fakeSavedRepo struct {
	events *fakeEventRepo
	lists  map[string][]string
}

func newFakeSavedRepo(events *fakeEventRepo) *fakeSavedRepo {
	return &fakeSavedRepo{events: events, lists: make(map[string][]string)}
}

func (f *fakeSavedRepo) ListByUser(ctx context.Context, userID string) ([]domain.Event, error) {
	result := []domain.Event{}
	for _, eventID := range f.lists[userID] {
		if event, ok := f.events.byID[eventID]; ok {
			result = append(result, *event)
		}
	}
	return result, nil
}

func (f *fakeSavedRepo) Add(ctx context.Context, userID, eventID string) (bool, error) {
	for _, existing := range f.lists[userID] {
		if existing == eventID {
			return false, nil
		}
	}
	f.lists[userID] = append(f.lists[userID], eventID)
	return true, nil
}

func (f *fakeSavedRepo) Remove(ctx context.Context, userID, eventID string) error {
	kept := f.lists[userID][:0]
	for _, existing := range f.lists[userID] {
		if existing != eventID {
			kept = append(kept, existing)
		}
	}
	f.lists[userID] = kept
	return nil
}

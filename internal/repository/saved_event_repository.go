package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KaxitJayswal/Campus-Connect-backend/internal/domain"
)

// SavedEventRepository manages a user's ordered saved-events list. Ordering
// follows insertion time; the primary key on (user_id, event_id) makes a
// save append-exactly-once without a read-then-write race.
type SavedEventRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Event, error)
	// Add returns false when the event was already saved.
	Add(ctx context.Context, userID, eventID string) (bool, error)
	// Remove is a no-op when the event is not saved.
	Remove(ctx context.Context, userID, eventID string) error
}

type savedEventRepository struct {
	pool *pgxpool.Pool
}

// NewSavedEventRepository instantiates the repository.
func NewSavedEventRepository(pool *pgxpool.Pool) SavedEventRepository {
	return &savedEventRepository{pool: pool}
}

func (r *savedEventRepository) ListByUser(ctx context.Context, userID string) ([]domain.Event, error) {
	const query = `
        SELECT e.id, e.title, e.description, e.date, e.venue, e.college, e.category,
               e.organizer_id, e.registration_link, e.created_at, e.updated_at
        FROM saved_events se
        JOIN events e ON e.id = se.event_id
        WHERE se.user_id=$1
        ORDER BY se.saved_at`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

func (r *savedEventRepository) Add(ctx context.Context, userID, eventID string) (bool, error) {
	const query = `
        INSERT INTO saved_events (user_id, event_id)
        VALUES ($1, $2)
        ON CONFLICT DO NOTHING`

	cmd, err := r.pool.Exec(ctx, query, userID, eventID)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() == 1, nil
}

func (r *savedEventRepository) Remove(ctx context.Context, userID, eventID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM saved_events WHERE user_id=$1 AND event_id=$2`, userID, eventID)
	return err
}

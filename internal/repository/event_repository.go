package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KaxitJayswal/Campus-Connect-backend/internal/domain"
)

// EventFilter captures event listing parameters. Clauses are composed with
// logical AND; nil fields contribute nothing.
type EventFilter struct {
	College        *string
	Category       *string
	Search         *string
	DateBefore     *time.Time
	DateFrom       *time.Time
	SortDescending bool
}

// EventRepository encapsulates event persistence.
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	Update(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	GetDetail(ctx context.Context, id string) (*domain.EventDetail, error)
	ListWithFilter(ctx context.Context, filter EventFilter) ([]domain.Event, error)
	ListByOrganizer(ctx context.Context, organizerID string) ([]domain.Event, error)
}

type eventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository instantiates the repository.
func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &eventRepository{pool: pool}
}

const eventColumns = `id, title, description, date, venue, college, category, organizer_id, registration_link, created_at, updated_at`

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	const query = `
        INSERT INTO events (title, description, date, venue, college, category, organizer_id, registration_link)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		event.Title,
		event.Description,
		event.Date,
		event.Venue,
		event.College,
		event.Category,
		event.OrganizerID,
		event.RegistrationLink,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
}

func (r *eventRepository) Update(ctx context.Context, event *domain.Event) error {
	const query = `
        UPDATE events SET title=$1, description=$2, date=$3, venue=$4, college=$5,
            category=$6, registration_link=$7, updated_at=NOW()
        WHERE id=$8`
	cmd, err := r.pool.Exec(ctx, query,
		event.Title,
		event.Description,
		event.Date,
		event.Venue,
		event.College,
		event.Category,
		event.RegistrationLink,
		event.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	const query = `SELECT ` + eventColumns + ` FROM events WHERE id=$1`

	var event domain.Event
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Date,
		&event.Venue,
		&event.College,
		&event.Category,
		&event.OrganizerID,
		&event.RegistrationLink,
		&event.CreatedAt,
		&event.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &event, nil
}

// GetDetail loads an event with its organizer's public fields resolved.
func (r *eventRepository) GetDetail(ctx context.Context, id string) (*domain.EventDetail, error) {
	const query = `
        SELECT e.id, e.title, e.description, e.date, e.venue, e.college, e.category,
               e.organizer_id, e.registration_link, e.created_at, e.updated_at,
               u.name, u.email
        FROM events e
        JOIN users u ON u.id = e.organizer_id
        WHERE e.id=$1`

	var detail domain.EventDetail
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&detail.ID,
		&detail.Title,
		&detail.Description,
		&detail.Date,
		&detail.Venue,
		&detail.College,
		&detail.Category,
		&detail.OrganizerID,
		&detail.RegistrationLink,
		&detail.CreatedAt,
		&detail.UpdatedAt,
		&detail.OrganizerName,
		&detail.OrganizerEmail,
	); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *eventRepository) ListWithFilter(ctx context.Context, filter EventFilter) ([]domain.Event, error) {
	query, args := buildListQuery(filter)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

func (r *eventRepository) ListByOrganizer(ctx context.Context, organizerID string) ([]domain.Event, error) {
	const query = `SELECT ` + eventColumns + ` FROM events WHERE organizer_id=$1 ORDER BY date DESC`

	rows, err := r.pool.Query(ctx, query, organizerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

// buildListQuery accumulates filter clauses into a parameterized SELECT.
// The free-text clause searches the same fields the store indexes: title,
// description, college, category. No LIMIT is applied.
func buildListQuery(filter EventFilter) (string, []any) {
	base := `SELECT ` + eventColumns + ` FROM events`
	clauses := []string{"1=1"}
	args := []any{}

	if filter.College != nil {
		args = append(args, *filter.College)
		clauses = append(clauses, fmt.Sprintf("college=$%d", len(args)))
	}
	if filter.Category != nil {
		args = append(args, *filter.Category)
		clauses = append(clauses, fmt.Sprintf("category=$%d", len(args)))
	}
	if filter.DateBefore != nil {
		args = append(args, *filter.DateBefore)
		clauses = append(clauses, fmt.Sprintf("date < $%d", len(args)))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		clauses = append(clauses, fmt.Sprintf("date >= $%d", len(args)))
	}
	if filter.Search != nil && strings.TrimSpace(*filter.Search) != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(*filter.Search)) + "%"
		args = append(args, search)
		placeholder := fmt.Sprintf("$%d", len(args))
		clauses = append(clauses, fmt.Sprintf(
			"(LOWER(title) LIKE %s OR LOWER(description) LIKE %s OR LOWER(college) LIKE %s OR LOWER(category) LIKE %s)",
			placeholder, placeholder, placeholder, placeholder))
	}

	direction := "ASC"
	if filter.SortDescending {
		direction = "DESC"
	}

	query := fmt.Sprintf("%s WHERE %s ORDER BY date %s",
		base, strings.Join(clauses, " AND "), direction)
	return query, args
}

func scanEvents(rows pgx.Rows) ([]domain.Event, error) {
	var result []domain.Event
	for rows.Next() {
		var event domain.Event
		if err := rows.Scan(
			&event.ID,
			&event.Title,
			&event.Description,
			&event.Date,
			&event.Venue,
			&event.College,
			&event.Category,
			&event.OrganizerID,
			&event.RegistrationLink,
			&event.CreatedAt,
			&event.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, event)
	}
	return result, rows.Err()
}

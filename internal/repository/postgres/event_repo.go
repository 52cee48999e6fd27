package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eventsapi/internal/domain"
)

const eventColumns = `id, name, description, begin_enrollment_date_time, close_enrollment_date_time,
		begin_event_date_time, end_event_date_time, location, base_price, max_price,
		limit_of_enrollment, offline, free, event_status, manager_id, created_at, updated_at`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Save(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	if e.ID == 0 {
		return e, r.insert(ctx, e)
	}
	return e, r.update(ctx, e)
}

func (r *eventRepository) insert(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (name, description, begin_enrollment_date_time, close_enrollment_date_time,
			begin_event_date_time, end_event_date_time, location, base_price, max_price,
			limit_of_enrollment, offline, free, event_status, manager_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		e.Name, e.Description, e.BeginEnrollmentDateTime, e.CloseEnrollmentDateTime,
		e.BeginEventDateTime, e.EndEventDateTime, e.Location, e.BasePrice, e.MaxPrice,
		e.LimitOfEnrollment, e.Offline, e.Free, string(e.EventStatus), managerArg(e.ManagerID),
		e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
}

func (r *eventRepository) update(ctx context.Context, e *domain.Event) error {
	query := `
		UPDATE events SET name = $1, description = $2, begin_enrollment_date_time = $3,
			close_enrollment_date_time = $4, begin_event_date_time = $5, end_event_date_time = $6,
			location = $7, base_price = $8, max_price = $9, limit_of_enrollment = $10,
			offline = $11, free = $12, event_status = $13, manager_id = $14, updated_at = $15
		WHERE id = $16
	`
	result, err := r.DB.ExecContext(ctx, query,
		e.Name, e.Description, e.BeginEnrollmentDateTime, e.CloseEnrollmentDateTime,
		e.BeginEventDateTime, e.EndEventDateTime, e.Location, e.BasePrice, e.MaxPrice,
		e.LimitOfEnrollment, e.Offline, e.Free, string(e.EventStatus), managerArg(e.ManagerID),
		e.UpdatedAt, e.ID,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) FindByID(ctx context.Context, id int) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) FindAll(ctx context.Context, req domain.PageRequest) (*domain.EventPage, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&total); err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}
	// OrderBy only emits whitelisted column names.
	query := fmt.Sprintf(`SELECT %s FROM events ORDER BY %s LIMIT $1 OFFSET $2`, eventColumns, req.OrderBy())
	rows, err := r.DB.QueryContext(ctx, query, req.Size, req.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &domain.EventPage{Events: events, Total: total, Request: req}, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var status string
	var locationNull sql.NullString
	var managerNull sql.NullInt64
	err := row.Scan(
		&e.ID, &e.Name, &e.Description, &e.BeginEnrollmentDateTime, &e.CloseEnrollmentDateTime,
		&e.BeginEventDateTime, &e.EndEventDateTime, &locationNull, &e.BasePrice, &e.MaxPrice,
		&e.LimitOfEnrollment, &e.Offline, &e.Free, &status, &managerNull, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.EventStatus = domain.EventStatus(status)
	if locationNull.Valid {
		e.Location = locationNull.String
	}
	if managerNull.Valid {
		id := int(managerNull.Int64)
		e.ManagerID = &id
	}
	return e, nil
}

func managerArg(id *int) any {
	if id == nil {
		return nil
	}
	return *id
}

// Package sqlite provides repositories that keep their data in an embedded SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"

	"eventsapi/internal/domain"
)

const eventFields = `name, description, begin_enrollment_date_time, close_enrollment_date_time,
	begin_event_date_time, end_event_date_time, location, base_price, max_price, limit_of_enrollment,
	offline, free, event_status, manager_id, created_at, updated_at`

// eventRow mirrors the events table.
type eventRow struct {
	ID                      int                  `db:"id"`
	Name                    string               `db:"name"`
	Description             string               `db:"description"`
	BeginEnrollmentDateTime domain.LocalDateTime `db:"begin_enrollment_date_time"`
	CloseEnrollmentDateTime domain.LocalDateTime `db:"close_enrollment_date_time"`
	BeginEventDateTime      domain.LocalDateTime `db:"begin_event_date_time"`
	EndEventDateTime        domain.LocalDateTime `db:"end_event_date_time"`
	Location                sql.NullString       `db:"location"`
	BasePrice               int                  `db:"base_price"`
	MaxPrice                int                  `db:"max_price"`
	LimitOfEnrollment       int                  `db:"limit_of_enrollment"`
	Offline                 bool                 `db:"offline"`
	Free                    bool                 `db:"free"`
	EventStatus             string               `db:"event_status"`
	ManagerID               sql.NullInt64        `db:"manager_id"`
	CreatedAt               time.Time            `db:"created_at"`
	UpdatedAt               time.Time            `db:"updated_at"`
}

func (r eventRow) toEvent() *domain.Event {
	e := &domain.Event{
		ID:                      r.ID,
		Name:                    r.Name,
		Description:             r.Description,
		BeginEnrollmentDateTime: r.BeginEnrollmentDateTime,
		CloseEnrollmentDateTime: r.CloseEnrollmentDateTime,
		BeginEventDateTime:      r.BeginEventDateTime,
		EndEventDateTime:        r.EndEventDateTime,
		Location:                r.Location.String,
		BasePrice:               r.BasePrice,
		MaxPrice:                r.MaxPrice,
		LimitOfEnrollment:       r.LimitOfEnrollment,
		Offline:                 r.Offline,
		Free:                    r.Free,
		EventStatus:             domain.EventStatus(r.EventStatus),
		CreatedAt:               r.CreatedAt,
		UpdatedAt:               r.UpdatedAt,
	}
	if r.ManagerID.Valid {
		id := int(r.ManagerID.Int64)
		e.ManagerID = &id
	}
	return e
}

func eventArgs(e *domain.Event) []any {
	var manager any
	if e.ManagerID != nil {
		manager = *e.ManagerID
	}
	return []any{
		e.Name, e.Description, e.BeginEnrollmentDateTime, e.CloseEnrollmentDateTime,
		e.BeginEventDateTime, e.EndEventDateTime, e.Location, e.BasePrice, e.MaxPrice,
		e.LimitOfEnrollment, e.Offline, e.Free, string(e.EventStatus), manager,
	}
}

// EventRepo stores events in SQLite.
type EventRepo struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewEventRepo creates an event repository on the given database.
func NewEventRepo(db *sqlx.DB, logger *slog.Logger) *EventRepo {
	return &EventRepo{db: db, logger: logger}
}

// Save inserts the event when it has no ID yet and updates it otherwise.
func (r *EventRepo) Save(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	if e.ID == 0 {
		r.logger.DebugContext(ctx, "adding new event", "name", e.Name)
		query := fmt.Sprintf(`INSERT INTO events (%s) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, eventFields)
		args := append(eventArgs(e), e.CreatedAt, e.UpdatedAt)
		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return nil, err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, err
		}
		e.ID = int(id)
		return e, nil
	}

	r.logger.DebugContext(ctx, "updating event", "id", e.ID)
	query := `UPDATE events SET name = ?, description = ?, begin_enrollment_date_time = ?,
		close_enrollment_date_time = ?, begin_event_date_time = ?, end_event_date_time = ?,
		location = ?, base_price = ?, max_price = ?, limit_of_enrollment = ?, offline = ?, free = ?,
		event_status = ?, manager_id = ?, updated_at = ? WHERE id = ?`
	args := append(eventArgs(e), e.UpdatedAt, e.ID)
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	num, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if num == 0 {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

// FindByID returns the event with the given ID.
func (r *EventRepo) FindByID(ctx context.Context, id int) (*domain.Event, error) {
	var row eventRow
	query := fmt.Sprintf(`SELECT id, %s FROM events WHERE id = ?`, eventFields)
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return row.toEvent(), nil
}

// FindAll returns one page of events ordered as requested.
func (r *EventRepo) FindAll(ctx context.Context, req domain.PageRequest) (*domain.EventPage, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM events`); err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}
	var rows []eventRow
	query := fmt.Sprintf(`SELECT id, %s FROM events ORDER BY %s LIMIT ? OFFSET ?`, eventFields, req.OrderBy())
	if err := r.db.SelectContext(ctx, &rows, query, req.Size, req.Offset()); err != nil {
		return nil, err
	}
	events := make([]*domain.Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, row.toEvent())
	}
	return &domain.EventPage{Events: events, Total: total, Request: req}, nil
}

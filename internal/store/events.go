package store

import (
	"context"
	"database/sql"
	"time"

	"deptsite/internal/model"
)

const eventColumns = `id, title, location, starts_at, ends_at, registration_link,
	description_html, is_published, created_at, updated_at`

func scanEvent(row rowScanner) (model.Event, error) {
	var e model.Event
	err := row.Scan(&e.ID, &e.Title, &e.Location, &e.StartsAt, &e.EndsAt,
		&e.RegistrationLink, &e.DescriptionHTML, &e.IsPublished, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

func (q *Queries) collectEvents(ctx context.Context, query string, args ...any) ([]model.Event, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// GetEvent returns the event with the given id.
func (q *Queries) GetEvent(ctx context.Context, id int64) (model.Event, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = ?`, id)
	return scanEvent(row)
}

// ListPublishedEvents returns published events, soonest first.
func (q *Queries) ListPublishedEvents(ctx context.Context, limit int64) ([]model.Event, error) {
	return q.collectEvents(ctx,
		`SELECT `+eventColumns+` FROM events
		 WHERE is_published = TRUE ORDER BY starts_at LIMIT ?`, limit)
}

// CountEvents returns the total number of events.
func (q *Queries) CountEvents(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&n)
	return n, err
}

// ListEvents returns a page of events ordered by start time, newest first.
func (q *Queries) ListEvents(ctx context.Context, limit, offset int64) ([]model.Event, error) {
	return q.collectEvents(ctx,
		`SELECT `+eventColumns+` FROM events
		 ORDER BY starts_at DESC LIMIT ? OFFSET ?`, limit, offset)
}

// CreateEventParams holds the fields for CreateEvent.
type CreateEventParams struct {
	Title            string
	Location         string
	StartsAt         time.Time
	EndsAt           sql.NullTime
	RegistrationLink string
	DescriptionHTML  string
	IsPublished      bool
}

// CreateEvent inserts a new event.
func (q *Queries) CreateEvent(ctx context.Context, arg CreateEventParams) (model.Event, error) {
	now := time.Now().UTC()
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO events (title, location, starts_at, ends_at, registration_link,
		 description_html, is_published, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		arg.Title, arg.Location, arg.StartsAt, arg.EndsAt, arg.RegistrationLink,
		arg.DescriptionHTML, arg.IsPublished, now, now)
	if err != nil {
		return model.Event{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Event{}, err
	}
	return q.GetEvent(ctx, id)
}

// UpdateEventParams holds the fields for UpdateEvent.
type UpdateEventParams struct {
	ID               int64
	Title            string
	Location         string
	StartsAt         time.Time
	EndsAt           sql.NullTime
	RegistrationLink string
	DescriptionHTML  string
	IsPublished      bool
}

// UpdateEvent updates an event.
func (q *Queries) UpdateEvent(ctx context.Context, arg UpdateEventParams) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE events SET title = ?, location = ?, starts_at = ?, ends_at = ?,
		 registration_link = ?, description_html = ?, is_published = ?, updated_at = ?
		 WHERE id = ?`,
		arg.Title, arg.Location, arg.StartsAt, arg.EndsAt, arg.RegistrationLink,
		arg.DescriptionHTML, arg.IsPublished, time.Now().UTC(), arg.ID)
	return err
}

// DeleteEvent removes an event.
func (q *Queries) DeleteEvent(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	return err
}

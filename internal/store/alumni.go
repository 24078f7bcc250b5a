package store

import (
	"context"
	"time"

	"deptsite/internal/model"
)

const alumniColumns = `id, name, graduation_year, current_position, organization,
	photo_url, profile_html, is_featured, created_at, updated_at`

func scanAlumni(row rowScanner) (model.Alumni, error) {
	var a model.Alumni
	err := row.Scan(&a.ID, &a.Name, &a.GraduationYear, &a.CurrentPosition,
		&a.Organization, &a.PhotoURL, &a.ProfileHTML, &a.IsFeatured,
		&a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func (q *Queries) collectAlumni(ctx context.Context, query string, args ...any) ([]model.Alumni, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var alumni []model.Alumni
	for rows.Next() {
		a, err := scanAlumni(rows)
		if err != nil {
			return nil, err
		}
		alumni = append(alumni, a)
	}
	return alumni, rows.Err()
}

// GetAlumni returns the alumni record with the given id.
func (q *Queries) GetAlumni(ctx context.Context, id int64) (model.Alumni, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+alumniColumns+` FROM alumni WHERE id = ?`, id)
	return scanAlumni(row)
}

// ListAllAlumni returns every alumni record, most recent graduates first.
func (q *Queries) ListAllAlumni(ctx context.Context) ([]model.Alumni, error) {
	return q.collectAlumni(ctx,
		`SELECT `+alumniColumns+` FROM alumni
		 ORDER BY graduation_year DESC, name`)
}

// CountAlumni returns the total number of alumni records.
func (q *Queries) CountAlumni(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM alumni`).Scan(&n)
	return n, err
}

// ListAlumni returns a page of alumni, most recent graduates first.
func (q *Queries) ListAlumni(ctx context.Context, limit, offset int64) ([]model.Alumni, error) {
	return q.collectAlumni(ctx,
		`SELECT `+alumniColumns+` FROM alumni
		 ORDER BY graduation_year DESC, name LIMIT ? OFFSET ?`, limit, offset)
}

// CreateAlumniParams holds the fields for CreateAlumni.
type CreateAlumniParams struct {
	Name            string
	GraduationYear  string
	CurrentPosition string
	Organization    string
	PhotoURL        string
	ProfileHTML     string
	IsFeatured      bool
}

// CreateAlumni inserts a new alumni record.
func (q *Queries) CreateAlumni(ctx context.Context, arg CreateAlumniParams) (model.Alumni, error) {
	now := time.Now().UTC()
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO alumni (name, graduation_year, current_position, organization,
		 photo_url, profile_html, is_featured, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		arg.Name, arg.GraduationYear, arg.CurrentPosition, arg.Organization,
		arg.PhotoURL, arg.ProfileHTML, arg.IsFeatured, now, now)
	if err != nil {
		return model.Alumni{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Alumni{}, err
	}
	return q.GetAlumni(ctx, id)
}

// UpdateAlumniParams holds the fields for UpdateAlumni.
type UpdateAlumniParams struct {
	ID              int64
	Name            string
	GraduationYear  string
	CurrentPosition string
	Organization    string
	PhotoURL        string
	ProfileHTML     string
	IsFeatured      bool
}

// UpdateAlumni updates an alumni record.
func (q *Queries) UpdateAlumni(ctx context.Context, arg UpdateAlumniParams) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE alumni SET name = ?, graduation_year = ?, current_position = ?,
		 organization = ?, photo_url = ?, profile_html = ?, is_featured = ?,
		 updated_at = ? WHERE id = ?`,
		arg.Name, arg.GraduationYear, arg.CurrentPosition, arg.Organization,
		arg.PhotoURL, arg.ProfileHTML, arg.IsFeatured, time.Now().UTC(), arg.ID)
	return err
}

// DeleteAlumni removes an alumni record.
func (q *Queries) DeleteAlumni(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM alumni WHERE id = ?`, id)
	return err
}

package store

import (
	"context"
	"time"

	"deptsite/internal/model"
)

const facultyColumns = `id, name, designation, display_order, specialization, email,
	phone, photo_url, bio_html, is_published, created_at, updated_at`

func scanFaculty(row rowScanner) (model.Faculty, error) {
	var f model.Faculty
	err := row.Scan(&f.ID, &f.Name, &f.Designation, &f.DisplayOrder, &f.Specialization,
		&f.Email, &f.Phone, &f.PhotoURL, &f.BioHTML, &f.IsPublished, &f.CreatedAt, &f.UpdatedAt)
	return f, err
}

func (q *Queries) collectFaculty(ctx context.Context, query string, args ...any) ([]model.Faculty, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var faculty []model.Faculty
	for rows.Next() {
		f, err := scanFaculty(rows)
		if err != nil {
			return nil, err
		}
		faculty = append(faculty, f)
	}
	return faculty, rows.Err()
}

// GetFaculty returns the faculty member with the given id.
func (q *Queries) GetFaculty(ctx context.Context, id int64) (model.Faculty, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+facultyColumns+` FROM faculty WHERE id = ?`, id)
	return scanFaculty(row)
}

// ListPublishedFaculty returns published faculty ordered by display_order.
func (q *Queries) ListPublishedFaculty(ctx context.Context) ([]model.Faculty, error) {
	return q.collectFaculty(ctx,
		`SELECT `+facultyColumns+` FROM faculty
		 WHERE is_published = TRUE ORDER BY display_order, id`)
}

// CountFaculty returns the total number of faculty records.
func (q *Queries) CountFaculty(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM faculty`).Scan(&n)
	return n, err
}

// ListFaculty returns a page of faculty ordered by display_order.
func (q *Queries) ListFaculty(ctx context.Context, limit, offset int64) ([]model.Faculty, error) {
	return q.collectFaculty(ctx,
		`SELECT `+facultyColumns+` FROM faculty
		 ORDER BY display_order, id LIMIT ? OFFSET ?`, limit, offset)
}

// CreateFacultyParams holds the fields for CreateFaculty.
type CreateFacultyParams struct {
	Name           string
	Designation    string
	DisplayOrder   int64
	Specialization string
	Email          string
	Phone          string
	PhotoURL       string
	BioHTML        string
	IsPublished    bool
}

// CreateFaculty inserts a new faculty member.
func (q *Queries) CreateFaculty(ctx context.Context, arg CreateFacultyParams) (model.Faculty, error) {
	now := time.Now().UTC()
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO faculty (name, designation, display_order, specialization, email,
		 phone, photo_url, bio_html, is_published, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		arg.Name, arg.Designation, arg.DisplayOrder, arg.Specialization, arg.Email,
		arg.Phone, arg.PhotoURL, arg.BioHTML, arg.IsPublished, now, now)
	if err != nil {
		return model.Faculty{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Faculty{}, err
	}
	return q.GetFaculty(ctx, id)
}

// UpdateFacultyParams holds the fields for UpdateFaculty.
type UpdateFacultyParams struct {
	ID             int64
	Name           string
	Designation    string
	DisplayOrder   int64
	Specialization string
	Email          string
	Phone          string
	PhotoURL       string
	BioHTML        string
	IsPublished    bool
}

// UpdateFaculty updates a faculty member.
func (q *Queries) UpdateFaculty(ctx context.Context, arg UpdateFacultyParams) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE faculty SET name = ?, designation = ?, display_order = ?,
		 specialization = ?, email = ?, phone = ?, photo_url = ?, bio_html = ?,
		 is_published = ?, updated_at = ? WHERE id = ?`,
		arg.Name, arg.Designation, arg.DisplayOrder, arg.Specialization, arg.Email,
		arg.Phone, arg.PhotoURL, arg.BioHTML, arg.IsPublished, time.Now().UTC(), arg.ID)
	return err
}

// DeleteFaculty removes a faculty member.
func (q *Queries) DeleteFaculty(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM faculty WHERE id = ?`, id)
	return err
}

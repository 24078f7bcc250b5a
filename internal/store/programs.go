package store

import (
	"context"
	"time"

	"deptsite/internal/model"
)

const programColumns = `id, level, name, overview_html, eligibility, duration,
	is_published, created_at, updated_at`

func scanProgram(row rowScanner) (model.Program, error) {
	var p model.Program
	err := row.Scan(&p.ID, &p.Level, &p.Name, &p.OverviewHTML, &p.Eligibility,
		&p.Duration, &p.IsPublished, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (q *Queries) collectPrograms(ctx context.Context, query string, args ...any) ([]model.Program, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var programs []model.Program
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, err
		}
		programs = append(programs, p)
	}
	return programs, rows.Err()
}

// GetProgram returns the program with the given id.
func (q *Queries) GetProgram(ctx context.Context, id int64) (model.Program, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+programColumns+` FROM programs WHERE id = ?`, id)
	return scanProgram(row)
}

// ListPublishedProgramsByLevel returns published programs at one level,
// ordered by name.
func (q *Queries) ListPublishedProgramsByLevel(ctx context.Context, level string) ([]model.Program, error) {
	return q.collectPrograms(ctx,
		`SELECT `+programColumns+` FROM programs
		 WHERE is_published = TRUE AND level = ? ORDER BY name`, level)
}

// CountPrograms returns the total number of programs.
func (q *Queries) CountPrograms(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM programs`).Scan(&n)
	return n, err
}

// ListPrograms returns a page of programs ordered by level then name.
func (q *Queries) ListPrograms(ctx context.Context, limit, offset int64) ([]model.Program, error) {
	return q.collectPrograms(ctx,
		`SELECT `+programColumns+` FROM programs
		 ORDER BY level, name LIMIT ? OFFSET ?`, limit, offset)
}

// CreateProgramParams holds the fields for CreateProgram.
type CreateProgramParams struct {
	Level        string
	Name         string
	OverviewHTML string
	Eligibility  string
	Duration     string
	IsPublished  bool
}

// CreateProgram inserts a new program.
func (q *Queries) CreateProgram(ctx context.Context, arg CreateProgramParams) (model.Program, error) {
	now := time.Now().UTC()
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO programs (level, name, overview_html, eligibility, duration,
		 is_published, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		arg.Level, arg.Name, arg.OverviewHTML, arg.Eligibility, arg.Duration,
		arg.IsPublished, now, now)
	if err != nil {
		return model.Program{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Program{}, err
	}
	return q.GetProgram(ctx, id)
}

// UpdateProgramParams holds the fields for UpdateProgram.
type UpdateProgramParams struct {
	ID           int64
	Level        string
	Name         string
	OverviewHTML string
	Eligibility  string
	Duration     string
	IsPublished  bool
}

// UpdateProgram updates a program.
func (q *Queries) UpdateProgram(ctx context.Context, arg UpdateProgramParams) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE programs SET level = ?, name = ?, overview_html = ?, eligibility = ?,
		 duration = ?, is_published = ?, updated_at = ? WHERE id = ?`,
		arg.Level, arg.Name, arg.OverviewHTML, arg.Eligibility, arg.Duration,
		arg.IsPublished, time.Now().UTC(), arg.ID)
	return err
}

// DeleteProgram removes a program.
func (q *Queries) DeleteProgram(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM programs WHERE id = ?`, id)
	return err
}

package store

import (
	"context"
	"time"

	"deptsite/internal/model"
)

const fundedProjectColumns = `id, title, sponsor, amount, duration, pi, summary,
	is_published, created_at, updated_at`

func scanFundedProject(row rowScanner) (model.FundedProject, error) {
	var p model.FundedProject
	err := row.Scan(&p.ID, &p.Title, &p.Sponsor, &p.Amount, &p.Duration, &p.PI,
		&p.Summary, &p.IsPublished, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (q *Queries) collectFundedProjects(ctx context.Context, query string, args ...any) ([]model.FundedProject, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []model.FundedProject
	for rows.Next() {
		p, err := scanFundedProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// GetFundedProject returns the funded project with the given id.
func (q *Queries) GetFundedProject(ctx context.Context, id int64) (model.FundedProject, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+fundedProjectColumns+` FROM funded_projects WHERE id = ?`, id)
	return scanFundedProject(row)
}

// ListPublishedFundedProjects returns published funded projects, newest first.
func (q *Queries) ListPublishedFundedProjects(ctx context.Context) ([]model.FundedProject, error) {
	return q.collectFundedProjects(ctx,
		`SELECT `+fundedProjectColumns+` FROM funded_projects
		 WHERE is_published = TRUE ORDER BY created_at DESC`)
}

// CountFundedProjects returns the total number of funded projects.
func (q *Queries) CountFundedProjects(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM funded_projects`).Scan(&n)
	return n, err
}

// ListFundedProjects returns a page of funded projects, newest first.
func (q *Queries) ListFundedProjects(ctx context.Context, limit, offset int64) ([]model.FundedProject, error) {
	return q.collectFundedProjects(ctx,
		`SELECT `+fundedProjectColumns+` FROM funded_projects
		 ORDER BY created_at DESC LIMIT ? OFFSET ?`, limit, offset)
}

// CreateFundedProjectParams holds the fields for CreateFundedProject.
type CreateFundedProjectParams struct {
	Title       string
	Sponsor     string
	Amount      string
	Duration    string
	PI          string
	Summary     string
	IsPublished bool
}

// CreateFundedProject inserts a new funded project.
func (q *Queries) CreateFundedProject(ctx context.Context, arg CreateFundedProjectParams) (model.FundedProject, error) {
	now := time.Now().UTC()
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO funded_projects (title, sponsor, amount, duration, pi, summary,
		 is_published, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		arg.Title, arg.Sponsor, arg.Amount, arg.Duration, arg.PI, arg.Summary,
		arg.IsPublished, now, now)
	if err != nil {
		return model.FundedProject{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.FundedProject{}, err
	}
	return q.GetFundedProject(ctx, id)
}

// UpdateFundedProjectParams holds the fields for UpdateFundedProject.
type UpdateFundedProjectParams struct {
	ID          int64
	Title       string
	Sponsor     string
	Amount      string
	Duration    string
	PI          string
	Summary     string
	IsPublished bool
}

// UpdateFundedProject updates a funded project.
func (q *Queries) UpdateFundedProject(ctx context.Context, arg UpdateFundedProjectParams) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE funded_projects SET title = ?, sponsor = ?, amount = ?, duration = ?,
		 pi = ?, summary = ?, is_published = ?, updated_at = ? WHERE id = ?`,
		arg.Title, arg.Sponsor, arg.Amount, arg.Duration, arg.PI, arg.Summary,
		arg.IsPublished, time.Now().UTC(), arg.ID)
	return err
}

// DeleteFundedProject removes a funded project.
func (q *Queries) DeleteFundedProject(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM funded_projects WHERE id = ?`, id)
	return err
}

package store

import (
	"context"
	"time"

	"deptsite/internal/model"
)

const newsletterColumns = `id, title, issue, published_on, pdf_url, is_published,
	created_at, updated_at`

func scanNewsletter(row rowScanner) (model.Newsletter, error) {
	var n model.Newsletter
	err := row.Scan(&n.ID, &n.Title, &n.Issue, &n.PublishedOn, &n.PDFURL,
		&n.IsPublished, &n.CreatedAt, &n.UpdatedAt)
	return n, err
}

func (q *Queries) collectNewsletters(ctx context.Context, query string, args ...any) ([]model.Newsletter, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Newsletter
	for rows.Next() {
		n, err := scanNewsletter(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

// GetNewsletter returns the newsletter with the given id.
func (q *Queries) GetNewsletter(ctx context.Context, id int64) (model.Newsletter, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+newsletterColumns+` FROM newsletters WHERE id = ?`, id)
	return scanNewsletter(row)
}

// ListPublishedNewsletters returns published newsletters, most recent first.
func (q *Queries) ListPublishedNewsletters(ctx context.Context) ([]model.Newsletter, error) {
	return q.collectNewsletters(ctx,
		`SELECT `+newsletterColumns+` FROM newsletters
		 WHERE is_published = TRUE ORDER BY published_on DESC`)
}

// CountNewsletters returns the total number of newsletters.
func (q *Queries) CountNewsletters(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM newsletters`).Scan(&n)
	return n, err
}

// ListNewsletters returns a page of newsletters, most recent first.
func (q *Queries) ListNewsletters(ctx context.Context, limit, offset int64) ([]model.Newsletter, error) {
	return q.collectNewsletters(ctx,
		`SELECT `+newsletterColumns+` FROM newsletters
		 ORDER BY published_on DESC LIMIT ? OFFSET ?`, limit, offset)
}

// CreateNewsletterParams holds the fields for CreateNewsletter.
type CreateNewsletterParams struct {
	Title       string
	Issue       string
	PublishedOn time.Time
	PDFURL      string
	IsPublished bool
}

// CreateNewsletter inserts a new newsletter.
func (q *Queries) CreateNewsletter(ctx context.Context, arg CreateNewsletterParams) (model.Newsletter, error) {
	now := time.Now().UTC()
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO newsletters (title, issue, published_on, pdf_url, is_published,
		 created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		arg.Title, arg.Issue, arg.PublishedOn, arg.PDFURL, arg.IsPublished, now, now)
	if err != nil {
		return model.Newsletter{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Newsletter{}, err
	}
	return q.GetNewsletter(ctx, id)
}

// UpdateNewsletterParams holds the fields for UpdateNewsletter.
type UpdateNewsletterParams struct {
	ID          int64
	Title       string
	Issue       string
	PublishedOn time.Time
	PDFURL      string
	IsPublished bool
}

// UpdateNewsletter updates a newsletter.
func (q *Queries) UpdateNewsletter(ctx context.Context, arg UpdateNewsletterParams) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE newsletters SET title = ?, issue = ?, published_on = ?, pdf_url = ?,
		 is_published = ?, updated_at = ? WHERE id = ?`,
		arg.Title, arg.Issue, arg.PublishedOn, arg.PDFURL, arg.IsPublished,
		time.Now().UTC(), arg.ID)
	return err
}

// DeleteNewsletter removes a newsletter.
func (q *Queries) DeleteNewsletter(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM newsletters WHERE id = ?`, id)
	return err
}

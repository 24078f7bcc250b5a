package store

import (
	"context"
	"time"

	"deptsite/internal/model"
)

const newsColumns = `id, title, slug, summary, body_html, cover_image_url,
	published_on, is_published, created_at, updated_at`

func scanNews(row rowScanner) (model.News, error) {
	var n model.News
	err := row.Scan(&n.ID, &n.Title, &n.Slug, &n.Summary, &n.BodyHTML, &n.CoverImageURL,
		&n.PublishedOn, &n.IsPublished, &n.CreatedAt, &n.UpdatedAt)
	return n, err
}

func (q *Queries) collectNews(ctx context.Context, query string, args ...any) ([]model.News, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.News
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

// GetNews returns the news item with the given id.
func (q *Queries) GetNews(ctx context.Context, id int64) (model.News, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+newsColumns+` FROM news WHERE id = ?`, id)
	return scanNews(row)
}

// GetPublishedNewsBySlug returns a published news item by slug.
func (q *Queries) GetPublishedNewsBySlug(ctx context.Context, slug string) (model.News, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+newsColumns+` FROM news WHERE slug = ? AND is_published = TRUE`, slug)
	return scanNews(row)
}

// ListPublishedNews returns published news, most recent first.
func (q *Queries) ListPublishedNews(ctx context.Context, limit int64) ([]model.News, error) {
	return q.collectNews(ctx,
		`SELECT `+newsColumns+` FROM news
		 WHERE is_published = TRUE ORDER BY published_on DESC LIMIT ?`, limit)
}

// CountNews returns the total number of news items.
func (q *Queries) CountNews(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM news`).Scan(&n)
	return n, err
}

// ListNews returns a page of news ordered by publication date, newest first.
func (q *Queries) ListNews(ctx context.Context, limit, offset int64) ([]model.News, error) {
	return q.collectNews(ctx,
		`SELECT `+newsColumns+` FROM news
		 ORDER BY published_on DESC LIMIT ? OFFSET ?`, limit, offset)
}

// CreateNewsParams holds the fields for CreateNews.
type CreateNewsParams struct {
	Title         string
	Slug          string
	Summary       string
	BodyHTML      string
	CoverImageURL string
	PublishedOn   time.Time
	IsPublished   bool
}

// CreateNews inserts a new news item.
func (q *Queries) CreateNews(ctx context.Context, arg CreateNewsParams) (model.News, error) {
	now := time.Now().UTC()
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO news (title, slug, summary, body_html, cover_image_url,
		 published_on, is_published, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		arg.Title, arg.Slug, arg.Summary, arg.BodyHTML, arg.CoverImageURL,
		arg.PublishedOn, arg.IsPublished, now, now)
	if err != nil {
		return model.News{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.News{}, err
	}
	return q.GetNews(ctx, id)
}

// UpdateNewsParams holds the fields for UpdateNews.
type UpdateNewsParams struct {
	ID            int64
	Title         string
	Slug          string
	Summary       string
	BodyHTML      string
	CoverImageURL string
	PublishedOn   time.Time
	IsPublished   bool
}

// UpdateNews updates a news item.
func (q *Queries) UpdateNews(ctx context.Context, arg UpdateNewsParams) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE news SET title = ?, slug = ?, summary = ?, body_html = ?,
		 cover_image_url = ?, published_on = ?, is_published = ?, updated_at = ?
		 WHERE id = ?`,
		arg.Title, arg.Slug, arg.Summary, arg.BodyHTML, arg.CoverImageURL,
		arg.PublishedOn, arg.IsPublished, time.Now().UTC(), arg.ID)
	return err
}

// DeleteNews removes a news item.
func (q *Queries) DeleteNews(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM news WHERE id = ?`, id)
	return err
}

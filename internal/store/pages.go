package store

import (
	"context"
	"time"

	"deptsite/internal/model"
)

const pageColumns = `id, slug, title, body_html, header_image_url, header_subtitle,
	is_published, show_in_menu, created_at, updated_at`

func scanPage(row rowScanner) (model.Page, error) {
	var p model.Page
	err := row.Scan(&p.ID, &p.Slug, &p.Title, &p.BodyHTML, &p.HeaderImageURL,
		&p.HeaderSubtitle, &p.IsPublished, &p.ShowInMenu, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (q *Queries) collectPages(ctx context.Context, query string, args ...any) ([]model.Page, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []model.Page
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

// GetPage returns the page with the given id.
func (q *Queries) GetPage(ctx context.Context, id int64) (model.Page, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+pageColumns+` FROM pages WHERE id = ?`, id)
	return scanPage(row)
}

// GetPublishedPageBySlug returns a published page by slug.
func (q *Queries) GetPublishedPageBySlug(ctx context.Context, slug string) (model.Page, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+pageColumns+` FROM pages WHERE slug = ? AND is_published = TRUE`, slug)
	return scanPage(row)
}

// ListMenuPages returns published pages flagged for the navigation menu.
func (q *Queries) ListMenuPages(ctx context.Context) ([]model.Page, error) {
	return q.collectPages(ctx,
		`SELECT `+pageColumns+` FROM pages
		 WHERE is_published = TRUE AND show_in_menu = TRUE ORDER BY title`)
}

// CountPages returns the total number of pages.
func (q *Queries) CountPages(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pages`).Scan(&n)
	return n, err
}

// ListPages returns a page of pages ordered by slug.
func (q *Queries) ListPages(ctx context.Context, limit, offset int64) ([]model.Page, error) {
	return q.collectPages(ctx,
		`SELECT `+pageColumns+` FROM pages ORDER BY slug LIMIT ? OFFSET ?`, limit, offset)
}

// CreatePageParams holds the fields for CreatePage.
type CreatePageParams struct {
	Slug           string
	Title          string
	BodyHTML       string
	HeaderImageURL string
	HeaderSubtitle string
	IsPublished    bool
	ShowInMenu     bool
}

// CreatePage inserts a new page.
func (q *Queries) CreatePage(ctx context.Context, arg CreatePageParams) (model.Page, error) {
	now := time.Now().UTC()
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO pages (slug, title, body_html, header_image_url, header_subtitle,
		 is_published, show_in_menu, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		arg.Slug, arg.Title, arg.BodyHTML, arg.HeaderImageURL, arg.HeaderSubtitle,
		arg.IsPublished, arg.ShowInMenu, now, now)
	if err != nil {
		return model.Page{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Page{}, err
	}
	return q.GetPage(ctx, id)
}

// UpdatePageParams holds the fields for UpdatePage.
type UpdatePageParams struct {
	ID             int64
	Slug           string
	Title          string
	BodyHTML       string
	HeaderImageURL string
	HeaderSubtitle string
	IsPublished    bool
	ShowInMenu     bool
}

// UpdatePage updates a page.
func (q *Queries) UpdatePage(ctx context.Context, arg UpdatePageParams) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE pages SET slug = ?, title = ?, body_html = ?, header_image_url = ?,
		 header_subtitle = ?, is_published = ?, show_in_menu = ?, updated_at = ?
		 WHERE id = ?`,
		arg.Slug, arg.Title, arg.BodyHTML, arg.HeaderImageURL, arg.HeaderSubtitle,
		arg.IsPublished, arg.ShowInMenu, time.Now().UTC(), arg.ID)
	return err
}

// DeletePage removes a page.
func (q *Queries) DeletePage(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM pages WHERE id = ?`, id)
	return err
}

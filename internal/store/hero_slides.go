package store

import (
	"context"
	"time"

	"deptsite/internal/model"
)

const heroSlideColumns = `id, title, subtitle, image_url, cta_text, cta_url,
	position, is_active, created_at, updated_at`

func scanHeroSlide(row rowScanner) (model.HeroSlide, error) {
	var s model.HeroSlide
	err := row.Scan(&s.ID, &s.Title, &s.Subtitle, &s.ImageURL, &s.CTAText,
		&s.CTAURL, &s.Position, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func (q *Queries) collectHeroSlides(ctx context.Context, query string, args ...any) ([]model.HeroSlide, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slides []model.HeroSlide
	for rows.Next() {
		s, err := scanHeroSlide(rows)
		if err != nil {
			return nil, err
		}
		slides = append(slides, s)
	}
	return slides, rows.Err()
}

// GetHeroSlide returns the slide with the given id.
func (q *Queries) GetHeroSlide(ctx context.Context, id int64) (model.HeroSlide, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+heroSlideColumns+` FROM hero_slides WHERE id = ?`, id)
	return scanHeroSlide(row)
}

// ListActiveHeroSlides returns active slides by position, newest first within
// the same position.
func (q *Queries) ListActiveHeroSlides(ctx context.Context) ([]model.HeroSlide, error) {
	return q.collectHeroSlides(ctx,
		`SELECT `+heroSlideColumns+` FROM hero_slides
		 WHERE is_active = TRUE ORDER BY position, created_at DESC`)
}

// CountHeroSlides returns the total number of slides.
func (q *Queries) CountHeroSlides(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM hero_slides`).Scan(&n)
	return n, err
}

// ListHeroSlides returns a page of slides ordered by position.
func (q *Queries) ListHeroSlides(ctx context.Context, limit, offset int64) ([]model.HeroSlide, error) {
	return q.collectHeroSlides(ctx,
		`SELECT `+heroSlideColumns+` FROM hero_slides
		 ORDER BY position, id LIMIT ? OFFSET ?`, limit, offset)
}

// CreateHeroSlideParams holds the fields for CreateHeroSlide.
type CreateHeroSlideParams struct {
	Title    string
	Subtitle string
	ImageURL string
	CTAText  string
	CTAURL   string
	Position int64
	IsActive bool
}

// CreateHeroSlide inserts a new slide.
func (q *Queries) CreateHeroSlide(ctx context.Context, arg CreateHeroSlideParams) (model.HeroSlide, error) {
	now := time.Now().UTC()
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO hero_slides (title, subtitle, image_url, cta_text, cta_url,
		 position, is_active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		arg.Title, arg.Subtitle, arg.ImageURL, arg.CTAText, arg.CTAURL,
		arg.Position, arg.IsActive, now, now)
	if err != nil {
		return model.HeroSlide{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.HeroSlide{}, err
	}
	return q.GetHeroSlide(ctx, id)
}

// UpdateHeroSlideParams holds the fields for UpdateHeroSlide.
type UpdateHeroSlideParams struct {
	ID       int64
	Title    string
	Subtitle string
	ImageURL string
	CTAText  string
	CTAURL   string
	Position int64
	IsActive bool
}

// UpdateHeroSlide updates a slide.
func (q *Queries) UpdateHeroSlide(ctx context.Context, arg UpdateHeroSlideParams) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE hero_slides SET title = ?, subtitle = ?, image_url = ?, cta_text = ?,
		 cta_url = ?, position = ?, is_active = ?, updated_at = ? WHERE id = ?`,
		arg.Title, arg.Subtitle, arg.ImageURL, arg.CTAText, arg.CTAURL,
		arg.Position, arg.IsActive, time.Now().UTC(), arg.ID)
	return err
}

// DeleteHeroSlide removes a slide.
func (q *Queries) DeleteHeroSlide(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM hero_slides WHERE id = ?`, id)
	return err
}

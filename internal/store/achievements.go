package store

import (
	"context"
	"time"

	"deptsite/internal/model"
)

const achievementColumns = `id, title, category, year, description, is_featured,
	is_published, created_at, updated_at`

func scanAchievement(row rowScanner) (model.Achievement, error) {
	var a model.Achievement
	err := row.Scan(&a.ID, &a.Title, &a.Category, &a.Year, &a.Description,
		&a.IsFeatured, &a.IsPublished, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func (q *Queries) collectAchievements(ctx context.Context, query string, args ...any) ([]model.Achievement, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Achievement
	for rows.Next() {
		a, err := scanAchievement(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

// GetAchievement returns the achievement with the given id.
func (q *Queries) GetAchievement(ctx context.Context, id int64) (model.Achievement, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+achievementColumns+` FROM achievements WHERE id = ?`, id)
	return scanAchievement(row)
}

// ListPublishedAchievements returns published achievements, featured first,
// then newest first.
func (q *Queries) ListPublishedAchievements(ctx context.Context, limit int64) ([]model.Achievement, error) {
	return q.collectAchievements(ctx,
		`SELECT `+achievementColumns+` FROM achievements
		 WHERE is_published = TRUE
		 ORDER BY is_featured DESC, created_at DESC LIMIT ?`, limit)
}

// CountAchievements returns the total number of achievements.
func (q *Queries) CountAchievements(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM achievements`).Scan(&n)
	return n, err
}

// ListAchievements returns a page of achievements, newest first.
func (q *Queries) ListAchievements(ctx context.Context, limit, offset int64) ([]model.Achievement, error) {
	return q.collectAchievements(ctx,
		`SELECT `+achievementColumns+` FROM achievements
		 ORDER BY created_at DESC LIMIT ? OFFSET ?`, limit, offset)
}

// CreateAchievementParams holds the fields for CreateAchievement.
type CreateAchievementParams struct {
	Title       string
	Category    string
	Year        string
	Description string
	IsFeatured  bool
	IsPublished bool
}

// CreateAchievement inserts a new achievement.
func (q *Queries) CreateAchievement(ctx context.Context, arg CreateAchievementParams) (model.Achievement, error) {
	now := time.Now().UTC()
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO achievements (title, category, year, description, is_featured,
		 is_published, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		arg.Title, arg.Category, arg.Year, arg.Description, arg.IsFeatured,
		arg.IsPublished, now, now)
	if err != nil {
		return model.Achievement{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Achievement{}, err
	}
	return q.GetAchievement(ctx, id)
}

// UpdateAchievementParams holds the fields for UpdateAchievement.
type UpdateAchievementParams struct {
	ID          int64
	Title       string
	Category    string
	Year        string
	Description string
	IsFeatured  bool
	IsPublished bool
}

// UpdateAchievement updates an achievement.
func (q *Queries) UpdateAchievement(ctx context.Context, arg UpdateAchievementParams) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE achievements SET title = ?, category = ?, year = ?, description = ?,
		 is_featured = ?, is_published = ?, updated_at = ? WHERE id = ?`,
		arg.Title, arg.Category, arg.Year, arg.Description, arg.IsFeatured,
		arg.IsPublished, time.Now().UTC(), arg.ID)
	return err
}

// DeleteAchievement removes an achievement.
func (q *Queries) DeleteAchievement(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM achievements WHERE id = ?`, id)
	return err
}

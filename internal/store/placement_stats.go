package store

import (
	"context"
	"time"

	"deptsite/internal/model"
)

const placementStatColumns = `id, label, value, is_visible, created_at, updated_at`

func scanPlacementStat(row rowScanner) (model.PlacementStat, error) {
	var s model.PlacementStat
	err := row.Scan(&s.ID, &s.Label, &s.Value, &s.IsVisible, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func (q *Queries) collectPlacementStats(ctx context.Context, query string, args ...any) ([]model.PlacementStat, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []model.PlacementStat
	for rows.Next() {
		s, err := scanPlacementStat(rows)
		if err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// GetPlacementStat returns the placement stat with the given id.
func (q *Queries) GetPlacementStat(ctx context.Context, id int64) (model.PlacementStat, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+placementStatColumns+` FROM placement_stats WHERE id = ?`, id)
	return scanPlacementStat(row)
}

// ListVisiblePlacementStats returns visible stats in insertion order.
func (q *Queries) ListVisiblePlacementStats(ctx context.Context, limit int64) ([]model.PlacementStat, error) {
	return q.collectPlacementStats(ctx,
		`SELECT `+placementStatColumns+` FROM placement_stats
		 WHERE is_visible = TRUE ORDER BY id LIMIT ?`, limit)
}

// CountPlacementStats returns the total number of placement stats.
func (q *Queries) CountPlacementStats(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM placement_stats`).Scan(&n)
	return n, err
}

// ListPlacementStats returns a page of placement stats in insertion order.
func (q *Queries) ListPlacementStats(ctx context.Context, limit, offset int64) ([]model.PlacementStat, error) {
	return q.collectPlacementStats(ctx,
		`SELECT `+placementStatColumns+` FROM placement_stats
		 ORDER BY id LIMIT ? OFFSET ?`, limit, offset)
}

// CreatePlacementStatParams holds the fields for CreatePlacementStat.
type CreatePlacementStatParams struct {
	Label     string
	Value     string
	IsVisible bool
}

// CreatePlacementStat inserts a new placement stat.
func (q *Queries) CreatePlacementStat(ctx context.Context, arg CreatePlacementStatParams) (model.PlacementStat, error) {
	now := time.Now().UTC()
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO placement_stats (label, value, is_visible, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		arg.Label, arg.Value, arg.IsVisible, now, now)
	if err != nil {
		return model.PlacementStat{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.PlacementStat{}, err
	}
	return q.GetPlacementStat(ctx, id)
}

// UpdatePlacementStatParams holds the fields for UpdatePlacementStat.
type UpdatePlacementStatParams struct {
	ID        int64
	Label     string
	Value     string
	IsVisible bool
}

// UpdatePlacementStat updates a placement stat.
func (q *Queries) UpdatePlacementStat(ctx context.Context, arg UpdatePlacementStatParams) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE placement_stats SET label = ?, value = ?, is_visible = ?, updated_at = ?
		 WHERE id = ?`,
		arg.Label, arg.Value, arg.IsVisible, time.Now().UTC(), arg.ID)
	return err
}

// DeletePlacementStat removes a placement stat.
func (q *Queries) DeletePlacementStat(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM placement_stats WHERE id = ?`, id)
	return err
}

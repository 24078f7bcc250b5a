package store

import (
	"context"
	"database/sql"
	"time"

	"deptsite/internal/model"
)

const mouColumns = `id, partner_name, area, signed_on, logo_url, is_published,
	created_at, updated_at`

func scanMoU(row rowScanner) (model.MoU, error) {
	var m model.MoU
	err := row.Scan(&m.ID, &m.PartnerName, &m.Area, &m.SignedOn, &m.LogoURL,
		&m.IsPublished, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func (q *Queries) collectMoUs(ctx context.Context, query string, args ...any) ([]model.MoU, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mous []model.MoU
	for rows.Next() {
		m, err := scanMoU(rows)
		if err != nil {
			return nil, err
		}
		mous = append(mous, m)
	}
	return mous, rows.Err()
}

// GetMoU returns the MoU with the given id.
func (q *Queries) GetMoU(ctx context.Context, id int64) (model.MoU, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+mouColumns+` FROM mous WHERE id = ?`, id)
	return scanMoU(row)
}

// ListPublishedMoUs returns published MoUs, most recently signed first.
func (q *Queries) ListPublishedMoUs(ctx context.Context, limit int64) ([]model.MoU, error) {
	return q.collectMoUs(ctx,
		`SELECT `+mouColumns+` FROM mous
		 WHERE is_published = TRUE ORDER BY signed_on DESC LIMIT ?`, limit)
}

// CountMoUs returns the total number of MoUs.
func (q *Queries) CountMoUs(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM mous`).Scan(&n)
	return n, err
}

// ListMoUs returns a page of MoUs ordered by partner name.
func (q *Queries) ListMoUs(ctx context.Context, limit, offset int64) ([]model.MoU, error) {
	return q.collectMoUs(ctx,
		`SELECT `+mouColumns+` FROM mous
		 ORDER BY partner_name LIMIT ? OFFSET ?`, limit, offset)
}

// CreateMoUParams holds the fields for CreateMoU.
type CreateMoUParams struct {
	PartnerName string
	Area        string
	SignedOn    sql.NullTime
	LogoURL     string
	IsPublished bool
}

// CreateMoU inserts a new MoU.
func (q *Queries) CreateMoU(ctx context.Context, arg CreateMoUParams) (model.MoU, error) {
	now := time.Now().UTC()
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO mous (partner_name, area, signed_on, logo_url, is_published,
		 created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		arg.PartnerName, arg.Area, arg.SignedOn, arg.LogoURL, arg.IsPublished, now, now)
	if err != nil {
		return model.MoU{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.MoU{}, err
	}
	return q.GetMoU(ctx, id)
}

// UpdateMoUParams holds the fields for UpdateMoU.
type UpdateMoUParams struct {
	ID          int64
	PartnerName string
	Area        string
	SignedOn    sql.NullTime
	LogoURL     string
	IsPublished bool
}

// UpdateMoU updates a MoU.
func (q *Queries) UpdateMoU(ctx context.Context, arg UpdateMoUParams) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE mous SET partner_name = ?, area = ?, signed_on = ?, logo_url = ?,
		 is_published = ?, updated_at = ? WHERE id = ?`,
		arg.PartnerName, arg.Area, arg.SignedOn, arg.LogoURL, arg.IsPublished,
		time.Now().UTC(), arg.ID)
	return err
}

// DeleteMoU removes a MoU.
func (q *Queries) DeleteMoU(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM mous WHERE id = ?`, id)
	return err
}

package store

import (
	"context"
	"time"

	"deptsite/internal/model"
)

const enquiryColumns = `id, name, email, phone, message, status, created_at, updated_at`

func scanEnquiry(row rowScanner) (model.Enquiry, error) {
	var e model.Enquiry
	err := row.Scan(&e.ID, &e.Name, &e.Email, &e.Phone, &e.Message, &e.Status,
		&e.CreatedAt, &e.UpdatedAt)
	return e, err
}

// GetEnquiry returns the enquiry with the given id.
func (q *Queries) GetEnquiry(ctx context.Context, id int64) (model.Enquiry, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+enquiryColumns+` FROM enquiries WHERE id = ?`, id)
	return scanEnquiry(row)
}

// CountEnquiries returns the total number of enquiries.
func (q *Queries) CountEnquiries(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM enquiries`).Scan(&n)
	return n, err
}

// ListEnquiries returns a page of enquiries, newest first.
func (q *Queries) ListEnquiries(ctx context.Context, limit, offset int64) ([]model.Enquiry, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+enquiryColumns+` FROM enquiries
		 ORDER BY created_at DESC LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enquiries []model.Enquiry
	for rows.Next() {
		e, err := scanEnquiry(rows)
		if err != nil {
			return nil, err
		}
		enquiries = append(enquiries, e)
	}
	return enquiries, rows.Err()
}

// CreateEnquiryParams holds the fields for CreateEnquiry. Status always
// starts as New.
type CreateEnquiryParams struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// CreateEnquiry records a contact-form submission.
func (q *Queries) CreateEnquiry(ctx context.Context, arg CreateEnquiryParams) (model.Enquiry, error) {
	now := time.Now().UTC()
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO enquiries (name, email, phone, message, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		arg.Name, arg.Email, arg.Phone, arg.Message, model.EnquiryStatusNew, now, now)
	if err != nil {
		return model.Enquiry{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Enquiry{}, err
	}
	return q.GetEnquiry(ctx, id)
}

// UpdateEnquiryStatus moves an enquiry through the workflow.
func (q *Queries) UpdateEnquiryStatus(ctx context.Context, id int64, status string) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE enquiries SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), id)
	return err
}

// DeleteEnquiry removes an enquiry.
func (q *Queries) DeleteEnquiry(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM enquiries WHERE id = ?`, id)
	return err
}

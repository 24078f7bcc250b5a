package store

import (
	"context"
	"time"

	"deptsite/internal/model"
)

const userColumns = `id, email, password_hash, is_admin, created_at, updated_at`

func scanUser(row rowScanner) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// GetUserByEmail returns the user with the given email address.
func (q *Queries) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

// GetUser returns the user with the given id.
func (q *Queries) GetUser(ctx context.Context, id int64) (model.User, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

// CountUsers returns the total number of user accounts.
func (q *Queries) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}

// ListUsers returns a page of users ordered by id.
func (q *Queries) ListUsers(ctx context.Context, limit, offset int64) ([]model.User, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY id LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// CreateUserParams holds the fields for CreateUser.
type CreateUserParams struct {
	Email        string
	PasswordHash string
	IsAdmin      bool
}

// CreateUser inserts a new user and returns it.
func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (model.User, error) {
	now := time.Now().UTC()
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO users (email, password_hash, is_admin, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		arg.Email, arg.PasswordHash, arg.IsAdmin, now, now)
	if err != nil {
		return model.User{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.User{}, err
	}
	return q.GetUser(ctx, id)
}

// UpdateUserParams holds the fields for UpdateUser. An empty PasswordHash
// leaves the stored hash untouched.
type UpdateUserParams struct {
	ID           int64
	Email        string
	PasswordHash string
	IsAdmin      bool
}

// UpdateUser updates a user account.
func (q *Queries) UpdateUser(ctx context.Context, arg UpdateUserParams) error {
	now := time.Now().UTC()
	if arg.PasswordHash == "" {
		_, err := q.db.ExecContext(ctx,
			`UPDATE users SET email = ?, is_admin = ?, updated_at = ? WHERE id = ?`,
			arg.Email, arg.IsAdmin, now, arg.ID)
		return err
	}
	_, err := q.db.ExecContext(ctx,
		`UPDATE users SET email = ?, password_hash = ?, is_admin = ?, updated_at = ? WHERE id = ?`,
		arg.Email, arg.PasswordHash, arg.IsAdmin, now, arg.ID)
	return err
}

// DeleteUser removes a user account.
func (q *Queries) DeleteUser(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	return err
}

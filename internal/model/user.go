// Package model defines domain models and types used throughout the
// application: users, site settings, and the department content entities.
package model

import "time"

// User represents an account that can sign in to the back-office.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

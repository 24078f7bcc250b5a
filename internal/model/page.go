package model

import "time"

// Page represents a free-form content page addressed by slug.
type Page struct {
	ID             int64     `json:"id"`
	Slug           string    `json:"slug"`
	Title          string    `json:"title"`
	BodyHTML       string    `json:"body_html"`
	HeaderImageURL string    `json:"header_image_url"`
	HeaderSubtitle string    `json:"header_subtitle"`
	IsPublished    bool      `json:"is_published"`
	ShowInMenu     bool      `json:"show_in_menu"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

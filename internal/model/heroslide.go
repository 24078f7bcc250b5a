package model

import "time"

// HeroSlide is a rotating banner on the home page. Position drives the
// display order; only active slides are shown.
type HeroSlide struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle"`
	ImageURL  string    `json:"image_url"` // absolute URL or /static/... path
	CTAText   string    `json:"cta_text"`
	CTAURL    string    `json:"cta_url"`
	Position  int64     `json:"position"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

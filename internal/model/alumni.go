package model

import "time"

// Alumni is a graduate profile. Listed publicly without a publish filter.
type Alumni struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	GraduationYear  string    `json:"graduation_year"`
	CurrentPosition string    `json:"current_position"`
	Organization    string    `json:"organization"`
	PhotoURL        string    `json:"photo_url"`
	ProfileHTML     string    `json:"profile_html"`
	IsFeatured      bool      `json:"is_featured"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

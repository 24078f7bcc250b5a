package model

import (
	"database/sql"
	"time"
)

// Program levels.
const (
	ProgramLevelUG       = "UG"
	ProgramLevelPG       = "PG"
	ProgramLevelResearch = "Research"
)

// Program is a degree program offered by the department.
type Program struct {
	ID           int64     `json:"id"`
	Level        string    `json:"level"` // UG / PG / Research
	Name         string    `json:"name"`
	OverviewHTML string    `json:"overview_html"`
	Eligibility  string    `json:"eligibility"`
	Duration     string    `json:"duration"`
	IsPublished  bool      `json:"is_published"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Faculty is a staff profile. DisplayOrder drives the public listing order.
type Faculty struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Designation    string    `json:"designation"`
	DisplayOrder   int64     `json:"display_order"`
	Specialization string    `json:"specialization"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	PhotoURL       string    `json:"photo_url"`
	BioHTML        string    `json:"bio_html"`
	IsPublished    bool      `json:"is_published"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// News is a dated announcement addressed by slug.
type News struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Summary       string    `json:"summary"`
	BodyHTML      string    `json:"body_html"`
	CoverImageURL string    `json:"cover_image_url"`
	PublishedOn   time.Time `json:"published_on"`
	IsPublished   bool      `json:"is_published"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Event is a scheduled department event.
type Event struct {
	ID               int64        `json:"id"`
	Title            string       `json:"title"`
	Location         string       `json:"location"`
	StartsAt         time.Time    `json:"starts_at"`
	EndsAt           sql.NullTime `json:"ends_at,omitempty"`
	RegistrationLink string       `json:"registration_link"`
	DescriptionHTML  string       `json:"description_html"`
	IsPublished      bool         `json:"is_published"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// Achievement is a student or faculty highlight.
type Achievement struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Year        string    `json:"year"`
	Description string    `json:"description"`
	IsFeatured  bool      `json:"is_featured"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FundedProject is a sponsored research project.
type FundedProject struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Sponsor     string    `json:"sponsor"`
	Amount      string    `json:"amount"`
	Duration    string    `json:"duration"`
	PI          string    `json:"pi"`
	Summary     string    `json:"summary"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MoU is an industry or institutional partnership record.
type MoU struct {
	ID          int64        `json:"id"`
	PartnerName string       `json:"partner_name"`
	Area        string       `json:"area"`
	SignedOn    sql.NullTime `json:"signed_on,omitempty"`
	LogoURL     string       `json:"logo_url"`
	IsPublished bool         `json:"is_published"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// PlacementStat is a single label/value placement figure.
type PlacementStat struct {
	ID        int64     `json:"id"`
	Label     string    `json:"label"` // e.g., Highest Package
	Value     string    `json:"value"` // e.g., 18 LPA
	IsVisible bool      `json:"is_visible"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Newsletter is a published newsletter issue.
type Newsletter struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Issue       string    `json:"issue"`
	PublishedOn time.Time `json:"published_on"`
	PDFURL      string    `json:"pdf_url"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

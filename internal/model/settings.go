package model

import "time"

// Default values for the lazily created site settings row.
const (
	DefaultDeptName       = "Department of Intelligence Systems"
	DefaultUniversityName = "SIMATS Deemed University (Saveetha Institute of Medical and Technical Sciences)"
	DefaultTagline        = "Shaping Intelligent Systems for a Smarter Future"
	DefaultHeroTitle      = "Department of Intelligence Systems"
	DefaultHeroSubtitle   = "Outcome-focused education, strong mentorship, and research-led learning."
	DefaultEnquiryEmail   = "intelligencesystems@saveetha.edu.in"
	DefaultPhone          = "+91-XXXXXXXXXX"
	DefaultAddress        = "Saveetha University, Chennai, Tamil Nadu, India"
)

// SiteSettings is the singleton row holding department branding and contact
// text plus section banner image paths. Exactly one row exists; it is created
// lazily on the first public request if absent.
type SiteSettings struct {
	ID             int64     `json:"id"`
	DeptName       string    `json:"dept_name"`
	UniversityName string    `json:"university_name"`
	Tagline        string    `json:"tagline"`
	HeroTitle      string    `json:"hero_title"`
	HeroSubtitle   string    `json:"hero_subtitle"`
	EnquiryEmail   string    `json:"enquiry_email"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	GoogleMapEmbed string    `json:"google_map_embed"`
	BannerFaculty  string    `json:"banner_faculty"`
	BannerNews     string    `json:"banner_news"`
	BannerEvents   string    `json:"banner_events"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"deptsite/internal/model"
)

const settingsColumns = `id, dept_name, university_name, tagline, hero_title, hero_subtitle,
	enquiry_email, phone, address, google_map_embed, banner_faculty, banner_news, banner_events,
	created_at, updated_at`

func scanSettings(row rowScanner) (model.SiteSettings, error) {
	var s model.SiteSettings
	err := row.Scan(&s.ID, &s.DeptName, &s.UniversityName, &s.Tagline, &s.HeroTitle,
		&s.HeroSubtitle, &s.EnquiryEmail, &s.Phone, &s.Address, &s.GoogleMapEmbed,
		&s.BannerFaculty, &s.BannerNews, &s.BannerEvents, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

// GetSettings returns the singleton settings row.
func (q *Queries) GetSettings(ctx context.Context) (model.SiteSettings, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+settingsColumns+` FROM site_settings ORDER BY id LIMIT 1`)
	return scanSettings(row)
}

// EnsureSettings returns the singleton settings row, creating it with
// defaults if it does not exist yet.
func (q *Queries) EnsureSettings(ctx context.Context) (model.SiteSettings, error) {
	s, err := q.GetSettings(ctx)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return model.SiteSettings{}, err
	}

	now := time.Now().UTC()
	_, err = q.db.ExecContext(ctx,
		`INSERT INTO site_settings (dept_name, university_name, tagline, hero_title,
		 hero_subtitle, enquiry_email, phone, address, google_map_embed,
		 banner_faculty, banner_news, banner_events, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, '', '', '', '', ?, ?)`,
		model.DefaultDeptName, model.DefaultUniversityName, model.DefaultTagline,
		model.DefaultHeroTitle, model.DefaultHeroSubtitle, model.DefaultEnquiryEmail,
		model.DefaultPhone, model.DefaultAddress, now, now)
	if err != nil {
		return model.SiteSettings{}, err
	}
	return q.GetSettings(ctx)
}

// UpdateSettingsParams holds the editable settings fields.
type UpdateSettingsParams struct {
	ID             int64
	DeptName       string
	UniversityName string
	Tagline        string
	HeroTitle      string
	HeroSubtitle   string
	EnquiryEmail   string
	Phone          string
	Address        string
	GoogleMapEmbed string
	BannerFaculty  string
	BannerNews     string
	BannerEvents   string
}

// UpdateSettings updates the singleton settings row.
func (q *Queries) UpdateSettings(ctx context.Context, arg UpdateSettingsParams) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE site_settings SET dept_name = ?, university_name = ?, tagline = ?,
		 hero_title = ?, hero_subtitle = ?, enquiry_email = ?, phone = ?, address = ?,
		 google_map_embed = ?, banner_faculty = ?, banner_news = ?, banner_events = ?,
		 updated_at = ? WHERE id = ?`,
		arg.DeptName, arg.UniversityName, arg.Tagline, arg.HeroTitle, arg.HeroSubtitle,
		arg.EnquiryEmail, arg.Phone, arg.Address, arg.GoogleMapEmbed,
		arg.BannerFaculty, arg.BannerNews, arg.BannerEvents, time.Now().UTC(), arg.ID)
	return err
}

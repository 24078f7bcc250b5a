package handler

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"deptsite/internal/auth"
	"deptsite/internal/model"
	"deptsite/internal/store"
	"deptsite/internal/util"
)

// Form date layouts matching the HTML date and datetime-local inputs.
const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04"
)

func boolStr(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func fvBool(fv FormValues, name string) bool {
	return fv[name] == "1"
}

func fvInt(fv FormValues, name string) int64 {
	n, _ := strconv.ParseInt(fv[name], 10, 64)
	return n
}

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, s)
	return t, err == nil
}

func parseDateTime(s string) (time.Time, bool) {
	t, err := time.Parse(dateTimeLayout, s)
	return t, err == nil
}

func fvNullDate(fv FormValues, name string) sql.NullTime {
	if t, ok := parseDate(fv[name]); ok {
		return sql.NullTime{Time: t, Valid: true}
	}
	return sql.NullTime{}
}

func fvNullDateTime(fv FormValues, name string) sql.NullTime {
	if t, ok := parseDateTime(fv[name]); ok {
		return sql.NullTime{Time: t, Valid: true}
	}
	return sql.NullTime{}
}

func nullDateStr(t sql.NullTime, layout string) string {
	if !t.Valid {
		return ""
	}
	return t.Time.Format(layout)
}

// yesNo renders a boolean as a list cell.
func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// RegisterResources wires every back-office screen onto the CRUD handler.
// Registration order is the admin menu order.
func RegisterResources(h *CrudHandler, db *sql.DB) {
	q := store.New(db)

	h.Register(settingsResource(q))
	h.Register(heroSlidesResource(q))
	h.Register(pagesResource(q))
	h.Register(programsResource(q))
	h.Register(facultyResource(q))
	h.Register(newsResource(q))
	h.Register(eventsResource(q))
	h.Register(achievementsResource(q))
	h.Register(fundedProjectsResource(q))
	h.Register(mousResource(q))
	h.Register(placementStatsResource(q))
	h.Register(newslettersResource(q))
	h.Register(galleryAlbumsResource(q))
	h.Register(galleryImagesResource(q))
	h.Register(alumniResource(q))
	h.Register(enquiriesResource(q))
	h.Register(usersResource(q))
}

// settingsResource is the singleton branding screen: one row, edit only.
func settingsResource(q *store.Queries) *Resource {
	return &Resource{
		Name:          "Site Settings",
		Plural:        "Site Settings",
		Slug:          "settings",
		Columns:       []string{"department", "university", "enquiry email"},
		DisableCreate: true,
		DisableDelete: true,
		Fields: []Field{
			{Name: "dept_name", Label: "Department Name", Kind: FieldText, Required: true},
			{Name: "university_name", Label: "University Name", Kind: FieldText, Required: true},
			{Name: "tagline", Label: "Tagline", Kind: FieldText},
			{Name: "hero_title", Label: "Hero Title", Kind: FieldText},
			{Name: "hero_subtitle", Label: "Hero Subtitle", Kind: FieldText},
			{Name: "enquiry_email", Label: "Enquiry Email", Kind: FieldText, Required: true},
			{Name: "phone", Label: "Phone", Kind: FieldText},
			{Name: "address", Label: "Address", Kind: FieldTextarea},
			{Name: "google_map_embed", Label: "Google Map Embed", Kind: FieldTextarea},
			{Name: "banner_faculty", Label: "Faculty Banner", Kind: FieldFile, UploadDir: headerImageDir},
			{Name: "banner_news", Label: "News Banner", Kind: FieldFile, UploadDir: headerImageDir},
			{Name: "banner_events", Label: "Events Banner", Kind: FieldFile, UploadDir: headerImageDir},
		},
		Count: func(ctx context.Context) (int64, error) { return 1, nil },
		List: func(ctx context.Context, limit, offset int64) ([]ListRow, error) {
			s, err := q.EnsureSettings(ctx)
			if err != nil {
				return nil, err
			}
			return []ListRow{{ID: s.ID, Cells: []string{s.DeptName, s.UniversityName, s.EnquiryEmail}}}, nil
		},
		Get: func(ctx context.Context, id int64) (FormValues, error) {
			s, err := q.EnsureSettings(ctx)
			if err != nil {
				return nil, err
			}
			return FormValues{
				"dept_name":        s.DeptName,
				"university_name":  s.UniversityName,
				"tagline":          s.Tagline,
				"hero_title":       s.HeroTitle,
				"hero_subtitle":    s.HeroSubtitle,
				"enquiry_email":    s.EnquiryEmail,
				"phone":            s.Phone,
				"address":          s.Address,
				"google_map_embed": s.GoogleMapEmbed,
				"banner_faculty":   s.BannerFaculty,
				"banner_news":      s.BannerNews,
				"banner_events":    s.BannerEvents,
			}, nil
		},
		Update: func(ctx context.Context, id int64, fv FormValues) error {
			return q.UpdateSettings(ctx, store.UpdateSettingsParams{
				ID:             id,
				DeptName:       fv["dept_name"],
				UniversityName: fv["university_name"],
				Tagline:        fv["tagline"],
				HeroTitle:      fv["hero_title"],
				HeroSubtitle:   fv["hero_subtitle"],
				EnquiryEmail:   fv["enquiry_email"],
				Phone:          fv["phone"],
				Address:        fv["address"],
				GoogleMapEmbed: fv["google_map_embed"],
				BannerFaculty:  fv["banner_faculty"],
				BannerNews:     fv["banner_news"],
				BannerEvents:   fv["banner_events"],
			})
		},
	}
}

func heroSlidesResource(q *store.Queries) *Resource {
	return &Resource{
		Name:    "Hero Slide",
		Plural:  "Hero Slides",
		Slug:    "hero-slides",
		Columns: []string{"title", "position", "active"},
		Fields: []Field{
			{Name: "title", Label: "Title", Kind: FieldText, Required: true},
			{Name: "subtitle", Label: "Subtitle", Kind: FieldText},
			{Name: "image_url", Label: "Image", Kind: FieldFile, UploadDir: headerImageDir},
			{Name: "cta_text", Label: "Button Text", Kind: FieldText},
			{Name: "cta_url", Label: "Button Link", Kind: FieldText},
			{Name: "position", Label: "Position", Kind: FieldInt},
			{Name: "is_active", Label: "Active", Kind: FieldCheckbox},
		},
		Count: q.CountHeroSlides,
		List: func(ctx context.Context, limit, offset int64) ([]ListRow, error) {
			slides, err := q.ListHeroSlides(ctx, limit, offset)
			if err != nil {
				return nil, err
			}
			rows := make([]ListRow, 0, len(slides))
			for _, s := range slides {
				rows = append(rows, ListRow{ID: s.ID, Cells: []string{
					s.Title, strconv.FormatInt(s.Position, 10), yesNo(s.IsActive),
				}})
			}
			return rows, nil
		},
		Get: func(ctx context.Context, id int64) (FormValues, error) {
			s, err := q.GetHeroSlide(ctx, id)
			if err != nil {
				return nil, err
			}
			return FormValues{
				"title":     s.Title,
				"subtitle":  s.Subtitle,
				"image_url": s.ImageURL,
				"cta_text":  s.CTAText,
				"cta_url":   s.CTAURL,
				"position":  strconv.FormatInt(s.Position, 10),
				"is_active": boolStr(s.IsActive),
			}, nil
		},
		Create: func(ctx context.Context, fv FormValues) error {
			_, err := q.CreateHeroSlide(ctx, store.CreateHeroSlideParams{
				Title:    fv["title"],
				Subtitle: fv["subtitle"],
				ImageURL: fv["image_url"],
				CTAText:  fv["cta_text"],
				CTAURL:   fv["cta_url"],
				Position: fvInt(fv, "position"),
				IsActive: fvBool(fv, "is_active"),
			})
			return err
		},
		Update: func(ctx context.Context, id int64, fv FormValues) error {
			return q.UpdateHeroSlide(ctx, store.UpdateHeroSlideParams{
				ID:       id,
				Title:    fv["title"],
				Subtitle: fv["subtitle"],
				ImageURL: fv["image_url"],
				CTAText:  fv["cta_text"],
				CTAURL:   fv["cta_url"],
				Position: fvInt(fv, "position"),
				IsActive: fvBool(fv, "is_active"),
			})
		},
		Delete: q.DeleteHeroSlide,
	}
}

func pagesResource(q *store.Queries) *Resource {
	return &Resource{
		Name:    "Page",
		Plural:  "Pages",
		Slug:    "pages",
		Columns: []string{"slug", "title", "published", "in menu"},
		Fields: []Field{
			{Name: "title", Label: "Title", Kind: FieldText, Required: true},
			{Name: "slug", Label: "Slug", Kind: FieldText},
			{Name: "body_html", Label: "Body", Kind: FieldRichText},
			{Name: "header_image_url", Label: "Header Image", Kind: FieldFile, UploadDir: headerImageDir},
			{Name: "header_subtitle", Label: "Header Subtitle", Kind: FieldText},
			{Name: "is_published", Label: "Published", Kind: FieldCheckbox},
			{Name: "show_in_menu", Label: "Show in Menu", Kind: FieldCheckbox},
		},
		Normalize: func(fv FormValues) {
			if fv["slug"] == "" {
				fv["slug"] = util.Slugify(fv["title"])
			}
		},
		Validate: func(fv FormValues) string {
			if !util.IsValidSlug(fv["slug"]) {
				return "Slug may only contain lowercase letters, digits, and hyphens."
			}
			return ""
		},
		Count: q.CountPages,
		List: func(ctx context.Context, limit, offset int64) ([]ListRow, error) {
			pages, err := q.ListPages(ctx, limit, offset)
			if err != nil {
				return nil, err
			}
			rows := make([]ListRow, 0, len(pages))
			for _, p := range pages {
				rows = append(rows, ListRow{ID: p.ID, Cells: []string{
					p.Slug, p.Title, yesNo(p.IsPublished), yesNo(p.ShowInMenu),
				}})
			}
			return rows, nil
		},
		Get: func(ctx context.Context, id int64) (FormValues, error) {
			p, err := q.GetPage(ctx, id)
			if err != nil {
				return nil, err
			}
			return FormValues{
				"title":            p.Title,
				"slug":             p.Slug,
				"body_html":        p.BodyHTML,
				"header_image_url": p.HeaderImageURL,
				"header_subtitle":  p.HeaderSubtitle,
				"is_published":     boolStr(p.IsPublished),
				"show_in_menu":     boolStr(p.ShowInMenu),
			}, nil
		},
		Create: func(ctx context.Context, fv FormValues) error {
			_, err := q.CreatePage(ctx, store.CreatePageParams{
				Slug:           fv["slug"],
				Title:          fv["title"],
				BodyHTML:       fv["body_html"],
				HeaderImageURL: fv["header_image_url"],
				HeaderSubtitle: fv["header_subtitle"],
				IsPublished:    fvBool(fv, "is_published"),
				ShowInMenu:     fvBool(fv, "show_in_menu"),
			})
			return err
		},
		Update: func(ctx context.Context, id int64, fv FormValues) error {
			return q.UpdatePage(ctx, store.UpdatePageParams{
				ID:             id,
				Slug:           fv["slug"],
				Title:          fv["title"],
				BodyHTML:       fv["body_html"],
				HeaderImageURL: fv["header_image_url"],
				HeaderSubtitle: fv["header_subtitle"],
				IsPublished:    fvBool(fv, "is_published"),
				ShowInMenu:     fvBool(fv, "show_in_menu"),
			})
		},
		Delete: q.DeletePage,
	}
}

func programsResource(q *store.Queries) *Resource {
	levelOptions := []Option{
		{Value: model.ProgramLevelUG, Label: "Undergraduate"},
		{Value: model.ProgramLevelPG, Label: "Postgraduate"},
		{Value: model.ProgramLevelResearch, Label: "Research"},
	}
	return &Resource{
		Name:    "Program",
		Plural:  "Programs",
		Slug:    "programs",
		Columns: []string{"level", "name", "duration", "published"},
		Fields: []Field{
			{Name: "level", Label: "Level", Kind: FieldSelect, Required: true, Options: levelOptions},
			{Name: "name", Label: "Name", Kind: FieldText, Required: true},
			{Name: "overview_html", Label: "Overview", Kind: FieldRichText},
			{Name: "eligibility", Label: "Eligibility", Kind: FieldText},
			{Name: "duration", Label: "Duration", Kind: FieldText},
			{Name: "is_published", Label: "Published", Kind: FieldCheckbox},
		},
		Count: q.CountPrograms,
		List: func(ctx context.Context, limit, offset int64) ([]ListRow, error) {
			programs, err := q.ListPrograms(ctx, limit, offset)
			if err != nil {
				return nil, err
			}
			rows := make([]ListRow, 0, len(programs))
			for _, p := range programs {
				rows = append(rows, ListRow{ID: p.ID, Cells: []string{
					p.Level, p.Name, p.Duration, yesNo(p.IsPublished),
				}})
			}
			return rows, nil
		},
		Get: func(ctx context.Context, id int64) (FormValues, error) {
			p, err := q.GetProgram(ctx, id)
			if err != nil {
				return nil, err
			}
			return FormValues{
				"level":         p.Level,
				"name":          p.Name,
				"overview_html": p.OverviewHTML,
				"eligibility":   p.Eligibility,
				"duration":      p.Duration,
				"is_published":  boolStr(p.IsPublished),
			}, nil
		},
		Create: func(ctx context.Context, fv FormValues) error {
			_, err := q.CreateProgram(ctx, store.CreateProgramParams{
				Level:        fv["level"],
				Name:         fv["name"],
				OverviewHTML: fv["overview_html"],
				Eligibility:  fv["eligibility"],
				Duration:     fv["duration"],
				IsPublished:  fvBool(fv, "is_published"),
			})
			return err
		},
		Update: func(ctx context.Context, id int64, fv FormValues) error {
			return q.UpdateProgram(ctx, store.UpdateProgramParams{
				ID:           id,
				Level:        fv["level"],
				Name:         fv["name"],
				OverviewHTML: fv["overview_html"],
				Eligibility:  fv["eligibility"],
				Duration:     fv["duration"],
				IsPublished:  fvBool(fv, "is_published"),
			})
		},
		Delete: q.DeleteProgram,
	}
}

func facultyResource(q *store.Queries) *Resource {
	return &Resource{
		Name:    "Faculty Member",
		Plural:  "Faculty",
		Slug:    "faculty",
		Columns: []string{"name", "designation", "order", "published"},
		Fields: []Field{
			{Name: "name", Label: "Name", Kind: FieldText, Required: true},
			{Name: "designation", Label: "Designation", Kind: FieldText},
			{Name: "display_order", Label: "Display Order", Kind: FieldInt},
			{Name: "specialization", Label: "Specialization", Kind: FieldText},
			{Name: "email", Label: "Email", Kind: FieldText},
			{Name: "phone", Label: "Phone", Kind: FieldText},
			{Name: "photo_url", Label: "Photo", Kind: FieldFile, UploadDir: facultyImageDir},
			{Name: "bio_html", Label: "Bio", Kind: FieldRichText},
			{Name: "is_published", Label: "Published", Kind: FieldCheckbox},
		},
		Count: q.CountFaculty,
		List: func(ctx context.Context, limit, offset int64) ([]ListRow, error) {
			members, err := q.ListFaculty(ctx, limit, offset)
			if err != nil {
				return nil, err
			}
			rows := make([]ListRow, 0, len(members))
			for _, f := range members {
				rows = append(rows, ListRow{ID: f.ID, Cells: []string{
					f.Name, f.Designation, strconv.FormatInt(f.DisplayOrder, 10), yesNo(f.IsPublished),
				}})
			}
			return rows, nil
		},
		Get: func(ctx context.Context, id int64) (FormValues, error) {
			f, err := q.GetFaculty(ctx, id)
			if err != nil {
				return nil, err
			}
			return FormValues{
				"name":           f.Name,
				"designation":    f.Designation,
				"display_order":  strconv.FormatInt(f.DisplayOrder, 10),
				"specialization": f.Specialization,
				"email":          f.Email,
				"phone":          f.Phone,
				"photo_url":      f.PhotoURL,
				"bio_html":       f.BioHTML,
				"is_published":   boolStr(f.IsPublished),
			}, nil
		},
		Create: func(ctx context.Context, fv FormValues) error {
			_, err := q.CreateFaculty(ctx, store.CreateFacultyParams{
				Name:           fv["name"],
				Designation:    fv["designation"],
				DisplayOrder:   fvInt(fv, "display_order"),
				Specialization: fv["specialization"],
				Email:          fv["email"],
				Phone:          fv["phone"],
				PhotoURL:       fv["photo_url"],
				BioHTML:        fv["bio_html"],
				IsPublished:    fvBool(fv, "is_published"),
			})
			return err
		},
		Update: func(ctx context.Context, id int64, fv FormValues) error {
			return q.UpdateFaculty(ctx, store.UpdateFacultyParams{
				ID:             id,
				Name:           fv["name"],
				Designation:    fv["designation"],
				DisplayOrder:   fvInt(fv, "display_order"),
				Specialization: fv["specialization"],
				Email:          fv["email"],
				Phone:          fv["phone"],
				PhotoURL:       fv["photo_url"],
				BioHTML:        fv["bio_html"],
				IsPublished:    fvBool(fv, "is_published"),
			})
		},
		Delete: q.DeleteFaculty,
	}
}

func newsResource(q *store.Queries) *Resource {
	return &Resource{
		Name:    "News Item",
		Plural:  "News",
		Slug:    "news",
		Columns: []string{"title", "slug", "published on", "published"},
		Fields: []Field{
			{Name: "title", Label: "Title", Kind: FieldText, Required: true},
			{Name: "slug", Label: "Slug", Kind: FieldText},
			{Name: "summary", Label: "Summary", Kind: FieldTextarea},
			{Name: "body_html", Label: "Body", Kind: FieldRichText},
			{Name: "cover_image_url", Label: "Cover Image", Kind: FieldFile, UploadDir: headerImageDir},
			{Name: "published_on", Label: "Published On", Kind: FieldDate, Required: true},
			{Name: "is_published", Label: "Published", Kind: FieldCheckbox},
		},
		Normalize: func(fv FormValues) {
			if fv["slug"] == "" {
				fv["slug"] = util.Slugify(fv["title"])
			}
		},
		Validate: func(fv FormValues) string {
			if !util.IsValidSlug(fv["slug"]) {
				return "Slug may only contain lowercase letters, digits, and hyphens."
			}
			if _, ok := parseDate(fv["published_on"]); !ok {
				return "Published On must be a valid date."
			}
			return ""
		},
		Count: q.CountNews,
		List: func(ctx context.Context, limit, offset int64) ([]ListRow, error) {
			items, err := q.ListNews(ctx, limit, offset)
			if err != nil {
				return nil, err
			}
			rows := make([]ListRow, 0, len(items))
			for _, n := range items {
				rows = append(rows, ListRow{ID: n.ID, Cells: []string{
					n.Title, n.Slug, n.PublishedOn.Format(dateLayout), yesNo(n.IsPublished),
				}})
			}
			return rows, nil
		},
		Get: func(ctx context.Context, id int64) (FormValues, error) {
			n, err := q.GetNews(ctx, id)
			if err != nil {
				return nil, err
			}
			return FormValues{
				"title":           n.Title,
				"slug":            n.Slug,
				"summary":         n.Summary,
				"body_html":       n.BodyHTML,
				"cover_image_url": n.CoverImageURL,
				"published_on":    n.PublishedOn.Format(dateLayout),
				"is_published":    boolStr(n.IsPublished),
			}, nil
		},
		Create: func(ctx context.Context, fv FormValues) error {
			publishedOn, _ := parseDate(fv["published_on"])
			_, err := q.CreateNews(ctx, store.CreateNewsParams{
				Title:         fv["title"],
				Slug:          fv["slug"],
				Summary:       fv["summary"],
				BodyHTML:      fv["body_html"],
				CoverImageURL: fv["cover_image_url"],
				PublishedOn:   publishedOn,
				IsPublished:   fvBool(fv, "is_published"),
			})
			return err
		},
		Update: func(ctx context.Context, id int64, fv FormValues) error {
			publishedOn, _ := parseDate(fv["published_on"])
			return q.UpdateNews(ctx, store.UpdateNewsParams{
				ID:            id,
				Title:         fv["title"],
				Slug:          fv["slug"],
				Summary:       fv["summary"],
				BodyHTML:      fv["body_html"],
				CoverImageURL: fv["cover_image_url"],
				PublishedOn:   publishedOn,
				IsPublished:   fvBool(fv, "is_published"),
			})
		},
		Delete: q.DeleteNews,
	}
}

func eventsResource(q *store.Queries) *Resource {
	return &Resource{
		Name:    "Event",
		Plural:  "Events",
		Slug:    "events",
		Columns: []string{"title", "starts", "location", "published"},
		Fields: []Field{
			{Name: "title", Label: "Title", Kind: FieldText, Required: true},
			{Name: "location", Label: "Location", Kind: FieldText},
			{Name: "starts_at", Label: "Starts At", Kind: FieldDateTime, Required: true},
			{Name: "ends_at", Label: "Ends At", Kind: FieldDateTime},
			{Name: "registration_link", Label: "Registration Link", Kind: FieldText},
			{Name: "description_html", Label: "Description", Kind: FieldRichText},
			{Name: "is_published", Label: "Published", Kind: FieldCheckbox},
		},
		Validate: func(fv FormValues) string {
			if _, ok := parseDateTime(fv["starts_at"]); !ok {
				return "Starts At must be a valid date and time."
			}
			if fv["ends_at"] != "" {
				if _, ok := parseDateTime(fv["ends_at"]); !ok {
					return "Ends At must be a valid date and time."
				}
			}
			return ""
		},
		Count: q.CountEvents,
		List: func(ctx context.Context, limit, offset int64) ([]ListRow, error) {
			events, err := q.ListEvents(ctx, limit, offset)
			if err != nil {
				return nil, err
			}
			rows := make([]ListRow, 0, len(events))
			for _, e := range events {
				rows = append(rows, ListRow{ID: e.ID, Cells: []string{
					e.Title, e.StartsAt.Format(dateTimeLayout), e.Location, yesNo(e.IsPublished),
				}})
			}
			return rows, nil
		},
		Get: func(ctx context.Context, id int64) (FormValues, error) {
			e, err := q.GetEvent(ctx, id)
			if err != nil {
				return nil, err
			}
			return FormValues{
				"title":             e.Title,
				"location":          e.Location,
				"starts_at":         e.StartsAt.Format(dateTimeLayout),
				"ends_at":           nullDateStr(e.EndsAt, dateTimeLayout),
				"registration_link": e.RegistrationLink,
				"description_html":  e.DescriptionHTML,
				"is_published":      boolStr(e.IsPublished),
			}, nil
		},
		Create: func(ctx context.Context, fv FormValues) error {
			startsAt, _ := parseDateTime(fv["starts_at"])
			_, err := q.CreateEvent(ctx, store.CreateEventParams{
				Title:            fv["title"],
				Location:         fv["location"],
				StartsAt:         startsAt,
				EndsAt:           fvNullDateTime(fv, "ends_at"),
				RegistrationLink: fv["registration_link"],
				DescriptionHTML:  fv["description_html"],
				IsPublished:      fvBool(fv, "is_published"),
			})
			return err
		},
		Update: func(ctx context.Context, id int64, fv FormValues) error {
			startsAt, _ := parseDateTime(fv["starts_at"])
			return q.UpdateEvent(ctx, store.UpdateEventParams{
				ID:               id,
				Title:            fv["title"],
				Location:         fv["location"],
				StartsAt:         startsAt,
				EndsAt:           fvNullDateTime(fv, "ends_at"),
				RegistrationLink: fv["registration_link"],
				DescriptionHTML:  fv["description_html"],
				IsPublished:      fvBool(fv, "is_published"),
			})
		},
		Delete: q.DeleteEvent,
	}
}

func achievementsResource(q *store.Queries) *Resource {
	return &Resource{
		Name:    "Achievement",
		Plural:  "Achievements",
		Slug:    "achievements",
		Columns: []string{"title", "category", "year", "featured", "published"},
		Fields: []Field{
			{Name: "title", Label: "Title", Kind: FieldText, Required: true},
			{Name: "category", Label: "Category", Kind: FieldText},
			{Name: "year", Label: "Year", Kind: FieldText},
			{Name: "description", Label: "Description", Kind: FieldTextarea},
			{Name: "is_featured", Label: "Featured", Kind: FieldCheckbox},
			{Name: "is_published", Label: "Published", Kind: FieldCheckbox},
		},
		Count: q.CountAchievements,
		List: func(ctx context.Context, limit, offset int64) ([]ListRow, error) {
			items, err := q.ListAchievements(ctx, limit, offset)
			if err != nil {
				return nil, err
			}
			rows := make([]ListRow, 0, len(items))
			for _, a := range items {
				rows = append(rows, ListRow{ID: a.ID, Cells: []string{
					a.Title, a.Category, a.Year, yesNo(a.IsFeatured), yesNo(a.IsPublished),
				}})
			}
			return rows, nil
		},
		Get: func(ctx context.Context, id int64) (FormValues, error) {
			a, err := q.GetAchievement(ctx, id)
			if err != nil {
				return nil, err
			}
			return FormValues{
				"title":        a.Title,
				"category":     a.Category,
				"year":         a.Year,
				"description":  a.Description,
				"is_featured":  boolStr(a.IsFeatured),
				"is_published": boolStr(a.IsPublished),
			}, nil
		},
		Create: func(ctx context.Context, fv FormValues) error {
			_, err := q.CreateAchievement(ctx, store.CreateAchievementParams{
				Title:       fv["title"],
				Category:    fv["category"],
				Year:        fv["year"],
				Description: fv["description"],
				IsFeatured:  fvBool(fv, "is_featured"),
				IsPublished: fvBool(fv, "is_published"),
			})
			return err
		},
		Update: func(ctx context.Context, id int64, fv FormValues) error {
			return q.UpdateAchievement(ctx, store.UpdateAchievementParams{
				ID:          id,
				Title:       fv["title"],
				Category:    fv["category"],
				Year:        fv["year"],
				Description: fv["description"],
				IsFeatured:  fvBool(fv, "is_featured"),
				IsPublished: fvBool(fv, "is_published"),
			})
		},
		Delete: q.DeleteAchievement,
	}
}

func fundedProjectsResource(q *store.Queries) *Resource {
	return &Resource{
		Name:    "Funded Project",
		Plural:  "Funded Projects",
		Slug:    "funded-projects",
		Columns: []string{"title", "sponsor", "amount", "pi", "published"},
		Fields: []Field{
			{Name: "title", Label: "Title", Kind: FieldText, Required: true},
			{Name: "sponsor", Label: "Sponsor", Kind: FieldText},
			{Name: "amount", Label: "Amount", Kind: FieldText},
			{Name: "duration", Label: "Duration", Kind: FieldText},
			{Name: "pi", Label: "Principal Investigator", Kind: FieldText},
			{Name: "summary", Label: "Summary", Kind: FieldTextarea},
			{Name: "is_published", Label: "Published", Kind: FieldCheckbox},
		},
		Count: q.CountFundedProjects,
		List: func(ctx context.Context, limit, offset int64) ([]ListRow, error) {
			projects, err := q.ListFundedProjects(ctx, limit, offset)
			if err != nil {
				return nil, err
			}
			rows := make([]ListRow, 0, len(projects))
			for _, p := range projects {
				rows = append(rows, ListRow{ID: p.ID, Cells: []string{
					p.Title, p.Sponsor, p.Amount, p.PI, yesNo(p.IsPublished),
				}})
			}
			return rows, nil
		},
		Get: func(ctx context.Context, id int64) (FormValues, error) {
			p, err := q.GetFundedProject(ctx, id)
			if err != nil {
				return nil, err
			}
			return FormValues{
				"title":        p.Title,
				"sponsor":      p.Sponsor,
				"amount":       p.Amount,
				"duration":     p.Duration,
				"pi":           p.PI,
				"summary":      p.Summary,
				"is_published": boolStr(p.IsPublished),
			}, nil
		},
		Create: func(ctx context.Context, fv FormValues) error {
			_, err := q.CreateFundedProject(ctx, store.CreateFundedProjectParams{
				Title:       fv["title"],
				Sponsor:     fv["sponsor"],
				Amount:      fv["amount"],
				Duration:    fv["duration"],
				PI:          fv["pi"],
				Summary:     fv["summary"],
				IsPublished: fvBool(fv, "is_published"),
			})
			return err
		},
		Update: func(ctx context.Context, id int64, fv FormValues) error {
			return q.UpdateFundedProject(ctx, store.UpdateFundedProjectParams{
				ID:          id,
				Title:       fv["title"],
				Sponsor:     fv["sponsor"],
				Amount:      fv["amount"],
				Duration:    fv["duration"],
				PI:          fv["pi"],
				Summary:     fv["summary"],
				IsPublished: fvBool(fv, "is_published"),
			})
		},
		Delete: q.DeleteFundedProject,
	}
}

func mousResource(q *store.Queries) *Resource {
	return &Resource{
		Name:    "MoU",
		Plural:  "MoUs",
		Slug:    "mous",
		Columns: []string{"partner", "area", "signed on", "published"},
		Fields: []Field{
			{Name: "partner_name", Label: "Partner Name", Kind: FieldText, Required: true},
			{Name: "area", Label: "Area", Kind: FieldText},
			{Name: "signed_on", Label: "Signed On", Kind: FieldDate},
			{Name: "logo_url", Label: "Partner Logo", Kind: FieldFile, UploadDir: headerImageDir},
			{Name: "is_published", Label: "Published", Kind: FieldCheckbox},
		},
		Validate: func(fv FormValues) string {
			if fv["signed_on"] != "" {
				if _, ok := parseDate(fv["signed_on"]); !ok {
					return "Signed On must be a valid date."
				}
			}
			return ""
		},
		Count: q.CountMoUs,
		List: func(ctx context.Context, limit, offset int64) ([]ListRow, error) {
			mous, err := q.ListMoUs(ctx, limit, offset)
			if err != nil {
				return nil, err
			}
			rows := make([]ListRow, 0, len(mous))
			for _, m := range mous {
				rows = append(rows, ListRow{ID: m.ID, Cells: []string{
					m.PartnerName, m.Area, nullDateStr(m.SignedOn, dateLayout), yesNo(m.IsPublished),
				}})
			}
			return rows, nil
		},
		Get: func(ctx context.Context, id int64) (FormValues, error) {
			m, err := q.GetMoU(ctx, id)
			if err != nil {
				return nil, err
			}
			return FormValues{
				"partner_name": m.PartnerName,
				"area":         m.Area,
				"signed_on":    nullDateStr(m.SignedOn, dateLayout),
				"logo_url":     m.LogoURL,
				"is_published": boolStr(m.IsPublished),
			}, nil
		},
		Create: func(ctx context.Context, fv FormValues) error {
			_, err := q.CreateMoU(ctx, store.CreateMoUParams{
				PartnerName: fv["partner_name"],
				Area:        fv["area"],
				SignedOn:    fvNullDate(fv, "signed_on"),
				LogoURL:     fv["logo_url"],
				IsPublished: fvBool(fv, "is_published"),
			})
			return err
		},
		Update: func(ctx context.Context, id int64, fv FormValues) error {
			return q.UpdateMoU(ctx, store.UpdateMoUParams{
				ID:          id,
				PartnerName: fv["partner_name"],
				Area:        fv["area"],
				SignedOn:    fvNullDate(fv, "signed_on"),
				LogoURL:     fv["logo_url"],
				IsPublished: fvBool(fv, "is_published"),
			})
		},
		Delete: q.DeleteMoU,
	}
}

func placementStatsResource(q *store.Queries) *Resource {
	return &Resource{
		Name:    "Placement Stat",
		Plural:  "Placement Stats",
		Slug:    "placement-stats",
		Columns: []string{"label", "value", "visible"},
		Fields: []Field{
			{Name: "label", Label: "Label", Kind: FieldText, Required: true},
			{Name: "value", Label: "Value", Kind: FieldText, Required: true},
			{Name: "is_visible", Label: "Visible", Kind: FieldCheckbox},
		},
		Count: q.CountPlacementStats,
		List: func(ctx context.Context, limit, offset int64) ([]ListRow, error) {
			stats, err := q.ListPlacementStats(ctx, limit, offset)
			if err != nil {
				return nil, err
			}
			rows := make([]ListRow, 0, len(stats))
			for _, s := range stats {
				rows = append(rows, ListRow{ID: s.ID, Cells: []string{
					s.Label, s.Value, yesNo(s.IsVisible),
				}})
			}
			return rows, nil
		},
		Get: func(ctx context.Context, id int64) (FormValues, error) {
			s, err := q.GetPlacementStat(ctx, id)
			if err != nil {
				return nil, err
			}
			return FormValues{
				"label":      s.Label,
				"value":      s.Value,
				"is_visible": boolStr(s.IsVisible),
			}, nil
		},
		Create: func(ctx context.Context, fv FormValues) error {
			_, err := q.CreatePlacementStat(ctx, store.CreatePlacementStatParams{
				Label:     fv["label"],
				Value:     fv["value"],
				IsVisible: fvBool(fv, "is_visible"),
			})
			return err
		},
		Update: func(ctx context.Context, id int64, fv FormValues) error {
			return q.UpdatePlacementStat(ctx, store.UpdatePlacementStatParams{
				ID:        id,
				Label:     fv["label"],
				Value:     fv["value"],
				IsVisible: fvBool(fv, "is_visible"),
			})
		},
		Delete: q.DeletePlacementStat,
	}
}

func newslettersResource(q *store.Queries) *Resource {
	return &Resource{
		Name:    "Newsletter",
		Plural:  "Newsletters",
		Slug:    "newsletters",
		Columns: []string{"title", "issue", "published on", "published"},
		Fields: []Field{
			{Name: "title", Label: "Title", Kind: FieldText, Required: true},
			{Name: "issue", Label: "Issue", Kind: FieldText},
			{Name: "published_on", Label: "Published On", Kind: FieldDate, Required: true},
			{Name: "pdf_url", Label: "PDF Link", Kind: FieldText},
			{Name: "is_published", Label: "Published", Kind: FieldCheckbox},
		},
		Validate: func(fv FormValues) string {
			if _, ok := parseDate(fv["published_on"]); !ok {
				return "Published On must be a valid date."
			}
			return ""
		},
		Count: q.CountNewsletters,
		List: func(ctx context.Context, limit, offset int64) ([]ListRow, error) {
			issues, err := q.ListNewsletters(ctx, limit, offset)
			if err != nil {
				return nil, err
			}
			rows := make([]ListRow, 0, len(issues))
			for _, n := range issues {
				rows = append(rows, ListRow{ID: n.ID, Cells: []string{
					n.Title, n.Issue, n.PublishedOn.Format(dateLayout), yesNo(n.IsPublished),
				}})
			}
			return rows, nil
		},
		Get: func(ctx context.Context, id int64) (FormValues, error) {
			n, err := q.GetNewsletter(ctx, id)
			if err != nil {
				return nil, err
			}
			return FormValues{
				"title":        n.Title,
				"issue":        n.Issue,
				"published_on": n.PublishedOn.Format(dateLayout),
				"pdf_url":      n.PDFURL,
				"is_published": boolStr(n.IsPublished),
			}, nil
		},
		Create: func(ctx context.Context, fv FormValues) error {
			publishedOn, _ := parseDate(fv["published_on"])
			_, err := q.CreateNewsletter(ctx, store.CreateNewsletterParams{
				Title:       fv["title"],
				Issue:       fv["issue"],
				PublishedOn: publishedOn,
				PDFURL:      fv["pdf_url"],
				IsPublished: fvBool(fv, "is_published"),
			})
			return err
		},
		Update: func(ctx context.Context, id int64, fv FormValues) error {
			publishedOn, _ := parseDate(fv["published_on"])
			return q.UpdateNewsletter(ctx, store.UpdateNewsletterParams{
				ID:          id,
				Title:       fv["title"],
				Issue:       fv["issue"],
				PublishedOn: publishedOn,
				PDFURL:      fv["pdf_url"],
				IsPublished: fvBool(fv, "is_published"),
			})
		},
		Delete: q.DeleteNewsletter,
	}
}

func galleryAlbumsResource(q *store.Queries) *Resource {
	return &Resource{
		Name:    "Gallery Album",
		Plural:  "Gallery Albums",
		Slug:    "gallery-albums",
		Columns: []string{"title", "category", "year", "published"},
		Fields: []Field{
			{Name: "title", Label: "Title", Kind: FieldText, Required: true},
			{Name: "category", Label: "Category", Kind: FieldText},
			{Name: "year", Label: "Year", Kind: FieldText},
			{Name: "cover_image_url", Label: "Cover Image", Kind: FieldFile, UploadDir: headerImageDir},
			{Name: "is_published", Label: "Published", Kind: FieldCheckbox},
		},
		Count: q.CountGalleryAlbums,
		List: func(ctx context.Context, limit, offset int64) ([]ListRow, error) {
			albums, err := q.ListGalleryAlbums(ctx, limit, offset)
			if err != nil {
				return nil, err
			}
			rows := make([]ListRow, 0, len(albums))
			for _, a := range albums {
				rows = append(rows, ListRow{ID: a.ID, Cells: []string{
					a.Title, a.Category, a.Year, yesNo(a.IsPublished),
				}})
			}
			return rows, nil
		},
		Get: func(ctx context.Context, id int64) (FormValues, error) {
			a, err := q.GetGalleryAlbum(ctx, id)
			if err != nil {
				return nil, err
			}
			return FormValues{
				"title":           a.Title,
				"category":        a.Category,
				"year":            a.Year,
				"cover_image_url": a.CoverImageURL,
				"is_published":    boolStr(a.IsPublished),
			}, nil
		},
		Create: func(ctx context.Context, fv FormValues) error {
			_, err := q.CreateGalleryAlbum(ctx, store.CreateGalleryAlbumParams{
				Title:         fv["title"],
				Category:      fv["category"],
				Year:          fv["year"],
				CoverImageURL: fv["cover_image_url"],
				IsPublished:   fvBool(fv, "is_published"),
			})
			return err
		},
		Update: func(ctx context.Context, id int64, fv FormValues) error {
			return q.UpdateGalleryAlbum(ctx, store.UpdateGalleryAlbumParams{
				ID:            id,
				Title:         fv["title"],
				Category:      fv["category"],
				Year:          fv["year"],
				CoverImageURL: fv["cover_image_url"],
				IsPublished:   fvBool(fv, "is_published"),
			})
		},
		Delete: q.DeleteGalleryAlbum,
	}
}

func galleryImagesResource(q *store.Queries) *Resource {
	albumOptions := func(ctx context.Context) ([]Option, error) {
		albums, err := q.ListGalleryAlbums(ctx, store.NoLimit, 0)
		if err != nil {
			return nil, err
		}
		opts := make([]Option, 0, len(albums))
		for _, a := range albums {
			opts = append(opts, Option{
				Value: strconv.FormatInt(a.ID, 10),
				Label: fmt.Sprintf("%s (%s)", a.Title, a.Year),
			})
		}
		return opts, nil
	}

	return &Resource{
		Name:    "Gallery Image",
		Plural:  "Gallery Images",
		Slug:    "gallery-images",
		Columns: []string{"album", "image", "caption"},
		Fields: []Field{
			{Name: "album_id", Label: "Album", Kind: FieldSelect, Required: true, OptionsFunc: albumOptions},
			{Name: "image_url", Label: "Image", Kind: FieldFile, Required: true, UploadDir: headerImageDir},
			{Name: "caption", Label: "Caption", Kind: FieldText},
		},
		Validate: func(fv FormValues) string {
			if fvInt(fv, "album_id") <= 0 {
				return "Album is required."
			}
			return ""
		},
		Count: q.CountGalleryImages,
		List: func(ctx context.Context, limit, offset int64) ([]ListRow, error) {
			images, err := q.ListGalleryImages(ctx, limit, offset)
			if err != nil {
				return nil, err
			}
			rows := make([]ListRow, 0, len(images))
			for _, img := range images {
				rows = append(rows, ListRow{ID: img.ID, Cells: []string{
					strconv.FormatInt(img.AlbumID, 10), img.ImageURL, img.Caption,
				}})
			}
			return rows, nil
		},
		Get: func(ctx context.Context, id int64) (FormValues, error) {
			img, err := q.GetGalleryImage(ctx, id)
			if err != nil {
				return nil, err
			}
			return FormValues{
				"album_id":  strconv.FormatInt(img.AlbumID, 10),
				"image_url": img.ImageURL,
				"caption":   img.Caption,
			}, nil
		},
		Create: func(ctx context.Context, fv FormValues) error {
			_, err := q.CreateGalleryImage(ctx, store.CreateGalleryImageParams{
				AlbumID:  fvInt(fv, "album_id"),
				ImageURL: fv["image_url"],
				Caption:  fv["caption"],
			})
			return err
		},
		Update: func(ctx context.Context, id int64, fv FormValues) error {
			return q.UpdateGalleryImage(ctx, store.UpdateGalleryImageParams{
				ID:       id,
				AlbumID:  fvInt(fv, "album_id"),
				ImageURL: fv["image_url"],
				Caption:  fv["caption"],
			})
		},
		Delete: q.DeleteGalleryImage,
	}
}

func alumniResource(q *store.Queries) *Resource {
	return &Resource{
		Name:    "Alumni Profile",
		Plural:  "Alumni",
		Slug:    "alumni",
		Columns: []string{"name", "year", "position", "organization", "featured"},
		Fields: []Field{
			{Name: "name", Label: "Name", Kind: FieldText, Required: true},
			{Name: "graduation_year", Label: "Graduation Year", Kind: FieldText},
			{Name: "current_position", Label: "Current Position", Kind: FieldText},
			{Name: "organization", Label: "Organization", Kind: FieldText},
			{Name: "photo_url", Label: "Photo", Kind: FieldFile, UploadDir: facultyImageDir},
			{Name: "profile_html", Label: "Profile", Kind: FieldRichText},
			{Name: "is_featured", Label: "Featured", Kind: FieldCheckbox},
		},
		Count: q.CountAlumni,
		List: func(ctx context.Context, limit, offset int64) ([]ListRow, error) {
			alumni, err := q.ListAlumni(ctx, limit, offset)
			if err != nil {
				return nil, err
			}
			rows := make([]ListRow, 0, len(alumni))
			for _, a := range alumni {
				rows = append(rows, ListRow{ID: a.ID, Cells: []string{
					a.Name, a.GraduationYear, a.CurrentPosition, a.Organization, yesNo(a.IsFeatured),
				}})
			}
			return rows, nil
		},
		Get: func(ctx context.Context, id int64) (FormValues, error) {
			a, err := q.GetAlumni(ctx, id)
			if err != nil {
				return nil, err
			}
			return FormValues{
				"name":             a.Name,
				"graduation_year":  a.GraduationYear,
				"current_position": a.CurrentPosition,
				"organization":     a.Organization,
				"photo_url":        a.PhotoURL,
				"profile_html":     a.ProfileHTML,
				"is_featured":      boolStr(a.IsFeatured),
			}, nil
		},
		Create: func(ctx context.Context, fv FormValues) error {
			_, err := q.CreateAlumni(ctx, store.CreateAlumniParams{
				Name:            fv["name"],
				GraduationYear:  fv["graduation_year"],
				CurrentPosition: fv["current_position"],
				Organization:    fv["organization"],
				PhotoURL:        fv["photo_url"],
				ProfileHTML:     fv["profile_html"],
				IsFeatured:      fvBool(fv, "is_featured"),
			})
			return err
		},
		Update: func(ctx context.Context, id int64, fv FormValues) error {
			return q.UpdateAlumni(ctx, store.UpdateAlumniParams{
				ID:              id,
				Name:            fv["name"],
				GraduationYear:  fv["graduation_year"],
				CurrentPosition: fv["current_position"],
				Organization:    fv["organization"],
				PhotoURL:        fv["photo_url"],
				ProfileHTML:     fv["profile_html"],
				IsFeatured:      fvBool(fv, "is_featured"),
			})
		},
		Delete: q.DeleteAlumni,
	}
}

// enquiriesResource: contact submissions arrive only through the public
// form, so the back office can just triage and delete them.
func enquiriesResource(q *store.Queries) *Resource {
	statusOptions := make([]Option, 0, len(model.EnquiryStatuses))
	for _, s := range model.EnquiryStatuses {
		statusOptions = append(statusOptions, Option{Value: s, Label: s})
	}

	return &Resource{
		Name:          "Enquiry",
		Plural:        "Enquiries",
		Slug:          "enquiries",
		Columns:       []string{"name", "email", "phone", "message", "status", "received"},
		DisableCreate: true,
		Fields: []Field{
			{Name: "status", Label: "Status", Kind: FieldSelect, Required: true, Options: statusOptions},
		},
		Validate: func(fv FormValues) string {
			for _, s := range model.EnquiryStatuses {
				if fv["status"] == s {
					return ""
				}
			}
			return "Status must be one of: New, In Progress, Closed."
		},
		Count: q.CountEnquiries,
		List: func(ctx context.Context, limit, offset int64) ([]ListRow, error) {
			enquiries, err := q.ListEnquiries(ctx, limit, offset)
			if err != nil {
				return nil, err
			}
			rows := make([]ListRow, 0, len(enquiries))
			for _, e := range enquiries {
				message := e.Message
				if r := []rune(message); len(r) > 80 {
					message = string(r[:80]) + "..."
				}
				rows = append(rows, ListRow{ID: e.ID, Cells: []string{
					e.Name, e.Email, e.Phone, message, e.Status, e.CreatedAt.Format(dateLayout),
				}})
			}
			return rows, nil
		},
		Get: func(ctx context.Context, id int64) (FormValues, error) {
			e, err := q.GetEnquiry(ctx, id)
			if err != nil {
				return nil, err
			}
			return FormValues{"status": e.Status}, nil
		},
		Update: func(ctx context.Context, id int64, fv FormValues) error {
			return q.UpdateEnquiryStatus(ctx, id, fv["status"])
		},
		Delete: q.DeleteEnquiry,
	}
}

// usersResource: the password field is write-only. It is hashed before
// storage and an empty value on edit keeps the current password.
func usersResource(q *store.Queries) *Resource {
	hashPassword := func(fv FormValues) (string, error) {
		if fv["password"] == "" {
			return "", nil
		}
		return auth.HashPassword(fv["password"])
	}

	return &Resource{
		Name:    "User",
		Plural:  "Users",
		Slug:    "users",
		Columns: []string{"email", "admin", "created"},
		Fields: []Field{
			{Name: "email", Label: "Email", Kind: FieldText, Required: true},
			{Name: "password", Label: "Password", Kind: FieldPassword},
			{Name: "is_admin", Label: "Administrator", Kind: FieldCheckbox},
		},
		ValidateCreate: func(fv FormValues) string {
			if fv["password"] == "" {
				return "Password is required."
			}
			return ""
		},
		Count: q.CountUsers,
		List: func(ctx context.Context, limit, offset int64) ([]ListRow, error) {
			users, err := q.ListUsers(ctx, limit, offset)
			if err != nil {
				return nil, err
			}
			rows := make([]ListRow, 0, len(users))
			for _, u := range users {
				rows = append(rows, ListRow{ID: u.ID, Cells: []string{
					u.Email, yesNo(u.IsAdmin), u.CreatedAt.Format(dateLayout),
				}})
			}
			return rows, nil
		},
		Get: func(ctx context.Context, id int64) (FormValues, error) {
			u, err := q.GetUser(ctx, id)
			if err != nil {
				return nil, err
			}
			// The stored hash never reaches the form.
			return FormValues{
				"email":    u.Email,
				"is_admin": boolStr(u.IsAdmin),
			}, nil
		},
		Create: func(ctx context.Context, fv FormValues) error {
			hash, err := hashPassword(fv)
			if err != nil {
				return err
			}
			_, err = q.CreateUser(ctx, store.CreateUserParams{
				Email:        strings.ToLower(strings.TrimSpace(fv["email"])),
				PasswordHash: hash,
				IsAdmin:      fvBool(fv, "is_admin"),
			})
			return err
		},
		Update: func(ctx context.Context, id int64, fv FormValues) error {
			hash, err := hashPassword(fv)
			if err != nil {
				return err
			}
			return q.UpdateUser(ctx, store.UpdateUserParams{
				ID:           id,
				Email:        strings.ToLower(strings.TrimSpace(fv["email"])),
				PasswordHash: hash,
				IsAdmin:      fvBool(fv, "is_admin"),
			})
		},
		Delete: q.DeleteUser,
	}
}

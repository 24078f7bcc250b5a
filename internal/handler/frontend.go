package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"deptsite/internal/model"
	"deptsite/internal/render"
	"deptsite/internal/store"
)

// Home page section caps.
const (
	homeNewsCount         = 4
	homeEventsCount       = 4
	homeAchievementsCount = 6
	homeMoUsCount         = 8
	homePlacementCount    = 6
)

// Default section banners used when settings hold no usable value.
const (
	defaultFacultyBanner = "/static/images/banners/faculty.jpg"
	defaultNewsBanner    = "/static/images/banners/news.jpg"
	defaultEventsBanner  = "/static/images/banners/events.jpg"
	defaultPageBanner    = "/static/images/headers/default.jpg"
	defaultAboutBanner   = "/static/images/headers/about.jpg"
)

// FrontendHandler serves the public site.
type FrontendHandler struct {
	queries  *store.Queries
	renderer *render.Renderer
}

// NewFrontendHandler creates a new FrontendHandler.
func NewFrontendHandler(db *sql.DB, renderer *render.Renderer) *FrontendHandler {
	return &FrontendHandler{
		queries:  store.New(db),
		renderer: renderer,
	}
}

// baseData builds template data common to every public page: the settings
// singleton (created on first use) and the menu pages.
func (h *FrontendHandler) baseData(r *http.Request, title string) (render.TemplateData, error) {
	settings, err := h.queries.EnsureSettings(r.Context())
	if err != nil {
		return render.TemplateData{}, err
	}
	menuPages, err := h.queries.ListMenuPages(r.Context())
	if err != nil {
		return render.TemplateData{}, err
	}
	return render.TemplateData{
		Title:     title,
		Settings:  settings,
		MenuPages: menuPages,
	}, nil
}

// resolveBanner returns the configured banner value. Absolute /static/ and
// http(s) references pass through verbatim; anything else is treated as a
// path under the static tree. An empty setting yields the packaged default.
func resolveBanner(configured, fallback string) string {
	if configured == "" {
		return fallback
	}
	if strings.HasPrefix(configured, "/static/") ||
		strings.HasPrefix(configured, "http://") ||
		strings.HasPrefix(configured, "https://") {
		return configured
	}
	return "/static/" + strings.TrimPrefix(configured, "/")
}

// NotFound renders the public 404 page.
func (h *FrontendHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	data, err := h.baseData(r, "Page Not Found")
	if err != nil {
		serverError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNotFound)
	if err := h.renderer.Render(w, r, "public/404", data); err != nil {
		slog.Error("rendering 404 page", "error", err)
	}
}

type homeData struct {
	Slides        []model.HeroSlide
	About         *model.Page
	Programs      academicsData
	News          []model.News
	Events        []model.Event
	Achievements  []model.Achievement
	MoUs          []model.MoU
	PlacementRows []model.PlacementStat
}

// Home renders the landing page.
func (h *FrontendHandler) Home(w http.ResponseWriter, r *http.Request) {
	data, err := h.baseData(r, "")
	if err != nil {
		serverError(w, r, err)
		return
	}
	ctx := r.Context()

	var d homeData
	if d.Slides, err = h.queries.ListActiveHeroSlides(ctx); err != nil {
		serverError(w, r, err)
		return
	}
	// The about teaser is optional; a missing page just hides the section.
	if about, err := h.queries.GetPublishedPageBySlug(ctx, "about"); err == nil {
		d.About = &about
	} else if !errors.Is(err, sql.ErrNoRows) {
		serverError(w, r, err)
		return
	}
	if d.Programs.UG, err = h.queries.ListPublishedProgramsByLevel(ctx, model.ProgramLevelUG); err != nil {
		serverError(w, r, err)
		return
	}
	if d.Programs.PG, err = h.queries.ListPublishedProgramsByLevel(ctx, model.ProgramLevelPG); err != nil {
		serverError(w, r, err)
		return
	}
	if d.Programs.Research, err = h.queries.ListPublishedProgramsByLevel(ctx, model.ProgramLevelResearch); err != nil {
		serverError(w, r, err)
		return
	}
	if d.News, err = h.queries.ListPublishedNews(ctx, homeNewsCount); err != nil {
		serverError(w, r, err)
		return
	}
	if d.Events, err = h.queries.ListPublishedEvents(ctx, homeEventsCount); err != nil {
		serverError(w, r, err)
		return
	}
	if d.Achievements, err = h.queries.ListPublishedAchievements(ctx, homeAchievementsCount); err != nil {
		serverError(w, r, err)
		return
	}
	if d.MoUs, err = h.queries.ListPublishedMoUs(ctx, homeMoUsCount); err != nil {
		serverError(w, r, err)
		return
	}
	if d.PlacementRows, err = h.queries.ListVisiblePlacementStats(ctx, homePlacementCount); err != nil {
		serverError(w, r, err)
		return
	}

	data.Data = d
	if err := h.renderer.Render(w, r, "public/home", data); err != nil {
		serverError(w, r, err)
	}
}

// Page renders a free-form content page by slug.
func (h *FrontendHandler) Page(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, chi.URLParam(r, "slug"))
}

// About renders the about page, which is an ordinary content page with a
// fixed slug.
func (h *FrontendHandler) About(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "about")
}

type pageData struct {
	Page   model.Page
	Banner string
}

func (h *FrontendHandler) renderPage(w http.ResponseWriter, r *http.Request, slug string) {
	page, err := h.queries.GetPublishedPageBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// The about page always renders, with placeholder copy until
			// one is authored.
			if slug == "about" {
				h.renderPageContent(w, r, model.Page{
					Slug:     "about",
					Title:    "About the Department",
					BodyHTML: "<p>Information about the department will be published here soon.</p>",
				})
				return
			}
			h.NotFound(w, r)
			return
		}
		serverError(w, r, err)
		return
	}
	h.renderPageContent(w, r, page)
}

func (h *FrontendHandler) renderPageContent(w http.ResponseWriter, r *http.Request, page model.Page) {
	data, err := h.baseData(r, page.Title)
	if err != nil {
		serverError(w, r, err)
		return
	}

	fallback := defaultPageBanner
	if page.Slug == "about" {
		fallback = defaultAboutBanner
	}
	data.Data = pageData{
		Page:   page,
		Banner: resolveBanner(page.HeaderImageURL, fallback),
	}
	if err := h.renderer.Render(w, r, "public/page", data); err != nil {
		serverError(w, r, err)
	}
}

type academicsData struct {
	UG       []model.Program
	PG       []model.Program
	Research []model.Program
}

// Academics renders degree programs grouped by level.
func (h *FrontendHandler) Academics(w http.ResponseWriter, r *http.Request) {
	data, err := h.baseData(r, "Academics")
	if err != nil {
		serverError(w, r, err)
		return
	}
	ctx := r.Context()

	var d academicsData
	if d.UG, err = h.queries.ListPublishedProgramsByLevel(ctx, model.ProgramLevelUG); err != nil {
		serverError(w, r, err)
		return
	}
	if d.PG, err = h.queries.ListPublishedProgramsByLevel(ctx, model.ProgramLevelPG); err != nil {
		serverError(w, r, err)
		return
	}
	if d.Research, err = h.queries.ListPublishedProgramsByLevel(ctx, model.ProgramLevelResearch); err != nil {
		serverError(w, r, err)
		return
	}

	data.Data = d
	if err := h.renderer.Render(w, r, "public/academics", data); err != nil {
		serverError(w, r, err)
	}
}

type facultyPageData struct {
	Banner  string
	Members []model.Faculty
}

// Faculty renders the staff listing.
func (h *FrontendHandler) Faculty(w http.ResponseWriter, r *http.Request) {
	data, err := h.baseData(r, "Faculty")
	if err != nil {
		serverError(w, r, err)
		return
	}

	members, err := h.queries.ListPublishedFaculty(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}

	data.Data = facultyPageData{
		Banner:  resolveBanner(data.Settings.BannerFaculty, defaultFacultyBanner),
		Members: members,
	}
	if err := h.renderer.Render(w, r, "public/faculty", data); err != nil {
		serverError(w, r, err)
	}
}

type researchData struct {
	Projects     []model.FundedProject
	MoUs         []model.MoU
	Achievements []model.Achievement
}

// Research renders funded projects, partnerships, and achievements.
func (h *FrontendHandler) Research(w http.ResponseWriter, r *http.Request) {
	data, err := h.baseData(r, "Research")
	if err != nil {
		serverError(w, r, err)
		return
	}
	ctx := r.Context()

	var d researchData
	if d.Projects, err = h.queries.ListPublishedFundedProjects(ctx); err != nil {
		serverError(w, r, err)
		return
	}
	if d.MoUs, err = h.queries.ListPublishedMoUs(ctx, store.NoLimit); err != nil {
		serverError(w, r, err)
		return
	}
	if d.Achievements, err = h.queries.ListPublishedAchievements(ctx, store.NoLimit); err != nil {
		serverError(w, r, err)
		return
	}

	data.Data = d
	if err := h.renderer.Render(w, r, "public/research", data); err != nil {
		serverError(w, r, err)
	}
}

// Placements renders every visible placement figure.
func (h *FrontendHandler) Placements(w http.ResponseWriter, r *http.Request) {
	data, err := h.baseData(r, "Placements")
	if err != nil {
		serverError(w, r, err)
		return
	}

	stats, err := h.queries.ListVisiblePlacementStats(r.Context(), store.NoLimit)
	if err != nil {
		serverError(w, r, err)
		return
	}

	data.Data = stats
	if err := h.renderer.Render(w, r, "public/placements", data); err != nil {
		serverError(w, r, err)
	}
}

type newsListData struct {
	Banner string
	Items  []model.News
}

// NewsList renders all published news, newest first.
func (h *FrontendHandler) NewsList(w http.ResponseWriter, r *http.Request) {
	data, err := h.baseData(r, "News")
	if err != nil {
		serverError(w, r, err)
		return
	}

	items, err := h.queries.ListPublishedNews(r.Context(), store.NoLimit)
	if err != nil {
		serverError(w, r, err)
		return
	}

	data.Data = newsListData{
		Banner: resolveBanner(data.Settings.BannerNews, defaultNewsBanner),
		Items:  items,
	}
	if err := h.renderer.Render(w, r, "public/news_list", data); err != nil {
		serverError(w, r, err)
	}
}

// NewsDetail renders one published news item by slug.
func (h *FrontendHandler) NewsDetail(w http.ResponseWriter, r *http.Request) {
	item, err := h.queries.GetPublishedNewsBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			h.NotFound(w, r)
			return
		}
		serverError(w, r, err)
		return
	}

	data, err := h.baseData(r, item.Title)
	if err != nil {
		serverError(w, r, err)
		return
	}
	data.Data = item
	if err := h.renderer.Render(w, r, "public/news_detail", data); err != nil {
		serverError(w, r, err)
	}
}

type eventsListData struct {
	Banner string
	Items  []model.Event
}

// EventsList renders all published events, soonest first.
func (h *FrontendHandler) EventsList(w http.ResponseWriter, r *http.Request) {
	data, err := h.baseData(r, "Events")
	if err != nil {
		serverError(w, r, err)
		return
	}

	items, err := h.queries.ListPublishedEvents(r.Context(), store.NoLimit)
	if err != nil {
		serverError(w, r, err)
		return
	}

	data.Data = eventsListData{
		Banner: resolveBanner(data.Settings.BannerEvents, defaultEventsBanner),
		Items:  items,
	}
	if err := h.renderer.Render(w, r, "public/events_list", data); err != nil {
		serverError(w, r, err)
	}
}

// Newsletters renders published newsletter issues.
func (h *FrontendHandler) Newsletters(w http.ResponseWriter, r *http.Request) {
	data, err := h.baseData(r, "Newsletter")
	if err != nil {
		serverError(w, r, err)
		return
	}

	issues, err := h.queries.ListPublishedNewsletters(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}

	data.Data = issues
	if err := h.renderer.Render(w, r, "public/newsletter", data); err != nil {
		serverError(w, r, err)
	}
}

// Gallery renders published albums, newest year first.
func (h *FrontendHandler) Gallery(w http.ResponseWriter, r *http.Request) {
	data, err := h.baseData(r, "Gallery")
	if err != nil {
		serverError(w, r, err)
		return
	}

	albums, err := h.queries.ListPublishedGalleryAlbums(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}

	data.Data = albums
	if err := h.renderer.Render(w, r, "public/gallery", data); err != nil {
		serverError(w, r, err)
	}
}

type albumData struct {
	Album  model.GalleryAlbum
	Images []model.GalleryImage
}

// GalleryAlbum renders one published album with its images.
func (h *FrontendHandler) GalleryAlbum(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		h.NotFound(w, r)
		return
	}

	album, err := h.queries.GetPublishedGalleryAlbum(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			h.NotFound(w, r)
			return
		}
		serverError(w, r, err)
		return
	}

	images, err := h.queries.ListGalleryImagesByAlbum(r.Context(), album.ID)
	if err != nil {
		serverError(w, r, err)
		return
	}

	data, err := h.baseData(r, album.Title)
	if err != nil {
		serverError(w, r, err)
		return
	}
	data.Data = albumData{Album: album, Images: images}
	if err := h.renderer.Render(w, r, "public/gallery_album", data); err != nil {
		serverError(w, r, err)
	}
}

// Alumni renders all alumni, most recent graduates first.
func (h *FrontendHandler) Alumni(w http.ResponseWriter, r *http.Request) {
	data, err := h.baseData(r, "Alumni")
	if err != nil {
		serverError(w, r, err)
		return
	}

	alumni, err := h.queries.ListAllAlumni(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}

	data.Data = alumni
	if err := h.renderer.Render(w, r, "public/alumni", data); err != nil {
		serverError(w, r, err)
	}
}

// ContactForm renders the contact page.
func (h *FrontendHandler) ContactForm(w http.ResponseWriter, r *http.Request) {
	data, err := h.baseData(r, "Contact")
	if err != nil {
		serverError(w, r, err)
		return
	}
	if err := h.renderer.Render(w, r, "public/contact", data); err != nil {
		serverError(w, r, err)
	}
}

// ContactSubmit records a contact-form enquiry. Name, email, and message
// are required; a failed validation never inserts a row.
func (h *FrontendHandler) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		flashErrorRedirect(w, r, h.renderer, "/contact", "Invalid form data.")
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	email := strings.TrimSpace(r.FormValue("email"))
	message := strings.TrimSpace(r.FormValue("message"))
	if name == "" || email == "" || message == "" {
		flashErrorRedirect(w, r, h.renderer, "/contact", "Please fill in your name, email, and message.")
		return
	}

	_, err := h.queries.CreateEnquiry(r.Context(), store.CreateEnquiryParams{
		Name:    name,
		Email:   email,
		Phone:   strings.TrimSpace(r.FormValue("phone")),
		Message: message,
	})
	if err != nil {
		serverError(w, r, err)
		return
	}

	flashSuccessRedirect(w, r, h.renderer, "/contact", "Thank you for your enquiry. We will get back to you soon.")
}

package handler

import (
	"context"
	"database/sql"
	"net/http"

	"deptsite/internal/render"
	"deptsite/internal/store"
)

// AdminHandler serves the back-office dashboard.
type AdminHandler struct {
	queries  *store.Queries
	renderer *render.Renderer
	crud     *CrudHandler
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(db *sql.DB, renderer *render.Renderer, crud *CrudHandler) *AdminHandler {
	return &AdminHandler{
		queries:  store.New(db),
		renderer: renderer,
		crud:     crud,
	}
}

// dashboardStat is one count tile on the dashboard.
type dashboardStat struct {
	Label string
	Slug  string
	Count int64
}

type dashboardData struct {
	Menu  []*Resource
	Stats []dashboardStat
}

// Dashboard renders content counts with links into each screen.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	counts := []struct {
		label string
		slug  string
		count func(ctx context.Context) (int64, error)
	}{
		{"Pages", "pages", h.queries.CountPages},
		{"Faculty", "faculty", h.queries.CountFaculty},
		{"News", "news", h.queries.CountNews},
		{"Events", "events", h.queries.CountEvents},
		{"Gallery Albums", "gallery-albums", h.queries.CountGalleryAlbums},
		{"Enquiries", "enquiries", h.queries.CountEnquiries},
	}

	d := dashboardData{Menu: h.crud.Resources()}
	for _, c := range counts {
		n, err := c.count(ctx)
		if err != nil {
			serverError(w, r, err)
			return
		}
		d.Stats = append(d.Stats, dashboardStat{Label: c.label, Slug: c.slug, Count: n})
	}

	data := render.TemplateData{Title: "Dashboard", Data: d}
	if err := h.renderer.Render(w, r, "admin/dashboard", data); err != nil {
		serverError(w, r, err)
	}
}

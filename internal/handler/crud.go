package handler

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"deptsite/internal/imaging"
	"deptsite/internal/render"
	"deptsite/internal/util"
)

// FieldKind selects the form widget and parsing rules for a field.
type FieldKind string

// Field kinds.
const (
	FieldText     FieldKind = "text"
	FieldTextarea FieldKind = "textarea"
	FieldRichText FieldKind = "richtext"
	FieldCheckbox FieldKind = "checkbox"
	FieldSelect   FieldKind = "select"
	FieldInt      FieldKind = "int"
	FieldDate     FieldKind = "date"
	FieldDateTime FieldKind = "datetime"
	FieldPassword FieldKind = "password"
	FieldFile     FieldKind = "file"
)

// Option is one choice of a select field.
type Option struct {
	Value string
	Label string
}

// Field describes one editable attribute of a resource.
type Field struct {
	Name     string
	Label    string
	Kind     FieldKind
	Required bool

	// Options lists static select choices; OptionsFunc loads them per
	// request (e.g. foreign keys).
	Options     []Option
	OptionsFunc func(ctx context.Context) ([]Option, error)

	// UploadDir is the directory below the static root that a FieldFile
	// upload lands in. The stored value is canonicalized against it.
	UploadDir string
}

// FormValues holds a resource's field values as strings, keyed by field name.
type FormValues map[string]string

// ListRow is one row of a resource list screen.
type ListRow struct {
	ID    int64
	Cells []string
}

// Resource describes one admin CRUD screen. All storage access goes through
// the closures so a single pair of templates can drive every entity.
type Resource struct {
	Name    string // singular, e.g. "Faculty Member"
	Plural  string // e.g. "Faculty"
	Slug    string // URL path segment, e.g. "faculty"
	Columns []string
	Fields  []Field

	// Settings-style singletons disable create and delete.
	DisableCreate bool
	DisableDelete bool

	Count  func(ctx context.Context) (int64, error)
	List   func(ctx context.Context, limit, offset int64) ([]ListRow, error)
	Get    func(ctx context.Context, id int64) (FormValues, error)
	Create func(ctx context.Context, fv FormValues) error
	Update func(ctx context.Context, id int64, fv FormValues) error
	Delete func(ctx context.Context, id int64) error

	// Normalize adjusts parsed values before validation, e.g. deriving a
	// slug from the title.
	Normalize func(fv FormValues)

	// Validate returns a user-facing message for the first problem found,
	// or "" when the values are acceptable.
	Validate func(fv FormValues) string

	// ValidateCreate runs on create only, after Validate. Used for fields
	// that are required initially but optional on edit, like passwords.
	ValidateCreate func(fv FormValues) string
}

// CrudHandler serves every registered admin resource through two shared
// templates.
type CrudHandler struct {
	renderer  *render.Renderer
	processor *imaging.Processor
	resources []*Resource
}

// NewCrudHandler creates a CrudHandler.
func NewCrudHandler(renderer *render.Renderer, processor *imaging.Processor) *CrudHandler {
	return &CrudHandler{
		renderer:  renderer,
		processor: processor,
	}
}

// Register adds a resource. Registration order drives the admin menu.
func (h *CrudHandler) Register(res *Resource) {
	h.resources = append(h.resources, res)
}

// Resources returns the registered resources in menu order.
func (h *CrudHandler) Resources() []*Resource {
	return h.resources
}

// Mount attaches the CRUD routes for every registered resource onto an
// already-authenticated router.
func (h *CrudHandler) Mount(r chi.Router) {
	for _, res := range h.resources {
		res := res
		r.Get("/"+res.Slug, h.list(res))
		r.Get("/"+res.Slug+"/export", h.exportCSV(res))
		if !res.DisableCreate {
			r.Get("/"+res.Slug+"/new", h.form(res, true))
			r.Post("/"+res.Slug, h.create(res))
		}
		r.Get("/"+res.Slug+"/{id}/edit", h.form(res, false))
		r.Post("/"+res.Slug+"/{id}", h.update(res))
		if !res.DisableDelete {
			r.Post("/"+res.Slug+"/{id}/delete", h.delete(res))
		}
	}
}

type crudListData struct {
	Resource   *Resource
	Menu       []*Resource
	Rows       []ListRow
	Page       int
	TotalPages int
	Total      int64
}

func (h *CrudHandler) list(res *Resource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := 1
		if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p > 0 {
			page = p
		}

		total, err := res.Count(r.Context())
		if err != nil {
			serverError(w, r, err)
			return
		}
		totalPages := int((total + adminPageSize - 1) / adminPageSize)
		if totalPages < 1 {
			totalPages = 1
		}
		if page > totalPages {
			page = totalPages
		}

		rows, err := res.List(r.Context(), adminPageSize, int64(page-1)*adminPageSize)
		if err != nil {
			serverError(w, r, err)
			return
		}

		data := render.TemplateData{
			Title: res.Plural,
			Data: crudListData{
				Resource:   res,
				Menu:       h.resources,
				Rows:       rows,
				Page:       page,
				TotalPages: totalPages,
				Total:      total,
			},
		}
		if err := h.renderer.Render(w, r, "admin/resource_list", data); err != nil {
			serverError(w, r, err)
		}
	}
}

type crudFormData struct {
	Resource *Resource
	Menu     []*Resource
	Values   FormValues
	Options  map[string][]Option
	IsNew    bool
	Action   string
	ID       int64
}

func (h *CrudHandler) form(res *Resource, isNew bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fd := crudFormData{
			Resource: res,
			Menu:     h.resources,
			Values:   FormValues{},
			IsNew:    isNew,
			Action:   RouteAdmin + "/" + res.Slug,
		}

		if !isNew {
			id, ok := parseID(chi.URLParam(r, "id"))
			if !ok {
				http.NotFound(w, r)
				return
			}
			values, err := res.Get(r.Context(), id)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					http.NotFound(w, r)
					return
				}
				serverError(w, r, err)
				return
			}
			fd.Values = values
			fd.ID = id
			fd.Action = fmt.Sprintf("%s/%s/%d", RouteAdmin, res.Slug, id)
		}

		options, err := h.resolveOptions(r.Context(), res)
		if err != nil {
			serverError(w, r, err)
			return
		}
		fd.Options = options

		title := "New " + res.Name
		if !isNew {
			title = "Edit " + res.Name
		}
		data := render.TemplateData{Title: title, Data: fd}
		if err := h.renderer.Render(w, r, "admin/resource_form", data); err != nil {
			serverError(w, r, err)
		}
	}
}

func (h *CrudHandler) create(res *Resource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fv, errMsg := h.parseForm(r, res)
		listURL := RouteAdmin + "/" + res.Slug
		if errMsg == "" && res.ValidateCreate != nil {
			errMsg = res.ValidateCreate(fv)
		}
		if errMsg != "" {
			flashErrorRedirect(w, r, h.renderer, listURL+"/new", errMsg)
			return
		}

		if err := res.Create(r.Context(), fv); err != nil {
			serverError(w, r, err)
			return
		}
		flashSuccessRedirect(w, r, h.renderer, listURL, res.Name+" created.")
	}
}

func (h *CrudHandler) update(res *Resource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(chi.URLParam(r, "id"))
		if !ok {
			http.NotFound(w, r)
			return
		}

		fv, errMsg := h.parseForm(r, res)
		listURL := RouteAdmin + "/" + res.Slug
		if errMsg != "" {
			flashErrorRedirect(w, r, h.renderer,
				fmt.Sprintf("%s/%d/edit", listURL, id), errMsg)
			return
		}

		if err := res.Update(r.Context(), id, fv); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				http.NotFound(w, r)
				return
			}
			serverError(w, r, err)
			return
		}
		flashSuccessRedirect(w, r, h.renderer, listURL, res.Name+" updated.")
	}
}

func (h *CrudHandler) delete(res *Resource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(chi.URLParam(r, "id"))
		if !ok {
			http.NotFound(w, r)
			return
		}

		if err := res.Delete(r.Context(), id); err != nil {
			serverError(w, r, err)
			return
		}
		flashSuccessRedirect(w, r, h.renderer, RouteAdmin+"/"+res.Slug, res.Name+" deleted.")
	}
}

// exportCSV streams the full resource table as CSV.
func (h *CrudHandler) exportCSV(res *Resource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := res.List(r.Context(), 1<<31-1, 0)
		if err != nil {
			serverError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", res.Slug+".csv"))

		cw := csv.NewWriter(w)
		header := append([]string{"id"}, res.Columns...)
		_ = cw.Write(header)
		for _, row := range rows {
			record := append([]string{strconv.FormatInt(row.ID, 10)}, row.Cells...)
			_ = cw.Write(record)
		}
		cw.Flush()
	}
}

// parseForm reads the submitted values for every field, handling file
// uploads and canonicalizing upload paths. It returns a user-facing error
// message when parsing or validation fails.
func (h *CrudHandler) parseForm(r *http.Request, res *Resource) (FormValues, string) {
	hasFile := false
	for _, f := range res.Fields {
		if f.Kind == FieldFile {
			hasFile = true
			break
		}
	}

	if hasFile {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			return nil, "Invalid form data."
		}
	} else if err := r.ParseForm(); err != nil {
		return nil, "Invalid form data."
	}

	fv := FormValues{}
	for _, f := range res.Fields {
		switch f.Kind {
		case FieldCheckbox:
			if r.FormValue(f.Name) != "" {
				fv[f.Name] = "1"
			} else {
				fv[f.Name] = "0"
			}
		case FieldRichText:
			fv[f.Name] = h.renderer.Sanitize(strings.TrimSpace(r.FormValue(f.Name)))
		case FieldFile:
			value := strings.TrimSpace(r.FormValue(f.Name))
			file, header, err := r.FormFile(f.Name + "_upload")
			if err == nil {
				stored, saveErr := h.processor.SaveUpload(file, header.Filename, f.UploadDir)
				_ = file.Close()
				if saveErr != nil {
					return nil, "Could not process the uploaded image."
				}
				value = stored
			}
			fv[f.Name] = util.CanonicalStaticImagePath(f.UploadDir, value)
		default:
			fv[f.Name] = strings.TrimSpace(r.FormValue(f.Name))
		}
	}

	if res.Normalize != nil {
		res.Normalize(fv)
	}

	for _, f := range res.Fields {
		if f.Required && fv[f.Name] == "" {
			return nil, f.Label + " is required."
		}
	}
	if res.Validate != nil {
		if msg := res.Validate(fv); msg != "" {
			return nil, msg
		}
	}
	return fv, ""
}

func (h *CrudHandler) resolveOptions(ctx context.Context, res *Resource) (map[string][]Option, error) {
	options := make(map[string][]Option)
	for _, f := range res.Fields {
		if f.OptionsFunc != nil {
			opts, err := f.OptionsFunc(ctx)
			if err != nil {
				return nil, err
			}
			options[f.Name] = opts
		} else if len(f.Options) > 0 {
			options[f.Name] = f.Options
		}
	}
	return options, nil
}

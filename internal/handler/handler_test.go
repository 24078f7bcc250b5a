package handler

import (
	"context"
	"database/sql"
	"io"
	"io/fs"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	_ "modernc.org/sqlite"
	"github.com/stretchr/testify/require"

	"deptsite/internal/auth"
	"deptsite/internal/imaging"
	"deptsite/internal/middleware"
	"deptsite/internal/render"
	"deptsite/internal/store"
	"deptsite/web"
)

const (
	testAdminEmail    = "admin@example.edu"
	testAdminPassword = "correct-horse-battery"
	testViewerEmail   = "viewer@example.edu"
)

// testApp wires a full router against a temp database, mirroring the
// production route layout minus CSRF (which needs browser Fetch metadata).
type testApp struct {
	db      *sql.DB
	queries *store.Queries
	server  *httptest.Server
	client  *http.Client
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	db, err := sql.Open("sqlite", "file:"+filepath.Join(t.TempDir(), "test.db")+"?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, store.Migrate(db, store.DialectSQLite))

	sm := scs.New()

	templatesFS, err := fs.Sub(web.Templates, "templates")
	require.NoError(t, err)
	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sm,
		IsDev:          true,
	})
	require.NoError(t, err)

	processor := imaging.NewProcessor(t.TempDir())
	frontend := NewFrontendHandler(db, renderer)
	authHandler := NewAuthHandler(db, renderer, sm)
	crud := NewCrudHandler(renderer, processor)
	RegisterResources(crud, db)
	admin := NewAdminHandler(db, renderer, crud)

	r := chi.NewRouter()
	r.Use(sm.LoadAndSave)

	r.Get(RouteRoot, frontend.Home)
	r.Get("/p/{slug}", frontend.Page)
	r.Get("/about", frontend.About)
	r.Get("/news", frontend.NewsList)
	r.Get("/news/{slug}", frontend.NewsDetail)
	r.Get("/contact", frontend.ContactForm)
	r.Post("/contact", frontend.ContactSubmit)
	r.NotFound(frontend.NotFound)

	r.Get(RouteLogin, authHandler.LoginForm)
	r.Post(RouteLogin, authHandler.Login)
	r.Get(RouteLogout, authHandler.Logout)
	r.Post(RouteLogout, authHandler.Logout)

	r.Route(RouteAdmin, func(r chi.Router) {
		r.Use(middleware.RequireAdmin(sm, db))
		r.Get("/", admin.Dashboard)
		crud.Mount(r)
	})

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	app := &testApp{db: db, queries: store.New(db), server: server, client: client}
	app.createUser(t, testAdminEmail, testAdminPassword, true)
	app.createUser(t, testViewerEmail, testAdminPassword, false)
	return app
}

func (a *testApp) createUser(t *testing.T, email, password string, isAdmin bool) {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	_, err = a.queries.CreateUser(context.Background(), store.CreateUserParams{
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      isAdmin,
	})
	require.NoError(t, err)
}

func (a *testApp) get(t *testing.T, path string) *http.Response {
	t.Helper()
	resp, err := a.client.Get(a.server.URL + path)
	require.NoError(t, err)
	return resp
}

func (a *testApp) postForm(t *testing.T, path string, form url.Values) *http.Response {
	t.Helper()
	resp, err := a.client.PostForm(a.server.URL+path, form)
	require.NoError(t, err)
	return resp
}

func (a *testApp) login(t *testing.T, email, password string) *http.Response {
	t.Helper()
	return a.postForm(t, RouteLogin, url.Values{
		"email":    {email},
		"password": {password},
	})
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func location(t *testing.T, resp *http.Response) string {
	t.Helper()
	_ = resp.Body.Close()
	loc := resp.Header.Get("Location")
	require.NotEmpty(t, loc, "expected a redirect with a Location header")
	return loc
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("response body does not contain %q", needle)
	}
}

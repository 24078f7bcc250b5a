package middleware

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	_ "modernc.org/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deptsite/internal/store"
)

func newAuthTestServer(t *testing.T) (*httptest.Server, *scs.SessionManager, *sql.DB) {
	t.Helper()

	db, err := sql.Open("sqlite", "file:"+filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, store.Migrate(db, store.DialectSQLite))

	sm := scs.New()

	r := chi.NewRouter()
	r.Use(sm.LoadAndSave)
	r.Route("/admin", func(r chi.Router) {
		r.Use(RequireAdmin(sm, db))
		r.Get("/pages", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})
	// Helper route to plant a session for a given user id.
	r.Get("/signin/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		sm.Put(r.Context(), SessionKeyUserID, id)
		w.WriteHeader(http.StatusOK)
	})

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server, sm, db
}

func newNoRedirectClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func TestRequireAdminRedirectsAnonymous(t *testing.T) {
	server, _, _ := newAuthTestServer(t)
	client := newNoRedirectClient(t)

	resp, err := client.Get(server.URL + "/admin/pages?page=2")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	loc := resp.Header.Get("Location")
	assert.Equal(t, "/auth/login?next="+url.QueryEscape("/admin/pages?page=2"), loc)
}

func TestRequireAdminRejectsStaleSession(t *testing.T) {
	server, _, _ := newAuthTestServer(t)
	client := newNoRedirectClient(t)

	// Session points at a user id that does not exist.
	resp, err := client.Get(server.URL + "/signin/42")
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = client.Get(server.URL + "/admin/pages")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
}

func TestRequireAdminRejectsNonAdmin(t *testing.T) {
	server, _, db := newAuthTestServer(t)
	client := newNoRedirectClient(t)

	user, err := store.New(db).CreateUser(context.Background(), store.CreateUserParams{
		Email:        "viewer@example.edu",
		PasswordHash: "x",
		IsAdmin:      false,
	})
	require.NoError(t, err)

	resp, err := client.Get(server.URL + "/signin/" + strconv.FormatInt(user.ID, 10))
	require.NoError(t, err)
	_ = resp.Body.Close()

	resp, err = client.Get(server.URL + "/admin/pages")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	server, _, db := newAuthTestServer(t)
	client := newNoRedirectClient(t)

	user, err := store.New(db).CreateUser(context.Background(), store.CreateUserParams{
		Email:        "admin@example.edu",
		PasswordHash: "x",
		IsAdmin:      true,
	})
	require.NoError(t, err)

	resp, err := client.Get(server.URL + "/signin/" + strconv.FormatInt(user.ID, 10))
	require.NoError(t, err)
	_ = resp.Body.Close()

	resp, err = client.Get(server.URL + "/admin/pages")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

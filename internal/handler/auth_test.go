package handler

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeNextURL(t *testing.T) {
	tests := []struct {
		name string
		next string
		want string
	}{
		{"empty", "", ""},
		{"local path", "/admin/pages", "/admin/pages"},
		{"local path with query", "/admin/news?page=2", "/admin/news?page=2"},
		{"absolute url", "https://evil.example/", ""},
		{"scheme relative", "//evil.example/", ""},
		{"no leading slash", "admin", ""},
		{"backslash trick", "/\\evil.example", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, safeNextURL(tt.next))
		})
	}
}

func TestLoginFailuresAreUniform(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown account", "nobody@example.edu", "whatever"},
		{"wrong password", testAdminEmail, "not-the-password"},
		{"valid non-admin credentials", testViewerEmail, testAdminPassword},
		{"missing password", testAdminEmail, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := app.login(t, tt.email, tt.password)
			assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
			assert.Equal(t, RouteLogin, location(t, resp))

			// Every failure produces the identical flash message.
			resp = app.get(t, RouteLogin)
			requireContains(t, body(t, resp), msgInvalidCredentials)

			// And no session was established.
			resp = app.get(t, RouteAdmin+"/")
			assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
			_ = resp.Body.Close()
		})
	}
}

func TestLoginSuccess(t *testing.T) {
	app := newTestApp(t)

	resp := app.login(t, testAdminEmail, testAdminPassword)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, RouteAdmin, location(t, resp))

	resp = app.get(t, RouteAdmin+"/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	requireContains(t, body(t, resp), "Dashboard")
}

func TestLoginEmailCaseInsensitive(t *testing.T) {
	app := newTestApp(t)

	resp := app.login(t, "  Admin@Example.EDU  ", testAdminPassword)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, RouteAdmin, location(t, resp))
}

func TestLoginNextRedirect(t *testing.T) {
	tests := []struct {
		name string
		next string
		want string
	}{
		{"safe local target", "/admin/pages", "/admin/pages"},
		{"external target falls back", "https://evil.example/", RouteAdmin},
		{"scheme relative falls back", "//evil.example/", RouteAdmin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t)
			resp := app.postForm(t, RouteLogin, url.Values{
				"email":    {testAdminEmail},
				"password": {testAdminPassword},
				"next":     {tt.next},
			})
			require.Equal(t, http.StatusSeeOther, resp.StatusCode)
			assert.Equal(t, tt.want, location(t, resp))
		})
	}
}

func TestLogout(t *testing.T) {
	app := newTestApp(t)

	resp := app.login(t, testAdminEmail, testAdminPassword)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	_ = resp.Body.Close()

	resp = app.postForm(t, RouteLogout, url.Values{})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, RouteRoot, location(t, resp))

	resp = app.get(t, RouteAdmin+"/")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	_ = resp.Body.Close()
}

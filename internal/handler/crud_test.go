package handler

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deptsite/internal/store"
)

func loginAsAdmin(t *testing.T, app *testApp) {
	t.Helper()
	resp := app.login(t, testAdminEmail, testAdminPassword)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestAdminRequiresLogin(t *testing.T) {
	app := newTestApp(t)

	resp := app.get(t, "/admin/pages")
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	loc := location(t, resp)
	assert.True(t, strings.HasPrefix(loc, RouteLogin), "got %q", loc)
	assert.Contains(t, loc, "next=")
}

func TestAdminListPagination(t *testing.T) {
	app := newTestApp(t)
	loginAsAdmin(t, app)
	ctx := context.Background()

	for i := 1; i <= adminPageSize+5; i++ {
		_, err := app.queries.CreatePage(ctx, store.CreatePageParams{
			Slug:  fmt.Sprintf("page-%02d", i),
			Title: fmt.Sprintf("Page %02d", i),
		})
		require.NoError(t, err)
	}

	resp := app.get(t, "/admin/pages")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	html := body(t, resp)
	requireContains(t, html, "?page=2")

	resp = app.get(t, "/admin/pages?page=2")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	// Out-of-range pages clamp to the last page instead of erroring.
	resp = app.get(t, "/admin/pages?page=99")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestAdminExportCSV(t *testing.T) {
	app := newTestApp(t)
	loginAsAdmin(t, app)
	ctx := context.Background()

	names := []string{"B.E. CSE", "M.E. CSE", "Ph.D. CS"}
	for _, name := range names {
		_, err := app.queries.CreateProgram(ctx, store.CreateProgramParams{
			Level:       "UG",
			Name:        name,
			IsPublished: true,
		})
		require.NoError(t, err)
	}

	resp := app.get(t, "/admin/programs/export")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "programs.csv")

	records, err := csv.NewReader(strings.NewReader(body(t, resp))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(names)+1, "header plus one record per row")
	assert.Equal(t, "id", records[0][0])

	var got []string
	for _, rec := range records[1:] {
		got = append(got, rec[2]) // name column follows id and level
	}
	for _, name := range names {
		assert.Contains(t, got, name)
	}
}

func TestAdminCreateAndUpdateProgram(t *testing.T) {
	app := newTestApp(t)
	loginAsAdmin(t, app)
	ctx := context.Background()

	resp := app.postForm(t, "/admin/programs", url.Values{
		"level":        {"PG"},
		"name":         {"M.Tech Data Science"},
		"duration":     {"2 years"},
		"is_published": {"1"},
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin/programs", location(t, resp))

	programs, err := app.queries.ListPrograms(ctx, store.NoLimit, 0)
	require.NoError(t, err)
	require.Len(t, programs, 1)
	p := programs[0]
	assert.Equal(t, "M.Tech Data Science", p.Name)
	assert.True(t, p.IsPublished)

	resp = app.postForm(t, fmt.Sprintf("/admin/programs/%d", p.ID), url.Values{
		"level":    {"PG"},
		"name":     {"M.Tech Data Science"},
		"duration": {"2 years"},
		// checkbox omitted: unpublish
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	_ = resp.Body.Close()

	updated, err := app.queries.GetProgram(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, updated.IsPublished)
}

func TestAdminCreateRejectsMissingRequiredField(t *testing.T) {
	app := newTestApp(t)
	loginAsAdmin(t, app)

	resp := app.postForm(t, "/admin/programs", url.Values{
		"level": {"UG"},
		"name":  {"   "},
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin/programs/new", location(t, resp))

	n, err := app.queries.CountPrograms(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestUserCreateRequiresPassword(t *testing.T) {
	app := newTestApp(t)
	loginAsAdmin(t, app)
	ctx := context.Background()

	before, err := app.queries.CountUsers(ctx)
	require.NoError(t, err)

	resp := app.postForm(t, "/admin/users", url.Values{
		"email": {"new-admin@example.edu"},
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin/users/new", location(t, resp))

	after, err := app.queries.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	// With a password the account is created.
	resp = app.postForm(t, "/admin/users", url.Values{
		"email":    {"new-admin@example.edu"},
		"password": {"a-long-enough-secret"},
		"is_admin": {"1"},
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin/users", location(t, resp))

	after, err = app.queries.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, before+1, after)
}

func TestEnquiryResourceHasNoCreateRoute(t *testing.T) {
	app := newTestApp(t)
	loginAsAdmin(t, app)

	// "new" matches the {id} node, which has no GET handler for this
	// resource, so the router answers 405 rather than 404.
	resp := app.get(t, "/admin/enquiries/new")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	_ = resp.Body.Close()

	resp = app.postForm(t, "/admin/enquiries", url.Values{"name": {"x"}})
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestEnquiryListTruncatesLongMessages(t *testing.T) {
	app := newTestApp(t)
	loginAsAdmin(t, app)

	// A long multi-byte message must be shortened on rune boundaries, not
	// byte offsets.
	_, err := app.queries.CreateEnquiry(context.Background(), store.CreateEnquiryParams{
		Name:    "Mété",
		Email:   "mete@example.com",
		Message: strings.Repeat("é", 100),
	})
	require.NoError(t, err)

	resp := app.get(t, "/admin/enquiries")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	html := body(t, resp)
	requireContains(t, html, strings.Repeat("é", 80)+"...")
	assert.NotContains(t, html, "�")
}

func TestRichTextSanitizedOnSave(t *testing.T) {
	app := newTestApp(t)
	loginAsAdmin(t, app)

	resp := app.postForm(t, "/admin/programs", url.Values{
		"level":         {"UG"},
		"name":          {"Sanitized Program"},
		"overview_html": {`<p>fine</p><script>alert(1)</script>`},
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	_ = resp.Body.Close()

	programs, err := app.queries.ListPrograms(context.Background(), store.NoLimit, 0)
	require.NoError(t, err)
	require.Len(t, programs, 1)
	assert.Contains(t, programs[0].OverviewHTML, "<p>fine</p>")
	assert.NotContains(t, programs[0].OverviewHTML, "<script>")
}

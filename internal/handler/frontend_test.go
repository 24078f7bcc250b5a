package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deptsite/internal/store"
)

func TestResolveBanner(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		want       string
	}{
		{"empty uses fallback", "", "/static/images/banners/news.jpg"},
		{"static path kept", "/static/images/headers/custom.jpg", "/static/images/headers/custom.jpg"},
		{"https kept", "https://cdn.example.edu/banner.jpg", "https://cdn.example.edu/banner.jpg"},
		{"http kept", "http://cdn.example.edu/banner.jpg", "http://cdn.example.edu/banner.jpg"},
		{"bare filename gets static prefix", "banner.jpg", "/static/banner.jpg"},
		{"relative path gets static prefix", "images/banner.jpg", "/static/images/banner.jpg"},
		{"rooted path gets static prefix", "/images/banner.jpg", "/static/images/banner.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveBanner(tt.configured, "/static/images/banners/news.jpg"))
		})
	}
}

func TestHomeNewsCap(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	// Six published items plus one unpublished; the home page shows the
	// four most recent published items only.
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= 6; i++ {
		_, err := app.queries.CreateNews(ctx, store.CreateNewsParams{
			Title:       fmt.Sprintf("Headline Number %d", i),
			Slug:        fmt.Sprintf("headline-%d", i),
			PublishedOn: base.AddDate(0, 0, i),
			IsPublished: true,
		})
		require.NoError(t, err)
	}
	_, err := app.queries.CreateNews(ctx, store.CreateNewsParams{
		Title:       "Hidden Draft Story",
		Slug:        "hidden-draft",
		PublishedOn: base.AddDate(0, 1, 0),
		IsPublished: false,
	})
	require.NoError(t, err)

	resp := app.get(t, "/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	html := body(t, resp)

	for i := 3; i <= 6; i++ {
		requireContains(t, html, fmt.Sprintf("Headline Number %d", i))
	}
	assert.NotContains(t, html, "Headline Number 1")
	assert.NotContains(t, html, "Headline Number 2")
	assert.NotContains(t, html, "Hidden Draft Story")
}

func TestHomeAboutTeaser(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	// Without an about page the teaser section is absent.
	resp := app.get(t, "/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotContains(t, body(t, resp), "home-about")

	_, err := app.queries.CreatePage(ctx, store.CreatePageParams{
		Slug:        "about",
		Title:       "About the Department",
		BodyHTML:    "<p>Founded in 1968, the department has <b>grown</b> steadily.</p>",
		IsPublished: true,
	})
	require.NoError(t, err)

	resp = app.get(t, "/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	html := body(t, resp)
	requireContains(t, html, "About the Department")
	// The teaser is plain text, not the raw rich-text markup.
	requireContains(t, html, "Founded in 1968, the department has grown steadily.")
	assert.NotContains(t, html, "<b>grown</b>")
}

func TestUnpublishedPageHidden(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	_, err := app.queries.CreatePage(ctx, store.CreatePageParams{
		Slug:        "handbook",
		Title:       "Student Handbook",
		BodyHTML:    "<p>rules</p>",
		IsPublished: false,
	})
	require.NoError(t, err)

	resp := app.get(t, "/p/handbook")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()

	_, err = app.queries.CreatePage(ctx, store.CreatePageParams{
		Slug:        "visible",
		Title:       "Visible Page",
		BodyHTML:    "<p>hello</p>",
		IsPublished: true,
	})
	require.NoError(t, err)

	resp = app.get(t, "/p/visible")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	requireContains(t, body(t, resp), "Visible Page")
}

func TestPageHeaderBannerFallback(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	_, err := app.queries.CreatePage(ctx, store.CreatePageParams{
		Slug:        "plain",
		Title:       "Plain Page",
		IsPublished: true,
	})
	require.NoError(t, err)
	_, err = app.queries.CreatePage(ctx, store.CreatePageParams{
		Slug:           "decorated",
		Title:          "Decorated Page",
		HeaderImageURL: "images/headers/custom.jpg",
		IsPublished:    true,
	})
	require.NoError(t, err)

	resp := app.get(t, "/p/plain")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	requireContains(t, body(t, resp), "/static/images/headers/default.jpg")

	resp = app.get(t, "/p/decorated")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	requireContains(t, body(t, resp), "/static/images/headers/custom.jpg")
}

func TestAboutRendersWithoutPage(t *testing.T) {
	app := newTestApp(t)

	// No about page authored yet: placeholder copy with the about banner.
	resp := app.get(t, "/about")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	html := body(t, resp)
	requireContains(t, html, "About the Department")
	requireContains(t, html, "/static/images/headers/about.jpg")

	_, err := app.queries.CreatePage(context.Background(), store.CreatePageParams{
		Slug:        "about",
		Title:       "Our History",
		BodyHTML:    "<p>Established long ago.</p>",
		IsPublished: true,
	})
	require.NoError(t, err)

	resp = app.get(t, "/about")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	requireContains(t, body(t, resp), "Our History")
}

func TestUnpublishedNewsDetailHidden(t *testing.T) {
	app := newTestApp(t)

	_, err := app.queries.CreateNews(context.Background(), store.CreateNewsParams{
		Title:       "Embargoed Story",
		Slug:        "embargoed",
		PublishedOn: time.Now().UTC(),
		IsPublished: false,
	})
	require.NoError(t, err)

	resp := app.get(t, "/news/embargoed")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestContactSubmitValidation(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	// Missing message: nothing is stored.
	resp := app.postForm(t, "/contact", url.Values{
		"name":    {"Asha"},
		"email":   {"asha@example.com"},
		"message": {"   "},
	})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/contact", location(t, resp))

	// Missing email fails the same way.
	resp = app.postForm(t, "/contact", url.Values{
		"name":    {"Asha"},
		"message": {"Please send the PG brochure."},
	})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/contact", location(t, resp))

	n, err := app.queries.CountEnquiries(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	// Complete submission is stored with the initial status.
	resp = app.postForm(t, "/contact", url.Values{
		"name":    {"Asha"},
		"email":   {"asha@example.com"},
		"message": {"Please send the PG brochure."},
	})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	_ = resp.Body.Close()

	enquiries, err := app.queries.ListEnquiries(ctx, store.NoLimit, 0)
	require.NoError(t, err)
	require.Len(t, enquiries, 1)
	assert.Equal(t, "Asha", enquiries[0].Name)
	assert.Equal(t, "New", enquiries[0].Status)
	assert.True(t, strings.Contains(enquiries[0].Message, "brochure"))
}

func TestMenuPagesAppearInNav(t *testing.T) {
	app := newTestApp(t)

	_, err := app.queries.CreatePage(context.Background(), store.CreatePageParams{
		Slug:        "library",
		Title:       "Department Library",
		IsPublished: true,
		ShowInMenu:  true,
	})
	require.NoError(t, err)

	resp := app.get(t, "/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	requireContains(t, body(t, resp), "Department Library")
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deptsite/internal/model"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+filepath.Join(t.TempDir(), "test.db")+"?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(db, DialectSQLite))
	return db
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEnsureSettings(t *testing.T) {
	q := New(newTestDB(t))
	ctx := context.Background()

	s, err := q.EnsureSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultDeptName, s.DeptName)
	assert.Equal(t, model.DefaultEnquiryEmail, s.EnquiryEmail)

	// Second call returns the same row rather than inserting another.
	again, err := q.EnsureSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, s.ID, again.ID)

	require.NoError(t, q.UpdateSettings(ctx, UpdateSettingsParams{
		ID:       s.ID,
		DeptName: "Dept of Testing",
	}))
	updated, err := q.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Dept of Testing", updated.DeptName)
}

func TestPageLifecycle(t *testing.T) {
	q := New(newTestDB(t))
	ctx := context.Background()

	p, err := q.CreatePage(ctx, CreatePageParams{
		Slug:        "about",
		Title:       "About Us",
		BodyHTML:    "<p>hello</p>",
		IsPublished: true,
	})
	require.NoError(t, err)
	assert.NotZero(t, p.ID)

	got, err := q.GetPublishedPageBySlug(ctx, "about")
	require.NoError(t, err)
	assert.Equal(t, "About Us", got.Title)

	require.NoError(t, q.UpdatePage(ctx, UpdatePageParams{
		ID:    p.ID,
		Slug:  "about",
		Title: "About Us",
	}))
	_, err = q.GetPublishedPageBySlug(ctx, "about")
	assert.True(t, errors.Is(err, sql.ErrNoRows), "unpublished page must not resolve")

	require.NoError(t, q.DeletePage(ctx, p.ID))
	n, err := q.CountPages(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestNewsOrderingAndFilter(t *testing.T) {
	q := New(newTestDB(t))
	ctx := context.Background()

	day := func(d int) time.Time {
		return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
	}
	for i, item := range []CreateNewsParams{
		{Title: "Old", Slug: "old", PublishedOn: day(1), IsPublished: true},
		{Title: "New", Slug: "new", PublishedOn: day(20), IsPublished: true},
		{Title: "Mid", Slug: "mid", PublishedOn: day(10), IsPublished: true},
		{Title: "Draft", Slug: "draft", PublishedOn: day(25), IsPublished: false},
	} {
		_, err := q.CreateNews(ctx, item)
		require.NoError(t, err, "item %d", i)
	}

	list, err := q.ListPublishedNews(ctx, NoLimit)
	require.NoError(t, err)
	require.Len(t, list, 3, "draft must be excluded")
	assert.Equal(t, []string{"New", "Mid", "Old"},
		[]string{list[0].Title, list[1].Title, list[2].Title})

	limited, err := q.ListPublishedNews(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	_, err = q.GetPublishedNewsBySlug(ctx, "draft")
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestAchievementsFeaturedFirst(t *testing.T) {
	q := New(newTestDB(t))
	ctx := context.Background()

	_, err := q.CreateAchievement(ctx, CreateAchievementParams{Title: "Plain", IsPublished: true})
	require.NoError(t, err)
	_, err = q.CreateAchievement(ctx, CreateAchievementParams{Title: "Starred", IsFeatured: true, IsPublished: true})
	require.NoError(t, err)
	_, err = q.CreateAchievement(ctx, CreateAchievementParams{Title: "Hidden", IsFeatured: true})
	require.NoError(t, err)

	list, err := q.ListPublishedAchievements(ctx, NoLimit)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Starred", list[0].Title)
}

func TestHeroSlideOrdering(t *testing.T) {
	q := New(newTestDB(t))
	ctx := context.Background()

	_, err := q.CreateHeroSlide(ctx, CreateHeroSlideParams{Title: "B", Position: 2, IsActive: true})
	require.NoError(t, err)
	_, err = q.CreateHeroSlide(ctx, CreateHeroSlideParams{Title: "A", Position: 1, IsActive: true})
	require.NoError(t, err)
	_, err = q.CreateHeroSlide(ctx, CreateHeroSlideParams{Title: "Off", Position: 0, IsActive: false})
	require.NoError(t, err)

	slides, err := q.ListActiveHeroSlides(ctx)
	require.NoError(t, err)
	require.Len(t, slides, 2)
	assert.Equal(t, "A", slides[0].Title)
	assert.Equal(t, "B", slides[1].Title)
}

func TestGalleryCascadeDelete(t *testing.T) {
	q := New(newTestDB(t))
	ctx := context.Background()

	album, err := q.CreateGalleryAlbum(ctx, CreateGalleryAlbumParams{Title: "Tech Fest", Year: "2025", IsPublished: true})
	require.NoError(t, err)
	_, err = q.CreateGalleryImage(ctx, CreateGalleryImageParams{AlbumID: album.ID, ImageURL: "/static/images/gallery/a.jpg"})
	require.NoError(t, err)
	_, err = q.CreateGalleryImage(ctx, CreateGalleryImageParams{AlbumID: album.ID, ImageURL: "/static/images/gallery/b.jpg"})
	require.NoError(t, err)

	require.NoError(t, q.DeleteGalleryAlbum(ctx, album.ID))
	n, err := q.CountGalleryImages(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "album images must be deleted with the album")
}

func TestEnquiryStatusWorkflow(t *testing.T) {
	q := New(newTestDB(t))
	ctx := context.Background()

	e, err := q.CreateEnquiry(ctx, CreateEnquiryParams{Name: "Asha", Message: "Admission query"})
	require.NoError(t, err)
	assert.Equal(t, model.EnquiryStatusNew, e.Status)

	require.NoError(t, q.UpdateEnquiryStatus(ctx, e.ID, model.EnquiryStatusClosed))
	got, err := q.GetEnquiry(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, model.EnquiryStatusClosed, got.Status)
}

func TestSeedAdminIdempotent(t *testing.T) {
	q := New(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, SeedAdmin(ctx, q, "admin@example.edu", "hash-one", discardLogger()))
	require.NoError(t, SeedAdmin(ctx, q, "other@example.edu", "hash-two", discardLogger()))

	n, err := q.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	u, err := q.GetUserByEmail(ctx, "admin@example.edu")
	require.NoError(t, err)
	assert.True(t, u.IsAdmin)
}

func TestSeedDemoOnlyWhenEmpty(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	script := filepath.Join(t.TempDir(), "seed.sql")
	require.NoError(t, os.WriteFile(script, []byte(`
-- demo content
INSERT INTO faculty (name, designation, created_at, updated_at)
VALUES ('Dr. Meena', 'Professor', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP);
INSERT INTO placement_stats (label, value, created_at, updated_at)
VALUES ('Highest Package', '18 LPA', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP);
`), 0o600))

	require.NoError(t, SeedDemo(ctx, db, script, discardLogger()))

	q := New(db)
	n, err := q.CountFaculty(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	// Re-running must not duplicate content.
	require.NoError(t, SeedDemo(ctx, db, script, discardLogger()))
	n, err = q.CountPlacementStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestSplitStatements(t *testing.T) {
	stmts := splitStatements("-- comment\nINSERT INTO a VALUES (1);\n\nINSERT INTO b\nVALUES (2);\n")
	require.Len(t, stmts, 2)
	assert.Equal(t, "INSERT INTO a VALUES (1);", stmts[0])
}

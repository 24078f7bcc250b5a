package store

import (
	"context"
	"time"

	"deptsite/internal/model"
)

const galleryAlbumColumns = `id, title, category, year, cover_image_url, is_published,
	created_at, updated_at`

const galleryImageColumns = `id, album_id, image_url, caption, created_at, updated_at`

func scanGalleryAlbum(row rowScanner) (model.GalleryAlbum, error) {
	var a model.GalleryAlbum
	err := row.Scan(&a.ID, &a.Title, &a.Category, &a.Year, &a.CoverImageURL,
		&a.IsPublished, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func scanGalleryImage(row rowScanner) (model.GalleryImage, error) {
	var img model.GalleryImage
	err := row.Scan(&img.ID, &img.AlbumID, &img.ImageURL, &img.Caption,
		&img.CreatedAt, &img.UpdatedAt)
	return img, err
}

func (q *Queries) collectGalleryAlbums(ctx context.Context, query string, args ...any) ([]model.GalleryAlbum, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var albums []model.GalleryAlbum
	for rows.Next() {
		a, err := scanGalleryAlbum(rows)
		if err != nil {
			return nil, err
		}
		albums = append(albums, a)
	}
	return albums, rows.Err()
}

// GetGalleryAlbum returns the album with the given id.
func (q *Queries) GetGalleryAlbum(ctx context.Context, id int64) (model.GalleryAlbum, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+galleryAlbumColumns+` FROM gallery_albums WHERE id = ?`, id)
	return scanGalleryAlbum(row)
}

// GetPublishedGalleryAlbum returns a published album by id.
func (q *Queries) GetPublishedGalleryAlbum(ctx context.Context, id int64) (model.GalleryAlbum, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+galleryAlbumColumns+` FROM gallery_albums
		 WHERE id = ? AND is_published = TRUE`, id)
	return scanGalleryAlbum(row)
}

// ListPublishedGalleryAlbums returns published albums, newest year first.
func (q *Queries) ListPublishedGalleryAlbums(ctx context.Context) ([]model.GalleryAlbum, error) {
	return q.collectGalleryAlbums(ctx,
		`SELECT `+galleryAlbumColumns+` FROM gallery_albums
		 WHERE is_published = TRUE ORDER BY year DESC, id DESC`)
}

// CountGalleryAlbums returns the total number of albums.
func (q *Queries) CountGalleryAlbums(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM gallery_albums`).Scan(&n)
	return n, err
}

// ListGalleryAlbums returns a page of albums, newest year first.
func (q *Queries) ListGalleryAlbums(ctx context.Context, limit, offset int64) ([]model.GalleryAlbum, error) {
	return q.collectGalleryAlbums(ctx,
		`SELECT `+galleryAlbumColumns+` FROM gallery_albums
		 ORDER BY year DESC, id DESC LIMIT ? OFFSET ?`, limit, offset)
}

// CreateGalleryAlbumParams holds the fields for CreateGalleryAlbum.
type CreateGalleryAlbumParams struct {
	Title         string
	Category      string
	Year          string
	CoverImageURL string
	IsPublished   bool
}

// CreateGalleryAlbum inserts a new album.
func (q *Queries) CreateGalleryAlbum(ctx context.Context, arg CreateGalleryAlbumParams) (model.GalleryAlbum, error) {
	now := time.Now().UTC()
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO gallery_albums (title, category, year, cover_image_url,
		 is_published, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		arg.Title, arg.Category, arg.Year, arg.CoverImageURL, arg.IsPublished, now, now)
	if err != nil {
		return model.GalleryAlbum{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.GalleryAlbum{}, err
	}
	return q.GetGalleryAlbum(ctx, id)
}

// UpdateGalleryAlbumParams holds the fields for UpdateGalleryAlbum.
type UpdateGalleryAlbumParams struct {
	ID            int64
	Title         string
	Category      string
	Year          string
	CoverImageURL string
	IsPublished   bool
}

// UpdateGalleryAlbum updates an album.
func (q *Queries) UpdateGalleryAlbum(ctx context.Context, arg UpdateGalleryAlbumParams) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE gallery_albums SET title = ?, category = ?, year = ?,
		 cover_image_url = ?, is_published = ?, updated_at = ? WHERE id = ?`,
		arg.Title, arg.Category, arg.Year, arg.CoverImageURL, arg.IsPublished,
		time.Now().UTC(), arg.ID)
	return err
}

// DeleteGalleryAlbum removes an album; its images go with it.
func (q *Queries) DeleteGalleryAlbum(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM gallery_albums WHERE id = ?`, id)
	return err
}

// GetGalleryImage returns the image with the given id.
func (q *Queries) GetGalleryImage(ctx context.Context, id int64) (model.GalleryImage, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+galleryImageColumns+` FROM gallery_images WHERE id = ?`, id)
	return scanGalleryImage(row)
}

// ListGalleryImagesByAlbum returns an album's images in insertion order.
func (q *Queries) ListGalleryImagesByAlbum(ctx context.Context, albumID int64) ([]model.GalleryImage, error) {
	return q.collectGalleryImages(ctx,
		`SELECT `+galleryImageColumns+` FROM gallery_images
		 WHERE album_id = ? ORDER BY id`, albumID)
}

// CountGalleryImages returns the total number of gallery images.
func (q *Queries) CountGalleryImages(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM gallery_images`).Scan(&n)
	return n, err
}

// ListGalleryImages returns a page of images across all albums.
func (q *Queries) ListGalleryImages(ctx context.Context, limit, offset int64) ([]model.GalleryImage, error) {
	return q.collectGalleryImages(ctx,
		`SELECT `+galleryImageColumns+` FROM gallery_images
		 ORDER BY album_id, id LIMIT ? OFFSET ?`, limit, offset)
}

func (q *Queries) collectGalleryImages(ctx context.Context, query string, args ...any) ([]model.GalleryImage, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []model.GalleryImage
	for rows.Next() {
		img, err := scanGalleryImage(rows)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

// CreateGalleryImageParams holds the fields for CreateGalleryImage.
type CreateGalleryImageParams struct {
	AlbumID  int64
	ImageURL string
	Caption  string
}

// CreateGalleryImage inserts a new image into an album.
func (q *Queries) CreateGalleryImage(ctx context.Context, arg CreateGalleryImageParams) (model.GalleryImage, error) {
	now := time.Now().UTC()
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO gallery_images (album_id, image_url, caption, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		arg.AlbumID, arg.ImageURL, arg.Caption, now, now)
	if err != nil {
		return model.GalleryImage{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.GalleryImage{}, err
	}
	return q.GetGalleryImage(ctx, id)
}

// UpdateGalleryImageParams holds the fields for UpdateGalleryImage.
type UpdateGalleryImageParams struct {
	ID       int64
	AlbumID  int64
	ImageURL string
	Caption  string
}

// UpdateGalleryImage updates an image.
func (q *Queries) UpdateGalleryImage(ctx context.Context, arg UpdateGalleryImageParams) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE gallery_images SET album_id = ?, image_url = ?, caption = ?,
		 updated_at = ? WHERE id = ?`,
		arg.AlbumID, arg.ImageURL, arg.Caption, time.Now().UTC(), arg.ID)
	return err
}

// DeleteGalleryImage removes an image.
func (q *Queries) DeleteGalleryImage(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM gallery_images WHERE id = ?`, id)
	return err
}

package model

import "time"

// GalleryAlbum groups gallery images. Deleting an album cascades to its images.
type GalleryAlbum struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Category      string    `json:"category"`
	Year          string    `json:"year"`
	CoverImageURL string    `json:"cover_image_url"`
	IsPublished   bool      `json:"is_published"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// GalleryImage belongs to exactly one album.
type GalleryImage struct {
	ID        int64     `json:"id"`
	AlbumID   int64     `json:"album_id"`
	ImageURL  string    `json:"image_url"`
	Caption   string    `json:"caption"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

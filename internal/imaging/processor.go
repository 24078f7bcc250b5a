// Package imaging processes uploaded images before they are published
// under the static file tree.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp" // WebP decoder

	"deptsite/internal/util"
)

// MaxWidth is the widest image the site serves; larger uploads are
// downscaled proportionally.
const MaxWidth = 1920

// Processor saves uploaded images under the static directory.
type Processor struct {
	staticDir string
}

// NewProcessor creates a processor rooted at staticDir.
func NewProcessor(staticDir string) *Processor {
	return &Processor{staticDir: staticDir}
}

// SaveUpload decodes an uploaded image, downscales it if it is wider than
// MaxWidth, and writes it into subDir below the static root. It returns the
// stored filename. A name collision gets a short unique suffix instead of
// overwriting the existing file.
func (p *Processor) SaveUpload(reader io.Reader, filename, subDir string) (string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("reading upload: %w", err)
	}

	format := detectFormat(data)
	if format == "" {
		return "", fmt.Errorf("unsupported image format")
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("decoding image: %w", err)
	}

	if img.Bounds().Dx() > MaxWidth {
		img = imaging.Resize(img, MaxWidth, 0, imaging.Lanczos)
	}

	// WebP has no pure-Go encoder; re-encode as PNG.
	if format == "webp" {
		format = "png"
	}

	encoded, err := encodeImage(img, format)
	if err != nil {
		return "", fmt.Errorf("encoding image: %w", err)
	}

	name, ok := util.SanitizeFilename(filename)
	if !ok {
		return "", fmt.Errorf("invalid filename %q", filename)
	}
	name = withExtension(name, format)

	dir := filepath.Join(p.staticDir, filepath.FromSlash(subDir))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating upload dir: %w", err)
	}

	if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
		ext := filepath.Ext(name)
		name = strings.TrimSuffix(name, ext) + "-" + uuid.NewString()[:8] + ext
	}

	if err := os.WriteFile(filepath.Join(dir, name), encoded, 0o644); err != nil {
		return "", fmt.Errorf("writing image: %w", err)
	}

	return name, nil
}

// detectFormat sniffs the image format from magic bytes.
func detectFormat(data []byte) string {
	switch {
	case len(data) >= 3 && bytes.Equal(data[:3], []byte{0xFF, 0xD8, 0xFF}):
		return "jpeg"
	case len(data) >= 8 && bytes.Equal(data[:8], []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}):
		return "png"
	case len(data) >= 6 && (bytes.Equal(data[:6], []byte("GIF87a")) || bytes.Equal(data[:6], []byte("GIF89a"))):
		return "gif"
	case len(data) >= 12 && bytes.Equal(data[:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return "webp"
	default:
		return ""
	}
}

// encodeImage encodes an image in the given format.
func encodeImage(img image.Image, format string) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch format {
	case "jpeg":
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	case "png":
		err = png.Encode(&buf, img)
	case "gif":
		err = gif.Encode(&buf, img, nil)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// withExtension forces the filename extension to match the stored format.
func withExtension(name, format string) string {
	ext := "." + format
	if format == "jpeg" {
		ext = ".jpg"
	}
	cur := strings.ToLower(filepath.Ext(name))
	if cur == ext || (format == "jpeg" && cur == ".jpeg") {
		return name
	}
	return strings.TrimSuffix(name, filepath.Ext(name)) + ext
}

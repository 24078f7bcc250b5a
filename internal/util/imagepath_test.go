package util

import "testing"

func TestCanonicalStaticImagePath(t *testing.T) {
	tests := []struct {
		name  string
		dir   string
		value string
		want  string
	}{
		{"bare filename", "images/headers", "about.jpg", "/static/images/headers/about.jpg"},
		{"relative path", "images/headers", "images/headers/about.jpg", "/static/images/headers/about.jpg"},
		{"already canonical", "images/headers", "/static/images/headers/about.jpg", "/static/images/headers/about.jpg"},
		{"backslashes", "images/headers", "images\\headers\\about.jpg", "/static/images/headers/about.jpg"},
		{"leading slash relative", "images/headers", "/images/headers/about.jpg", "/static/images/headers/about.jpg"},
		{"faculty dir", "images/faculty", "photo.png", "/static/images/faculty/photo.png"},
		{"whitespace trimmed", "images/faculty", "  photo.png ", "/static/images/faculty/photo.png"},
		{"http passthrough", "images/headers", "http://cdn.example.com/x.jpg", "http://cdn.example.com/x.jpg"},
		{"https passthrough", "images/headers", "https://cdn.example.com/x.jpg", "https://cdn.example.com/x.jpg"},
		{"empty", "images/headers", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanonicalStaticImagePath(tt.dir, tt.value); got != tt.want {
				t.Errorf("CanonicalStaticImagePath(%q, %q) = %q; want %q", tt.dir, tt.value, got, tt.want)
			}
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"photo.jpg", "photo.jpg", true},
		{"dir/photo.jpg", "photo.jpg", true},
		{"..\\..\\etc\\passwd", "passwd", true},
		{"../../etc/passwd", "passwd", true},
		{"", "", false},
		{".", "", false},
		{"..", "", false},
		{"dir/", "", false},
	}

	for _, tt := range tests {
		got, ok := SanitizeFilename(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("SanitizeFilename(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

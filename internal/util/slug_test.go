package util

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"Department of Intelligence Systems", "department-of-intelligence-systems"},
		{"Café & Résumé", "cafe-resume"},
		{"  spaced  out  ", "spaced-out"},
		{"Already-Slugged", "already-slugged"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsValidSlug(t *testing.T) {
	valid := []string{"about", "news-2025", "a", "b-tech-intelligence-systems"}
	invalid := []string{"", "-leading", "trailing-", "double--hyphen", "UPPER", "with space", "under_score"}

	for _, s := range valid {
		if !IsValidSlug(s) {
			t.Errorf("IsValidSlug(%q) = false; want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidSlug(s) {
			t.Errorf("IsValidSlug(%q) = true; want false", s)
		}
	}
}

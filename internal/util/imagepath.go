package util

import "strings"

// CanonicalStaticImagePath normalizes the value stored after an image upload
// into a canonical /static/... path. dir is the directory below the static
// root that the upload targets, e.g. "images/headers".
//
// Three input shapes are handled:
//   - already-prefixed absolute static path: returned unchanged
//   - bare filename (no slashes): dir prefix added
//   - relative path with slashes: backslashes normalized, /static/ prefix added
//
// Absolute http(s) URLs are passed through untouched so externally hosted
// images keep working.
func CanonicalStaticImagePath(dir, value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return ""
	}
	if strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") {
		return v
	}

	v = strings.ReplaceAll(v, "\\", "/")

	if strings.HasPrefix(v, "/static/") {
		return v
	}

	if !strings.Contains(v, "/") {
		v = strings.TrimSuffix(dir, "/") + "/" + v
	}

	return "/static/" + strings.TrimLeft(v, "/")
}

// SanitizeFilename extracts only the base filename, removing any directory
// components. This prevents path traversal via filenames like
// "../../../etc/passwd". Returns false if nothing usable remains.
func SanitizeFilename(filename string) (string, bool) {
	name := strings.ReplaceAll(filename, "\\", "/")
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == ".." {
		return "", false
	}
	return name, true
}

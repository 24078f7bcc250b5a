package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"deptsite/internal/render"
)

// flash redirects with a flash message of the given type.
func flash(w http.ResponseWriter, r *http.Request, rn *render.Renderer, redirect, message, flashType string) {
	rn.SetFlash(r, message, flashType)
	http.Redirect(w, r, redirect, http.StatusSeeOther)
}

func flashErrorRedirect(w http.ResponseWriter, r *http.Request, rn *render.Renderer, redirect, message string) {
	flash(w, r, rn, redirect, message, flashError)
}

func flashSuccessRedirect(w http.ResponseWriter, r *http.Request, rn *render.Renderer, redirect, message string) {
	flash(w, r, rn, redirect, message, flashSuccess)
}

// serverError logs the error and responds with a plain 500.
func serverError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("internal server error", "error", err, "method", r.Method, "path", r.URL.Path)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// parseID parses a positive int64 route parameter.
func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// safeNextURL validates a post-login redirect target. Only local paths are
// allowed; anything that parses with an authority or scheme is rejected so
// the login form cannot be used as an open redirect.
func safeNextURL(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return ""
	}
	// Browsers treat backslashes in URLs as forward slashes, so /\evil.com
	// would navigate off-site.
	if strings.Contains(next, "\\") {
		return ""
	}
	u, err := url.Parse(next)
	if err != nil || u.Host != "" || u.Scheme != "" {
		return ""
	}
	return next
}

package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/alexedwards/scs/v2"

	"deptsite/internal/auth"
	"deptsite/internal/middleware"
	"deptsite/internal/render"
	"deptsite/internal/store"
)

// AuthHandler handles the admin sign-in routes.
type AuthHandler struct {
	queries        *store.Queries
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager) *AuthHandler {
	return &AuthHandler{
		queries:        store.New(db),
		renderer:       renderer,
		sessionManager: sm,
	}
}

// loginFormData carries state into the login template.
type loginFormData struct {
	Next string
}

// LoginForm renders the login page. Signed-in admins go straight to the
// dashboard.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if userID := h.sessionManager.GetInt64(r.Context(), middleware.SessionKeyUserID); userID > 0 {
		http.Redirect(w, r, RouteAdmin, http.StatusSeeOther)
		return
	}

	data := render.TemplateData{
		Title: "Sign In",
		Data:  loginFormData{Next: safeNextURL(r.URL.Query().Get("next"))},
	}
	if err := h.renderer.Render(w, r, "auth/login", data); err != nil {
		serverError(w, r, err)
	}
}

// Login handles the login form submission. Every failure path, including a
// valid password on a non-admin account, produces the same flash message.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		flashErrorRedirect(w, r, h.renderer, RouteLogin, "Invalid form data.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(r.FormValue("email")))
	password := r.FormValue("password")
	next := safeNextURL(r.FormValue("next"))

	loginURL := RouteLogin
	if next != "" {
		loginURL = RouteLogin + "?next=" + next
	}

	if email == "" || password == "" {
		flashErrorRedirect(w, r, h.renderer, loginURL, msgInvalidCredentials)
		return
	}

	user, err := h.queries.GetUserByEmail(r.Context(), email)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Error("database error during login", "error", err)
		}
		flashErrorRedirect(w, r, h.renderer, loginURL, msgInvalidCredentials)
		return
	}

	valid, err := auth.CheckPassword(password, user.PasswordHash)
	if err != nil {
		slog.Error("password check error", "error", err)
		flashErrorRedirect(w, r, h.renderer, loginURL, msgInvalidCredentials)
		return
	}
	if !valid || !user.IsAdmin {
		slog.Debug("rejected login attempt", "email", email)
		flashErrorRedirect(w, r, h.renderer, loginURL, msgInvalidCredentials)
		return
	}

	// Rotate the session token on privilege change.
	if err := h.sessionManager.RenewToken(r.Context()); err != nil {
		serverError(w, r, err)
		return
	}
	h.sessionManager.Put(r.Context(), middleware.SessionKeyUserID, user.ID)

	target := RouteAdmin
	if next != "" {
		target = next
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// Logout destroys the session and returns to the public site.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionManager.Destroy(r.Context()); err != nil {
		serverError(w, r, err)
		return
	}
	flashSuccessRedirect(w, r, h.renderer, RouteRoot, "You have been signed out.")
}

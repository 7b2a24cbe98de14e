package web

import (
	"log/slog"
	"net/http"
	"net/mail"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/fleetdesk/fleetdesk/internal/auth"
	"github.com/fleetdesk/fleetdesk/internal/store"
)

// loginPageData carries per-form state for the combined login/register page.
type loginPageData struct {
	PageData
	LoginError      string
	RegisterError   string
	RegisterSuccess string
	Email           string
}

// validEmail reports whether s is syntactically an email address.
func validEmail(s string) bool {
	if len(s) < 2 {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// LoginPage handles GET /.
func (s *Server) LoginPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "login.html", &loginPageData{
		PageData: PageData{Title: "Login"},
	})
}

// LoginSubmit handles POST /login.
func (s *Server) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")
	remember := r.FormValue("remember") == "on"

	if !validEmail(email) || len(password) < 2 {
		s.Templates.Render(w, "login.html", &loginPageData{
			PageData:   PageData{Title: "Login"},
			LoginError: "Email or Password are incorrect",
			Email:      email,
		})
		return
	}

	user, err := store.GetUserByEmail(r.Context(), s.DB, email)
	if err != nil {
		slog.Error("failed to look up user", "error", err)
	}
	if user == nil || user.DeletedAt != nil ||
		bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		slog.Warn("login failed", "email", email, "remote", r.RemoteAddr)
		s.Templates.Render(w, "login.html", &loginPageData{
			PageData:   PageData{Title: "Login"},
			LoginError: "Email or Password are incorrect",
			Email:      email,
		})
		return
	}

	token, err := auth.GenerateToken(s.JWTSecret, user.ID, user.Email)
	if err != nil {
		slog.Error("failed to generate token", "error", err)
		s.Templates.Render(w, "login.html", &loginPageData{
			PageData:   PageData{Title: "Login"},
			LoginError: "Could not sign you in, try again.",
			Email:      email,
		})
		return
	}

	cookie := &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
	// "Remember me" keeps the session across browser restarts; without
	// it the cookie is a session cookie.
	if remember {
		cookie.MaxAge = int(auth.TokenExpiry.Seconds())
	}
	http.SetCookie(w, cookie)

	slog.Info("user logged in", "user", user.Email)
	http.Redirect(w, r, "/app", http.StatusSeeOther)
}

// RegisterSubmit handles POST /register.
func (s *Server) RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")
	terms := r.FormValue("terms") == "on"

	data := &loginPageData{PageData: PageData{Title: "Login"}, Email: email}

	switch {
	case !validEmail(email):
		data.RegisterError = "Username must be a valid email address."
	case len(password) < 6:
		data.RegisterError = "Password must be at least 6 characters."
	case !terms:
		data.RegisterError = "You must accept the terms and conditions."
	}
	if data.RegisterError != "" {
		s.Templates.Render(w, "login.html", data)
		return
	}

	existing, err := store.GetUserByEmail(r.Context(), s.DB, email)
	if err != nil {
		slog.Error("failed to look up user", "error", err)
	}
	if existing != nil && existing.DeletedAt == nil {
		data.RegisterError = "An account with that email already exists."
		s.Templates.Render(w, "login.html", data)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		data.RegisterError = "Could not create your account, try again."
		s.Templates.Render(w, "login.html", data)
		return
	}

	if _, err := store.CreateUser(r.Context(), s.DB, email, string(hash), terms); err != nil {
		slog.Error("failed to create user", "error", err)
		data.RegisterError = "Could not create your account, try again."
		s.Templates.Render(w, "login.html", data)
		return
	}

	// Registration does not sign the user in.
	slog.Info("user registered", "user", email)
	data.Email = ""
	data.RegisterSuccess = "Account created. Check your email to verify your account, then log in."
	s.Templates.Render(w, "login.html", data)
}

// Logout handles POST /logout. The token's JTI is revoked server-side
// so the session is dead even if a copy of the cookie survives, then
// the cookie itself is cleared.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("token"); err == nil && cookie.Value != "" {
		if claims, err := auth.ValidateToken(s.JWTSecret, cookie.Value); err == nil && claims.ID != "" {
			expiresAt := time.Now().Add(auth.TokenExpiry)
			if claims.ExpiresAt != nil {
				expiresAt = claims.ExpiresAt.Time
			}
			if err := store.RevokeToken(r.Context(), s.DB, claims.ID, expiresAt); err != nil {
				slog.Error("failed to revoke token", "error", err)
			}
		}
	}

	clearAuthCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

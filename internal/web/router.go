package web

import (
	"database/sql"
	"net/http"

	webembed "github.com/fleetdesk/fleetdesk/web"
)

// NewRouter creates the web page router with all page routes registered.
func NewRouter(db *sql.DB, jwtSecret string) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		DB:        db,
		Templates: templates,
		JWTSecret: jwtSecret,
	}

	mux := http.NewServeMux()
	cookieAuth := CookieAuthMiddleware(jwtSecret, db)

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	// Public routes: login and registration.
	mux.HandleFunc("GET /{$}", s.LoginPage)
	mux.HandleFunc("POST /login", s.LoginSubmit)
	mux.HandleFunc("POST /register", s.RegisterSubmit)
	mux.HandleFunc("POST /logout", s.Logout)

	// Authenticated section.
	mux.Handle("GET /app", cookieAuth(http.HandlerFunc(s.Dashboard)))
	mux.Handle("POST /app/cars", cookieAuth(http.HandlerFunc(s.CarCreateSubmit)))
	mux.Handle("GET /app/car/{id}", cookieAuth(http.HandlerFunc(s.CarDetailPage)))
	mux.Handle("GET /app/car/{id}/photo", cookieAuth(http.HandlerFunc(s.CarPhotoGet)))
	mux.Handle("POST /app/car/{id}/photo", cookieAuth(http.HandlerFunc(s.CarPhotoSubmit)))
	mux.Handle("GET /app/reservation", cookieAuth(http.HandlerFunc(s.ReservationFormPage)))
	mux.Handle("POST /app/reservation", cookieAuth(http.HandlerFunc(s.ReservationFormSubmit)))
	mux.Handle("POST /app/reservations/{id}/status", cookieAuth(http.HandlerFunc(s.ReservationStatusSubmit)))

	return mux, nil
}

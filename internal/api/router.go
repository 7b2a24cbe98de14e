package api

import (
	"database/sql"
	"net/http"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, jwtSecret string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret}
	carsHandler := &CarsHandler{DB: db}
	reservationsHandler := &ReservationsHandler{DB: db}
	branchHandler := &BranchHandler{DB: db}

	authMW := AuthMiddleware(jwtSecret, db)

	// Public: registration and login.
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Authenticated routes.
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))
	mux.Handle("GET /api/auth/me", authMW(http.HandlerFunc(authHandler.Me)))

	mux.Handle("GET /api/inventory", authMW(http.HandlerFunc(carsHandler.ListLot)))
	mux.Handle("POST /api/cars", authMW(http.HandlerFunc(carsHandler.Create)))
	mux.Handle("GET /api/cars/{id}", authMW(http.HandlerFunc(carsHandler.Get)))
	mux.Handle("DELETE /api/cars/{id}", authMW(http.HandlerFunc(carsHandler.Delete)))
	mux.Handle("GET /api/cars/{id}/photo", authMW(http.HandlerFunc(carsHandler.GetPhoto)))
	mux.Handle("PUT /api/cars/{id}/photo", authMW(http.HandlerFunc(carsHandler.UploadPhoto)))

	mux.Handle("GET /api/reservations", authMW(http.HandlerFunc(reservationsHandler.ListOnDate)))
	mux.Handle("PUT /api/reservations/{id}/status", authMW(http.HandlerFunc(reservationsHandler.UpdateStatus)))

	mux.Handle("GET /api/branch-location", authMW(http.HandlerFunc(branchHandler.GetForCurrentUser)))

	return mux
}

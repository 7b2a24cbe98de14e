package web

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/fleetdesk/fleetdesk/internal/imaging"
	"github.com/fleetdesk/fleetdesk/internal/model"
	"github.com/fleetdesk/fleetdesk/internal/store"
)

// CarDetailPage handles GET /app/car/{id}.
func (s *Server) CarDetailPage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	id := r.PathValue("id")

	car, err := store.GetCar(r.Context(), s.DB, id)
	if err != nil {
		slog.Error("failed to get car", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	// A missing car gets an explicit not-found state, never a blank page.
	s.Templates.Render(w, "car_detail.html", &struct {
		PageData
		Car *model.Car
	}{
		PageData: PageData{Title: "Car Details", User: claims},
		Car:      car,
	})
}

// CarCreateSubmit handles POST /app/cars: adds a car to the lot.
func (s *Server) CarCreateSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	year, _ := strconv.Atoi(r.FormValue("year"))
	car := &model.Car{
		Make:       r.FormValue("make"),
		Model:      r.FormValue("model"),
		Year:       year,
		Color:      r.FormValue("color"),
		LicenseNum: r.FormValue("license_num"),
		VIN:        r.FormValue("vin"),
		VecType:    r.FormValue("vec_type"),
		Mileage:    r.FormValue("mileage"),
		InService:  r.FormValue("in_service") == "on",
	}

	if car.Make == "" || car.Model == "" || car.Year < 1900 {
		http.Redirect(w, r, "/app", http.StatusSeeOther)
		return
	}

	created, err := store.CreateCar(r.Context(), s.DB, car)
	if err != nil {
		slog.Error("failed to create car", "error", err)
		http.Redirect(w, r, "/app", http.StatusSeeOther)
		return
	}

	slog.Info("car added to lot", "user", claims.Email, "car", created.ID)
	http.Redirect(w, r, "/app/car/"+created.ID, http.StatusSeeOther)
}

// CarPhotoGet handles GET /app/car/{id}/photo.
func (s *Server) CarPhotoGet(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	data, mime, err := store.GetCarPhoto(r.Context(), s.DB, id)
	if err != nil {
		slog.Error("failed to get car photo", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if data == nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Content-Disposition", "inline")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write photo response", "error", err)
	}
}

// CarPhotoSubmit handles POST /app/car/{id}/photo.
func (s *Server) CarPhotoSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	id := r.PathValue("id")

	car, err := store.GetCar(r.Context(), s.DB, id)
	if err != nil {
		slog.Error("failed to get car", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if car == nil {
		http.NotFound(w, r)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 5<<20)
	if err := r.ParseMultipartForm(5 << 20); err != nil {
		http.Error(w, "file too large", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("photo")
	if err != nil {
		http.Error(w, "photo required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, mime, err := imaging.Prepare(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := store.SetCarPhoto(r.Context(), s.DB, id, data, mime); err != nil {
		slog.Error("failed to save car photo", "error", err)
		http.Error(w, "failed to save photo", http.StatusInternalServerError)
		return
	}

	slog.Info("car photo uploaded", "user", claims.Email, "car", id)
	http.Redirect(w, r, "/app/car/"+id, http.StatusSeeOther)
}

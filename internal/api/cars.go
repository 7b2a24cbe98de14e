package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/fleetdesk/fleetdesk/internal/imaging"
	"github.com/fleetdesk/fleetdesk/internal/model"
	"github.com/fleetdesk/fleetdesk/internal/store"
)

// CarsHandler handles lot inventory and car endpoints.
type CarsHandler struct {
	DB *sql.DB
}

type createCarRequest struct {
	Make       string `json:"make"`
	Model      string `json:"model"`
	Year       int    `json:"year"`
	Color      string `json:"color"`
	LicenseNum string `json:"license_num"`
	VIN        string `json:"vin"`
	VecType    string `json:"vec_type"`
	Mileage    string `json:"mileage"`
	InService  bool   `json:"in_service"`
}

// ListLot handles GET /api/inventory: the full id/year/make/model
// projection, unpaginated. Filtering and paging are client concerns.
func (h *CarsHandler) ListLot(w http.ResponseWriter, r *http.Request) {
	lot, err := store.ListLotInventory(r.Context(), h.DB)
	if err != nil {
		slog.Error("failed to list lot inventory", "error", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if lot == nil {
		lot = []model.LotRow{}
	}
	jsonResponse(w, http.StatusOK, lot)
}

// Create handles POST /api/cars.
func (h *CarsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCarRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Make == "" || req.Model == "" || req.Year < 1900 {
		jsonError(w, http.StatusBadRequest, "make, model and year required")
		return
	}

	car, err := store.CreateCar(r.Context(), h.DB, &model.Car{
		Make:       req.Make,
		Model:      req.Model,
		Year:       req.Year,
		Color:      req.Color,
		LicenseNum: req.LicenseNum,
		VIN:        req.VIN,
		VecType:    req.VecType,
		Mileage:    req.Mileage,
		InService:  req.InService,
	})
	if err != nil {
		slog.Error("failed to create car", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to create car")
		return
	}

	jsonResponse(w, http.StatusCreated, car)
}

// Get handles GET /api/cars/{id}.
func (h *CarsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		jsonError(w, http.StatusBadRequest, "id required")
		return
	}

	car, err := store.GetCar(r.Context(), h.DB, id)
	if err != nil {
		slog.Error("failed to get car", "id", id, "error", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if car == nil {
		jsonError(w, http.StatusNotFound, "car not found")
		return
	}

	jsonResponse(w, http.StatusOK, car)
}

// Delete handles DELETE /api/cars/{id}.
func (h *CarsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	car, err := store.GetCar(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if car == nil {
		jsonError(w, http.StatusNotFound, "car not found")
		return
	}

	if err := store.DeleteCar(r.Context(), h.DB, id); err != nil {
		slog.Error("failed to delete car", "id", id, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to delete car")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "car removed from lot"})
}

// GetPhoto handles GET /api/cars/{id}/photo.
func (h *CarsHandler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	data, mime, err := store.GetCarPhoto(r.Context(), h.DB, id)
	if err != nil {
		slog.Error("failed to get car photo", "id", id, "error", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if data == nil {
		jsonError(w, http.StatusNotFound, "no photo")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write photo response", "error", err)
	}
}

// UploadPhoto handles PUT /api/cars/{id}/photo. The body is the raw
// image; format is sniffed, not taken from headers.
func (h *CarsHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	car, err := store.GetCar(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if car == nil {
		jsonError(w, http.StatusNotFound, "car not found")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 5<<20)
	data, mime, err := imaging.Prepare(r.Body)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := store.SetCarPhoto(r.Context(), h.DB, id, data, mime); err != nil {
		slog.Error("failed to save car photo", "id", id, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to save photo")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "photo updated"})
}

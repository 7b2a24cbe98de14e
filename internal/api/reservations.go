package api

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/fleetdesk/fleetdesk/internal/model"
	"github.com/fleetdesk/fleetdesk/internal/store"
)

// ReservationsHandler handles reservation endpoints.
type ReservationsHandler struct {
	DB *sql.DB
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// ListOnDate handles GET /api/reservations?date=YYYY-MM-DD. A missing
// date means today. Results cover the UTC day, ascending by pickup time.
func (h *ReservationsHandler) ListOnDate(w http.ResponseWriter, r *http.Request) {
	date := time.Now().UTC()
	if raw := r.FormValue("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			jsonError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		date = parsed
	}

	reservations, err := store.ListReservationsOnDate(r.Context(), h.DB, date)
	if err != nil {
		slog.Error("failed to list reservations", "date", date.Format("2006-01-02"), "error", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if reservations == nil {
		reservations = []model.Reservation{}
	}

	jsonResponse(w, http.StatusOK, reservations)
}

// UpdateStatus handles PUT /api/reservations/{id}/status.
func (h *ReservationsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Status == "" {
		jsonError(w, http.StatusBadRequest, "status required")
		return
	}

	res, err := store.GetReservation(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if res == nil {
		jsonError(w, http.StatusNotFound, "reservation not found")
		return
	}

	if err := store.UpdateReservationStatus(r.Context(), h.DB, id, req.Status); err != nil {
		slog.Error("failed to update reservation status", "id", id, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to update status")
		return
	}

	updated, err := store.GetReservation(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	jsonResponse(w, http.StatusOK, updated)
}

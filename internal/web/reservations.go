package web

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/fleetdesk/fleetdesk/internal/store"
)

// reservationFormData carries the intake form state across renders.
type reservationFormData struct {
	PageData
	Form   intake
	Errors map[string]string
	States []State
}

// ReservationFormPage handles GET /app/reservation.
func (s *Server) ReservationFormPage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	s.Templates.Render(w, "reservation_form.html", &reservationFormData{
		PageData: PageData{Title: "Make Reservation", User: claims},
		States:   States,
	})
}

// ReservationFormSubmit handles POST /app/reservation. A valid
// submission is acknowledged but intentionally not persisted; what the
// back office does with the intake is still an open product decision.
func (s *Server) ReservationFormSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	form := intakeFromForm(r)
	if errs := form.validate(); len(errs) > 0 {
		s.Templates.Render(w, "reservation_form.html", &reservationFormData{
			PageData: PageData{Title: "Make Reservation", User: claims},
			Form:     form,
			Errors:   errs,
			States:   States,
		})
		return
	}

	slog.Info("reservation intake accepted",
		"user", claims.Email,
		"applicant", form.FirstName+" "+form.LastName,
		"state", form.State,
	)

	s.Templates.Render(w, "reservation_done.html", &struct {
		PageData
		Form intake
	}{
		PageData: PageData{Title: "Reservation Received", User: claims},
		Form:     form,
	})
}

// ReservationStatusSubmit handles POST /app/reservations/{id}/status.
func (s *Server) ReservationStatusSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	id := r.PathValue("id")
	status := r.FormValue("status")
	date := r.FormValue("date")

	if status == "" {
		http.Error(w, "status required", http.StatusBadRequest)
		return
	}

	res, err := store.GetReservation(r.Context(), s.DB, id)
	if err != nil {
		slog.Error("failed to get reservation", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if res == nil {
		http.NotFound(w, r)
		return
	}

	if err := store.UpdateReservationStatus(r.Context(), s.DB, id, status); err != nil {
		slog.Error("failed to update reservation status", "id", id, "error", err)
		http.Error(w, "failed to update", http.StatusInternalServerError)
		return
	}

	slog.Info("reservation status updated", "user", claims.Email, "reservation", id, "status", status)

	// Return to the day the card was showing.
	target := "/app"
	if date != "" {
		target += "?date=" + url.QueryEscape(date)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

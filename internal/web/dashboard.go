package web

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/fleetdesk/fleetdesk/internal/model"
	"github.com/fleetdesk/fleetdesk/internal/store"
)

// quickDate is one of the quick-select offsets on the reservation card.
type quickDate struct {
	Label string
	Value string
}

// Dashboard handles GET /app: the lot inventory table and the
// reservation card for the selected day, both paginated.
func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	filter := r.FormValue("q")
	page, _ := strconv.Atoi(r.FormValue("page"))
	resPage, _ := strconv.Atoi(r.FormValue("rpage"))

	// The reservation card defaults to today.
	date := time.Now().UTC()
	if raw := r.FormValue("date"); raw != "" {
		if parsed, err := time.Parse("2006-01-02", raw); err == nil {
			date = parsed
		}
	}

	lot, err := store.ListLotInventory(r.Context(), s.DB)
	if err != nil {
		slog.Error("failed to list lot inventory", "error", err)
	}
	lotRows, lotPage, lotPages := paginate(filterLot(lot, filter), page)

	reservations, err := store.ListReservationsOnDate(r.Context(), s.DB, date)
	if err != nil {
		// Degrade to an empty table; the rest of the page still renders.
		slog.Error("failed to list reservations", "date", date.Format("2006-01-02"), "error", err)
	}
	resRows, currentResPage, resPages := paginate(reservations, resPage)

	branch, err := store.GetBranchLocationForUser(r.Context(), s.DB, claims.UserID)
	if err != nil {
		slog.Error("failed to get branch location", "user", claims.Email, "error", err)
	}

	now := time.Now().UTC()
	quick := []quickDate{
		{Label: "Today", Value: now.Format("2006-01-02")},
		{Label: "Tomorrow", Value: now.AddDate(0, 0, 1).Format("2006-01-02")},
		{Label: "In 3 days", Value: now.AddDate(0, 0, 3).Format("2006-01-02")},
		{Label: "In a week", Value: now.AddDate(0, 0, 7).Format("2006-01-02")},
	}

	s.Templates.Render(w, "dashboard.html", &struct {
		PageData
		Branch       *model.BranchLocation
		Filter       string
		LotRows      []model.LotRow
		LotPage      int
		LotPages     int
		Date         time.Time
		DateParam    string
		QuickDates   []quickDate
		Reservations []model.Reservation
		ResPage      int
		ResPages     int
	}{
		PageData:     PageData{Title: "Dashboard", User: claims},
		Branch:       branch,
		Filter:       filter,
		LotRows:      lotRows,
		LotPage:      lotPage,
		LotPages:     lotPages,
		Date:         date,
		DateParam:    date.Format("2006-01-02"),
		QuickDates:   quick,
		Reservations: resRows,
		ResPage:      currentResPage,
		ResPages:     resPages,
	})
}

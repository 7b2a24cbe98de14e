package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/fleetdesk/fleetdesk/internal/store"
)

// BranchHandler handles the branch-location lookup.
type BranchHandler struct {
	DB *sql.DB
}

// GetForCurrentUser handles GET /api/branch-location: the branch
// assigned to the authenticated user. An unassigned user gets an
// explicit 404, never an empty-index panic.
func (h *BranchHandler) GetForCurrentUser(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	branch, err := store.GetBranchLocationForUser(r.Context(), h.DB, claims.UserID)
	if err != nil {
		slog.Error("failed to get branch location", "user", claims.Email, "error", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if branch == nil {
		jsonError(w, http.StatusNotFound, "no branch assigned")
		return
	}

	jsonResponse(w, http.StatusOK, branch)
}

package handler

import (
	"net/http"

	"farm-ledger-go/internal/transport/httpserver/middleware"
)

func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	dashboard, err := h.Analytics.Dashboard(r.Context(), user.ID)
	if err != nil {
		h.log.InternalError("dashboard: compute failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, dashboard)
}

func (h *Handlers) MonthlyTotals(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	months, err := h.Analytics.Monthly(r.Context(), user.ID)
	if err != nil {
		h.log.InternalError("dashboard.monthly: query failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"months": months})
}

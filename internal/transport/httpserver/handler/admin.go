package handler

import (
	"errors"
	"net/http"
	"strings"

	admindomain "farm-ledger-go/internal/domain/admin"
	userdomain "farm-ledger-go/internal/domain/user"
	"farm-ledger-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
)

type toggleUserRequest struct {
	Active bool `json:"active"`
}

func (h *Handlers) AdminOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.Admin.Overview(r.Context())
	if err != nil {
		h.log.InternalError("admin.overview: compute failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, overview)
}

func (h *Handlers) AdminUserDetail(w http.ResponseWriter, r *http.Request) {
	targetID := strings.TrimSpace(chi.URLParam(r, "id"))
	if targetID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "id is required")
		return
	}

	detail, err := h.Admin.UserDetail(r.Context(), targetID)
	if err != nil {
		if errors.Is(err, userdomain.ErrUserNotFound) {
			h.log.BusinessError("admin.user_detail: user not found", err, "target_id", targetID)
			writeError(w, http.StatusNotFound, "user_not_found", "user not found")
			return
		}
		h.log.InternalError("admin.user_detail: compute failed", err, "target_id", targetID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

func (h *Handlers) AdminToggleUser(w http.ResponseWriter, r *http.Request) {
	var req toggleUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	targetID := strings.TrimSpace(chi.URLParam(r, "id"))
	if targetID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "id is required")
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	if err := h.Admin.SetUserActive(r.Context(), user.ID, targetID, req.Active); err != nil {
		switch {
		case errors.Is(err, admindomain.ErrSelfToggle):
			h.log.BusinessError("admin.toggle: self toggle rejected", err, "user_id", user.ID)
			writeError(w, http.StatusBadRequest, "invalid_request", "cannot change own active status")
		case errors.Is(err, userdomain.ErrUserNotFound):
			h.log.BusinessError("admin.toggle: user not found", err, "target_id", targetID)
			writeError(w, http.StatusNotFound, "user_not_found", "user not found")
		default:
			h.log.InternalError("admin.toggle: update failed", err, "target_id", targetID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"user_id": targetID, "active": req.Active})
}

func (h *Handlers) AdminDeleteUser(w http.ResponseWriter, r *http.Request) {
	targetID := strings.TrimSpace(chi.URLParam(r, "id"))
	if targetID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "id is required")
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	if err := h.Admin.DeleteUser(r.Context(), user.ID, targetID); err != nil {
		switch {
		case errors.Is(err, admindomain.ErrSelfDelete):
			h.log.BusinessError("admin.delete_user: self delete rejected", err, "user_id", user.ID)
			writeError(w, http.StatusBadRequest, "invalid_request", "cannot delete own account")
		case errors.Is(err, userdomain.ErrUserNotFound):
			h.log.BusinessError("admin.delete_user: user not found", err, "target_id", targetID)
			writeError(w, http.StatusNotFound, "user_not_found", "user not found")
		default:
			h.log.InternalError("admin.delete_user: delete failed", err, "target_id", targetID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"user_id": targetID, "deleted": true})
}

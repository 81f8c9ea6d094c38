package handler

import (
	"net/http"

	farmdomain "farm-ledger-go/internal/domain/farm"
	"farm-ledger-go/internal/transport/httpserver/middleware"
)

type createSupplierRequest struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	CreditTerms   string `json:"credit_terms"`
	Notes         string `json:"notes"`
}

type createFieldRequest struct {
	Name      string   `json:"name"`
	AreaAcres *float64 `json:"area_acres"`
	Location  string   `json:"location"`
	SoilType  string   `json:"soil_type"`
	CropCycle string   `json:"crop_cycle"`
	Season    string   `json:"season"`
	Notes     string   `json:"notes"`
}

func (h *Handlers) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	suppliers, err := h.Farm.ListSuppliers(r.Context(), user.ID)
	if err != nil {
		h.log.InternalError("suppliers.list: list failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"items": suppliers, "total": len(suppliers)})
}

func (h *Handlers) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	var req createSupplierRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	created, err := h.Farm.CreateSupplier(r.Context(), user.ID, farmdomain.SupplierInput{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Address:       req.Address,
		CreditTerms:   req.CreditTerms,
		Notes:         req.Notes,
	})
	if err != nil {
		h.log.BusinessError("suppliers.create: invalid input", err, "user_id", user.ID)
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) ListFields(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	fields, err := h.Farm.ListFields(r.Context(), user.ID)
	if err != nil {
		h.log.InternalError("fields.list: list failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items":       fields,
		"total":       len(fields),
		"total_acres": farmdomain.SumAcres(activeOnly(fields)),
	})
}

func (h *Handlers) CreateField(w http.ResponseWriter, r *http.Request) {
	var req createFieldRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	created, err := h.Farm.CreateField(r.Context(), user.ID, farmdomain.FieldInput{
		Name:      req.Name,
		AreaAcres: req.AreaAcres,
		Location:  req.Location,
		SoilType:  req.SoilType,
		CropCycle: req.CropCycle,
		Season:    req.Season,
		Notes:     req.Notes,
	})
	if err != nil {
		h.log.BusinessError("fields.create: invalid input", err, "user_id", user.ID)
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func activeOnly(fields []farmdomain.Field) []farmdomain.Field {
	result := make([]farmdomain.Field, 0, len(fields))
	for _, field := range fields {
		if field.Active {
			result = append(result, field)
		}
	}
	return result
}

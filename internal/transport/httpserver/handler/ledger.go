package handler

import (
	"errors"
	"net/http"
	"strings"

	ledgerdomain "farm-ledger-go/internal/domain/ledger"
	"farm-ledger-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
)

type billItemRequest struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

type createBillRequest struct {
	BillNumber   string            `json:"bill_number"`
	PurchaseDate string            `json:"purchase_date"`
	Items        []billItemRequest `json:"items"`
}

type billListResponse struct {
	Items []ledgerdomain.Bill `json:"items"`
	Total int                 `json:"total"`
}

func (h *Handlers) ListBills(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	bills, err := h.Ledger.ListBills(r.Context(), user.ID)
	if err != nil {
		h.log.InternalError("bills.list: list failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, billListResponse{Items: bills, Total: len(bills)})
}

func (h *Handlers) CreateBill(w http.ResponseWriter, r *http.Request) {
	var req createBillRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	items := make([]ledgerdomain.ItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, ledgerdomain.ItemInput{
			Name:     item.Name,
			Category: item.Category,
			Price:    item.Price,
		})
	}

	input := ledgerdomain.CreateBillInput{
		BillNumber:   req.BillNumber,
		PurchaseDate: parseDateLenient(req.PurchaseDate),
		Items:        items,
	}

	created, err := h.Ledger.CreateBill(r.Context(), user.ID, input)
	if err != nil {
		switch {
		case errors.Is(err, ledgerdomain.ErrNoItems),
			errors.Is(err, ledgerdomain.ErrInvalidCategory),
			errors.Is(err, ledgerdomain.ErrNegativePrice):
			h.log.BusinessError("bills.create: invalid input", err, "user_id", user.ID)
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		default:
			h.log.InternalError("bills.create: create failed", err, "user_id", user.ID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// AddBillItem keeps the legacy single-item entry form working: each
// submission becomes a one-item bill.
func (h *Handlers) AddBillItem(w http.ResponseWriter, r *http.Request) {
	var req billItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	created, err := h.Ledger.AddSingleItem(r.Context(), user.ID, ledgerdomain.ItemInput{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
	})
	if err != nil {
		switch {
		case errors.Is(err, ledgerdomain.ErrNoItems),
			errors.Is(err, ledgerdomain.ErrInvalidCategory),
			errors.Is(err, ledgerdomain.ErrNegativePrice):
			h.log.BusinessError("bills.add_item: invalid input", err, "user_id", user.ID)
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		default:
			h.log.InternalError("bills.add_item: create failed", err, "user_id", user.ID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) DeleteBill(w http.ResponseWriter, r *http.Request) {
	billID := strings.TrimSpace(chi.URLParam(r, "id"))
	if billID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "id is required")
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	if err := h.Ledger.DeleteBill(r.Context(), user.ID, billID); err != nil {
		if errors.Is(err, ledgerdomain.ErrBillNotFound) {
			h.log.BusinessError("bills.delete: bill not found", err, "user_id", user.ID, "bill_id", billID)
			writeError(w, http.StatusNotFound, "bill_not_found", "bill not found")
			return
		}
		h.log.InternalError("bills.delete: delete failed", err, "user_id", user.ID, "bill_id", billID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListFertilizerCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"categories": ledgerdomain.Categories})
}

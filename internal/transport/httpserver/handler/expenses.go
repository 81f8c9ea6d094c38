package handler

import (
	"errors"
	"net/http"
	"strings"

	expensesdomain "farm-ledger-go/internal/domain/expenses"
	"farm-ledger-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
)

type createExpenseRequest struct {
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	Quantity        *float64 `json:"quantity"`
	Unit            string   `json:"unit"`
	UnitPrice       *float64 `json:"unit_price"`
	TotalAmount     float64  `json:"total_amount"`
	SupplierID      string   `json:"supplier_id"`
	FieldID         string   `json:"field_id"`
	ExpenseDate     string   `json:"expense_date"`
	PaymentMethod   string   `json:"payment_method"`
	PaymentStatus   string   `json:"payment_status"`
	Season          string   `json:"season"`
	CropCycle       string   `json:"crop_cycle"`
	ApplicationDate string   `json:"application_date"`
	Notes           string   `json:"notes"`
}

type bulkExpenseItemRequest struct {
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Quantity      *float64 `json:"quantity"`
	Unit          string   `json:"unit"`
	UnitPrice     *float64 `json:"unit_price"`
	TotalAmount   float64  `json:"total_amount"`
	PaymentMethod string   `json:"payment_method"`
}

type bulkCreateRequest struct {
	ExpenseDate string                   `json:"expense_date"`
	Season      string                   `json:"season"`
	CropCycle   string                   `json:"crop_cycle"`
	FieldID     string                   `json:"field_id"`
	Notes       string                   `json:"notes"`
	Items       []bulkExpenseItemRequest `json:"items"`
}

type expenseListResponse struct {
	Items []expensesdomain.Expense `json:"items"`
	Total int                      `json:"total"`
}

func (h *Handlers) ListExpenses(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	query := r.URL.Query()
	from, err := parseDateParam(query.Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid from date")
		return
	}
	to, err := parseDateParam(query.Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid to date")
		return
	}

	filter := expensesdomain.ListFilter{
		From:          from,
		To:            to,
		Category:      strings.TrimSpace(query.Get("category")),
		SupplierID:    strings.TrimSpace(query.Get("supplier_id")),
		FieldID:       strings.TrimSpace(query.Get("field_id")),
		Season:        strings.TrimSpace(query.Get("season")),
		PaymentStatus: strings.TrimSpace(query.Get("payment_status")),
	}

	items, err := h.Expenses.ListExpenses(r.Context(), user.ID, filter)
	if err != nil {
		h.log.InternalError("expenses.list: list failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, expenseListResponse{Items: items, Total: len(items)})
}

func (h *Handlers) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	applicationDate, err := parseDateParam(req.ApplicationDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid application date")
		return
	}

	input := expensesdomain.CreateExpenseInput{
		Description:     req.Description,
		Category:        req.Category,
		Quantity:        req.Quantity,
		Unit:            req.Unit,
		UnitPrice:       req.UnitPrice,
		TotalAmount:     req.TotalAmount,
		SupplierID:      req.SupplierID,
		FieldID:         req.FieldID,
		ExpenseDate:     parseDateLenient(req.ExpenseDate),
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   req.PaymentStatus,
		Season:          req.Season,
		CropCycle:       req.CropCycle,
		ApplicationDate: applicationDate,
		Notes:           req.Notes,
	}

	created, err := h.Expenses.CreateExpense(r.Context(), user.ID, input)
	if err != nil {
		switch {
		case errors.Is(err, expensesdomain.ErrCategoryUnknown),
			errors.Is(err, expensesdomain.ErrNegativeAmount):
			h.log.BusinessError("expenses.create: invalid input", err, "user_id", user.ID)
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		default:
			h.log.InternalError("expenses.create: create failed", err, "user_id", user.ID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) BulkCreateExpenses(w http.ResponseWriter, r *http.Request) {
	var req bulkCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	items := make([]expensesdomain.BulkItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, expensesdomain.BulkItemInput{
			Description:   item.Description,
			Category:      item.Category,
			Quantity:      item.Quantity,
			Unit:          item.Unit,
			UnitPrice:     item.UnitPrice,
			TotalAmount:   item.TotalAmount,
			PaymentMethod: item.PaymentMethod,
		})
	}

	input := expensesdomain.BulkCreateInput{
		ExpenseDate: parseDateLenient(req.ExpenseDate),
		Season:      req.Season,
		CropCycle:   req.CropCycle,
		FieldID:     req.FieldID,
		Notes:       req.Notes,
		Items:       items,
	}

	created, err := h.Expenses.BulkCreate(r.Context(), user.ID, input)
	if err != nil {
		if errors.Is(err, expensesdomain.ErrNegativeAmount) {
			h.log.BusinessError("expenses.bulk: invalid input", err, "user_id", user.ID)
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		h.log.InternalError("expenses.bulk: create failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int{"created": created})
}

func (h *Handlers) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	expenseID := strings.TrimSpace(chi.URLParam(r, "id"))
	if expenseID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "id is required")
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	if err := h.Expenses.DeleteExpense(r.Context(), user.ID, expenseID); err != nil {
		if errors.Is(err, expensesdomain.ErrExpenseNotFound) {
			h.log.BusinessError("expenses.delete: expense not found", err, "user_id", user.ID, "expense_id", expenseID)
			writeError(w, http.StatusNotFound, "expense_not_found", "expense not found")
			return
		}
		h.log.InternalError("expenses.delete: delete failed", err, "user_id", user.ID, "expense_id", expenseID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListExpenseCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Expenses.Categories(r.Context())
	if err != nil {
		h.log.InternalError("expenses.categories: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"categories":      categories,
		"payment_methods": expensesdomain.PaymentMethods,
		"seasons":         expensesdomain.Seasons,
		"units":           expensesdomain.QuantityUnits,
	})
}

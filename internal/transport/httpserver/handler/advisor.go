package handler

import (
	"context"
	"errors"
	"net/http"

	advisordomain "farm-ledger-go/internal/domain/advisor"
	analyticsdomain "farm-ledger-go/internal/domain/analytics"
	expensesdomain "farm-ledger-go/internal/domain/expenses"
	"farm-ledger-go/internal/transport/httpserver/middleware"
)

const advisorRecentExpenses = 5

// unavailableMessage is shown whenever the collaborator cannot answer; the
// rest of the app keeps working without it.
const unavailableMessage = "The farming assistant is currently unavailable. Please try again later."

type chatRequest struct {
	Question string `json:"question"`
}

type chatResponse struct {
	Answer    string `json:"answer"`
	Available bool   `json:"available"`
}

func (h *Handlers) AdvisorChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	farm, err := h.buildFarmContext(r.Context(), user.ID)
	if err != nil {
		h.log.InternalError("advisor.chat: build context failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	answer, err := h.Advisor.Advice(r.Context(), user.ID, req.Question, farm)
	if err != nil {
		switch {
		case errors.Is(err, advisordomain.ErrQuestionRequired),
			errors.Is(err, advisordomain.ErrQuestionTooLong):
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		case errors.Is(err, advisordomain.ErrUnavailable):
			h.log.BusinessError("advisor.chat: assistant unavailable", err, "user_id", user.ID)
			writeJSON(w, http.StatusOK, chatResponse{Answer: unavailableMessage, Available: false})
		default:
			h.log.InternalError("advisor.chat: advice failed", err, "user_id", user.ID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Answer: answer, Available: true})
}

func (h *Handlers) AdvisorHistory(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"messages": h.Advisor.History(user.ID),
	})
}

func (h *Handlers) AdvisorClear(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	h.Advisor.ClearHistory(user.ID)
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

func (h *Handlers) AdvisorAnalyze(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	farm, err := h.buildFarmContext(r.Context(), user.ID)
	if err != nil {
		h.log.InternalError("advisor.analyze: build context failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	analysis, err := h.Advisor.AnalyzeExpenses(r.Context(), farm)
	if err != nil {
		if errors.Is(err, advisordomain.ErrUnavailable) {
			h.log.BusinessError("advisor.analyze: assistant unavailable", err, "user_id", user.ID)
			writeJSON(w, http.StatusOK, chatResponse{Answer: unavailableMessage, Available: false})
			return
		}
		h.log.InternalError("advisor.analyze: analysis failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Answer: analysis, Available: true})
}

func (h *Handlers) AdvisorReport(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	dashboard, err := h.Analytics.Dashboard(r.Context(), user.ID)
	if err != nil {
		h.log.InternalError("advisor.report: dashboard failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	months, err := h.Analytics.Monthly(r.Context(), user.ID)
	if err != nil {
		h.log.InternalError("advisor.report: monthly failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	trends := make(map[string]float64, len(months))
	for _, month := range months {
		trends[month.Month] = month.Total
	}

	report, err := h.Advisor.ExpenseReport(r.Context(), advisordomain.ReportData{
		TotalExpenses:     dashboard.TotalExpenses,
		CategoryBreakdown: dashboard.CategoryBreakdown,
		MonthlyTrends:     trends,
		ExpenseCount:      dashboard.ExpenseCount + dashboard.BillCount,
	})
	if err != nil {
		if errors.Is(err, advisordomain.ErrUnavailable) {
			h.log.BusinessError("advisor.report: assistant unavailable", err, "user_id", user.ID)
			writeJSON(w, http.StatusOK, chatResponse{Answer: unavailableMessage, Available: false})
			return
		}
		h.log.InternalError("advisor.report: report failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Answer: report, Available: true})
}

func (h *Handlers) AdvisorForecast(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	dashboard, err := h.Analytics.Dashboard(r.Context(), user.ID)
	if err != nil {
		h.log.InternalError("advisor.forecast: dashboard failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	rows, err := h.Expenses.ListExpenses(r.Context(), user.ID, expensesdomain.ListFilter{})
	if err != nil {
		h.log.InternalError("advisor.forecast: list expenses failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	history := make(map[string][]advisordomain.ExpenseSummary)
	for _, expense := range rows {
		season := analyticsdomain.CurrentSeason(expense.ExpenseDate)
		if expense.Season != nil && *expense.Season != "" {
			season = *expense.Season
		}
		history[season] = append(history[season], toExpenseSummary(expense))
	}

	forecast, err := h.Advisor.SeasonalForecast(r.Context(), dashboard.CurrentSeason, history, dashboard.TotalAcres)
	if err != nil {
		if errors.Is(err, advisordomain.ErrUnavailable) {
			h.log.BusinessError("advisor.forecast: assistant unavailable", err, "user_id", user.ID)
			writeJSON(w, http.StatusOK, chatResponse{Answer: unavailableMessage, Available: false})
			return
		}
		h.log.InternalError("advisor.forecast: forecast failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Answer: forecast, Available: true})
}

func (h *Handlers) buildFarmContext(ctx context.Context, userID string) (advisordomain.FarmContext, error) {
	u, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		return advisordomain.FarmContext{}, err
	}
	dashboard, err := h.Analytics.Dashboard(ctx, userID)
	if err != nil {
		return advisordomain.FarmContext{}, err
	}
	rows, err := h.Expenses.ListExpenses(ctx, userID, expensesdomain.ListFilter{})
	if err != nil {
		return advisordomain.FarmContext{}, err
	}

	recent := make([]advisordomain.ExpenseSummary, 0, advisorRecentExpenses)
	for i, expense := range rows {
		if i >= advisorRecentExpenses {
			break
		}
		recent = append(recent, toExpenseSummary(expense))
	}

	farm := advisordomain.FarmContext{
		UserName:          u.Name,
		TotalExpenses:     dashboard.TotalExpenses,
		CategoryBreakdown: dashboard.CategoryBreakdown,
		RecentExpenses:    recent,
		FieldCount:        dashboard.FieldCount,
		SupplierCount:     dashboard.SupplierCount,
		TotalAcres:        dashboard.TotalAcres,
		CostPerAcre:       dashboard.CostPerAcre,
	}
	if u.FarmName != nil {
		farm.FarmName = *u.FarmName
	}
	if u.Location != nil {
		farm.Location = *u.Location
	}
	return farm, nil
}

func toExpenseSummary(expense expensesdomain.Expense) advisordomain.ExpenseSummary {
	return advisordomain.ExpenseSummary{
		Description: expense.Description,
		Category:    expense.Category,
		Amount:      expense.TotalAmount,
		Date:        expense.ExpenseDate,
	}
}

package advisor

import (
	"context"
	"strings"
	"time"
)

const maxQuestionLength = 500

// FarmContext is the ledger snapshot handed to the collaborator alongside a
// question. It is assembled by the caller from current aggregates and never
// includes raw credentials or other users' data.
type FarmContext struct {
	UserName          string             `json:"user_name"`
	FarmName          string             `json:"farm_name"`
	Location          string             `json:"location"`
	TotalExpenses     float64            `json:"total_expenses"`
	CategoryBreakdown map[string]float64 `json:"category_breakdown"`
	RecentExpenses    []ExpenseSummary   `json:"recent_expenses"`
	FieldCount        int                `json:"field_count"`
	SupplierCount     int                `json:"supplier_count"`
	TotalAcres        float64            `json:"total_acres"`
	CostPerAcre       float64            `json:"cost_per_acre"`
}

type ExpenseSummary struct {
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
}

type ReportData struct {
	TotalExpenses     float64            `json:"total_expenses"`
	CategoryBreakdown map[string]float64 `json:"category_breakdown"`
	MonthlyTrends     map[string]float64 `json:"monthly_trends"`
	ExpenseCount      int                `json:"expense_count"`
}

type Service struct {
	client  Client
	history *historyStore
	now     func() time.Time
}

// NewService accepts a nil client; every call then degrades to
// ErrUnavailable, which keeps the rest of the app fully usable without an
// API key.
func NewService(client Client) *Service {
	return &Service{
		client:  client,
		history: newHistoryStore(),
		now:     time.Now,
	}
}

// Advice answers a free-text question against the farm snapshot. Questions
// outside farming scope are answered locally with the fixed scope message;
// both question and answer land in the capped ephemeral history either way.
func (s *Service) Advice(ctx context.Context, userID, question string, farm FarmContext) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", ErrQuestionRequired
	}
	if len(question) > maxQuestionLength {
		return "", ErrQuestionTooLong
	}

	if !isFarmingRelated(question) {
		s.record(userID, question, ScopeMessage)
		return ScopeMessage, nil
	}

	answer, err := s.complete(ctx, adviceSystemPrompt, buildAdvicePrompt(question, farm))
	if err != nil {
		return "", err
	}

	s.record(userID, question, answer)
	return answer, nil
}

// AnalyzeExpenses produces the dashboard insight blurb. No history entry;
// this is not a conversation turn.
func (s *Service) AnalyzeExpenses(ctx context.Context, farm FarmContext) (string, error) {
	return s.complete(ctx, "", buildAnalysisPrompt(farm))
}

func (s *Service) ExpenseReport(ctx context.Context, report ReportData) (string, error) {
	return s.complete(ctx, "", buildReportPrompt(report))
}

func (s *Service) SeasonalForecast(ctx context.Context, season string, history map[string][]ExpenseSummary, totalAcres float64) (string, error) {
	return s.complete(ctx, "", buildForecastPrompt(season, history, totalAcres))
}

func (s *Service) History(userID string) []Message {
	return s.history.Get(userID)
}

func (s *Service) ClearHistory(userID string) {
	s.history.Clear(userID)
}

func (s *Service) complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if s.client == nil {
		return "", ErrUnavailable
	}

	answer, err := s.client.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		return "", ErrUnavailable
	}
	return answer, nil
}

func (s *Service) record(userID, question, answer string) {
	at := s.now()
	s.history.Append(userID,
		Message{Role: RoleUser, Text: question, At: at},
		Message{Role: RoleAssistant, Text: answer, At: at},
	)
}

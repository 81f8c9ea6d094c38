package analytics

import (
	"context"
	"sort"
	"time"

	"farm-ledger-go/internal/domain/expenses"
	"farm-ledger-go/internal/domain/farm"
	"farm-ledger-go/internal/domain/ledger"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Dashboard computes the per-user rollup from current store state. Bill
// totals fold into the fertilizers bucket of the breakdown, so the
// breakdown values always sum to the grand total.
func (s *Service) Dashboard(ctx context.Context, userID string) (*Dashboard, error) {
	expenseRows, err := s.repo.Expenses(ctx, userID)
	if err != nil {
		return nil, err
	}
	bills, err := s.repo.Bills(ctx, userID)
	if err != nil {
		return nil, err
	}
	fields, err := s.repo.ActiveFields(ctx, userID)
	if err != nil {
		return nil, err
	}
	supplierCount, err := s.repo.SupplierCount(ctx, userID)
	if err != nil {
		return nil, err
	}

	total := 0.0
	breakdown := make(map[string]float64)
	for _, expense := range expenseRows {
		total += expense.TotalAmount
		breakdown[expense.Category] += expense.TotalAmount
	}
	for _, bill := range bills {
		total += bill.TotalAmount
		breakdown[FertilizerBucket] += bill.TotalAmount
	}

	totalAcres := farm.SumAcres(fields)
	costPerAcre := 0.0
	if totalAcres > 0 {
		costPerAcre = total / totalAcres
	}

	season := CurrentSeason(s.now())
	seasonal := 0.0
	for _, expense := range expenseRows {
		if expense.Season != nil && *expense.Season == season {
			seasonal += expense.TotalAmount
		}
	}

	return &Dashboard{
		TotalExpenses:     total,
		CategoryBreakdown: breakdown,
		TotalAcres:        totalAcres,
		CostPerAcre:       costPerAcre,
		FieldCount:        len(fields),
		SupplierCount:     int(supplierCount),
		ExpenseCount:      len(expenseRows),
		BillCount:         len(bills),
		RecentActivities:  RecentActivities(expenseRows, bills),
		CurrentSeason:     season,
		SeasonalExpenses:  seasonal,
	}, nil
}

func (s *Service) Monthly(ctx context.Context, userID string) ([]MonthTotal, error) {
	return s.repo.MonthlyBillTotals(ctx, userID)
}

// RecentActivities merges the 5 newest expenses with the line items of the
// 3 newest bills (each item dated by its bill's purchase date), re-sorts by
// date descending and truncates to 8. The sort is stable, so equal dates
// keep merge order: expenses first, then bill items.
func RecentActivities(expenseRows []expenses.Expense, bills []ledger.Bill) []Activity {
	expenseRows = sortedExpensesDesc(expenseRows)
	bills = sortedBillsDesc(bills)

	activities := make([]Activity, 0, recentActivityLimit)
	for i, expense := range expenseRows {
		if i >= 5 {
			break
		}
		activities = append(activities, Activity{
			Type:        ActivityExpense,
			Description: expense.Description,
			Category:    expense.Category,
			Amount:      expense.TotalAmount,
			Date:        expense.ExpenseDate,
		})
	}

	for i, bill := range bills {
		if i >= 3 {
			break
		}
		for _, item := range bill.Items {
			activities = append(activities, Activity{
				Type:        ActivityFertilizer,
				Description: item.Name,
				Category:    item.Category,
				Amount:      item.Price,
				Date:        bill.PurchaseDate,
			})
		}
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Date.After(activities[j].Date)
	})

	if len(activities) > recentActivityLimit {
		activities = activities[:recentActivityLimit]
	}
	return activities
}

// CurrentSeason maps a calendar month to the Indian agricultural season:
// Jun-Oct is Kharif, Nov-Apr is Rabi, May is Zaid. Fixed rule, not
// user-configurable.
func CurrentSeason(t time.Time) string {
	switch t.Month() {
	case time.June, time.July, time.August, time.September, time.October:
		return "Kharif"
	case time.November, time.December, time.January, time.February, time.March, time.April:
		return "Rabi"
	default:
		return "Zaid"
	}
}

func sortedExpensesDesc(rows []expenses.Expense) []expenses.Expense {
	sorted := make([]expenses.Expense, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ExpenseDate.After(sorted[j].ExpenseDate)
	})
	return sorted
}

func sortedBillsDesc(rows []ledger.Bill) []ledger.Bill {
	sorted := make([]ledger.Bill, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PurchaseDate.After(sorted[j].PurchaseDate)
	})
	return sorted
}

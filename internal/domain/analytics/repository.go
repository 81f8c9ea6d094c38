package analytics

import (
	"context"

	"farm-ledger-go/internal/domain/expenses"
	"farm-ledger-go/internal/domain/farm"
	"farm-ledger-go/internal/domain/ledger"
)

type Repository interface {
	Expenses(ctx context.Context, userID string) ([]expenses.Expense, error)
	Bills(ctx context.Context, userID string) ([]ledger.Bill, error)
	ActiveFields(ctx context.Context, userID string) ([]farm.Field, error)
	SupplierCount(ctx context.Context, userID string) (int64, error)
	MonthlyBillTotals(ctx context.Context, userID string) ([]MonthTotal, error)
}

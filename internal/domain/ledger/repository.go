package ledger

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	CreateBill(ctx context.Context, bill *Bill) error
	CreateLineItems(ctx context.Context, items []LineItem) error
	UpdateBillTotal(ctx context.Context, userID, billID string, total float64) error
	ListBills(ctx context.Context, userID string) ([]Bill, error)
	GetBill(ctx context.Context, userID, billID string) (*Bill, error)
	DeleteBill(ctx context.Context, userID, billID string) (bool, error)
}

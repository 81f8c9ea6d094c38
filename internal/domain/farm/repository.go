package farm

import "context"

type Repository interface {
	CreateSupplier(ctx context.Context, supplier *Supplier) error
	ListSuppliers(ctx context.Context, userID string) ([]Supplier, error)
	CountSuppliers(ctx context.Context, userID string, activeOnly bool) (int64, error)
	CreateField(ctx context.Context, field *Field) error
	ListFields(ctx context.Context, userID string) ([]Field, error)
	ListActiveFields(ctx context.Context, userID string) ([]Field, error)
}

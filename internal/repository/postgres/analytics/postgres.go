package analytics

import (
	"context"

	analyticsdomain "farm-ledger-go/internal/domain/analytics"
	expensesdomain "farm-ledger-go/internal/domain/expenses"
	farmdomain "farm-ledger-go/internal/domain/farm"
	ledgerdomain "farm-ledger-go/internal/domain/ledger"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Expenses(ctx context.Context, userID string) ([]expensesdomain.Expense, error) {
	var rows []expensesdomain.Expense
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("expense_date desc, created_at desc").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *PostgresRepository) Bills(ctx context.Context, userID string) ([]ledgerdomain.Bill, error) {
	var bills []ledgerdomain.Bill
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Items").
		Order("purchase_date desc, created_at desc").
		Find(&bills).Error; err != nil {
		return nil, err
	}
	return bills, nil
}

func (r *PostgresRepository) ActiveFields(ctx context.Context, userID string) ([]farmdomain.Field, error) {
	var fields []farmdomain.Field
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND active = ?", userID, true).
		Find(&fields).Error; err != nil {
		return nil, err
	}
	return fields, nil
}

func (r *PostgresRepository) SupplierCount(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&farmdomain.Supplier{}).
		Where("user_id = ? AND active = ?", userID, true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) MonthlyBillTotals(ctx context.Context, userID string) ([]analyticsdomain.MonthTotal, error) {
	query := "SELECT to_char(date_trunc('month', b.purchase_date::timestamp), 'YYYY-MM') AS month, " +
		"COALESCE(SUM(b.total_amount), 0) AS total " +
		"FROM bills b WHERE b.user_id = ? " +
		"GROUP BY 1 ORDER BY 1 DESC"

	var rows []analyticsdomain.MonthTotal
	if err := r.db.WithContext(ctx).Raw(query, userID).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

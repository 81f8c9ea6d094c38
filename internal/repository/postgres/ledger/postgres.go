package ledger

import (
	"context"
	"errors"

	ledgerdomain "farm-ledger-go/internal/domain/ledger"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(ledgerdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) CreateBill(ctx context.Context, bill *ledgerdomain.Bill) error {
	return r.db.WithContext(ctx).Omit("Items").Create(bill).Error
}

func (r *PostgresRepository) CreateLineItems(ctx context.Context, items []ledgerdomain.LineItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *PostgresRepository) UpdateBillTotal(ctx context.Context, userID, billID string, total float64) error {
	return r.db.WithContext(ctx).
		Model(&ledgerdomain.Bill{}).
		Where("id = ? AND user_id = ?", billID, userID).
		Update("total_amount", total).Error
}

func (r *PostgresRepository) ListBills(ctx context.Context, userID string) ([]ledgerdomain.Bill, error) {
	var bills []ledgerdomain.Bill
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("line_items.created_at asc")
		}).
		Order("purchase_date desc, created_at desc").
		Find(&bills).Error; err != nil {
		return nil, err
	}
	return bills, nil
}

func (r *PostgresRepository) GetBill(ctx context.Context, userID, billID string) (*ledgerdomain.Bill, error) {
	var bill ledgerdomain.Bill
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, billID).
		Preload("Items").
		First(&bill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledgerdomain.ErrBillNotFound
		}
		return nil, err
	}
	return &bill, nil
}

// DeleteBill removes the line items before the bill row; the migrated
// schema has a foreign key on line_items.bill_id, so the parent cannot
// go first. The subquery keeps the item delete scoped to the owner.
func (r *PostgresRepository) DeleteBill(ctx context.Context, userID, billID string) (bool, error) {
	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("bill_id IN (?)", tx.Model(&ledgerdomain.Bill{}).Select("id").Where("user_id = ? AND id = ?", userID, billID)).
			Delete(&ledgerdomain.LineItem{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&ledgerdomain.Bill{}, "user_id = ? AND id = ?", userID, billID)
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	return deleted, err
}

package farm

import (
	"context"

	farmdomain "farm-ledger-go/internal/domain/farm"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateSupplier(ctx context.Context, supplier *farmdomain.Supplier) error {
	return r.db.WithContext(ctx).Create(supplier).Error
}

func (r *PostgresRepository) ListSuppliers(ctx context.Context, userID string) ([]farmdomain.Supplier, error) {
	var suppliers []farmdomain.Supplier
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name asc").
		Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (r *PostgresRepository) CountSuppliers(ctx context.Context, userID string, activeOnly bool) (int64, error) {
	query := r.db.WithContext(ctx).
		Model(&farmdomain.Supplier{}).
		Where("user_id = ?", userID)
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) CreateField(ctx context.Context, field *farmdomain.Field) error {
	return r.db.WithContext(ctx).Create(field).Error
}

func (r *PostgresRepository) ListFields(ctx context.Context, userID string) ([]farmdomain.Field, error) {
	var fields []farmdomain.Field
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name asc").
		Find(&fields).Error; err != nil {
		return nil, err
	}
	return fields, nil
}

func (r *PostgresRepository) ListActiveFields(ctx context.Context, userID string) ([]farmdomain.Field, error) {
	var fields []farmdomain.Field
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND active = ?", userID, true).
		Order("name asc").
		Find(&fields).Error; err != nil {
		return nil, err
	}
	return fields, nil
}

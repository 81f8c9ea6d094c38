package user

import (
	"context"
	"errors"

	expensesdomain "farm-ledger-go/internal/domain/expenses"
	farmdomain "farm-ledger-go/internal/domain/farm"
	ledgerdomain "farm-ledger-go/internal/domain/ledger"
	domain "farm-ledger-go/internal/domain/user"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *PostgresRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).
		Where("id = ?", userID).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *PostgresRepository) SetActive(ctx context.Context, userID string, active bool) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", userID).
		Update("active", active)
	return result.RowsAffected > 0, result.Error
}

// Delete removes the user and everything they own. The schema has no
// database-level cascade, so the owned tables are cleared here in one
// transaction.
func (r *PostgresRepository) Delete(ctx context.Context, userID string) (bool, error) {
	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("bill_id IN (?)", tx.Model(&ledgerdomain.Bill{}).Select("id").Where("user_id = ?", userID)).
			Delete(&ledgerdomain.LineItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&ledgerdomain.Bill{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&expensesdomain.Expense{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&farmdomain.Supplier{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&farmdomain.Field{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&domain.User{}, "id = ?", userID)
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	return deleted, err
}

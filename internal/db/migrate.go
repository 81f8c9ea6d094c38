package db

import (
	"farm-ledger-go/internal/domain/expenses"
	"farm-ledger-go/internal/domain/farm"
	"farm-ledger-go/internal/domain/ledger"
	"farm-ledger-go/internal/domain/user"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every model the app owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&ledger.Bill{},
		&ledger.LineItem{},
		&expenses.ExpenseCategory{},
		&expenses.Expense{},
		&farm.Supplier{},
		&farm.Field{},
	)
}

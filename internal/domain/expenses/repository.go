package expenses

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	CreateExpense(ctx context.Context, expense *Expense) error
	CreateExpenses(ctx context.Context, expenses []Expense) error
	ListExpenses(ctx context.Context, userID string, filter ListFilter) ([]Expense, error)
	DeleteExpense(ctx context.Context, userID, expenseID string) (bool, error)
	ListCategories(ctx context.Context) ([]ExpenseCategory, error)
	GetCategoryByName(ctx context.Context, name string) (*ExpenseCategory, error)
	SeedCategories(ctx context.Context, catalog []ExpenseCategory) error
}

package expenses

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type fakeExpensesRepo struct {
	expenses   []Expense
	categories map[string]*ExpenseCategory
}

func newFakeExpensesRepo() *fakeExpensesRepo {
	return &fakeExpensesRepo{categories: make(map[string]*ExpenseCategory)}
}

func (r *fakeExpensesRepo) seedCategory(name string) {
	r.categories[name] = &ExpenseCategory{
		ID:     "cat-" + name,
		Name:   name,
		Active: true,
	}
}

func (r *fakeExpensesRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	snapshot := append([]Expense{}, r.expenses...)
	if err := fn(r); err != nil {
		r.expenses = snapshot
		return err
	}
	return nil
}

func (r *fakeExpensesRepo) CreateExpense(ctx context.Context, expense *Expense) error {
	r.expenses = append(r.expenses, *expense)
	return nil
}

func (r *fakeExpensesRepo) CreateExpenses(ctx context.Context, rows []Expense) error {
	r.expenses = append(r.expenses, rows...)
	return nil
}

func (r *fakeExpensesRepo) ListExpenses(ctx context.Context, userID string, filter ListFilter) ([]Expense, error) {
	result := make([]Expense, 0)
	for _, expense := range r.expenses {
		if expense.UserID != userID {
			continue
		}
		if filter.Category != "" && expense.Category != filter.Category {
			continue
		}
		if filter.Season != "" && (expense.Season == nil || *expense.Season != filter.Season) {
			continue
		}
		result = append(result, expense)
	}
	return result, nil
}

func (r *fakeExpensesRepo) DeleteExpense(ctx context.Context, userID, expenseID string) (bool, error) {
	for i, expense := range r.expenses {
		if expense.ID == expenseID && expense.UserID == userID {
			r.expenses = append(r.expenses[:i], r.expenses[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeExpensesRepo) ListCategories(ctx context.Context) ([]ExpenseCategory, error) {
	result := make([]ExpenseCategory, 0, len(r.categories))
	for _, category := range r.categories {
		result = append(result, *category)
	}
	return result, nil
}

func (r *fakeExpensesRepo) GetCategoryByName(ctx context.Context, name string) (*ExpenseCategory, error) {
	category, ok := r.categories[name]
	if !ok {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

func (r *fakeExpensesRepo) SeedCategories(ctx context.Context, catalog []ExpenseCategory) error {
	for _, category := range catalog {
		if _, ok := r.categories[category.Name]; ok {
			continue
		}
		copied := category
		r.categories[category.Name] = &copied
	}
	return nil
}

func TestSeedCatalogIdempotent(t *testing.T) {
	repo := newFakeExpensesRepo()
	svc := NewService(repo)

	if err := svc.SeedCatalog(context.Background()); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	first := len(repo.categories)
	if first == 0 {
		t.Fatalf("catalog not seeded")
	}

	if err := svc.SeedCatalog(context.Background()); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}
	if len(repo.categories) != first {
		t.Fatalf("seed must not duplicate, had %d then %d", first, len(repo.categories))
	}

	if _, ok := repo.categories[BulkFallbackCategory]; !ok {
		t.Fatalf("catalog must include the %q fallback", BulkFallbackCategory)
	}
}

func TestCreateExpenseDefaults(t *testing.T) {
	repo := newFakeExpensesRepo()
	repo.seedCategory("fuel")
	svc := NewService(repo)
	svc.now = func() time.Time {
		return time.Date(2026, 8, 15, 18, 0, 0, 0, time.UTC)
	}

	created, err := svc.CreateExpense(context.Background(), "user-1", CreateExpenseInput{
		Description: "  Diesel for tractor ",
		Category:    "fuel",
		TotalAmount: 500,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.Description != "Diesel for tractor" {
		t.Fatalf("expected trimmed description, got %q", created.Description)
	}
	if created.PaymentMethod != "Cash" || created.PaymentStatus != "Paid" {
		t.Fatalf("expected payment defaults, got %q %q", created.PaymentMethod, created.PaymentStatus)
	}
	want := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	if !created.ExpenseDate.Equal(want) {
		t.Fatalf("expected today as expense date, got %v", created.ExpenseDate)
	}
	if created.CategoryID == nil || *created.CategoryID != "cat-fuel" {
		t.Fatalf("expected category id linked, got %v", created.CategoryID)
	}
}

func TestCreateExpenseUnknownCategory(t *testing.T) {
	repo := newFakeExpensesRepo()
	svc := NewService(repo)

	_, err := svc.CreateExpense(context.Background(), "user-1", CreateExpenseInput{
		Description: "Diesel",
		Category:    "rocketry",
		TotalAmount: 500,
	})
	if !errors.Is(err, ErrCategoryUnknown) {
		t.Fatalf("expected ErrCategoryUnknown, got %v", err)
	}
}

func TestCreateExpenseValidation(t *testing.T) {
	repo := newFakeExpensesRepo()
	repo.seedCategory("fuel")
	svc := NewService(repo)

	if _, err := svc.CreateExpense(context.Background(), "user-1", CreateExpenseInput{
		Description: "  ", Category: "fuel", TotalAmount: 10,
	}); err == nil {
		t.Fatalf("expected error for blank description")
	}

	if _, err := svc.CreateExpense(context.Background(), "user-1", CreateExpenseInput{
		Description: "Diesel", Category: "fuel", TotalAmount: -1,
	}); !errors.Is(err, ErrNegativeAmount) {
		t.Fatalf("expected ErrNegativeAmount, got %v", err)
	}
}

func TestBulkCreateSkipsBlankAndFallsBack(t *testing.T) {
	repo := newFakeExpensesRepo()
	repo.seedCategory("fuel")
	repo.seedCategory(BulkFallbackCategory)
	svc := NewService(repo)

	created, err := svc.BulkCreate(context.Background(), "user-1", BulkCreateInput{
		ExpenseDate: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		Season:      "Kharif",
		Items: []BulkItemInput{
			{Description: "Diesel", Category: "fuel", TotalAmount: 500},
			{Description: "   ", Category: "fuel", TotalAmount: 100},
			{Description: "Misc repair", TotalAmount: 250},
		},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created != 2 {
		t.Fatalf("expected 2 created, got %d", created)
	}

	rows, _ := svc.ListExpenses(context.Background(), "user-1", ListFilter{})
	if len(rows) != 2 {
		t.Fatalf("expected 2 stored rows, got %d", len(rows))
	}
	var fallback *Expense
	for i := range rows {
		if rows[i].Description == "Misc repair" {
			fallback = &rows[i]
		}
	}
	if fallback == nil {
		t.Fatalf("fallback row missing")
	}
	if fallback.Category != BulkFallbackCategory {
		t.Fatalf("expected %q category, got %q", BulkFallbackCategory, fallback.Category)
	}
	if fallback.Season == nil || *fallback.Season != "Kharif" {
		t.Fatalf("shared season not applied: %v", fallback.Season)
	}
}

func TestBulkCreateEmptyAfterSkipping(t *testing.T) {
	repo := newFakeExpensesRepo()
	svc := NewService(repo)

	created, err := svc.BulkCreate(context.Background(), "user-1", BulkCreateInput{
		Items: []BulkItemInput{{Description: "  "}},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created != 0 {
		t.Fatalf("expected 0 created, got %d", created)
	}
	if len(repo.expenses) != 0 {
		t.Fatalf("nothing should be stored")
	}
}

func TestBulkCreateNegativeAmount(t *testing.T) {
	repo := newFakeExpensesRepo()
	svc := NewService(repo)

	_, err := svc.BulkCreate(context.Background(), "user-1", BulkCreateInput{
		Items: []BulkItemInput{{Description: "Diesel", TotalAmount: -5}},
	})
	if !errors.Is(err, ErrNegativeAmount) {
		t.Fatalf("expected ErrNegativeAmount, got %v", err)
	}
}

func TestDeleteExpenseScopedToUser(t *testing.T) {
	repo := newFakeExpensesRepo()
	repo.seedCategory("fuel")
	svc := NewService(repo)

	created, err := svc.CreateExpense(context.Background(), "user-1", CreateExpenseInput{
		Description: "Diesel", Category: "fuel", TotalAmount: 500,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.DeleteExpense(context.Background(), "user-2", created.ID); !errors.Is(err, ErrExpenseNotFound) {
		t.Fatalf("expected ErrExpenseNotFound for other user, got %v", err)
	}
	if err := svc.DeleteExpense(context.Background(), "user-1", created.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
}

func TestCatalogEntriesWellFormed(t *testing.T) {
	catalog := DefaultCatalog()
	seen := make(map[string]struct{}, len(catalog))
	for _, category := range catalog {
		if strings.TrimSpace(category.Name) == "" || strings.TrimSpace(category.DisplayName) == "" {
			t.Fatalf("catalog entry missing names: %+v", category)
		}
		if _, ok := seen[category.Name]; ok {
			t.Fatalf("duplicate catalog name %q", category.Name)
		}
		seen[category.Name] = struct{}{}
		if !category.Active {
			t.Fatalf("catalog entries must start active: %+v", category)
		}
	}
}

package expenses

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// SeedCatalog installs the fixed category catalog, skipping names that
// already exist. Runs once at process start, before the server accepts
// requests.
func (s *Service) SeedCatalog(ctx context.Context) error {
	return s.repo.SeedCategories(ctx, DefaultCatalog())
}

func (s *Service) Categories(ctx context.Context) ([]ExpenseCategory, error) {
	return s.repo.ListCategories(ctx)
}

func (s *Service) CreateExpense(ctx context.Context, userID string, input CreateExpenseInput) (*Expense, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, fmt.Errorf("description is required")
	}
	if input.TotalAmount < 0 {
		return nil, ErrNegativeAmount
	}

	category, err := s.repo.GetCategoryByName(ctx, strings.TrimSpace(input.Category))
	if err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return nil, ErrCategoryUnknown
		}
		return nil, err
	}

	expenseDate := input.ExpenseDate
	if expenseDate.IsZero() {
		now := s.now()
		expenseDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	expense := Expense{
		ID:              uuid.NewString(),
		UserID:          userID,
		Description:     description,
		Category:        category.Name,
		Quantity:        input.Quantity,
		Unit:            optional(input.Unit),
		UnitPrice:       input.UnitPrice,
		TotalAmount:     input.TotalAmount,
		CategoryID:      &category.ID,
		SupplierID:      optional(input.SupplierID),
		FieldID:         optional(input.FieldID),
		ExpenseDate:     expenseDate,
		PaymentMethod:   defaulted(input.PaymentMethod, "Cash"),
		PaymentStatus:   defaulted(input.PaymentStatus, "Paid"),
		Season:          optional(input.Season),
		CropCycle:       optional(input.CropCycle),
		ApplicationDate: input.ApplicationDate,
		Notes:           optional(input.Notes),
	}

	if err := s.repo.CreateExpense(ctx, &expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

// BulkCreate adds many expenses sharing a date, season, crop and field in
// one transaction. Rows with a blank description are skipped; a row without
// a recognized category lands in the utilities bucket.
func (s *Service) BulkCreate(ctx context.Context, userID string, input BulkCreateInput) (int, error) {
	expenseDate := input.ExpenseDate
	if expenseDate.IsZero() {
		now := s.now()
		expenseDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	rows := make([]Expense, 0, len(input.Items))
	for _, item := range input.Items {
		description := strings.TrimSpace(item.Description)
		if description == "" {
			continue
		}
		if item.TotalAmount < 0 {
			return 0, ErrNegativeAmount
		}

		category := strings.TrimSpace(item.Category)
		if category == "" {
			category = BulkFallbackCategory
		}

		rows = append(rows, Expense{
			ID:            uuid.NewString(),
			UserID:        userID,
			Description:   description,
			Category:      category,
			Quantity:      item.Quantity,
			Unit:          optional(item.Unit),
			UnitPrice:     item.UnitPrice,
			TotalAmount:   item.TotalAmount,
			ExpenseDate:   expenseDate,
			PaymentMethod: defaulted(item.PaymentMethod, "Cash"),
			PaymentStatus: "Paid",
			Season:        optional(input.Season),
			CropCycle:     optional(input.CropCycle),
			FieldID:       optional(input.FieldID),
			Notes:         optional(input.Notes),
		})
	}

	if len(rows) == 0 {
		return 0, nil
	}

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		for i := range rows {
			category, err := tx.GetCategoryByName(ctx, rows[i].Category)
			if err != nil {
				if errors.Is(err, ErrCategoryNotFound) {
					continue
				}
				return err
			}
			rows[i].CategoryID = &category.ID
		}
		return tx.CreateExpenses(ctx, rows)
	})
	if err != nil {
		return 0, err
	}

	return len(rows), nil
}

func (s *Service) ListExpenses(ctx context.Context, userID string, filter ListFilter) ([]Expense, error) {
	return s.repo.ListExpenses(ctx, userID, filter)
}

func (s *Service) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	deleted, err := s.repo.DeleteExpense(ctx, userID, expenseID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrExpenseNotFound
	}
	return nil
}

func optional(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func defaulted(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}

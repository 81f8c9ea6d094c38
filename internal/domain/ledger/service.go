package ledger

import (
	"context"
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

// CreateBill is the single mutation entry point for bills: the bill, its
// items and the recomputed total commit in one transaction, so a stored bill
// is never observable with a stale total.
func (s *Service) CreateBill(ctx context.Context, userID string, input CreateBillInput) (*Bill, error) {
	items, err := normalizeItems(input.Items)
	if err != nil {
		return nil, err
	}

	purchaseDate := input.PurchaseDate
	if purchaseDate.IsZero() {
		purchaseDate = dateOnly(s.now())
	}

	bill := Bill{
		ID:           uuid.NewString(),
		UserID:       userID,
		PurchaseDate: purchaseDate,
	}
	if number := strings.TrimSpace(input.BillNumber); number != "" {
		bill.BillNumber = &number
	}

	err = s.repo.Transaction(ctx, func(tx Repository) error {
		if err := tx.CreateBill(ctx, &bill); err != nil {
			return err
		}

		for i := range items {
			items[i].BillID = bill.ID
		}
		if len(items) > 0 {
			if err := tx.CreateLineItems(ctx, items); err != nil {
				return err
			}
		}

		bill.Items = items
		bill.RecomputeTotal()
		return tx.UpdateBillTotal(ctx, userID, bill.ID, bill.TotalAmount)
	})
	if err != nil {
		return nil, err
	}

	return &bill, nil
}

// AddSingleItem keeps the legacy one-fertilizer entry path: it creates a
// bill dated today holding just that item.
func (s *Service) AddSingleItem(ctx context.Context, userID string, item ItemInput) (*Bill, error) {
	if strings.TrimSpace(item.Name) == "" {
		return nil, ErrNoItems
	}
	return s.CreateBill(ctx, userID, CreateBillInput{Items: []ItemInput{item}})
}

func (s *Service) ListBills(ctx context.Context, userID string) ([]Bill, error) {
	return s.repo.ListBills(ctx, userID)
}

func (s *Service) GetBill(ctx context.Context, userID, billID string) (*Bill, error) {
	return s.repo.GetBill(ctx, userID, billID)
}

func (s *Service) DeleteBill(ctx context.Context, userID, billID string) error {
	deleted, err := s.repo.DeleteBill(ctx, userID, billID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBillNotFound
	}
	return nil
}

// normalizeItems drops blank-name entries, fills the default category and
// rejects negative prices. Blank rows are skipped rather than rejected so a
// form with trailing empty item rows still submits.
func normalizeItems(inputs []ItemInput) ([]LineItem, error) {
	items := make([]LineItem, 0, len(inputs))
	for _, input := range inputs {
		name := strings.TrimSpace(input.Name)
		if name == "" {
			continue
		}

		category := strings.TrimSpace(input.Category)
		if category == "" {
			category = DefaultCategory
		}
		if !ValidCategory(category) {
			return nil, ErrInvalidCategory
		}

		if input.Price < 0 {
			return nil, ErrNegativePrice
		}

		items = append(items, LineItem{
			ID:       uuid.NewString(),
			Name:     name,
			Category: category,
			Price:    input.Price,
		})
	}
	return items, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

package ledger

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"
)

type fakeLedgerRepo struct {
	bills []*Bill

	failCreateBill      error
	failUpdateBillTotal error
}

func newFakeLedgerRepo() *fakeLedgerRepo {
	return &fakeLedgerRepo{}
}

// Transaction emulates rollback: the callback runs against a snapshot copy
// and the result is kept only on success.
func (r *fakeLedgerRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	snapshot := make([]*Bill, len(r.bills))
	for i, bill := range r.bills {
		copied := *bill
		copied.Items = append([]LineItem{}, bill.Items...)
		snapshot[i] = &copied
	}

	if err := fn(r); err != nil {
		r.bills = snapshot
		return err
	}
	return nil
}

func (r *fakeLedgerRepo) CreateBill(ctx context.Context, bill *Bill) error {
	if r.failCreateBill != nil {
		return r.failCreateBill
	}
	copied := *bill
	r.bills = append(r.bills, &copied)
	return nil
}

func (r *fakeLedgerRepo) CreateLineItems(ctx context.Context, items []LineItem) error {
	for _, item := range items {
		bill := r.find(item.BillID)
		if bill == nil {
			return errors.New("bill missing")
		}
		bill.Items = append(bill.Items, item)
	}
	return nil
}

func (r *fakeLedgerRepo) UpdateBillTotal(ctx context.Context, userID, billID string, total float64) error {
	if r.failUpdateBillTotal != nil {
		return r.failUpdateBillTotal
	}
	bill := r.find(billID)
	if bill == nil || bill.UserID != userID {
		return ErrBillNotFound
	}
	bill.TotalAmount = total
	return nil
}

func (r *fakeLedgerRepo) ListBills(ctx context.Context, userID string) ([]Bill, error) {
	result := make([]Bill, 0)
	for _, bill := range r.bills {
		if bill.UserID != userID {
			continue
		}
		copied := *bill
		copied.Items = append([]LineItem{}, bill.Items...)
		result = append(result, copied)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].PurchaseDate.After(result[j].PurchaseDate)
	})
	return result, nil
}

func (r *fakeLedgerRepo) GetBill(ctx context.Context, userID, billID string) (*Bill, error) {
	bill := r.find(billID)
	if bill == nil || bill.UserID != userID {
		return nil, ErrBillNotFound
	}
	copied := *bill
	copied.Items = append([]LineItem{}, bill.Items...)
	return &copied, nil
}

func (r *fakeLedgerRepo) DeleteBill(ctx context.Context, userID, billID string) (bool, error) {
	for i, bill := range r.bills {
		if bill.ID == billID && bill.UserID == userID {
			r.bills = append(r.bills[:i], r.bills[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeLedgerRepo) find(billID string) *Bill {
	for _, bill := range r.bills {
		if bill.ID == billID {
			return bill
		}
	}
	return nil
}

func newTestService(repo Repository) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time {
		return time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC)
	}
	return svc
}

func TestCreateBillRecomputesTotal(t *testing.T) {
	repo := newFakeLedgerRepo()
	svc := newTestService(repo)

	bill, err := svc.CreateBill(context.Background(), "user-1", CreateBillInput{
		BillNumber:   "INV-100",
		PurchaseDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Items: []ItemInput{
			{Name: "Urea 45kg", Category: "Urea", Price: 266.50},
			{Name: "DAP 50kg", Category: "DAP", Price: 1350},
		},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if bill.TotalAmount != 1616.50 {
		t.Fatalf("expected total 1616.50, got %v", bill.TotalAmount)
	}

	stored := repo.find(bill.ID)
	if stored == nil {
		t.Fatalf("bill not stored")
	}
	if stored.TotalAmount != 1616.50 {
		t.Fatalf("stored total not updated, got %v", stored.TotalAmount)
	}
	if len(stored.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(stored.Items))
	}
}

func TestCreateBillEmptyItemsYieldsZeroTotal(t *testing.T) {
	repo := newFakeLedgerRepo()
	svc := newTestService(repo)

	bill, err := svc.CreateBill(context.Background(), "user-1", CreateBillInput{
		Items: []ItemInput{{Name: "   "}},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if bill.TotalAmount != 0 {
		t.Fatalf("expected zero total, got %v", bill.TotalAmount)
	}
	if len(bill.Items) != 0 {
		t.Fatalf("expected blank rows skipped, got %d items", len(bill.Items))
	}
}

func TestCreateBillDefaultsCategoryAndDate(t *testing.T) {
	repo := newFakeLedgerRepo()
	svc := newTestService(repo)

	bill, err := svc.CreateBill(context.Background(), "user-1", CreateBillInput{
		Items: []ItemInput{{Name: "Mystery mix", Price: 100}},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if bill.Items[0].Category != DefaultCategory {
		t.Fatalf("expected default category, got %q", bill.Items[0].Category)
	}
	want := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	if !bill.PurchaseDate.Equal(want) {
		t.Fatalf("expected purchase date %v, got %v", want, bill.PurchaseDate)
	}
}

func TestCreateBillRejectsUnknownCategory(t *testing.T) {
	repo := newFakeLedgerRepo()
	svc := newTestService(repo)

	_, err := svc.CreateBill(context.Background(), "user-1", CreateBillInput{
		Items: []ItemInput{{Name: "Urea", Category: "Pesticide", Price: 10}},
	})
	if !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
}

func TestCreateBillRejectsNegativePrice(t *testing.T) {
	repo := newFakeLedgerRepo()
	svc := newTestService(repo)

	_, err := svc.CreateBill(context.Background(), "user-1", CreateBillInput{
		Items: []ItemInput{{Name: "Urea", Category: "Urea", Price: -5}},
	})
	if !errors.Is(err, ErrNegativePrice) {
		t.Fatalf("expected ErrNegativePrice, got %v", err)
	}
}

func TestCreateBillRollsBackOnTotalUpdateFailure(t *testing.T) {
	repo := newFakeLedgerRepo()
	repo.failUpdateBillTotal = errors.New("db down")
	svc := newTestService(repo)

	_, err := svc.CreateBill(context.Background(), "user-1", CreateBillInput{
		Items: []ItemInput{{Name: "Urea", Category: "Urea", Price: 10}},
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	if len(repo.bills) != 0 {
		t.Fatalf("expected rollback, found %d bills", len(repo.bills))
	}
}

func TestAddSingleItemCreatesOneItemBill(t *testing.T) {
	repo := newFakeLedgerRepo()
	svc := newTestService(repo)

	bill, err := svc.AddSingleItem(context.Background(), "user-1", ItemInput{
		Name: "MOP 25kg", Category: "MOP", Price: 900,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(bill.Items) != 1 || bill.TotalAmount != 900 {
		t.Fatalf("expected one-item bill with total 900, got %d items total %v", len(bill.Items), bill.TotalAmount)
	}
	if bill.BillNumber != nil {
		t.Fatalf("expected no bill number, got %q", *bill.BillNumber)
	}
}

func TestAddSingleItemRequiresName(t *testing.T) {
	repo := newFakeLedgerRepo()
	svc := newTestService(repo)

	_, err := svc.AddSingleItem(context.Background(), "user-1", ItemInput{Name: "  "})
	if !errors.Is(err, ErrNoItems) {
		t.Fatalf("expected ErrNoItems, got %v", err)
	}
}

func TestDeleteBillNotFound(t *testing.T) {
	repo := newFakeLedgerRepo()
	svc := newTestService(repo)

	err := svc.DeleteBill(context.Background(), "user-1", "missing")
	if !errors.Is(err, ErrBillNotFound) {
		t.Fatalf("expected ErrBillNotFound, got %v", err)
	}
}

func TestDeleteBillScopedToUser(t *testing.T) {
	repo := newFakeLedgerRepo()
	svc := newTestService(repo)

	bill, err := svc.CreateBill(context.Background(), "user-1", CreateBillInput{
		Items: []ItemInput{{Name: "Urea", Category: "Urea", Price: 10}},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := svc.DeleteBill(context.Background(), "user-2", bill.ID); !errors.Is(err, ErrBillNotFound) {
		t.Fatalf("expected ErrBillNotFound for other user, got %v", err)
	}
	if err := svc.DeleteBill(context.Background(), "user-1", bill.ID); err != nil {
		t.Fatalf("expected owner delete to succeed, got %v", err)
	}
}

func TestRecomputeTotalEmptyBill(t *testing.T) {
	bill := Bill{}
	if total := bill.RecomputeTotal(); total != 0 {
		t.Fatalf("expected 0 for empty bill, got %v", total)
	}
}

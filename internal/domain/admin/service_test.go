package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	"farm-ledger-go/internal/domain/ledger"
	"farm-ledger-go/internal/domain/user"
)

type fakeUsersRepo struct {
	users []user.User
}

func (r *fakeUsersRepo) Create(ctx context.Context, u *user.User) error {
	r.users = append(r.users, *u)
	return nil
}

func (r *fakeUsersRepo) GetByID(ctx context.Context, userID string) (*user.User, error) {
	for i := range r.users {
		if r.users[i].ID == userID {
			return &r.users[i], nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	for i := range r.users {
		if r.users[i].Email == email {
			return &r.users[i], nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *fakeUsersRepo) CountByEmail(ctx context.Context, email string) (int64, error) {
	var count int64
	for _, u := range r.users {
		if u.Email == email {
			count++
		}
	}
	return count, nil
}

func (r *fakeUsersRepo) List(ctx context.Context) ([]user.User, error) {
	return append([]user.User{}, r.users...), nil
}

func (r *fakeUsersRepo) SetActive(ctx context.Context, userID string, active bool) (bool, error) {
	for i := range r.users {
		if r.users[i].ID == userID {
			r.users[i].Active = active
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUsersRepo) Delete(ctx context.Context, userID string) (bool, error) {
	for i := range r.users {
		if r.users[i].ID == userID {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeBillsRepo struct {
	bills map[string][]ledger.Bill
}

func (r *fakeBillsRepo) Transaction(ctx context.Context, fn func(ledger.Repository) error) error {
	return fn(r)
}

func (r *fakeBillsRepo) CreateBill(ctx context.Context, bill *ledger.Bill) error {
	r.bills[bill.UserID] = append(r.bills[bill.UserID], *bill)
	return nil
}

func (r *fakeBillsRepo) CreateLineItems(ctx context.Context, items []ledger.LineItem) error {
	return nil
}

func (r *fakeBillsRepo) UpdateBillTotal(ctx context.Context, userID, billID string, total float64) error {
	return nil
}

func (r *fakeBillsRepo) ListBills(ctx context.Context, userID string) ([]ledger.Bill, error) {
	return r.bills[userID], nil
}

func (r *fakeBillsRepo) GetBill(ctx context.Context, userID, billID string) (*ledger.Bill, error) {
	for i := range r.bills[userID] {
		if r.bills[userID][i].ID == billID {
			return &r.bills[userID][i], nil
		}
	}
	return nil, ledger.ErrBillNotFound
}

func (r *fakeBillsRepo) DeleteBill(ctx context.Context, userID, billID string) (bool, error) {
	return false, nil
}

func day(d int) time.Time {
	return time.Date(2026, 7, d, 0, 0, 0, 0, time.UTC)
}

func seedService() (*Service, *fakeUsersRepo) {
	users := &fakeUsersRepo{users: []user.User{
		{ID: "u1", Name: "Ravi", Email: "ravi@example.com", Active: true},
		{ID: "u2", Name: "Meena", Email: "meena@example.com", Active: false},
	}}
	bills := &fakeBillsRepo{bills: map[string][]ledger.Bill{
		"u1": {
			{
				ID: "b1", UserID: "u1", PurchaseDate: day(10), TotalAmount: 300,
				Items: []ledger.LineItem{
					{Name: "Urea", Category: "Urea", Price: 100},
					{Name: "DAP", Category: "DAP", Price: 200},
				},
			},
			{
				ID: "b2", UserID: "u1", PurchaseDate: day(5), TotalAmount: 150,
				Items: []ledger.LineItem{{Name: "Urea", Category: "Urea", Price: 150}},
			},
		},
	}}
	return NewService(users, bills), users
}

func TestOverviewAggregatesPerUser(t *testing.T) {
	svc, _ := seedService()

	overview, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if overview.TotalUsers != 2 || overview.ActiveUsers != 1 {
		t.Fatalf("expected 2 users 1 active, got %d/%d", overview.TotalUsers, overview.ActiveUsers)
	}
	if overview.PlatformExpenses != 450 || overview.PlatformBills != 2 {
		t.Fatalf("expected platform totals 450/2, got %v/%d", overview.PlatformExpenses, overview.PlatformBills)
	}

	var ravi *UserStats
	for i := range overview.Users {
		if overview.Users[i].User.ID == "u1" {
			ravi = &overview.Users[i]
		}
	}
	if ravi == nil {
		t.Fatalf("u1 missing from overview")
	}
	if ravi.TotalBills != 2 || ravi.TotalFertilizers != 3 || ravi.TotalExpenses != 450 {
		t.Fatalf("unexpected stats %+v", ravi)
	}
	if ravi.LastActivity == nil || !ravi.LastActivity.Equal(day(10)) {
		t.Fatalf("expected last activity %v, got %v", day(10), ravi.LastActivity)
	}
}

func TestSetUserActiveRejectsSelf(t *testing.T) {
	svc, _ := seedService()

	if err := svc.SetUserActive(context.Background(), "u1", "u1", false); !errors.Is(err, ErrSelfToggle) {
		t.Fatalf("expected ErrSelfToggle, got %v", err)
	}
}

func TestSetUserActiveUpdatesTarget(t *testing.T) {
	svc, users := seedService()

	if err := svc.SetUserActive(context.Background(), "u1", "u2", true); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	target, _ := users.GetByID(context.Background(), "u2")
	if !target.Active {
		t.Fatalf("expected u2 reactivated")
	}

	if err := svc.SetUserActive(context.Background(), "u1", "missing", true); !errors.Is(err, user.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestDeleteUserRejectsSelf(t *testing.T) {
	svc, _ := seedService()

	if err := svc.DeleteUser(context.Background(), "u1", "u1"); !errors.Is(err, ErrSelfDelete) {
		t.Fatalf("expected ErrSelfDelete, got %v", err)
	}
}

func TestDeleteUserRemovesTarget(t *testing.T) {
	svc, users := seedService()

	if err := svc.DeleteUser(context.Background(), "u1", "u2"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := users.GetByID(context.Background(), "u2"); !errors.Is(err, user.ErrUserNotFound) {
		t.Fatalf("expected u2 gone, got %v", err)
	}

	if err := svc.DeleteUser(context.Background(), "u1", "missing"); !errors.Is(err, user.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserDetailBreakdown(t *testing.T) {
	svc, _ := seedService()

	detail, err := svc.UserDetail(context.Background(), "u1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if detail.TotalExpenses != 450 || detail.TotalFertilizers != 3 {
		t.Fatalf("unexpected totals %v/%d", detail.TotalExpenses, detail.TotalFertilizers)
	}
	if detail.CategoryCounts["Urea"] != 2 || detail.CategoryCounts["DAP"] != 1 {
		t.Fatalf("unexpected category counts %v", detail.CategoryCounts)
	}
	if len(detail.MonthlyExpenses) != 1 || detail.MonthlyExpenses[0].Month != "2026-07" || detail.MonthlyExpenses[0].Total != 450 {
		t.Fatalf("unexpected monthly %v", detail.MonthlyExpenses)
	}
}

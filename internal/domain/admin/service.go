package admin

import (
	"context"
	"errors"
	"sort"

	"farm-ledger-go/internal/domain/ledger"
	"farm-ledger-go/internal/domain/user"
)

var (
	ErrSelfToggle = errors.New("cannot change own active status")
	ErrSelfDelete = errors.New("cannot delete own account")
)

// Service serves the admin surface. It reads through the same per-user
// scoped repositories as the rest of the app instead of a privileged query
// path; the scale here is a handful of farmers, not a tenant fleet.
type Service struct {
	users user.Repository
	bills ledger.Repository
}

func NewService(users user.Repository, bills ledger.Repository) *Service {
	return &Service{users: users, bills: bills}
}

func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	userRows, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	overview := Overview{
		Users:      make([]UserStats, 0, len(userRows)),
		TotalUsers: len(userRows),
	}

	for _, u := range userRows {
		if u.Active {
			overview.ActiveUsers++
		}

		bills, err := s.bills.ListBills(ctx, u.ID)
		if err != nil {
			return nil, err
		}

		stats := UserStats{User: u, TotalBills: len(bills)}
		for _, bill := range bills {
			stats.TotalExpenses += bill.TotalAmount
			stats.TotalFertilizers += len(bill.Items)
		}
		if len(bills) > 0 {
			last := bills[0].PurchaseDate
			stats.LastActivity = &last
		}

		overview.Users = append(overview.Users, stats)
		overview.PlatformExpenses += stats.TotalExpenses
		overview.PlatformBills += stats.TotalBills
	}

	return &overview, nil
}

func (s *Service) SetUserActive(ctx context.Context, actingUserID, targetUserID string, active bool) error {
	if actingUserID == targetUserID {
		return ErrSelfToggle
	}

	updated, err := s.users.SetActive(ctx, targetUserID, active)
	if err != nil {
		return err
	}
	if !updated {
		return user.ErrUserNotFound
	}
	return nil
}

// DeleteUser removes the target account and all records it owns. The
// repository handles the cascade over bills, expenses, suppliers and fields.
func (s *Service) DeleteUser(ctx context.Context, actingUserID, targetUserID string) error {
	if actingUserID == targetUserID {
		return ErrSelfDelete
	}

	deleted, err := s.users.Delete(ctx, targetUserID)
	if err != nil {
		return err
	}
	if !deleted {
		return user.ErrUserNotFound
	}
	return nil
}

func (s *Service) UserDetail(ctx context.Context, targetUserID string) (*UserDetail, error) {
	u, err := s.users.GetByID(ctx, targetUserID)
	if err != nil {
		return nil, err
	}

	bills, err := s.bills.ListBills(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	detail := UserDetail{
		User:           *u,
		Bills:          bills,
		CategoryCounts: make(map[string]int),
	}

	monthly := make(map[string]float64)
	for _, bill := range bills {
		detail.TotalExpenses += bill.TotalAmount
		monthly[bill.PurchaseDate.Format("2006-01")] += bill.TotalAmount
		for _, item := range bill.Items {
			detail.CategoryCounts[item.Category]++
			detail.TotalFertilizers++
		}
	}

	detail.MonthlyExpenses = make([]MonthTotal, 0, len(monthly))
	for month, total := range monthly {
		detail.MonthlyExpenses = append(detail.MonthlyExpenses, MonthTotal{Month: month, Total: total})
	}
	sort.Slice(detail.MonthlyExpenses, func(i, j int) bool {
		return detail.MonthlyExpenses[i].Month > detail.MonthlyExpenses[j].Month
	})

	return &detail, nil
}

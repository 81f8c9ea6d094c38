package admin

import (
	"time"

	"farm-ledger-go/internal/domain/ledger"
	"farm-ledger-go/internal/domain/user"
)

type UserStats struct {
	User             user.User  `json:"user"`
	TotalExpenses    float64    `json:"total_expenses"`
	TotalBills       int        `json:"total_bills"`
	TotalFertilizers int        `json:"total_fertilizers"`
	LastActivity     *time.Time `json:"last_activity,omitempty"`
}

type Overview struct {
	Users            []UserStats `json:"users"`
	TotalUsers       int         `json:"total_users"`
	ActiveUsers      int         `json:"active_users"`
	PlatformExpenses float64     `json:"total_platform_expenses"`
	PlatformBills    int         `json:"total_platform_bills"`
}

type MonthTotal struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

type UserDetail struct {
	User             user.User      `json:"user"`
	Bills            []ledger.Bill  `json:"bills"`
	TotalExpenses    float64        `json:"total_expenses"`
	TotalFertilizers int            `json:"total_fertilizers"`
	CategoryCounts   map[string]int `json:"fertilizer_categories"`
	MonthlyExpenses  []MonthTotal   `json:"monthly_expenses"`
}

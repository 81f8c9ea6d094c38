package analytics

import "time"

// FertilizerBucket is the legacy category key every bill amount is folded
// into on the dashboard breakdown.
const FertilizerBucket = "fertilizers"

const (
	ActivityExpense    = "expense"
	ActivityFertilizer = "fertilizer"
)

const recentActivityLimit = 8

type Activity struct {
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
}

type Dashboard struct {
	TotalExpenses     float64            `json:"total_expenses"`
	CategoryBreakdown map[string]float64 `json:"category_breakdown"`
	TotalAcres        float64            `json:"total_acres"`
	CostPerAcre       float64            `json:"cost_per_acre"`
	FieldCount        int                `json:"total_fields"`
	SupplierCount     int                `json:"total_suppliers"`
	ExpenseCount      int                `json:"total_expense_entries"`
	BillCount         int                `json:"total_bills"`
	RecentActivities  []Activity         `json:"recent_activities"`
	CurrentSeason     string             `json:"current_season"`
	SeasonalExpenses  float64            `json:"seasonal_expenses"`
}

type MonthTotal struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

package expenses

import "time"

// Expense is a standalone categorized cost entry, independent of bills.
// TotalAmount is authoritative and user-entered; it is stored even when
// quantity and unit price are present and the three are never
// cross-validated.
type Expense struct {
	ID              string     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          string     `gorm:"type:uuid;index;not null" json:"-"`
	Description     string     `gorm:"size:200;not null" json:"description"`
	Category        string     `gorm:"size:50;index;not null" json:"category"`
	Quantity        *float64   `gorm:"type:numeric(12,2)" json:"quantity,omitempty"`
	Unit            *string    `gorm:"size:20" json:"unit,omitempty"`
	UnitPrice       *float64   `gorm:"type:numeric(12,2)" json:"unit_price,omitempty"`
	TotalAmount     float64    `gorm:"type:numeric(12,2);not null" json:"total_amount"`
	CategoryID      *string    `gorm:"type:uuid" json:"category_id,omitempty"`
	SupplierID      *string    `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	FieldID         *string    `gorm:"type:uuid;index" json:"field_id,omitempty"`
	ExpenseDate     time.Time  `gorm:"type:date;not null" json:"expense_date"`
	PaymentMethod   string     `gorm:"size:50;not null;default:Cash" json:"payment_method"`
	PaymentStatus   string     `gorm:"size:50;not null;default:Paid" json:"payment_status"`
	Season          *string    `gorm:"size:50" json:"season,omitempty"`
	CropCycle       *string    `gorm:"size:100" json:"crop_cycle,omitempty"`
	ApplicationDate *time.Time `gorm:"type:date" json:"application_date,omitempty"`
	Notes           *string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// ExpenseCategory is one entry of the fixed catalog, keyed by unique name
// and seeded once at startup.
type ExpenseCategory struct {
	ID               string  `gorm:"type:uuid;primaryKey" json:"id"`
	Name             string  `gorm:"size:50;uniqueIndex;not null" json:"name"`
	DisplayName      string  `gorm:"size:100;not null" json:"display_name"`
	Icon             string  `gorm:"size:50;not null;default:'fas fa-tag'" json:"icon"`
	Color            string  `gorm:"size:20;not null;default:primary" json:"color"`
	RequiresQuantity bool    `gorm:"not null;default:true" json:"requires_quantity"`
	DefaultUnit      string  `gorm:"size:20;not null;default:kg" json:"default_unit"`
	Description      *string `gorm:"type:text" json:"description,omitempty"`
	Active           bool    `gorm:"not null;default:true" json:"active"`
}

func (Expense) TableName() string         { return "expenses" }
func (ExpenseCategory) TableName() string { return "expense_categories" }

var PaymentMethods = []string{"Cash", "UPI", "Bank Transfer", "Cheque", "Credit", "Government Subsidy"}

var PaymentStatuses = []string{"Paid", "Pending", "Partial"}

var Seasons = []string{"Kharif", "Rabi", "Zaid", "Year-round"}

var QuantityUnits = []string{"kg", "bags", "liters", "tons", "acres", "hours", "days", "units", "trips"}

type CreateExpenseInput struct {
	Description     string
	Category        string
	Quantity        *float64
	Unit            string
	UnitPrice       *float64
	TotalAmount     float64
	SupplierID      string
	FieldID         string
	ExpenseDate     time.Time
	PaymentMethod   string
	PaymentStatus   string
	Season          string
	CropCycle       string
	ApplicationDate *time.Time
	Notes           string
}

// BulkItemInput is one row of the add-many form; blank descriptions are
// skipped, not rejected.
type BulkItemInput struct {
	Description   string
	Category      string
	Quantity      *float64
	Unit          string
	UnitPrice     *float64
	TotalAmount   float64
	PaymentMethod string
}

type BulkCreateInput struct {
	ExpenseDate time.Time
	Season      string
	CropCycle   string
	FieldID     string
	Notes       string
	Items       []BulkItemInput
}

type ListFilter struct {
	From          *time.Time
	To            *time.Time
	Category      string
	SupplierID    string
	FieldID       string
	Season        string
	PaymentStatus string
}

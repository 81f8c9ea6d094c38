package ledger

import "time"

// DefaultCategory is the fallback fertilizer category for blank or unknown
// values, both on bill entry and on CSV import.
const DefaultCategory = "Urea"

// Categories is the fixed fertilizer category list. Imported rows with a
// category outside this list are coerced to DefaultCategory, not rejected.
var Categories = []string{
	"Urea",
	"DAP",
	"NPK",
	"MOP",
	"SSP",
	"Organic",
	"Micronutrients",
	"Liquid",
}

func ValidCategory(name string) bool {
	for _, category := range Categories {
		if category == name {
			return true
		}
	}
	return false
}

// Bill groups fertilizer line items purchased together. TotalAmount is a
// cached derived value: it must equal the sum of item prices and is
// recomputed by the service on every structural change, never on read.
type Bill struct {
	ID           string     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       string     `gorm:"type:uuid;index;not null" json:"-"`
	BillNumber   *string    `gorm:"size:50" json:"bill_number,omitempty"`
	PurchaseDate time.Time  `gorm:"type:date;not null" json:"purchase_date"`
	TotalAmount  float64    `gorm:"type:numeric(12,2);not null;default:0" json:"total_amount"`
	Items        []LineItem `gorm:"foreignKey:BillID" json:"items"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

type LineItem struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	BillID    string    `gorm:"type:uuid;index;not null" json:"-"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Category  string    `gorm:"size:50;not null;default:Urea" json:"category"`
	Price     float64   `gorm:"type:numeric(12,2);not null" json:"price"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Bill) TableName() string     { return "bills" }
func (LineItem) TableName() string { return "line_items" }

// RecomputeTotal sets the cached total from the current item set. A nil or
// empty item set yields 0.0.
func (b *Bill) RecomputeTotal() float64 {
	total := 0.0
	for _, item := range b.Items {
		total += item.Price
	}
	b.TotalAmount = total
	return total
}

// DisplayNumber is the bill number, or a synthesized BILL-<id> when the bill
// was entered without one. Exports use it, which is why unnumbered bills
// round-trip into separately-grouped bills.
func (b *Bill) DisplayNumber() string {
	if b.BillNumber != nil && *b.BillNumber != "" {
		return *b.BillNumber
	}
	return "BILL-" + b.ID
}

type ItemInput struct {
	Name     string
	Category string
	Price    float64
}

type CreateBillInput struct {
	BillNumber   string
	PurchaseDate time.Time
	Items        []ItemInput
}

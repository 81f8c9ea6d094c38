package farm

import "time"

type Supplier struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        string    `gorm:"type:uuid;index;not null" json:"-"`
	Name          string    `gorm:"size:100;not null" json:"name"`
	ContactPerson *string   `gorm:"size:100" json:"contact_person,omitempty"`
	Phone         *string   `gorm:"size:15" json:"phone,omitempty"`
	Address       *string   `gorm:"type:text" json:"address,omitempty"`
	CreditTerms   *string   `gorm:"size:100" json:"credit_terms,omitempty"`
	Notes         *string   `gorm:"type:text" json:"notes,omitempty"`
	Active        bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type Field struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string    `gorm:"type:uuid;index;not null" json:"-"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	AreaAcres *float64  `gorm:"type:numeric(10,2)" json:"area_acres,omitempty"`
	Location  *string   `gorm:"size:200" json:"location,omitempty"`
	SoilType  *string   `gorm:"size:50" json:"soil_type,omitempty"`
	CropCycle *string   `gorm:"size:100" json:"crop_cycle,omitempty"`
	Season    *string   `gorm:"size:50" json:"season,omitempty"`
	Notes     *string   `gorm:"type:text" json:"notes,omitempty"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Supplier) TableName() string { return "suppliers" }
func (Field) TableName() string    { return "fields" }

type SupplierInput struct {
	Name          string
	ContactPerson string
	Phone         string
	Address       string
	CreditTerms   string
	Notes         string
}

type FieldInput struct {
	Name      string
	AreaAcres *float64
	Location  string
	SoilType  string
	CropCycle string
	Season    string
	Notes     string
}

package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Purchase is the parent record of a stock purchase from a supplier.
// SupplierName is free text — suppliers are not a managed entity here.
type Purchase struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PurchaseDate time.Time `gorm:"type:date;index;not null"`
	SupplierName string    `gorm:"not null"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt    time.Time

	Items []PurchaseItem `gorm:"foreignKey:PurchaseID"`
}

// PurchaseItem is a single line of a purchase, priced at cost.
type PurchaseItem struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PurchaseID uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProductID  uuid.UUID       `gorm:"type:uuid;index;not null"`
	Quantity   int             `gorm:"not null"`
	CostPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Product *Product `gorm:"foreignKey:ProductID"`
}

package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is the parent record of a sale transaction. Append-only: there is no
// edit or void flow once recorded.
type Sale struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SaleDate     time.Time `gorm:"type:date;index;not null"`
	CustomerName *string
	PaymentType  string          `gorm:"type:varchar(20);not null;default:'cash'"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt    time.Time

	Items []SaleItem `gorm:"foreignKey:SaleID"`
}

// SaleItem is a single product-quantity-price line belonging to a sale.
// UnitSold records which price field was used: "pcs" or "box".
type SaleItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SaleID    uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProductID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	UnitSold  string          `gorm:"type:varchar(5);not null;default:'pcs'"`

	Product *Product `gorm:"foreignKey:ProductID"`
}

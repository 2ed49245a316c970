package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is the only long-lived mutable entity in the system. Stock and
// LowStockLimit are pointers because both are nullable in the schema: a nil
// Stock means the product's on-hand quantity is not tracked.
type Product struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string          `gorm:"index;not null"`
	Category      string          `gorm:"index"`
	Unit          string          `gorm:"default:'pcs'"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	SellingPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Stock         *int
	LowStockLimit *int
	// Box selling: a product can optionally be sold by the box, with its own
	// per-box and per-piece prices.
	UnitsPerBox   *int
	PricePerBox   *decimal.Decimal `gorm:"type:decimal(12,2)"`
	PricePerPiece *decimal.Decimal `gorm:"type:decimal(12,2)"`
	IsBoxSellable bool             `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsLowStock reports whether the product needs restocking: both stock and the
// threshold must be tracked, and stock must be at or below the threshold.
func (p *Product) IsLowStock() bool {
	return p.Stock != nil && p.LowStockLimit != nil && *p.Stock <= *p.LowStockLimit
}

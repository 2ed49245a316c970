package model

import (
	"time"

	"github.com/google/uuid"
)

// StockMovement records every explicit stock change on a product. Not written
// when stock adjustment is delegated to a database trigger.
type StockMovement struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Type        string    `gorm:"not null"` // "sale" | "purchase" | "manual_adjust"
	Quantity    int       `gorm:"not null"` // positive = in, negative = out
	StockBefore int       `gorm:"not null"`
	StockAfter  int       `gorm:"not null"`
	Reason      string
	ReferenceID *uuid.UUID `gorm:"type:uuid"` // sale_id or purchase_id if applicable
	CreatedAt   time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}

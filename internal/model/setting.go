package model

import (
	"time"

	"github.com/google/uuid"
)

// Setting is the single shop configuration row rendered on receipts and
// reports. The repository enforces the singleton: reads return the first row,
// writes upsert it.
type Setting struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ShopName   string    `gorm:"not null"`
	LogoURL    *string
	Address    *string
	Currency   string `gorm:"type:varchar(8);not null;default:'PKR'"`
	IncludeTax bool   `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

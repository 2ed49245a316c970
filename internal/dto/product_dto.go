package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Name          string           `json:"name"           validate:"required,min=2,max=120"`
	Category      string           `json:"category"       validate:"required"`
	Unit          string           `json:"unit"`
	PurchasePrice decimal.Decimal  `json:"purchase_price" validate:"min=0"`
	SellingPrice  decimal.Decimal  `json:"selling_price"  validate:"min=0"`
	Stock         *int             `json:"stock"           validate:"omitempty,min=0"`
	LowStockLimit *int             `json:"low_stock_limit" validate:"omitempty,min=0"`
	UnitsPerBox   *int             `json:"units_per_box"   validate:"omitempty,min=1"`
	PricePerBox   *decimal.Decimal `json:"price_per_box"`
	PricePerPiece *decimal.Decimal `json:"price_per_piece"`
	IsBoxSellable bool             `json:"is_box_sellable"`
}

type UpdateProductRequest struct {
	Name          *string          `json:"name"           validate:"omitempty,min=2,max=120"`
	Category      *string          `json:"category"`
	Unit          *string          `json:"unit"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	SellingPrice  *decimal.Decimal `json:"selling_price"`
	Stock         *int             `json:"stock"           validate:"omitempty,min=0"`
	LowStockLimit *int             `json:"low_stock_limit" validate:"omitempty,min=0"`
	UnitsPerBox   *int             `json:"units_per_box"   validate:"omitempty,min=1"`
	PricePerBox   *decimal.Decimal `json:"price_per_box"`
	PricePerPiece *decimal.Decimal `json:"price_per_piece"`
	IsBoxSellable *bool            `json:"is_box_sellable"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type ProductFilter struct {
	Name     string `form:"name"`
	Category string `form:"category"`
	LowStock bool   `form:"low_stock"` // true = only products at or below their threshold
	Page     int    `form:"page,default=1"   validate:"min=1"`
	Limit    int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Category      string           `json:"category"`
	Unit          string           `json:"unit"`
	PurchasePrice decimal.Decimal  `json:"purchase_price"`
	SellingPrice  decimal.Decimal  `json:"selling_price"`
	Stock         *int             `json:"stock"`
	LowStockLimit *int             `json:"low_stock_limit"`
	UnitsPerBox   *int             `json:"units_per_box"`
	PricePerBox   *decimal.Decimal `json:"price_per_box"`
	PricePerPiece *decimal.Decimal `json:"price_per_piece"`
	IsBoxSellable bool             `json:"is_box_sellable"`
	LowStock      bool             `json:"low_stock"`
	CreatedAt     string           `json:"created_at"`
}

type ProductListResponse struct {
	Data  []ProductResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

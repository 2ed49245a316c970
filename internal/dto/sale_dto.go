package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type SaleItemRequest struct {
	ProductID string          `json:"product_id" validate:"required,uuid"`
	Quantity  int             `json:"quantity"   validate:"required,min=1"`
	Price     decimal.Decimal `json:"price"      validate:"min=0"`
	UnitSold  string          `json:"unit_sold"  validate:"omitempty,oneof=pcs box"`
}

type RecordSaleRequest struct {
	CustomerName *string           `json:"customer_name" validate:"omitempty,min=2"`
	PaymentType  string            `json:"payment_type"  validate:"omitempty,oneof=cash card credit"`
	Items        []SaleItemRequest `json:"items"         validate:"required,min=1,dive"`
}

// ─── Filter / List ───────────────────────────────────────────────────────────

// SaleFilter is bound from the query string of GET /v1/sales.
type SaleFilter struct {
	Date  string `form:"date"` // YYYY-MM-DD; empty = today
	Page  int    `form:"page,default=1"   validate:"min=1"`
	Limit int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SaleItemResponse struct {
	ProductID string          `json:"product_id"`
	Product   string          `json:"product"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	UnitSold  string          `json:"unit_sold"`
	Total     decimal.Decimal `json:"total"`
}

type SaleResponse struct {
	ID           string             `json:"id"`
	SaleDate     string             `json:"sale_date"`
	CustomerName *string            `json:"customer_name"`
	PaymentType  string             `json:"payment_type"`
	TotalAmount  decimal.Decimal    `json:"total_amount"`
	Items        []SaleItemResponse `json:"items"`
	// StockWarnings is non-empty when the sale committed but one or more stock
	// adjustments failed ("saved, but stock may be inconsistent").
	StockWarnings []string `json:"stock_warnings,omitempty"`
	CreatedAt     string   `json:"created_at"`
}

type SaleListResponse struct {
	Data  []SaleResponse `json:"data"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

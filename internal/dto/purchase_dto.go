package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type PurchaseItemRequest struct {
	ProductID string          `json:"product_id" validate:"required,uuid"`
	Quantity  int             `json:"quantity"   validate:"required,min=1"`
	CostPrice decimal.Decimal `json:"cost_price" validate:"min=0"`
}

type RecordPurchaseRequest struct {
	SupplierName string                `json:"supplier_name" validate:"required,min=2"`
	Items        []PurchaseItemRequest `json:"items"         validate:"required,min=1,dive"`
}

// ─── Filter / List ───────────────────────────────────────────────────────────

type PurchaseFilter struct {
	Date  string `form:"date"` // YYYY-MM-DD; empty = today
	Page  int    `form:"page,default=1"   validate:"min=1"`
	Limit int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PurchaseItemResponse struct {
	ProductID string          `json:"product_id"`
	Product   string          `json:"product"`
	Quantity  int             `json:"quantity"`
	CostPrice decimal.Decimal `json:"cost_price"`
	Total     decimal.Decimal `json:"total"`
}

type PurchaseResponse struct {
	ID            string                 `json:"id"`
	PurchaseDate  string                 `json:"purchase_date"`
	SupplierName  string                 `json:"supplier_name"`
	TotalAmount   decimal.Decimal        `json:"total_amount"`
	Items         []PurchaseItemResponse `json:"items"`
	StockWarnings []string               `json:"stock_warnings,omitempty"`
	CreatedAt     string                 `json:"created_at"`
}

type PurchaseListResponse struct {
	Data  []PurchaseResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

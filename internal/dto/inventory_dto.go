package dto

// AdjustStockRequest is a manual stock correction. Delta may be negative.
type AdjustStockRequest struct {
	Delta  int    `json:"delta"  validate:"required"`
	Reason string `json:"reason" validate:"required,min=3"`
}

type LowStockAlertResponse struct {
	ProductID     string `json:"product_id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	Stock         int    `json:"stock"`
	LowStockLimit int    `json:"low_stock_limit"`
}

type StockMovementResponse struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"product_id"`
	Product     string  `json:"product"`
	Type        string  `json:"type"`
	Quantity    int     `json:"quantity"`
	StockBefore int     `json:"stock_before"`
	StockAfter  int     `json:"stock_after"`
	Reason      string  `json:"reason"`
	ReferenceID *string `json:"reference_id"`
	CreatedAt   string  `json:"created_at"`
}

type StockMovementFilter struct {
	ProductID string `form:"product_id"`
	Type      string `form:"type"`
	Page      int    `form:"page,default=1"   validate:"min=1"`
	Limit     int    `form:"limit,default=50" validate:"min=1,max=200"`
}

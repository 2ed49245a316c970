package dto

import "github.com/shopspring/decimal"

// SummaryReportResponse is the day-end style summary: lifetime totals plus
// profit computed as Σ(selling price − purchase price) × quantity over all
// sale items.
type SummaryReportResponse struct {
	TotalSales     decimal.Decimal `json:"total_sales"`
	TotalPurchases decimal.Decimal `json:"total_purchases"`
	Profit         decimal.Decimal `json:"profit"`
}

type StockReportRow struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Unit     string `json:"unit"`
	Stock    *int   `json:"stock"`
	LowStock bool   `json:"low_stock"`
}

type StockReportResponse struct {
	Rows []StockReportRow `json:"rows"`
}

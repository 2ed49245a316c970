package dto

import "github.com/shopspring/decimal"

// TopProduct is one entry of the top-sellers ranking, ordered by quantity sold.
type TopProduct struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// DashboardStatsResponse aggregates the dashboard widgets for one period.
type DashboardStatsResponse struct {
	Period             string            `json:"period"` // today | weekly | monthly
	TotalSales         decimal.Decimal   `json:"total_sales"`
	TotalItemsSold     int               `json:"total_items_sold"`
	TopSellingProducts []TopProduct      `json:"top_selling_products"`
	LowStockProducts   []ProductResponse `json:"low_stock_products"`
}

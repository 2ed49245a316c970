package service

import (
	"context"

	"shopstock/internal/config"
	"shopstock/internal/dto"
	"shopstock/internal/infra"
	"shopstock/internal/repository"

	"github.com/shopspring/decimal"
)

type ReportService interface {
	Summary(ctx context.Context) (*dto.SummaryReportResponse, error)
	Stock(ctx context.Context) (*dto.StockReportResponse, error)
	SummaryPDF(ctx context.Context) ([]byte, error)
	StockPDF(ctx context.Context) ([]byte, error)
}

type reportService struct {
	sales     repository.SaleRepository
	purchases repository.PurchaseRepository
	products  repository.ProductRepository
	cfg       *config.Config
}

func NewReportService(sales repository.SaleRepository, purchases repository.PurchaseRepository, products repository.ProductRepository, cfg *config.Config) ReportService {
	return &reportService{sales: sales, purchases: purchases, products: products, cfg: cfg}
}

// Summary totals all recorded activity. Profit is margin-based: for every sale
// item, (selling price − purchase price at catalog) × quantity. Items whose
// product has been deleted contribute nothing.
func (s *reportService) Summary(ctx context.Context) (*dto.SummaryReportResponse, error) {
	totalSales, err := s.sales.SumTotal(ctx)
	if err != nil {
		return nil, &PersistenceError{Stage: "sum sales", Err: err}
	}
	totalPurchases, err := s.purchases.SumTotal(ctx)
	if err != nil {
		return nil, &PersistenceError{Stage: "sum purchases", Err: err}
	}

	items, err := s.sales.ListAllItems(ctx)
	if err != nil {
		return nil, &PersistenceError{Stage: "list sale items", Err: err}
	}
	profit := decimal.Zero
	for _, it := range items {
		if it.Product == nil {
			continue
		}
		margin := it.Price.Sub(it.Product.PurchasePrice)
		profit = profit.Add(margin.Mul(decimalFromInt(it.Quantity)))
	}

	return &dto.SummaryReportResponse{
		TotalSales:     totalSales,
		TotalPurchases: totalPurchases,
		Profit:         profit,
	}, nil
}

func (s *reportService) Stock(ctx context.Context) (*dto.StockReportResponse, error) {
	products, err := s.products.ListAll(ctx)
	if err != nil {
		return nil, &PersistenceError{Stage: "list products", Err: err}
	}
	rows := make([]dto.StockReportRow, 0, len(products))
	for i := range products {
		p := &products[i]
		rows = append(rows, dto.StockReportRow{
			Name:     p.Name,
			Category: p.Category,
			Unit:     p.Unit,
			Stock:    p.Stock,
			LowStock: p.IsLowStock(),
		})
	}
	return &dto.StockReportResponse{Rows: rows}, nil
}

func (s *reportService) SummaryPDF(ctx context.Context) ([]byte, error) {
	summary, err := s.Summary(ctx)
	if err != nil {
		return nil, err
	}
	return infra.RenderSummaryPDF(s.cfg.ShopName, s.cfg.Currency, summary)
}

func (s *reportService) StockPDF(ctx context.Context) ([]byte, error) {
	report, err := s.Stock(ctx)
	if err != nil {
		return nil, err
	}
	return infra.RenderStockPDF(s.cfg.ShopName, report.Rows)
}

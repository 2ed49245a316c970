package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"shopstock/internal/dto"
	"shopstock/internal/model"
	"shopstock/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type SaleService interface {
	RecordSale(ctx context.Context, req dto.RecordSaleRequest) (*dto.SaleResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error)
	List(ctx context.Context, filter dto.SaleFilter) (*dto.SaleListResponse, error)
}

type saleService struct {
	sales    repository.SaleRepository
	products repository.ProductRepository
	stock    *StockAdjuster
}

func NewSaleService(sales repository.SaleRepository, products repository.ProductRepository, stock *StockAdjuster) SaleService {
	return &saleService{sales: sales, products: products, stock: stock}
}

// RecordSale runs the sale half of the recording workflow:
//
//	validate → insert sale → insert sale_items (compensate on failure) →
//	adjust stock (explicit mode only, partial failures reported, no rollback)
//
// On a partial stock failure the sale is still recorded: the response is
// returned together with a *PartialStockUpdateError so the handler can warn
// the caller without discarding the result.
func (s *saleService) RecordSale(ctx context.Context, req dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	// Customer name is optional for sales; blank values are stored as NULL.
	if req.CustomerName != nil && strings.TrimSpace(*req.CustomerName) == "" {
		req.CustomerName = nil
	}

	raw := make([]rawItem, 0, len(req.Items))
	for _, it := range req.Items {
		unit := it.UnitSold
		if unit == "" {
			unit = "pcs"
		}
		raw = append(raw, rawItem{
			productID: it.ProductID,
			quantity:  it.Quantity,
			unitPrice: it.Price,
			unitSold:  unit,
		})
	}
	resolved, err := resolveItems(ctx, s.products, raw)
	if err != nil {
		return nil, err
	}

	paymentType := req.PaymentType
	if paymentType == "" {
		paymentType = "cash"
	}

	sale := model.Sale{
		SaleDate:     time.Now(),
		CustomerName: req.CustomerName,
		PaymentType:  paymentType,
		TotalAmount:  sumTotal(resolved),
	}
	if err := s.sales.Create(ctx, &sale); err != nil {
		return nil, &PersistenceError{Stage: "create sale", Err: err}
	}

	items := make([]model.SaleItem, 0, len(resolved))
	for _, r := range resolved {
		items = append(items, model.SaleItem{
			SaleID:    sale.ID,
			ProductID: r.product.ID,
			Quantity:  r.quantity,
			Price:     r.unitPrice,
			UnitSold:  r.unitSold,
		})
	}
	if err := s.sales.CreateItems(ctx, items); err != nil {
		// Compensating delete of the parent. Best effort: a failure here
		// leaves an orphaned sale row, which we log and accept.
		if delErr := s.sales.Delete(ctx, sale.ID); delErr != nil {
			log.Error().Err(delErr).
				Str("sale_id", sale.ID.String()).
				Msg("compensating delete failed, orphaned sale row left behind")
		}
		return nil, &PersistenceError{Stage: "create sale items", Err: err}
	}

	resp := s.toResponse(&sale, resolved)

	if err := s.stock.apply(ctx, "sale", -1, sale.ID, resolved); err != nil {
		var partial *PartialStockUpdateError
		if errors.As(err, &partial) {
			resp.StockWarnings = partial.Warnings()
			log.Warn().
				Str("sale_id", sale.ID.String()).
				Str("failures", joinWarnings(resp.StockWarnings)).
				Msg("sale recorded with partial stock update")
			return resp, partial
		}
		return resp, err
	}

	return resp, nil
}

func (s *saleService) Get(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error) {
	sale, err := s.sales.FindByID(ctx, id)
	if err != nil {
		return nil, &PersistenceError{Stage: "find sale", Err: err}
	}
	return saleToResponse(sale), nil
}

func (s *saleService) List(ctx context.Context, filter dto.SaleFilter) (*dto.SaleListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	sales, total, err := s.sales.List(ctx, filter)
	if err != nil {
		return nil, &PersistenceError{Stage: "list sales", Err: err}
	}
	data := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		data = append(data, *saleToResponse(&sales[i]))
	}
	return &dto.SaleListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

// toResponse builds the response from the freshly resolved items, which carry
// product names the stored rows do not have loaded yet.
func (s *saleService) toResponse(sale *model.Sale, resolved []resolvedItem) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(resolved))
	for _, r := range resolved {
		items = append(items, dto.SaleItemResponse{
			ProductID: r.product.ID.String(),
			Product:   r.product.Name,
			Quantity:  r.quantity,
			Price:     r.unitPrice,
			UnitSold:  r.unitSold,
			Total:     r.lineTotal(),
		})
	}
	return &dto.SaleResponse{
		ID:           sale.ID.String(),
		SaleDate:     sale.SaleDate.Format("2006-01-02"),
		CustomerName: sale.CustomerName,
		PaymentType:  sale.PaymentType,
		TotalAmount:  sale.TotalAmount,
		Items:        items,
		CreatedAt:    sale.CreatedAt.Format(time.RFC3339),
	}
}

func saleToResponse(sale *model.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(sale.Items))
	for _, it := range sale.Items {
		name := ""
		if it.Product != nil {
			name = it.Product.Name
		}
		items = append(items, dto.SaleItemResponse{
			ProductID: it.ProductID.String(),
			Product:   name,
			Quantity:  it.Quantity,
			Price:     it.Price,
			UnitSold:  it.UnitSold,
			Total:     it.Price.Mul(decimalFromInt(it.Quantity)),
		})
	}
	return &dto.SaleResponse{
		ID:           sale.ID.String(),
		SaleDate:     sale.SaleDate.Format("2006-01-02"),
		CustomerName: sale.CustomerName,
		PaymentType:  sale.PaymentType,
		TotalAmount:  sale.TotalAmount,
		Items:        items,
		CreatedAt:    sale.CreatedAt.Format(time.RFC3339),
	}
}

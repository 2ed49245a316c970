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
	"github.com/shopspring/decimal"
)

type PurchaseService interface {
	RecordPurchase(ctx context.Context, req dto.RecordPurchaseRequest) (*dto.PurchaseResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.PurchaseResponse, error)
	List(ctx context.Context, filter dto.PurchaseFilter) (*dto.PurchaseListResponse, error)
}

type purchaseService struct {
	purchases repository.PurchaseRepository
	products  repository.ProductRepository
	stock     *StockAdjuster
}

func NewPurchaseService(purchases repository.PurchaseRepository, products repository.ProductRepository, stock *StockAdjuster) PurchaseService {
	return &purchaseService{purchases: purchases, products: products, stock: stock}
}

// RecordPurchase mirrors RecordSale with two differences: the supplier name
// is mandatory, and stock moves up instead of down.
func (s *purchaseService) RecordPurchase(ctx context.Context, req dto.RecordPurchaseRequest) (*dto.PurchaseResponse, error) {
	supplier := strings.TrimSpace(req.SupplierName)
	if len(supplier) < 2 {
		return nil, newValidationError("supplier name must be at least 2 characters")
	}

	raw := make([]rawItem, 0, len(req.Items))
	for _, it := range req.Items {
		raw = append(raw, rawItem{
			productID: it.ProductID,
			quantity:  it.Quantity,
			unitPrice: it.CostPrice,
		})
	}
	resolved, err := resolveItems(ctx, s.products, raw)
	if err != nil {
		return nil, err
	}

	purchase := model.Purchase{
		PurchaseDate: time.Now(),
		SupplierName: supplier,
		TotalAmount:  sumTotal(resolved),
	}
	if err := s.purchases.Create(ctx, &purchase); err != nil {
		return nil, &PersistenceError{Stage: "create purchase", Err: err}
	}

	items := make([]model.PurchaseItem, 0, len(resolved))
	for _, r := range resolved {
		items = append(items, model.PurchaseItem{
			PurchaseID: purchase.ID,
			ProductID:  r.product.ID,
			Quantity:   r.quantity,
			CostPrice:  r.unitPrice,
		})
	}
	if err := s.purchases.CreateItems(ctx, items); err != nil {
		if delErr := s.purchases.Delete(ctx, purchase.ID); delErr != nil {
			log.Error().Err(delErr).
				Str("purchase_id", purchase.ID.String()).
				Msg("compensating delete failed, orphaned purchase row left behind")
		}
		return nil, &PersistenceError{Stage: "create purchase items", Err: err}
	}

	resp := s.toResponse(&purchase, resolved)

	if err := s.stock.apply(ctx, "purchase", +1, purchase.ID, resolved); err != nil {
		var partial *PartialStockUpdateError
		if errors.As(err, &partial) {
			resp.StockWarnings = partial.Warnings()
			log.Warn().
				Str("purchase_id", purchase.ID.String()).
				Str("failures", joinWarnings(resp.StockWarnings)).
				Msg("purchase recorded with partial stock update")
			return resp, partial
		}
		return resp, err
	}

	return resp, nil
}

func (s *purchaseService) Get(ctx context.Context, id uuid.UUID) (*dto.PurchaseResponse, error) {
	purchase, err := s.purchases.FindByID(ctx, id)
	if err != nil {
		return nil, &PersistenceError{Stage: "find purchase", Err: err}
	}
	return purchaseToResponse(purchase), nil
}

func (s *purchaseService) List(ctx context.Context, filter dto.PurchaseFilter) (*dto.PurchaseListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	purchases, total, err := s.purchases.List(ctx, filter)
	if err != nil {
		return nil, &PersistenceError{Stage: "list purchases", Err: err}
	}
	data := make([]dto.PurchaseResponse, 0, len(purchases))
	for i := range purchases {
		data = append(data, *purchaseToResponse(&purchases[i]))
	}
	return &dto.PurchaseListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *purchaseService) toResponse(p *model.Purchase, resolved []resolvedItem) *dto.PurchaseResponse {
	items := make([]dto.PurchaseItemResponse, 0, len(resolved))
	for _, r := range resolved {
		items = append(items, dto.PurchaseItemResponse{
			ProductID: r.product.ID.String(),
			Product:   r.product.Name,
			Quantity:  r.quantity,
			CostPrice: r.unitPrice,
			Total:     r.lineTotal(),
		})
	}
	return &dto.PurchaseResponse{
		ID:           p.ID.String(),
		PurchaseDate: p.PurchaseDate.Format("2006-01-02"),
		SupplierName: p.SupplierName,
		TotalAmount:  p.TotalAmount,
		Items:        items,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
	}
}

func purchaseToResponse(p *model.Purchase) *dto.PurchaseResponse {
	items := make([]dto.PurchaseItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		name := ""
		if it.Product != nil {
			name = it.Product.Name
		}
		items = append(items, dto.PurchaseItemResponse{
			ProductID: it.ProductID.String(),
			Product:   name,
			Quantity:  it.Quantity,
			CostPrice: it.CostPrice,
			Total:     it.CostPrice.Mul(decimal.NewFromInt(int64(it.Quantity))),
		})
	}
	return &dto.PurchaseResponse{
		ID:           p.ID.String(),
		PurchaseDate: p.PurchaseDate.Format("2006-01-02"),
		SupplierName: p.SupplierName,
		TotalAmount:  p.TotalAmount,
		Items:        items,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
	}
}

// decimalFromInt is a small helper shared with the sale mappers.
func decimalFromInt(n int) decimal.Decimal { return decimal.NewFromInt(int64(n)) }

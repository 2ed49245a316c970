package service

import (
	"context"
	"time"

	"shopstock/internal/dto"
	"shopstock/internal/model"
	"shopstock/internal/repository"
	"shopstock/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// InventoryService covers stock operations outside the recording workflow:
// manual adjustments, the low-stock alert list, and the movement audit trail.
type InventoryService interface {
	AdjustStock(ctx context.Context, productID uuid.UUID, req dto.AdjustStockRequest) (*dto.ProductResponse, error)
	LowStockAlerts(ctx context.Context) ([]dto.LowStockAlertResponse, error)
	ListMovements(ctx context.Context, filter dto.StockMovementFilter) ([]dto.StockMovementResponse, int64, error)
}

type inventoryService struct {
	products   repository.ProductRepository
	movements  repository.StockMovementRepository
	dispatcher *worker.Dispatcher // nil disables alert emails
}

func NewInventoryService(products repository.ProductRepository, movements repository.StockMovementRepository, dispatcher *worker.Dispatcher) InventoryService {
	return &inventoryService{products: products, movements: movements, dispatcher: dispatcher}
}

// AdjustStock applies a manual correction and writes a movement row. If the
// adjustment drops the product to or below its threshold, a low-stock alert
// job is enqueued (best effort).
func (s *inventoryService) AdjustStock(ctx context.Context, productID uuid.UUID, req dto.AdjustStockRequest) (*dto.ProductResponse, error) {
	p, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, newValidationError("product %s not found", productID)
	}
	if p.Stock == nil {
		return nil, newValidationError("product %q does not track stock", p.Name)
	}
	before := *p.Stock
	if before+req.Delta < 0 {
		return nil, newValidationError("adjustment would make stock negative (%d%+d)", before, req.Delta)
	}

	if err := s.products.AdjustStock(ctx, productID, req.Delta); err != nil {
		return nil, &PersistenceError{Stage: "adjust stock", Err: err}
	}

	after := before + req.Delta
	mov := &model.StockMovement{
		ProductID:   productID,
		Type:        "manual_adjust",
		Quantity:    req.Delta,
		StockBefore: before,
		StockAfter:  after,
		Reason:      req.Reason,
	}
	if err := s.movements.Create(ctx, mov); err != nil {
		log.Warn().Err(err).Str("product_id", productID.String()).
			Msg("stock movement audit row not written")
	}

	p.Stock = &after
	if p.IsLowStock() && s.dispatcher != nil {
		_ = s.dispatcher.EnqueueLowStockAlert(ctx, worker.LowStockAlertPayload{
			ProductID: p.ID.String(),
			Name:      p.Name,
			Stock:     after,
			Limit:     *p.LowStockLimit,
		})
	}

	return productToResponse(p), nil
}

func (s *inventoryService) LowStockAlerts(ctx context.Context) ([]dto.LowStockAlertResponse, error) {
	products, err := s.products.ListLowStock(ctx)
	if err != nil {
		return nil, &PersistenceError{Stage: "list low stock", Err: err}
	}
	alerts := make([]dto.LowStockAlertResponse, 0, len(products))
	for _, p := range products {
		if p.Stock == nil || p.LowStockLimit == nil {
			continue
		}
		alerts = append(alerts, dto.LowStockAlertResponse{
			ProductID:     p.ID.String(),
			Name:          p.Name,
			Category:      p.Category,
			Stock:         *p.Stock,
			LowStockLimit: *p.LowStockLimit,
		})
	}
	return alerts, nil
}

func (s *inventoryService) ListMovements(ctx context.Context, filter dto.StockMovementFilter) ([]dto.StockMovementResponse, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	movements, total, err := s.movements.List(ctx, filter)
	if err != nil {
		return nil, 0, &PersistenceError{Stage: "list movements", Err: err}
	}
	out := make([]dto.StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		name := ""
		if m.Product != nil {
			name = m.Product.Name
		}
		var ref *string
		if m.ReferenceID != nil {
			v := m.ReferenceID.String()
			ref = &v
		}
		out = append(out, dto.StockMovementResponse{
			ID:          m.ID.String(),
			ProductID:   m.ProductID.String(),
			Product:     name,
			Type:        m.Type,
			Quantity:    m.Quantity,
			StockBefore: m.StockBefore,
			StockAfter:  m.StockAfter,
			Reason:      m.Reason,
			ReferenceID: ref,
			CreatedAt:   m.CreatedAt.Format(time.RFC3339),
		})
	}
	return out, total, nil
}

package service

// recorder.go holds the pieces of the transaction recording workflow shared
// by sales and purchases: pre-flight item validation and the post-commit
// stock adjustment pass.
//
// The workflow is a deliberate two-phase saga, not a database transaction:
//   1. insert parent row
//   2. insert line items — on failure, best-effort compensating delete of
//      the parent (a failed compensation leaves an orphaned parent, which is
//      logged and accepted)
//   3. adjust stock per product, independently — partial failures are
//      collected and reported alongside the committed result, never rolled
//      back
// Step 3 is skipped entirely when stock adjustment is delegated to a
// database trigger (config.StockModeDelegated).

import (
	"context"

	"shopstock/internal/config"
	"shopstock/internal/model"
	"shopstock/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// resolvedItem is a validated line item with its product loaded.
type resolvedItem struct {
	product   *model.Product
	quantity  int
	unitPrice decimal.Decimal
	unitSold  string
}

// lineTotal returns quantity × unit price.
func (r resolvedItem) lineTotal() decimal.Decimal {
	return r.unitPrice.Mul(decimal.NewFromInt(int64(r.quantity)))
}

// sumTotal computes the transaction total over all resolved items.
func sumTotal(items []resolvedItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.lineTotal())
	}
	return total
}

// rawItem is the kind-agnostic shape of one line-item input.
type rawItem struct {
	productID string
	quantity  int
	unitPrice decimal.Decimal
	unitSold  string
}

// resolveItems validates every line item and loads its product. All checks
// that need no product row (empty set, quantity, price) run first so invalid
// requests are rejected before the row store is touched at all.
func resolveItems(ctx context.Context, products repository.ProductRepository, items []rawItem) ([]resolvedItem, error) {
	if len(items) == 0 {
		return nil, newValidationError("at least one item is required")
	}
	for i, it := range items {
		if it.quantity < 1 {
			return nil, newValidationError("item %d: quantity must be at least 1", i+1)
		}
		if it.unitPrice.IsNegative() {
			return nil, newValidationError("item %d: price must not be negative", i+1)
		}
	}

	resolved := make([]resolvedItem, 0, len(items))
	for i, it := range items {
		pid, err := uuid.Parse(it.productID)
		if err != nil {
			return nil, newValidationError("item %d: invalid product id %q", i+1, it.productID)
		}
		p, err := products.FindByID(ctx, pid)
		if err != nil {
			return nil, newValidationError("item %d: product %s not found", i+1, it.productID)
		}
		resolved = append(resolved, resolvedItem{
			product:   p,
			quantity:  it.quantity,
			unitPrice: it.unitPrice,
			unitSold:  it.unitSold,
		})
	}
	return resolved, nil
}

// StockAdjuster applies per-product stock deltas after a transaction commits.
type StockAdjuster struct {
	products  repository.ProductRepository
	movements repository.StockMovementRepository
	mode      string // config.StockModeExplicit | config.StockModeDelegated
}

func NewStockAdjuster(products repository.ProductRepository, movements repository.StockMovementRepository, mode string) *StockAdjuster {
	return &StockAdjuster{products: products, movements: movements, mode: mode}
}

// apply issues one independent stock update per item. direction is -1 for
// sales and +1 for purchases. Returns a *PartialStockUpdateError when some
// updates failed; the caller must NOT roll anything back. In delegated mode
// this is a no-op — the database trigger owns the stock math.
func (a *StockAdjuster) apply(ctx context.Context, movType string, direction int, refID uuid.UUID, items []resolvedItem) error {
	if a.mode == config.StockModeDelegated {
		return nil
	}

	var failures []StockUpdateFailure
	for _, it := range items {
		if it.product.Stock == nil {
			// Untracked stock — nothing to adjust.
			continue
		}
		delta := direction * it.quantity
		if err := a.products.AdjustStock(ctx, it.product.ID, delta); err != nil {
			failures = append(failures, StockUpdateFailure{
				ProductID: it.product.ID,
				Name:      it.product.Name,
				Err:       err,
			})
			continue
		}

		before := *it.product.Stock
		ref := refID
		mov := &model.StockMovement{
			ProductID:   it.product.ID,
			Type:        movType,
			Quantity:    delta,
			StockBefore: before,
			StockAfter:  before + delta,
			Reason:      movType,
			ReferenceID: &ref,
		}
		if err := a.movements.Create(ctx, mov); err != nil {
			// The stock counter is already correct; only the audit row is
			// missing. Log and move on.
			log.Warn().Err(err).
				Str("product_id", it.product.ID.String()).
				Msg("stock movement audit row not written")
		}
	}

	if len(failures) > 0 {
		return &PartialStockUpdateError{Failures: failures}
	}
	return nil
}

package service

import (
	"context"
	"errors"
	"time"

	"shopstock/internal/dto"
	"shopstock/internal/model"
	"shopstock/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubProductRepo is an in-memory ProductRepository. Stock adjustments can be
// made to fail per product id to exercise the partial-failure path.
type stubProductRepo struct {
	products    map[uuid.UUID]*model.Product
	adjustFails map[uuid.UUID]error
	adjusted    []uuid.UUID
}

func newStubProductRepo(products ...*model.Product) *stubProductRepo {
	r := &stubProductRepo{
		products:    make(map[uuid.UUID]*model.Product),
		adjustFails: make(map[uuid.UUID]error),
	}
	for _, p := range products {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		r.products[p.ID] = p
	}
	return r
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return p, nil
}

func (r *stubProductRepo) List(_ context.Context, _ dto.ProductFilter) ([]model.Product, int64, error) {
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) AdjustStock(_ context.Context, id uuid.UUID, delta int) error {
	if err := r.adjustFails[id]; err != nil {
		return err
	}
	p, ok := r.products[id]
	if !ok {
		return errors.New("not found")
	}
	if p.Stock != nil {
		next := *p.Stock + delta
		p.Stock = &next
	}
	r.adjusted = append(r.adjusted, id)
	return nil
}

func (r *stubProductRepo) ListLowStock(_ context.Context) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		if p.IsLowStock() {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) ListAll(_ context.Context) ([]model.Product, error) {
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

var _ repository.ProductRepository = (*stubProductRepo)(nil)

// stubSaleRepo records calls so tests can assert call ordering and
// compensation behavior.
type stubSaleRepo struct {
	sales map[uuid.UUID]*model.Sale
	items []model.SaleItem

	createErr  error
	itemsErr   error
	deleteErr  error
	createN    int
	itemsN     int
	deleteN    int
	allItems   []model.SaleItem
	sumBetween decimal.Decimal
}

func newStubSaleRepo() *stubSaleRepo {
	return &stubSaleRepo{sales: make(map[uuid.UUID]*model.Sale)}
}

func (r *stubSaleRepo) Create(_ context.Context, s *model.Sale) error {
	r.createN++
	if r.createErr != nil {
		return r.createErr
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.sales[s.ID] = s
	return nil
}

func (r *stubSaleRepo) CreateItems(_ context.Context, items []model.SaleItem) error {
	r.itemsN++
	if r.itemsErr != nil {
		return r.itemsErr
	}
	r.items = append(r.items, items...)
	return nil
}

func (r *stubSaleRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.deleteN++
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.sales, id)
	return nil
}

func (r *stubSaleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return s, nil
}

func (r *stubSaleRepo) List(_ context.Context, _ dto.SaleFilter) ([]model.Sale, int64, error) {
	out := make([]model.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (r *stubSaleRepo) SumTotalBetween(_ context.Context, _, _ time.Time) (decimal.Decimal, error) {
	return r.sumBetween, nil
}

func (r *stubSaleRepo) SumTotal(_ context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, s := range r.sales {
		total = total.Add(s.TotalAmount)
	}
	return total, nil
}

func (r *stubSaleRepo) ListItemsBetween(_ context.Context, _, _ time.Time) ([]model.SaleItem, error) {
	return r.allItems, nil
}

func (r *stubSaleRepo) ListAllItems(_ context.Context) ([]model.SaleItem, error) {
	return r.allItems, nil
}

var _ repository.SaleRepository = (*stubSaleRepo)(nil)

// stubPurchaseRepo mirrors stubSaleRepo.
type stubPurchaseRepo struct {
	purchases map[uuid.UUID]*model.Purchase
	items     []model.PurchaseItem

	createErr error
	itemsErr  error
	deleteN   int
}

func newStubPurchaseRepo() *stubPurchaseRepo {
	return &stubPurchaseRepo{purchases: make(map[uuid.UUID]*model.Purchase)}
}

func (r *stubPurchaseRepo) Create(_ context.Context, p *model.Purchase) error {
	if r.createErr != nil {
		return r.createErr
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.purchases[p.ID] = p
	return nil
}

func (r *stubPurchaseRepo) CreateItems(_ context.Context, items []model.PurchaseItem) error {
	if r.itemsErr != nil {
		return r.itemsErr
	}
	r.items = append(r.items, items...)
	return nil
}

func (r *stubPurchaseRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.deleteN++
	delete(r.purchases, id)
	return nil
}

func (r *stubPurchaseRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Purchase, error) {
	p, ok := r.purchases[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return p, nil
}

func (r *stubPurchaseRepo) List(_ context.Context, _ dto.PurchaseFilter) ([]model.Purchase, int64, error) {
	out := make([]model.Purchase, 0, len(r.purchases))
	for _, p := range r.purchases {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubPurchaseRepo) SumTotal(_ context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, p := range r.purchases {
		total = total.Add(p.TotalAmount)
	}
	return total, nil
}

var _ repository.PurchaseRepository = (*stubPurchaseRepo)(nil)

// stubMovementRepo captures audit rows.
type stubMovementRepo struct {
	movements []model.StockMovement
	createErr error
}

func (r *stubMovementRepo) Create(_ context.Context, m *model.StockMovement) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.movements = append(r.movements, *m)
	return nil
}

func (r *stubMovementRepo) List(_ context.Context, _ dto.StockMovementFilter) ([]model.StockMovement, int64, error) {
	return r.movements, int64(len(r.movements)), nil
}

var _ repository.StockMovementRepository = (*stubMovementRepo)(nil)

// ── Shared fixtures ───────────────────────────────────────────────────────────

func intp(n int) *int { return &n }

func testProduct(name string, stock int, price int64) *model.Product {
	return &model.Product{
		ID:            uuid.New(),
		Name:          name,
		Category:      "Grocery",
		Unit:          "pcs",
		PurchasePrice: decimal.NewFromInt(price - 10),
		SellingPrice:  decimal.NewFromInt(price),
		Stock:         intp(stock),
	}
}

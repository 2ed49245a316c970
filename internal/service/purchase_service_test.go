package service

import (
	"context"
	"errors"
	"testing"

	"shopstock/internal/config"
	"shopstock/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPurchaseFixture(mode string, products *stubProductRepo) (PurchaseService, *stubPurchaseRepo, *stubMovementRepo) {
	purchases := newStubPurchaseRepo()
	movements := &stubMovementRepo{}
	stock := NewStockAdjuster(products, movements, mode)
	return NewPurchaseService(purchases, products, stock), purchases, movements
}

func TestRecordPurchase_TotalAndStockIncrease(t *testing.T) {
	p := testProduct("Flour 10kg", 10, 40)
	products := newStubProductRepo(p)
	svc, purchases, movements := newPurchaseFixture(config.StockModeExplicit, products)

	resp, err := svc.RecordPurchase(context.Background(), dto.RecordPurchaseRequest{
		SupplierName: "Acme Traders",
		Items: []dto.PurchaseItemRequest{
			{ProductID: p.ID.String(), Quantity: 20, CostPrice: decimal.NewFromInt(30)},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(600)), "total = 20*30")
	assert.Equal(t, 30, *p.Stock, "purchases increase stock")
	assert.Len(t, purchases.items, 1)

	require.Len(t, movements.movements, 1)
	assert.Equal(t, "purchase", movements.movements[0].Type)
	assert.Equal(t, 20, movements.movements[0].Quantity)
}

func TestRecordPurchase_SupplierNameRequired(t *testing.T) {
	p := testProduct("Flour 10kg", 10, 40)
	products := newStubProductRepo(p)
	svc, purchases, _ := newPurchaseFixture(config.StockModeExplicit, products)

	for _, supplier := range []string{"", " ", "A", " A "} {
		_, err := svc.RecordPurchase(context.Background(), dto.RecordPurchaseRequest{
			SupplierName: supplier,
			Items: []dto.PurchaseItemRequest{
				{ProductID: p.ID.String(), Quantity: 1, CostPrice: decimal.NewFromInt(30)},
			},
		})
		var ve *ValidationError
		require.ErrorAs(t, err, &ve, "supplier %q must be rejected", supplier)
	}
	assert.Empty(t, purchases.purchases)
}

func TestRecordPurchase_ItemInsertFailureCompensates(t *testing.T) {
	p := testProduct("Flour 10kg", 10, 40)
	products := newStubProductRepo(p)
	svc, purchases, _ := newPurchaseFixture(config.StockModeExplicit, products)
	purchases.itemsErr = errors.New("boom")

	_, err := svc.RecordPurchase(context.Background(), dto.RecordPurchaseRequest{
		SupplierName: "Acme Traders",
		Items: []dto.PurchaseItemRequest{
			{ProductID: p.ID.String(), Quantity: 5, CostPrice: decimal.NewFromInt(30)},
		},
	})
	var pe *PersistenceError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "create purchase items", pe.Stage)
	assert.Equal(t, 1, purchases.deleteN)
	assert.Empty(t, purchases.purchases)
	assert.Equal(t, 10, *p.Stock)
}

func TestRecordPurchase_NegativePriceRejected(t *testing.T) {
	p := testProduct("Flour 10kg", 10, 40)
	products := newStubProductRepo(p)
	svc, _, _ := newPurchaseFixture(config.StockModeExplicit, products)

	_, err := svc.RecordPurchase(context.Background(), dto.RecordPurchaseRequest{
		SupplierName: "Acme Traders",
		Items: []dto.PurchaseItemRequest{
			{ProductID: p.ID.String(), Quantity: 1, CostPrice: decimal.NewFromInt(-5)},
		},
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestRecordPurchase_ZeroQuantityRejected(t *testing.T) {
	p := testProduct("Flour 10kg", 10, 40)
	products := newStubProductRepo(p)
	svc, _, _ := newPurchaseFixture(config.StockModeExplicit, products)

	_, err := svc.RecordPurchase(context.Background(), dto.RecordPurchaseRequest{
		SupplierName: "Acme Traders",
		Items: []dto.PurchaseItemRequest{
			{ProductID: p.ID.String(), Quantity: 0, CostPrice: decimal.NewFromInt(30)},
		},
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

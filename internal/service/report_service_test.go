package service

import (
	"context"
	"testing"

	"shopstock/internal/config"
	"shopstock/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportSummary_ProfitFromMargins(t *testing.T) {
	p := &model.Product{
		ID:            uuid.New(),
		Name:          "Tea",
		PurchasePrice: decimal.NewFromInt(290),
		SellingPrice:  decimal.NewFromInt(350),
	}
	sales := newStubSaleRepo()
	sales.sales[uuid.New()] = &model.Sale{TotalAmount: decimal.NewFromInt(700)}
	sales.allItems = []model.SaleItem{
		{ProductID: p.ID, Product: p, Quantity: 2, Price: decimal.NewFromInt(350)},
	}
	purchases := newStubPurchaseRepo()
	purchases.purchases[uuid.New()] = &model.Purchase{TotalAmount: decimal.NewFromInt(580)}

	svc := NewReportService(sales, purchases, newStubProductRepo(), &config.Config{ShopName: "Test", Currency: "PKR"})
	resp, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.True(t, resp.TotalSales.Equal(decimal.NewFromInt(700)))
	assert.True(t, resp.TotalPurchases.Equal(decimal.NewFromInt(580)))
	// profit = (350 - 290) * 2
	assert.True(t, resp.Profit.Equal(decimal.NewFromInt(120)), "got %s", resp.Profit)
}

func TestReportStock_FlagsLowRows(t *testing.T) {
	low := testProduct("Tea", 2, 350)
	low.LowStockLimit = intp(5)
	products := newStubProductRepo(low)

	svc := NewReportService(newStubSaleRepo(), newStubPurchaseRepo(), products, &config.Config{})
	resp, err := svc.Stock(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)
	assert.True(t, resp.Rows[0].LowStock)
}

func TestReportPDFs_RenderNonEmpty(t *testing.T) {
	p := testProduct("Tea", 20, 350)
	products := newStubProductRepo(p)
	svc := NewReportService(newStubSaleRepo(), newStubPurchaseRepo(), products, &config.Config{ShopName: "Test Shop", Currency: "PKR"})

	pdf, err := svc.SummaryPDF(context.Background())
	require.NoError(t, err)
	assert.Greater(t, len(pdf), 500)
	assert.Equal(t, "%PDF", string(pdf[:4]))

	pdf, err = svc.StockPDF(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

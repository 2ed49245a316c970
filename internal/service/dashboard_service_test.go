package service

import (
	"context"
	"testing"
	"time"

	"shopstock/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats_AggregatesPeriod(t *testing.T) {
	p1 := testProduct("Tea", 3, 350)
	p1.LowStockLimit = intp(5) // 3 <= 5 → low stock
	p2 := testProduct("Sugar", 40, 165)
	products := newStubProductRepo(p1, p2)

	sales := newStubSaleRepo()
	sales.sumBetween = decimal.NewFromInt(1215)
	sales.allItems = []model.SaleItem{
		{ProductID: p1.ID, Product: p1, Quantity: 2, Price: decimal.NewFromInt(350)},
		{ProductID: p2.ID, Product: p2, Quantity: 3, Price: decimal.NewFromInt(165)},
		{ProductID: p1.ID, Product: p1, Quantity: 1, Price: decimal.NewFromInt(350)},
	}

	svc := NewDashboardService(sales, products, nil)
	resp, err := svc.Stats(context.Background(), "today")
	require.NoError(t, err)

	assert.True(t, resp.TotalSales.Equal(decimal.NewFromInt(1215)))
	assert.Equal(t, 6, resp.TotalItemsSold)

	require.NotEmpty(t, resp.TopSellingProducts)
	assert.Equal(t, "Sugar", resp.TopSellingProducts[0].Name, "ranked by quantity")
	assert.Equal(t, 3, resp.TopSellingProducts[0].Quantity)

	require.Len(t, resp.LowStockProducts, 1)
	assert.Equal(t, "Tea", resp.LowStockProducts[0].Name)
}

func TestDashboardStats_UnknownPeriodRejected(t *testing.T) {
	svc := NewDashboardService(newStubSaleRepo(), newStubProductRepo(), nil)
	_, err := svc.Stats(context.Background(), "yearly")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestPeriodRange(t *testing.T) {
	now := time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)

	from, to, err := periodRange("today", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, now, to)

	from, _, err = periodRange("weekly", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC), from)

	from, _, err = periodRange("monthly", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC), from)
}

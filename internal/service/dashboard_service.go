package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"shopstock/internal/dto"
	"shopstock/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// dashboardCacheTTL keeps stats fresh enough for a shop counter while taking
// repeated widget refreshes off the database.
const dashboardCacheTTL = 30 * time.Second

type DashboardService interface {
	Stats(ctx context.Context, period string) (*dto.DashboardStatsResponse, error)
}

type dashboardService struct {
	sales    repository.SaleRepository
	products repository.ProductRepository
	cache    *redis.Client // nil disables caching
}

func NewDashboardService(sales repository.SaleRepository, products repository.ProductRepository, cache *redis.Client) DashboardService {
	return &dashboardService{sales: sales, products: products, cache: cache}
}

func (s *dashboardService) Stats(ctx context.Context, period string) (*dto.DashboardStatsResponse, error) {
	from, to, err := periodRange(period, time.Now())
	if err != nil {
		return nil, err
	}

	cacheKey := "dashboard:stats:" + period
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached dto.DashboardStatsResponse
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	totalSales, err := s.sales.SumTotalBetween(ctx, from, to)
	if err != nil {
		return nil, &PersistenceError{Stage: "sum sales", Err: err}
	}

	items, err := s.sales.ListItemsBetween(ctx, from, to)
	if err != nil {
		return nil, &PersistenceError{Stage: "list sale items", Err: err}
	}

	totalItems := 0
	byProduct := map[string]int{}
	for _, it := range items {
		totalItems += it.Quantity
		name := it.ProductID.String()
		if it.Product != nil {
			name = it.Product.Name
		}
		byProduct[name] += it.Quantity
	}
	top := make([]dto.TopProduct, 0, len(byProduct))
	for name, qty := range byProduct {
		top = append(top, dto.TopProduct{Name: name, Quantity: qty})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Quantity != top[j].Quantity {
			return top[i].Quantity > top[j].Quantity
		}
		return top[i].Name < top[j].Name
	})
	if len(top) > 5 {
		top = top[:5]
	}

	lowStock, err := s.products.ListLowStock(ctx)
	if err != nil {
		return nil, &PersistenceError{Stage: "list low stock", Err: err}
	}
	lowStockResp := make([]dto.ProductResponse, 0, len(lowStock))
	for i := range lowStock {
		lowStockResp = append(lowStockResp, *productToResponse(&lowStock[i]))
	}

	resp := &dto.DashboardStatsResponse{
		Period:             period,
		TotalSales:         totalSales,
		TotalItemsSold:     totalItems,
		TopSellingProducts: top,
		LowStockProducts:   lowStockResp,
	}

	if s.cache != nil {
		if raw, err := json.Marshal(resp); err == nil {
			if err := s.cache.Set(ctx, cacheKey, raw, dashboardCacheTTL).Err(); err != nil {
				log.Debug().Err(err).Msg("dashboard cache write skipped")
			}
		}
	}
	return resp, nil
}

// periodRange maps a dashboard period name to a [from, to] window ending now.
func periodRange(period string, now time.Time) (time.Time, time.Time, error) {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch period {
	case "", "today":
		return startOfDay, now, nil
	case "weekly":
		return startOfDay.AddDate(0, 0, -6), now, nil
	case "monthly":
		return startOfDay.AddDate(0, -1, 0), now, nil
	default:
		return time.Time{}, time.Time{}, newValidationError("unknown period %q, want today, weekly or monthly", period)
	}
}

package worker

// Background scan that catches low-stock products missed by the inline
// alerting path, e.g. stock that crossed the threshold through a sale or
// through a delegated-mode trigger. A Redis SETNX key with a 24h TTL keeps
// each product from being alerted more than once a day.

import (
	"context"
	"time"

	"shopstock/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	scanTickInterval = 10 * time.Minute
	alertDedupeTTL   = 24 * time.Hour
)

// StartLowStockScan launches the scan goroutine. It respects the context for
// graceful shutdown.
func StartLowStockScan(ctx context.Context, products repository.ProductRepository, rdb *redis.Client, dispatcher *Dispatcher) {
	go func() {
		ticker := time.NewTicker(scanTickInterval)
		defer ticker.Stop()

		log.Info().Msg("low stock scan: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("low stock scan: shutting down")
				return
			case <-ticker.C:
				scanLowStock(ctx, products, rdb, dispatcher)
			}
		}
	}()
}

func scanLowStock(ctx context.Context, products repository.ProductRepository, rdb *redis.Client, dispatcher *Dispatcher) {
	low, err := products.ListLowStock(ctx)
	if err != nil {
		log.Error().Err(err).Msg("low stock scan: query failed")
		return
	}

	for _, p := range low {
		if p.Stock == nil || p.LowStockLimit == nil {
			continue
		}
		dedupeKey := "alerts:sent:" + p.ID.String()
		ok, err := rdb.SetNX(ctx, dedupeKey, 1, alertDedupeTTL).Result()
		if err != nil || !ok {
			continue
		}
		if err := dispatcher.EnqueueLowStockAlert(ctx, LowStockAlertPayload{
			ProductID: p.ID.String(),
			Name:      p.Name,
			Stock:     *p.Stock,
			Limit:     *p.LowStockLimit,
		}); err != nil {
			log.Error().Err(err).Str("product", p.Name).Msg("low stock scan: enqueue failed")
		}
	}
}

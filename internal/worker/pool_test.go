package worker

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestDispatcher_EnqueueLowStockAlert(t *testing.T) {
	rdb := testRedis(t)
	d := NewDispatcher(rdb)
	ctx := context.Background()

	err := d.EnqueueLowStockAlert(ctx, LowStockAlertPayload{
		ProductID: "p-1",
		Name:      "Tea",
		Stock:     2,
		Limit:     5,
	})
	require.NoError(t, err)

	raw, err := rdb.RPop(ctx, QueueAlerts).Result()
	require.NoError(t, err)

	var job Job
	require.NoError(t, json.Unmarshal([]byte(raw), &job))
	assert.Equal(t, "low_stock_alert", job.Type)

	var payload LowStockAlertPayload
	require.NoError(t, json.Unmarshal(job.Payload, &payload))
	assert.Equal(t, "Tea", payload.Name)
	assert.Equal(t, 2, payload.Stock)
}

func TestDispatcher_NilClientIsNoop(t *testing.T) {
	var d *Dispatcher
	assert.NoError(t, d.EnqueueLowStockAlert(context.Background(), LowStockAlertPayload{}))

	d = NewDispatcher(nil)
	assert.NoError(t, d.EnqueueLowStockAlert(context.Background(), LowStockAlertPayload{}))
}

func TestProcessJob_HandlerSuccess(t *testing.T) {
	rdb := testRedis(t)
	ctx := context.Background()

	var got LowStockAlertPayload
	handlers := Handlers{
		LowStockAlert: func(_ context.Context, p LowStockAlertPayload) error {
			got = p
			return nil
		},
	}

	payload, _ := json.Marshal(LowStockAlertPayload{Name: "Tea", Stock: 1, Limit: 5})
	raw, _ := json.Marshal(Job{Type: "low_stock_alert", Payload: payload})
	processJob(ctx, rdb, QueueAlerts, string(raw), handlers)

	assert.Equal(t, "Tea", got.Name)

	n, err := DLQLength(ctx, rdb, QueueAlerts)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestProcessJob_HandlerFailureGoesToDLQ(t *testing.T) {
	rdb := testRedis(t)
	ctx := context.Background()

	handlers := Handlers{
		LowStockAlert: func(_ context.Context, _ LowStockAlertPayload) error {
			return assert.AnError
		},
	}

	payload, _ := json.Marshal(LowStockAlertPayload{Name: "Tea"})
	raw, _ := json.Marshal(Job{Type: "low_stock_alert", Payload: payload})
	processJob(ctx, rdb, QueueAlerts, string(raw), handlers)

	n, err := DLQLength(ctx, rdb, QueueAlerts)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	entryRaw, err := rdb.RPop(ctx, DLQPrefix+QueueAlerts).Result()
	require.NoError(t, err)
	var entry DLQEntry
	require.NoError(t, json.Unmarshal([]byte(entryRaw), &entry))
	assert.Equal(t, QueueAlerts, entry.OriginalQueue)
	assert.Equal(t, "low_stock_alert", entry.JobType)
}

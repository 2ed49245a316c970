package realtime

// Redis pub/sub change feed. Handlers publish a small change notification
// after successful writes; connected clients receive them over SSE and
// refresh their list views.

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const channel = "shopstock:changes"

// Event describes one committed change.
type Event struct {
	Collection string `json:"collection"` // products | sales | purchases | settings
	Action     string `json:"action"`     // insert | update | delete
	ID         string `json:"id"`
}

// Publisher fans committed changes out over a Redis channel. A Publisher with
// a nil client is a no-op, so handlers never need to guard for it.
type Publisher struct {
	rdb *redis.Client
}

func NewPublisher(rdb *redis.Client) *Publisher {
	return &Publisher{rdb: rdb}
}

// Publish is fire-and-forget: failures are logged, never surfaced.
func (p *Publisher) Publish(ctx context.Context, ev Event) {
	if p == nil || p.rdb == nil {
		return
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	if err := p.rdb.Publish(ctx, channel, data).Err(); err != nil {
		log.Warn().Err(err).
			Str("collection", ev.Collection).
			Str("action", ev.Action).
			Msg("change event not published")
	}
}

// Subscribe opens a subscription on the change channel. The caller owns the
// returned PubSub and must Close it.
func (p *Publisher) Subscribe(ctx context.Context) *redis.PubSub {
	return p.rdb.Subscribe(ctx, channel)
}

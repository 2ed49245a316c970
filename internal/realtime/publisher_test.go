package realtime

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisher_RoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	p := NewPublisher(rdb)
	ctx := context.Background()

	sub := p.Subscribe(ctx)
	defer sub.Close()
	_, err := sub.Receive(ctx) // wait for the subscription to be active
	require.NoError(t, err)

	p.Publish(ctx, Event{Collection: "sales", Action: "insert", ID: "s-1"})

	select {
	case msg := <-sub.Channel():
		var ev Event
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &ev))
		assert.Equal(t, "sales", ev.Collection)
		assert.Equal(t, "insert", ev.Action)
		assert.Equal(t, "s-1", ev.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("no change event received")
	}
}

func TestPublisher_NilClientIsNoop(t *testing.T) {
	var p *Publisher
	p.Publish(context.Background(), Event{Collection: "sales"})

	NewPublisher(nil).Publish(context.Background(), Event{Collection: "sales"})
}

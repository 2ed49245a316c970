package handler

import (
	"io"

	"shopstock/internal/realtime"

	"github.com/gin-gonic/gin"
)

type EventsHandler struct{ events *realtime.Publisher }

func NewEventsHandler(events *realtime.Publisher) *EventsHandler {
	return &EventsHandler{events: events}
}

// Stream is the SSE change feed (GET /v1/events). Each committed write shows
// up as one `change` event; clients re-fetch the affected list on receipt.
func (h *EventsHandler) Stream(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	sub := h.events.Subscribe(c.Request.Context())
	defer sub.Close()

	ch := sub.Channel()
	c.Stream(func(w io.Writer) bool {
		select {
		case msg, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("change", msg.Payload)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

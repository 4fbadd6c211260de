package handlers

import (
	"io"

	"warung-pos-api/middleware"
	"warung-pos-api/notify"

	"github.com/gin-gonic/gin"
)

// StreamEvents serves the change-notification channel over SSE. Each
// event names only the DB table that changed; clients re-fetch the
// authoritative state on receipt, so a dropped event at worst delays a
// refresh until the next one.
func StreamEvents(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	ch, cancel := hub.Subscribe(ownerID)
	defer cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case change, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("change", notify.Change{Table: change.Table})
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

package handler

import (
	"net/http"

	"geomate/backend/internal/auth"
	"geomate/backend/internal/hub"

	"github.com/gin-gonic/gin"
)

const clientBuffer = 16

// StreamEvents godoc
// @Summary      Stream friend events
// @Description  Server-sent events for every friend request transition and friend removal involving the session user.
// @Tags         session
// @Produce      text/event-stream
// @Security     BearerAuth
// @Success      200  {string}  string "event stream"
// @Failure      401  {object}  Envelope
// @Router       /events [get]
func (h *Handler) StreamEvents(c *gin.Context) {
	userName := c.GetString(auth.UserNameKey)

	client := make(hub.Client, clientBuffer)
	h.hub.Subscribe(userName, client)
	defer h.hub.Unsubscribe(userName, client)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-client:
			if !ok {
				return
			}
			c.SSEvent("message", string(msg))
			c.Writer.Flush()
		}
	}
}

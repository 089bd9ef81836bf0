// SPDX-License-Identifier: AGPL-3.0-only
package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EventsHandler streams the dashboard state as server-sent events. The first
// event is the current state; one follows every change.
func (h *Handler) EventsHandler(c *gin.Context) {
	if err := h.Shell.LoadError(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	updates, cancel := h.Shell.Subscribe()
	defer cancel()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.SSEvent("state", newProfileResponse(h.Shell.Snapshot()))
	c.Writer.Flush()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case s := <-updates:
			c.SSEvent("state", newProfileResponse(s))
			return true
		case <-ctx.Done():
			return false
		}
	})

	h.Log.Debug("Event stream closed", zap.Error(ctx.Err()))
}

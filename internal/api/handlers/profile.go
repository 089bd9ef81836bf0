// SPDX-License-Identifier: AGPL-3.0-only
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ProfileHandler(c *gin.Context) {
	if err := h.Shell.LoadError(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, newProfileResponse(h.Shell.Snapshot()))
}

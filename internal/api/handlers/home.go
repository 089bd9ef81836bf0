// SPDX-License-Identifier: AGPL-3.0-only
package handlers

import (
	"net/http"

	"github.com/fluffyriot/profiledash/internal/config"
	"github.com/fluffyriot/profiledash/internal/views"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) RootHandler(c *gin.Context) {

	if err := h.Shell.LoadError(); err != nil {
		c.HTML(http.StatusServiceUnavailable, "unavailable.html", gin.H{
			"error":       err.Error(),
			"app_version": config.AppVersion,
		})
		return
	}

	session := sessions.Default(c)
	var flash string
	if flashes := session.Flashes(); len(flashes) > 0 {
		flash, _ = flashes[0].(string)
		if err := session.Save(); err != nil {
			h.Log.Warn("Failed to clear flash", zap.Error(err))
		}
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"dashboard":   views.NewDashboardView(h.Shell.Snapshot()),
		"flash":       flash,
		"app_version": config.AppVersion,
	})
}

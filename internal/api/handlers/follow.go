// SPDX-License-Identifier: AGPL-3.0-only
package handlers

import (
	"net/http"
	"strings"

	"github.com/fluffyriot/profiledash/internal/config"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) FollowHandler(c *gin.Context) {
	wantsJSON := strings.HasPrefix(c.FullPath(), "/api/") ||
		strings.Contains(c.GetHeader("Accept"), gin.MIMEJSON)

	if err := h.Shell.LoadError(); err != nil {
		if wantsJSON {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		c.HTML(http.StatusServiceUnavailable, "unavailable.html", gin.H{
			"error":       err.Error(),
			"app_version": config.AppVersion,
		})
		return
	}

	snap, changed := h.Shell.Follow()

	if wantsJSON {
		c.JSON(http.StatusOK, newProfileResponse(snap))
		return
	}

	if changed {
		session := sessions.Default(c)
		session.AddFlash("You are now following " + snap.User.Name + ".")
		if err := session.Save(); err != nil {
			h.Log.Warn("Failed to save flash", zap.Error(err))
		}
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// SPDX-License-Identifier: AGPL-3.0-only
package api

import (
	"net/http"

	"github.com/fluffyriot/profiledash/internal/api/handlers"
	"github.com/fluffyriot/profiledash/internal/middleware"
	"github.com/fluffyriot/profiledash/internal/views"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

const sessionName = "profiledash"

func NewRouter(h *handlers.Handler) *gin.Engine {
	gin.SetMode(h.Config.GinMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.AccessLogMiddleware(h.Log))
	r.Use(middleware.SecurityHeadersMiddleware())

	store := cookie.NewStore(h.Config.SessionSecret)
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   0,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(sessionName, store))

	r.SetHTMLTemplate(views.Templates())

	r.GET("/", h.RootHandler)
	r.POST("/follow", h.FollowHandler)
	r.GET("/events", h.EventsHandler)
	r.GET("/health", h.HealthCheckHandler)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/profile", h.ProfileHandler)
		apiGroup.POST("/follow", h.FollowHandler)
	}

	return r
}

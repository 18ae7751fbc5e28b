package http

import (
	"github.com/gin-gonic/gin"

	"focusflow/internal/middleware"
)

// RegisterRoutes maps focus-session and analytics endpoints. Every route requires Auth.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sessions := rg.Group("/focus-sessions", mw.Auth())
	{
		sessions.POST("", h.Start)
		sessions.GET("/active", h.Active)
		sessions.POST("/:id/complete", h.Complete)
		sessions.POST("/:id/cancel", h.Cancel)
	}

	analytics := rg.Group("/analytics", mw.Auth())
	{
		analytics.GET("/productivity", h.Productivity)
		analytics.GET("/focus-patterns", h.FocusPatterns)
	}
}

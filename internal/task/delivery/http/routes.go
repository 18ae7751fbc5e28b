package http

import (
	"github.com/gin-gonic/gin"

	"focusflow/internal/middleware"
)

// RegisterRoutes maps task and schedule endpoints. Every route requires Auth.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.Auth())
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.POST("/parse", h.Parse)
		tasks.GET("/:id", h.Detail)
		tasks.PATCH("/:id", h.Update)
		tasks.POST("/:id/complete", h.Complete)
		tasks.DELETE("/:id", h.Delete)
	}

	schedule := rg.Group("/schedule", mw.Auth())
	{
		schedule.GET("", h.Schedule)
		schedule.GET("/optimize", h.Optimize)
	}
}

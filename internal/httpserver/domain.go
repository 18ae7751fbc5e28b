package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	focusHTTP "focusflow/internal/focus/delivery/http"
	"focusflow/internal/middleware"
	taskHTTP "focusflow/internal/task/delivery/http"
)

// setupTaskDomain registers /tasks and /schedule.
func (srv HTTPServer) setupTaskDomain(api *gin.RouterGroup, mw middleware.Middleware) {
	h := taskHTTP.New(srv.l, srv.taskUC)
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(context.Background(), "Task domain registered")
}

// setupFocusDomain registers /focus-sessions and /analytics.
func (srv HTTPServer) setupFocusDomain(api *gin.RouterGroup, mw middleware.Middleware) {
	h := focusHTTP.New(srv.l, srv.focusUC)
	focusHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(context.Background(), "Focus domain registered")
}

package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"focusflow/internal/model"
	"focusflow/pkg/response"
)

type scopeKey struct{}

// Auth trusts the owner id set by the upstream gateway in X-User-ID.
// Requests without one are rejected.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if userID == "" {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: missing %s header: path=%s", HeaderUserID, c.FullPath())
			response.Unauthorized(c)
			return
		}

		ctx := SetScope(c.Request.Context(), model.Scope{UserID: userID})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// SetScope stores sc in ctx.
func SetScope(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

// GetScope returns the caller stored by Auth.
func GetScope(ctx context.Context) (model.Scope, bool) {
	sc, ok := ctx.Value(scopeKey{}).(model.Scope)
	return sc, ok && sc.UserID != ""
}

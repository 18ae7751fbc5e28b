package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"focusflow/internal/middleware"
	"focusflow/internal/model"
	pkgErrors "focusflow/pkg/errors"
)

// scope returns the caller placed in the context by the Auth middleware.
func (h *handler) scope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c.Request.Context())
	if !ok {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}

func (h *handler) processCreateReq(c *gin.Context) (model.Scope, createReq, error) {
	var req createReq
	sc, err := h.scope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, err
	}
	return sc, req, req.validate()
}

// processUpdateReq binds and validates the update body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (model.Scope, updateReq, error) {
	var req updateReq
	sc, err := h.scope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, err
	}
	req.ID = strings.TrimSpace(c.Param("id"))
	if req.ID == "" {
		return sc, req, errIDRequired
	}
	return sc, req, req.validate()
}

func (h *handler) processIDReq(c *gin.Context) (model.Scope, string, error) {
	sc, err := h.scope(c)
	if err != nil {
		return sc, "", err
	}
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return sc, "", errIDRequired
	}
	return sc, id, nil
}

func (h *handler) processListReq(c *gin.Context) (model.Scope, listReq, error) {
	var req listReq
	sc, err := h.scope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return sc, req, err
	}
	return sc, req, nil
}

func (h *handler) processOptimizeReq(c *gin.Context) (model.Scope, optimizeReq, error) {
	var req optimizeReq
	sc, err := h.scope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return sc, req, err
	}
	return sc, req, nil
}

func (h *handler) processParseReq(c *gin.Context) (model.Scope, parseReq, error) {
	var req parseReq
	sc, err := h.scope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, err
	}
	return sc, req, nil
}

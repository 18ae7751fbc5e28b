package http

import (
	"errors"
	"io"
	"strings"

	"github.com/gin-gonic/gin"

	"focusflow/internal/middleware"
	"focusflow/internal/model"
	pkgErrors "focusflow/pkg/errors"
)

func (h *handler) scope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c.Request.Context())
	if !ok {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}

// processStartReq accepts task_id from an optional JSON body or the query string.
func (h *handler) processStartReq(c *gin.Context) (model.Scope, startReq, error) {
	var req startReq
	sc, err := h.scope(c)
	if err != nil {
		return sc, req, err
	}
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			return sc, req, err
		}
	}
	if req.TaskID == "" {
		req.TaskID = strings.TrimSpace(c.Query("task_id"))
	}
	return sc, req, nil
}

func (h *handler) processCompleteReq(c *gin.Context) (model.Scope, completeReq, error) {
	var req completeReq
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
	return sc, req, nil
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

package http

import (
	"github.com/gin-gonic/gin"

	"focusflow/pkg/response"
)

// Start godoc
// @Summary     Start a focus session
// @Description Opens a session, optionally linked to a pending task. Only one session may be active.
// @Tags        Focus Sessions
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string   true  "Owner ID"
// @Param       body      body   startReq false "Linked task"
// @Success     200 {object} sessionResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found - linked task"
// @Failure     409 {object} response.Resp "Conflict - session already active"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/focus-sessions [POST]
func (h *handler) Start(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processStartReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.StartSession(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.StartSession: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSessionResp(output))
}

// Active godoc
// @Summary     Get the active focus session
// @Tags        Focus Sessions
// @Produce     json
// @Param       X-User-ID header string true "Owner ID"
// @Success     200 {object} activeResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/focus-sessions/active [GET]
func (h *handler) Active(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.GetActive(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetActive: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newActiveResp(output))
}

// Complete godoc
// @Summary     Complete a focus session
// @Description Records productivity for the session's window. A linked task is completed when productivity exceeds 0.7.
// @Tags        Focus Sessions
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string      true "Owner ID"
// @Param       id        path   string      true "Session ID"
// @Param       body      body   completeReq true "Observed productivity"
// @Success     200 {object} completeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - session not active"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/focus-sessions/{id}/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processCompleteReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CompleteSession(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.CompleteSession: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCompleteResp(output))
}

// Cancel godoc
// @Summary     Cancel a focus session
// @Description Ends the session without recording productivity.
// @Tags        Focus Sessions
// @Produce     json
// @Param       X-User-ID header string true "Owner ID"
// @Param       id        path   string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - session not active"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/focus-sessions/{id}/cancel [POST]
func (h *handler) Cancel(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CancelSession(ctx, sc, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.CancelSession: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSessionResp(output))
}

// Productivity godoc
// @Summary     Productivity analytics
// @Description Rolling seven-day summary of focus time, sessions and completed tasks.
// @Tags        Analytics
// @Produce     json
// @Param       X-User-ID header string true "Owner ID"
// @Success     200 {object} productivityResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/analytics/productivity [GET]
func (h *handler) Productivity(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.GetAnalytics(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetAnalytics: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newProductivityResp(output))
}

// FocusPatterns godoc
// @Summary     Focus patterns
// @Description Smoothed productivity per window of day with scheduling hints.
// @Tags        Analytics
// @Produce     json
// @Param       X-User-ID header string true "Owner ID"
// @Success     200 {object} focusPatternsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/analytics/focus-patterns [GET]
func (h *handler) FocusPatterns(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.GetFocusPatterns(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetFocusPatterns: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newFocusPatternsResp(output))
}

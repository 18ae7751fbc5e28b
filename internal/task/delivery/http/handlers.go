package http

import (
	"github.com/gin-gonic/gin"

	"focusflow/pkg/response"
)

// Create godoc
// @Summary     Create a task from natural language
// @Description Parses raw_text into a structured task, stores it and returns the recomputed schedule.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "Owner ID"
// @Param       body      body   createReq true "Raw task text"
// @Success     200 {object} taskWithScheduleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskWithScheduleResp(output))
}

// Parse godoc
// @Summary     Preview task parsing
// @Description Runs the parser on raw_text without storing anything.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string   true "Owner ID"
// @Param       body      body   parseReq true "Raw task text"
// @Success     200 {object} draftResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/tasks/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ParsePreview(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDraftResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Pending tasks in schedule order with focus scores, then completed tasks, most recent first.
// @Tags        Tasks
// @Produce     json
// @Param       X-User-ID header string true  "Owner ID"
// @Param       status    query  string false "pending or completed"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get task detail
// @Description Returns one task. Pending tasks include their current focus score.
// @Tags        Tasks
// @Produce     json
// @Param       X-User-ID header string true "Owner ID"
// @Param       id        path   string true "Task ID"
// @Success     200 {object} detailResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update a task
// @Description Partial update. Completed tasks cannot be changed.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "Owner ID"
// @Param       id        path   string    true "Task ID"
// @Param       body      body   updateReq true "Fields to update"
// @Success     200 {object} taskWithScheduleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - task already completed"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskWithScheduleResp(output))
}

// Complete godoc
// @Summary     Complete a task
// @Tags        Tasks
// @Produce     json
// @Param       X-User-ID header string true "Owner ID"
// @Param       id        path   string true "Task ID"
// @Success     200 {object} taskWithScheduleResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - task already completed"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Complete(ctx, sc, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.Complete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskWithScheduleResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task and returns the remaining schedule.
// @Tags        Tasks
// @Produce     json
// @Param       X-User-ID header string true "Owner ID"
// @Param       id        path   string true "Task ID"
// @Success     200 {object} scheduleResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Delete(ctx, sc, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newScheduleResp(output))
}

// Schedule godoc
// @Summary     Get the current schedule
// @Description Pending tasks ranked by focus score, highest first.
// @Tags        Schedule
// @Produce     json
// @Param       X-User-ID header string true "Owner ID"
// @Success     200 {object} scheduleResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule [GET]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.GetSchedule(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetSchedule: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newScheduleResp(output))
}

// Optimize godoc
// @Summary     Get the optimized schedule head
// @Description Top of the schedule with focus patterns and recommendations.
// @Tags        Schedule
// @Produce     json
// @Param       X-User-ID header string true  "Owner ID"
// @Param       limit     query  int    false "Max tasks (default: 10)"
// @Success     200 {object} optimizeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/optimize [GET]
func (h *handler) Optimize(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processOptimizeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.OptimizeSchedule(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.OptimizeSchedule: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newOptimizeResp(output))
}

package http

import (
	"strings"
	"time"

	"focusflow/internal/model"
	"focusflow/internal/task"
	"focusflow/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	RawText     string `json:"raw_text"    binding:"required,max=1000"`
	Description string `json:"description" binding:"max=4000"`
}

func (r createReq) validate() error {
	if strings.TrimSpace(r.RawText) == "" {
		return task.ErrEmptyInput
	}
	return nil
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{RawText: r.RawText, Description: r.Description}
}

// ---

type updateReq struct {
	ID                       string  `json:"-"` // populated from URI param
	Title                    *string `json:"title"                      binding:"omitempty,max=255"`
	Description              *string `json:"description"                binding:"omitempty,max=4000"`
	Priority                 *string `json:"priority"`
	TaskType                 *string `json:"task_type"`
	DueAt                    *string `json:"due_at"`
	ClearDueAt               bool    `json:"clear_due_at"`
	EstimatedDurationMinutes *int    `json:"estimated_duration_minutes"`
	Status                   *string `json:"status"`

	dueAt *time.Time
}

func (r *updateReq) validate() error {
	if r.DueAt != nil {
		due, err := time.Parse(time.RFC3339, strings.TrimSpace(*r.DueAt))
		if err != nil {
			return errInvalidDueAt
		}
		r.dueAt = &due
	}
	if r.Title == nil && r.Description == nil && r.Priority == nil && r.TaskType == nil &&
		r.dueAt == nil && !r.ClearDueAt && r.EstimatedDurationMinutes == nil && r.Status == nil {
		return errNothingToSave
	}
	return nil
}

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{
		ID:                       r.ID,
		Title:                    r.Title,
		Description:              r.Description,
		Priority:                 r.Priority,
		TaskType:                 r.TaskType,
		DueAt:                    r.dueAt,
		ClearDueAt:               r.ClearDueAt,
		EstimatedDurationMinutes: r.EstimatedDurationMinutes,
		Status:                   r.Status,
	}
}

// ---

type listReq struct {
	Status string `form:"status" binding:"omitempty,oneof=pending completed"`
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{Status: r.Status}
}

// ---

type optimizeReq struct {
	Limit int `form:"limit" binding:"omitempty,min=1"`
}

func (r optimizeReq) toInput() task.OptimizeInput {
	return task.OptimizeInput{Limit: r.Limit}
}

// ---

type parseReq struct {
	RawText string `json:"raw_text" binding:"required,max=1000"`
}

func (r parseReq) toInput() task.ParseInput {
	return task.ParseInput{RawText: r.RawText}
}

// --- Response DTOs ---

type taskResp struct {
	ID                       string             `json:"id"`
	Title                    string             `json:"title"`
	Description              string             `json:"description"`
	DueAt                    *response.DateTime `json:"due_at"`
	Priority                 string             `json:"priority"`
	TaskType                 string             `json:"task_type"`
	EstimatedDurationMinutes int                `json:"estimated_duration_minutes"`
	ActualDurationMinutes    *int               `json:"actual_duration_minutes"`
	Status                   string             `json:"status"`
	FocusScore               float64            `json:"focus_score"`
	CalendarEventLink        string             `json:"calendar_event_link,omitempty"`
	CreatedAt                response.DateTime  `json:"created_at"`
	UpdatedAt                response.DateTime  `json:"updated_at"`
	CompletedAt              *response.DateTime `json:"completed_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:                       t.ID,
		Title:                    t.Title,
		Description:              t.Description,
		DueAt:                    response.NewDateTimePtr(t.DueAt),
		Priority:                 string(t.Priority),
		TaskType:                 string(t.TaskType),
		EstimatedDurationMinutes: t.EstimatedDurationMinutes,
		ActualDurationMinutes:    t.ActualDurationMinutes,
		Status:                   string(t.Status),
		FocusScore:               t.FocusScore,
		CalendarEventLink:        t.CalendarEventLink,
		CreatedAt:                response.DateTime(t.CreatedAt),
		UpdatedAt:                response.DateTime(t.UpdatedAt),
		CompletedAt:              response.NewDateTimePtr(t.CompletedAt),
	}
}

func newTaskResps(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type profileResp struct {
	Morning      float64    `json:"morning"`
	Afternoon    float64    `json:"afternoon"`
	Evening      float64    `json:"evening"`
	Peak         string     `json:"peak"`
	Observations int        `json:"observations"`
	LastUpdated  *time.Time `json:"last_updated"`
}

func newProfileResp(p model.FocusProfile) profileResp {
	resp := profileResp{
		Morning:      p.Morning,
		Afternoon:    p.Afternoon,
		Evening:      p.Evening,
		Peak:         string(p.Peak()),
		Observations: p.Observations,
	}
	if !p.LastUpdated.IsZero() {
		lu := p.LastUpdated
		resp.LastUpdated = &lu
	}
	return resp
}

type scheduleResp struct {
	GeneratedAt time.Time  `json:"generated_at"`
	Tasks       []taskResp `json:"tasks"`
}

func newScheduleResp(s model.Schedule) scheduleResp {
	return scheduleResp{GeneratedAt: s.GeneratedAt, Tasks: newTaskResps(s.Tasks)}
}

// taskWithScheduleResp answers every mutation.
type taskWithScheduleResp struct {
	Task     taskResp     `json:"task"`
	Schedule scheduleResp `json:"schedule"`
}

func (h *handler) newTaskWithScheduleResp(out task.TaskOutput) taskWithScheduleResp {
	return taskWithScheduleResp{Task: newTaskResp(out.Task), Schedule: newScheduleResp(out.Schedule)}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(tasks []model.Task) listResp {
	return listResp{Tasks: newTaskResps(tasks), Total: len(tasks)}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(t model.Task) detailResp {
	return detailResp{Task: newTaskResp(t)}
}

type optimizeResp struct {
	OptimizedTasks  []taskResp  `json:"optimized_tasks"`
	TotalPending    int         `json:"total_pending"`
	FocusPatterns   profileResp `json:"focus_patterns"`
	Recommendations []string    `json:"recommendations"`
	GeneratedAt     time.Time   `json:"generated_at"`
}

func (h *handler) newOptimizeResp(out task.OptimizeOutput) optimizeResp {
	return optimizeResp{
		OptimizedTasks:  newTaskResps(out.Tasks),
		TotalPending:    out.TotalPending,
		FocusPatterns:   newProfileResp(out.Profile),
		Recommendations: out.Recommendations,
		GeneratedAt:     out.GeneratedAt,
	}
}

type draftResp struct {
	Title                    string             `json:"title"`
	DueAt                    *response.DateTime `json:"due_at"`
	Priority                 string             `json:"priority"`
	TaskType                 string             `json:"task_type"`
	EstimatedDurationMinutes int                `json:"estimated_duration_minutes"`
	Source                   string             `json:"source"`
}

func (h *handler) newDraftResp(out task.ParseOutput) draftResp {
	return draftResp{
		Title:                    out.Draft.Title,
		DueAt:                    response.NewDateTimePtr(out.Draft.DueAt),
		Priority:                 string(out.Draft.Priority),
		TaskType:                 string(out.Draft.TaskType),
		EstimatedDurationMinutes: out.Draft.EstimatedDurationMinutes,
		Source:                   out.Source,
	}
}

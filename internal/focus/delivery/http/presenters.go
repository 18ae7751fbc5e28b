package http

import (
	"focusflow/internal/analytics"
	"focusflow/internal/focus"
	"focusflow/internal/model"
	"focusflow/pkg/response"
)

// --- Request DTOs ---

type startReq struct {
	TaskID string `json:"task_id" form:"task_id" binding:"omitempty,max=64"`
}

func (r startReq) toInput() focus.StartInput {
	return focus.StartInput{TaskID: r.TaskID}
}

type completeReq struct {
	ID                string   `json:"-"` // populated from URI param
	ProductivityScore *float64 `json:"productivity_score"  binding:"required,min=0,max=1"`
	DurationMinutes   *int     `json:"duration_minutes"    binding:"omitempty,min=1"`
}

func (r completeReq) toInput() focus.CompleteInput {
	return focus.CompleteInput{
		ID:                r.ID,
		ProductivityScore: *r.ProductivityScore,
		DurationMinutes:   r.DurationMinutes,
	}
}

// --- Response DTOs ---

type sessionResp struct {
	ID                string             `json:"id"`
	TaskID            string             `json:"task_id,omitempty"`
	Status            string             `json:"status"`
	StartedAt         response.DateTime  `json:"started_at"`
	EndedAt           *response.DateTime `json:"ended_at"`
	DurationMinutes   int                `json:"duration_minutes"`
	ProductivityScore float64            `json:"productivity_score"`
	Window            string             `json:"window,omitempty"`
}

func newSessionResp(s model.FocusSession) sessionResp {
	return sessionResp{
		ID:                s.ID,
		TaskID:            s.TaskID,
		Status:            string(s.Status),
		StartedAt:         response.DateTime(s.StartedAt),
		EndedAt:           response.NewDateTimePtr(s.EndedAt),
		DurationMinutes:   s.DurationMinutes,
		ProductivityScore: s.ProductivityScore,
		Window:            string(s.Window),
	}
}

type patternsResp struct {
	Morning      float64            `json:"morning"`
	Afternoon    float64            `json:"afternoon"`
	Evening      float64            `json:"evening"`
	Peak         string             `json:"peak"`
	Observations int                `json:"observations"`
	LastUpdated  *response.DateTime `json:"last_updated"`
}

func newPatternsResp(p model.FocusProfile) patternsResp {
	resp := patternsResp{
		Morning:      p.Morning,
		Afternoon:    p.Afternoon,
		Evening:      p.Evening,
		Peak:         string(p.Peak()),
		Observations: p.Observations,
	}
	if !p.LastUpdated.IsZero() {
		resp.LastUpdated = response.NewDateTimePtr(&p.LastUpdated)
	}
	return resp
}

type scheduledTaskResp struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Priority   string  `json:"priority"`
	TaskType   string  `json:"task_type"`
	FocusScore float64 `json:"focus_score"`
}

type completeResp struct {
	Session         sessionResp         `json:"session"`
	FocusPatterns   patternsResp        `json:"focus_patterns"`
	CompletedTaskID string              `json:"completed_task_id,omitempty"`
	Schedule        []scheduledTaskResp `json:"schedule"`
}

func (h *handler) newCompleteResp(out focus.CompleteOutput) completeResp {
	resp := completeResp{
		Session:       newSessionResp(out.Session),
		FocusPatterns: newPatternsResp(out.Profile),
		Schedule:      make([]scheduledTaskResp, len(out.Schedule.Tasks)),
	}
	if out.CompletedTask != nil {
		resp.CompletedTaskID = out.CompletedTask.ID
	}
	for i, t := range out.Schedule.Tasks {
		resp.Schedule[i] = scheduledTaskResp{
			ID:         t.ID,
			Title:      t.Title,
			Priority:   string(t.Priority),
			TaskType:   string(t.TaskType),
			FocusScore: t.FocusScore,
		}
	}
	return resp
}

type activeResp struct {
	Session        *sessionResp `json:"session"`
	ElapsedMinutes int          `json:"elapsed_minutes"`
}

func (h *handler) newActiveResp(out focus.ActiveSession) activeResp {
	if out.Session == nil {
		return activeResp{}
	}
	s := newSessionResp(*out.Session)
	return activeResp{Session: &s, ElapsedMinutes: int(out.Elapsed.Minutes())}
}

type focusPatternsResp struct {
	FocusPatterns   patternsResp `json:"focus_patterns"`
	Recommendations []string     `json:"recommendations"`
}

func (h *handler) newFocusPatternsResp(out focus.PatternsOutput) focusPatternsResp {
	return focusPatternsResp{
		FocusPatterns:   newPatternsResp(out.Profile),
		Recommendations: out.Recommendations,
	}
}

type productivityResp struct {
	TotalFocusMinutes7d      int               `json:"total_focus_minutes_7d"`
	CompletedTasks7d         int               `json:"completed_tasks_7d"`
	FocusSessionsCount       int               `json:"focus_sessions_count"`
	AverageProductivityScore float64           `json:"average_productivity_score"`
	AsOf                     response.DateTime `json:"as_of"`
	WindowStart              response.DateTime `json:"window_start"`
}

func (h *handler) newProductivityResp(s analytics.Snapshot) productivityResp {
	return productivityResp{
		TotalFocusMinutes7d:      s.TotalFocusMinutes7d,
		CompletedTasks7d:         s.CompletedTasks7d,
		FocusSessionsCount:       s.FocusSessionsCount,
		AverageProductivityScore: s.AverageProductivityScore,
		AsOf:                     response.DateTime(s.AsOf),
		WindowStart:              response.DateTime(s.WindowStart),
	}
}

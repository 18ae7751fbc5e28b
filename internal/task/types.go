package task

import (
	"time"

	"focusflow/internal/model"
)

// CreateInput is the input for task creation. The owner comes from model.Scope.
type CreateInput struct {
	RawText     string
	Description string
}

// UpdateInput is a partial update; nil fields are left untouched.
type UpdateInput struct {
	ID                       string
	Title                    *string
	Description              *string
	Priority                 *string
	TaskType                 *string
	DueAt                    *time.Time
	ClearDueAt               bool
	EstimatedDurationMinutes *int
	Status                   *string
}

// TaskOutput is the affected task plus the schedule computed right after the change.
type TaskOutput struct {
	Task     model.Task
	Schedule model.Schedule
}

// ListInput filters List. An empty Status lists every task.
type ListInput struct {
	Status string
}

type OptimizeInput struct {
	Limit int
}

// OptimizeOutput is the head of the schedule with the patterns it was ranked against.
type OptimizeOutput struct {
	Tasks           []model.Task
	TotalPending    int
	Profile         model.FocusProfile
	Recommendations []string
	GeneratedAt     time.Time
}

type ParseInput struct {
	RawText string
}

type ParseOutput struct {
	Draft  model.TaskDraft
	Source string
}

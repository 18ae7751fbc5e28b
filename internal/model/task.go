package model

import (
	"strings"
	"time"
)

// Priority is the stated importance of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// IsValid reports whether p is one of the known priorities.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// ParsePriority normalizes s and validates it.
func ParsePriority(s string) (Priority, bool) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	return p, p.IsValid()
}

// TaskType separates work that needs peak focus from work that doesn't.
type TaskType string

const (
	TaskTypeDeep    TaskType = "deep"
	TaskTypeShallow TaskType = "shallow"
)

// IsValid reports whether t is deep or shallow.
func (t TaskType) IsValid() bool {
	return t == TaskTypeDeep || t == TaskTypeShallow
}

// ParseTaskType normalizes s and validates it.
func ParseTaskType(s string) (TaskType, bool) {
	t := TaskType(strings.ToLower(strings.TrimSpace(s)))
	return t, t.IsValid()
}

// TaskStatus is the lifecycle state of a task. Completed is terminal.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

// IsValid reports whether s is a known task status.
func (s TaskStatus) IsValid() bool {
	return s == TaskStatusPending || s == TaskStatusCompleted
}

// ParseTaskStatus normalizes s and validates it.
func ParseTaskStatus(s string) (TaskStatus, bool) {
	st := TaskStatus(strings.ToLower(strings.TrimSpace(s)))
	return st, st.IsValid()
}

// Task is a unit of work owned by a single user.
type Task struct {
	ID                       string     `json:"id"`
	Owner                    string     `json:"owner"`
	Title                    string     `json:"title"`
	Description              string     `json:"description"`
	DueAt                    *time.Time `json:"due_at,omitempty"`
	Priority                 Priority   `json:"priority"`
	TaskType                 TaskType   `json:"task_type"`
	EstimatedDurationMinutes int        `json:"estimated_duration_minutes"`
	ActualDurationMinutes    *int       `json:"actual_duration_minutes,omitempty"`
	Status                   TaskStatus `json:"status"`
	CalendarEventLink        string     `json:"calendar_event_link,omitempty"`
	CreatedAt                time.Time  `json:"created_at"`
	UpdatedAt                time.Time  `json:"updated_at"`
	CompletedAt              *time.Time `json:"completed_at,omitempty"`

	// FocusScore is recomputed by the scheduler on every pass and never stored.
	FocusScore float64 `json:"focus_score"`
}

// IsPending reports whether the task still takes part in scheduling.
func (t Task) IsPending() bool {
	return t.Status == TaskStatusPending
}

// Complete moves the task to its terminal state.
func (t *Task) Complete(at time.Time) {
	t.Status = TaskStatusCompleted
	t.CompletedAt = &at
	t.UpdatedAt = at
}

// TaskDraft is the structured result of parsing a raw task string.
type TaskDraft struct {
	Title                    string     `json:"title"`
	DueAt                    *time.Time `json:"due_at,omitempty"`
	Priority                 Priority   `json:"priority"`
	TaskType                 TaskType   `json:"task_type"`
	EstimatedDurationMinutes int        `json:"estimated_duration_minutes"`
}

// Valid reports whether every field of the draft is populated and in range.
func (d TaskDraft) Valid() bool {
	return strings.TrimSpace(d.Title) != "" &&
		d.Priority.IsValid() &&
		d.TaskType.IsValid() &&
		d.EstimatedDurationMinutes > 0
}

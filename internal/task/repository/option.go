package repository

import (
	"time"

	"focusflow/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	Owner                    string
	Title                    string
	Description              string
	DueAt                    *time.Time
	Priority                 model.Priority
	TaskType                 model.TaskType
	EstimatedDurationMinutes int
	CreatedAt                time.Time
}

// GetOneTaskOptions scopes a lookup to one owner.
type GetOneTaskOptions struct {
	ID    string
	Owner string
}

// ListTasksOptions holds filter parameters for listing an owner's Tasks.
type ListTasksOptions struct {
	Owner  string
	Status model.TaskStatus // empty means any
	// CompletedSince keeps only tasks completed at or after this instant.
	CompletedSince *time.Time
}

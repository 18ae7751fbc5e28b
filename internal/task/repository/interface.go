package repository

import (
	"context"

	"focusflow/internal/model"
)

// Repository is the composed interface for the task domain data store.
type Repository interface {
	TaskRepository
}

// TaskRepository defines all data access methods for the Task entity.
// Lookups that find nothing return a zero Task and a nil error.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	UpdateTask(ctx context.Context, t model.Task) (model.Task, error)
	DeleteTask(ctx context.Context, opt GetOneTaskOptions) error
}

package task

import (
	"context"

	"focusflow/internal/model"
)

// UseCase defines the business logic interface for the task domain.
// Every mutation returns the owner's freshly computed schedule.
type UseCase interface {
	// Create parses raw text into a task, stores it and optionally blocks time in Google Calendar.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (TaskOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (TaskOutput, error)
	Complete(ctx context.Context, sc model.Scope, id string) (TaskOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) (model.Schedule, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Task, error)
	// List returns pending tasks in schedule order, then completed tasks newest first.
	List(ctx context.Context, sc model.Scope, input ListInput) ([]model.Task, error)

	GetSchedule(ctx context.Context, sc model.Scope) (model.Schedule, error)
	// OptimizeSchedule returns the top of the schedule together with focus patterns and hints.
	OptimizeSchedule(ctx context.Context, sc model.Scope, input OptimizeInput) (OptimizeOutput, error)

	// ParsePreview runs the parser without persisting anything.
	ParsePreview(ctx context.Context, sc model.Scope, input ParseInput) (ParseOutput, error)
}

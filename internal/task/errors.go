package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyInput      = errors.New("input text is empty")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidTaskType = errors.New("invalid task type")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidDuration = errors.New("estimated duration must be positive")
	ErrTaskNotFound    = errors.New("task not found")
	ErrTaskCompleted   = errors.New("task is already completed")
)

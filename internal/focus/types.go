package focus

import (
	"time"

	"focusflow/internal/model"
)

// StartInput optionally links the session to a pending task.
type StartInput struct {
	TaskID string
}

// CompleteInput closes an active session with an observed productivity in [0, 1].
// DurationMinutes overrides the elapsed wall-clock time when set.
type CompleteInput struct {
	ID                string
	ProductivityScore float64
	DurationMinutes   *int
}

// CompleteOutput carries everything that changed when a session ended.
type CompleteOutput struct {
	Session model.FocusSession
	Profile model.FocusProfile
	// CompletedTask is set when the linked task was auto-completed.
	CompletedTask *model.Task
	Schedule      model.Schedule
}

type PatternsOutput struct {
	Profile         model.FocusProfile
	Recommendations []string
}

// ActiveSession is returned by GetActive; Session is nil when nothing is running.
type ActiveSession struct {
	Session *model.FocusSession
	Elapsed time.Duration
}

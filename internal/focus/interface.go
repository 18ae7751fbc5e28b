package focus

import (
	"context"

	"focusflow/internal/analytics"
	"focusflow/internal/model"
)

// UseCase defines the focus-session, focus-pattern and analytics operations.
type UseCase interface {
	StartSession(ctx context.Context, sc model.Scope, input StartInput) (model.FocusSession, error)
	// CompleteSession feeds the profile, may complete the linked task and reruns the schedule.
	CompleteSession(ctx context.Context, sc model.Scope, input CompleteInput) (CompleteOutput, error)
	CancelSession(ctx context.Context, sc model.Scope, id string) (model.FocusSession, error)
	GetActive(ctx context.Context, sc model.Scope) (ActiveSession, error)

	GetFocusPatterns(ctx context.Context, sc model.Scope) (PatternsOutput, error)
	GetAnalytics(ctx context.Context, sc model.Scope) (analytics.Snapshot, error)
}

package parser

import (
	"context"
	"time"

	"focusflow/internal/model"
)

// Drafter turns raw task text into a structured draft.
// The rule engine and the upstream language service both implement it.
type Drafter interface {
	Draft(ctx context.Context, rawText string, now time.Time) (model.TaskDraft, error)
}

// Limiter gates upstream calls per key.
type Limiter interface {
	Allow(key string) error
}

package repository

import (
	"context"

	"focusflow/internal/model"
	"focusflow/internal/profile"
	taskRepo "focusflow/internal/task/repository"
)

// Repository is the composed interface for the focus domain data store.
type Repository interface {
	SessionRepository
	profile.Repository
}

// SessionRepository defines all data access methods for FocusSession.
// Lookups that find nothing return a zero FocusSession and a nil error.
type SessionRepository interface {
	CreateSession(ctx context.Context, opt CreateSessionOptions) (model.FocusSession, error)
	GetOneSession(ctx context.Context, opt GetOneSessionOptions) (model.FocusSession, error)
	ListSessions(ctx context.Context, opt ListSessionsOptions) ([]model.FocusSession, error)
	UpdateSession(ctx context.Context, s model.FocusSession) (model.FocusSession, error)
}

// Tx holds repositories bound to one transaction.
type Tx struct {
	Sessions SessionRepository
	Profiles profile.Repository
	Tasks    taskRepo.TaskRepository
}

// Transactor runs fn so that every write made through tx commits together
// or not at all. fn's error is returned unchanged.
type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

package repository

import (
	"time"

	"focusflow/internal/model"
)

type CreateSessionOptions struct {
	Owner     string
	TaskID    string
	StartedAt time.Time
}

// GetOneSessionOptions looks a session up by id, or the owner's active one when ActiveOnly is set.
type GetOneSessionOptions struct {
	ID         string
	Owner      string
	ActiveOnly bool
}

type ListSessionsOptions struct {
	Owner      string
	Status     model.SessionStatus
	EndedSince *time.Time
}

package model

import "time"

// SessionStatus is the lifecycle state of a focus session.
type SessionStatus string

const (
	SessionStatusActive    SessionStatus = "active"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusCancelled SessionStatus = "cancelled"
)

// FocusSession is a tracked interval of work.
type FocusSession struct {
	ID                string        `json:"id"`
	Owner             string        `json:"owner"`
	TaskID            string        `json:"task_id,omitempty"`
	StartedAt         time.Time     `json:"started_at"`
	EndedAt           *time.Time    `json:"ended_at,omitempty"`
	Status            SessionStatus `json:"status"`
	DurationMinutes   int           `json:"duration_minutes"`
	ProductivityScore float64       `json:"productivity_score"`
	Window            Window        `json:"window,omitempty"`
}

// IsActive reports whether the session is still running.
func (s FocusSession) IsActive() bool {
	return s.Status == SessionStatusActive
}

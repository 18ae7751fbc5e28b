package parser

import (
	"time"

	"focusflow/internal/model"
)

// Source records which drafter produced a result.
type Source string

const (
	SourceUpstream Source = "upstream"
	SourceRules    Source = "rules"
)

// Result is a parsed draft plus where it came from.
type Result struct {
	Draft  model.TaskDraft
	Source Source
}

// Config configures New.
type Config struct {
	// UpstreamTimeout bounds a single upstream attempt.
	UpstreamTimeout time.Duration
}

// DefaultUpstreamTimeout is used when Config.UpstreamTimeout is zero.
const DefaultUpstreamTimeout = 2 * time.Second

// upstreamDraft is the JSON shape the language service is asked to return.
type upstreamDraft struct {
	Title                    string `json:"title"`
	DueAt                    string `json:"due_at"`
	Priority                 string `json:"priority"`
	TaskType                 string `json:"task_type"`
	EstimatedDurationMinutes int    `json:"estimated_duration_minutes"`
}

type span struct {
	start, end int
}

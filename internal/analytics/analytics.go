// Package analytics derives rolling summaries from task and session history.
package analytics

import (
	"math"
	"time"

	"focusflow/internal/model"
)

// Window is the trailing period every snapshot covers.
const Window = 7 * 24 * time.Hour

// Snapshot is a read-only view over history as of a point in time.
type Snapshot struct {
	Owner                    string    `json:"owner"`
	AsOf                     time.Time `json:"as_of"`
	WindowStart              time.Time `json:"window_start"`
	TotalFocusMinutes7d      int       `json:"total_focus_minutes_7d"`
	CompletedTasks7d         int       `json:"completed_tasks_7d"`
	FocusSessionsCount       int       `json:"focus_sessions_count"`
	AverageProductivityScore float64   `json:"average_productivity_score"`
}

// Summarize aggregates the trailing seven days ending at now, inclusive at both ends.
// Entities belonging to other owners are ignored.
func Summarize(owner string, tasks []model.Task, sessions []model.FocusSession, now time.Time) Snapshot {
	start := now.Add(-Window)
	snap := Snapshot{
		Owner:       owner,
		AsOf:        now,
		WindowStart: start,
	}

	var productivitySum float64
	for _, s := range sessions {
		if s.Owner != owner || s.Status != model.SessionStatusCompleted || s.EndedAt == nil {
			continue
		}
		if !inWindow(*s.EndedAt, start, now) {
			continue
		}
		snap.FocusSessionsCount++
		snap.TotalFocusMinutes7d += s.DurationMinutes
		productivitySum += s.ProductivityScore
	}

	for _, t := range tasks {
		if t.Owner != owner || t.Status != model.TaskStatusCompleted || t.CompletedAt == nil {
			continue
		}
		if inWindow(*t.CompletedAt, start, now) {
			snap.CompletedTasks7d++
		}
	}

	if snap.FocusSessionsCount > 0 {
		snap.AverageProductivityScore = round2(productivitySum / float64(snap.FocusSessionsCount))
	}
	return snap
}

func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

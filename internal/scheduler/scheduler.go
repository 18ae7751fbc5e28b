// Package scheduler orders a user's pending tasks by focus score.
package scheduler

import (
	"fmt"
	"sort"
	"time"

	"focusflow/internal/model"
	"focusflow/internal/scoring"
)

// Scheduler ranks tasks. It keeps no state between calls.
type Scheduler struct {
	scorer *scoring.Scorer
}

// New creates a Scheduler backed by scorer.
func New(scorer *scoring.Scorer) *Scheduler {
	return &Scheduler{scorer: scorer}
}

// Schedule scores every pending task and returns them highest score first.
// Ties fall back to earlier due date (unset last), then earlier creation, then id.
// The input slice is not modified.
func (s *Scheduler) Schedule(tasks []model.Task, profile model.FocusProfile, now time.Time) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.IsPending() {
			continue
		}
		t.FocusScore = s.scorer.Score(t, profile, now)
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return Less(out[i], out[j])
	})
	return out
}

// Score rates a single task without ranking it.
func (s *Scheduler) Score(t model.Task, profile model.FocusProfile, now time.Time) float64 {
	return s.scorer.Score(t, profile, now)
}

// Less reports whether a ranks before b given already computed focus scores.
func Less(a, b model.Task) bool {
	if a.FocusScore != b.FocusScore {
		return a.FocusScore > b.FocusScore
	}

	switch {
	case a.DueAt != nil && b.DueAt == nil:
		return true
	case a.DueAt == nil && b.DueAt != nil:
		return false
	case a.DueAt != nil && b.DueAt != nil && !a.DueAt.Equal(*b.DueAt):
		return a.DueAt.Before(*b.DueAt)
	}

	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID < b.ID
}

// Recommend turns a profile into short scheduling hints.
func (s *Scheduler) Recommend(profile model.FocusProfile) []string {
	peak := profile.Peak()
	recs := []string{
		fmt.Sprintf("Your peak focus time appears to be in the %s (score: %.2f)", peak, profile.Get(peak)),
		fmt.Sprintf("Schedule deep work during the %s %s for best results", peak, windowHours[peak]),
	}

	for _, w := range []model.Window{model.WindowMorning, model.WindowAfternoon, model.WindowEvening} {
		if w == peak {
			continue
		}
		v := profile.Get(w)
		recs = append(recs, fmt.Sprintf("%s focus: %.2f - %s", titleCase(w), v, suitability(v)))
	}

	if profile.Observations == 0 {
		recs = append(recs, "Complete a few focus sessions so these patterns reflect your own habits")
	}
	return recs
}

var windowHours = map[model.Window]string{
	model.WindowMorning:   "(05:00-12:00)",
	model.WindowAfternoon: "(12:00-18:00)",
	model.WindowEvening:   "(18:00-05:00)",
}

func suitability(v float64) string {
	switch {
	case v >= 0.7:
		return "good for deep work"
	case v >= 0.4:
		return "good for moderate complexity tasks"
	default:
		return "ideal for shallow work and planning"
	}
}

func titleCase(w model.Window) string {
	s := string(w)
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

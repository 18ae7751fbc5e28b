// Package scoring computes the dimensionless focus score of a task.
package scoring

import (
	"errors"
	"math"
	"time"

	"focusflow/internal/model"
)

const (
	DefaultUrgencyWeight  = 0.4
	DefaultPriorityWeight = 0.35
	DefaultFocusWeight    = 0.25

	// DefaultHorizon is how far ahead a due date starts to raise urgency.
	DefaultHorizon = 72 * time.Hour

	// shallowAlignment is the flat focus signal for work that doesn't need peak focus.
	shallowAlignment = 0.5
)

var (
	ErrNegativeWeight = errors.New("scoring weights must be non-negative")
	ErrZeroWeights    = errors.New("scoring weights must not all be zero")
	ErrInvalidHorizon = errors.New("urgency horizon must be positive")
)

var priorityWeights = map[model.Priority]float64{
	model.PriorityUrgent: 1.0,
	model.PriorityHigh:   0.75,
	model.PriorityMedium: 0.5,
	model.PriorityLow:    0.25,
}

// Weights are the relative contributions of the three signals.
type Weights struct {
	Urgency  float64
	Priority float64
	Focus    float64
}

// DefaultWeights returns 0.4 urgency, 0.35 priority, 0.25 focus alignment.
func DefaultWeights() Weights {
	return Weights{
		Urgency:  DefaultUrgencyWeight,
		Priority: DefaultPriorityWeight,
		Focus:    DefaultFocusWeight,
	}
}

// Normalize rescales w so its components sum to 1.
func (w Weights) Normalize() (Weights, error) {
	if w.Urgency < 0 || w.Priority < 0 || w.Focus < 0 {
		return Weights{}, ErrNegativeWeight
	}
	sum := w.Urgency + w.Priority + w.Focus
	if sum == 0 {
		return Weights{}, ErrZeroWeights
	}
	return Weights{
		Urgency:  w.Urgency / sum,
		Priority: w.Priority / sum,
		Focus:    w.Focus / sum,
	}, nil
}

// Scorer is a pure function of (task, profile, now). It holds only configuration.
type Scorer struct {
	weights Weights
	horizon time.Duration
	loc     *time.Location
}

// Config configures a Scorer. Zero values select the defaults.
type Config struct {
	Weights  Weights
	Horizon  time.Duration
	Location *time.Location
}

// New validates cfg and builds a Scorer.
func New(cfg Config) (*Scorer, error) {
	w := cfg.Weights
	if w == (Weights{}) {
		w = DefaultWeights()
	}
	w, err := w.Normalize()
	if err != nil {
		return nil, err
	}

	horizon := cfg.Horizon
	if horizon == 0 {
		horizon = DefaultHorizon
	}
	if horizon < 0 {
		return nil, ErrInvalidHorizon
	}

	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}

	return &Scorer{weights: w, horizon: horizon, loc: loc}, nil
}

// Weights returns the normalized weights in use.
func (s *Scorer) Weights() Weights {
	return s.weights
}

// Location returns the timezone used to pick the current window of day.
func (s *Scorer) Location() *time.Location {
	return s.loc
}

// Score returns the focus score of t in [0,1].
func (s *Scorer) Score(t model.Task, profile model.FocusProfile, now time.Time) float64 {
	b := s.Breakdown(t, profile, now)
	return b.Total
}

// Breakdown exposes each normalized signal next to the weighted total.
type Breakdown struct {
	Urgency        float64
	Priority       float64
	FocusAlignment float64
	Total          float64
}

// Breakdown computes the individual signals and their weighted sum.
func (s *Scorer) Breakdown(t model.Task, profile model.FocusProfile, now time.Time) Breakdown {
	b := Breakdown{
		Urgency:        Urgency(t.DueAt, now, s.horizon),
		Priority:       PriorityWeight(t.Priority),
		FocusAlignment: FocusAlignment(t.TaskType, profile, model.WindowOf(now.In(s.loc))),
	}
	b.Total = clamp(
		s.weights.Urgency*b.Urgency+
			s.weights.Priority*b.Priority+
			s.weights.Focus*b.FocusAlignment,
		0, 1)
	return b
}

// Urgency is 1 - hoursRemaining/horizon clamped to [0,1]; 0 with no due date.
func Urgency(dueAt *time.Time, now time.Time, horizon time.Duration) float64 {
	if dueAt == nil || horizon <= 0 {
		return 0
	}
	remaining := dueAt.Sub(now).Hours()
	return clamp(1-remaining/horizon.Hours(), 0, 1)
}

// PriorityWeight maps a priority to its fixed weight. Unknown values score as medium.
func PriorityWeight(p model.Priority) float64 {
	if w, ok := priorityWeights[p]; ok {
		return w
	}
	return priorityWeights[model.PriorityMedium]
}

// FocusAlignment rewards deep work with the profile score of the current window.
func FocusAlignment(tt model.TaskType, profile model.FocusProfile, w model.Window) float64 {
	if tt != model.TaskTypeDeep {
		return shallowAlignment
	}
	return clamp(profile.Get(w), 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

// Package profile maintains each user's smoothed productivity per window of day.
package profile

import (
	"context"
	"fmt"
	"math"
	"time"

	"focusflow/internal/model"
)

// DefaultAlpha weights a new observation against the running average.
const DefaultAlpha = 0.3

// Store applies observations to profiles with an exponential moving average.
// Observe is a read-modify-write; callers serialize it per owner.
type Store struct {
	repo  Repository
	alpha float64
}

// NewStore builds a Store. alpha must lie in (0, 1].
func NewStore(repo Repository, alpha float64) (*Store, error) {
	if !(alpha > 0 && alpha <= 1) {
		return nil, ErrInvalidAlpha
	}
	return &Store{repo: repo, alpha: alpha}, nil
}

// WithRepository returns a Store with the same alpha that reads and writes
// through repo, typically one bound to a transaction.
func (s *Store) WithRepository(repo Repository) *Store {
	return &Store{repo: repo, alpha: s.alpha}
}

// Get returns owner's profile, or the neutral profile if nothing was observed yet.
func (s *Store) Get(ctx context.Context, owner string) (model.FocusProfile, error) {
	p, found, err := s.repo.GetProfile(ctx, owner)
	if err != nil {
		return model.FocusProfile{}, fmt.Errorf("profile.Get: %w", err)
	}
	if !found {
		return model.NewFocusProfile(owner), nil
	}
	return p, nil
}

// Observe folds score into the owner's bucket for w and persists the result.
func (s *Store) Observe(ctx context.Context, owner string, w model.Window, score float64, at time.Time) (model.FocusProfile, error) {
	if math.IsNaN(score) || score < 0 || score > 1 {
		return model.FocusProfile{}, ErrInvalidScore
	}

	p, err := s.Get(ctx, owner)
	if err != nil {
		return model.FocusProfile{}, err
	}

	p = Apply(p, w, score, s.alpha)
	p.LastUpdated = at

	if err := s.repo.SaveProfile(ctx, p); err != nil {
		return model.FocusProfile{}, fmt.Errorf("profile.Observe: %w", err)
	}
	return p, nil
}

// Apply returns p with window w smoothed towards observed.
func Apply(p model.FocusProfile, w model.Window, observed, alpha float64) model.FocusProfile {
	p.Set(w, Smooth(p.Get(w), observed, alpha))
	p.Observations++
	return p
}

// Smooth computes alpha*observed + (1-alpha)*old, kept inside [0,1].
func Smooth(old, observed, alpha float64) float64 {
	v := alpha*observed + (1-alpha)*old
	return math.Max(0, math.Min(1, v))
}

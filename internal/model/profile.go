package model

import "time"

// Window is one of the three daily focus windows.
type Window string

const (
	WindowMorning   Window = "morning"
	WindowAfternoon Window = "afternoon"
	WindowEvening   Window = "evening"
)

// NeutralFocus is the value every window starts at before any observation.
const NeutralFocus = 0.5

// WindowOf returns the window containing t's wall-clock hour:
// [05:00,12:00) morning, [12:00,18:00) afternoon, otherwise evening.
func WindowOf(t time.Time) Window {
	h := t.Hour()
	switch {
	case h >= 5 && h < 12:
		return WindowMorning
	case h >= 12 && h < 18:
		return WindowAfternoon
	default:
		return WindowEvening
	}
}

// FocusProfile is a per-user smoothed productivity estimate per window.
type FocusProfile struct {
	Owner        string    `json:"owner"`
	Morning      float64   `json:"morning"`
	Afternoon    float64   `json:"afternoon"`
	Evening      float64   `json:"evening"`
	Observations int       `json:"observations"`
	LastUpdated  time.Time `json:"last_updated"`
}

// NewFocusProfile returns the neutral profile for owner.
func NewFocusProfile(owner string) FocusProfile {
	return FocusProfile{
		Owner:     owner,
		Morning:   NeutralFocus,
		Afternoon: NeutralFocus,
		Evening:   NeutralFocus,
	}
}

// Get returns the score for w.
func (p FocusProfile) Get(w Window) float64 {
	switch w {
	case WindowMorning:
		return p.Morning
	case WindowAfternoon:
		return p.Afternoon
	default:
		return p.Evening
	}
}

// Set replaces the score for w.
func (p *FocusProfile) Set(w Window, v float64) {
	switch w {
	case WindowMorning:
		p.Morning = v
	case WindowAfternoon:
		p.Afternoon = v
	default:
		p.Evening = v
	}
}

// Peak returns the window with the highest score. Ties go to the earlier window.
func (p FocusProfile) Peak() Window {
	peak := WindowMorning
	for _, w := range []Window{WindowAfternoon, WindowEvening} {
		if p.Get(w) > p.Get(peak) {
			peak = w
		}
	}
	return peak
}

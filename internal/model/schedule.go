package model

import "time"

// Schedule is an owner's ranked pending tasks at a point in time.
type Schedule struct {
	Owner       string       `json:"owner"`
	GeneratedAt time.Time    `json:"generated_at"`
	Profile     FocusProfile `json:"profile"`
	Tasks       []Task       `json:"tasks"`
}

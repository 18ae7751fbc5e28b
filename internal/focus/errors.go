package focus

import "errors"

var (
	ErrInvalidScore     = errors.New("productivity score must be in [0, 1]")
	ErrInvalidDuration  = errors.New("duration must be positive")
	ErrSessionNotFound  = errors.New("focus session not found")
	ErrSessionActive    = errors.New("another focus session is already active")
	ErrSessionNotActive = errors.New("focus session is not active")
)

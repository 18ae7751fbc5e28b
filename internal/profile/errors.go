package profile

import "errors"

var (
	ErrInvalidAlpha = errors.New("smoothing factor must be in (0, 1]")
	ErrInvalidScore = errors.New("productivity score must be in [0, 1]")
)

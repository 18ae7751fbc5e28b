package http

import (
	"focusflow/internal/focus"
	"focusflow/pkg/log"
)

type handler struct {
	l  log.Logger
	uc focus.UseCase
}

// New creates a new HTTP handler for focus sessions and analytics.
func New(l log.Logger, uc focus.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

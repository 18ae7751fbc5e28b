package middleware

import (
	"focusflow/pkg/log"
)

const (
	HeaderUserID    = "X-User-ID"
	HeaderRequestID = "X-Request-ID"
)

type Middleware struct {
	l log.Logger
}

func New(l log.Logger) Middleware {
	return Middleware{l: l}
}

package parser

import "errors"

var (
	ErrUpstreamDisabled = errors.New("upstream drafter not configured")
	ErrEmptyCompletion  = errors.New("upstream returned no content")
	ErrInvalidDraft     = errors.New("upstream returned an unusable draft")
)

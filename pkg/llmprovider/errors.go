package llmprovider

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrAllProvidersFailed    = errors.New("all providers failed")
	ErrNoProvidersConfigured = errors.New("no providers configured")
	ErrInvalidRequest        = errors.New("invalid request")
	ErrProviderTimeout       = errors.New("provider timeout")
	ErrProviderRateLimited   = errors.New("provider rate limited")
)

// ProviderError carries the failing provider's name. Kind is one of the
// sentinels above when the failure could be classified; errors.Is matches
// both Kind and the underlying Err.
type ProviderError struct {
	Provider string
	Kind     error
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Kind != nil {
		return fmt.Sprintf("provider %s: %v: %v", e.Provider, e.Kind, e.Err)
	}
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() []error {
	if e.Kind == nil {
		return []error{e.Err}
	}
	return []error{e.Kind, e.Err}
}

// retryable reports whether another attempt on the same provider may succeed.
// Rejected requests and quota errors go straight to the next provider.
func retryable(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrProviderRateLimited):
		return false
	case errors.Is(err, context.Canceled):
		return false
	}
	return true
}

package gemini

import (
	"context"
	"fmt"
	"net/http"
)

// IGemini is the generateContent surface of the Gemini API.
type IGemini interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New validates cfg and returns a client safe for concurrent use.
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}

// APIError is a non-200 answer from the API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini: API error %d: %s", e.StatusCode, e.Body)
}

// RateLimited reports a 429 quota rejection.
func (e *APIError) RateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// BadRequest reports a request the API will never accept as sent.
func (e *APIError) BadRequest() bool {
	return e.StatusCode == http.StatusBadRequest
}

package gemini

import "time"

const (
	DefaultModel  = "gemini-2.5-flash"
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout caps one HTTP call. Callers drafting tasks usually set a
	// tighter context deadline on top of it.
	DefaultTimeout = 10 * time.Second

	mimeTypeJSON = "application/json"
)

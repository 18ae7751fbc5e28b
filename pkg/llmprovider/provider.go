package llmprovider

import "context"

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request represents a normalized LLM generation request
type Request struct {
	SystemInstruction *Message
	Messages          []Message
	Temperature       float64
	MaxTokens         int
	// JSONOutput asks providers that support it for a JSON-only answer.
	JSONOutput bool
}

// Message represents a conversation message
type Message struct {
	Role  string // "user", "model", "system"
	Parts []Part
}

// Part represents a text message part
type Part struct {
	Text string
}

// Response represents a normalized LLM generation response
type Response struct {
	Content      Message
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Text returns the concatenated text of every part.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	var out string
	for _, p := range r.Content.Parts {
		out += p.Text
	}
	return out
}

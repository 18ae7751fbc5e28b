package llmprovider

import (
	"context"
	"errors"

	"focusflow/pkg/gemini"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: toGeminiContent(req.SystemInstruction),
		Messages:          toGeminiContents(req.Messages),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
		JSONOutput:        req.JSONOutput,
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Kind: classifyGemini(err), Err: err}
	}

	return &Response{
		Content:      fromGeminiContent(resp.Content),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

func toGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
	}
	return &gemini.Content{Role: msg.Role, Parts: parts}
}

func toGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, len(msgs))
	for i := range msgs {
		contents[i] = *toGeminiContent(&msgs[i])
	}
	return contents
}

func fromGeminiContent(content gemini.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
	}
	return Message{Role: content.Role, Parts: parts}
}

func classifyGemini(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrProviderTimeout
	}
	var apiErr *gemini.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.RateLimited():
			return ErrProviderRateLimited
		case apiErr.BadRequest():
			return ErrInvalidRequest
		}
	}
	return nil
}

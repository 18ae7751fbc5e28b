package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"

	"focusflow/pkg/gemini"
)

type mockProvider struct {
	name      string
	failUntil int // fail the first N calls; -1 always fails
	callCount int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.failUntil < 0 || m.callCount <= m.failUntil {
		return nil, errors.New("mock provider error")
	}
	return &Response{
		Content:      Message{Role: "model", Parts: []Part{{Text: "hi from " + m.name}}},
		ProviderName: m.name,
	}, nil
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return m.name + "-model" }

// mockLogger counts the formatted log calls the manager makes.
type mockLogger struct {
	infos, warns int
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  { m.infos++ }
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)  { m.warns++ }
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                  {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

func helloRequest() *Request {
	return &Request{Messages: []Message{{Role: "user", Parts: []Part{{Text: "Hello"}}}}}
}

func TestManagerGenerateContent(t *testing.T) {
	tests := []struct {
		name          string
		primaryFail   int
		secondaryFail int
		fallback      bool
		wantProvider  string
		wantErr       error
		wantCalls     [2]int
		wantWarns     int
	}{
		{name: "primary succeeds", primaryFail: 0, fallback: true, wantProvider: "primary", wantCalls: [2]int{1, 0}},
		{name: "primary succeeds on retry", primaryFail: 1, fallback: true, wantProvider: "primary", wantCalls: [2]int{2, 0}},
		{name: "falls back to secondary", primaryFail: -1, fallback: true, wantProvider: "secondary", wantCalls: [2]int{2, 1}, wantWarns: 1},
		{name: "all fail", primaryFail: -1, secondaryFail: -1, fallback: true, wantErr: ErrAllProvidersFailed, wantCalls: [2]int{2, 2}, wantWarns: 2},
		{name: "fallback disabled", primaryFail: -1, fallback: false, wantErr: ErrAllProvidersFailed, wantCalls: [2]int{2, 0}, wantWarns: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary := &mockProvider{name: "primary", failUntil: tt.primaryFail}
			secondary := &mockProvider{name: "secondary", failUntil: tt.secondaryFail}
			logger := &mockLogger{}
			m := NewManager([]Provider{primary, secondary}, &Config{
				FallbackEnabled: tt.fallback,
				RetryAttempts:   2,
				RetryDelay:      time.Millisecond,
			}, logger)

			resp, err := m.GenerateContent(context.Background(), helloRequest())
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if resp.ProviderName != tt.wantProvider {
					t.Errorf("provider = %s, want %s", resp.ProviderName, tt.wantProvider)
				}
				if logger.infos != 1 {
					t.Errorf("info logs = %d, want 1", logger.infos)
				}
			}
			if got := [2]int{primary.callCount, secondary.callCount}; got != tt.wantCalls {
				t.Errorf("calls = %v, want %v", got, tt.wantCalls)
			}
			if logger.warns != tt.wantWarns {
				t.Errorf("warn logs = %d, want %d", logger.warns, tt.wantWarns)
			}
		})
	}
}

func TestManagerRejects(t *testing.T) {
	m := NewManager(nil, nil, &mockLogger{})
	if _, err := m.GenerateContent(context.Background(), helloRequest()); !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("err = %v, want ErrNoProvidersConfigured", err)
	}

	m = NewManager([]Provider{&mockProvider{name: "p"}}, nil, &mockLogger{})
	if _, err := m.GenerateContent(context.Background(), &Request{}); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("err = %v, want ErrInvalidRequest", err)
	}
}

func TestManagerHonoursCancelledContext(t *testing.T) {
	p := &mockProvider{name: "p"}
	m := NewManager([]Provider{p}, &Config{FallbackEnabled: true}, &mockLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := m.GenerateContent(ctx, helloRequest()); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if p.callCount != 0 {
		t.Errorf("provider called %d times after cancel", p.callCount)
	}
}

type fakeGemini struct {
	got *gemini.Request
	err error
}

func (f *fakeGemini) GenerateContent(ctx context.Context, req *gemini.Request) (*gemini.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &gemini.Response{
		Content: gemini.Content{Role: "model", Parts: []gemini.Part{{Text: "{}"}}},
		Usage:   gemini.Usage{InputTokens: 4, OutputTokens: 1, TotalTokens: 5},
	}, nil
}

func (f *fakeGemini) Model() string { return "gemini-test" }

func TestGeminiAdapter(t *testing.T) {
	fake := &fakeGemini{}
	a := NewGeminiAdapter(fake)

	req := helloRequest()
	req.SystemInstruction = &Message{Role: "system", Parts: []Part{{Text: "sys"}}}
	req.JSONOutput = true

	resp, err := a.GenerateContent(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text() != "{}" || resp.ModelName != "gemini-test" || resp.Usage.TotalTokens != 5 {
		t.Errorf("unexpected response %+v", resp)
	}
	if !fake.got.JSONOutput || fake.got.SystemInstruction.Parts[0].Text != "sys" {
		t.Errorf("request not forwarded: %+v", fake.got)
	}

	fake.err = errors.New("quota")
	_, err = a.GenerateContent(context.Background(), req)
	var perr *ProviderError
	if !errors.As(err, &perr) || perr.Provider != "gemini" {
		t.Errorf("err = %v, want ProviderError", err)
	}
}

func TestGeminiAdapterClassifiesErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "quota", err: &gemini.APIError{StatusCode: 429}, want: ErrProviderRateLimited},
		{name: "bad request", err: &gemini.APIError{StatusCode: 400}, want: ErrInvalidRequest},
		{name: "deadline", err: context.DeadlineExceeded, want: ErrProviderTimeout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewGeminiAdapter(&fakeGemini{err: tt.err})
			_, err := a.GenerateContent(context.Background(), helloRequest())
			if !errors.Is(err, tt.want) || !errors.Is(err, tt.err) {
				t.Errorf("err = %v, want %v wrapping %v", err, tt.want, tt.err)
			}
		})
	}

	a := NewGeminiAdapter(&fakeGemini{err: &gemini.APIError{StatusCode: 500}})
	_, err := a.GenerateContent(context.Background(), helloRequest())
	var perr *ProviderError
	if !errors.As(err, &perr) || perr.Kind != nil {
		t.Errorf("5xx should stay unclassified, got %v", err)
	}
}

type rateLimitedProvider struct{ calls int }

func (p *rateLimitedProvider) GenerateContent(context.Context, *Request) (*Response, error) {
	p.calls++
	return nil, &ProviderError{Provider: "limited", Kind: ErrProviderRateLimited, Err: errors.New("429")}
}
func (p *rateLimitedProvider) Name() string  { return "limited" }
func (p *rateLimitedProvider) Model() string { return "limited-model" }

func TestManagerSkipsRetryWhenRateLimited(t *testing.T) {
	limited := &rateLimitedProvider{}
	backup := &mockProvider{name: "backup"}
	m := NewManager([]Provider{limited, backup}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      time.Millisecond,
	}, &mockLogger{})

	resp, err := m.GenerateContent(context.Background(), helloRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if limited.calls != 1 {
		t.Errorf("rate limited provider called %d times, want 1", limited.calls)
	}
	if resp.ProviderName != "backup" {
		t.Errorf("provider = %q, want backup", resp.ProviderName)
	}
}

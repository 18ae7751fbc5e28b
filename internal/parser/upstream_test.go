package parser

import (
	"context"
	"errors"
	"testing"
	"time"

	"focusflow/internal/model"
	"focusflow/pkg/llmprovider"
)

type fakeGenerator struct {
	text  string
	parts []string // overrides text when set
	err   error
	req   *llmprovider.Request
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	parts := []llmprovider.Part{{Text: f.text}}
	if f.parts != nil {
		parts = parts[:0]
		for _, p := range f.parts {
			parts = append(parts, llmprovider.Part{Text: p})
		}
	}
	return &llmprovider.Response{
		Content: llmprovider.Message{Role: "model", Parts: parts},
	}, nil
}

func TestDecodeDraft(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
		wantDue bool
	}{
		{
			name: "plain object",
			text: `{"title":"Write report","due_at":"2024-05-02T14:00:00Z","priority":"urgent","task_type":"deep","estimated_duration_minutes":60}`,
			wantDue: true,
		},
		{
			name: "fenced array",
			text: "Here you go:\n```json\n[{\"title\":\"Call client\",\"due_at\":\"\",\"priority\":\"Medium\",\"task_type\":\"shallow\",\"estimated_duration_minutes\":15}]\n```",
		},
		{
			name: "prose around object",
			text: `Sure! {"title":"Call client","priority":"low","task_type":"shallow","estimated_duration_minutes":10} Done.`,
		},
		{name: "empty array", text: `[]`, wantErr: true},
		{name: "not json", text: `I could not parse that`, wantErr: true},
		{
			name:    "unknown priority",
			text:    `{"title":"x","priority":"whenever","task_type":"deep","estimated_duration_minutes":10}`,
			wantErr: true,
		},
		{
			name:    "bad due date",
			text:    `{"title":"x","due_at":"tomorrow","priority":"low","task_type":"deep","estimated_duration_minutes":10}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := decodeDraft(tt.text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("decodeDraft() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDraft) {
					t.Errorf("error %v is not ErrInvalidDraft", err)
				}
				return
			}
			if (d.DueAt != nil) != tt.wantDue {
				t.Errorf("DueAt = %v, wantDue %v", d.DueAt, tt.wantDue)
			}
			if !d.Priority.IsValid() {
				t.Errorf("Priority = %q", d.Priority)
			}
		})
	}
}

func TestLLMDrafterDraft(t *testing.T) {
	gen := &fakeGenerator{text: `{"title":"Call client","priority":"high","task_type":"shallow","estimated_duration_minutes":15}`}
	d := NewLLMDrafter(gen, nil)

	got, err := d.Draft(context.Background(), "call client asap", time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Draft() error = %v", err)
	}
	if got.Priority != model.PriorityHigh || got.Title != "Call client" {
		t.Errorf("got %+v", got)
	}
	if gen.req == nil || gen.req.SystemInstruction == nil || len(gen.req.Messages) != 1 {
		t.Fatalf("unexpected request %+v", gen.req)
	}

	gen.text = "  "
	if _, err := d.Draft(context.Background(), "x", time.Now()); !errors.Is(err, ErrEmptyCompletion) {
		t.Errorf("empty completion error = %v", err)
	}

	gen.err = errors.New("provider down")
	if _, err := d.Draft(context.Background(), "x", time.Now()); err == nil {
		t.Error("expected error from provider")
	}
}

func TestLLMDrafterJoinsParts(t *testing.T) {
	tests := []struct {
		name    string
		parts   []string
		wantErr error
	}{
		{
			name:  "answer split mid object",
			parts: []string{"```json\n{\"title\":\"Write quarterly", " report\",\"priority\":\"urgent\",", "\"task_type\":\"deep\",\"estimated_duration_minutes\":120}\n```"},
		},
		{
			name:  "empty first part",
			parts: []string{"", `{"title":"Write quarterly report","priority":"urgent","task_type":"deep","estimated_duration_minutes":120}`},
		},
		{name: "no parts", parts: []string{}, wantErr: ErrEmptyCompletion},
		{name: "blank parts", parts: []string{" ", "\n"}, wantErr: ErrEmptyCompletion},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewLLMDrafter(&fakeGenerator{parts: tc.parts}, nil)
			got, err := d.Draft(context.Background(), "quarterly report", time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("err = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Draft() error = %v", err)
			}
			if got.Title != "Write quarterly report" || got.Priority != model.PriorityUrgent || got.EstimatedDurationMinutes != 120 {
				t.Errorf("got %+v", got)
			}
		})
	}
}

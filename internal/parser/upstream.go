package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"focusflow/internal/model"
	"focusflow/pkg/llmprovider"
)

// Generator is the slice of llmprovider.Manager the upstream drafter needs.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// LLMDrafter asks an upstream language service to draft the task.
type LLMDrafter struct {
	llm Generator
	loc *time.Location
}

// NewLLMDrafter creates an upstream drafter. loc is the timezone the prompt's
// reference time is expressed in.
func NewLLMDrafter(llm Generator, loc *time.Location) *LLMDrafter {
	if loc == nil {
		loc = time.UTC
	}
	return &LLMDrafter{llm: llm, loc: loc}
}

// Draft implements Drafter. Any response that isn't a complete, valid draft is an error.
func (d *LLMDrafter) Draft(ctx context.Context, rawText string, now time.Time) (model.TaskDraft, error) {
	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: systemPrompt}},
		},
		Messages: []llmprovider.Message{
			{Role: "user", Parts: []llmprovider.Part{{Text: buildUserPrompt(rawText, now.In(d.loc).Format(time.RFC3339))}}},
		},
		Temperature: 0.2, // Low temperature for deterministic JSON output
		MaxTokens:   512,
		JSONOutput:  true,
	}

	resp, err := d.llm.GenerateContent(ctx, req)
	if err != nil {
		return model.TaskDraft{}, fmt.Errorf("upstream draft: %w", err)
	}
	// Long answers may arrive split across parts.
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return model.TaskDraft{}, ErrEmptyCompletion
	}

	return decodeDraft(text)
}

// decodeDraft accepts a bare object or a one-element array, optionally fenced.
func decodeDraft(text string) (model.TaskDraft, error) {
	cleaned := sanitizeJSONResponse(text)

	var raw upstreamDraft
	if strings.HasPrefix(cleaned, "[") {
		var list []upstreamDraft
		if err := json.Unmarshal([]byte(cleaned), &list); err != nil {
			return model.TaskDraft{}, fmt.Errorf("%w: %v", ErrInvalidDraft, err)
		}
		if len(list) == 0 {
			return model.TaskDraft{}, ErrInvalidDraft
		}
		raw = list[0]
	} else if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return model.TaskDraft{}, fmt.Errorf("%w: %v", ErrInvalidDraft, err)
	}

	priority, _ := model.ParsePriority(raw.Priority)
	taskType, _ := model.ParseTaskType(raw.TaskType)
	draft := model.TaskDraft{
		Title:                    strings.TrimSpace(raw.Title),
		Priority:                 priority,
		TaskType:                 taskType,
		EstimatedDurationMinutes: raw.EstimatedDurationMinutes,
	}

	if due := strings.TrimSpace(raw.DueAt); due != "" {
		t, err := time.Parse(time.RFC3339, due)
		if err != nil {
			return model.TaskDraft{}, fmt.Errorf("%w: due_at %q: %v", ErrInvalidDraft, due, err)
		}
		draft.DueAt = &t
	}

	if !draft.Valid() {
		return model.TaskDraft{}, ErrInvalidDraft
	}
	return draft, nil
}

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
// that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	if matches := codeFenceRe.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	// No code block: find first [ or { and last ] or }
	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return strings.TrimSpace(text)
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(text[start : end+1])
}

package usecase

import (
	"context"
	"strings"

	"focusflow/internal/model"
	"focusflow/internal/task"
)

// ParsePreview shows what Create would store without storing it.
func (uc *implUseCase) ParsePreview(ctx context.Context, sc model.Scope, input task.ParseInput) (task.ParseOutput, error) {
	rawText := strings.TrimSpace(input.RawText)
	if rawText == "" {
		return task.ParseOutput{}, task.ErrEmptyInput
	}

	res := uc.parser.Parse(ctx, sc.UserID, rawText, uc.now())
	return task.ParseOutput{Draft: res.Draft, Source: string(res.Source)}, nil
}

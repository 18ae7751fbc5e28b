package usecase

import (
	"context"
	"strings"

	"focusflow/internal/model"
	"focusflow/internal/task"
	repo "focusflow/internal/task/repository"
)

// Create parses the raw text, stores the task and returns the new schedule.
// Parsing happens before the owner lock is taken.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.TaskOutput, error) {
	rawText := strings.TrimSpace(input.RawText)
	if rawText == "" {
		return task.TaskOutput{}, task.ErrEmptyInput
	}

	now := uc.now()
	res := uc.parser.Parse(ctx, sc.UserID, rawText, now)
	uc.l.Debugf(ctx, "uc.Create: parsed via %s: %+v", res.Source, res.Draft)

	unlock := uc.locks.Lock(sc.UserID)
	defer unlock()

	t, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		Owner:                    sc.UserID,
		Title:                    res.Draft.Title,
		Description:              strings.TrimSpace(input.Description),
		DueAt:                    res.Draft.DueAt,
		Priority:                 res.Draft.Priority,
		TaskType:                 res.Draft.TaskType,
		EstimatedDurationMinutes: res.Draft.EstimatedDurationMinutes,
		CreatedAt:                now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.TaskOutput{}, err
	}

	// Attempt to block time in Google Calendar (non-blocking on failure)
	if link := uc.tryCreateCalendarEvent(ctx, t); link != "" {
		t.CalendarEventLink = link
		t.UpdatedAt = uc.now()
		if t, err = uc.repo.UpdateTask(ctx, t); err != nil {
			uc.l.Errorf(ctx, "uc.Create UpdateTask: %v", err)
			return task.TaskOutput{}, err
		}
	}

	return uc.outputWithSchedule(ctx, sc.UserID, t)
}

package usecase

import (
	"context"
	"strings"
	"time"

	"focusflow/internal/model"
	"focusflow/internal/task"
)

// Update applies a partial update. Completed tasks are terminal.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (task.TaskOutput, error) {
	unlock := uc.locks.Lock(sc.UserID)
	defer unlock()

	existing, err := uc.getOwned(ctx, sc.UserID, input.ID)
	if err != nil {
		return task.TaskOutput{}, err
	}
	if !existing.IsPending() {
		return task.TaskOutput{}, task.ErrTaskCompleted
	}

	now := uc.now()
	updated, err := applyUpdate(existing, input, now)
	if err != nil {
		return task.TaskOutput{}, err
	}

	t, err := uc.repo.UpdateTask(ctx, updated)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.TaskOutput{}, err
	}
	return uc.outputWithSchedule(ctx, sc.UserID, t)
}

// applyUpdate validates every provided field before touching t.
func applyUpdate(t model.Task, in task.UpdateInput, now time.Time) (model.Task, error) {
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return model.Task{}, task.ErrEmptyInput
		}
		t.Title = title
	}
	if in.Description != nil {
		t.Description = strings.TrimSpace(*in.Description)
	}
	if in.Priority != nil {
		p, ok := model.ParsePriority(*in.Priority)
		if !ok {
			return model.Task{}, task.ErrInvalidPriority
		}
		t.Priority = p
	}
	if in.TaskType != nil {
		tt, ok := model.ParseTaskType(*in.TaskType)
		if !ok {
			return model.Task{}, task.ErrInvalidTaskType
		}
		t.TaskType = tt
	}
	if in.EstimatedDurationMinutes != nil {
		if *in.EstimatedDurationMinutes <= 0 {
			return model.Task{}, task.ErrInvalidDuration
		}
		t.EstimatedDurationMinutes = *in.EstimatedDurationMinutes
	}
	switch {
	case in.ClearDueAt:
		t.DueAt = nil
	case in.DueAt != nil:
		due := *in.DueAt
		t.DueAt = &due
	}

	t.UpdatedAt = now

	if in.Status != nil {
		st, ok := model.ParseTaskStatus(*in.Status)
		if !ok {
			return model.Task{}, task.ErrInvalidStatus
		}
		if st == model.TaskStatusCompleted {
			t.Complete(now)
		}
	}
	return t, nil
}

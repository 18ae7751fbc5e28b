package usecase

import (
	"context"

	"focusflow/internal/model"
	"focusflow/internal/task"
	repo "focusflow/internal/task/repository"
)

// Complete moves a pending task to completed.
func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, id string) (task.TaskOutput, error) {
	unlock := uc.locks.Lock(sc.UserID)
	defer unlock()

	t, err := uc.getOwned(ctx, sc.UserID, id)
	if err != nil {
		return task.TaskOutput{}, err
	}
	if !t.IsPending() {
		return task.TaskOutput{}, task.ErrTaskCompleted
	}

	t.Complete(uc.now())
	if t, err = uc.repo.UpdateTask(ctx, t); err != nil {
		uc.l.Errorf(ctx, "uc.Complete UpdateTask: %v", err)
		return task.TaskOutput{}, err
	}
	return uc.outputWithSchedule(ctx, sc.UserID, t)
}

// Delete removes a task and returns the remaining schedule.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) (model.Schedule, error) {
	unlock := uc.locks.Lock(sc.UserID)
	defer unlock()

	if _, err := uc.getOwned(ctx, sc.UserID, id); err != nil {
		return model.Schedule{}, err
	}
	if err := uc.repo.DeleteTask(ctx, repo.GetOneTaskOptions{ID: id, Owner: sc.UserID}); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return model.Schedule{}, err
	}
	return uc.schedule(ctx, sc.UserID, uc.now())
}

// Detail returns one task; pending tasks carry their current focus score.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	t, err := uc.getOwned(ctx, sc.UserID, id)
	if err != nil {
		return model.Task{}, err
	}
	if !t.IsPending() {
		return t, nil
	}

	profile, err := uc.profiles.Get(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail profiles.Get: %v", err)
		return model.Task{}, err
	}
	t.FocusScore = uc.sched.Score(t, profile, uc.now())
	return t, nil
}

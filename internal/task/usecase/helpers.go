package usecase

import (
	"context"
	"strings"

	"focusflow/internal/model"
	"focusflow/internal/task"
	repo "focusflow/internal/task/repository"
)

// getOwned loads a task scoped to owner, mapping absence to ErrTaskNotFound.
func (uc *implUseCase) getOwned(ctx context.Context, owner, id string) (model.Task, error) {
	if strings.TrimSpace(id) == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, Owner: owner})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getOwned GetOneTask: %v", err)
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

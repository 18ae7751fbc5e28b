package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"focusflow/internal/model"
	"focusflow/internal/task"
	repo "focusflow/internal/task/repository"
)

// List returns the owner's tasks. Pending tasks keep their schedule order and
// focus score; completed tasks follow, most recently completed first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) ([]model.Task, error) {
	var status model.TaskStatus
	if strings.TrimSpace(input.Status) != "" {
		st, ok := model.ParseTaskStatus(input.Status)
		if !ok {
			return nil, task.ErrInvalidStatus
		}
		status = st
	}

	tasks := []model.Task{}
	if status != model.TaskStatusCompleted {
		s, err := uc.schedule(ctx, sc.UserID, uc.now())
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, s.Tasks...)
	}

	if status != model.TaskStatusPending {
		done, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{Owner: sc.UserID, Status: model.TaskStatusCompleted})
		if err != nil {
			uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
			return nil, err
		}
		sort.SliceStable(done, func(i, j int) bool {
			return completedAt(done[i]).After(completedAt(done[j]))
		})
		tasks = append(tasks, done...)
	}
	return tasks, nil
}

func completedAt(t model.Task) time.Time {
	if t.CompletedAt == nil {
		return t.UpdatedAt
	}
	return *t.CompletedAt
}

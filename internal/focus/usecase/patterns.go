package usecase

import (
	"context"

	"focusflow/internal/analytics"
	"focusflow/internal/focus"
	focusRepo "focusflow/internal/focus/repository"
	"focusflow/internal/model"
	taskRepo "focusflow/internal/task/repository"
)

// GetFocusPatterns returns the profile and the hints derived from it.
func (uc *implUseCase) GetFocusPatterns(ctx context.Context, sc model.Scope) (focus.PatternsOutput, error) {
	profile, err := uc.profiles.Get(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetFocusPatterns profiles.Get: %v", err)
		return focus.PatternsOutput{}, err
	}
	return focus.PatternsOutput{
		Profile:         profile,
		Recommendations: uc.sched.Recommend(profile),
	}, nil
}

// GetAnalytics summarizes the trailing seven days.
func (uc *implUseCase) GetAnalytics(ctx context.Context, sc model.Scope) (analytics.Snapshot, error) {
	now := uc.now()
	since := now.Add(-analytics.Window)

	tasks, err := uc.tasks.ListTasks(ctx, taskRepo.ListTasksOptions{
		Owner:          sc.UserID,
		Status:         model.TaskStatusCompleted,
		CompletedSince: &since,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetAnalytics ListTasks: %v", err)
		return analytics.Snapshot{}, err
	}

	sessions, err := uc.repo.ListSessions(ctx, focusRepo.ListSessionsOptions{
		Owner:      sc.UserID,
		Status:     model.SessionStatusCompleted,
		EndedSince: &since,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetAnalytics ListSessions: %v", err)
		return analytics.Snapshot{}, err
	}

	return analytics.Summarize(sc.UserID, tasks, sessions, now), nil
}

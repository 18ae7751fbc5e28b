package usecase

import (
	"context"
	"time"

	"focusflow/internal/model"
	"focusflow/internal/task"
	repo "focusflow/internal/task/repository"
)

// GetSchedule ranks the owner's pending tasks as of now.
func (uc *implUseCase) GetSchedule(ctx context.Context, sc model.Scope) (model.Schedule, error) {
	return uc.schedule(ctx, sc.UserID, uc.now())
}

// OptimizeSchedule returns the head of the schedule with the profile and hints behind it.
func (uc *implUseCase) OptimizeSchedule(ctx context.Context, sc model.Scope, input task.OptimizeInput) (task.OptimizeOutput, error) {
	limit := input.Limit
	if limit <= 0 || limit > uc.cfg.OptimizeLimit {
		limit = uc.cfg.OptimizeLimit
	}

	s, err := uc.schedule(ctx, sc.UserID, uc.now())
	if err != nil {
		return task.OptimizeOutput{}, err
	}

	top := s.Tasks
	if len(top) > limit {
		top = top[:limit]
	}
	return task.OptimizeOutput{
		Tasks:           top,
		TotalPending:    len(s.Tasks),
		Profile:         s.Profile,
		Recommendations: uc.sched.Recommend(s.Profile),
		GeneratedAt:     s.GeneratedAt,
	}, nil
}

func (uc *implUseCase) schedule(ctx context.Context, owner string, now time.Time) (model.Schedule, error) {
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{Owner: owner, Status: model.TaskStatusPending})
	if err != nil {
		uc.l.Errorf(ctx, "uc.schedule ListTasks: %v", err)
		return model.Schedule{}, err
	}

	profile, err := uc.profiles.Get(ctx, owner)
	if err != nil {
		uc.l.Errorf(ctx, "uc.schedule profiles.Get: %v", err)
		return model.Schedule{}, err
	}

	return model.Schedule{
		Owner:       owner,
		GeneratedAt: now,
		Profile:     profile,
		Tasks:       uc.sched.Schedule(tasks, profile, now),
	}, nil
}

func (uc *implUseCase) outputWithSchedule(ctx context.Context, owner string, t model.Task) (task.TaskOutput, error) {
	s, err := uc.schedule(ctx, owner, uc.now())
	if err != nil {
		return task.TaskOutput{}, err
	}
	for _, st := range s.Tasks {
		if st.ID == t.ID {
			t.FocusScore = st.FocusScore
			break
		}
	}
	return task.TaskOutput{Task: t, Schedule: s}, nil
}

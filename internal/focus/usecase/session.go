package usecase

import (
	"context"
	"math"
	"strings"
	"time"

	"focusflow/internal/focus"
	focusRepo "focusflow/internal/focus/repository"
	"focusflow/internal/model"
	"focusflow/internal/task"
	taskRepo "focusflow/internal/task/repository"
)

// StartSession opens a session. An owner may only run one session at a time.
func (uc *implUseCase) StartSession(ctx context.Context, sc model.Scope, input focus.StartInput) (model.FocusSession, error) {
	unlock := uc.locks.Lock(sc.UserID)
	defer unlock()

	active, err := uc.repo.GetOneSession(ctx, focusRepo.GetOneSessionOptions{Owner: sc.UserID, ActiveOnly: true})
	if err != nil {
		uc.l.Errorf(ctx, "uc.StartSession GetOneSession: %v", err)
		return model.FocusSession{}, err
	}
	if active.ID != "" {
		return model.FocusSession{}, focus.ErrSessionActive
	}

	taskID := strings.TrimSpace(input.TaskID)
	if taskID != "" {
		t, err := uc.tasks.GetOneTask(ctx, taskRepo.GetOneTaskOptions{ID: taskID, Owner: sc.UserID})
		if err != nil {
			uc.l.Errorf(ctx, "uc.StartSession GetOneTask: %v", err)
			return model.FocusSession{}, err
		}
		if t.ID == "" {
			return model.FocusSession{}, task.ErrTaskNotFound
		}
		if !t.IsPending() {
			return model.FocusSession{}, task.ErrTaskCompleted
		}
	}

	fs, err := uc.repo.CreateSession(ctx, focusRepo.CreateSessionOptions{
		Owner:     sc.UserID,
		TaskID:    taskID,
		StartedAt: uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.StartSession CreateSession: %v", err)
		return model.FocusSession{}, err
	}
	return fs, nil
}

// CompleteSession ends an active session, updates the profile for the window it
// started in and, above the threshold, completes the linked task. The three
// writes share one transaction; on failure the session stays active.
func (uc *implUseCase) CompleteSession(ctx context.Context, sc model.Scope, input focus.CompleteInput) (focus.CompleteOutput, error) {
	score := input.ProductivityScore
	if math.IsNaN(score) || score < 0 || score > 1 {
		return focus.CompleteOutput{}, focus.ErrInvalidScore
	}
	if input.DurationMinutes != nil && *input.DurationMinutes <= 0 {
		return focus.CompleteOutput{}, focus.ErrInvalidDuration
	}

	unlock := uc.locks.Lock(sc.UserID)
	defer unlock()

	fs, err := uc.getActive(ctx, sc.UserID, input.ID)
	if err != nil {
		return focus.CompleteOutput{}, err
	}

	now := uc.now()
	fs.EndedAt = &now
	fs.Status = model.SessionStatusCompleted
	fs.ProductivityScore = score
	fs.Window = model.WindowOf(fs.StartedAt.In(uc.cfg.Location))
	fs.DurationMinutes = elapsedMinutes(fs.StartedAt, now)
	if input.DurationMinutes != nil {
		fs.DurationMinutes = *input.DurationMinutes
	}

	var out focus.CompleteOutput
	err = uc.tx.InTx(ctx, func(ctx context.Context, tx focusRepo.Tx) error {
		saved, err := tx.Sessions.UpdateSession(ctx, fs)
		if err != nil {
			uc.l.Errorf(ctx, "uc.CompleteSession UpdateSession: %v", err)
			return err
		}

		profile, err := uc.profiles.WithRepository(tx.Profiles).Observe(ctx, sc.UserID, saved.Window, score, now)
		if err != nil {
			uc.l.Errorf(ctx, "uc.CompleteSession Observe: %v", err)
			return err
		}

		out = focus.CompleteOutput{Session: saved, Profile: profile}
		if saved.TaskID != "" && score > uc.cfg.AutoCompleteThreshold {
			t, err := uc.autoCompleteTask(ctx, tx.Tasks, sc.UserID, saved, now)
			if err != nil {
				return err
			}
			out.CompletedTask = t
		}
		return nil
	})
	if err != nil {
		return focus.CompleteOutput{}, err
	}

	if out.Schedule, err = uc.schedules.GetSchedule(ctx, sc); err != nil {
		uc.l.Errorf(ctx, "uc.CompleteSession GetSchedule: %v", err)
		return focus.CompleteOutput{}, err
	}
	return out, nil
}

// CancelSession ends an active session without recording an observation.
func (uc *implUseCase) CancelSession(ctx context.Context, sc model.Scope, id string) (model.FocusSession, error) {
	unlock := uc.locks.Lock(sc.UserID)
	defer unlock()

	fs, err := uc.getActive(ctx, sc.UserID, id)
	if err != nil {
		return model.FocusSession{}, err
	}

	now := uc.now()
	fs.EndedAt = &now
	fs.Status = model.SessionStatusCancelled
	fs.DurationMinutes = elapsedMinutes(fs.StartedAt, now)

	if fs, err = uc.repo.UpdateSession(ctx, fs); err != nil {
		uc.l.Errorf(ctx, "uc.CancelSession UpdateSession: %v", err)
		return model.FocusSession{}, err
	}
	return fs, nil
}

// GetActive returns the running session, if any.
func (uc *implUseCase) GetActive(ctx context.Context, sc model.Scope) (focus.ActiveSession, error) {
	fs, err := uc.repo.GetOneSession(ctx, focusRepo.GetOneSessionOptions{Owner: sc.UserID, ActiveOnly: true})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetActive GetOneSession: %v", err)
		return focus.ActiveSession{}, err
	}
	if fs.ID == "" {
		return focus.ActiveSession{}, nil
	}
	return focus.ActiveSession{Session: &fs, Elapsed: uc.now().Sub(fs.StartedAt)}, nil
}

// autoCompleteTask closes the linked task if it is still pending.
// A task that was deleted or completed meanwhile is skipped.
func (uc *implUseCase) autoCompleteTask(ctx context.Context, tasks taskRepo.TaskRepository, owner string, fs model.FocusSession, now time.Time) (*model.Task, error) {
	t, err := tasks.GetOneTask(ctx, taskRepo.GetOneTaskOptions{ID: fs.TaskID, Owner: owner})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CompleteSession GetOneTask: %v", err)
		return nil, err
	}
	if t.ID == "" || !t.IsPending() {
		uc.l.Infof(ctx, "uc.CompleteSession: linked task %s not pending, skipping auto-complete", fs.TaskID)
		return nil, nil
	}

	actual := fs.DurationMinutes
	t.ActualDurationMinutes = &actual
	t.Complete(now)

	if t, err = tasks.UpdateTask(ctx, t); err != nil {
		uc.l.Errorf(ctx, "uc.CompleteSession UpdateTask: %v", err)
		return nil, err
	}
	return &t, nil
}

func (uc *implUseCase) getActive(ctx context.Context, owner, id string) (model.FocusSession, error) {
	if strings.TrimSpace(id) == "" {
		return model.FocusSession{}, focus.ErrSessionNotFound
	}
	fs, err := uc.repo.GetOneSession(ctx, focusRepo.GetOneSessionOptions{ID: id, Owner: owner})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getActive GetOneSession: %v", err)
		return model.FocusSession{}, err
	}
	if fs.ID == "" {
		return model.FocusSession{}, focus.ErrSessionNotFound
	}
	if !fs.IsActive() {
		return model.FocusSession{}, focus.ErrSessionNotActive
	}
	return fs, nil
}

// elapsedMinutes rounds to the nearest minute and never goes negative.
func elapsedMinutes(start, end time.Time) int {
	d := end.Sub(start)
	if d < 0 {
		return 0
	}
	return int(d.Round(time.Minute) / time.Minute)
}

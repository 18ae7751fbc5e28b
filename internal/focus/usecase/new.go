package usecase

import (
	"context"
	"time"

	focusRepo "focusflow/internal/focus/repository"
	"focusflow/internal/model"
	"focusflow/internal/profile"
	"focusflow/internal/scheduler"
	taskRepo "focusflow/internal/task/repository"
	"focusflow/pkg/locker"
	pkgLog "focusflow/pkg/log"
)

// DefaultAutoCompleteThreshold is the productivity a linked task needs to be closed by its session.
const DefaultAutoCompleteThreshold = 0.7

// ScheduleReader recomputes an owner's schedule without taking the owner lock.
type ScheduleReader interface {
	GetSchedule(ctx context.Context, sc model.Scope) (model.Schedule, error)
}

type Config struct {
	Location              *time.Location
	AutoCompleteThreshold float64
	Now                   func() time.Time
}

type implUseCase struct {
	l         pkgLog.Logger
	repo      focusRepo.Repository
	tasks     taskRepo.TaskRepository
	profiles  *profile.Store
	schedules ScheduleReader
	sched     *scheduler.Scheduler
	locks     *locker.Keyed
	tx        focusRepo.Transactor
	cfg       Config
}

// New creates a new focus UseCase instance. locks must be the instance shared
// with the task use case. tx must cover the same database as repo and tasks.
func New(
	l pkgLog.Logger,
	repo focusRepo.Repository,
	tasks taskRepo.TaskRepository,
	profiles *profile.Store,
	schedules ScheduleReader,
	sched *scheduler.Scheduler,
	locks *locker.Keyed,
	tx focusRepo.Transactor,
	cfg Config,
) *implUseCase {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.AutoCompleteThreshold <= 0 {
		cfg.AutoCompleteThreshold = DefaultAutoCompleteThreshold
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &implUseCase{
		l:         l,
		repo:      repo,
		tasks:     tasks,
		profiles:  profiles,
		schedules: schedules,
		sched:     sched,
		locks:     locks,
		tx:        tx,
		cfg:       cfg,
	}
}

func (uc *implUseCase) now() time.Time {
	return uc.cfg.Now().In(uc.cfg.Location)
}

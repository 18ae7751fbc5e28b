package usecase

import (
	"context"
	"time"

	"focusflow/internal/model"
	"focusflow/internal/parser"
	"focusflow/internal/scheduler"
	"focusflow/internal/task/repository"
	"focusflow/pkg/gcalendar"
	"focusflow/pkg/locker"
	pkgLog "focusflow/pkg/log"
)

// DefaultOptimizeLimit caps OptimizeSchedule when the caller gives no limit.
const DefaultOptimizeLimit = 10

// Parser drafts a task from raw text. It never fails.
type Parser interface {
	Parse(ctx context.Context, owner, rawText string, now time.Time) parser.Result
}

// ProfileReader returns an owner's focus profile, neutral when unknown.
type ProfileReader interface {
	Get(ctx context.Context, owner string) (model.FocusProfile, error)
}

// Config holds the tunables of the task use case.
type Config struct {
	Location      *time.Location
	OptimizeLimit int
	CalendarID    string
	// Now overrides the clock in tests.
	Now func() time.Time
}

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	parser   Parser
	profiles ProfileReader
	sched    *scheduler.Scheduler
	locks    *locker.Keyed
	calendar gcalendar.ICalendar
	cfg      Config
}

// New creates a new task UseCase instance. calendar may be nil.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	p Parser,
	profiles ProfileReader,
	sched *scheduler.Scheduler,
	locks *locker.Keyed,
	calendar gcalendar.ICalendar,
	cfg Config,
) *implUseCase {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.OptimizeLimit <= 0 {
		cfg.OptimizeLimit = DefaultOptimizeLimit
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &implUseCase{
		l:        l,
		repo:     repo,
		parser:   p,
		profiles: profiles,
		sched:    sched,
		locks:    locks,
		calendar: calendar,
		cfg:      cfg,
	}
}

func (uc *implUseCase) now() time.Time {
	return uc.cfg.Now().In(uc.cfg.Location)
}

// Package app wires the storage, parser, scheduler and domain use cases from configuration.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"focusflow/config"
	"focusflow/internal/focus"
	focusSqlite "focusflow/internal/focus/repository/sqlite"
	focusUC "focusflow/internal/focus/usecase"
	"focusflow/internal/parser"
	"focusflow/internal/profile"
	"focusflow/internal/scheduler"
	"focusflow/internal/scoring"
	"focusflow/internal/task"
	taskSqlite "focusflow/internal/task/repository/sqlite"
	taskUC "focusflow/internal/task/usecase"
	"focusflow/pkg/datemath"
	"focusflow/pkg/gcalendar"
	"focusflow/pkg/llmprovider"
	"focusflow/pkg/locker"
	"focusflow/pkg/log"
	"focusflow/pkg/ratelimit"
	pkgSqlite "focusflow/pkg/sqlite"
)

// App holds the long-lived dependencies shared by the HTTP service and the CLI.
type App struct {
	DB    *sql.DB
	Task  task.UseCase
	Focus focus.UseCase
}

// Options tweaks New for callers that don't want every integration.
type Options struct {
	// SkipCalendar disables Google Calendar even when it is configured.
	SkipCalendar bool
	Now          func() time.Time
}

// New opens the database, runs migrations and builds the use cases.
func New(ctx context.Context, cfg *config.Config, l log.Logger, opts Options) (*App, error) {
	dateMath, err := datemath.NewParser(cfg.Scheduler.Timezone)
	if err != nil {
		return nil, fmt.Errorf("app.New: timezone: %w", err)
	}
	loc := dateMath.Location()

	db, err := pkgSqlite.Open(cfg.Storage.SQLitePath)
	if err != nil {
		return nil, fmt.Errorf("app.New: open sqlite: %w", err)
	}
	if err := migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	l.Infof(ctx, "SQLite ready at %s", cfg.Storage.SQLitePath)

	scorer, err := scoring.New(scoring.Config{
		Weights: scoring.Weights{
			Urgency:  cfg.Scheduler.Weights.Urgency,
			Priority: cfg.Scheduler.Weights.Priority,
			Focus:    cfg.Scheduler.Weights.Focus,
		},
		Horizon:  time.Duration(cfg.Scheduler.UrgencyHorizonHours * float64(time.Hour)),
		Location: loc,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("app.New: scorer: %w", err)
	}
	sched := scheduler.New(scorer)

	taskRepo := taskSqlite.New(db, l)
	focusRepo := focusSqlite.New(db, l)

	profiles, err := profile.NewStore(focusRepo, cfg.Scheduler.EMAAlpha)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("app.New: profile store: %w", err)
	}

	locks := locker.New()

	taskUseCase := taskUC.New(
		l,
		taskRepo,
		newParser(ctx, cfg, l, dateMath),
		profiles,
		sched,
		locks,
		newCalendar(ctx, cfg, l, opts.SkipCalendar),
		taskUC.Config{
			Location:      loc,
			OptimizeLimit: cfg.Scheduler.OptimizeLimit,
			CalendarID:    cfg.GoogleCalendar.CalendarID,
			Now:           opts.Now,
		},
	)

	focusUseCase := focusUC.New(
		l,
		focusRepo,
		taskRepo,
		profiles,
		taskUseCase,
		sched,
		locks,
		focusSqlite.NewTransactor(db, l),
		focusUC.Config{
			Location:              loc,
			AutoCompleteThreshold: cfg.Scheduler.AutoCompleteThreshold,
			Now:                   opts.Now,
		},
	)

	return &App{DB: db, Task: taskUseCase, Focus: focusUseCase}, nil
}

// Close releases the database.
func (a *App) Close() error {
	return a.DB.Close()
}

func migrate(ctx context.Context, db *sql.DB) error {
	if err := taskSqlite.Migrate(ctx, db); err != nil {
		return fmt.Errorf("app.New: migrate tasks: %w", err)
	}
	if err := focusSqlite.Migrate(ctx, db); err != nil {
		return fmt.Errorf("app.New: migrate focus: %w", err)
	}
	return nil
}

// newParser builds the rules parser, adding the upstream drafter when enabled.
// Provider setup failures only disable the upstream path.
func newParser(ctx context.Context, cfg *config.Config, l log.Logger, dateMath *datemath.Parser) *parser.Parser {
	rules := parser.NewRules(dateMath)
	pcfg := parser.Config{UpstreamTimeout: cfg.Parser.UpstreamTimeout}

	if !cfg.Parser.UpstreamEnabled {
		l.Info(ctx, "Upstream parser disabled, using rules only")
		return parser.New(l, rules, nil, nil, pcfg)
	}

	providers, skipped, err := llmprovider.InitializeProviders(&cfg.LLM)
	for _, e := range skipped {
		l.Warnf(ctx, "LLM provider skipped: %v", e)
	}
	if err != nil {
		l.Warnf(ctx, "Upstream parser unavailable, using rules only: %v", err)
		return parser.New(l, rules, nil, nil, pcfg)
	}

	retryDelay, _ := time.ParseDuration(cfg.LLM.RetryDelay)
	maxTotal, _ := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotal,
	}, l)

	limiter := ratelimit.New(ratelimit.Config{PerMinute: cfg.Parser.RateLimitPerMin})
	l.Infof(ctx, "Upstream parser enabled with %d provider(s)", len(providers))
	return parser.New(l, rules, parser.NewLLMDrafter(manager, dateMath.Location()), limiter, pcfg)
}

// newCalendar returns nil when calendar blocking is off or cannot start.
func newCalendar(ctx context.Context, cfg *config.Config, l log.Logger, skip bool) gcalendar.ICalendar {
	if skip || !cfg.GoogleCalendar.Enabled() {
		return nil
	}
	cal, err := gcalendar.New(ctx, gcalendar.Config{
		CredentialsPath: cfg.GoogleCalendar.CredentialsPath,
		TokenPath:       cfg.GoogleCalendar.TokenPath,
	})
	if err != nil {
		l.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		return nil
	}
	l.Info(ctx, "Google Calendar initialized")
	return cal
}

package sqlite

import (
	"database/sql"
	"strings"

	repo "focusflow/internal/focus/repository"
	"focusflow/internal/model"
	pkgSqlite "focusflow/pkg/sqlite"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS focus_sessions (
		id TEXT PRIMARY KEY,
		owner TEXT NOT NULL,
		task_id TEXT NOT NULL DEFAULT '',
		started_at TEXT NOT NULL,
		ended_at TEXT,
		status TEXT NOT NULL,
		duration_minutes INTEGER NOT NULL DEFAULT 0,
		productivity_score REAL NOT NULL DEFAULT 0,
		focus_window TEXT NOT NULL DEFAULT ''
	);`,
	`CREATE INDEX IF NOT EXISTS idx_focus_sessions_owner_status ON focus_sessions(owner, status);`,
	`CREATE INDEX IF NOT EXISTS idx_focus_sessions_owner_ended_at ON focus_sessions(owner, ended_at);`,
	// At most one running session per owner.
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_focus_sessions_owner_active ON focus_sessions(owner) WHERE status = 'active';`,
	`CREATE TABLE IF NOT EXISTS focus_profiles (
		owner TEXT PRIMARY KEY,
		morning REAL NOT NULL,
		afternoon REAL NOT NULL,
		evening REAL NOT NULL,
		observations INTEGER NOT NULL DEFAULT 0,
		last_updated TEXT NOT NULL
	);`,
}

const sessionColumns = `id, owner, task_id, started_at, ended_at, status,
	duration_minutes, productivity_score, focus_window`

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(s scanner) (model.FocusSession, error) {
	var (
		fs        model.FocusSession
		startedAt string
		endedAt   sql.NullString
		status    string
		window    string
	)
	if err := s.Scan(&fs.ID, &fs.Owner, &fs.TaskID, &startedAt, &endedAt, &status,
		&fs.DurationMinutes, &fs.ProductivityScore, &window); err != nil {
		return model.FocusSession{}, err
	}

	fs.Status = model.SessionStatus(status)
	fs.Window = model.Window(window)

	var err error
	if fs.StartedAt, err = pkgSqlite.ParseTime(startedAt); err != nil {
		return model.FocusSession{}, err
	}
	if fs.EndedAt, err = pkgSqlite.ParseNullTime(endedAt); err != nil {
		return model.FocusSession{}, err
	}
	return fs, nil
}

// buildGetOneQuery builds the WHERE clause + args for GetOneSession.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneSessionOptions) (string, []any) {
	conditions := []string{"owner = ?"}
	args := []any{opt.Owner}

	if opt.ID != "" {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.ActiveOnly {
		conditions = append(conditions, "status = ?")
		args = append(args, string(model.SessionStatusActive))
	}

	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the WHERE clause + args for ListSessions.
func (r *implRepository) buildListQuery(opt repo.ListSessionsOptions) (string, []any) {
	conditions := []string{"owner = ?"}
	args := []any{opt.Owner}

	if opt.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, string(opt.Status))
	}
	if opt.EndedSince != nil {
		conditions = append(conditions, "ended_at >= ?")
		args = append(args, pkgSqlite.FormatTime(*opt.EndedSince))
	}

	return strings.Join(conditions, " AND "), args
}

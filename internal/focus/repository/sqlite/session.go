package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	repo "focusflow/internal/focus/repository"
	"focusflow/internal/model"
	pkgSqlite "focusflow/pkg/sqlite"
)

// CreateSession inserts a new active session.
func (r *implRepository) CreateSession(ctx context.Context, opt repo.CreateSessionOptions) (model.FocusSession, error) {
	fs := model.FocusSession{
		ID:        uuid.NewString(),
		Owner:     opt.Owner,
		TaskID:    opt.TaskID,
		StartedAt: opt.StartedAt,
		Status:    model.SessionStatusActive,
	}

	const query = `
		INSERT INTO focus_sessions (` + sessionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		fs.ID, fs.Owner, fs.TaskID, pkgSqlite.FormatTime(fs.StartedAt), pkgSqlite.NullTime(fs.EndedAt),
		string(fs.Status), fs.DurationMinutes, fs.ProductivityScore, string(fs.Window),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateSession"), err)
		return model.FocusSession{}, repo.ErrFailedToInsert
	}
	return fs, nil
}

// GetOneSession returns a zero FocusSession when nothing matches.
func (r *implRepository) GetOneSession(ctx context.Context, opt repo.GetOneSessionOptions) (model.FocusSession, error) {
	where, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM focus_sessions WHERE %s ORDER BY started_at DESC LIMIT 1`, sessionColumns, where)

	fs, err := scanSession(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return model.FocusSession{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneSession"), err)
		return model.FocusSession{}, repo.ErrFailedToGet
	}
	return fs, nil
}

// ListSessions returns the owner's sessions, oldest first.
func (r *implRepository) ListSessions(ctx context.Context, opt repo.ListSessionsOptions) ([]model.FocusSession, error) {
	where, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM focus_sessions WHERE %s ORDER BY started_at, id`, sessionColumns, where)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListSessions"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var sessions []model.FocusSession
	for rows.Next() {
		fs, err := scanSession(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListSessions"), err)
			return nil, repo.ErrFailedToList
		}
		sessions = append(sessions, fs)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListSessions"), err)
		return nil, repo.ErrFailedToList
	}
	return sessions, nil
}

// UpdateSession persists the mutable fields of fs.
func (r *implRepository) UpdateSession(ctx context.Context, fs model.FocusSession) (model.FocusSession, error) {
	const query = `
		UPDATE focus_sessions
		SET ended_at = ?, status = ?, duration_minutes = ?, productivity_score = ?, focus_window = ?
		WHERE id = ? AND owner = ?`

	res, err := r.db.ExecContext(ctx, query,
		pkgSqlite.NullTime(fs.EndedAt), string(fs.Status), fs.DurationMinutes, fs.ProductivityScore, string(fs.Window),
		fs.ID, fs.Owner,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateSession"), err)
		return model.FocusSession{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		r.l.Warnf(ctx, "%s: no rows for id=%s", r.dsn("UpdateSession"), fs.ID)
		return model.FocusSession{}, repo.ErrFailedToUpdate
	}
	return fs, nil
}

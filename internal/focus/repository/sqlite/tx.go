package sqlite

import (
	"context"
	"database/sql"

	"focusflow/internal/focus/repository"
	taskSqlite "focusflow/internal/task/repository/sqlite"
	"focusflow/pkg/log"
	pkgSqlite "focusflow/pkg/sqlite"
)

type implTransactor struct {
	db *sql.DB
	l  log.Logger
}

// NewTransactor creates a Transactor over db, which must hold both the
// focus and the task tables.
func NewTransactor(db *sql.DB, l log.Logger) repository.Transactor {
	if db == nil {
		panic("focus/repository/sqlite: db is required")
	}
	return &implTransactor{db: db, l: l}
}

func (t *implTransactor) InTx(ctx context.Context, fn func(ctx context.Context, tx repository.Tx) error) error {
	return pkgSqlite.InTx(ctx, t.db, func(sqlTx *sql.Tx) error {
		focusRepo := NewTx(sqlTx, t.l)
		return fn(ctx, repository.Tx{
			Sessions: focusRepo,
			Profiles: focusRepo,
			Tasks:    taskSqlite.NewTx(sqlTx, t.l),
		})
	})
}

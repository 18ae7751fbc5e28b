package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"focusflow/internal/focus/repository"
	"focusflow/pkg/log"
	pkgSqlite "focusflow/pkg/sqlite"
)

type implRepository struct {
	db pkgSqlite.DBTX
	l  log.Logger
}

// New creates a new SQLite-backed Repository for sessions and focus profiles.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("focus/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// NewTx binds a Repository to tx. It must not outlive the transaction.
func NewTx(tx *sql.Tx, l log.Logger) repository.Repository {
	return &implRepository{db: tx, l: l}
}

// Migrate creates the focus_sessions and focus_profiles tables.
func Migrate(ctx context.Context, db *sql.DB) error {
	return pkgSqlite.Migrate(ctx, db, schema...)
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("focus/repository/sqlite.%s", method)
}

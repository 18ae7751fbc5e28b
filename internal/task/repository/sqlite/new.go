package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"focusflow/internal/task/repository"
	"focusflow/pkg/log"
	pkgSqlite "focusflow/pkg/sqlite"
)

type implRepository struct {
	db pkgSqlite.DBTX
	l  log.Logger
}

// New creates a new SQLite-backed Repository for the task domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("task/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// NewTx binds a Repository to tx. It must not outlive the transaction.
func NewTx(tx *sql.Tx, l log.Logger) repository.Repository {
	return &implRepository{db: tx, l: l}
}

// Migrate creates the tasks table and its indexes.
func Migrate(ctx context.Context, db *sql.DB) error {
	return pkgSqlite.Migrate(ctx, db, schema...)
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/sqlite.%s", method)
}

package sqlite

import (
	"database/sql"
	"strings"

	"focusflow/internal/model"
	repo "focusflow/internal/task/repository"
	pkgSqlite "focusflow/pkg/sqlite"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id TEXT PRIMARY KEY,
		owner TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		due_at TEXT,
		priority TEXT NOT NULL,
		task_type TEXT NOT NULL,
		estimated_duration_minutes INTEGER NOT NULL CHECK (estimated_duration_minutes > 0),
		actual_duration_minutes INTEGER,
		status TEXT NOT NULL,
		calendar_event_link TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		completed_at TEXT
	);`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_owner_status ON tasks(owner, status);`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_owner_completed_at ON tasks(owner, completed_at);`,
}

const taskColumns = `id, owner, title, description, due_at, priority, task_type,
	estimated_duration_minutes, actual_duration_minutes, status, calendar_event_link,
	created_at, updated_at, completed_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (model.Task, error) {
	var (
		t                    model.Task
		dueAt, completedAt   sql.NullString
		createdAt, updatedAt string
		actual               sql.NullInt64
		priority, taskType   string
		status               string
	)
	if err := s.Scan(&t.ID, &t.Owner, &t.Title, &t.Description, &dueAt, &priority, &taskType,
		&t.EstimatedDurationMinutes, &actual, &status, &t.CalendarEventLink,
		&createdAt, &updatedAt, &completedAt); err != nil {
		return model.Task{}, err
	}

	t.Priority = model.Priority(priority)
	t.TaskType = model.TaskType(taskType)
	t.Status = model.TaskStatus(status)
	if actual.Valid {
		v := int(actual.Int64)
		t.ActualDurationMinutes = &v
	}

	var err error
	if t.DueAt, err = pkgSqlite.ParseNullTime(dueAt); err != nil {
		return model.Task{}, err
	}
	if t.CompletedAt, err = pkgSqlite.ParseNullTime(completedAt); err != nil {
		return model.Task{}, err
	}
	if t.CreatedAt, err = pkgSqlite.ParseTime(createdAt); err != nil {
		return model.Task{}, err
	}
	if t.UpdatedAt, err = pkgSqlite.ParseTime(updatedAt); err != nil {
		return model.Task{}, err
	}
	return t, nil
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

// buildListQuery builds the WHERE clause + args for ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	conditions := []string{"owner = ?"}
	args := []any{opt.Owner}

	if opt.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, string(opt.Status))
	}
	if opt.CompletedSince != nil {
		conditions = append(conditions, "completed_at >= ?")
		args = append(args, pkgSqlite.FormatTime(*opt.CompletedSince))
	}

	return strings.Join(conditions, " AND "), args
}

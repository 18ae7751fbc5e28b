package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"focusflow/internal/model"
	repo "focusflow/internal/task/repository"
	pkgSqlite "focusflow/pkg/sqlite"
)

// CreateTask inserts a new pending Task and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	t := model.Task{
		ID:                       uuid.NewString(),
		Owner:                    opt.Owner,
		Title:                    opt.Title,
		Description:              opt.Description,
		DueAt:                    opt.DueAt,
		Priority:                 opt.Priority,
		TaskType:                 opt.TaskType,
		EstimatedDurationMinutes: opt.EstimatedDurationMinutes,
		Status:                   model.TaskStatusPending,
		CreatedAt:                opt.CreatedAt,
		UpdatedAt:                opt.CreatedAt,
	}

	const query = `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.Owner, t.Title, t.Description, pkgSqlite.NullTime(t.DueAt),
		string(t.Priority), string(t.TaskType), t.EstimatedDurationMinutes, nullInt(t.ActualDurationMinutes),
		string(t.Status), t.CalendarEventLink,
		pkgSqlite.FormatTime(t.CreatedAt), pkgSqlite.FormatTime(t.UpdatedAt), pkgSqlite.NullTime(t.CompletedAt),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOneTask returns the owner's task, or a zero Task when it does not exist.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ? AND owner = ? LIMIT 1`

	t, err := scanTask(r.db.QueryRowContext(ctx, query, opt.ID, opt.Owner))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns the owner's tasks, oldest first.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	where, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE %s ORDER BY created_at, id`, taskColumns, where)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// UpdateTask overwrites every mutable column of t.
func (r *implRepository) UpdateTask(ctx context.Context, t model.Task) (model.Task, error) {
	const query = `
		UPDATE tasks
		SET title = ?, description = ?, due_at = ?, priority = ?, task_type = ?,
			estimated_duration_minutes = ?, actual_duration_minutes = ?, status = ?,
			calendar_event_link = ?, updated_at = ?, completed_at = ?
		WHERE id = ? AND owner = ?`

	res, err := r.db.ExecContext(ctx, query,
		t.Title, t.Description, pkgSqlite.NullTime(t.DueAt), string(t.Priority), string(t.TaskType),
		t.EstimatedDurationMinutes, nullInt(t.ActualDurationMinutes), string(t.Status),
		t.CalendarEventLink, pkgSqlite.FormatTime(t.UpdatedAt), pkgSqlite.NullTime(t.CompletedAt),
		t.ID, t.Owner,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		r.l.Errorf(ctx, "%s: no row for id=%s", r.dsn("UpdateTask"), t.ID)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	t.FocusScore = 0
	return t, nil
}

// DeleteTask removes the owner's task. Deleting a missing task is not an error.
func (r *implRepository) DeleteTask(ctx context.Context, opt repo.GetOneTaskOptions) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ? AND owner = ?`, opt.ID, opt.Owner); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

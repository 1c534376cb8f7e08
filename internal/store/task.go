package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/existflow/taskdeck/internal/model"
)

const taskColumns = "id, project_id, name, due_date, priority, status, progress, assignee, created_at, updated_at"

func scanTask(row interface{ Scan(...any) error }) (model.Task, error) {
	var t model.Task
	var due, assignee sql.NullString
	var created, updated string
	err := row.Scan(&t.ID, &t.ProjectID, &t.Name, &due, &t.Priority, &t.Status,
		&t.Progress, &assignee, &created, &updated)
	if err != nil {
		return model.Task{}, err
	}
	t.DueDate = due.String
	t.Assignee = assignee.String
	t.CreatedAt = parseTime(created)
	t.UpdatedAt = parseTime(updated)
	return t, nil
}

// nullable stores the empty string as NULL.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// CreateTask inserts a new task and returns its id. The task's ID and
// timestamps are ignored; the store assigns them.
func (s *Store) CreateTask(ctx context.Context, t model.Task) (int64, error) {
	ts := now()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (project_id, name, due_date, priority, status, progress, assignee, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ProjectID, t.Name, nullable(t.DueDate), t.Priority, t.Status,
		t.Progress, nullable(t.Assignee), ts, ts)
	if err != nil {
		return 0, fmt.Errorf("insert task: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("task id: %w", err)
	}
	return id, nil
}

// GetTask fetches a task by id. Returns nil when the task does not exist.
func (s *Store) GetTask(ctx context.Context, id int64) (*model.Task, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	return &t, nil
}

func (s *Store) queryTasks(ctx context.Context, query string, args ...any) ([]model.Task, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// GetTasksByProject returns all tasks for a project, newest first.
func (s *Store) GetTasksByProject(ctx context.Context, projectID int64) ([]model.Task, error) {
	return s.queryTasks(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE project_id = ? ORDER BY created_at DESC, id DESC`,
		projectID)
}

// GetTasksByStatus returns a project's tasks in the given status, newest
// first.
func (s *Store) GetTasksByStatus(ctx context.Context, projectID int64, status model.Status) ([]model.Task, error) {
	return s.queryTasks(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE project_id = ? AND status = ? ORDER BY created_at DESC, id DESC`,
		projectID, status)
}

// TaskFilter narrows a task search. Zero-value fields are ignored; set
// fields are ANDed together.
type TaskFilter struct {
	Keyword  string // case-sensitive substring match on the task name
	Status   string
	Assignee string
	Priority string
}

// SearchTasks returns a project's tasks matching every set filter, newest
// first.
func (s *Store) SearchTasks(ctx context.Context, projectID int64, f TaskFilter) ([]model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE project_id = ?`
	args := []any{projectID}

	// instr, not LIKE: SQLite LIKE is ASCII case-insensitive and the
	// keyword match is case-sensitive containment.
	if f.Keyword != "" {
		query += ` AND instr(name, ?) > 0`
		args = append(args, f.Keyword)
	}
	if f.Status != "" {
		query += ` AND status = ?`
		args = append(args, f.Status)
	}
	if f.Assignee != "" {
		query += ` AND assignee = ?`
		args = append(args, f.Assignee)
	}
	if f.Priority != "" {
		query += ` AND priority = ?`
		args = append(args, f.Priority)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	return s.queryTasks(ctx, query, args...)
}

// UpdateTask applies the patch to a task, stamping updated_at. Reports
// whether a row changed; an empty patch is a no-op.
func (s *Store) UpdateTask(ctx context.Context, id int64, patch model.TaskPatch) (bool, error) {
	if patch.Empty() {
		return false, nil
	}

	var sets []string
	var args []any
	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.DueDate != nil {
		sets = append(sets, "due_date = ?")
		args = append(args, nullable(*patch.DueDate))
	}
	if patch.Priority != nil {
		sets = append(sets, "priority = ?")
		args = append(args, *patch.Priority)
	}
	if patch.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *patch.Status)
	}
	if patch.Progress != nil {
		sets = append(sets, "progress = ?")
		args = append(args, *patch.Progress)
	}
	if patch.Assignee != nil {
		sets = append(sets, "assignee = ?")
		args = append(args, nullable(*patch.Assignee))
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, now(), id)

	res, err := s.db.ExecContext(ctx,
		`UPDATE tasks SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return false, fmt.Errorf("update task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// DeleteTask removes a task by id. Reports whether a row was removed.
func (s *Store) DeleteTask(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

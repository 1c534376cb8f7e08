// Package manager enforces the business rules in front of the record
// store: name and enum validation, progress bounds, project existence,
// derived views, statistics, and backup orchestration.
package manager

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/existflow/taskdeck/internal/logger"
	"github.com/existflow/taskdeck/internal/model"
	"github.com/existflow/taskdeck/internal/store"
)

// ErrValidation marks errors the caller could have prevented by checking
// inputs first. Nothing is written when one is returned.
var ErrValidation = errors.New("validation failed")

// Manager wraps the store with business rules and derived views.
type Manager struct {
	store *store.Store
}

// New creates a manager on top of an open store.
func New(s *store.Store) *Manager {
	return &Manager{store: s}
}

// Open opens the database at dbPath and returns a manager over it.
func Open(dbPath string) (*Manager, error) {
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}
	return New(s), nil
}

// Store exposes the underlying record store.
func (m *Manager) Store() *store.Store {
	return m.store
}

// Close closes the underlying store.
func (m *Manager) Close() error {
	return m.store.Close()
}

// Project management

// CreateProject creates a project. An empty color picks the next palette
// entry, rotating on the current project count.
func (m *Manager) CreateProject(ctx context.Context, name, description, color string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("%w: project name cannot be empty", ErrValidation)
	}

	if color == "" {
		projects, err := m.store.GetAllProjects(ctx)
		if err != nil {
			return 0, err
		}
		color = model.Palette[len(projects)%len(model.Palette)]
	}

	id, err := m.store.CreateProject(ctx, name, strings.TrimSpace(description), color)
	if err != nil {
		return 0, err
	}
	logger.Info("Created project", logger.F("name", name), logger.F("id", id))
	return id, nil
}

// GetProject fetches a project by id; nil when it does not exist.
func (m *Manager) GetProject(ctx context.Context, id int64) (*model.Project, error) {
	return m.store.GetProject(ctx, id)
}

// GetAllProjects returns all projects, newest first.
func (m *Manager) GetAllProjects(ctx context.Context) ([]model.Project, error) {
	return m.store.GetAllProjects(ctx)
}

// UpdateProject applies a patch to a project. Reports whether a row
// changed.
func (m *Manager) UpdateProject(ctx context.Context, id int64, patch model.ProjectPatch) (bool, error) {
	changed, err := m.store.UpdateProject(ctx, id, patch)
	if err != nil {
		return false, err
	}
	if changed {
		logger.Info("Updated project", logger.F("id", id))
	}
	return changed, nil
}

// DeleteProject deletes a project and all its tasks. Reports whether the
// project existed.
func (m *Manager) DeleteProject(ctx context.Context, id int64) (bool, error) {
	changed, err := m.store.DeleteProject(ctx, id)
	if err != nil {
		return false, err
	}
	if changed {
		logger.Info("Deleted project", logger.F("id", id))
	}
	return changed, nil
}

// Task management

// CreateTask validates and creates a task. The task's Priority, Status
// and Progress default to medium, todo and 0 when left zero; its ID and
// timestamps are assigned by the store. All validation runs before any
// write.
func (m *Manager) CreateTask(ctx context.Context, t model.Task) (int64, error) {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return 0, fmt.Errorf("%w: task name cannot be empty", ErrValidation)
	}
	if t.Priority == "" {
		t.Priority = model.PriorityMedium
	}
	if t.Status == "" {
		t.Status = model.StatusTodo
	}
	if !t.Priority.Valid() {
		return 0, fmt.Errorf("%w: invalid priority %q, must be one of %v", ErrValidation, t.Priority, model.Priorities)
	}
	if !t.Status.Valid() {
		return 0, fmt.Errorf("%w: invalid status %q, must be one of %v", ErrValidation, t.Status, model.Statuses)
	}
	if t.Progress < 0 || t.Progress > 100 {
		return 0, fmt.Errorf("%w: progress must be between 0 and 100", ErrValidation)
	}

	project, err := m.store.GetProject(ctx, t.ProjectID)
	if err != nil {
		return 0, err
	}
	if project == nil {
		return 0, fmt.Errorf("%w: project %d does not exist", ErrValidation, t.ProjectID)
	}

	id, err := m.store.CreateTask(ctx, t)
	if err != nil {
		return 0, err
	}
	logger.Info("Created task", logger.F("name", t.Name), logger.F("id", id),
		logger.F("project", t.ProjectID))
	return id, nil
}

// GetTask fetches a task by id; nil when it does not exist.
func (m *Manager) GetTask(ctx context.Context, id int64) (*model.Task, error) {
	return m.store.GetTask(ctx, id)
}

// GetTasksByProject returns all tasks for a project, newest first.
func (m *Manager) GetTasksByProject(ctx context.Context, projectID int64) ([]model.Task, error) {
	return m.store.GetTasksByProject(ctx, projectID)
}

// GetTasksByStatus returns a project's tasks in the given status. The
// status must be a known pipeline stage.
func (m *Manager) GetTasksByStatus(ctx context.Context, projectID int64, status model.Status) ([]model.Task, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: invalid status %q, must be one of %v", ErrValidation, status, model.Statuses)
	}
	return m.store.GetTasksByStatus(ctx, projectID, status)
}

// UpdateTask validates the fields present in the patch and applies it.
// Only present fields are validated; name emptiness and project existence
// are not re-checked on update.
func (m *Manager) UpdateTask(ctx context.Context, id int64, patch model.TaskPatch) (bool, error) {
	if patch.Priority != nil && !patch.Priority.Valid() {
		return false, fmt.Errorf("%w: invalid priority %q, must be one of %v", ErrValidation, *patch.Priority, model.Priorities)
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return false, fmt.Errorf("%w: invalid status %q, must be one of %v", ErrValidation, *patch.Status, model.Statuses)
	}
	if patch.Progress != nil && (*patch.Progress < 0 || *patch.Progress > 100) {
		return false, fmt.Errorf("%w: progress must be between 0 and 100", ErrValidation)
	}

	changed, err := m.store.UpdateTask(ctx, id, patch)
	if err != nil {
		return false, err
	}
	if changed {
		logger.Info("Updated task", logger.F("id", id))
	}
	return changed, nil
}

// UpdateTaskStatus moves a task to another pipeline stage. Any stage may
// move to any other; the pipeline order is presentational, not a gate.
func (m *Manager) UpdateTaskStatus(ctx context.Context, id int64, status model.Status) (bool, error) {
	return m.UpdateTask(ctx, id, model.TaskPatch{Status: &status})
}

// UpdateTaskProgress sets a task's progress percentage.
func (m *Manager) UpdateTaskProgress(ctx context.Context, id int64, progress int) (bool, error) {
	return m.UpdateTask(ctx, id, model.TaskPatch{Progress: &progress})
}

// DeleteTask deletes a task. Reports whether it existed.
func (m *Manager) DeleteTask(ctx context.Context, id int64) (bool, error) {
	changed, err := m.store.DeleteTask(ctx, id)
	if err != nil {
		return false, err
	}
	if changed {
		logger.Info("Deleted task", logger.F("id", id))
	}
	return changed, nil
}

// SearchTasks returns a project's tasks matching every set filter.
// Unlike GetTasksByStatus, filter values are not validated; an unmatched
// filter simply yields no results.
func (m *Manager) SearchTasks(ctx context.Context, projectID int64, f store.TaskFilter) ([]model.Task, error) {
	return m.store.SearchTasks(ctx, projectID, f)
}

package manager

import (
	"context"
	"sort"

	"github.com/existflow/taskdeck/internal/model"
)

// Sort keys accepted by GetTasksSorted.
const (
	SortByPriority = "priority"
	SortByDueDate  = "due_date"
	SortByStatus   = "status"
	SortByName     = "name"
)

// GetTasksSorted loads a project's tasks and sorts them by the given key:
// priority (high first), due_date (ascending, undated last), status
// (pipeline order) or name (ascending). Sorting is stable, so ties keep
// creation order. An unrecognized key returns the creation-order list.
func (m *Manager) GetTasksSorted(ctx context.Context, projectID int64, sortBy string) ([]model.Task, error) {
	tasks, err := m.store.GetTasksByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	switch sortBy {
	case SortByPriority:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].Priority.SortRank() < tasks[j].Priority.SortRank()
		})
	case SortByDueDate:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].DueDateKey() < tasks[j].DueDateKey()
		})
	case SortByStatus:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].Status.SortRank() < tasks[j].Status.SortRank()
		})
	case SortByName:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].Name < tasks[j].Name
		})
	}

	return tasks, nil
}

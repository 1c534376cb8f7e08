package manager

import (
	"context"

	"github.com/existflow/taskdeck/internal/model"
)

// Stats aggregates a project's tasks. Every status and priority is
// present as a key even when its count is zero.
type Stats struct {
	Total       int                    `json:"total"`
	ByStatus    map[model.Status]int   `json:"by_status"`
	ByPriority  map[model.Priority]int `json:"by_priority"`
	AvgProgress float64                `json:"avg_progress"`
}

// GetProjectStats returns task counts per status and priority and the
// mean progress for a project. A project with no tasks reports zeros.
func (m *Manager) GetProjectStats(ctx context.Context, projectID int64) (Stats, error) {
	tasks, err := m.store.GetTasksByProject(ctx, projectID)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		Total:      len(tasks),
		ByStatus:   make(map[model.Status]int, len(model.Statuses)),
		ByPriority: make(map[model.Priority]int, len(model.Priorities)),
	}
	for _, s := range model.Statuses {
		stats.ByStatus[s] = 0
	}
	for _, p := range model.Priorities {
		stats.ByPriority[p] = 0
	}

	sum := 0
	for _, t := range tasks {
		if _, ok := stats.ByStatus[t.Status]; ok {
			stats.ByStatus[t.Status]++
		}
		if _, ok := stats.ByPriority[t.Priority]; ok {
			stats.ByPriority[t.Priority]++
		}
		sum += t.Progress
	}
	if len(tasks) > 0 {
		stats.AvgProgress = float64(sum) / float64(len(tasks))
	}

	return stats, nil
}

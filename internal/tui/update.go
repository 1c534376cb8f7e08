package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/existflow/taskdeck/internal/logger"
	"github.com/existflow/taskdeck/internal/model"
)

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModeAddTask, ModeAddProject, ModeRenameTask:
			return m.updateInput(msg)
		case ModeHelp:
			m.mode = ModeNormal
			return m, nil
		default:
			return m.updateNormal(msg)
		}
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.mode = ModeHelp

	case key.Matches(msg, keys.Tab):
		if m.pane == PaneSidebar {
			m.pane = PaneTasks
		} else {
			m.pane = PaneSidebar
		}

	case key.Matches(msg, keys.Left):
		m.pane = PaneSidebar

	case key.Matches(msg, keys.Right), key.Matches(msg, keys.Enter):
		if m.pane == PaneSidebar {
			m.pane = PaneTasks
		}

	case key.Matches(msg, keys.Up):
		if m.pane == PaneSidebar {
			if m.projCursor > 0 {
				m.projCursor--
				m.taskCursor = 0
				m.reload()
			}
		} else if m.taskCursor > 0 {
			m.taskCursor--
		}

	case key.Matches(msg, keys.Down):
		if m.pane == PaneSidebar {
			if m.projCursor < len(m.projects)-1 {
				m.projCursor++
				m.taskCursor = 0
				m.reload()
			}
		} else if m.taskCursor < len(m.tasks)-1 {
			m.taskCursor++
		}

	case key.Matches(msg, keys.View):
		m.viewMode = (m.viewMode + 1) % 3
		m.taskCursor = 0
		m.reload()
		m.message = fmt.Sprintf("View: %s", m.viewMode)

	case key.Matches(msg, keys.Sort):
		if m.viewMode == ViewList {
			m.sortIdx = (m.sortIdx + 1) % len(sortCycle)
			m.reload()
			label := sortCycle[m.sortIdx]
			if label == "" {
				label = "created"
			}
			m.message = fmt.Sprintf("Sort: %s", label)
		}

	case key.Matches(msg, keys.Add):
		if m.currentProject() == nil {
			m.message = "Create a project first (p)"
			break
		}
		m.mode = ModeAddTask
		m.input.Placeholder = "Task name..."
		m.input.SetValue("")
		m.input.Focus()

	case key.Matches(msg, keys.Rename):
		if task := m.currentTask(); task != nil && m.pane == PaneTasks {
			m.mode = ModeRenameTask
			m.input.Placeholder = "Task name..."
			m.input.SetValue(task.Name)
			m.input.Focus()
		}

	case key.Matches(msg, keys.Project):
		m.mode = ModeAddProject
		m.input.Placeholder = "Project name..."
		m.input.SetValue("")
		m.input.Focus()

	case key.Matches(msg, keys.Advance):
		if task := m.currentTask(); task != nil {
			next := nextStatus(task.Status)
			if _, err := m.mgr.UpdateTaskStatus(ctx, task.ID, next); err != nil {
				logger.Error("Status update failed", logger.F("error", err))
				m.message = "Status update failed"
			} else {
				m.message = fmt.Sprintf("%q → %s", truncate(task.Name, 20), next)
			}
			m.reload()
		}

	case key.Matches(msg, keys.Delete):
		if m.pane == PaneTasks {
			if task := m.currentTask(); task != nil {
				if _, err := m.mgr.DeleteTask(ctx, task.ID); err != nil {
					m.message = "Delete failed"
				} else {
					m.message = fmt.Sprintf("Deleted %q", truncate(task.Name, 20))
				}
				m.reload()
			}
		} else if proj := m.currentProject(); proj != nil {
			if _, err := m.mgr.DeleteProject(ctx, proj.ID); err != nil {
				m.message = "Delete failed"
			} else {
				m.message = fmt.Sprintf("Deleted project %q", truncate(proj.Name, 20))
			}
			m.projCursor = 0
			m.reload()
		}

	case key.Matches(msg, keys.Backup):
		path, err := m.mgr.ExportBackup(ctx, "")
		if err != nil {
			m.message = "Backup failed"
		} else {
			m.message = fmt.Sprintf("Backup written: %s", path)
		}
	}

	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch {
	case key.Matches(msg, keys.Escape):
		m.mode = ModeNormal
		m.input.Blur()
		return m, nil

	case key.Matches(msg, keys.Enter):
		value := m.input.Value()
		switch m.mode {
		case ModeAddTask:
			proj := m.currentProject()
			if proj != nil {
				_, err := m.mgr.CreateTask(ctx, model.Task{ProjectID: proj.ID, Name: value})
				if err != nil {
					m.message = err.Error()
				} else {
					m.message = fmt.Sprintf("Added %q", truncate(value, 20))
				}
			}
		case ModeAddProject:
			_, err := m.mgr.CreateProject(ctx, value, "", "")
			if err != nil {
				m.message = err.Error()
			} else {
				m.message = fmt.Sprintf("Created project %q", truncate(value, 20))
			}
		case ModeRenameTask:
			if task := m.currentTask(); task != nil {
				if _, err := m.mgr.UpdateTask(ctx, task.ID, model.TaskPatch{Name: &value}); err != nil {
					m.message = err.Error()
				} else {
					m.message = fmt.Sprintf("Renamed to %q", truncate(value, 20))
				}
			}
		}
		m.mode = ModeNormal
		m.input.Blur()
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// nextStatus advances a task one pipeline stage, wrapping done back to
// todo.
func nextStatus(s model.Status) model.Status {
	switch s {
	case model.StatusTodo:
		return model.StatusInProgress
	case model.StatusInProgress:
		return model.StatusReview
	case model.StatusReview:
		return model.StatusDone
	default:
		return model.StatusTodo
	}
}

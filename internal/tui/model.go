package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/existflow/taskdeck/internal/config"
	"github.com/existflow/taskdeck/internal/logger"
	"github.com/existflow/taskdeck/internal/manager"
	"github.com/existflow/taskdeck/internal/model"
)

// Pane represents which pane is focused
type Pane int

const (
	PaneSidebar Pane = iota
	PaneTasks
)

// Mode represents the current UI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeAddTask
	ModeAddProject
	ModeRenameTask
	ModeHelp
)

// ViewMode is how the current project's tasks are rendered
type ViewMode int

const (
	ViewBoard ViewMode = iota
	ViewList
	ViewTimeline
)

func (v ViewMode) String() string {
	switch v {
	case ViewList:
		return "list"
	case ViewTimeline:
		return "timeline"
	default:
		return "board"
	}
}

// sortCycle is the order the s key steps through list sort keys.
var sortCycle = []string{"", manager.SortByPriority, manager.SortByDueDate, manager.SortByStatus, manager.SortByName}

// Model is the main TUI model
type Model struct {
	mgr *manager.Manager
	cfg *config.Config

	projects []model.Project
	tasks    []model.Task
	stats    manager.Stats

	// UI state
	width      int
	height     int
	pane       Pane
	mode       Mode
	viewMode   ViewMode
	sortIdx    int
	projCursor int
	taskCursor int

	input   textinput.Model
	message string
}

// NewModel creates a new TUI model
func NewModel(mgr *manager.Manager, cfg *config.Config) Model {
	logger.Info("Initializing TUI model")

	ti := textinput.New()
	ti.Placeholder = "Enter task..."
	ti.CharLimit = 256
	ti.Width = 50

	m := Model{
		mgr:   mgr,
		cfg:   cfg,
		pane:  PaneSidebar,
		mode:  ModeNormal,
		input: ti,
	}
	m.reload()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// reload refreshes projects, the current project's tasks and its stats.
func (m *Model) reload() {
	ctx := context.Background()

	projects, err := m.mgr.GetAllProjects(ctx)
	if err != nil {
		logger.Error("Failed to load projects", logger.F("error", err))
		m.message = "Failed to load projects"
		return
	}
	m.projects = projects
	if m.projCursor >= len(m.projects) {
		m.projCursor = max(0, len(m.projects)-1)
	}

	m.tasks = nil
	m.stats = manager.Stats{}
	proj := m.currentProject()
	if proj == nil {
		return
	}

	sortBy := sortCycle[m.sortIdx]
	if m.viewMode == ViewBoard {
		sortBy = manager.SortByStatus
	} else if m.viewMode == ViewTimeline {
		sortBy = manager.SortByDueDate
	}

	tasks, err := m.mgr.GetTasksSorted(ctx, proj.ID, sortBy)
	if err != nil {
		logger.Error("Failed to load tasks", logger.F("error", err))
		m.message = "Failed to load tasks"
		return
	}
	m.tasks = tasks
	if m.taskCursor >= len(m.tasks) {
		m.taskCursor = max(0, len(m.tasks)-1)
	}

	stats, err := m.mgr.GetProjectStats(ctx, proj.ID)
	if err == nil {
		m.stats = stats
	}
}

// currentProject returns the project under the cursor, or nil.
func (m *Model) currentProject() *model.Project {
	if len(m.projects) == 0 {
		return nil
	}
	return &m.projects[m.projCursor]
}

// currentTask returns the task under the cursor, or nil.
func (m *Model) currentTask() *model.Task {
	if len(m.tasks) == 0 || m.taskCursor >= len(m.tasks) {
		return nil
	}
	return &m.tasks[m.taskCursor]
}

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/existflow/taskdeck/internal/model"
)

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	sidebar := m.renderSidebar()

	var content string
	switch m.viewMode {
	case ViewList:
		content = m.renderList()
	case ViewTimeline:
		content = m.renderTimeline()
	default:
		content = m.renderBoard()
	}

	mainContent := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)

	if m.mode == ModeAddTask || m.mode == ModeAddProject || m.mode == ModeRenameTask {
		modal := m.renderModal()
		mainContent = lipgloss.Place(
			m.width, m.height-2,
			lipgloss.Center, lipgloss.Center,
			modal,
			lipgloss.WithWhitespaceChars(" "),
		)
	}

	if m.mode == ModeHelp {
		mainContent = m.renderHelp()
	}

	return lipgloss.JoinVertical(lipgloss.Left, mainContent, m.renderStatusBar())
}

func (m Model) renderSidebar() string {
	sidebarWidth := 24
	var s string

	s += lipgloss.NewStyle().Bold(true).Foreground(Primary).Render("TaskDeck") + "\n"
	s += lipgloss.NewStyle().Foreground(Border).Render(strings.Repeat("─", 18)) + "\n\n"

	if len(m.projects) == 0 {
		s += HelpStyle.Render("No projects yet")
	}

	for i, p := range m.projects {
		cursor := "  "
		style := ItemStyle
		if i == m.projCursor {
			cursor = "❯ "
			if m.pane == PaneSidebar {
				style = ItemSelectedStyle
			}
		}
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color)).Render("●")
		s += style.Render(fmt.Sprintf("%s%s %s", cursor, swatch, truncate(p.Name, 14))) + "\n"
	}

	s += "\n" + lipgloss.NewStyle().Foreground(Border).Render(strings.Repeat("─", 18)) + "\n"
	s += HelpStyle.Render("p new project")

	return SidebarStyle.Width(sidebarWidth).Height(m.height - 2).Render(s)
}

func (m Model) renderBoard() string {
	width := m.width - 26
	proj := m.currentProject()
	if proj == nil {
		return ContentStyle.Width(width).Height(m.height - 2).Render("No project selected")
	}

	colWidth := max(16, width/len(model.Statuses)-4)
	var columns []string
	for _, status := range model.Statuses {
		var lines []string
		header := ColumnHeaderStyle.Foreground(statusColor(status)).
			Render(fmt.Sprintf("%s (%d)", status, m.stats.ByStatus[status]))
		lines = append(lines, header, "")

		for i, t := range m.tasks {
			if t.Status != status {
				continue
			}
			style := ItemStyle
			if m.pane == PaneTasks && i == m.taskCursor {
				style = ItemSelectedStyle
			}
			name := truncate(t.Name, colWidth-4)
			if t.IsOverdue() {
				name = OverdueStyle.Render(name)
			}
			lines = append(lines, style.Render(name))
			lines = append(lines, HelpStyle.Render(fmt.Sprintf("  %s %d%%", FormatPriority(t.Priority), t.Progress)))
		}

		col := ColumnStyle.Width(colWidth).Height(m.height - 6).
			Render(strings.Join(lines, "\n"))
		columns = append(columns, col)
	}

	board := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	title := HeaderStyle.Render(proj.Name)
	return ContentStyle.Width(width).Render(title + "\n" + board)
}

func (m Model) renderList() string {
	width := m.width - 26
	proj := m.currentProject()
	if proj == nil {
		return ContentStyle.Width(width).Height(m.height - 2).Render("No project selected")
	}

	var s string
	s += HeaderStyle.Render(fmt.Sprintf("%s — %d tasks", proj.Name, m.stats.Total)) + "\n\n"

	for i, t := range m.tasks {
		style := ItemStyle
		if m.pane == PaneTasks && i == m.taskCursor {
			style = ItemSelectedStyle
		}
		if t.Status == model.StatusDone {
			style = TaskDoneStyle
		}

		due := t.DueDate
		if due == "" {
			due = "—"
		}
		if t.IsOverdue() {
			due = OverdueStyle.Render(due)
		}

		line := fmt.Sprintf("%-*s  %-10s  %3d%%  %-12s  %s",
			min(40, width-44), truncate(t.Name, 40), due, t.Progress,
			t.Status, FormatPriority(t.Priority))
		if t.Assignee != "" {
			line += HelpStyle.Render("  @" + t.Assignee)
		}
		s += style.Render(line) + "\n"
	}

	if len(m.tasks) == 0 {
		s += HelpStyle.Render("No tasks. Press a to add one.")
	}

	return ContentStyle.Width(width).Height(m.height - 2).Render(s)
}

// timelineDays is the window the timeline view renders, starting today.
const timelineDays = 28

// taskSpanDays is the fixed visual duration of a task bar; the tracker
// stores no start dates, so every bar ends at its due date.
const taskSpanDays = 7

func (m Model) renderTimeline() string {
	width := m.width - 26
	proj := m.currentProject()
	if proj == nil {
		return ContentStyle.Width(width).Height(m.height - 2).Render("No project selected")
	}

	var s string
	s += HeaderStyle.Render(fmt.Sprintf("%s — timeline", proj.Name)) + "\n\n"

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	labelWidth := 22
	s += strings.Repeat(" ", labelWidth+2) + HelpStyle.Render(
		fmt.Sprintf("%s%s%s",
			today.Format("Jan 2"),
			strings.Repeat(" ", timelineDays/2-6),
			today.AddDate(0, 0, timelineDays/2).Format("Jan 2"))) + "\n"

	for i, t := range m.tasks {
		style := ItemStyle
		if m.pane == PaneTasks && i == m.taskCursor {
			style = ItemSelectedStyle
		}

		label := fmt.Sprintf("%-*s", labelWidth, truncate(t.Name, labelWidth))

		row := make([]rune, timelineDays)
		for d := range row {
			row[d] = '·'
		}
		if t.DueDate != "" {
			if due, err := time.ParseInLocation("2006-01-02", t.DueDate, time.Local); err == nil {
				end := int(due.Sub(today).Hours() / 24)
				for d := end - taskSpanDays + 1; d <= end; d++ {
					if d >= 0 && d < timelineDays {
						row[d] = '█'
					}
				}
			}
		}

		bar := lipgloss.NewStyle().Foreground(statusColor(t.Status)).Render(string(row))
		if t.IsOverdue() {
			bar = OverdueStyle.Render(string(row))
		}
		s += style.Render(label+"  "+bar) + "\n"
	}

	if len(m.tasks) == 0 {
		s += HelpStyle.Render("No tasks to plot.")
	}

	return ContentStyle.Width(width).Height(m.height - 2).Render(s)
}

func (m Model) renderModal() string {
	title := "New task"
	switch m.mode {
	case ModeAddProject:
		title = "New project"
	case ModeRenameTask:
		title = "Rename task"
	}
	content := HeaderStyle.Render(title) + "\n\n" + m.input.View() + "\n\n" +
		HelpStyle.Render("enter save · esc cancel")
	return ModalStyle.Render(content)
}

func (m Model) renderStatusBar() string {
	left := m.message
	if left == "" && m.stats.Total > 0 {
		left = fmt.Sprintf("%d tasks · %.0f%% avg progress", m.stats.Total, m.stats.AvgProgress)
	}
	right := fmt.Sprintf("view: %s · ? help · q quit", m.viewMode)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if gap < 1 {
		gap = 1
	}
	return StatusBarStyle.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) renderHelp() string {
	help := []string{
		"TaskDeck keys",
		"",
		"  ↑/k ↓/j    move",
		"  tab        switch pane",
		"  v          cycle board/list/timeline",
		"  s          cycle sort (list view)",
		"  a          add task",
		"  e          rename task",
		"  p          new project",
		"  x          advance task status",
		"  d          delete task/project",
		"  b          export backup",
		"  q          quit",
		"",
		"press any key to close",
	}
	return lipgloss.Place(
		m.width, m.height-2,
		lipgloss.Center, lipgloss.Center,
		ModalStyle.Render(strings.Join(help, "\n")),
	)
}

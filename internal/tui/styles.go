package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/existflow/taskdeck/internal/model"
)

// Color palette
var (
	// Priority colors
	PriorityHighColor   = lipgloss.Color("#EF4444") // red
	PriorityMediumColor = lipgloss.Color("#F59E0B") // amber
	PriorityLowColor    = lipgloss.Color("#3B82F6") // blue

	// Status colors
	TodoColor       = lipgloss.Color("#6C757D") // gray
	InProgressColor = lipgloss.Color("#3B82F6") // blue
	ReviewColor     = lipgloss.Color("#F59E0B") // amber
	DoneColor       = lipgloss.Color("#10B981") // green
	OverdueColor    = lipgloss.Color("#EF4444") // red

	// UI colors
	Primary   = lipgloss.Color("#8B5CF6")
	Surface   = lipgloss.Color("#16213e")
	TextMuted = lipgloss.Color("#888888")
	Border    = lipgloss.Color("#333333")
)

// Styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			Padding(0, 1)

	SidebarStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(Border).
			Padding(1, 1)

	ContentStyle = lipgloss.NewStyle().
			Padding(1, 2)

	ItemStyle = lipgloss.NewStyle().
			Padding(0, 1)

	ItemSelectedStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Background(Surface).
				Bold(true)

	TaskDoneStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Strikethrough(true).
			Padding(0, 1)

	OverdueStyle = lipgloss.NewStyle().
			Foreground(OverdueColor).
			Bold(true)

	ColumnStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)

	ColumnHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(Border)

	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	HelpStyle = lipgloss.NewStyle().
			Foreground(TextMuted)
)

// statusColor returns the accent color for a pipeline stage.
func statusColor(s model.Status) lipgloss.Color {
	switch s {
	case model.StatusInProgress:
		return InProgressColor
	case model.StatusReview:
		return ReviewColor
	case model.StatusDone:
		return DoneColor
	default:
		return TodoColor
	}
}

// FormatPriority returns a colored priority badge.
func FormatPriority(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return lipgloss.NewStyle().Foreground(PriorityHighColor).Bold(true).Render("▲ high")
	case model.PriorityLow:
		return lipgloss.NewStyle().Foreground(PriorityLowColor).Render("▽ low")
	default:
		return lipgloss.NewStyle().Foreground(PriorityMediumColor).Render("• med")
	}
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/existflow/taskdeck/internal/model"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks in a project",
	Long: `List a project's tasks, optionally filtered by status or sorted.

Examples:
  taskdeck list -P 1
  taskdeck list -P 1 --status in_progress
  taskdeck list -P 1 --sort priority`,
	RunE: runList,
}

var (
	listProject int64
	listStatus  string
	listSort    string
)

func init() {
	listCmd.Flags().Int64VarP(&listProject, "project", "P", 0, "Project id")
	listCmd.Flags().StringVarP(&listStatus, "status", "s", "", "Filter by status")
	listCmd.Flags().StringVar(&listSort, "sort", "", "Sort by: priority, due_date, status, name")
	listCmd.MarkFlagRequired("project")
}

func runList(cmd *cobra.Command, args []string) error {
	mgr, _, err := openManager()
	if err != nil {
		return err
	}
	defer mgr.Close()

	var tasks []model.Task
	if listStatus != "" {
		tasks, err = mgr.GetTasksByStatus(cmd.Context(), listProject, model.Status(listStatus))
	} else {
		tasks, err = mgr.GetTasksSorted(cmd.Context(), listProject, listSort)
	}
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found. Add one with: taskdeck add \"Your task\" -P", listProject)
		return nil
	}

	project, _ := mgr.GetProject(cmd.Context(), listProject)
	name := fmt.Sprintf("project #%d", listProject)
	if project != nil {
		name = project.Name
	}
	printTasks(name, tasks)
	return nil
}

func printTasks(projectName string, tasks []model.Task) {
	open := 0
	for _, t := range tasks {
		if t.Status != model.StatusDone {
			open++
		}
	}

	fmt.Printf("\n📁 %s (%d open)\n", projectName, open)
	fmt.Println(strings.Repeat("─", 78))

	for _, t := range tasks {
		printTask(t)
	}
	fmt.Println()
}

func printTask(t model.Task) {
	icon := "[ ]"
	if t.Status == model.StatusDone {
		icon = "[x]"
	}

	due := ""
	if t.DueDate != "" {
		due = t.DueDate
		if t.IsOverdue() {
			due += " !"
		}
	}

	assignee := t.Assignee
	if assignee != "" {
		assignee = "@" + assignee
	}

	fmt.Printf("  %s %4d  %-40s %-12s %3d%%  %-8s %-12s %s\n",
		icon, t.ID, truncate(t.Name, 40), due, t.Progress,
		priorityLabel(t.Priority), t.Status, assignee)
}

func priorityLabel(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return "▲ high"
	case model.PriorityLow:
		return "▽ low"
	default:
		return "  medium"
	}
}

// truncate shortens a string to max length with ellipsis
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/existflow/taskdeck/internal/model"
)

var addCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a new task",
	Long: `Add a new task to a project.

Examples:
  taskdeck add "Buy groceries" -P 1
  taskdeck add "Ship release" -P 2 -p high -d 2026-09-30
  taskdeck add "Draft proposal" -P 2 -s in_progress --assignee sam`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var (
	addProject  int64
	addPriority string
	addStatus   string
	addDue      string
	addProgress int
	addAssignee string
)

func init() {
	addCmd.Flags().Int64VarP(&addProject, "project", "P", 0, "Project id to add the task to")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "medium", "Priority (low, medium, high)")
	addCmd.Flags().StringVarP(&addStatus, "status", "s", "todo", "Status (todo, in_progress, review, done)")
	addCmd.Flags().StringVarP(&addDue, "due", "d", "", "Due date (YYYY-MM-DD)")
	addCmd.Flags().IntVar(&addProgress, "progress", 0, "Progress (0-100)")
	addCmd.Flags().StringVar(&addAssignee, "assignee", "", "Assignee")
	addCmd.MarkFlagRequired("project")
}

func runAdd(cmd *cobra.Command, args []string) error {
	mgr, _, err := openManager()
	if err != nil {
		return err
	}
	defer mgr.Close()

	name := strings.Join(args, " ")

	id, err := mgr.CreateTask(cmd.Context(), model.Task{
		ProjectID: addProject,
		Name:      name,
		DueDate:   addDue,
		Priority:  model.Priority(addPriority),
		Status:    model.Status(addStatus),
		Progress:  addProgress,
		Assignee:  addAssignee,
	})
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	project, _ := mgr.GetProject(cmd.Context(), addProject)
	projectName := fmt.Sprintf("#%d", addProject)
	if project != nil {
		projectName = project.Name
	}

	fmt.Printf("✓ Added to [%s]: %q (id: %d, %s)\n", projectName, name, id, addPriority)
	return nil
}

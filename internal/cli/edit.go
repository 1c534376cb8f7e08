package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/existflow/taskdeck/internal/model"
)

var editCmd = &cobra.Command{
	Use:   "edit [task-id]",
	Short: "Edit a task",
	Long: `Edit one or more fields of a task. Only the flags you pass change.
Passing --due "" clears the due date; --assignee "" clears the assignee.

Examples:
  taskdeck edit 12 --name "New title"
  taskdeck edit 12 -p high -s review
  taskdeck edit 12 --due ""`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

var statusCmd = &cobra.Command{
	Use:   "status [task-id] [status]",
	Short: "Move a task to another pipeline stage",
	Long: `Set a task's status. Any stage can move to any other stage.

Example:
  taskdeck status 12 done`,
	Args: cobra.ExactArgs(2),
	RunE: runStatus,
}

var progressCmd = &cobra.Command{
	Use:   "progress [task-id] [percent]",
	Short: "Set a task's progress percentage",
	Args:  cobra.ExactArgs(2),
	RunE:  runProgress,
}

func init() {
	editCmd.Flags().String("name", "", "New name")
	editCmd.Flags().StringP("due", "d", "", "New due date (YYYY-MM-DD), empty clears")
	editCmd.Flags().StringP("priority", "p", "", "New priority")
	editCmd.Flags().StringP("status", "s", "", "New status")
	editCmd.Flags().Int("progress", 0, "New progress (0-100)")
	editCmd.Flags().String("assignee", "", "New assignee, empty clears")
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	var patch model.TaskPatch
	if cmd.Flags().Changed("name") {
		v, _ := cmd.Flags().GetString("name")
		patch.Name = &v
	}
	if cmd.Flags().Changed("due") {
		v, _ := cmd.Flags().GetString("due")
		patch.DueDate = &v
	}
	if cmd.Flags().Changed("priority") {
		v, _ := cmd.Flags().GetString("priority")
		p := model.Priority(v)
		patch.Priority = &p
	}
	if cmd.Flags().Changed("status") {
		v, _ := cmd.Flags().GetString("status")
		s := model.Status(v)
		patch.Status = &s
	}
	if cmd.Flags().Changed("progress") {
		v, _ := cmd.Flags().GetInt("progress")
		patch.Progress = &v
	}
	if cmd.Flags().Changed("assignee") {
		v, _ := cmd.Flags().GetString("assignee")
		patch.Assignee = &v
	}

	mgr, _, err := openManager()
	if err != nil {
		return err
	}
	defer mgr.Close()

	changed, err := mgr.UpdateTask(cmd.Context(), id, patch)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if !changed {
		fmt.Println("Nothing changed.")
		return nil
	}
	fmt.Printf("✓ Updated task %d\n", id)
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	mgr, _, err := openManager()
	if err != nil {
		return err
	}
	defer mgr.Close()

	changed, err := mgr.UpdateTaskStatus(cmd.Context(), id, model.Status(args[1]))
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	if !changed {
		fmt.Printf("Task not found: %d\n", id)
		return nil
	}
	fmt.Printf("✓ Task %d → %s\n", id, args[1])
	return nil
}

func runProgress(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	pct, err := parseID(args[1])
	if err != nil {
		return fmt.Errorf("invalid progress %q", args[1])
	}

	mgr, _, err := openManager()
	if err != nil {
		return err
	}
	defer mgr.Close()

	changed, err := mgr.UpdateTaskProgress(cmd.Context(), id, int(pct))
	if err != nil {
		return fmt.Errorf("failed to update progress: %w", err)
	}
	if !changed {
		fmt.Printf("Task not found: %d\n", id)
		return nil
	}
	fmt.Printf("✓ Task %d progress → %d%%\n", id, pct)
	return nil
}

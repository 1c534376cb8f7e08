package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [task-id]",
	Aliases: []string{"rm"},
	Short:   "Delete a task",
	Long: `Delete a task by its id.

Examples:
  taskdeck delete 12
  taskdeck rm 12`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	mgr, cfg, err := openManager()
	if err != nil {
		return err
	}
	defer mgr.Close()

	task, err := mgr.GetTask(cmd.Context(), id)
	if err != nil {
		return err
	}
	if task == nil {
		return fmt.Errorf("task not found: %d", id)
	}

	if cfg.ConfirmDelete {
		fmt.Printf("About to delete: %q (id: %d)\n", task.Name, task.ID)
		fmt.Print("Are you sure? [y/N]: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "y" && confirm != "Y" {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if _, err := mgr.DeleteTask(cmd.Context(), id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	fmt.Printf("🗑️  Deleted: %q\n", task.Name)
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/existflow/taskdeck/internal/store"
)

var searchCmd = &cobra.Command{
	Use:   "search [keyword]",
	Short: "Search tasks in a project",
	Long: `Search a project's tasks. The keyword matches the task name
(case-sensitive); status, assignee and priority filters are ANDed in.

Examples:
  taskdeck search -P 1 deploy
  taskdeck search -P 1 --status todo --assignee sam`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

var (
	searchProject  int64
	searchStatus   string
	searchAssignee string
	searchPriority string
)

func init() {
	searchCmd.Flags().Int64VarP(&searchProject, "project", "P", 0, "Project id")
	searchCmd.Flags().StringVarP(&searchStatus, "status", "s", "", "Filter by status")
	searchCmd.Flags().StringVar(&searchAssignee, "assignee", "", "Filter by assignee")
	searchCmd.Flags().StringVarP(&searchPriority, "priority", "p", "", "Filter by priority")
	searchCmd.MarkFlagRequired("project")
}

func runSearch(cmd *cobra.Command, args []string) error {
	mgr, _, err := openManager()
	if err != nil {
		return err
	}
	defer mgr.Close()

	filter := store.TaskFilter{
		Status:   searchStatus,
		Assignee: searchAssignee,
		Priority: searchPriority,
	}
	if len(args) > 0 {
		filter.Keyword = args[0]
	}

	tasks, err := mgr.SearchTasks(cmd.Context(), searchProject, filter)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(tasks) == 0 {
		fmt.Println("No matching tasks.")
		return nil
	}

	project, _ := mgr.GetProject(cmd.Context(), searchProject)
	name := fmt.Sprintf("project #%d", searchProject)
	if project != nil {
		name = project.Name
	}
	printTasks(name, tasks)
	return nil
}

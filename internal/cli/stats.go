package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/existflow/taskdeck/internal/model"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics for a project",
	Long: `Show task counts per status and priority and the average progress.

Example:
  taskdeck stats -P 1`,
	RunE: runStats,
}

var statsProject int64

func init() {
	statsCmd.Flags().Int64VarP(&statsProject, "project", "P", 0, "Project id")
	statsCmd.MarkFlagRequired("project")
}

func runStats(cmd *cobra.Command, args []string) error {
	mgr, _, err := openManager()
	if err != nil {
		return err
	}
	defer mgr.Close()

	project, err := mgr.GetProject(cmd.Context(), statsProject)
	if err != nil {
		return err
	}
	if project == nil {
		return fmt.Errorf("project not found: %d", statsProject)
	}

	stats, err := mgr.GetProjectStats(cmd.Context(), statsProject)
	if err != nil {
		return fmt.Errorf("failed to compute stats: %w", err)
	}

	fmt.Printf("\n📊 %s\n", project.Name)
	fmt.Println(strings.Repeat("─", 40))
	fmt.Printf("  Total tasks     %d\n", stats.Total)
	fmt.Printf("  Avg progress    %.1f%%\n\n", stats.AvgProgress)

	fmt.Println("  By status:")
	for _, s := range model.Statuses {
		fmt.Printf("    %-12s %d\n", s, stats.ByStatus[s])
	}
	fmt.Println("\n  By priority:")
	for _, p := range model.Priorities {
		fmt.Printf("    %-12s %d\n", p, stats.ByPriority[p])
	}
	fmt.Println()
	return nil
}

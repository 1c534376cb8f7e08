package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/existflow/taskdeck/internal/model"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
	Long:  `Create, list, edit and delete projects.`,
}

var projectNewCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Create a new project",
	Long: `Create a new project for organizing tasks. Without --color the next
palette color is assigned automatically.

Examples:
  taskdeck project new "Work"
  taskdeck project new "Personal" --color "#EF4444" --desc "Home things"`,
	Args: cobra.ExactArgs(1),
	RunE: runProjectNew,
}

var projectListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all projects",
	RunE:    runProjectList,
}

var projectEditCmd = &cobra.Command{
	Use:   "edit [project-id]",
	Short: "Edit a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectEdit,
}

var projectDeleteCmd = &cobra.Command{
	Use:     "delete [project-id]",
	Aliases: []string{"rm"},
	Short:   "Delete a project and all its tasks",
	Args:    cobra.ExactArgs(1),
	RunE:    runProjectDelete,
}

var (
	projectColor string
	projectDesc  string
)

func init() {
	projectNewCmd.Flags().StringVarP(&projectColor, "color", "c", "", "Project color (hex)")
	projectNewCmd.Flags().StringVarP(&projectDesc, "desc", "D", "", "Project description")

	projectEditCmd.Flags().String("name", "", "New name")
	projectEditCmd.Flags().String("desc", "", "New description")
	projectEditCmd.Flags().String("color", "", "New color (hex)")

	projectCmd.AddCommand(projectNewCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectEditCmd)
	projectCmd.AddCommand(projectDeleteCmd)
}

// parseID parses a positional integer id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func runProjectNew(cmd *cobra.Command, args []string) error {
	mgr, _, err := openManager()
	if err != nil {
		return err
	}
	defer mgr.Close()

	id, err := mgr.CreateProject(cmd.Context(), args[0], projectDesc, projectColor)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	project, _ := mgr.GetProject(cmd.Context(), id)
	fmt.Printf("✓ Created project: %s (id: %d, color: %s)\n", args[0], id, project.Color)
	return nil
}

func runProjectList(cmd *cobra.Command, args []string) error {
	mgr, _, err := openManager()
	if err != nil {
		return err
	}
	defer mgr.Close()

	projects, err := mgr.GetAllProjects(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}

	if len(projects) == 0 {
		fmt.Println("No projects found. Create one with: taskdeck project new \"Name\"")
		return nil
	}

	fmt.Println()
	fmt.Printf("  %-5s  %-20s  %-8s  %-6s  %s\n", "ID", "Name", "Color", "Tasks", "Progress")
	fmt.Println(strings.Repeat("─", 60))

	for _, p := range projects {
		stats, err := mgr.GetProjectStats(cmd.Context(), p.ID)
		if err != nil {
			return err
		}
		open := stats.Total - stats.ByStatus[model.StatusDone]
		fmt.Printf("  %-5d  %-20s  %-8s  %d/%d  %5.0f%%\n",
			p.ID, truncate(p.Name, 20), p.Color, open, stats.Total, stats.AvgProgress)
	}

	fmt.Println(strings.Repeat("─", 60))
	fmt.Printf("  %d projects\n\n", len(projects))
	return nil
}

func runProjectEdit(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	var patch model.ProjectPatch
	if cmd.Flags().Changed("name") {
		v, _ := cmd.Flags().GetString("name")
		patch.Name = &v
	}
	if cmd.Flags().Changed("desc") {
		v, _ := cmd.Flags().GetString("desc")
		patch.Description = &v
	}
	if cmd.Flags().Changed("color") {
		v, _ := cmd.Flags().GetString("color")
		patch.Color = &v
	}

	mgr, _, err := openManager()
	if err != nil {
		return err
	}
	defer mgr.Close()

	changed, err := mgr.UpdateProject(cmd.Context(), id, patch)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	if !changed {
		fmt.Println("Nothing changed.")
		return nil
	}
	fmt.Printf("✓ Updated project %d\n", id)
	return nil
}

func runProjectDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	mgr, cfg, err := openManager()
	if err != nil {
		return err
	}
	defer mgr.Close()

	project, err := mgr.GetProject(cmd.Context(), id)
	if err != nil {
		return err
	}
	if project == nil {
		return fmt.Errorf("project not found: %d", id)
	}

	if cfg.ConfirmDelete {
		fmt.Printf("About to delete project %q and all its tasks.\n", project.Name)
		fmt.Print("Are you sure? [y/N]: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "y" && confirm != "Y" {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if _, err := mgr.DeleteProject(cmd.Context(), id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	fmt.Printf("🗑️  Deleted project: %s\n", project.Name)
	return nil
}

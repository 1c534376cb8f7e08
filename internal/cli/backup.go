package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export and import JSON backups",
}

var backupExportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Export all projects and tasks to a JSON file",
	Long: `Export a full snapshot. Without a path a timestamped file
(backup_<YYYYMMDD_HHMMSS>.json) is written to the configured backup
directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBackupExport,
}

var backupImportCmd = &cobra.Command{
	Use:   "import [path]",
	Short: "Import a JSON backup",
	Long: `Import a snapshot. Projects and tasks get fresh ids; task project
references are remapped. Tasks whose project is missing from the snapshot
are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runBackupImport,
}

func init() {
	backupCmd.AddCommand(backupExportCmd)
	backupCmd.AddCommand(backupImportCmd)
}

func runBackupExport(cmd *cobra.Command, args []string) error {
	mgr, cfg, err := openManager()
	if err != nil {
		return err
	}
	defer mgr.Close()

	path := ""
	if len(args) > 0 {
		path = args[0]
	} else if cfg.BackupDir != "" {
		if err := os.MkdirAll(cfg.BackupDir, 0755); err != nil {
			return fmt.Errorf("failed to create backup directory: %w", err)
		}
		// Let the manager synthesize the timestamped name, then place it
		// in the backup directory.
		name, err := mgr.ExportBackup(cmd.Context(), "")
		if err != nil {
			return fmt.Errorf("backup failed: %w", err)
		}
		dest := filepath.Join(cfg.BackupDir, name)
		if err := os.Rename(name, dest); err == nil {
			name = dest
		}
		fmt.Printf("✓ Exported backup: %s\n", name)
		return nil
	}

	written, err := mgr.ExportBackup(cmd.Context(), path)
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}
	fmt.Printf("✓ Exported backup: %s\n", written)
	return nil
}

func runBackupImport(cmd *cobra.Command, args []string) error {
	mgr, _, err := openManager()
	if err != nil {
		return err
	}
	defer mgr.Close()

	if err := mgr.ImportBackup(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	projects, _ := mgr.GetAllProjects(cmd.Context())
	fmt.Printf("✓ Imported backup: %s (%d projects now in store)\n", args[0], len(projects))
	return nil
}

package manager

import (
	"context"
	"fmt"
	"time"

	"github.com/existflow/taskdeck/internal/logger"
)

// ExportBackup writes a full JSON snapshot to path. When path is empty a
// name of the form backup_<YYYYMMDD_HHMMSS>.json is synthesized from the
// current local time. The path written is returned.
func (m *Manager) ExportBackup(ctx context.Context, path string) (string, error) {
	if path == "" {
		path = fmt.Sprintf("backup_%s.json", time.Now().Format("20060102_150405"))
	}

	if err := m.store.ExportJSON(ctx, path); err != nil {
		return "", err
	}
	logger.Info("Exported backup", logger.F("path", path))
	return path, nil
}

// ImportBackup restores a JSON snapshot into the store. Ids are re-issued
// and task project references remapped; see store.ImportJSON for the
// partial-failure caveats.
func (m *Manager) ImportBackup(ctx context.Context, path string) error {
	if err := m.store.ImportJSON(ctx, path); err != nil {
		return err
	}
	logger.Info("Imported backup", logger.F("path", path))
	return nil
}

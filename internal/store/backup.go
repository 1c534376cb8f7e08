package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/existflow/taskdeck/internal/model"
)

// backupDoc is the JSON snapshot format: every project and every task,
// original ids included. Ids are ephemeral labels; import re-issues them.
type backupDoc struct {
	Projects []model.Project `json:"projects"`
	Tasks    []model.Task    `json:"tasks"`
}

// ExportJSON writes all projects and tasks to path as one JSON document.
// The document is staged in a temp file and renamed into place so a
// failed export cannot leave a truncated file at path.
func (s *Store) ExportJSON(ctx context.Context, path string) error {
	projects, err := s.GetAllProjects(ctx)
	if err != nil {
		return err
	}

	doc := backupDoc{Projects: projects, Tasks: []model.Task{}}
	if doc.Projects == nil {
		doc.Projects = []model.Project{}
	}
	for _, p := range projects {
		tasks, err := s.GetTasksByProject(ctx, p.ID)
		if err != nil {
			return err
		}
		doc.Tasks = append(doc.Tasks, tasks...)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal backup: %w", err)
	}

	dir := filepath.Dir(path)
	if dir == "" {
		dir = "."
	}
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.New().String()[:8]))
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write backup: %w", err)
	}
	return nil
}

// ImportJSON reads a backup document and re-inserts its projects and
// tasks. Original ids and timestamps are dropped; the store assigns new
// ids and each task's project_id is remapped through the old-id to new-id
// table built while inserting projects. Tasks referencing a project id
// not present in that table are skipped.
//
// Import is not transactional: a failure partway leaves the rows inserted
// so far committed.
func (s *Store) ImportJSON(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}

	var doc backupDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse backup: %w", err)
	}

	idMap := make(map[int64]int64, len(doc.Projects))
	for _, p := range doc.Projects {
		newID, err := s.CreateProject(ctx, p.Name, p.Description, p.Color)
		if err != nil {
			return err
		}
		if p.ID != 0 {
			idMap[p.ID] = newID
		}
	}

	for _, t := range doc.Tasks {
		newProjectID, ok := idMap[t.ProjectID]
		if !ok {
			continue
		}
		t.ProjectID = newProjectID
		if _, err := s.CreateTask(ctx, t); err != nil {
			return err
		}
	}

	return nil
}

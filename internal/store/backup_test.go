package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/existflow/taskdeck/internal/model"
)

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := newTestStore(t)

	pid, err := src.CreateProject(ctx, "Release", "ship v2", "#10B981")
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	names := []string{"cut branch", "run QA", "tag release"}
	for i, name := range names {
		mustCreateTask(t, src, model.Task{
			ProjectID: pid,
			Name:      name,
			Priority:  model.PriorityHigh,
			Status:    model.StatusTodo,
			Progress:  i * 10,
		})
	}

	path := filepath.Join(t.TempDir(), "backup.json")
	if err := src.ExportJSON(ctx, path); err != nil {
		t.Fatalf("export: %v", err)
	}

	dst := newTestStore(t)
	if err := dst.ImportJSON(ctx, path); err != nil {
		t.Fatalf("import: %v", err)
	}

	projects, _ := dst.GetAllProjects(ctx)
	if len(projects) != 1 {
		t.Fatalf("expected 1 imported project, got %d", len(projects))
	}
	p := projects[0]
	if p.Name != "Release" || p.Description != "ship v2" || p.Color != "#10B981" {
		t.Fatalf("project fields not preserved: %+v", p)
	}

	tasks, _ := dst.GetTasksByProject(ctx, p.ID)
	if len(tasks) != len(names) {
		t.Fatalf("expected %d imported tasks, got %d", len(names), len(tasks))
	}
	for _, task := range tasks {
		if task.ProjectID != p.ID {
			t.Fatalf("task project_id %d not remapped to %d", task.ProjectID, p.ID)
		}
	}
}

func TestImportSkipsOrphanTasks(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	doc := map[string]any{
		"projects": []map[string]any{
			{"id": 7, "name": "Known", "description": "", "color": "#3B82F6"},
		},
		"tasks": []map[string]any{
			{"id": 1, "project_id": 7, "name": "kept", "priority": "medium", "status": "todo", "progress": 0},
			{"id": 2, "project_id": 99, "name": "orphan", "priority": "medium", "status": "todo", "progress": 0},
		},
	}
	data, _ := json.Marshal(doc)
	path := filepath.Join(t.TempDir(), "mixed.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	if err := s.ImportJSON(ctx, path); err != nil {
		t.Fatalf("import: %v", err)
	}

	projects, _ := s.GetAllProjects(ctx)
	if len(projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(projects))
	}
	tasks, _ := s.GetTasksByProject(ctx, projects[0].ID)
	if len(tasks) != 1 || tasks[0].Name != "kept" {
		t.Fatalf("orphan task must be skipped, got %+v", tasks)
	}
}

func TestImportMalformedJSON(t *testing.T) {
	s := newTestStore(t)
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := s.ImportJSON(context.Background(), path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestImportMissingFile(t *testing.T) {
	s := newTestStore(t)
	if err := s.ImportJSON(context.Background(), filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected read error")
	}
}

func TestExportToMissingDirectory(t *testing.T) {
	s := newTestStore(t)
	path := filepath.Join(t.TempDir(), "does", "not", "exist", "b.json")
	if err := s.ExportJSON(context.Background(), path); err == nil {
		t.Fatal("expected write error")
	}
}

func TestExportEmptyStore(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := s.ExportJSON(ctx, path); err != nil {
		t.Fatalf("export: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Projects []model.Project `json:"projects"`
		Tasks    []model.Task    `json:"tasks"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("exported document not valid JSON: %v", err)
	}
	if doc.Projects == nil || doc.Tasks == nil {
		t.Fatal("projects and tasks keys must be present arrays")
	}
}

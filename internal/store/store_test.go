package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/existflow/taskdeck/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func mustCreateProject(t *testing.T, s *Store, name string) int64 {
	t.Helper()
	id, err := s.CreateProject(context.Background(), name, "", model.DefaultColor)
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	return id
}

func mustCreateTask(t *testing.T, s *Store, task model.Task) int64 {
	t.Helper()
	if task.Priority == "" {
		task.Priority = model.PriorityMedium
	}
	if task.Status == "" {
		task.Status = model.StatusTodo
	}
	id, err := s.CreateTask(context.Background(), task)
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	return id
}

func TestProjectIDsStrictlyIncrease(t *testing.T) {
	s := newTestStore(t)
	var last int64
	for i := 0; i < 5; i++ {
		id := mustCreateProject(t, s, "p")
		if id <= last {
			t.Fatalf("id %d not greater than previous %d", id, last)
		}
		last = id
	}
}

func TestGetProjectAbsent(t *testing.T) {
	s := newTestStore(t)
	p, err := s.GetProject(context.Background(), 12345)
	if err != nil {
		t.Fatalf("get absent project: %v", err)
	}
	if p != nil {
		t.Fatalf("expected nil for absent project, got %+v", p)
	}
}

func TestGetAllProjectsNewestFirst(t *testing.T) {
	s := newTestStore(t)
	first := mustCreateProject(t, s, "first")
	second := mustCreateProject(t, s, "second")

	projects, err := s.GetAllProjects(context.Background())
	if err != nil {
		t.Fatalf("list projects: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(projects))
	}
	if projects[0].ID != second || projects[1].ID != first {
		t.Fatalf("expected order [%d %d], got [%d %d]", second, first, projects[0].ID, projects[1].ID)
	}
}

func TestUpdateProjectEmptyPatchIsNoop(t *testing.T) {
	s := newTestStore(t)
	id := mustCreateProject(t, s, "p")

	changed, err := s.UpdateProject(context.Background(), id, model.ProjectPatch{})
	if err != nil {
		t.Fatalf("update project: %v", err)
	}
	if changed {
		t.Fatal("empty patch must report no change")
	}
}

func TestUpdateProjectStampsUpdatedAt(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	id := mustCreateProject(t, s, "before")

	orig, _ := s.GetProject(ctx, id)

	name := "after"
	changed, err := s.UpdateProject(ctx, id, model.ProjectPatch{Name: &name})
	if err != nil {
		t.Fatalf("update project: %v", err)
	}
	if !changed {
		t.Fatal("expected a change")
	}

	got, _ := s.GetProject(ctx, id)
	if got.Name != "after" {
		t.Fatalf("name not updated: %q", got.Name)
	}
	if !got.UpdatedAt.After(orig.UpdatedAt) {
		t.Fatalf("updated_at did not advance: %v -> %v", orig.UpdatedAt, got.UpdatedAt)
	}
	if !got.CreatedAt.Equal(orig.CreatedAt) {
		t.Fatal("created_at must not change on update")
	}
}

func TestUpdateProjectUnknownID(t *testing.T) {
	s := newTestStore(t)
	name := "x"
	changed, err := s.UpdateProject(context.Background(), 999, model.ProjectPatch{Name: &name})
	if err != nil {
		t.Fatalf("update project: %v", err)
	}
	if changed {
		t.Fatal("update of unknown id must report no change")
	}
}

func TestDeleteProjectCascades(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	id := mustCreateProject(t, s, "p")
	other := mustCreateProject(t, s, "other")

	mustCreateTask(t, s, model.Task{ProjectID: id, Name: "a"})
	mustCreateTask(t, s, model.Task{ProjectID: id, Name: "b"})
	keep := mustCreateTask(t, s, model.Task{ProjectID: other, Name: "keep"})

	changed, err := s.DeleteProject(ctx, id)
	if err != nil {
		t.Fatalf("delete project: %v", err)
	}
	if !changed {
		t.Fatal("expected project row removed")
	}

	tasks, _ := s.GetTasksByProject(ctx, id)
	if len(tasks) != 0 {
		t.Fatalf("expected no tasks after cascade, got %d", len(tasks))
	}
	if task, _ := s.GetTask(ctx, keep); task == nil {
		t.Fatal("cascade must not touch other projects' tasks")
	}
}

func TestDeleteProjectUnknownID(t *testing.T) {
	s := newTestStore(t)
	changed, err := s.DeleteProject(context.Background(), 999)
	if err != nil {
		t.Fatalf("delete project: %v", err)
	}
	if changed {
		t.Fatal("delete of unknown id must report no change")
	}
}

func TestTaskRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	pid := mustCreateProject(t, s, "p")

	id := mustCreateTask(t, s, model.Task{
		ProjectID: pid,
		Name:      "write report",
		DueDate:   "2026-09-15",
		Priority:  model.PriorityHigh,
		Status:    model.StatusInProgress,
		Progress:  40,
		Assignee:  "sam",
	})

	got, err := s.GetTask(ctx, id)
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if got == nil {
		t.Fatal("task not found after create")
	}
	if got.ProjectID != pid || got.Name != "write report" || got.DueDate != "2026-09-15" ||
		got.Priority != model.PriorityHigh || got.Status != model.StatusInProgress ||
		got.Progress != 40 || got.Assignee != "sam" {
		t.Fatalf("task fields mismatch: %+v", got)
	}
}

func TestTaskOptionalFieldsAbsent(t *testing.T) {
	s := newTestStore(t)
	pid := mustCreateProject(t, s, "p")
	id := mustCreateTask(t, s, model.Task{ProjectID: pid, Name: "bare"})

	got, _ := s.GetTask(context.Background(), id)
	if got.DueDate != "" || got.Assignee != "" {
		t.Fatalf("expected empty optional fields, got due=%q assignee=%q", got.DueDate, got.Assignee)
	}
}

func TestGetTasksByStatus(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	pid := mustCreateProject(t, s, "p")

	mustCreateTask(t, s, model.Task{ProjectID: pid, Name: "a", Status: model.StatusTodo})
	mustCreateTask(t, s, model.Task{ProjectID: pid, Name: "b", Status: model.StatusDone})
	mustCreateTask(t, s, model.Task{ProjectID: pid, Name: "c", Status: model.StatusDone})

	done, err := s.GetTasksByStatus(ctx, pid, model.StatusDone)
	if err != nil {
		t.Fatalf("get by status: %v", err)
	}
	if len(done) != 2 {
		t.Fatalf("expected 2 done tasks, got %d", len(done))
	}
	for _, task := range done {
		if task.Status != model.StatusDone {
			t.Fatalf("unexpected status %q", task.Status)
		}
	}
}

func TestSearchTasksFiltersAreANDed(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	pid := mustCreateProject(t, s, "p")

	mustCreateTask(t, s, model.Task{ProjectID: pid, Name: "fix login bug", Status: model.StatusTodo, Assignee: "sam", Priority: model.PriorityHigh})
	mustCreateTask(t, s, model.Task{ProjectID: pid, Name: "fix logout bug", Status: model.StatusDone, Assignee: "sam", Priority: model.PriorityHigh})
	mustCreateTask(t, s, model.Task{ProjectID: pid, Name: "write docs", Status: model.StatusTodo, Assignee: "kim"})

	got, err := s.SearchTasks(ctx, pid, TaskFilter{Keyword: "fix", Status: "todo", Assignee: "sam"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 || got[0].Name != "fix login bug" {
		t.Fatalf("expected single match 'fix login bug', got %+v", got)
	}
}

func TestSearchTasksKeywordIsCaseSensitive(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	pid := mustCreateProject(t, s, "p")
	mustCreateTask(t, s, model.Task{ProjectID: pid, Name: "Deploy Service"})

	got, _ := s.SearchTasks(ctx, pid, TaskFilter{Keyword: "deploy"})
	if len(got) != 0 {
		t.Fatalf("lowercase keyword must not match capitalized name, got %d", len(got))
	}
	got, _ = s.SearchTasks(ctx, pid, TaskFilter{Keyword: "Deploy"})
	if len(got) != 1 {
		t.Fatalf("exact-case keyword should match, got %d", len(got))
	}
}

func TestSearchTasksNoFiltersReturnsAll(t *testing.T) {
	s := newTestStore(t)
	pid := mustCreateProject(t, s, "p")
	mustCreateTask(t, s, model.Task{ProjectID: pid, Name: "a"})
	mustCreateTask(t, s, model.Task{ProjectID: pid, Name: "b"})

	got, _ := s.SearchTasks(context.Background(), pid, TaskFilter{})
	if len(got) != 2 {
		t.Fatalf("expected all tasks, got %d", len(got))
	}
}

func TestUpdateTaskEmptyPatchIsNoop(t *testing.T) {
	s := newTestStore(t)
	pid := mustCreateProject(t, s, "p")
	id := mustCreateTask(t, s, model.Task{ProjectID: pid, Name: "a"})

	changed, err := s.UpdateTask(context.Background(), id, model.TaskPatch{})
	if err != nil {
		t.Fatalf("update task: %v", err)
	}
	if changed {
		t.Fatal("empty patch must report no change")
	}
}

func TestUpdateTaskClearsDueDate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	pid := mustCreateProject(t, s, "p")
	id := mustCreateTask(t, s, model.Task{ProjectID: pid, Name: "a", DueDate: "2026-01-01"})

	empty := ""
	if _, err := s.UpdateTask(ctx, id, model.TaskPatch{DueDate: &empty}); err != nil {
		t.Fatalf("update task: %v", err)
	}
	got, _ := s.GetTask(ctx, id)
	if got.DueDate != "" {
		t.Fatalf("due date not cleared: %q", got.DueDate)
	}
}

func TestDeleteTaskUnknownID(t *testing.T) {
	s := newTestStore(t)
	changed, err := s.DeleteTask(context.Background(), 999)
	if err != nil {
		t.Fatalf("delete task: %v", err)
	}
	if changed {
		t.Fatal("delete of unknown id must report no change")
	}
}

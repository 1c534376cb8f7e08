package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/existflow/taskdeck/internal/manager"
	"github.com/existflow/taskdeck/internal/model"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	mgr, err := manager.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open manager: %v", err)
	}
	t.Cleanup(func() { mgr.Close() })
	return New(mgr)
}

func doJSON(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("health = %d, want 200", rec.Code)
	}
}

func TestCreateAndGetProject(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/projects", `{"name":"Work","description":"day job"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create = %d, body %s", rec.Code, rec.Body.String())
	}

	var created struct {
		Project model.Project `json:"project"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Project.Name != "Work" || created.Project.Color == "" {
		t.Fatalf("unexpected project: %+v", created.Project)
	}

	rec = doJSON(t, s, http.MethodGet, "/api/v1/projects", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list = %d", rec.Code)
	}
	var list struct {
		Projects []model.Project `json:"projects"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list.Projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(list.Projects))
	}
}

func TestCreateProjectValidationIs400(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/api/v1/projects", `{"name":"   "}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty name = %d, want 400", rec.Code)
	}
}

func TestGetMissingProjectIs404(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/api/v1/projects/999", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing project = %d, want 404", rec.Code)
	}
}

func TestTaskLifecycle(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/projects", `{"name":"P"}`)
	var created struct {
		Project model.Project `json:"project"`
	}
	json.Unmarshal(rec.Body.Bytes(), &created)
	pid := created.Project.ID

	body := `{"project_id":` + jsonInt(pid) + `,"name":"ship it","priority":"high","due_date":"2026-10-01"}`
	rec = doJSON(t, s, http.MethodPost, "/api/v1/tasks", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create task = %d, body %s", rec.Code, rec.Body.String())
	}
	var taskResp struct {
		Task model.Task `json:"task"`
	}
	json.Unmarshal(rec.Body.Bytes(), &taskResp)
	if taskResp.Task.Priority != model.PriorityHigh || taskResp.Task.Status != model.StatusTodo {
		t.Fatalf("unexpected task: %+v", taskResp.Task)
	}

	rec = doJSON(t, s, http.MethodPatch, "/api/v1/tasks/"+jsonInt(taskResp.Task.ID), `{"status":"done","progress":100}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("patch task = %d, body %s", rec.Code, rec.Body.String())
	}
	json.Unmarshal(rec.Body.Bytes(), &taskResp)
	if taskResp.Task.Status != model.StatusDone || taskResp.Task.Progress != 100 {
		t.Fatalf("patch not applied: %+v", taskResp.Task)
	}

	rec = doJSON(t, s, http.MethodGet, "/api/v1/projects/"+jsonInt(pid)+"/stats", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("stats = %d", rec.Code)
	}
	var statsResp struct {
		Stats manager.Stats `json:"stats"`
	}
	json.Unmarshal(rec.Body.Bytes(), &statsResp)
	if statsResp.Stats.Total != 1 || statsResp.Stats.ByStatus[model.StatusDone] != 1 {
		t.Fatalf("unexpected stats: %+v", statsResp.Stats)
	}

	rec = doJSON(t, s, http.MethodDelete, "/api/v1/tasks/"+jsonInt(taskResp.Task.ID), "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete task = %d", rec.Code)
	}
}

func TestCreateTaskBadEnumIs400(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/projects", `{"name":"P"}`)
	var created struct {
		Project model.Project `json:"project"`
	}
	json.Unmarshal(rec.Body.Bytes(), &created)

	body := `{"project_id":` + jsonInt(created.Project.ID) + `,"name":"t","priority":"urgent"}`
	rec = doJSON(t, s, http.MethodPost, "/api/v1/tasks", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad priority = %d, want 400", rec.Code)
	}
}

func TestSearchEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/projects", `{"name":"P"}`)
	var created struct {
		Project model.Project `json:"project"`
	}
	json.Unmarshal(rec.Body.Bytes(), &created)
	pid := jsonInt(created.Project.ID)

	doJSON(t, s, http.MethodPost, "/api/v1/tasks", `{"project_id":`+pid+`,"name":"fix login"}`)
	doJSON(t, s, http.MethodPost, "/api/v1/tasks", `{"project_id":`+pid+`,"name":"write docs"}`)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/projects/"+pid+"/search?keyword=fix", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("search = %d", rec.Code)
	}
	var resp struct {
		Tasks []model.Task `json:"tasks"`
	}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if len(resp.Tasks) != 1 || resp.Tasks[0].Name != "fix login" {
		t.Fatalf("unexpected search result: %+v", resp.Tasks)
	}
}

func jsonInt(v int64) string {
	data, _ := json.Marshal(v)
	return string(data)
}

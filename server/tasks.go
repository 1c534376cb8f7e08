package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/existflow/taskdeck/internal/model"
	"github.com/existflow/taskdeck/internal/store"
)

type taskRequest struct {
	ProjectID *int64  `json:"project_id"`
	Name      *string `json:"name"`
	DueDate   *string `json:"due_date"`
	Priority  *string `json:"priority"`
	Status    *string `json:"status"`
	Progress  *int    `json:"progress"`
	Assignee  *string `json:"assignee"`
}

func (s *Server) handleListTasks(c echo.Context) error {
	projectID, err := paramID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	var tasks []model.Task

	if status := c.QueryParam("status"); status != "" {
		tasks, err = s.mgr.GetTasksByStatus(ctx, projectID, model.Status(status))
	} else {
		tasks, err = s.mgr.GetTasksSorted(ctx, projectID, c.QueryParam("sort"))
	}
	if err != nil {
		return fail(c, err)
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return c.JSON(http.StatusOK, map[string]any{"tasks": tasks})
}

func (s *Server) handleSearchTasks(c echo.Context) error {
	projectID, err := paramID(c)
	if err != nil {
		return err
	}

	filter := store.TaskFilter{
		Keyword:  c.QueryParam("keyword"),
		Status:   c.QueryParam("status"),
		Assignee: c.QueryParam("assignee"),
		Priority: c.QueryParam("priority"),
	}

	tasks, err := s.mgr.SearchTasks(c.Request().Context(), projectID, filter)
	if err != nil {
		return fail(c, err)
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return c.JSON(http.StatusOK, map[string]any{"tasks": tasks})
}

func (s *Server) handleCreateTask(c echo.Context) error {
	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.ProjectID == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "project_id is required")
	}

	task := model.Task{ProjectID: *req.ProjectID}
	if req.Name != nil {
		task.Name = *req.Name
	}
	if req.DueDate != nil {
		task.DueDate = *req.DueDate
	}
	if req.Priority != nil {
		task.Priority = model.Priority(*req.Priority)
	}
	if req.Status != nil {
		task.Status = model.Status(*req.Status)
	}
	if req.Progress != nil {
		task.Progress = *req.Progress
	}
	if req.Assignee != nil {
		task.Assignee = *req.Assignee
	}

	id, err := s.mgr.CreateTask(c.Request().Context(), task)
	if err != nil {
		return fail(c, err)
	}

	created, err := s.mgr.GetTask(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"task": created})
}

func (s *Server) handleGetTask(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	task, err := s.mgr.GetTask(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	if task == nil {
		return notFound(c)
	}
	return c.JSON(http.StatusOK, map[string]any{"task": task})
}

func (s *Server) handleUpdateTask(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	patch := model.TaskPatch{
		Name:     req.Name,
		DueDate:  req.DueDate,
		Progress: req.Progress,
		Assignee: req.Assignee,
	}
	if req.Priority != nil {
		p := model.Priority(*req.Priority)
		patch.Priority = &p
	}
	if req.Status != nil {
		st := model.Status(*req.Status)
		patch.Status = &st
	}

	changed, err := s.mgr.UpdateTask(c.Request().Context(), id, patch)
	if err != nil {
		return fail(c, err)
	}
	if !changed {
		return notFound(c)
	}

	task, err := s.mgr.GetTask(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"task": task})
}

func (s *Server) handleDeleteTask(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	changed, err := s.mgr.DeleteTask(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	if !changed {
		return notFound(c)
	}
	return c.NoContent(http.StatusNoContent)
}

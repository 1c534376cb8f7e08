package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/existflow/taskdeck/internal/model"
)

type projectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

func (s *Server) handleListProjects(c echo.Context) error {
	projects, err := s.mgr.GetAllProjects(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	if projects == nil {
		projects = []model.Project{}
	}
	return c.JSON(http.StatusOK, map[string]any{"projects": projects})
}

func (s *Server) handleCreateProject(c echo.Context) error {
	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	name, description, color := "", "", ""
	if req.Name != nil {
		name = *req.Name
	}
	if req.Description != nil {
		description = *req.Description
	}
	if req.Color != nil {
		color = *req.Color
	}

	id, err := s.mgr.CreateProject(c.Request().Context(), name, description, color)
	if err != nil {
		return fail(c, err)
	}

	project, err := s.mgr.GetProject(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"project": project})
}

func (s *Server) handleGetProject(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	project, err := s.mgr.GetProject(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	if project == nil {
		return notFound(c)
	}
	return c.JSON(http.StatusOK, map[string]any{"project": project})
}

func (s *Server) handleUpdateProject(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	patch := model.ProjectPatch{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	}

	changed, err := s.mgr.UpdateProject(c.Request().Context(), id, patch)
	if err != nil {
		return fail(c, err)
	}
	if !changed {
		return notFound(c)
	}

	project, err := s.mgr.GetProject(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"project": project})
}

func (s *Server) handleDeleteProject(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	changed, err := s.mgr.DeleteProject(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	if !changed {
		return notFound(c)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleProjectStats(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	stats, err := s.mgr.GetProjectStats(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"stats": stats})
}

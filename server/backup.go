package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type backupRequest struct {
	Path string `json:"path"`
}

func (s *Server) handleBackupExport(c echo.Context) error {
	var req backupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	path, err := s.mgr.ExportBackup(c.Request().Context(), req.Path)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"path": path})
}

func (s *Server) handleBackupImport(c echo.Context) error {
	var req backupRequest
	if err := c.Bind(&req); err != nil || req.Path == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "path is required")
	}

	if err := s.mgr.ImportBackup(c.Request().Context(), req.Path); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "imported"})
}

package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hy461283-sudo/pulseX/internal/version"
)

func (s *Server) handleLiveness(c echo.Context) error {
	uptime := s.clock.Since(s.startTime).Seconds()
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"uptime": uptime,
	})
}

// handleReadiness reports the data the dashboard can serve with. A
// missing dataset is degraded (the UI renders guidance), not unready.
func (s *Server) handleReadiness(c echo.Context) error {
	status := "ready"
	if s.app.DatasetSize() == 0 {
		status = "degraded"
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status":          status,
		"dataset_size":    s.app.DatasetSize(),
		"live_configured": s.app.LiveConfigured(),
	})
}

func (s *Server) handleVersion(c echo.Context) error {
	return c.JSON(http.StatusOK, version.Get())
}

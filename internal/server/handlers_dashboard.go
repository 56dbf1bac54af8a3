package server

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hy461283-sudo/pulseX/internal/analysis"
	apperrors "github.com/hy461283-sudo/pulseX/internal/errors"
)

func (s *Server) handleDashboard(c echo.Context) error {
	data := map[string]any{
		"WindowOptions":  analysis.WindowDays,
		"DefaultWindow":  defaultWindowDays,
		"DatasetSize":    s.app.DatasetSize(),
		"LiveConfigured": s.app.LiveConfigured(),
	}

	var buf bytes.Buffer
	if err := s.dashboardTemplate.Execute(&buf, data); err != nil {
		return apperrors.HandleError(c, apperrors.InternalError("failed to render dashboard", err))
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

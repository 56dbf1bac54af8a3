package server

import (
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/hy461283-sudo/pulseX/internal/config"
	"github.com/hy461283-sudo/pulseX/internal/domain"
	apperrors "github.com/hy461283-sudo/pulseX/internal/errors"
	"github.com/hy461283-sudo/pulseX/internal/logging"
)

type Server struct {
	echo              *echo.Echo
	config            *config.Config
	app               domain.AnalysisService
	clock             clockwork.Clock
	startTime         time.Time
	dashboardTemplate *template.Template
}

func NewServer(cfg *config.Config, app domain.AnalysisService, clock clockwork.Clock) (*Server, error) {
	// Parse templates once at startup
	dashboardTmpl, err := template.ParseFiles("web/templates/dashboard.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse dashboard template: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(requestIDMiddleware())
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:              e,
		config:            cfg,
		app:               app,
		clock:             clock,
		startTime:         clock.Now(),
		dashboardTemplate: dashboardTmpl,
	}

	srv.registerRoutes()

	return srv, nil
}

// requestIDMiddleware tags every request with a fresh UUID for log
// correlation and echoes it back in the X-Request-ID header.
func requestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := uuid.NewString()
			c.Set("requestID", requestID)
			c.Response().Header().Set("X-Request-ID", requestID)
			logging.WithRequest(requestID).Debug("Request received",
				"method", c.Request().Method,
				"path", c.Request().URL.Path)
			return next(c)
		}
	}
}

func (s *Server) Start() error {
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

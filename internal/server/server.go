// Package server exposes the dashboard: the presentation query surface
// over filtered aggregates, CSV export, and the operational endpoints.
package server

import (
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/domain"
	apperrors "github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/errors"
	"github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/platform/config"
	"github.com/yasirpfaisal/Twitter-Sentiment-Analysis/web"
)

// snapshotLoader is the server's view of the snapshot layer.
type snapshotLoader interface {
	Snapshot(ctx context.Context, maxAge time.Duration) ([]domain.Tweet, error)
}

// storeHealthChecker is a minimal interface for readiness checks.
type storeHealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type Server struct {
	echo              *echo.Echo
	config            *config.Config
	loader            snapshotLoader
	storeHealth       storeHealthChecker
	dashboardTemplate *template.Template
	startTime         time.Time
}

func NewServer(cfg *config.Config, loader snapshotLoader, storeHealth storeHealthChecker) (*Server, error) {
	dashboardTmpl, err := template.ParseFS(web.Templates, "templates/dashboard.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse dashboard template: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:              e,
		config:            cfg,
		loader:            loader,
		storeHealth:       storeHealth,
		dashboardTemplate: dashboardTmpl,
		startTime:         time.Now(),
	}

	srv.registerRoutes()
	return srv, nil
}

func (s *Server) Start() error {
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

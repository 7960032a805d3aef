package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	s.echo.GET("/version", s.handleVersion)

	// Dashboard page
	s.echo.GET("/", s.handleDashboard)

	// Aggregate views; all accept ?start=&end=&locations=
	s.echo.GET("/api/summary", s.handleSummary)
	s.echo.GET("/api/volume", s.handleVolume)
	s.echo.GET("/api/distribution", s.handleDistribution)
	s.echo.GET("/api/locations", s.handleLocations)
	s.echo.GET("/api/words/:label", s.handleWords)

	// Filtered raw export
	s.echo.GET("/api/export.csv", s.handleExportCSV)
}

package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/errors"
)

func (s *Server) handleDashboard(c echo.Context) error {
	data := map[string]any{
		"SearchTerm": s.config.SearchTerm,
	}
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	if err := s.dashboardTemplate.Execute(c.Response(), data); err != nil {
		return apperrors.InternalError("failed to render dashboard", err)
	}
	return nil
}

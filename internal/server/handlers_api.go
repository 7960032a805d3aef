package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/analytics"
	"github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/domain"
	apperrors "github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/errors"
)

const topLocationsLimit = 10

func (s *Server) handleSummary(c echo.Context) error {
	tweets, loadErr, err := s.filteredTweets(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"summary": analytics.Summarize(tweets),
		"error":   loadErrorIndicator(loadErr),
	})
}

func (s *Server) handleVolume(c echo.Context) error {
	tweets, loadErr, err := s.filteredTweets(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"points": analytics.VolumeOverTime(tweets),
		"error":  loadErrorIndicator(loadErr),
	})
}

func (s *Server) handleDistribution(c echo.Context) error {
	tweets, loadErr, err := s.filteredTweets(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"counts": analytics.Distribution(tweets),
		"total":  len(tweets),
		"error":  loadErrorIndicator(loadErr),
	})
}

func (s *Server) handleLocations(c echo.Context) error {
	tweets, loadErr, err := s.filteredTweets(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"locations": analytics.TopLocations(tweets, topLocationsLimit),
		"error":     loadErrorIndicator(loadErr),
	})
}

func (s *Server) handleWords(c echo.Context) error {
	labelStr := c.Param("label")
	if !domain.KnownLabel(labelStr) {
		return apperrors.ValidationError("unknown sentiment label").WithField("label", labelStr)
	}

	tweets, loadErr, err := s.filteredTweets(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"label": labelStr,
		"words": analytics.WordFrequencies(tweets, domain.Label(labelStr)),
		"error": loadErrorIndicator(loadErr),
	})
}

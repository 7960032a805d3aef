package server

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/errors"
)

// handleExportCSV streams the filtered subset as CSV. A store failure
// here is a hard error rather than a silent empty file: an export that
// quietly loses data is worse than a failed download.
func (s *Server) handleExportCSV(c echo.Context) error {
	tweets, loadErr, err := s.filteredTweets(c)
	if err != nil {
		return err
	}
	if loadErr != nil {
		return apperrors.ExternalError("record store unavailable", loadErr)
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="tweets.csv"`)
	res.WriteHeader(http.StatusOK)

	w := csv.NewWriter(res)
	if err := w.Write([]string{"created_at", "text", "label", "polarity", "location"}); err != nil {
		return apperrors.InternalError("failed to write export header", err)
	}
	for _, t := range tweets {
		record := []string{
			t.CreatedAt.UTC().Format(time.RFC3339),
			t.Text,
			string(t.Label),
			strconv.FormatFloat(t.Polarity, 'f', -1, 64),
			t.Location,
		}
		if err := w.Write(record); err != nil {
			return apperrors.InternalError("failed to write export row", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return apperrors.InternalError("failed to flush export", err)
	}
	return nil
}

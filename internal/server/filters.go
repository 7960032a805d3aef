package server

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/analytics"
	"github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/domain"
	apperrors "github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/errors"
)

const dateLayout = "2006-01-02"

type filterParams struct {
	start, end        time.Time
	hasStart, hasEnd  bool
	locations         map[string]struct{}
	locationsOriginal []string
}

func parseFilterParams(c echo.Context) (filterParams, error) {
	var p filterParams

	if raw := c.QueryParam("start"); raw != "" {
		ts, err := time.Parse(dateLayout, raw)
		if err != nil {
			return p, apperrors.ValidationError("start must be a YYYY-MM-DD date").WithField("start", raw)
		}
		p.start, p.hasStart = ts, true
	}
	if raw := c.QueryParam("end"); raw != "" {
		ts, err := time.Parse(dateLayout, raw)
		if err != nil {
			return p, apperrors.ValidationError("end must be a YYYY-MM-DD date").WithField("end", raw)
		}
		p.end, p.hasEnd = ts, true
	}

	if raw := c.QueryParam("locations"); raw != "" {
		p.locations = make(map[string]struct{})
		for _, loc := range strings.Split(raw, ",") {
			loc = strings.TrimSpace(loc)
			if loc == "" {
				continue
			}
			p.locations[loc] = struct{}{}
			p.locationsOriginal = append(p.locationsOriginal, loc)
		}
	}

	return p, nil
}

// filteredTweets loads the current snapshot and applies the request's
// filters. loadErr reports a store read failure: the returned slice is
// then empty and handlers surface the error indicator instead of
// failing the request.
func (s *Server) filteredTweets(c echo.Context) (filtered []domain.Tweet, loadErr error, err error) {
	params, err := parseFilterParams(c)
	if err != nil {
		return nil, nil, err
	}

	all, loadErr := s.loader.Snapshot(c.Request().Context(), s.config.SnapshotMaxAge)

	start, end := params.start, params.end
	if !params.hasStart || !params.hasEnd {
		min, max, ok := analytics.DateBounds(all)
		if ok {
			if !params.hasStart {
				start = min
			}
			if !params.hasEnd {
				end = max
			}
		}
	}

	return analytics.Filter(all, start, end, params.locations), loadErr, nil
}

// loadErrorIndicator renders a store failure for API consumers.
func loadErrorIndicator(loadErr error) string {
	if loadErr == nil {
		return ""
	}
	return "record store unavailable, showing empty data set"
}

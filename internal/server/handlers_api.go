package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hy461283-sudo/pulseX/internal/domain"
	apperrors "github.com/hy461283-sudo/pulseX/internal/errors"
)

const maxKeywordLen = 200

// defaultWindowDays matches the dashboard's pre-selected period.
const defaultWindowDays = 7

// emptyResultSuggestions is shown alongside a zero-match analysis so
// the UI can render the no-results path with guidance.
var emptyResultSuggestions = []string{
	"Try different keywords: popular hashtags or trending topics work best",
	"Check the spelling of the keyword",
	"Use broader terms (e.g. \"AI\" instead of \"AI-ML-DL-2024\")",
	"Try hashtags: #google, #apple",
}

type analysisResponse struct {
	*domain.Analysis
	Suggestions []string `json:"suggestions,omitempty"`
}

func (s *Server) handleAnalysis(c echo.Context) error {
	keyword := strings.TrimSpace(c.QueryParam("keyword"))
	if len(keyword) > maxKeywordLen {
		return apperrors.ValidationError("keyword too long").WithContext("max_length", maxKeywordLen)
	}

	days := defaultWindowDays
	if raw := c.QueryParam("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return apperrors.ValidationError("days must be a positive integer").WithContext("days", raw)
		}
		days = parsed
	}

	result, err := s.app.Analyze(c.Request().Context(), keyword, days)
	if err != nil {
		if errors.Is(err, domain.ErrDataUnavailable) {
			return apperrors.UnavailableError(
				"No tweet data available. Run the generate-sample command to create tweets.json, then restart the dashboard.",
				err,
			)
		}
		return apperrors.InternalError("analysis failed", err)
	}

	resp := analysisResponse{Analysis: result}
	if result.Empty() && result.DatasetSize > 0 {
		resp.Suggestions = emptyResultSuggestions
	}

	return c.JSON(http.StatusOK, resp)
}

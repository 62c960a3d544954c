package validators

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	dto "promarket.com/promarket/internal/data_models"
)

func ValidateJobRequest(r *dto.JobRequest) error {
	if strings.TrimSpace(r.Title) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if len(r.Title) > 200 {
		return echo.NewHTTPError(http.StatusBadRequest, "title must be at most 200 characters")
	}
	if strings.TrimSpace(r.Description) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "description is required")
	}
	if r.Budget <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "budget must be positive")
	}
	if r.Deadline.IsZero() {
		return echo.NewHTTPError(http.StatusBadRequest, "deadline is required")
	}
	return nil
}

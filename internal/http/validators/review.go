package validators

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	dto "promarket.com/promarket/internal/data_models"
)

func ValidateReviewRequest(r *dto.ReviewRequest) error {
	if strings.TrimSpace(r.RevieweeID) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "revieweeId is required")
	}
	if r.Rating < 1 || r.Rating > 5 {
		return echo.NewHTTPError(http.StatusBadRequest, "rating must be between 1 and 5")
	}
	return nil
}

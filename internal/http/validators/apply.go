package validators

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	dto "promarket.com/promarket/internal/data_models"
)

func ValidateApplyRequest(r *dto.ApplyRequest) error {
	if strings.TrimSpace(r.Proposal) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "proposal is required")
	}
	if r.ProposedAmount <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "proposedAmount must be positive")
	}
	return nil
}

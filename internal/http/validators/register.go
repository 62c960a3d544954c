package validators

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"promarket.com/promarket/internal/constants"
	dto "promarket.com/promarket/internal/data_models"
)

func ValidateRegisterRequest(r *dto.RegisterRequest) error {
	if strings.TrimSpace(r.FirstName) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "firstName is required")
	}
	if strings.TrimSpace(r.LastName) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "lastName is required")
	}
	if strings.TrimSpace(r.Email) == "" || !strings.Contains(r.Email, "@") {
		return echo.NewHTTPError(http.StatusBadRequest, "a valid email is required")
	}
	if len(r.Password) < 8 {
		return echo.NewHTTPError(http.StatusBadRequest, "password must be at least 8 characters")
	}
	if !constants.Role(r.Role).Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "role must be REQUESTER, TASKER or ADMIN")
	}
	return nil
}

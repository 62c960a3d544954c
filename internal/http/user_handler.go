package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "promarket.com/promarket/internal/data_models"
	middleware "promarket.com/promarket/internal/http/middlewares"
	"promarket.com/promarket/internal/services"
)

func (h *Handler) GetProfile(c echo.Context) error {
	return c.JSON(http.StatusOK, middleware.CurrentUser(c))
}

func (h *Handler) UpdateProfile(c echo.Context) error {
	var req dto.ProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	caller := middleware.CurrentUser(c)
	user, err := h.userService.UpdateProfile(c.Request().Context(), caller.ID, services.ProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Location:  req.Location,
		Bio:       req.Bio,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, user)
}

// ChangePassword acknowledges without changing anything; credential
// rotation is not wired yet.
func (h *Handler) ChangePassword(c echo.Context) error {
	var req dto.PasswordChangeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Password changed"})
}

// UploadAvatar returns a placeholder URL for the uploaded file.
func (h *Handler) UploadAvatar(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	return c.JSON(http.StatusOK, echo.Map{"url": "/uploads/" + file.Filename})
}

func (h *Handler) DeleteAccount(c echo.Context) error {
	caller := middleware.CurrentUser(c)
	if err := h.userService.DeleteAccount(c.Request().Context(), caller.ID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

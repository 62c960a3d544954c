package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	middleware "promarket.com/promarket/internal/http/middlewares"
)

func (h *Handler) RequesterDashboard(c echo.Context) error {
	caller := middleware.CurrentUser(c)
	dashboard, err := h.dashboardService.Requester(c.Request().Context(), caller)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dashboard)
}

func (h *Handler) TaskerDashboard(c echo.Context) error {
	caller := middleware.CurrentUser(c)
	dashboard, err := h.dashboardService.Tasker(c.Request().Context(), caller)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dashboard)
}

func (h *Handler) AdminDashboard(c echo.Context) error {
	dashboard, err := h.dashboardService.Admin(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dashboard)
}

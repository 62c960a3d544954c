package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Messaging and notifications have no backing implementation yet; the
// endpoints keep the API surface stable for the frontend.

func (h *Handler) ListConversations(c echo.Context) error {
	return c.JSON(http.StatusOK, []struct{}{})
}

func (h *Handler) ListMessages(c echo.Context) error {
	return c.JSON(http.StatusOK, []struct{}{})
}

func (h *Handler) SendMessage(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "sent"})
}

func (h *Handler) MarkMessageRead(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "read"})
}

func (h *Handler) ListNotifications(c echo.Context) error {
	return c.JSON(http.StatusOK, []struct{}{})
}

func (h *Handler) MarkNotificationRead(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "read"})
}

func (h *Handler) MarkAllNotificationsRead(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "all-read"})
}

func (h *Handler) DeleteNotification(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

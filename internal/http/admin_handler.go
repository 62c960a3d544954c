package http

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"promarket.com/promarket/internal/audit"
	"promarket.com/promarket/internal/constants"
	dto "promarket.com/promarket/internal/data_models"
	middleware "promarket.com/promarket/internal/http/middlewares"
	model "promarket.com/promarket/internal/models"
	repository "promarket.com/promarket/internal/repositories"
	"promarket.com/promarket/internal/services"
)

const auditLogPageSize = 20
const exportLimit = 10000

func (h *Handler) AdminListUsers(c echo.Context) error {
	page, size := pageParams(c, defaultPageSize)

	role := constants.Role(c.QueryParam("role"))
	if role != "" && !role.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown role")
	}
	status := constants.UserStatus(c.QueryParam("status"))
	if status != "" && !status.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown user status")
	}

	users, total, err := h.userService.SearchUsers(
		c.Request().Context(),
		c.QueryParam("search"),
		role,
		status,
		size,
		page*size,
	)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, NewPage(users, page, size, total))
}

func (h *Handler) AdminGetUser(c echo.Context) error {
	user, err := h.userService.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) AdminUpdateUser(c echo.Context) error {
	var req dto.AdminUserUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	role := constants.Role(req.Role)
	if !role.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown role")
	}
	status := constants.UserStatus(req.Status)
	if !status.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown user status")
	}

	user, err := h.userService.AdminUpdateUser(c.Request().Context(), c.Param("id"), services.AdminUpdateInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      role,
		Status:    status,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, user)
}

func (h *Handler) AdminDeleteUser(c echo.Context) error {
	if err := h.userService.AdminDeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) AdminListJobs(c echo.Context) error {
	page, size := pageParams(c, defaultPageSize)

	jobs, total, err := h.jobService.ListJobs(c.Request().Context(), repository.JobFilter{}, size, page*size)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, NewPage(jobs, page, size, total))
}

func (h *Handler) AdminDeleteJob(c echo.Context) error {
	caller := middleware.CurrentUser(c)
	if err := h.jobService.DeleteJob(c.Request().Context(), c.Param("id"), caller); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// AdminFlagJob acknowledges the flag and records an audit event; no job
// state changes.
func (h *Handler) AdminFlagJob(c echo.Context) error {
	caller := middleware.CurrentUser(c)
	_ = h.auditSink.Record(c.Request().Context(), audit.Event{
		Action:       "job.flag",
		ResourceID:   c.Param("id"),
		ResourceType: "job",
		ActorID:      caller.ID,
		Timestamp:    time.Now().UTC(),
	})
	return c.JSON(http.StatusOK, echo.Map{"message": "Job flagged"})
}

// AdminAuditLogs returns an empty page until a queryable audit backend
// replaces the noop sink.
func (h *Handler) AdminAuditLogs(c echo.Context) error {
	page, size := pageParams(c, auditLogPageSize)
	return c.JSON(http.StatusOK, NewPage([]struct{}{}, page, size, 0))
}

func (h *Handler) AdminAnalytics(c echo.Context) error {
	analytics, err := h.dashboardService.Analytics(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, analytics)
}

// AdminExport streams a CSV snapshot of users or jobs.
func (h *Handler) AdminExport(c echo.Context) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	switch c.Param("type") {
	case "users":
		users, _, err := h.userService.SearchUsers(c.Request().Context(), "", "", "", exportLimit, 0)
		if err != nil {
			return httpError(err)
		}
		_ = w.Write([]string{"id", "firstName", "lastName", "email", "role", "status", "createdAt"})
		for _, u := range users {
			_ = w.Write([]string{
				u.ID, u.FirstName, u.LastName, u.Email,
				string(u.Role), string(u.Status),
				u.CreatedAt.Format(time.RFC3339),
			})
		}
	case "jobs":
		jobs, _, err := h.jobService.ListJobs(c.Request().Context(), repository.JobFilter{}, exportLimit, 0)
		if err != nil {
			return httpError(err)
		}
		_ = w.Write([]string{"id", "title", "status", "budget", "requesterId", "createdAt"})
		for _, j := range jobs {
			_ = w.Write(jobCSVRow(j))
		}
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown export type")
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return httpError(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+c.Param("type")+".csv")
	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}

func jobCSVRow(j model.Job) []string {
	return []string{
		j.ID, j.Title, string(j.Status),
		strconv.FormatFloat(j.Budget, 'f', 2, 64),
		j.RequesterID,
		j.CreatedAt.Format(time.RFC3339),
	}
}

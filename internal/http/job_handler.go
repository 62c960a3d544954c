package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"promarket.com/promarket/internal/constants"
	dto "promarket.com/promarket/internal/data_models"
	middleware "promarket.com/promarket/internal/http/middlewares"
	"promarket.com/promarket/internal/http/validators"
	repository "promarket.com/promarket/internal/repositories"
	"promarket.com/promarket/internal/services"
)

// jobFilterFromQuery reads the shared five-field filter from the query
// string. Empty parameters are treated as absent.
func jobFilterFromQuery(c echo.Context) (repository.JobFilter, error) {
	filter := repository.JobFilter{
		Search:   c.QueryParam("search"),
		Location: c.QueryParam("location"),
	}

	if v := c.QueryParam("status"); v != "" {
		status := constants.JobStatus(v)
		if !status.Valid() {
			return filter, echo.NewHTTPError(http.StatusBadRequest, "unknown job status")
		}
		filter.Status = status
	}
	if v := c.QueryParam("minBudget"); v != "" {
		min, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filter, echo.NewHTTPError(http.StatusBadRequest, "minBudget must be a number")
		}
		filter.MinBudget = &min
	}
	if v := c.QueryParam("maxBudget"); v != "" {
		max, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filter, echo.NewHTTPError(http.StatusBadRequest, "maxBudget must be a number")
		}
		filter.MaxBudget = &max
	}

	return filter, nil
}

func (h *Handler) ListJobs(c echo.Context) error {
	filter, err := jobFilterFromQuery(c)
	if err != nil {
		return err
	}
	page, size := pageParams(c, defaultPageSize)

	jobs, total, err := h.jobService.ListJobs(c.Request().Context(), filter, size, page*size)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, NewPage(jobs, page, size, total))
}

func (h *Handler) GetJob(c echo.Context) error {
	job, err := h.jobService.GetJob(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, job)
}

func (h *Handler) CreateJob(c echo.Context) error {
	var req dto.JobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateJobRequest(&req); err != nil {
		return err
	}

	caller := middleware.CurrentUser(c)
	job, err := h.jobService.CreateJob(c.Request().Context(), services.JobSpec{
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
		Deadline:    req.Deadline,
		Location:    req.Location,
		Skills:      req.Skills,
	}, caller.ID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, job)
}

func (h *Handler) UpdateJob(c echo.Context) error {
	var req dto.JobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateJobRequest(&req); err != nil {
		return err
	}

	caller := middleware.CurrentUser(c)
	job, err := h.jobService.UpdateJob(c.Request().Context(), c.Param("id"), services.JobSpec{
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
		Deadline:    req.Deadline,
		Location:    req.Location,
		Skills:      req.Skills,
	}, caller)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, job)
}

func (h *Handler) DeleteJob(c echo.Context) error {
	caller := middleware.CurrentUser(c)
	if err := h.jobService.DeleteJob(c.Request().Context(), c.Param("id"), caller); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Apply(c echo.Context) error {
	var req dto.ApplyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateApplyRequest(&req); err != nil {
		return err
	}

	caller := middleware.CurrentUser(c)
	app, err := h.jobService.Apply(
		c.Request().Context(),
		c.Param("id"),
		caller.ID,
		req.Proposal,
		req.ProposedAmount,
		req.ProposedDeadline,
	)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, app)
}

func (h *Handler) ListApplications(c echo.Context) error {
	apps, err := h.jobService.ListApplications(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, apps)
}

func (h *Handler) AcceptApplication(c echo.Context) error {
	caller := middleware.CurrentUser(c)
	app, err := h.jobService.AcceptApplication(
		c.Request().Context(),
		c.Param("jobId"),
		c.Param("appId"),
		caller,
	)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, app)
}

func (h *Handler) RejectApplication(c echo.Context) error {
	caller := middleware.CurrentUser(c)
	app, err := h.jobService.RejectApplication(
		c.Request().Context(),
		c.Param("jobId"),
		c.Param("appId"),
		caller,
	)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, app)
}

func (h *Handler) CompleteJob(c echo.Context) error {
	caller := middleware.CurrentUser(c)
	job, err := h.jobService.CompleteJob(c.Request().Context(), c.Param("id"), caller)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, job)
}

func (h *Handler) MyApplications(c echo.Context) error {
	caller := middleware.CurrentUser(c)
	apps, err := h.jobService.MyApplications(c.Request().Context(), caller.ID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, apps)
}

func (h *Handler) WithdrawApplication(c echo.Context) error {
	caller := middleware.CurrentUser(c)
	app, err := h.jobService.WithdrawApplication(c.Request().Context(), c.Param("id"), caller.ID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, app)
}

func (h *Handler) CreateReview(c echo.Context) error {
	var req dto.ReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateReviewRequest(&req); err != nil {
		return err
	}

	caller := middleware.CurrentUser(c)
	review, err := h.jobService.CreateReview(
		c.Request().Context(),
		c.Param("jobId"),
		caller,
		req.RevieweeID,
		req.Rating,
		req.Comment,
	)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, review)
}

func (h *Handler) ListUserReviews(c echo.Context) error {
	summary, err := h.jobService.UserReviews(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, summary)
}

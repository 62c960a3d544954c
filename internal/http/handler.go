package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"promarket.com/promarket/internal/audit"
	apperrors "promarket.com/promarket/internal/errors"
	"promarket.com/promarket/internal/files"
	repository "promarket.com/promarket/internal/repositories"
	"promarket.com/promarket/internal/services"
)

type Handler struct {
	authService      *services.AuthService
	userService      *services.UserService
	jobService       *services.JobService
	dashboardService *services.DashboardService
	fileRepo         *repository.FileRepository
	fileStore        files.Store
	auditSink        audit.Sink
}

func NewHandler(
	authService *services.AuthService,
	userService *services.UserService,
	jobService *services.JobService,
	dashboardService *services.DashboardService,
	fileRepo *repository.FileRepository,
	fileStore files.Store,
	auditSink audit.Sink,
) *Handler {
	return &Handler{
		authService:      authService,
		userService:      userService,
		jobService:       jobService,
		dashboardService: dashboardService,
		fileRepo:         fileRepo,
		fileStore:        fileStore,
		auditSink:        auditSink,
	}
}

// httpError maps domain exceptions onto their HTTP status; anything else
// is an opaque 500.
func httpError(err error) error {
	var ex *apperrors.Exception
	if errors.As(err, &ex) {
		return echo.NewHTTPError(ex.StatusCode, ex.Message)
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}

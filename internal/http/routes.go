package http

import (
	"github.com/labstack/echo/v4"

	"promarket.com/promarket/internal/constants"
	middleware "promarket.com/promarket/internal/http/middlewares"
	"promarket.com/promarket/internal/services"
)

// Register wires every route. Public: auth endpoints, job browsing and
// user review feeds.
// Everything else sits behind the bearer-token middleware; /admin further
// requires the ADMIN role.
func Register(e *echo.Echo, h *Handler, authService *services.AuthService) {
	authenticated := middleware.Authenticate(authService)

	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)
	e.GET("/auth/verify", h.Verify)
	e.POST("/auth/forgot-password", h.ForgotPassword)
	e.POST("/auth/reset-password", h.ResetPassword)

	jobs := e.Group("/jobs")
	jobs.GET("", h.ListJobs)
	jobs.GET("/search", h.ListJobs)
	jobs.GET("/:id", h.GetJob)
	jobs.POST("", h.CreateJob, authenticated)
	jobs.PUT("/:id", h.UpdateJob, authenticated)
	jobs.DELETE("/:id", h.DeleteJob, authenticated)
	jobs.POST("/:id/apply", h.Apply, authenticated)
	jobs.GET("/:id/applications", h.ListApplications, authenticated)
	jobs.POST("/:jobId/applications/:appId/accept", h.AcceptApplication, authenticated)
	jobs.POST("/:jobId/applications/:appId/reject", h.RejectApplication, authenticated)
	jobs.POST("/:id/complete", h.CompleteJob, authenticated)
	jobs.POST("/:jobId/reviews", h.CreateReview, authenticated)

	e.GET("/applications", h.MyApplications, authenticated)
	e.POST("/applications/:id/withdraw", h.WithdrawApplication, authenticated)

	e.GET("/users/:id/reviews", h.ListUserReviews)

	user := e.Group("/user", authenticated)
	user.GET("/profile", h.GetProfile)
	user.PUT("/profile", h.UpdateProfile)
	user.PUT("/password", h.ChangePassword)
	user.POST("/avatar", h.UploadAvatar)
	user.DELETE("", h.DeleteAccount)

	admin := e.Group("/admin", authenticated, middleware.RequireRole(constants.RoleAdmin))
	admin.GET("/users", h.AdminListUsers)
	admin.GET("/users/:id", h.AdminGetUser)
	admin.PUT("/users/:id", h.AdminUpdateUser)
	admin.DELETE("/users/:id", h.AdminDeleteUser)
	admin.GET("/jobs", h.AdminListJobs)
	admin.DELETE("/jobs/:id", h.AdminDeleteJob)
	admin.POST("/jobs/:id/flag", h.AdminFlagJob)
	admin.GET("/audit-logs", h.AdminAuditLogs)
	admin.GET("/analytics", h.AdminAnalytics)
	admin.GET("/export/:type", h.AdminExport)

	dashboard := e.Group("/dashboard", authenticated)
	dashboard.GET("/requester", h.RequesterDashboard)
	dashboard.GET("/tasker", h.TaskerDashboard)
	dashboard.GET("/admin", h.AdminDashboard, middleware.RequireRole(constants.RoleAdmin))

	files := e.Group("/files", authenticated)
	files.POST("/upload", h.UploadFile)
	files.GET("/:id/download", h.DownloadFile)
	files.DELETE("/:id", h.DeleteFile)

	messages := e.Group("/messages", authenticated)
	messages.GET("", h.ListConversations)
	messages.GET("/:id", h.ListMessages)
	messages.POST("", h.SendMessage)
	messages.PUT("/:id/read", h.MarkMessageRead)

	notifications := e.Group("/notifications", authenticated)
	notifications.GET("", h.ListNotifications)
	notifications.PUT("/:id/read", h.MarkNotificationRead)
	notifications.PUT("/read-all", h.MarkAllNotificationsRead)
	notifications.DELETE("/:id", h.DeleteNotification)
}

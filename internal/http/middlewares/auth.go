package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"promarket.com/promarket/internal/auth"
	"promarket.com/promarket/internal/constants"
	model "promarket.com/promarket/internal/models"
	"promarket.com/promarket/internal/services"
)

const userContextKey = "user"

// Authenticate resolves the bearer token's email subject to a user record
// and stores it on the request context. Suspended users are turned away.
func Authenticate(authService *services.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := auth.ExtractToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			user, err := authService.Verify(c.Request().Context(), token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}
			if !user.IsActive() {
				return echo.NewHTTPError(http.StatusForbidden, "account is suspended")
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// RequireRole guards a route group behind a single role.
func RequireRole(role constants.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil || user.Role != role {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated user, or nil outside the
// Authenticate middleware.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(userContextKey).(*model.User)
	return user
}

package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/rueidis"
)

// RedisRateLimiter is the shared fixed-window variant: one counter per IP
// per window, expiring with the window. On a Redis failure the request is
// allowed through rather than rejected.
func RedisRateLimiter(client rueidis.Client, limit int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := "ratelimit:" + c.RealIP()

			count, err := client.Do(ctx, client.B().Incr().Key(key).Build()).AsInt64()
			if err != nil {
				return next(c)
			}

			if count == 1 {
				_ = client.Do(ctx, client.B().Expire().
					Key(key).
					Seconds(int64(window.Seconds())).
					Build()).Error()
			}

			if count > int64(limit) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			return next(c)
		}
	}
}

package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// Default limits for action posts: a sustained rate per client IP and the
// burst allowed on top of it.
const (
	DefaultActionRate  = 5
	DefaultActionBurst = 10
)

// RateLimiter limits requests per client IP to r per second with the given
// burst. Clients over the limit get 429.
func RateLimiter(r float64, burst int) echo.MiddlewareFunc {
	config := middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(r),
			Burst:     burst,
			ExpiresIn: 3 * time.Minute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden, "Unable to identify client.")
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			FromContext(c.Request().Context()).Warn("Rate limit exceeded", "client", identifier, "path", c.Path())
			return c.String(http.StatusTooManyRequests, "Too many requests. Please try again later.")
		},
	}
	return middleware.RateLimiterWithConfig(config)
}

// ActionRateLimiter is the limiter applied to action posts.
func ActionRateLimiter() echo.MiddlewareFunc {
	return RateLimiter(DefaultActionRate, DefaultActionBurst)
}

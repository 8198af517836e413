package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/cardshow/internal/rendering"
	"github.com/nfrund/cardshow/web/src/templates/pages"
)

// setupErrorHandling installs the HTTP error handler. echo.HTTPErrors keep
// their status and message; anything else is logged with a stack trace and
// answered with a generic 500.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		ctx := c.Request().Context()
		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			message = fmt.Sprint(he.Message)
			if he.Internal != nil {
				slog.DebugContext(ctx, "HTTP error", "status", code, "error", he.Internal)
			}
		} else {
			slog.ErrorContext(ctx, "Internal Server Error (Unhandled)",
				"error", err,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
		}

		if err := respondError(c, code, message); err != nil {
			slog.ErrorContext(ctx, "Failed to write error response", "error", err)
		}
	}
}

func respondError(c echo.Context, code int, message string) error {
	if c.Request().Method == http.MethodHead {
		return c.NoContent(code)
	}
	if r, ok := c.Echo().Renderer.(rendering.Renderer); ok && wantsHTML(c) {
		return r.RenderPage(c, code, rendering.Page{
			Title:   http.StatusText(code),
			Content: pages.Error(code, message),
		})
	}
	return c.JSON(code, map[string]string{"message": message})
}

func wantsHTML(c echo.Context) bool {
	if rendering.IsPartial(c) {
		return false
	}
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMETextHTML)
}

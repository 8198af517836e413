package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/cardshow/internal/actions"
	"github.com/nfrund/cardshow/internal/middleware"
	"github.com/nfrund/cardshow/internal/rendering"
	"github.com/nfrund/cardshow/internal/view"
	"github.com/nfrund/cardshow/web/src/templates/partials"
)

// Invoker runs registered action callbacks.
type Invoker interface {
	Invoke(ctx context.Context, id string) (actions.Result, error)
}

// ActionsHandler turns action button posts into callback invocations.
type ActionsHandler struct {
	invoker  Invoker
	renderer rendering.Renderer
}

// NewActionsHandler creates a new ActionsHandler.
func NewActionsHandler(invoker Invoker, renderer rendering.Renderer) *ActionsHandler {
	return &ActionsHandler{invoker: invoker, renderer: renderer}
}

// InvokePost runs the callback behind the posted action id. htmx requests get
// an out-of-band confirmation fragment; plain form posts get a flash message
// and a redirect back to the page they came from.
func (h *ActionsHandler) InvokePost(c echo.Context) error {
	var req ActionRequest
	if err := bind(c, &req); err != nil {
		cause := fmt.Errorf("bad action id %q: %w", c.Param("id"), actions.ErrUnknownAction)
		return echo.NewHTTPError(http.StatusNotFound, "Unknown action").SetInternal(cause)
	}

	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	res, err := h.invoker.Invoke(ctx, req.ID)
	name := res.Name
	switch {
	case errors.Is(err, actions.ErrUnknownAction):
		logger.Warn("Unknown action posted", "id", req.ID)
		return echo.NewHTTPError(http.StatusNotFound, "Unknown action").SetInternal(err)

	case err != nil:
		logger.Error("Action callback failed", "id", req.ID, "action", name, "error", err)
		if rendering.IsPartial(c) {
			return h.renderer.RenderPage(c, http.StatusOK, partials.ActionFeedback(name, "", false))
		}
		view.SetFlashError(c, partials.FeedbackText(name, "", false))
		return c.Redirect(http.StatusSeeOther, backTo(c))
	}

	logger.Info("Action invoked", "id", req.ID, "action", name)
	if rendering.IsPartial(c) {
		return h.renderer.RenderPage(c, http.StatusOK, partials.ActionFeedback(name, res.Message, true))
	}
	view.SetFlashSuccess(c, partials.FeedbackText(name, res.Message, true))
	return c.Redirect(http.StatusSeeOther, backTo(c))
}

// backTo returns the Referer path when it points at this host, or the
// catalog page otherwise.
func backTo(c echo.Context) string {
	const fallback = "/components"
	ref, err := url.Parse(c.Request().Referer())
	if err != nil || ref.Path == "" {
		return fallback
	}
	if ref.Host != "" && ref.Host != c.Request().Host {
		return fallback
	}
	back := ref.EscapedPath()
	if ref.RawQuery != "" {
		back += "?" + ref.RawQuery
	}
	return back
}

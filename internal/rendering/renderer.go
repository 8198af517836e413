package rendering

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/cardshow/internal/view"
)

// Renderer defines the contract for rendering any supported component (templ, gomponents, etc.).
type Renderer interface {
	// RenderComponent renders a component to a slice of bytes. Used by the CLI and for fragments.
	RenderComponent(ctx context.Context, component any) ([]byte, error)

	// RenderPage writes a full HTTP response. A Page is wrapped in the layout
	// unless the request is an htmx swap, in which case only its content is sent.
	RenderPage(c echo.Context, status int, component any) error
}

// Page is a titled document body. RenderPage wraps it in the layout.
type Page struct {
	Title   string
	Content any
}

// LayoutFunc wraps page content in the surrounding document.
type LayoutFunc func(c echo.Context, title string, content templ.Component) templ.Component

// UniversalRenderer is the concrete implementation that handles rendering for multiple component types.
type UniversalRenderer struct {
	layout LayoutFunc
}

// NewUniversalRenderer creates a new UniversalRenderer. layout may be nil, in
// which case pages are rendered without a surrounding document.
func NewUniversalRenderer(layout LayoutFunc) *UniversalRenderer {
	return &UniversalRenderer{layout: layout}
}

// gomponentNode is the structural interface of gomponents.Node.
type gomponentNode interface {
	Render(w io.Writer) error
}

// Component converts a supported component into a templ.Component.
func Component(component any) (templ.Component, error) {
	switch c := component.(type) {
	case templ.Component:
		return c, nil
	case gomponentNode:
		return view.AdaptGomponentToTempl(c), nil
	default:
		return nil, fmt.Errorf("unsupported component type: %T. Component must be templ.Component or implement Render(io.Writer) error (like gomponents.Node)", component)
	}
}

func (tr *UniversalRenderer) render(ctx context.Context, component any, w io.Writer) error {
	if p, ok := component.(Page); ok {
		component = p.Content
	}
	c, err := Component(component)
	if err != nil {
		return err
	}
	return c.Render(ctx, w)
}

// RenderComponent implements the Renderer interface.
func (tr *UniversalRenderer) RenderComponent(ctx context.Context, component any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tr.render(ctx, component, &buf); err != nil {
		return nil, fmt.Errorf("failed to render component to bytes: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPage implements the Renderer interface for full HTTP responses.
func (tr *UniversalRenderer) RenderPage(c echo.Context, status int, component any) error {
	if p, ok := component.(Page); ok && tr.layout != nil && !IsPartial(c) {
		content, err := Component(p.Content)
		if err != nil {
			return err
		}
		component = tr.layout(c, p.Title, content)
	}

	// Render into a buffer first so a failing component still yields a clean error response.
	var buf bytes.Buffer
	if err := tr.render(c.Request().Context(), component, &buf); err != nil {
		slog.ErrorContext(c.Request().Context(), "Failed to render component", "error", err)
		return err
	}
	return c.HTMLBlob(status, buf.Bytes())
}

// Render implements the echo.Renderer interface for use with c.Render(status, name, component).
func (tr *UniversalRenderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	if c.Response().Header().Get(echo.HeaderContentType) == "" {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	}
	return tr.render(c.Request().Context(), data, w)
}

// IsPartial reports whether the request is an htmx swap that expects a
// fragment rather than a full document. Boosted navigations get full pages.
func IsPartial(c echo.Context) bool {
	hdr := c.Request().Header
	return hdr.Get("HX-Request") == "true" && hdr.Get("HX-Boosted") != "true"
}

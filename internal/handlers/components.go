package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/cardshow/internal/catalog"
	"github.com/nfrund/cardshow/internal/rendering"
	"github.com/nfrund/cardshow/web/src/templates/pages"
	"golang.org/x/text/language"
)

// ComponentsHandler serves the catalog, the detail pages and their code tabs.
type ComponentsHandler struct {
	catalog  CatalogSource
	renderer rendering.Renderer
	locale   language.Tag
}

// NewComponentsHandler creates a new ComponentsHandler. Numbers in previews
// are formatted for locale.
func NewComponentsHandler(catalog CatalogSource, renderer rendering.Renderer, locale language.Tag) *ComponentsHandler {
	return &ComponentsHandler{catalog: catalog, renderer: renderer, locale: locale}
}

// ListGet renders the catalog page.
func (h *ComponentsHandler) ListGet(c echo.Context) error {
	return h.renderer.RenderPage(c, http.StatusOK, rendering.Page{
		Title:   "Components",
		Content: pages.Components(h.catalog.Catalog(), h.locale),
	})
}

// DetailGet renders the detail page of one component.
func (h *ComponentsHandler) DetailGet(c echo.Context) error {
	var req ComponentRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	e, err := entry(h.catalog, req.Slug)
	if err != nil {
		return err
	}
	usage, err := e.Snippet(catalog.TabUsage)
	if err != nil {
		return err
	}
	return h.renderer.RenderPage(c, http.StatusOK, rendering.Page{
		Title:   e.Name,
		Content: pages.Component(e, usage, h.locale),
	})
}

// TabGet renders one code tab as an htmx fragment.
func (h *ComponentsHandler) TabGet(c echo.Context) error {
	var req TabRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	e, err := entry(h.catalog, req.Slug)
	if err != nil {
		return err
	}
	s, err := e.Snippet(catalog.Tab(req.Tab))
	if err != nil {
		return err
	}
	return h.renderer.RenderPage(c, http.StatusOK, pages.TabPanel(s))
}

package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/cardshow/internal/rendering"
	"github.com/nfrund/cardshow/web/src/templates/pages"
)

// HomeHandler handles requests for the home page.
type HomeHandler struct {
	catalog  CatalogSource
	renderer rendering.Renderer
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(catalog CatalogSource, renderer rendering.Renderer) *HomeHandler {
	return &HomeHandler{catalog: catalog, renderer: renderer}
}

// HomeGet handles the GET request for the home page.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	return h.renderer.RenderPage(c, http.StatusOK, rendering.Page{
		Content: pages.Home(h.catalog.Catalog()),
	})
}

package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/cardshow/internal/actions"
	"github.com/nfrund/cardshow/internal/rendering"
	"github.com/nfrund/cardshow/web/src/templates/pages"
	"golang.org/x/text/language"
)

// Counter reports how often actions were invoked.
type Counter interface {
	Total() int
	Ranked() []actions.Count
}

// Lister reports which actions are registered.
type Lister interface {
	Names() []string
}

// StatsHandler renders the action statistics page.
type StatsHandler struct {
	counter  Counter
	lister   Lister
	renderer rendering.Renderer
	locale   language.Tag
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(counter Counter, lister Lister, renderer rendering.Renderer, locale language.Tag) *StatsHandler {
	return &StatsHandler{counter: counter, lister: lister, renderer: renderer, locale: locale}
}

// Broadcaster pushes a rendered fragment to every live subscriber.
type Broadcaster interface {
	Broadcast(msg []byte)
}

func (h *StatsHandler) data() pages.StatsData {
	return pages.StatsData{
		Total:      h.counter.Total(),
		Registered: len(h.lister.Names()),
		Ranked:     h.counter.Ranked(),
		Locale:     h.locale,
	}
}

// StatsGet handles the GET request for the statistics page.
func (h *StatsHandler) StatsGet(c echo.Context) error {
	return h.renderer.RenderPage(c, http.StatusOK, rendering.Page{
		Title:   "Stats",
		Content: pages.Stats(h.data()),
	})
}

// PushStats renders the current stats panel and broadcasts it to the pages
// connected to the stats stream.
func (h *StatsHandler) PushStats(ctx context.Context, b Broadcaster) error {
	html, err := h.renderer.RenderComponent(ctx, pages.StatsPanel(h.data()))
	if err != nil {
		return err
	}
	b.Broadcast(html)
	return nil
}

// HealthGet reports that the server is up.
func HealthGet(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

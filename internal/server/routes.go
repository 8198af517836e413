package server

import (
	"github.com/nfrund/cardshow/internal/actions"
	"github.com/nfrund/cardshow/internal/handlers"
	"github.com/nfrund/cardshow/internal/middleware"
	"github.com/nfrund/cardshow/web/src/templates/pages"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	locale := s.Cfg.GetLocale()

	homeHandler := handlers.NewHomeHandler(s.catalog, s.renderer)
	componentsHandler := handlers.NewComponentsHandler(s.catalog, s.renderer, locale)
	actionsHandler := handlers.NewActionsHandler(s.registry, s.renderer)
	s.stats = handlers.NewStatsHandler(s.tally, s.registry, s.renderer, locale)
	liveHandler := handlers.NewLiveHandler(s.hub)

	s.E.GET("/", homeHandler.HomeGet)

	s.E.GET("/components", componentsHandler.ListGet)
	s.E.GET("/components/:slug", componentsHandler.DetailGet)
	s.E.GET("/components/:slug/tabs/:tab", componentsHandler.TabGet)

	s.E.POST(actions.PathPrefix+":id", actionsHandler.InvokePost, middleware.ActionRateLimiter())
	s.E.GET("/stats", s.stats.StatsGet)
	s.E.GET(pages.StatsStreamPath, liveHandler.Stream)

	s.E.GET("/health", handlers.HealthGet)
}

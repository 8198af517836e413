package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/cardshow/internal/actions"
	"github.com/nfrund/cardshow/internal/catalog"
	"github.com/nfrund/cardshow/internal/config"
	"github.com/nfrund/cardshow/internal/handlers"
	"github.com/nfrund/cardshow/internal/live"
	"github.com/nfrund/cardshow/internal/middleware"
	"github.com/nfrund/cardshow/internal/pubsub"
	"github.com/nfrund/cardshow/internal/rendering"
	"github.com/nfrund/cardshow/internal/view"
	"github.com/nfrund/cardshow/web"
	"github.com/nfrund/cardshow/web/src/templates/layouts"
)

// Deps are the services the server is built from.
type Deps struct {
	Config   config.Provider
	Catalog  *catalog.Store
	Registry *actions.Registry
	Tally    *actions.Tally
	Bus      *pubsub.WatermillBridge
	Hub      *live.Hub
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	renderer *rendering.UniversalRenderer

	catalog  *catalog.Store
	registry *actions.Registry
	tally    *actions.Tally
	bus      *pubsub.WatermillBridge
	hub      *live.Hub
	stats    *handlers.StatsHandler
}

// New creates a new Server instance with middleware and routes registered.
func New(deps Deps) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	setupErrorHandling(e)

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.Logger)
	e.Use(middleware.RequestLogger())
	e.Use(echomw.Recover())

	// Sessions only carry flash messages after non-htmx action posts.
	store := sessions.NewCookieStore([]byte(deps.Config.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	e.StaticFS("/static", web.Static())

	renderer := rendering.NewUniversalRenderer(layout)
	e.Renderer = renderer

	s := &Server{
		E:        e,
		Cfg:      deps.Config,
		renderer: renderer,
		catalog:  deps.Catalog,
		registry: deps.Registry,
		tally:    deps.Tally,
		bus:      deps.Bus,
		hub:      deps.Hub,
	}
	s.RegisterRoutes()
	s.tally.OnChange(s.pushStats)
	return s
}

// layout wraps every full page in the base document with this request's flashes.
func layout(c echo.Context, title string, content templ.Component) templ.Component {
	return layouts.Base(title, view.GetFlashData(c), content)
}

// pushStats sends the refreshed stats panel to every open stats page.
func (s *Server) pushStats() {
	if err := s.stats.PushStats(context.Background(), s.hub); err != nil {
		slog.Error("Failed to push stats", "error", err)
	}
}

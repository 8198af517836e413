package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/coder/websocket"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/cardshow/internal/actions"
	"github.com/nfrund/cardshow/internal/catalog"
	"github.com/nfrund/cardshow/internal/handlers"
	"github.com/nfrund/cardshow/internal/live"
	"github.com/nfrund/cardshow/internal/rendering"
	"github.com/nfrund/cardshow/internal/view"
	"github.com/nfrund/cardshow/web/src/templates/layouts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

type fixture struct {
	e        *echo.Echo
	store    *catalog.Store
	registry *actions.Registry
	tally    *actions.Tally
	stats    *handlers.StatsHandler
	hub      *live.Hub
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	registry := actions.NewRegistry(nil)
	store, err := catalog.NewStore(catalog.NewLoader(catalog.EmbeddedFs()), registry)
	require.NoError(t, err)
	tally := actions.NewTally()
	hub := live.NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)

	renderer := rendering.NewUniversalRenderer(func(c echo.Context, title string, content templ.Component) templ.Component {
		return layouts.Base(title, view.GetFlashData(c), content)
	})

	e := echo.New()
	e.Validator = handlers.NewValidator()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("test-secret-test-secret-test-sec"))))

	home := handlers.NewHomeHandler(store, renderer)
	comps := handlers.NewComponentsHandler(store, renderer, language.AmericanEnglish)
	acts := handlers.NewActionsHandler(registry, renderer)
	stats := handlers.NewStatsHandler(tally, registry, renderer, language.AmericanEnglish)

	e.GET("/", home.HomeGet)
	e.GET("/components", comps.ListGet)
	e.GET("/components/:slug", comps.DetailGet)
	e.GET("/components/:slug/tabs/:tab", comps.TabGet)
	e.POST("/actions/:id", acts.InvokePost)
	e.GET("/stats", stats.StatsGet)
	e.GET("/ws/stats", handlers.NewLiveHandler(hub).Stream)
	e.GET("/health", handlers.HealthGet)

	return &fixture{e: e, store: store, registry: registry, tally: tally, stats: stats, hub: hub}
}

func (f *fixture) do(method, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

var htmx = map[string]string{"HX-Request": "true"}

func TestPages(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		target string
		status int
		want   []string
	}{
		{"home", "/", http.StatusOK, []string{"<title>Card Components</title>", "Featured Components"}},
		{"catalog", "/components", http.StatusOK, []string{"<title>Components - Card Components</title>", "Component Library", "$45,231"}},
		{"detail", "/components/pricing-card", http.StatusOK, []string{"<title>Pricing Card - Card Components</title>", "Most Popular", "API Reference"}},
		{"unknown component", "/components/carousel", http.StatusNotFound, []string{"Component not found"}},
		{"stats", "/stats", http.StatusOK, []string{"Total Actions", "No actions triggered yet"}},
		{"health", "/health", http.StatusOK, []string{"OK"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(http.MethodGet, tt.target, nil)
			assert.Equal(t, tt.status, rec.Code)
			for _, s := range tt.want {
				assert.Contains(t, rec.Body.String(), s)
			}
		})
	}
}

func TestDetail_HTMXGetsFragment(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodGet, "/components/blog-card", htmx)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, strings.ToLower(rec.Body.String()), "<!doctype html>")
	assert.Contains(t, rec.Body.String(), "Jan 15, 2024")
}

func TestTabGet(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		tab    string
		status int
		want   string
	}{
		{"usage", http.StatusOK, "cards.StatisticsCard"},
		{"advanced", http.StatusOK, "No example for this component yet."},
		{"source", http.StatusOK, "func StatisticsCard("},
		{"props", http.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		t.Run(tt.tab, func(t *testing.T) {
			rec := f.do(http.MethodGet, "/components/statistics-card/tabs/"+tt.tab, htmx)
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}

	rec := f.do(http.MethodGet, "/components/carousel/tabs/usage", htmx)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInvokePost_HTMX(t *testing.T) {
	f := newFixture(t)
	calls := 0
	h := f.registry.Register("test.click", func() { calls++ })

	rec := f.do(http.MethodPost, h.Path(), htmx)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, calls)
	assert.Contains(t, rec.Body.String(), `hx-swap-oob="true"`)
	assert.Contains(t, rec.Body.String(), "Action triggered: test.click")
}

func TestInvokePost_FormRedirectsWithFlash(t *testing.T) {
	f := newFixture(t)
	h := f.registry.Register("test.click", func() {})

	rec := f.do(http.MethodPost, h.Path(), map[string]string{"Referer": "http://example.com/components/pricing-card"})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/components/pricing-card", rec.Header().Get(echo.HeaderLocation))
	assert.Contains(t, rec.Header().Get("Set-Cookie"), "flash-session=")
}

func TestInvokePost_ForeignRefererFallsBack(t *testing.T) {
	f := newFixture(t)
	h := f.registry.Register("test.click", func() {})

	rec := f.do(http.MethodPost, h.Path(), map[string]string{"Referer": "https://evil.test/phish"})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/components", rec.Header().Get(echo.HeaderLocation))
}

func TestInvokePost_Errors(t *testing.T) {
	f := newFixture(t)
	broken := f.registry.Register("test.broken", func() { panic("boom") })

	rec := f.do(http.MethodPost, "/actions/7d4f1a2e-0c1b-4b8e-9a51-3f1d2c6b8e90", htmx)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(http.MethodPost, "/actions/not-a-uuid", htmx)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(http.MethodPost, broken.Path(), htmx)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Action failed: test.broken")
	assert.Contains(t, rec.Body.String(), `data-status="error"`)
}

func TestInvokePost_MalformedIDIsUnknown(t *testing.T) {
	f := newFixture(t)
	acts := handlers.NewActionsHandler(f.registry, rendering.NewUniversalRenderer(nil))

	req := httptest.NewRequest(http.MethodPost, "/actions/not-a-uuid", nil)
	c := f.e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/actions/:id")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := acts.InvokePost(c)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusNotFound, he.Code)
	assert.ErrorIs(t, he.Internal, actions.ErrUnknownAction)
	assert.NotErrorAs(t, he.Internal, new(*echo.HTTPError))
}

func TestStats_CountsTally(t *testing.T) {
	f := newFixture(t)
	f.tally.Record("pricing-card.Pro Plan Get Started")
	f.tally.Record("pricing-card.Pro Plan Get Started")

	rec := f.do(http.MethodGet, "/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-action="pricing-card.Pro Plan Get Started"`)
	assert.NotContains(t, rec.Body.String(), "No actions triggered yet")
}

func TestLive_StreamsPushedStats(t *testing.T) {
	f := newFixture(t)
	srv := httptest.NewServer(f.e)
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http")+"/ws/stats", nil)
	require.NoError(t, err)
	defer conn.CloseNow()

	f.tally.Record("blog-card.How to Build Amazing UIs Read More")

	// The subscription is registered after the handshake, so keep pushing
	// until the first fragment arrives.
	pushing, stop := context.WithCancel(ctx)
	defer stop()
	go func() {
		for pushing.Err() == nil {
			_ = f.stats.PushStats(pushing, f.hub)
			time.Sleep(20 * time.Millisecond)
		}
	}()

	typ, msg, err := conn.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, websocket.MessageText, typ)
	assert.True(t, strings.HasPrefix(string(msg), `<div id="stats-panel"`))
	assert.Contains(t, string(msg), `data-action="blog-card.How to Build Amazing UIs Read More"`)

	conn.Close(websocket.StatusNormalClosure, "")
}

func TestLive_RejectsPlainRequests(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodGet, "/ws/stats", nil)
	assert.Equal(t, http.StatusUpgradeRequired, rec.Code)
}

func TestInvokePost_ScriptMessage(t *testing.T) {
	f := newFixture(t)
	e, err := f.store.Catalog().Get("interactive-card")
	require.NoError(t, err)
	handle := e.Samples.Interactive[0].Action.Handle

	rec := f.do(http.MethodPost, handle.Path(), htmx)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Learn More clicked 1 time(s)")
	assert.NotContains(t, rec.Body.String(), "Action triggered")
}

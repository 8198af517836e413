// Package app wires the application services into a dependency container.
package app

import (
	"log/slog"

	"github.com/nfrund/cardshow/internal/actions"
	"github.com/nfrund/cardshow/internal/catalog"
	"github.com/nfrund/cardshow/internal/config"
	"github.com/nfrund/cardshow/internal/live"
	"github.com/nfrund/cardshow/internal/pubsub"
	"github.com/nfrund/cardshow/internal/server"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
)

// New returns an injector providing every service of the application.
// Services are built lazily on first invocation.
func New(cfg config.Provider) *do.RootScope {
	i := do.New()

	do.ProvideValue(i, cfg)
	do.Provide(i, NewBus)
	do.Provide(i, NewHub)
	do.Provide(i, NewRegistry)
	do.Provide(i, NewTally)
	do.Provide(i, NewCatalogFs)
	do.Provide(i, NewCatalogStore)
	do.Provide(i, NewServer)

	return i
}

// NewBus provides the in-memory event bus.
func NewBus(i do.Injector) (*pubsub.WatermillBridge, error) {
	return pubsub.NewWatermillBridge(), nil
}

// NewHub provides the hub pushing live fragments to browsers.
func NewHub(i do.Injector) (*live.Hub, error) {
	return live.NewHub(), nil
}

// NewRegistry provides the action registry, publishing to the bus.
func NewRegistry(i do.Injector) (*actions.Registry, error) {
	bus, err := do.Invoke[*pubsub.WatermillBridge](i)
	if err != nil {
		return nil, err
	}
	return actions.NewRegistry(bus), nil
}

// NewTally provides the action counter.
func NewTally(i do.Injector) (*actions.Tally, error) {
	return actions.NewTally(), nil
}

// NewCatalogFs provides the filesystem the catalog is read from: CATALOG_DIR
// when set, the embedded catalog otherwise.
func NewCatalogFs(i do.Injector) (afero.Fs, error) {
	cfg, err := do.Invoke[config.Provider](i)
	if err != nil {
		return nil, err
	}
	if dir := cfg.GetCatalogDir(); dir != "" {
		slog.Info("Using catalog directory", "dir", dir)
		return catalog.DirFs(dir), nil
	}
	return catalog.EmbeddedFs(), nil
}

// NewCatalogStore provides the catalog store with its actions bound.
func NewCatalogStore(i do.Injector) (*catalog.Store, error) {
	fs, err := do.Invoke[afero.Fs](i)
	if err != nil {
		return nil, err
	}
	registry, err := do.Invoke[*actions.Registry](i)
	if err != nil {
		return nil, err
	}
	return catalog.NewStore(catalog.NewLoader(fs), registry)
}

// NewServer provides the HTTP server.
func NewServer(i do.Injector) (*server.Server, error) {
	deps := server.Deps{
		Config:   do.MustInvoke[config.Provider](i),
		Bus:      do.MustInvoke[*pubsub.WatermillBridge](i),
		Registry: do.MustInvoke[*actions.Registry](i),
		Tally:    do.MustInvoke[*actions.Tally](i),
		Hub:      do.MustInvoke[*live.Hub](i),
	}
	store, err := do.Invoke[*catalog.Store](i)
	if err != nil {
		return nil, err
	}
	deps.Catalog = store
	return server.New(deps), nil
}

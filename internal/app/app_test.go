package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nfrund/cardshow/internal/app"
	"github.com/nfrund/cardshow/internal/catalog"
	"github.com/nfrund/cardshow/internal/config"
	"github.com/nfrund/cardshow/internal/server"
	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EmbeddedCatalog(t *testing.T) {
	i := app.New(config.FromEnv(func(string) string { return "" }))

	srv, err := do.Invoke[*server.Server](i)
	require.NoError(t, err)
	require.NotNil(t, srv.E)

	store, err := do.Invoke[*catalog.Store](i)
	require.NoError(t, err)
	assert.Len(t, store.Catalog().Entries, 6)

	again := do.MustInvoke[*catalog.Store](i)
	assert.Same(t, store, again, "services are singletons")
}

func TestNew_CatalogDir(t *testing.T) {
	dir := t.TempDir()
	doc := `
components:
  - slug: only
    name: Only
    kind: statistics
    description: One entry.
    usage: {basic: x}
    samples:
      statistics:
        - title: Users
          value: 1
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, catalog.FileName), []byte(doc), 0o644))

	i := app.New(config.FromEnv(func(k string) string {
		if k == "CATALOG_DIR" {
			return dir
		}
		return ""
	}))

	store, err := do.Invoke[*catalog.Store](i)
	require.NoError(t, err)
	assert.Equal(t, []string{"only"}, store.Catalog().Slugs())
}

func TestNew_InvalidCatalogFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, catalog.FileName), []byte("components: []"), 0o644))

	i := app.New(config.FromEnv(func(k string) string {
		if k == "CATALOG_DIR" {
			return dir
		}
		return ""
	}))

	_, err := do.Invoke[*server.Server](i)
	assert.ErrorContains(t, err, catalog.ErrInvalidCatalog.Error())
}

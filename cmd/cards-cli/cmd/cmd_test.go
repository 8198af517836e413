package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns what it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	catalogDir, localeFlag = "", "en-US"
	listOutputFormat, listKindFilter = "table", ""
	renderSample = -1

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "cards-cli v"+version+"\n", out)
}

func TestList(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "SLUG")
	assert.Contains(t, out, "statistics-card")

	out, err = run(t, "list", "--format", "json", "--kind", "pricing")
	require.NoError(t, err)
	var rows []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "pricing-card", rows[0]["slug"])

	out, err = run(t, "list", "--kind", "nope")
	require.NoError(t, err)
	assert.Contains(t, out, "No components found.")

	_, err = run(t, "list", "--format", "xml")
	assert.ErrorContains(t, err, `invalid format "xml"`)
}

func TestRender(t *testing.T) {
	out, err := run(t, "render", "statistics-card", "--sample", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "$45,231")
	assert.NotContains(t, out, "Subscriptions")

	out, err = run(t, "render", "statistics-card", "--locale", "de-DE")
	require.NoError(t, err)
	assert.Contains(t, out, "45.231")
	assert.Contains(t, out, "Subscriptions")

	_, err = run(t, "render", "nope")
	assert.ErrorContains(t, err, "component not found")

	_, err = run(t, "render", "statistics-card", "--sample", "99")
	assert.Error(t, err)

	_, err = run(t, "render", "statistics-card", "--locale", "!!")
	assert.ErrorContains(t, err, "invalid locale")
}

func TestValidate(t *testing.T) {
	out, err := run(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "catalog OK: 6 components")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "catalog.yaml"), []byte("title: x\ncomponents: []\n"), 0o644))
	_, err = run(t, "validate", "--dir", dir)
	assert.ErrorContains(t, err, "invalid catalog")
}

func TestNewCard(t *testing.T) {
	orig := cardFs
	cardFs = afero.NewMemMapFs()
	t.Cleanup(func() { cardFs = orig })

	out, err := run(t, "new-card", "product-tour")
	require.NoError(t, err)
	assert.Contains(t, out, "Created internal/cards/product_tour.go")

	ok, err := afero.Exists(cardFs, "internal/cards/product_tour.go")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = run(t, "new-card", "product-tour")
	assert.ErrorContains(t, err, "already exists")

	_, err = run(t, "new-card", "Bad_Name")
	assert.ErrorContains(t, err, "lower-case words")
}

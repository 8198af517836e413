package ui_test

import (
	"strings"
	"testing"

	"github.com/nfrund/cardshow/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestClasses(t *testing.T) {
	assert.Equal(t, "a b c", ui.Classes("a", "", " b ", ui.When(false, "x"), ui.When(true, "c")))
	assert.Equal(t, "", ui.Classes("", ui.When(false, "x")))
	assert.Equal(t, "yes", ui.Choose(true, "yes", "no"))
	assert.Nil(t, ui.Class("", ""))
}

func TestBadge(t *testing.T) {
	html := render(t, ui.Badge(ui.BadgeOutline, "ml-2", g.Text("New")))
	assert.Contains(t, html, `data-variant="outline"`)
	assert.Contains(t, html, "ml-2")
	assert.Contains(t, html, ">New</span>")

	html = render(t, ui.Badge("sparkly", "", g.Text("x")))
	assert.Contains(t, html, `data-variant="default"`, "unknown variants fall back to default")

	assert.True(t, ui.BadgeDestructive.Valid())
	assert.False(t, ui.BadgeVariant("sparkly").Valid())
	assert.Equal(t, ui.BadgeSecondary, ui.BadgeVariant("").Or(ui.BadgeSecondary))
}

func TestButton(t *testing.T) {
	html := render(t, ui.Button(ui.ButtonOutline, ui.SizeLg, "w-full", g.Text("Go")))
	assert.Contains(t, html, `type="button"`)
	assert.Contains(t, html, "border bg-background")
	assert.Contains(t, html, "h-10")
	assert.Contains(t, html, "w-full")

	link := render(t, ui.LinkButton("/components", ui.ButtonGhost, ui.SizeSm, "", g.Text("Back")))
	assert.Contains(t, link, `href="/components"`)
	assert.Contains(t, link, "hover:bg-accent")
}

func TestCardPrimitives(t *testing.T) {
	html := render(t, ui.Card("extra",
		ui.CardHeader("", ui.CardTitle("", g.Text("T")), ui.CardDescription("", g.Text("D"))),
		ui.CardContent("", g.Text("C")),
	))
	for _, slot := range []string{"card", "card-header", "card-title", "card-description", "card-content"} {
		assert.Contains(t, html, `data-slot="`+slot+`"`)
	}
	assert.Contains(t, html, "extra")
}

func TestCopyButton(t *testing.T) {
	html := render(t, ui.CopyButton(`<a href="x">`, "Copy Code"))
	assert.Contains(t, html, "data-copy")
	assert.Contains(t, html, `data-code="&lt;a href=&#34;x&#34;&gt;"`)
	assert.Contains(t, html, `data-copied-label="Copied!"`)
	assert.Contains(t, html, ">Copy Code</span>")
}

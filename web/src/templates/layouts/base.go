package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/nfrund/cardshow/internal/ui"
	"github.com/nfrund/cardshow/internal/view"
	"github.com/nfrund/cardshow/web/src/templates/partials"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

const (
	tailwindCDN = "https://cdn.tailwindcss.com"
	htmxCDN     = "https://unpkg.com/htmx.org@2.0.4"
	htmxWsCDN   = "https://unpkg.com/htmx-ext-ws@2.0.1/ws.js"
	lucideCDN   = "https://unpkg.com/lucide@0.468.0/dist/umd/lucide.min.js"

	description = "A curated collection of accessible, reusable card components rendered on the server with Go."
)

// Base wraps content in the site document. It is a templ.Component so that
// both templ and gomponents pages can be placed in it.
func Base(title string, flash view.FlashData, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Document(title, flash, view.AdaptTemplToGomponent(ctx, content)).Render(w)
	})
}

// Document is the gomponents form of Base.
func Document(title string, flash view.FlashData, content g.Node) g.Node {
	return h.Doctype(
		h.HTML(h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.Meta(h.Name("description"), h.Content(description)),
				h.TitleEl(g.Text(CalculateTitle(title))),
				h.Link(h.Rel("stylesheet"), h.Href("/static/css/app.css")),
				h.Script(h.Src(tailwindCDN)),
				h.Script(h.Src("/static/js/tailwind.config.js")),
				h.Script(h.Src(htmxCDN), h.Defer()),
				h.Script(h.Src(htmxWsCDN), h.Defer()),
				h.Script(h.Src(lucideCDN), h.Defer()),
				h.Script(h.Src("/static/js/app.js"), h.Defer()),
			),
			h.Body(
				h.Class("min-h-screen bg-gradient-to-br from-background to-muted/50 text-foreground antialiased"),
				hx.Boost("true"),
				navbar(),
				partials.Flash(flash),
				partials.FeedbackRegion(),
				h.Main(content),
				footer(),
			),
		),
	)
}

func navbar() g.Node {
	return h.Nav(
		h.Class("border-b bg-background/95 backdrop-blur"),
		h.Div(h.Class("container mx-auto px-4 py-3 flex items-center justify-between"),
			h.A(h.Href("/"), h.Class("font-bold text-lg"), g.Text(SiteName)),
			h.Div(h.Class("flex items-center gap-2"),
				ui.LinkButton("/components", ui.ButtonGhost, ui.SizeSm, "", g.Text("Components")),
				ui.LinkButton("/stats", ui.ButtonGhost, ui.SizeSm, "", g.Text("Stats")),
			),
		),
	)
}

func footer() g.Node {
	return h.Footer(
		h.Class("border-t py-6 text-center text-sm text-muted-foreground"),
		g.Text("Rendered on the server with gomponents and htmx."),
	)
}

package pages

import (
	"github.com/nfrund/cardshow/internal/catalog"
	"github.com/nfrund/cardshow/internal/ui"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type highlight struct {
	icon, title, description string
}

var highlights = []highlight{
	{"palette", "Beautiful Design", "Carefully crafted components with attention to detail and modern aesthetics"},
	{"zap", "Server Rendered", "Plain HTML from Go functions, no client framework and no build step"},
	{"code", "Developer Experience", "Typed props, copyable examples and the full component source on every page"},
}

// Home is the landing page: hero, highlights and the featured components.
func Home(c *catalog.Catalog) g.Node {
	return h.Div(
		hero(c),
		section("Why Choose Our Components?",
			"Built with modern technologies and best practices to help you create amazing user interfaces faster.",
			h.Div(h.Class("grid grid-cols-1 md:grid-cols-3 gap-8"),
				g.Map(highlights, func(hl highlight) g.Node {
					return ui.Card("border-2 hover:border-primary/50 transition-colors",
						ui.CardHeader("",
							h.Div(h.Class("w-12 h-12 rounded-lg bg-primary/10 flex items-center justify-center mb-4"),
								ui.Icon(hl.icon, "w-6 h-6 text-primary"),
							),
							ui.CardTitle("", g.Text(hl.title)),
							ui.CardDescription("", g.Text(hl.description)),
						),
					)
				}),
			),
		),
		section("Featured Components",
			"Explore some of our most popular components that developers love",
			h.Div(h.Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-6"),
				g.Map(c.Entries, func(e catalog.Entry) g.Node {
					return ui.Card("hover:shadow-lg transition-shadow",
						h.Data("entry", e.Slug),
						ui.CardHeader("",
							ui.CardTitle("text-lg", g.Text(e.Name)),
							ui.CardDescription("", g.Text(e.Description)),
						),
						ui.CardContent("",
							ui.LinkButton(DetailPath(e.Slug), ui.ButtonOutline, ui.SizeSm, "", g.Text("View Component")),
						),
					)
				}),
			),
		),
		h.Section(h.Class("container mx-auto px-4 py-20 text-center"),
			h.Div(h.Class("max-w-3xl mx-auto"),
				h.H2(h.Class("text-3xl font-bold mb-6"), g.Text("Start Building Amazing UIs Today")),
				h.P(h.Class("text-muted-foreground mb-8"),
					g.Text("Copy a component into your project and render it from any handler."),
				),
				h.Div(h.Class("flex gap-4 justify-center"),
					ui.LinkButton("/components", ui.ButtonDefault, ui.SizeLg, "", g.Text("Get Started")),
					g.If(c.Repository != "",
						externalButton(c.Repository, ui.IconStar, "Star on GitHub"),
					),
				),
			),
		),
	)
}

func hero(c *catalog.Catalog) g.Node {
	return h.Section(h.Class("container mx-auto px-4 py-20 text-center"),
		h.Div(h.Class("max-w-4xl mx-auto"),
			ui.Badge(ui.BadgeOutline, "mb-4", ui.Icon(ui.IconGithub, "w-4 h-4 mr-2"), g.Text("Open Source")),
			h.H1(h.Class("text-5xl font-bold mb-6 bg-gradient-to-r from-primary to-primary/60 bg-clip-text text-transparent"),
				g.Text(c.Title),
			),
			h.P(h.Class("text-xl text-muted-foreground mb-8 max-w-2xl mx-auto"), g.Text(c.Description)),
			h.Div(h.Class("flex gap-4 justify-center flex-wrap"),
				ui.LinkButton("/components", ui.ButtonDefault, ui.SizeLg, "",
					ui.Icon("code", "w-4 h-4 mr-2"), g.Text("Browse Components"),
				),
				g.If(c.Repository != "",
					externalButton(c.Repository, ui.IconGithub, "View on GitHub"),
				),
			),
		),
	)
}

func section(title, lead string, body g.Node) g.Node {
	return h.Section(h.Class("container mx-auto px-4 py-20"),
		h.Div(h.Class("text-center mb-12"),
			h.H2(h.Class("text-3xl font-bold mb-4"), g.Text(title)),
			h.P(h.Class("text-muted-foreground max-w-2xl mx-auto"), g.Text(lead)),
		),
		body,
	)
}

func externalButton(href, icon, label string) g.Node {
	return ui.LinkButton(href, ui.ButtonOutline, ui.SizeLg, "",
		h.Target("_blank"), h.Rel("noopener noreferrer"),
		ui.Icon(icon, "w-4 h-4 mr-2"), g.Text(label),
	)
}

package pages

import (
	"strconv"

	"github.com/nfrund/cardshow/internal/catalog"
	"github.com/nfrund/cardshow/internal/ui"
	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// DetailPath returns the URL of a component's detail page.
func DetailPath(slug string) string {
	return "/components/" + slug
}

// TabPath returns the URL of a detail tab fragment.
func TabPath(slug string, tab catalog.Tab) string {
	return DetailPath(slug) + "/tabs/" + string(tab)
}

// TabPanelID is the element tab fragments are swapped into.
const TabPanelID = "tab-panel"

// Components is the catalog page: one summary card per entry.
func Components(c *catalog.Catalog, locale language.Tag) g.Node {
	return h.Div(
		pageHeader("/", "Back to Home",
			h.H1(h.Class("text-2xl font-bold"), g.Text("Components")),
			g.If(c.Repository != "",
				ui.LinkButton(c.Repository, ui.ButtonOutline, ui.SizeSm, "",
					h.Target("_blank"), h.Rel("noopener noreferrer"),
					ui.Icon(ui.IconGithub, "w-4 h-4 mr-2"), g.Text("View Source"),
				),
			),
		),
		h.Div(h.Class("container mx-auto px-4 py-8"),
			h.Div(h.Class("mb-8"),
				h.H2(h.Class("text-3xl font-bold mb-4"), g.Text("Component Library")),
				h.P(h.Class("text-muted-foreground max-w-2xl"),
					g.Text("Browse our collection of accessible, customizable components. Each one is a plain Go function returning a gomponents node."),
				),
			),
			h.Div(h.Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-6"),
				g.Map(c.Entries, func(e catalog.Entry) g.Node {
					return summary(e, locale)
				}),
			),
		),
	)
}

func summary(e catalog.Entry, locale language.Tag) g.Node {
	var preview g.Node
	if n, err := e.Preview(0, locale); err == nil {
		preview = n
	}
	return ui.Card("hover:shadow-lg transition-all duration-300",
		h.Data("entry", e.Slug),
		ui.CardHeader("",
			h.Div(h.Class("flex items-center justify-between"),
				ui.CardTitle("text-lg", g.Text(e.Name)),
				g.If(e.Badge != "", ui.Badge(e.BadgeVariant.Or(ui.BadgeSecondary), "", g.Text(e.Badge))),
			),
			ui.CardDescription("", g.Text(e.Description)),
		),
		ui.CardContent("",
			h.Div(h.Class("space-y-4"),
				h.Div(h.Class("border rounded-lg p-4 bg-muted/50"), h.Data("role", "preview"), preview),
				h.Div(h.Class("flex gap-2"),
					ui.CopyButton(e.Usage.Basic, "Copy Code"),
					ui.LinkButton(DetailPath(e.Slug), ui.ButtonDefault, ui.SizeSm, "", g.Text("View Details")),
				),
			),
		),
	)
}

// Component is the detail page of one entry: live previews, code tabs and
// the props reference. The usage tab is rendered inline; the others are
// fetched with htmx.
func Component(e catalog.Entry, usage catalog.Snippet, locale language.Tag) g.Node {
	return h.Div(
		pageHeader("/components", "Back to Components",
			h.Div(
				h.H1(h.Class("text-2xl font-bold"), g.Text(e.Name)),
				h.P(h.Class("text-sm text-muted-foreground"), g.Text(e.Description)),
			),
			ui.Badge(ui.BadgeOutline, "", g.Text("Custom Component")),
		),
		h.Div(h.Class("container mx-auto px-4 py-8"),
			h.Div(h.Class("grid grid-cols-1 lg:grid-cols-2 gap-8"),
				h.Div(h.Class("space-y-6"),
					ui.Card("",
						ui.CardHeader("",
							ui.CardTitle("", g.Text("Preview")),
							ui.CardDescription("", g.Text("See the component in action with different configurations")),
						),
						ui.CardContent("space-y-6",
							g.Map(indexed(e.Previews(locale)), func(p indexedNode) g.Node {
								return h.Div(h.Data("sample", strconv.Itoa(p.i)),
									h.H3(h.Class("text-lg font-semibold mb-3"), g.Text("Example "+strconv.Itoa(p.i+1))),
									h.Div(h.Class("border rounded-lg p-4 bg-muted/50"), p.node),
								)
							}),
						),
					),
				),
				h.Div(h.Class("space-y-6"),
					ui.Card("",
						ui.CardHeader("",
							ui.CardTitle("", g.Text("Implementation")),
							ui.CardDescription("", g.Text("Copy the code and use it in your project")),
						),
						ui.CardContent("",
							tabList(e.Slug, usage.Tab),
							h.Div(h.ID(TabPanelID), h.Role("tabpanel"), TabPanel(usage)),
						),
					),
					propsReference(e.Props()),
				),
			),
		),
	)
}

type indexedNode struct {
	i    int
	node g.Node
}

func indexed(nodes []g.Node) []indexedNode {
	out := make([]indexedNode, len(nodes))
	for i, n := range nodes {
		out[i] = indexedNode{i: i, node: n}
	}
	return out
}

func tabList(slug string, active catalog.Tab) g.Node {
	return h.Div(h.Role("tablist"),
		h.Class("grid w-full grid-cols-3 rounded-lg bg-muted p-1 mb-4"),
		g.Map(catalog.Tabs, func(t catalog.Tab) g.Node {
			return h.Button(h.Type("button"), h.Role("tab"),
				h.Class("rounded-md px-3 py-1.5 text-sm font-medium"),
				h.Data("tab", string(t)),
				h.Aria("selected", strconv.FormatBool(t == active)),
				hx.Get(TabPath(slug, t)),
				hx.Target("#"+TabPanelID),
				hx.Swap("innerHTML"),
				g.Attr("hx-on::after-request", selectTabScript),
				g.Text(t.Label()),
			)
		}),
	)
}

const selectTabScript = `this.parentElement.querySelectorAll('[role=tab]').forEach(function(b){b.setAttribute('aria-selected', b === this)}, this)`

// TabPanel is the content of one code tab.
func TabPanel(s catalog.Snippet) g.Node {
	return h.Div(h.Class("space-y-4"), h.Data("tab-content", string(s.Tab)),
		h.Div(h.Class("flex items-center justify-between"),
			h.H3(h.Class("text-lg font-semibold"), g.Text(s.Heading)),
			g.If(s.Code != "", ui.CopyButton(s.Code, "Copy")),
		),
		g.If(s.Code == "",
			h.P(h.Class("text-sm text-muted-foreground"), g.Text("No example for this component yet.")),
		),
		g.If(s.Code != "",
			h.Pre(h.Class(ui.Classes("bg-muted p-4 rounded-lg overflow-x-auto text-sm", ui.When(s.Tab == catalog.TabSource, "max-h-96"))),
				h.Code(g.Text(s.Code)),
			),
		),
	)
}

func propsReference(props []catalog.Prop) g.Node {
	return ui.Card("",
		ui.CardHeader("",
			ui.CardTitle("", g.Text("API Reference")),
			ui.CardDescription("", g.Text("All available props and their types")),
		),
		ui.CardContent("",
			h.Div(h.Class("grid grid-cols-1 gap-4"),
				g.Map(props, func(p catalog.Prop) g.Node {
					return h.Div(h.Class("border rounded-lg p-3"), h.Data("prop", p.Name),
						h.Div(h.Class("flex items-center justify-between mb-2"),
							h.Code(h.Class("text-sm font-mono bg-muted px-2 py-1 rounded"), g.Text(p.Name)),
							h.Div(h.Class("flex gap-2"),
								ui.Badge(ui.BadgeOutline, "text-xs", g.Text(p.Type)),
								g.If(p.Required, ui.Badge(ui.BadgeDestructive, "text-xs", g.Text("Required"))),
							),
						),
						h.P(h.Class("text-sm text-muted-foreground"),
							g.If(p.Key != "", g.Group{g.Text("Catalog key "), h.Code(g.Text(p.Key))}),
							g.If(p.Key == "", g.Text("Set from Go code only")),
						),
					)
				}),
			),
		),
	)
}

func pageHeader(back, backLabel string, title, aside g.Node) g.Node {
	return h.Header(h.Class("border-b bg-background/95 backdrop-blur"),
		h.Div(h.Class("container mx-auto px-4 py-4"),
			h.Div(h.Class("flex items-center justify-between"),
				h.Div(h.Class("flex items-center gap-4"),
					ui.LinkButton(back, ui.ButtonGhost, ui.SizeSm, "",
						ui.Icon(ui.IconArrowLeft, "w-4 h-4 mr-2"), g.Text(backLabel),
					),
					h.Div(h.Class("h-6 w-px bg-border")),
					title,
				),
				aside,
			),
		),
	)
}

package pages

import (
	"github.com/nfrund/cardshow/internal/actions"
	"github.com/nfrund/cardshow/internal/cards"
	"github.com/nfrund/cardshow/internal/ui"
	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// StatsData is what the stats page shows.
type StatsData struct {
	Total      int
	Registered int
	Ranked     []actions.Count
	Locale     language.Tag
}

const (
	// StatsStreamPath is the websocket endpoint pushing StatsPanel updates.
	StatsStreamPath = "/ws/stats"
	StatsPanelID    = "stats-panel"
)

// Stats shows how often the card actions were triggered, using the
// statistics card itself. The panel is replaced whenever the server pushes a
// newer one over the stats stream.
func Stats(d StatsData) g.Node {
	return h.Div(
		pageHeader("/components", "Back to Components",
			h.H1(h.Class("text-2xl font-bold"), g.Text("Action Statistics")),
			nil,
		),
		h.Div(h.Class("container mx-auto px-4 py-8"),
			hx.Ext("ws"),
			g.Attr("ws-connect", StatsStreamPath),
			StatsPanel(d),
		),
	)
}

// StatsPanel is the live part of the stats page.
func StatsPanel(d StatsData) g.Node {
	summary := []cards.Statistic{
		{Title: "Total Actions", Value: cards.Number(float64(d.Total)), Icon: "mouse-pointer-click", Description: "Since the server started"},
		{Title: "Registered Actions", Value: cards.Number(float64(d.Registered)), Icon: "list", Description: "Buttons bound to a callback"},
		{Title: "Distinct Actions Used", Value: cards.Number(float64(len(d.Ranked))), Icon: "activity", Description: "Triggered at least once"},
	}

	return h.Div(h.ID(StatsPanelID), h.Class("space-y-8"),
		h.Div(h.Class("grid grid-cols-1 md:grid-cols-3 gap-6"),
			g.Map(summary, func(s cards.Statistic) g.Node {
				s.Locale = d.Locale
				return cards.StatisticsCard(s)
			}),
		),
		ui.Card("",
			ui.CardHeader("",
				ui.CardTitle("", g.Text("By Action")),
				ui.CardDescription("", g.Text("Most triggered first")),
			),
			ui.CardContent("",
				g.If(len(d.Ranked) == 0,
					h.P(h.Class("text-sm text-muted-foreground"), g.Text("No actions triggered yet. Click a button on any preview.")),
				),
				g.If(len(d.Ranked) > 0,
					h.Table(h.Class("w-full text-sm"),
						h.THead(h.Tr(
							h.Th(h.Class("text-left py-2"), g.Text("Action")),
							h.Th(h.Class("text-right py-2"), g.Text("Count")),
						)),
						h.TBody(g.Map(d.Ranked, func(c actions.Count) g.Node {
							return h.Tr(h.Class("border-t"), h.Data("action", c.Name),
								h.Td(h.Class("py-2"), g.Text(c.Name)),
								h.Td(h.Class("py-2 text-right font-mono"), g.Text(cards.FormatNumber(float64(c.Count), d.Locale))),
							)
						})),
					),
				),
			),
		),
	)
}

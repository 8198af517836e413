package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Card is the bordered container every showcase component is built on.
func Card(class string, children ...g.Node) g.Node {
	return h.Div(
		Class("rounded-xl border bg-card text-card-foreground shadow-sm", class),
		h.Data("slot", "card"),
		g.Group(children),
	)
}

func CardHeader(class string, children ...g.Node) g.Node {
	return h.Div(Class("flex flex-col space-y-1.5 p-6", class), h.Data("slot", "card-header"), g.Group(children))
}

func CardTitle(class string, children ...g.Node) g.Node {
	return h.H3(Class("font-semibold leading-none tracking-tight", class), h.Data("slot", "card-title"), g.Group(children))
}

func CardDescription(class string, children ...g.Node) g.Node {
	return h.P(Class("text-sm text-muted-foreground", class), h.Data("slot", "card-description"), g.Group(children))
}

func CardContent(class string, children ...g.Node) g.Node {
	return h.Div(Class("p-6 pt-0", class), h.Data("slot", "card-content"), g.Group(children))
}

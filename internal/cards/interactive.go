package cards

import (
	"github.com/nfrund/cardshow/internal/ui"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// CardContent is the input of InteractiveCard.
type CardContent struct {
	Title        string          `yaml:"title" validate:"required"`
	Description  string          `yaml:"description" validate:"required"`
	Badge        string          `yaml:"badge,omitempty"`
	BadgeVariant ui.BadgeVariant `yaml:"badge_variant,omitempty" validate:"omitempty,oneof=default secondary destructive outline"`
	Action       *Action         `yaml:"action,omitempty"`
	NoHover      bool            `yaml:"no_hover,omitempty"`
	Class        string          `yaml:"class,omitempty"`

	// Children are rendered unmodified beneath the header.
	Children []g.Node `yaml:"-"`
}

// InteractiveCard is a generic container with an optional badge and action.
func InteractiveCard(c CardContent) g.Node {
	hasAction := c.Action.present()

	return ui.Card(ui.Classes(
		"border-2 transition-all duration-300 cursor-pointer",
		ui.When(!c.NoHover, "hover:border-primary/50 hover:shadow-lg hover:shadow-primary/10 hover:-translate-y-1"),
		c.Class,
	),
		h.Data("component", "interactive-card"),
		ui.CardHeader("",
			h.Div(h.Class("flex items-center justify-between"),
				ui.CardTitle("text-lg", g.Text(c.Title)),
				g.If(c.Badge != "", ui.Badge(c.BadgeVariant.Or(ui.BadgeDefault), "", g.Text(c.Badge))),
			),
			ui.CardDescription("", g.Text(c.Description)),
		),
		g.Iff(len(c.Children) > 0 || hasAction, func() g.Node {
			return ui.CardContent("",
				g.Group(c.Children),
				g.Iff(hasAction, func() g.Node {
					return ui.Button(ui.ButtonOutline, ui.SizeDefault, "w-full mt-4",
						trigger(c.Action.Handle),
						g.Text(c.Action.Label),
					)
				}),
			)
		}),
	)
}

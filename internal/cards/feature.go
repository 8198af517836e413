package cards

import (
	"github.com/nfrund/cardshow/internal/ui"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Orientation selects the FeatureCard layout.
type Orientation string

const (
	Vertical   Orientation = "vertical"
	Horizontal Orientation = "horizontal"
)

// Feature is the input of FeatureCard.
type Feature struct {
	Title        string          `yaml:"title" validate:"required"`
	Description  string          `yaml:"description" validate:"required"`
	Icon         string          `yaml:"icon" validate:"required"`
	IconColor    string          `yaml:"icon_color,omitempty"`
	IconBg       string          `yaml:"icon_bg,omitempty"`
	Badge        string          `yaml:"badge,omitempty"`
	BadgeVariant ui.BadgeVariant `yaml:"badge_variant,omitempty" validate:"omitempty,oneof=default secondary destructive outline"`
	CTA          *Action         `yaml:"cta,omitempty"`
	Orientation  Orientation     `yaml:"orientation,omitempty" validate:"omitempty,oneof=vertical horizontal"`
	// NoHover disables the lift-on-hover effect, which is on by default.
	NoHover bool   `yaml:"no_hover,omitempty"`
	Class   string `yaml:"class,omitempty"`
}

// FeatureCard renders an icon, title and description, stacked or side by side.
func FeatureCard(f Feature) g.Node {
	horizontal := f.Orientation == Horizontal
	iconColor := ui.Choose(f.IconColor != "", f.IconColor, "text-primary")
	iconBg := ui.Choose(f.IconBg != "", f.IconBg, "bg-primary/10")
	orientation := ui.Choose(horizontal, string(Horizontal), string(Vertical))

	return ui.Card(ui.Classes(
		"transition-all duration-300",
		ui.When(!f.NoHover, "hover:shadow-lg hover:-translate-y-1"),
		ui.When(horizontal, "flex"),
		f.Class,
	),
		h.Data("component", "feature-card"),
		h.Data("orientation", orientation),
		ui.CardHeader(ui.Choose(horizontal, "flex-row items-center space-y-0 flex-1", "text-center"),
			h.Div(ui.Class("flex items-center justify-center", ui.Choose(horizontal, "mr-4", "mx-auto mb-4")),
				h.Div(ui.Class("w-16 h-16 rounded-xl flex items-center justify-center", iconBg),
					ui.Icon(f.Icon, ui.Classes("w-8 h-8", iconColor)),
				),
			),
			h.Div(ui.Class(ui.When(horizontal, "flex-1")),
				h.Div(h.Class("flex items-center justify-between mb-2"),
					ui.CardTitle(ui.Choose(horizontal, "text-lg", "text-xl"), g.Text(f.Title)),
					g.If(f.Badge != "", ui.Badge(f.BadgeVariant.Or(ui.BadgeSecondary), "ml-2", g.Text(f.Badge))),
				),
				ui.CardDescription(ui.Choose(horizontal, "text-left", "text-center"), g.Text(f.Description)),
			),
		),
		g.Iff(f.CTA.present(), func() g.Node {
			return ui.CardContent(ui.Choose(horizontal, "flex items-center", "text-center"),
				ui.Button(ui.ButtonGhost, ui.SizeDefault, "group",
					trigger(f.CTA.Handle),
					g.Text(f.CTA.Label),
					ui.Icon(ui.IconArrowRight, "w-4 h-4 ml-2 transition-transform group-hover:translate-x-1"),
				),
			)
		}),
	)
}

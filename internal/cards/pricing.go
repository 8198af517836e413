package cards

import (
	"github.com/nfrund/cardshow/internal/actions"
	"github.com/nfrund/cardshow/internal/ui"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Defaults applied by PricingCard to empty fields.
const (
	DefaultCurrency   = "$"
	DefaultPeriod     = "month"
	DefaultPricingCTA = "Get Started"
	PopularLabel      = "Most Popular"
)

// PricingFeature is a line in a plan's feature list.
type PricingFeature struct {
	Text     string `yaml:"text" validate:"required"`
	Included bool   `yaml:"included"`
}

// PricingPlan is the input of PricingCard. Feature order is display order.
type PricingPlan struct {
	Name        string           `yaml:"name" validate:"required"`
	Description string           `yaml:"description,omitempty"`
	Price       float64          `yaml:"price" validate:"gte=0"`
	Currency    string           `yaml:"currency,omitempty"`
	Period      string           `yaml:"period,omitempty"`
	Features    []PricingFeature `yaml:"features" validate:"dive"`
	CTAText     string           `yaml:"cta_text,omitempty"`
	Popular     bool             `yaml:"popular,omitempty"`
	Class       string           `yaml:"class,omitempty"`

	Select actions.Handle `yaml:"-"`
}

func (p PricingPlan) withDefaults() PricingPlan {
	if p.Currency == "" {
		p.Currency = DefaultCurrency
	}
	if p.Period == "" {
		p.Period = DefaultPeriod
	}
	if p.CTAText == "" {
		p.CTAText = DefaultPricingCTA
	}
	return p
}

// PriceText returns "{currency}{price}/{period}", e.g. "$29/month". The
// price is printed as given, without rounding.
func (p PricingPlan) PriceText() string {
	p = p.withDefaults()
	return p.Currency + FormatFloat(p.Price) + "/" + p.Period
}

// PricingCard renders a plan with its price, features and call to action.
func PricingCard(p PricingPlan) g.Node {
	p = p.withDefaults()
	ctaVariant := ui.ButtonOutline
	if p.Popular {
		ctaVariant = ui.ButtonDefault
	}

	return ui.Card(ui.Classes(
		"relative border-2 transition-all duration-300 hover:shadow-lg",
		ui.When(p.Popular, "border-primary shadow-lg scale-105"),
		p.Class,
	),
		h.Data("component", "pricing-card"),
		g.If(p.Popular, h.Div(
			h.Class("absolute -top-3 left-1/2 transform -translate-x-1/2"),
			ui.Badge(ui.BadgeDefault, "bg-primary text-primary-foreground", g.Text(PopularLabel)),
		)),
		ui.CardHeader("text-center",
			ui.CardTitle("text-2xl", g.Text(p.Name)),
			g.If(p.Description != "", ui.CardDescription("text-base", g.Text(p.Description))),
			h.Div(h.Class("mt-4"),
				h.Div(h.Class("flex items-baseline justify-center"),
					h.Span(h.Class("text-4xl font-bold"), h.Data("role", "price"), g.Text(p.Currency+FormatFloat(p.Price))),
					h.Span(h.Class("text-muted-foreground ml-2"), h.Data("role", "period"), g.Text("/"+p.Period)),
				),
			),
		),
		ui.CardContent("space-y-6",
			h.Ul(h.Class("space-y-3"), g.Map(p.Features, pricingFeature)),
			h.Button(
				h.Type("button"),
				h.Class(ui.ButtonClass(ctaVariant, ui.SizeLg, "w-full")),
				trigger(p.Select),
				g.Text(p.CTAText),
			),
		),
	)
}

func pricingFeature(f PricingFeature) g.Node {
	icon := ui.Icon(ui.IconCheck, "w-5 h-5 text-green-500 flex-shrink-0")
	state := "included"
	if !f.Included {
		icon = ui.Icon(ui.IconX, "w-5 h-5 text-red-500 flex-shrink-0")
		state = "excluded"
	}
	return h.Li(
		h.Class("flex items-center space-x-3"),
		h.Data("feature", state),
		icon,
		h.Span(ui.Class("text-sm", ui.When(!f.Included, "text-muted-foreground line-through")), g.Text(f.Text)),
	)
}

package cards

import (
	"github.com/nfrund/cardshow/internal/ui"
	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// DefaultChangePeriod is appended to the change line when none is given.
const DefaultChangePeriod = "from last month"

// Statistic is the input of StatisticsCard.
type Statistic struct {
	Title        string   `yaml:"title" validate:"required"`
	Value        Value    `yaml:"value" validate:"required"`
	Description  string   `yaml:"description,omitempty"`
	Change       *float64 `yaml:"change,omitempty"`
	ChangePeriod string   `yaml:"change_period,omitempty"`
	Icon         string   `yaml:"icon,omitempty"`
	IconColor    string   `yaml:"icon_color,omitempty"`
	Prefix       string   `yaml:"prefix,omitempty"`
	Suffix       string   `yaml:"suffix,omitempty"`
	Class        string   `yaml:"class,omitempty"`

	// Locale controls digit grouping; the zero value means DefaultLocale.
	Locale language.Tag `yaml:"-"`
}

// Change is a convenience for filling Statistic.Change.
func Change(v float64) *float64 {
	return &v
}

// DisplayValue returns the value with prefix and suffix applied, e.g. "$45,231".
func (s Statistic) DisplayValue() string {
	return s.Prefix + s.Value.Format(s.Locale) + s.Suffix
}

// Trend returns the direction of the change.
func (s Statistic) Trend() Trend {
	return TrendOf(s.Change)
}

// ChangeText returns the change line, e.g. "+20.1% from last month", or the
// empty string when there is no change.
func (s Statistic) ChangeText() string {
	if s.Change == nil {
		return ""
	}
	period := s.ChangePeriod
	if period == "" {
		period = DefaultChangePeriod
	}
	return FormatChange(*s.Change) + "% " + period
}

var trendColors = map[Trend]string{
	TrendNone: "text-muted-foreground",
	TrendUp:   "text-green-600",
	TrendDown: "text-red-600",
	TrendFlat: "text-gray-500",
}

var trendIcons = map[Trend]string{
	TrendUp:   ui.IconTrendingUp,
	TrendDown: ui.IconTrendingDown,
	TrendFlat: ui.IconMinus,
}

// TrendColor returns the text color class for t.
func TrendColor(t Trend) string {
	return trendColors[t]
}

// StatisticsCard renders a KPI with an optional trend line.
func StatisticsCard(s Statistic) g.Node {
	trend := s.Trend()

	return ui.Card(ui.Classes("hover:shadow-md transition-shadow", s.Class),
		h.Data("component", "statistics-card"),
		ui.CardHeader("flex flex-row items-center justify-between space-y-0 pb-2",
			ui.CardTitle("text-sm font-medium", g.Text(s.Title)),
			g.If(s.Icon != "", ui.Icon(s.Icon, ui.Classes("w-4 h-4", ui.Choose(s.IconColor != "", s.IconColor, "text-primary")))),
		),
		ui.CardContent("",
			h.Div(h.Class("text-2xl font-bold"), h.Data("role", "value"), g.Text(s.DisplayValue())),
			g.If(s.Description != "", ui.CardDescription("mt-1", g.Text(s.Description))),
			g.If(s.Change != nil, h.Div(
				ui.Class("text-xs flex items-center mt-1", TrendColor(trend)),
				h.Data("trend", trend.String()),
				g.If(trend != TrendNone, ui.Icon(trendIcons[trend], ui.Classes("w-4 h-4", TrendColor(trend)))),
				h.Span(h.Class("ml-1"), g.Text(s.ChangeText())),
			)),
		),
	)
}

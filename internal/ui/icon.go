package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Icon names used by the card components. They map to lucide icon names and
// are resolved client side.
const (
	IconTrendingUp   = "trending-up"
	IconTrendingDown = "trending-down"
	IconMinus        = "minus"
	IconCheck        = "check"
	IconX            = "x"
	IconStar         = "star"
	IconQuote        = "quote"
	IconArrowRight   = "arrow-right"
	IconArrowLeft    = "arrow-left"
	IconCalendar     = "calendar"
	IconClock        = "clock"
	IconHeart        = "heart"
	IconUser         = "user"
	IconCopy         = "copy"
	IconGithub       = "github"
)

// Icon renders a decorative icon placeholder for the named glyph.
func Icon(name, class string) g.Node {
	return h.I(
		Class("inline-block shrink-0", class),
		h.Data("lucide", name),
		h.Data("icon", name),
		h.Aria("hidden", "true"),
	)
}

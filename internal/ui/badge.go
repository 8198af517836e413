package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// BadgeVariant selects the color scheme of a Badge.
type BadgeVariant string

const (
	BadgeDefault     BadgeVariant = "default"
	BadgeSecondary   BadgeVariant = "secondary"
	BadgeDestructive BadgeVariant = "destructive"
	BadgeOutline     BadgeVariant = "outline"
)

var badgeVariantClasses = map[BadgeVariant]string{
	BadgeDefault:     "border-transparent bg-primary text-primary-foreground",
	BadgeSecondary:   "border-transparent bg-secondary text-secondary-foreground",
	BadgeDestructive: "border-transparent bg-destructive text-white",
	BadgeOutline:     "text-foreground",
}

// Valid reports whether v is one of the known variants.
func (v BadgeVariant) Valid() bool {
	_, ok := badgeVariantClasses[v]
	return ok
}

// Or returns v, or def when v is empty.
func (v BadgeVariant) Or(def BadgeVariant) BadgeVariant {
	if v == "" {
		return def
	}
	return v
}

// Badge renders a small pill label. Unknown variants fall back to default.
func Badge(variant BadgeVariant, class string, children ...g.Node) g.Node {
	vc, ok := badgeVariantClasses[variant]
	if !ok {
		variant = BadgeDefault
		vc = badgeVariantClasses[BadgeDefault]
	}
	return h.Span(
		Class("inline-flex items-center rounded-md border px-2 py-0.5 text-xs font-medium w-fit whitespace-nowrap", vc, class),
		h.Data("slot", "badge"),
		h.Data("variant", string(variant)),
		g.Group(children),
	)
}

package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type ButtonVariant string

const (
	ButtonDefault ButtonVariant = "default"
	ButtonOutline ButtonVariant = "outline"
	ButtonGhost   ButtonVariant = "ghost"
)

type ButtonSize string

const (
	SizeDefault ButtonSize = "default"
	SizeSm      ButtonSize = "sm"
	SizeLg      ButtonSize = "lg"
)

var buttonVariantClasses = map[ButtonVariant]string{
	ButtonDefault: "bg-primary text-primary-foreground shadow-xs hover:bg-primary/90",
	ButtonOutline: "border bg-background shadow-xs hover:bg-accent hover:text-accent-foreground",
	ButtonGhost:   "hover:bg-accent hover:text-accent-foreground",
}

var buttonSizeClasses = map[ButtonSize]string{
	SizeDefault: "h-9 px-4 py-2",
	SizeSm:      "h-8 rounded-md gap-1.5 px-3",
	SizeLg:      "h-10 rounded-md px-6",
}

const buttonBase = "inline-flex items-center justify-center gap-2 whitespace-nowrap rounded-md text-sm font-medium transition-all disabled:pointer-events-none disabled:opacity-50"

// ButtonClass returns the class string for a button of the given variant and
// size. It is also used to style anchors that look like buttons.
func ButtonClass(variant ButtonVariant, size ButtonSize, class string) string {
	vc, ok := buttonVariantClasses[variant]
	if !ok {
		vc = buttonVariantClasses[ButtonDefault]
	}
	sc, ok := buttonSizeClasses[size]
	if !ok {
		sc = buttonSizeClasses[SizeDefault]
	}
	return Classes(buttonBase, vc, sc, class)
}

// Button renders a <button type="button">. Extra attributes such as hx-post
// are passed through with the children.
func Button(variant ButtonVariant, size ButtonSize, class string, children ...g.Node) g.Node {
	return h.Button(
		h.Type("button"),
		h.Class(ButtonClass(variant, size, class)),
		h.Data("slot", "button"),
		g.Group(children),
	)
}

// LinkButton renders an anchor styled as a button.
func LinkButton(href string, variant ButtonVariant, size ButtonSize, class string, children ...g.Node) g.Node {
	return h.A(
		h.Href(href),
		h.Class(ButtonClass(variant, size, class)),
		g.Group(children),
	)
}

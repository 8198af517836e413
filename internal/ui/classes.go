package ui

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Classes joins the non-empty class names into a single class string.
// Empty strings are skipped, so conditional classes can be written as
// ui.When(cond, "class-a class-b").
func Classes(names ...string) string {
	parts := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			parts = append(parts, n)
		}
	}
	return strings.Join(parts, " ")
}

// When returns class if cond is true, otherwise the empty string.
func When(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}

// Choose returns a if cond is true, otherwise b.
func Choose(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}

// Class is h.Class over Classes, omitting the attribute when nothing is left.
func Class(names ...string) g.Node {
	c := Classes(names...)
	if c == "" {
		return nil
	}
	return h.Class(c)
}

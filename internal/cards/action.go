package cards

import (
	"github.com/nfrund/cardshow/internal/actions"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
)

// Action is a labelled button bound to a server-side callback.
type Action struct {
	Label string `yaml:"label" validate:"required"`
	// Script is an optional Tengo program run on click. Its result variable
	// replaces the default confirmation message.
	Script string         `yaml:"script,omitempty"`
	Handle actions.Handle `yaml:"-"`
}

// NewAction returns an action with the given label and handle.
func NewAction(label string, handle actions.Handle) *Action {
	return &Action{Label: label, Handle: handle}
}

func (a *Action) present() bool {
	return a != nil && a.Label != ""
}

// trigger returns the htmx attributes that post to h. An unbound handle
// yields no attributes and the control stays inert.
func trigger(h actions.Handle) g.Node {
	if !h.Bound() {
		return nil
	}
	return g.Group{
		hx.Post(h.Path()),
		hx.Swap("none"),
	}
}

package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// gomponentComponent lets a gomponents.Node be rendered where a
// templ.Component is expected, e.g. as the content of a layout.
type gomponentComponent struct {
	node g.Node
}

func (a gomponentComponent) Render(_ context.Context, w io.Writer) error {
	if a.node == nil {
		return nil
	}
	return a.node.Render(w)
}

// AdaptGomponentToTempl converts a gomponents node into a templ.Component.
func AdaptGomponentToTempl(node g.Node) templ.Component {
	return gomponentComponent{node: node}
}

// templNode renders a templ.Component inside a gomponents tree. gomponents
// does not pass a context, so the one captured at construction is used.
type templNode struct {
	ctx       context.Context
	component templ.Component
}

func (a templNode) Render(w io.Writer) error {
	if a.component == nil {
		return nil
	}
	return a.component.Render(a.ctx, w)
}

// AdaptTemplToGomponent converts a templ.Component into a gomponents node
// rendered with ctx.
func AdaptTemplToGomponent(ctx context.Context, component templ.Component) g.Node {
	if ctx == nil {
		ctx = context.Background()
	}
	return templNode{ctx: ctx, component: component}
}

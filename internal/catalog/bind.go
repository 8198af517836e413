package catalog

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/nfrund/cardshow/internal/actions"
	"github.com/nfrund/cardshow/internal/cards"
	"github.com/nfrund/cardshow/internal/script"
)

// Bind registers a callback for every sample action in c and stores the
// handles in the samples. Callbacks log the click, and actions with a script
// run it to produce their confirmation message. It returns the handles so
// they can be released when the catalog is replaced.
func Bind(c *Catalog, reg *actions.Registry) []actions.Handle {
	var handles []actions.Handle
	register := func(slug, label string) actions.Handle {
		h := reg.Register(slug+"."+label, func() {
			slog.Info("Card action triggered", "component", slug, "label", label)
		})
		handles = append(handles, h)
		return h
	}

	c.sampleActions(func(slug string, a *cards.Action) {
		if a.Label == "" {
			return
		}
		p, ok := c.programs[a]
		if !ok {
			a.Handle = register(slug, a.Label)
			return
		}
		a.Handle = reg.RegisterFunc(slug+"."+a.Label, scripted(p, slug, a.Label))
		handles = append(handles, a.Handle)
	})

	for i := range c.Entries {
		e := &c.Entries[i]
		s := &e.Samples
		for j := range s.Pricing {
			p := &s.Pricing[j]
			label := p.CTAText
			if label == "" {
				label = cards.DefaultPricingCTA
			}
			p.Select = register(e.Slug, p.Name+" "+label)
		}
		for j := range s.Blog {
			s.Blog[j].Open = register(e.Slug, s.Blog[j].Title)
		}
	}
	return handles
}

func scripted(p *script.Program, slug, label string) actions.Func {
	var clicks atomic.Int64
	return func(ctx context.Context) (string, error) {
		n := clicks.Add(1)
		slog.Info("Card action triggered", "component", slug, "label", label, "script", p.Name())
		return p.Run(ctx, script.Input{
			Action:    slug + "." + label,
			Component: slug,
			Label:     label,
			Clicks:    int(n),
		})
	}
}

// Unbind releases handles returned by Bind.
func Unbind(handles []actions.Handle, reg *actions.Registry) {
	for _, h := range handles {
		reg.Unregister(h)
	}
}

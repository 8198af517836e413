// Package catalog describes the showcased components: their names, usage
// snippets and the sample props their previews are rendered from.
package catalog

import (
	"errors"
	"fmt"

	"github.com/nfrund/cardshow/internal/cards"
	"github.com/nfrund/cardshow/internal/script"
	"github.com/nfrund/cardshow/internal/ui"
	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

var (
	ErrNotFound       = errors.New("component not found")
	ErrInvalidCatalog = errors.New("invalid catalog")
	ErrDuplicateSlug  = errors.New("duplicate component slug")
)

// Catalog is the ordered list of showcased components.
type Catalog struct {
	Title       string  `yaml:"title"`
	Description string  `yaml:"description"`
	Repository  string  `yaml:"repository,omitempty" validate:"omitempty,url"`
	Entries     []Entry `yaml:"components" validate:"required,min=1,dive"`

	bySlug   map[string]int
	programs map[*cards.Action]*script.Program
}

// Entry is one showcased component.
type Entry struct {
	Slug         string          `yaml:"slug" validate:"required,slug"`
	Name         string          `yaml:"name" validate:"required"`
	Kind         cards.Kind      `yaml:"kind" validate:"required,oneof=interactive pricing statistics testimonial feature blog"`
	Description  string          `yaml:"description" validate:"required"`
	Badge        string          `yaml:"badge,omitempty"`
	BadgeVariant ui.BadgeVariant `yaml:"badge_variant,omitempty" validate:"omitempty,oneof=default secondary destructive outline"`
	Usage        Usage           `yaml:"usage"`
	Samples      Samples         `yaml:"samples"`
}

// Usage holds the copyable code snippets of an entry.
type Usage struct {
	Basic    string `yaml:"basic" validate:"required"`
	Advanced string `yaml:"advanced,omitempty"`
}

// Samples holds the preview props. Only the list matching the entry's kind
// is rendered.
type Samples struct {
	Interactive  []InteractiveSample `yaml:"interactive,omitempty" validate:"dive"`
	Pricing      []cards.PricingPlan `yaml:"pricing,omitempty" validate:"dive"`
	Statistics   []cards.Statistic   `yaml:"statistics,omitempty" validate:"dive"`
	Testimonials []cards.Testimonial `yaml:"testimonials,omitempty" validate:"dive"`
	Features     []cards.Feature     `yaml:"features,omitempty" validate:"dive"`
	Blog         []cards.BlogPost    `yaml:"blog,omitempty" validate:"dive"`
}

// InteractiveSample is an InteractiveCard sample whose children are plain
// paragraphs.
type InteractiveSample struct {
	cards.CardContent `yaml:",inline"`
	Body              []string `yaml:"body,omitempty"`
}

// Content returns the card props with Body turned into child paragraphs.
func (s InteractiveSample) Content() cards.CardContent {
	c := s.CardContent
	children := make([]g.Node, 0, len(s.Body)+len(c.Children))
	children = append(children, c.Children...)
	for _, p := range s.Body {
		children = append(children, h.P(h.Class("text-sm text-muted-foreground"), g.Text(p)))
	}
	c.Children = children
	return c
}

func (c *Catalog) index() error {
	c.bySlug = make(map[string]int, len(c.Entries))
	for i, e := range c.Entries {
		if _, dup := c.bySlug[e.Slug]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateSlug, e.Slug)
		}
		c.bySlug[e.Slug] = i
	}
	return nil
}

// sampleActions calls fn for every action button in the samples of c, with
// the slug of the component it belongs to.
func (c *Catalog) sampleActions(fn func(slug string, a *cards.Action)) {
	for i := range c.Entries {
		e := &c.Entries[i]
		for _, s := range e.Samples.Interactive {
			if s.Action != nil {
				fn(e.Slug, s.Action)
			}
		}
		for _, f := range e.Samples.Features {
			if f.CTA != nil {
				fn(e.Slug, f.CTA)
			}
		}
	}
}

// compile compiles the script of every action that has one.
func (c *Catalog) compile(engine *script.Engine) error {
	c.programs = make(map[*cards.Action]*script.Program)
	var errs []error
	c.sampleActions(func(slug string, a *cards.Action) {
		if a.Script == "" {
			return
		}
		p, err := engine.Compile(slug+"."+a.Label, a.Script)
		if err != nil {
			errs = append(errs, err)
			return
		}
		c.programs[a] = p
	})
	return errors.Join(errs...)
}

// Get returns the entry with the given slug.
func (c *Catalog) Get(slug string) (Entry, error) {
	i, ok := c.bySlug[slug]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, slug)
	}
	return c.Entries[i], nil
}

// Slugs returns the entry slugs in catalog order.
func (c *Catalog) Slugs() []string {
	out := make([]string, len(c.Entries))
	for i, e := range c.Entries {
		out[i] = e.Slug
	}
	return out
}

// SampleCount returns the number of samples for the entry's kind.
func (e Entry) SampleCount() int {
	switch e.Kind {
	case cards.KindInteractive:
		return len(e.Samples.Interactive)
	case cards.KindPricing:
		return len(e.Samples.Pricing)
	case cards.KindStatistics:
		return len(e.Samples.Statistics)
	case cards.KindTestimonial:
		return len(e.Samples.Testimonials)
	case cards.KindFeature:
		return len(e.Samples.Features)
	case cards.KindBlog:
		return len(e.Samples.Blog)
	}
	return 0
}

// Previews renders every sample of the entry with its component.
func (e Entry) Previews(locale language.Tag) []g.Node {
	var nodes []g.Node
	switch e.Kind {
	case cards.KindInteractive:
		for _, s := range e.Samples.Interactive {
			nodes = append(nodes, cards.InteractiveCard(s.Content()))
		}
	case cards.KindPricing:
		for _, p := range e.Samples.Pricing {
			nodes = append(nodes, cards.PricingCard(p))
		}
	case cards.KindStatistics:
		for _, s := range e.Samples.Statistics {
			s.Locale = locale
			nodes = append(nodes, cards.StatisticsCard(s))
		}
	case cards.KindTestimonial:
		for _, t := range e.Samples.Testimonials {
			nodes = append(nodes, cards.TestimonialCard(t))
		}
	case cards.KindFeature:
		for _, f := range e.Samples.Features {
			nodes = append(nodes, cards.FeatureCard(f))
		}
	case cards.KindBlog:
		for _, p := range e.Samples.Blog {
			nodes = append(nodes, cards.BlogCard(p))
		}
	}
	return nodes
}

// Preview renders the i-th sample, or an error when there is none.
func (e Entry) Preview(i int, locale language.Tag) (g.Node, error) {
	nodes := e.Previews(locale)
	if i < 0 || i >= len(nodes) {
		return nil, fmt.Errorf("%w: %s has no sample %d", ErrNotFound, e.Slug, i)
	}
	return nodes[i], nil
}

// Source returns the Go source of the entry's component.
func (e Entry) Source() (string, error) {
	return cards.Source(e.Kind)
}

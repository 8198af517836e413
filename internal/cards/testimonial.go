package cards

import (
	"unicode/utf8"

	"github.com/nfrund/cardshow/internal/ui"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// MaxRating is the size of the star scale.
const MaxRating = 5

// TestimonialVariant selects one of the fixed visual profiles.
type TestimonialVariant string

const (
	TestimonialDefault  TestimonialVariant = "default"
	TestimonialBordered TestimonialVariant = "bordered"
	TestimonialElevated TestimonialVariant = "elevated"
)

var testimonialVariantClasses = map[TestimonialVariant]string{
	TestimonialDefault:  "hover:shadow-md transition-shadow duration-200",
	TestimonialBordered: "border-2 border-primary/20",
	TestimonialElevated: "shadow-lg hover:shadow-xl transition-shadow duration-300",
}

// Classes returns the style profile of v; unknown variants use the default.
func (v TestimonialVariant) Classes() string {
	if c, ok := testimonialVariantClasses[v]; ok {
		return c
	}
	return testimonialVariantClasses[TestimonialDefault]
}

// Testimonial is the input of TestimonialCard.
type Testimonial struct {
	Quote   string             `yaml:"quote" validate:"required"`
	Author  string             `yaml:"author" validate:"required"`
	Role    string             `yaml:"role,omitempty"`
	Company string             `yaml:"company,omitempty"`
	Avatar  string             `yaml:"avatar,omitempty"`
	Rating  *int               `yaml:"rating,omitempty" validate:"omitempty,min=0,max=5"`
	Variant TestimonialVariant `yaml:"variant,omitempty" validate:"omitempty,oneof=default bordered elevated"`
	Class   string             `yaml:"class,omitempty"`
}

// Rating is a convenience for filling Testimonial.Rating.
func Rating(n int) *int {
	return &n
}

// Stars returns the filled state of each star on the fixed five-star scale,
// or nil when there is no rating. Out-of-range ratings are clamped.
func Stars(rating *int) []bool {
	if rating == nil {
		return nil
	}
	filled := min(max(*rating, 0), MaxRating)
	stars := make([]bool, MaxRating)
	for i := range stars {
		stars[i] = i < filled
	}
	return stars
}

// Initial returns the first character of name, used as the avatar fallback.
func Initial(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 || r == utf8.RuneError {
		return ""
	}
	return string(r)
}

// Byline joins role and company with " • ", omitting whichever is empty.
func (t Testimonial) Byline() string {
	switch {
	case t.Role != "" && t.Company != "":
		return t.Role + " • " + t.Company
	case t.Role != "":
		return t.Role
	default:
		return t.Company
	}
}

// TestimonialCard renders a quote with its rating and author.
func TestimonialCard(t Testimonial) g.Node {
	variant := t.Variant
	if _, ok := testimonialVariantClasses[variant]; !ok {
		variant = TestimonialDefault
	}

	return ui.Card(ui.Classes(variant.Classes(), "relative", t.Class),
		h.Data("component", "testimonial-card"),
		h.Data("variant", string(variant)),
		h.Div(h.Class("absolute top-4 right-4 opacity-10"), ui.Icon(ui.IconQuote, "w-8 h-8")),
		ui.CardContent("pt-6",
			starRow(Stars(t.Rating)),
			h.BlockQuote(h.Class("text-lg font-medium leading-relaxed mb-6"),
				g.Text("“"+t.Quote+"”"),
			),
			h.Div(h.Class("flex items-center space-x-4"),
				avatar(t.Avatar, t.Author, "w-12 h-12 rounded-full object-cover border-2 border-primary/10",
					h.Div(h.Class("w-12 h-12 rounded-full bg-gradient-to-br from-primary/20 to-primary/40 flex items-center justify-center"),
						h.Span(h.Class("text-primary font-semibold text-lg"), h.Data("role", "initial"), g.Text(Initial(t.Author))),
					),
				),
				h.Div(
					h.Div(h.Class("font-semibold text-foreground"), g.Text(t.Author)),
					g.If(t.Byline() != "", h.Div(h.Class("text-sm text-muted-foreground"), g.Text(t.Byline()))),
				),
			),
		),
	)
}

func starRow(stars []bool) g.Node {
	if stars == nil {
		return nil
	}
	nodes := make([]g.Node, len(stars))
	for i, filled := range stars {
		class, state := "w-4 h-4 text-gray-300", "empty"
		if filled {
			class, state = "w-4 h-4 text-yellow-400 fill-current", "filled"
		}
		nodes[i] = h.Span(h.Data("star", state), ui.Icon(ui.IconStar, class))
	}
	return h.Div(h.Class("flex items-center space-x-1 mb-4"), h.Data("role", "rating"), g.Group(nodes))
}

// avatar renders an image when src is set and fallback otherwise.
func avatar(src, alt, class string, fallback g.Node) g.Node {
	if src == "" {
		return fallback
	}
	return h.Img(h.Src(src), h.Alt(alt), h.Class(class))
}

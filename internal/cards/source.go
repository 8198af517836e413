package cards

import (
	"embed"
	"fmt"
)

// Kind names one of the showcased components.
type Kind string

const (
	KindInteractive Kind = "interactive"
	KindPricing     Kind = "pricing"
	KindStatistics  Kind = "statistics"
	KindTestimonial Kind = "testimonial"
	KindFeature     Kind = "feature"
	KindBlog        Kind = "blog"
)

// Kinds lists every component kind in catalog order.
var Kinds = []Kind{KindInteractive, KindPricing, KindStatistics, KindFeature, KindTestimonial, KindBlog}

var sourceFiles = map[Kind]string{
	KindInteractive: "interactive.go",
	KindPricing:     "pricing.go",
	KindStatistics:  "statistics.go",
	KindTestimonial: "testimonial.go",
	KindFeature:     "feature.go",
	KindBlog:        "blog.go",
}

//go:embed interactive.go pricing.go statistics.go testimonial.go feature.go blog.go
var sources embed.FS

// Source returns the Go source of the component of the given kind, shown on
// the component's detail page.
func Source(k Kind) (string, error) {
	name, ok := sourceFiles[k]
	if !ok {
		return "", fmt.Errorf("unknown component kind %q", k)
	}
	b, err := sources.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return string(b), nil
}

package catalog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/nfrund/cardshow/internal/cards"
)

// Tab names a code panel on the component detail page.
type Tab string

const (
	TabUsage    Tab = "usage"
	TabAdvanced Tab = "advanced"
	TabSource   Tab = "source"
)

// Tabs lists the detail tabs in display order.
var Tabs = []Tab{TabUsage, TabAdvanced, TabSource}

// ErrUnknownTab is returned for a tab name outside Tabs.
var ErrUnknownTab = errors.New("unknown tab")

// Label returns the tab caption.
func (t Tab) Label() string {
	switch t {
	case TabUsage:
		return "Usage"
	case TabAdvanced:
		return "Advanced"
	case TabSource:
		return "Component"
	}
	return string(t)
}

// Snippet is the code shown in one tab.
type Snippet struct {
	Tab     Tab
	Heading string
	Code    string
}

// Snippet returns the code for tab. An entry without an advanced example
// yields an empty Code for TabAdvanced.
func (e Entry) Snippet(tab Tab) (Snippet, error) {
	switch tab {
	case TabUsage:
		return Snippet{Tab: tab, Heading: "Basic Usage", Code: e.Usage.Basic}, nil
	case TabAdvanced:
		return Snippet{Tab: tab, Heading: "Advanced Usage", Code: e.Usage.Advanced}, nil
	case TabSource:
		src, err := e.Source()
		if err != nil {
			return Snippet{}, err
		}
		return Snippet{Tab: tab, Heading: "Full Component Code", Code: src}, nil
	}
	return Snippet{}, fmt.Errorf("%w: %q", ErrUnknownTab, tab)
}

// Prop describes one field of a component's input struct.
type Prop struct {
	Name     string
	Key      string
	Type     string
	Required bool
}

var propTypes = map[cards.Kind]reflect.Type{
	cards.KindInteractive: reflect.TypeOf(cards.CardContent{}),
	cards.KindPricing:     reflect.TypeOf(cards.PricingPlan{}),
	cards.KindStatistics:  reflect.TypeOf(cards.Statistic{}),
	cards.KindTestimonial: reflect.TypeOf(cards.Testimonial{}),
	cards.KindFeature:     reflect.TypeOf(cards.Feature{}),
	cards.KindBlog:        reflect.TypeOf(cards.BlogPost{}),
}

// Props lists the fields of the entry's component input in declaration order.
// Key is the catalog YAML key, empty for fields that only exist in Go.
func (e Entry) Props() []Prop {
	t, ok := propTypes[e.Kind]
	if !ok {
		return nil
	}
	props := make([]Prop, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		key := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if key == "-" {
			key = ""
		}
		props = append(props, Prop{
			Name:     f.Name,
			Key:      key,
			Type:     f.Type.String(),
			Required: hasRule(f.Tag.Get("validate"), "required"),
		})
	}
	return props
}

func hasRule(tag, rule string) bool {
	for _, r := range strings.Split(tag, ",") {
		if r == rule {
			return true
		}
	}
	return false
}

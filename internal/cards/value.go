package cards

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Value is a statistic value: either a number, which is formatted with
// thousands grouping, or a preformatted string shown as is.
//
// In YAML any finite int or float scalar is a number, including the forms
// YAML itself resolves such as 0x1F, 0o17 and 1e3. Infinity and NaN are
// rejected. Quoted scalars and all other plain scalars are text.
type Value struct {
	num   float64
	str   string
	isNum bool
}

// Number returns a numeric Value.
func Number(v float64) Value {
	return Value{num: v, isNum: true}
}

// Text returns a preformatted Value.
func Text(s string) Value {
	return Value{str: s}
}

// IsNumber reports whether v holds a number.
func (v Value) IsNumber() bool {
	return v.isNum
}

// IsZero reports whether v holds neither a number nor any text, which is
// the case when the YAML key is missing or empty.
func (v Value) IsZero() bool {
	return !v.isNum && v.str == ""
}

// Float returns the numeric value and whether v holds one.
func (v Value) Float() (float64, bool) {
	return v.num, v.isNum
}

// Format renders v for display.
func (v Value) Format(tag language.Tag) string {
	if v.isNum {
		return FormatNumber(v.num, tag)
	}
	return v.str
}

// String implements fmt.Stringer using the default locale.
func (v Value) String() string {
	return v.Format(DefaultLocale)
}

// UnmarshalYAML keeps YAML numbers numeric and everything else as text, so
// `value: 45231` is grouped while `value: "2.4K"` is shown verbatim.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: statistic value must be a scalar", node.Line)
	}
	switch node.ShortTag() {
	case "!!int", "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return fmt.Errorf("line %d: statistic value %q is not a finite number", node.Line, node.Value)
		}
		*v = Number(f)
	default:
		*v = Text(node.Value)
	}
	return nil
}

// MarshalYAML writes the value back in the form it was read.
func (v Value) MarshalYAML() (interface{}, error) {
	if v.isNum {
		return v.num, nil
	}
	return v.str, nil
}

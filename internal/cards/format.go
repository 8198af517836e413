package cards

import (
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLocale is used for number formatting when a card has no locale set.
var DefaultLocale = language.AmericanEnglish

// InvalidDate is what FormatDate returns for input it cannot parse.
const InvalidDate = "Invalid Date"

// DisplayDateLayout is the short calendar form used on blog cards.
const DisplayDateLayout = "Jan 2, 2006"

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

// FormatNumber groups the digits of v by thousands using the conventions of
// tag, keeping at most three fraction digits.
func FormatNumber(v float64, tag language.Tag) string {
	if tag == language.Und {
		tag = DefaultLocale
	}
	p := message.NewPrinter(tag)
	return p.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}

// FormatFloat prints v in its shortest round-trip form, e.g. 29, 7.5, -3.2.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatChange prints a percentage change with an explicit "+" for positive
// values. Negative values carry their own sign.
func FormatChange(change float64) string {
	if change == 0 {
		// -0 prints as "-0".
		change = 0
	}
	if change > 0 {
		return "+" + FormatFloat(change)
	}
	return FormatFloat(change)
}

// ParseDate parses an ISO date or RFC 3339 timestamp. Date-only input is a
// calendar date and is never shifted across timezones.
func ParseDate(s string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// FormatDate renders s as "Jan 15, 2024", or InvalidDate when s does not parse.
func FormatDate(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return InvalidDate
	}
	return t.Format(DisplayDateLayout)
}

// Trend is the direction of a statistic's change.
type Trend int

const (
	TrendNone Trend = iota
	TrendUp
	TrendDown
	TrendFlat
)

func (t Trend) String() string {
	switch t {
	case TrendUp:
		return "up"
	case TrendDown:
		return "down"
	case TrendFlat:
		return "flat"
	default:
		return "none"
	}
}

// TrendOf derives the trend from an optional change value.
func TrendOf(change *float64) Trend {
	switch {
	case change == nil:
		return TrendNone
	case *change > 0:
		return TrendUp
	case *change < 0:
		return TrendDown
	default:
		return TrendFlat
	}
}

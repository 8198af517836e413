package script

import "time"

// ErrorType categorizes script errors.
type ErrorType string

const (
	ErrorTypeCompilation ErrorType = "compilation"
	ErrorTypeExecution   ErrorType = "execution"
	ErrorTypeTimeout     ErrorType = "timeout"
)

// Error is a script failure with the name of the script it came from.
type Error struct {
	Type    ErrorType
	Script  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	msg := "script " + e.Script + ": " + e.Message
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newError(typ ErrorType, script, message string, cause error) *Error {
	return &Error{Type: typ, Script: script, Message: message, Cause: cause}
}

// Limits bounds what a script may do.
type Limits struct {
	MaxExecutionTime time.Duration
	// MaxAllocs caps the number of objects a single run may allocate.
	MaxAllocs      int64
	AllowedModules []string
}

// DefaultLimits are the limits action scripts run with.
var DefaultLimits = Limits{
	MaxExecutionTime: time.Second,
	MaxAllocs:        10_000,
	AllowedModules:   []string{"fmt", "strings", "math", "rand", "text"},
}

// Input is what a script sees when its action is triggered. Each field is
// available to the script as a global variable of the same name in lower
// case.
type Input struct {
	Action    string // pricing-card.Pro Plan Get Started
	Component string // pricing-card
	Label     string // Pro Plan Get Started
	Clicks    int    // clicks on this button since the catalog was loaded, this one included
}

func (in Input) vars() map[string]any {
	return map[string]any{
		"action":    in.Action,
		"component": in.Component,
		"label":     in.Label,
		"clicks":    in.Clicks,
	}
}

// Package script runs the Tengo programs attached to card actions.
//
// A script reads the Input globals and may set a string variable named
// result, which becomes the confirmation message shown to the user.
package script

import (
	"context"
	"errors"
	"log/slog"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// ResultVar is the global a script assigns its message to.
const ResultVar = "result"

// Engine compiles scripts under a fixed set of limits.
type Engine struct {
	limits Limits
}

// NewEngine creates an Engine enforcing limits.
func NewEngine(limits Limits) *Engine {
	return &Engine{limits: limits}
}

// Program is a compiled script. It is safe for concurrent use; every run
// works on its own copy of the globals.
type Program struct {
	name     string
	limits   Limits
	compiled *tengo.Compiled
}

// Compile parses and type-checks src. Compilation errors are reported with
// their line and column.
func (e *Engine) Compile(name, src string) (*Program, error) {
	s := tengo.NewScript([]byte(src))
	s.SetImports(stdlib.GetModuleMap(e.limits.AllowedModules...))
	s.SetMaxAllocs(e.limits.MaxAllocs)

	for k, v := range (Input{}).vars() {
		if err := s.Add(k, v); err != nil {
			return nil, newError(ErrorTypeCompilation, name, "declare "+k, err)
		}
	}

	compiled, err := s.Compile()
	if err != nil {
		return nil, newError(ErrorTypeCompilation, name, "failed to compile", err)
	}

	slog.Debug("Script compiled", "script", name)
	return &Program{name: name, limits: e.limits, compiled: compiled}, nil
}

// Name returns the name the program was compiled under.
func (p *Program) Name() string {
	return p.name
}

// Run executes the program with in as its globals and returns the value of
// ResultVar, or "" when the script sets none.
func (p *Program) Run(ctx context.Context, in Input) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.limits.MaxExecutionTime)
	defer cancel()

	c := p.compiled.Clone()
	for k, v := range in.vars() {
		if err := c.Set(k, v); err != nil {
			return "", newError(ErrorTypeExecution, p.name, "set "+k, err)
		}
	}

	if err := c.RunContext(ctx); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", newError(ErrorTypeTimeout, p.name, "timed out", err)
		}
		return "", newError(ErrorTypeExecution, p.name, "failed", err)
	}

	if !c.IsDefined(ResultVar) {
		return "", nil
	}
	return c.Get(ResultVar).String(), nil
}

// Package actions maps rendered action buttons back to server-side callbacks.
//
// A card never holds a function. Callers register a callback and receive a
// Handle; the card renders the handle's path as an hx-post target, and the
// HTTP layer calls Invoke when the button is activated.
package actions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/nfrund/cardshow/internal/pubsub"
)

var (
	ErrUnknownAction  = errors.New("unknown action")
	ErrActionPanicked = errors.New("action callback panicked")
)

// PathPrefix is the route prefix action handles post to.
const PathPrefix = "/actions/"

// Invoked is published on the bus every time a callback runs.
var Invoked = pubsub.NewEvent[InvokedPayload]("actions.invoked")

// InvokedPayload is the payload of the Invoked event.
type InvokedPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Handle identifies a registered callback. The zero Handle is unbound.
type Handle struct {
	ID string
}

// Path returns the URL the action button posts to.
func (h Handle) Path() string {
	return PathPrefix + h.ID
}

// Bound reports whether the handle refers to a registered callback.
func (h Handle) Bound() bool {
	return h.ID != ""
}

// Func is a callback that may report a message for the user. An empty
// message leaves the default confirmation in place.
type Func func(ctx context.Context) (message string, err error)

// Result describes a successful invocation.
type Result struct {
	Name    string
	Message string
}

type entry struct {
	name string
	fn   Func
}

// Registry holds the callbacks behind action handles.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
	pub     pubsub.Publisher
}

// NewRegistry creates a Registry. pub may be nil, in which case invocations
// are not published.
func NewRegistry(pub pubsub.Publisher) *Registry {
	return &Registry{
		entries: make(map[string]entry),
		pub:     pub,
	}
}

// Register stores fn under a fresh id and returns its handle. name is a
// human-readable label used in logs and statistics.
func (r *Registry) Register(name string, fn func()) Handle {
	return r.RegisterFunc(name, func(context.Context) (string, error) {
		if fn != nil {
			fn()
		}
		return "", nil
	})
}

// RegisterFunc is Register for callbacks that take a context and report a
// message or an error.
func (r *Registry) RegisterFunc(name string, fn Func) Handle {
	id := uuid.NewString()

	r.mu.Lock()
	r.entries[id] = entry{name: name, fn: fn}
	r.mu.Unlock()

	slog.Debug("Registered action", "id", id, "name", name)
	return Handle{ID: id}
}

// Unregister removes the callback behind h. Unknown handles are ignored.
func (r *Registry) Unregister(h Handle) {
	r.mu.Lock()
	delete(r.entries, h.ID)
	r.mu.Unlock()
}

// Name returns the name the action was registered with.
func (r *Registry) Name(id string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	return e.name, ok
}

// Names returns the sorted names of all registered actions.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		names = append(names, e.name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Invoke runs the callback registered under id. The callback runs outside
// the registry lock so it may register or unregister actions itself. On a
// callback failure the returned Result still carries the action name.
func (r *Registry) Invoke(ctx context.Context, id string) (Result, error) {
	r.mu.RLock()
	e, ok := r.entries[id]
	r.mu.RUnlock()
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownAction, id)
	}

	res := Result{Name: e.name}
	msg, err := call(ctx, e.fn)
	if err != nil {
		return res, fmt.Errorf("action %q: %w", e.name, err)
	}
	res.Message = msg

	if r.pub != nil {
		payload := InvokedPayload{ID: id, Name: e.name}
		if err := pubsub.Publish(ctx, r.pub, Invoked, payload, nil); err != nil {
			// The callback already ran.
			slog.Warn("Failed to publish action event", "name", e.name, "error", err)
		}
	}
	return res, nil
}

func call(ctx context.Context, fn Func) (msg string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrActionPanicked, rec)
		}
	}()
	if fn == nil {
		return "", nil
	}
	return fn(ctx)
}

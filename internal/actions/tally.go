package actions

import (
	"context"
	"sort"
	"sync"

	"github.com/nfrund/cardshow/internal/pubsub"
)

// Tally counts action invocations by name from the Invoked event stream.
type Tally struct {
	mu     sync.Mutex
	counts map[string]int
	total  int

	listeners []func()
}

func NewTally() *Tally {
	return &Tally{counts: make(map[string]int)}
}

// Start subscribes the tally to the Invoked event.
func (t *Tally) Start(ctx context.Context, sub pubsub.Subscriber) error {
	return pubsub.Subscribe(ctx, sub, Invoked, func(_ context.Context, p InvokedPayload, _ pubsub.Message) error {
		t.Record(p.Name)
		return nil
	})
}

// Record counts a single invocation of name.
func (t *Tally) Record(name string) {
	t.mu.Lock()
	t.counts[name]++
	t.total++
	listeners := t.listeners
	t.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// OnChange registers fn to be called after every recorded invocation. fn
// runs without the tally lock held, so it may read the counts.
func (t *Tally) OnChange(fn func()) {
	t.mu.Lock()
	t.listeners = append(t.listeners, fn)
	t.mu.Unlock()
}

// Counts returns a copy of the per-name counts.
func (t *Tally) Counts() map[string]int {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[string]int, len(t.counts))
	for k, v := range t.counts {
		out[k] = v
	}
	return out
}

func (t *Tally) Total() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.total
}

// Count is the number of invocations of one action.
type Count struct {
	Name  string
	Count int
}

// Ranked returns the counts ordered by count, highest first, then by name.
func (t *Tally) Ranked() []Count {
	counts := t.Counts()
	out := make([]Count, 0, len(counts))
	for name, n := range counts {
		out = append(out, Count{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

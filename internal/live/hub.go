// Package live pushes rendered HTML fragments to connected browsers.
package live

import (
	"context"
	"log/slog"
)

// SendBuffer is the number of fragments a subscriber may lag behind before
// it is dropped.
const SendBuffer = 16

// Subscriber is a single client receiving fragments from the Hub.
type Subscriber struct {
	// Send is closed by the hub when the subscriber is unregistered or dropped.
	Send chan []byte
}

// Hub maintains the set of active subscribers and broadcasts fragments to
// them. All state is owned by the Run loop.
type Hub struct {
	subscribers map[*Subscriber]bool

	broadcast  chan []byte
	register   chan *Subscriber
	unregister chan *Subscriber
	done       chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[*Subscriber]bool),
		broadcast:   make(chan []byte, SendBuffer),
		register:    make(chan *Subscriber),
		unregister:  make(chan *Subscriber),
		done:        make(chan struct{}),
	}
}

// Run processes registrations and broadcasts until ctx is done, then closes
// every subscriber.
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		for s := range h.subscribers {
			close(s.Send)
			delete(h.subscribers, s)
		}
		close(h.done)
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case s := <-h.register:
			h.subscribers[s] = true
			slog.Debug("Live subscriber registered", "total_subscribers", len(h.subscribers))

		case s := <-h.unregister:
			if h.subscribers[s] {
				delete(h.subscribers, s)
				close(s.Send)
				slog.Debug("Live subscriber unregistered", "total_subscribers", len(h.subscribers))
			}

		case msg := <-h.broadcast:
			for s := range h.subscribers {
				select {
				case s.Send <- msg:
				default:
					close(s.Send)
					delete(h.subscribers, s)
					slog.Warn("Dropping slow live subscriber", "total_subscribers", len(h.subscribers))
				}
			}
		}
	}
}

// Subscribe registers a new subscriber. It returns nil once the hub has
// stopped.
func (h *Hub) Subscribe() *Subscriber {
	s := &Subscriber{Send: make(chan []byte, SendBuffer)}
	select {
	case h.register <- s:
		return s
	case <-h.done:
		return nil
	}
}

// Unsubscribe removes s and closes its Send channel. It is safe to call
// after s was dropped or the hub stopped.
func (h *Hub) Unsubscribe(s *Subscriber) {
	select {
	case h.unregister <- s:
	case <-h.done:
	}
}

// Broadcast queues msg for every subscriber. It never blocks: when the queue
// is full the fragment is discarded, since a newer one supersedes it.
func (h *Hub) Broadcast(msg []byte) {
	select {
	case h.broadcast <- msg:
	default:
		slog.Warn("Live broadcast queue full, dropping fragment")
	}
}

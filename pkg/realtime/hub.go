package realtime

import (
	"context"
	"sync"
)

// Subscriber receives events for one table subscription.
type Subscriber interface {
	// Events returns the receive channel. It is closed when the
	// subscription ends, by Close or by context cancellation.
	Events() <-chan Event

	// Close ends the subscription. Idempotent and safe to call after the
	// owning context is already cancelled.
	Close() error
}

type subscriber struct {
	ch     chan Event
	filter Filter
	mu     sync.RWMutex
	closed bool
}

func newSubscriber(bufferSize int, filter Filter) *subscriber {
	return &subscriber{
		ch:     make(chan Event, bufferSize),
		filter: filter,
	}
}

func (s *subscriber) Events() <-chan Event {
	return s.ch
}

func (s *subscriber) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		close(s.ch)
		s.closed = true
	}
	return nil
}

// send delivers non-blocking; a full buffer drops the event and reports
// false so the hub can prune the subscriber.
func (s *subscriber) send(e Event) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return false
	}
	select {
	case s.ch <- e:
		return true
	default:
		return false
	}
}

// Hub fans out change events to table-scoped subscribers. All methods are
// safe for concurrent use.
type Hub struct {
	mu         sync.RWMutex
	tables     map[string]map[*subscriber]struct{}
	bufferSize int
	closed     bool
	done       chan struct{}
	cleanupWg  sync.WaitGroup
}

// HubOption configures a Hub.
type HubOption func(*Hub)

// WithBufferSize sets the per-subscriber channel buffer. Minimum 1, so
// sends stay non-blocking.
func WithBufferSize(n int) HubOption {
	return func(h *Hub) { h.bufferSize = max(n, 1) }
}

// NewHub creates a Hub.
func NewHub(opts ...HubOption) *Hub {
	h := &Hub{
		tables:     make(map[string]map[*subscriber]struct{}),
		bufferSize: 16,
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Subscribe registers a subscriber for one table's change stream. The
// subscription ends when ctx is cancelled or Close is called, whichever
// comes first; either way the event channel is closed and nothing dangles.
func (h *Hub) Subscribe(ctx context.Context, table string, filter Filter) Subscriber {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub := newSubscriber(h.bufferSize, filter)
	if h.closed {
		_ = sub.Close()
		return sub
	}

	if h.tables[table] == nil {
		h.tables[table] = make(map[*subscriber]struct{})
	}
	h.tables[table][sub] = struct{}{}

	if ctx.Done() != nil {
		h.cleanupWg.Add(1)
		go func() {
			defer h.cleanupWg.Done()
			select {
			case <-ctx.Done():
				h.unsubscribe(table, sub)
			case <-h.done:
				// Hub shutdown already closed the subscriber.
			}
		}()
	}

	return sub
}

// Publish delivers an event to every matching subscriber of its table.
// Within one table, events reach a subscriber in publish order; slow
// subscribers get events dropped rather than stalling the publisher.
func (h *Hub) Publish(ctx context.Context, e Event) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return nil
	}

	for sub := range h.tables[e.Table] {
		if sub.filter != nil && !sub.filter(e) {
			continue
		}
		if !sub.send(e) {
			// Pruned asynchronously to keep publishing read-locked.
			go h.unsubscribe(e.Table, sub)
		}
	}
	return nil
}

// SubscriberCount reports active subscribers on a table, for tests and
// introspection.
func (h *Hub) SubscriberCount(table string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.tables[table])
}

// Close shuts the hub down and closes every subscriber. Idempotent.
func (h *Hub) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	close(h.done)
	for _, subs := range h.tables {
		for sub := range subs {
			_ = sub.Close()
		}
	}
	clear(h.tables)
	h.mu.Unlock()

	h.cleanupWg.Wait()
	return nil
}

func (h *Hub) unsubscribe(table string, sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.tables[table], sub)
	_ = sub.Close()
}

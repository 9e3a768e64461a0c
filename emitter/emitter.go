package emitter

import (
	"sync"
	"sync/atomic"
)

// State represents the lifecycle state of a subscription.
type State int32

const (
	// StateActive means the subscription is receiving events.
	StateActive State = iota

	// StatePaused means the subscription is temporarily not receiving events.
	StatePaused

	// StateCancelled means the subscription has been permanently cancelled.
	StateCancelled
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StatePaused:
		return "paused"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Option configures a subscription.
type Option func(*subConfig)

type subConfig struct {
	once bool
}

// Once makes the subscription auto-cancel after its first delivery.
func Once() Option {
	return func(c *subConfig) {
		c.once = true
	}
}

// Subscription is a live registration of a handler under an event name.
type Subscription[T any] struct {
	id      uint64
	name    string
	fn      func(T)
	once    bool
	state   atomic.Int32
	emitter *Emitter[T]
}

// Name returns the event name the subscription is registered under.
func (s *Subscription[T]) Name() string {
	return s.name
}

// State returns the current subscription state.
func (s *Subscription[T]) State() State {
	return State(s.state.Load())
}

// IsActive returns true if the subscription can receive events.
func (s *Subscription[T]) IsActive() bool {
	return s.State() == StateActive
}

// Pause temporarily stops delivery to this subscription.
func (s *Subscription[T]) Pause() {
	s.state.CompareAndSwap(int32(StateActive), int32(StatePaused))
}

// Resume restarts delivery after a pause.
func (s *Subscription[T]) Resume() {
	s.state.CompareAndSwap(int32(StatePaused), int32(StateActive))
}

// Unsubscribe cancels the subscription and removes it from the emitter.
// It is safe to call more than once.
func (s *Subscription[T]) Unsubscribe() {
	s.state.Store(int32(StateCancelled))
	if s.emitter != nil {
		s.emitter.remove(s)
	}
}

// Emitter is a name-keyed synchronous event dispatcher.
// The zero value is not usable; create one with New.
type Emitter[T any] struct {
	mu     sync.RWMutex
	subs   map[string][]*Subscription[T]
	byID   map[uint64]*Subscription[T]
	nextID uint64
}

// New creates a new Emitter for payloads of type T.
func New[T any]() *Emitter[T] {
	return &Emitter[T]{
		subs: make(map[string][]*Subscription[T]),
		byID: make(map[uint64]*Subscription[T]),
	}
}

// Subscribe registers a handler under an event name and returns its
// subscription handle. Handlers for the same name are delivered in
// subscription order.
func (e *Emitter[T]) Subscribe(name string, fn func(T), opts ...Option) *Subscription[T] {
	if fn == nil {
		return nil
	}

	var cfg subConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.nextID++
	sub := &Subscription[T]{
		id:      e.nextID,
		name:    name,
		fn:      fn,
		once:    cfg.once,
		emitter: e,
	}
	sub.state.Store(int32(StateActive))

	e.subs[name] = append(e.subs[name], sub)
	e.byID[sub.id] = sub
	return sub
}

// Publish delivers the payload to every live subscriber of the name, in
// subscription order, and returns the number of handlers invoked.
// Handlers run on the caller's goroutine, outside the emitter's locks.
func (e *Emitter[T]) Publish(name string, payload T) int {
	e.mu.RLock()
	subs := e.subs[name]
	snapshot := make([]*Subscription[T], len(subs))
	copy(snapshot, subs)
	e.mu.RUnlock()

	delivered := 0
	for _, sub := range snapshot {
		if !sub.IsActive() {
			continue
		}
		if sub.once {
			// Cancel before invoking so a re-entrant publish from the
			// handler cannot deliver twice.
			if !sub.state.CompareAndSwap(int32(StateActive), int32(StateCancelled)) {
				continue
			}
			e.remove(sub)
		}
		sub.fn(payload)
		delivered++
	}
	return delivered
}

// UnsubscribeAll cancels every subscription for the given names, or every
// subscription on the emitter when called with no arguments.
func (e *Emitter[T]) UnsubscribeAll(names ...string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(names) == 0 {
		for _, sub := range e.byID {
			sub.state.Store(int32(StateCancelled))
		}
		e.subs = make(map[string][]*Subscription[T])
		e.byID = make(map[uint64]*Subscription[T])
		return
	}

	for _, name := range names {
		for _, sub := range e.subs[name] {
			sub.state.Store(int32(StateCancelled))
			delete(e.byID, sub.id)
		}
		delete(e.subs, name)
	}
}

// Count returns the number of registered subscriptions for a name.
func (e *Emitter[T]) Count(name string) int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.subs[name])
}

// Names returns every event name with at least one subscription.
func (e *Emitter[T]) Names() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if len(e.subs) == 0 {
		return nil
	}
	names := make([]string, 0, len(e.subs))
	for name := range e.subs {
		names = append(names, name)
	}
	return names
}

// remove detaches a subscription from the emitter's tables.
func (e *Emitter[T]) remove(sub *Subscription[T]) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.byID[sub.id]; !ok {
		return
	}
	delete(e.byID, sub.id)

	subs := e.subs[sub.name]
	for i, s := range subs {
		if s.id == sub.id {
			e.subs[sub.name] = append(subs[:i], subs[i+1:]...)
			break
		}
	}
	if len(e.subs[sub.name]) == 0 {
		delete(e.subs, sub.name)
	}
}

package treewatch

import (
	"github.com/dshills/treewatch/emitter"
	"github.com/dshills/treewatch/pattern"
)

// Subscription is a live registration of a handler against a path
// pattern on an Observer.
type Subscription struct {
	id     uint64
	name   string
	segs   []string
	handle *emitter.Subscription[Change]
	owner  *Observer
	done   bool
}

// Name returns the subscription name as given to Subscribe.
func (s *Subscription) Name() string {
	return s.name
}

// Pause temporarily stops delivery to this subscription.
func (s *Subscription) Pause() {
	s.handle.Pause()
}

// Resume restarts delivery after a pause.
func (s *Subscription) Resume() {
	s.handle.Resume()
}

// Unsubscribe removes the subscription from the Observer's registry and
// the underlying emitter. It is safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s.done {
		return
	}
	s.done = true
	s.handle.Unsubscribe()

	// After a Reset the registry has been rebuilt; an old handle must
	// not decrement patterns registered since.
	if _, ok := s.owner.subs[s.id]; !ok {
		return
	}
	if !isCatchAll(s.name) {
		s.owner.trie.Remove(s.segs)
	}
	delete(s.owner.subs, s.id)
}

// Subscribe registers a handler for change events matching the name.
//
// A name is a dotted path pattern, optionally wildcarded with "*"
// segments and optionally suffixed with a change kind:
//
//	"earth.population:set"  - exact path, set events only
//	"*.population:set"      - any top-level key's population
//	":set"                  - set events on the root itself
//	"set"                   - catch-all: every set event anywhere
//
// Bare kind names subscribe to the catch-all stream for that kind,
// which fires after the qualified events of each change. Qualified
// subscriptions fire only for changes whose path matches the pattern
// and whose kind matches the suffix.
//
// With once set, the subscription cancels itself after its first
// delivery. Handlers run synchronously inside the mutation call; the
// Change's Path slice is valid only during the call.
func (o *Observer) Subscribe(name string, fn Handler, opts ...emitter.Option) *Subscription {
	if fn == nil {
		return nil
	}

	o.nextSub++
	sub := &Subscription{
		id:    o.nextSub,
		name:  name,
		owner: o,
	}
	sub.handle = o.emitter.Subscribe(name, func(c Change) {
		fn(c)
		// A once subscription cancels itself inside the emitter; drop
		// its pattern registration as well.
		if !sub.handle.IsActive() {
			sub.Unsubscribe()
		}
	}, opts...)

	if !isCatchAll(name) {
		path, _ := pattern.SplitKind(name)
		sub.segs = pathStrings(o.resolve(path))
		o.trie.Insert(sub.segs)
	}
	o.subs[sub.id] = sub
	return sub
}

// Once marks a subscription for cancellation after its first delivery.
func Once() emitter.Option {
	return emitter.Once()
}

// isCatchAll reports whether a subscription name addresses the bare
// per-kind stream rather than a path pattern.
func isCatchAll(name string) bool {
	return isChangeKind(name)
}

// dispatch routes one change event: every matching path pattern gets a
// qualified event named "<pattern>:<kind>", most specific pattern first,
// and then the catch-all stream named after the bare kind fires with the
// same change.
func (o *Observer) dispatch(c Change) {
	kind := c.Kind.String()
	for _, pat := range o.trie.Match(c.Path) {
		o.emitter.Publish(pattern.Qualified(pat, kind), c)
	}
	o.emitter.Publish(kind, c)
}

package treewatch

import (
	"github.com/dshills/treewatch/emitter"
	"github.com/dshills/treewatch/pattern"
)

// Observer is a mutable JSON-like data container that emits synchronous
// change notifications keyed by dotted paths.
//
// Every mutation method is a complete synchronous transaction: the tree
// is mutated, side-effect events are computed, and every subscriber runs
// before the method returns. Invalid calls - unresolvable paths, type
// mismatches, out-of-range indices - are absorbed as silent no-ops; the
// mutation API never panics on its own and never reports errors.
//
// The Observer runs a single logical thread of control. It is not safe
// for concurrent use, but handlers may call back into the same Observer;
// such calls re-enter the machinery synchronously.
type Observer struct {
	root    *Value
	cache   map[string][]Segment
	emitter *emitter.Emitter[Change]
	trie    *pattern.Trie
	subs    map[uint64]*Subscription
	nextSub uint64
}

// New creates an Observer owning the initial data. The root must be an
// object or an array; any other initial value, including nil, yields an
// empty object root.
func New(initial any) *Observer {
	o := &Observer{
		cache:   make(map[string][]Segment),
		emitter: emitter.New[Change](),
		trie:    pattern.NewTrie(),
		subs:    make(map[uint64]*Subscription),
	}
	root := newValue(initial)
	if !root.IsContainer() {
		root = newObject()
	}
	o.root = root
	return o
}

// Get returns the node at the path, or nil if any segment along the path
// is missing. The result aliases live container state; treat it as
// read-only. The empty path returns the root.
func (o *Observer) Get(path string) *Value {
	return o.node(o.resolve(path))
}

// Has reports whether a node exists at the path.
func (o *Observer) Has(path string) bool {
	return o.Get(path) != nil
}

// Len returns the length of the array or object at the path, 0 for
// scalars and missing nodes.
func (o *Observer) Len(path string) int {
	return o.Get(path).Len()
}

// Root returns the root value.
func (o *Observer) Root() *Value {
	return o.root
}

// Set replaces the value at the path and emits the resulting diff
// events: recursive teardown for whatever disappeared, then recursive
// set events for what was created, deepest first.
//
// Set never creates intermediate containers: if the parent chain does
// not resolve, the call is a no-op. Replacing the root requires an
// object or array value. Setting an array index beyond the current
// length auto-extends the array with null placeholders, emitting one
// insert event per created slot, oldest index first.
func (o *Observer) Set(path string, value any) {
	o.setAt(o.resolve(path), newValue(value))
}

// setAt applies set semantics to an already-resolved path. Patch falls
// back here for every non-merge pairing.
func (o *Observer) setAt(segs []Segment, nv *Value) {
	if len(segs) == 0 {
		if !nv.IsContainer() {
			return
		}
		old := o.root
		o.root = nv
		o.checkUnset(nil, old, nv)
		o.checkSet(nil, nv, old)
		return
	}

	parent := o.node(segs[:len(segs)-1])
	last := segs[len(segs)-1]
	base := pathStrings(segs)

	switch parent.Kind() {
	case Object:
		key := last.String()
		old := parent.fields[key]
		parent.setField(key, nv)
		o.checkUnset(base, old, nv)
		o.checkSet(base, nv, old)

	case Array:
		i, ok := arrayIndex(last)
		if !ok {
			return
		}
		oldLen := parent.Len()
		if i >= oldLen {
			// Auto-extension: the splice creates null placeholder slots
			// up to the target index, one insert event per new slot.
			parent.extend(i + 1)
			parent.setElem(i, nv)
			arrPath := base[:len(base)-1]
			for slot := oldLen; slot <= i; slot++ {
				o.dispatch(Change{
					Kind:  ChangeInsert,
					Path:  arrPath,
					Value: parent.at(slot),
					Index: slot,
					From:  -1, To: -1,
				})
			}
			o.checkSet(base, nv, nil)
			return
		}
		old := parent.at(i)
		parent.setElem(i, nv)
		o.checkUnset(base, old, nv)
		o.checkSet(base, nv, old)
	}
}

// Unset removes the value at the path with full recursive teardown
// notification. Removing from an array splices the element out and
// additionally emits one move event per following element, highest index
// first, then a remove event for the removed value at its original
// index. Removing an object key deletes it without reindexing.
//
// With the empty path the whole root is replaced by an empty object and
// everything under the old root is torn down. Unsetting an absent path
// is a no-op.
func (o *Observer) Unset(path string) {
	segs := o.resolve(path)
	if len(segs) == 0 {
		old := o.root
		o.root = newObject()
		o.checkUnset(nil, old, o.root)
		return
	}

	parent := o.node(segs[:len(segs)-1])
	last := segs[len(segs)-1]
	base := pathStrings(segs)

	switch parent.Kind() {
	case Object:
		key := last.String()
		old, ok := parent.field(key)
		if !ok {
			return
		}
		o.checkUnset(base, old, nil)
		parent.deleteField(key)

	case Array:
		i, ok := arrayIndex(last)
		if !ok || i >= parent.Len() {
			return
		}
		o.removeAt(parent, base[:len(base)-1], i)
	}
}

// Reset replaces the root with an empty object, clears the path cache,
// and removes every subscription. It emits nothing.
func (o *Observer) Reset() {
	o.root = newObject()
	o.cache = make(map[string][]Segment)
	o.trie.Clear()
	o.emitter.UnsubscribeAll()
	o.subs = make(map[uint64]*Subscription)
}

// arrayIndex extracts a usable array index from a segment, tolerating
// stale key-classified segments whose text still parses as an index.
func arrayIndex(s Segment) (int, bool) {
	if s.isIndex {
		return s.index, true
	}
	i, ok := parseIndex(s.key)
	return i, ok
}

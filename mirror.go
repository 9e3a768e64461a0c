package treewatch

import (
	"strconv"

	"github.com/tidwall/match"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/dshills/treewatch/pattern"
)

// Mirror maintains a serialized JSON replica of an Observer by replaying
// its change events onto the document, without re-marshaling the tree on
// every read. It subscribes to the catch-all stream of every change kind
// and applies path-level writes.
//
// A Mirror is driven synchronously by the Observer's dispatch and
// inherits its single-threaded contract.
type Mirror struct {
	doc     []byte
	subs    []*Subscription
	ignores []string
	indent  bool
	err     error
}

// MirrorOption configures a Mirror.
type MirrorOption func(*Mirror)

// WithIgnore skips changes whose dotted path matches any of the globs
// (match.Match semantics, where '*' and '?' match within and across
// segments). Ignored subtrees keep their snapshot value in the replica.
func WithIgnore(globs ...string) MirrorOption {
	return func(m *Mirror) {
		m.ignores = append(m.ignores, globs...)
	}
}

// WithIndent pretty-prints the replica returned by Bytes.
func WithIndent() MirrorOption {
	return func(m *Mirror) {
		m.indent = true
	}
}

// NewMirror snapshots the Observer and starts replaying its changes.
// The caller owns the Mirror and must Close it to detach.
func NewMirror(o *Observer, opts ...MirrorOption) (*Mirror, error) {
	doc, err := o.MarshalJSON()
	if err != nil {
		return nil, err
	}

	m := &Mirror{doc: doc}
	for _, opt := range opts {
		opt(m)
	}
	for _, kind := range changeKinds {
		m.subs = append(m.subs, o.Subscribe(kind.String(), m.apply))
	}
	return m, nil
}

// Bytes returns the current replica. With WithIndent the document is
// pretty-printed; otherwise it stays in compact form.
func (m *Mirror) Bytes() []byte {
	out := make([]byte, len(m.doc))
	copy(out, m.doc)
	if m.indent {
		return pretty.Pretty(out)
	}
	return out
}

// Err returns the first replay error, if any. After an error the replica
// stops applying changes and is stale.
func (m *Mirror) Err() error {
	return m.err
}

// Close detaches the Mirror from the Observer.
func (m *Mirror) Close() {
	for _, sub := range m.subs {
		sub.Unsubscribe()
	}
	m.subs = nil
}

// apply replays one change onto the document.
//
// Array structure falls out of the event order: teardown unsets delete
// elements, move events rewrite displaced slots, and insert events write
// the final slot, so remove events need no document write of their own.
func (m *Mirror) apply(c Change) {
	if m.err != nil {
		return
	}
	p := pattern.Join(c.Path)
	if m.ignored(p) {
		return
	}

	switch c.Kind {
	case ChangeSet:
		if p == "" {
			// Root replacement: re-encode wholesale.
			m.doc, m.err = c.Value.MarshalJSON()
			return
		}
		m.doc, m.err = sjson.SetBytes(m.doc, p, c.Value.Interface())

	case ChangeUnset:
		m.doc, m.err = sjson.DeleteBytes(m.doc, p)

	case ChangeInsert:
		m.doc, m.err = sjson.SetBytes(m.doc, elemPath(p, c.Index), c.Value.Interface())

	case ChangeMove:
		m.doc, m.err = sjson.SetBytes(m.doc, elemPath(p, c.To), c.Value.Interface())

	case ChangeRemove:
		// Already deleted by the teardown unset of the same element.
	}
}

// ignored reports whether the path matches any ignore glob.
func (m *Mirror) ignored(path string) bool {
	for _, glob := range m.ignores {
		if match.Match(path, glob) {
			return true
		}
	}
	return false
}

// elemPath addresses one element of the array at an event path.
func elemPath(arrPath string, index int) string {
	if arrPath == "" {
		return strconv.Itoa(index)
	}
	return arrPath + pattern.Separator + strconv.Itoa(index)
}

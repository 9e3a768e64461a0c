package treewatch

// ChangeKind identifies the kind of mutation a Change describes.
type ChangeKind int

const (
	// ChangeSet indicates a value was created or replaced.
	ChangeSet ChangeKind = iota

	// ChangeUnset indicates a value was removed or torn down.
	ChangeUnset

	// ChangeInsert indicates an element was inserted into an array.
	ChangeInsert

	// ChangeMove indicates an array element shifted to a new index.
	ChangeMove

	// ChangeRemove indicates an element was removed from an array.
	ChangeRemove
)

// String returns the change kind name. It is also the event name of the
// catch-all subscription for that kind.
func (k ChangeKind) String() string {
	switch k {
	case ChangeSet:
		return "set"
	case ChangeUnset:
		return "unset"
	case ChangeInsert:
		return "insert"
	case ChangeMove:
		return "move"
	case ChangeRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// changeKinds lists every kind, in dispatch vocabulary order.
var changeKinds = []ChangeKind{ChangeSet, ChangeUnset, ChangeInsert, ChangeMove, ChangeRemove}

// isChangeKind reports whether name is the catch-all name of a kind.
func isChangeKind(name string) bool {
	for _, k := range changeKinds {
		if name == k.String() {
			return true
		}
	}
	return false
}

// Change describes one mutation side effect.
//
// The Path slice aliases dispatch-internal state: it is valid only for
// the duration of the synchronous handler call and must be copied if
// retained. Value and Previous alias live container state and must be
// treated as read-only.
type Change struct {
	// Kind is the kind of mutation.
	Kind ChangeKind

	// Path addresses the changed node, one string per segment. Array
	// indices appear as decimal strings. Empty for the root.
	Path []string

	// Value is the new value for set and insert events, the moved
	// element for move events, and the removed value for unset and
	// remove events.
	Value *Value

	// Previous is the replaced value for set events, nil otherwise.
	Previous *Value

	// Index is the affected element index for insert and remove
	// events, -1 otherwise.
	Index int

	// From and To are the old and new element index for move events,
	// -1 otherwise.
	From int
	To   int
}

// Handler receives change events during the mutation call that caused
// them. A handler may call back into the container; such calls re-enter
// the mutation machinery synchronously.
type Handler func(Change)

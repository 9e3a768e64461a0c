// Package treewatch provides a mutable JSON-like data container that
// emits synchronous, structured change notifications keyed by dotted
// paths, so independent modules can react to data mutations without
// direct coupling.
//
// # Architecture
//
// The container is built from four cooperating parts:
//
//   - Path resolver: turns dotted path strings into cached segment
//     sequences, classifying numeric segments against the current data
//     shape (path.go).
//   - Diff engine: recursive comparison of old and new subtrees deciding
//     which set/unset events a mutation produces (diff.go).
//   - Array mutation engine: insert/move/remove with exact ordered move
//     event sequences for displaced elements (array.go).
//   - Wildcard registry: a suffix-indexed, reference-counted trie over
//     subscription patterns that routes each concrete mutated path to
//     every matching pattern (package pattern), dispatching through a
//     name-keyed synchronous emitter (package emitter).
//
// # Paths
//
// Paths are dot-separated. Object keys are plain strings; array indices
// are decimal strings. The empty path denotes the root:
//
//	o := treewatch.New(map[string]any{
//	    "earth": map[string]any{"population": 7.594},
//	})
//	o.Get("earth.population").Float() // 7.594
//
// Path resolutions are cached against the data shape seen at first use
// and reused verbatim afterward; only Reset clears the cache.
//
// # Subscriptions
//
// Subscribe registers a handler under a pattern with an optional change
// kind suffix. Wildcard segments match exactly one concrete segment:
//
//	o.Subscribe("*.population:set", func(c treewatch.Change) {
//	    fmt.Println(c.Path, c.Value.Float(), c.Previous.Float())
//	})
//	o.Set("earth.population", 7.595)
//
// Every change also fires a catch-all event named after its bare kind
// ("set", "unset", "insert", "move", "remove"), after the qualified
// events for the same change.
//
// # Mutations
//
// Set, Patch, Unset, Insert, Move, and Remove are complete synchronous
// transactions: tree mutation, diffing, and all event delivery finish
// before the call returns. Invalid calls - unresolvable parents, type
// mismatches, out-of-range indices - are silent no-ops. Handlers may
// call back into the container; such calls re-enter the machinery
// synchronously.
//
// # Sharing
//
// Values returned by Get and carried by Change alias live container
// state and must be treated as read-only. The Change.Path slice is valid
// only during the synchronous handler call.
//
// # Interop
//
// FromJSON/LoadJSON and FromYAML/LoadYAML ingest documents; MarshalJSON
// and MarshalYAML export the tree. A Mirror maintains a serialized JSON
// replica incrementally by replaying change events.
//
// # Subpackages
//
//   - pattern: path pattern vocabulary and the wildcard trie
//   - emitter: the name-keyed synchronous publish/subscribe primitive
package treewatch

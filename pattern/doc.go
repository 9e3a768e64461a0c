// Package pattern provides the path pattern vocabulary used by treewatch
// subscriptions and a suffix-indexed trie for wildcard pattern matching.
//
// # Paths and Patterns
//
// A path is a dot-separated sequence of segments addressing a node in a
// data tree. Object keys are plain strings and array indices are decimal
// strings:
//
//	users.3.name       - name of the fourth element of users
//	earth.population   - nested object key
//
// A pattern is a path whose segments may be the wildcard "*", matching
// exactly one segment at that position:
//
//	*.population       - population of any top-level entry
//	users.*.name       - name of any users element
//
// Subscription names carry an optional change-kind suffix separated by a
// colon, e.g. "users.*.name:set". SplitKind separates the two halves.
//
// # Suffix Trie
//
// The Trie indexes patterns from their last segment backward, so patterns
// sharing a suffix share trie nodes. Nodes are reference counted: Insert
// increments every node along the pattern, Remove decrements and prunes
// nodes whose count reaches zero, stopping at the first node another
// pattern still holds. Match walks a concrete path from its last segment
// backward, following exact and wildcard branches, and reports every
// pattern of the same length that terminates on the walk, most specific
// first.
//
// Only patterns whose segment count equals the path length match; the
// empty pattern matches the empty (root) path.
//
// The Trie is not safe for concurrent use. The container that owns it
// runs a single logical thread of control, and re-entrant use from within
// a match callback is legal.
package pattern

package pattern

// Trie is a reference-counted trie over subscription patterns, indexed
// from the last segment of each pattern backward. Patterns sharing a
// suffix share nodes, and every node counts how many patterns pass
// through it and how many terminate exactly on it.
//
// Matching a concrete path walks the trie from the path's last segment
// backward, following both the exact child and the wildcard child at
// every level, so one mutation can match several distinct patterns.
type Trie struct {
	root *trieNode
}

// trieNode is a single trie level. refs counts patterns passing through
// the node; ends counts patterns terminating exactly here.
type trieNode struct {
	children map[string]*trieNode
	refs     int
	ends     int
}

func newTrieNode() *trieNode {
	return &trieNode{
		children: make(map[string]*trieNode),
	}
}

// NewTrie creates a new pattern trie.
func NewTrie() *Trie {
	return &Trie{
		root: newTrieNode(),
	}
}

// Insert adds one reference to the pattern given by its segments.
// Inserting the same pattern again increments its counters; each Insert
// must be balanced by one Remove. A nil segment slice registers the
// empty (root) pattern.
func (t *Trie) Insert(segments []string) {
	// Initialize root if zero-value Trie is used
	if t.root == nil {
		t.root = newTrieNode()
	}

	node := t.root
	for i := len(segments) - 1; i >= 0; i-- {
		seg := segments[i]
		child := node.children[seg]
		if child == nil {
			child = newTrieNode()
			node.children[seg] = child
		}
		child.refs++
		node = child
	}
	node.ends++
}

// Remove drops one reference to the pattern and prunes nodes no other
// pattern holds. The prune walk stops at the first node that is still
// referenced; its ancestors are necessarily still referenced too.
// Returns false if the pattern was not present.
func (t *Trie) Remove(segments []string) bool {
	if t.root == nil {
		return false
	}

	// Walk to the terminal node, tracking the path for pruning.
	type pathEntry struct {
		node *trieNode
		key  string
	}
	path := make([]pathEntry, 0, len(segments)+1)
	path = append(path, pathEntry{node: t.root})

	node := t.root
	for i := len(segments) - 1; i >= 0; i-- {
		seg := segments[i]
		child := node.children[seg]
		if child == nil {
			return false
		}
		path = append(path, pathEntry{node: child, key: seg})
		node = child
	}
	if node.ends == 0 {
		return false
	}

	node.ends--
	for i := 1; i < len(path); i++ {
		path[i].node.refs--
	}

	// Prune unreferenced nodes from the deepest level back toward the
	// root, stopping at the first still-referenced node.
	for i := len(path) - 1; i > 0; i-- {
		if path[i].node.refs > 0 {
			break
		}
		delete(path[i-1].node.children, path[i].key)
	}

	return true
}

// Match returns every registered pattern that matches the concrete path,
// reconstructed as dotted strings. Patterns are reported depth first with
// the exact branch explored before the wildcard branch at each level, so
// more specific patterns come before wildcard ones. Only patterns with
// the same segment count as the path match; the empty path matches only
// the empty pattern.
func (t *Trie) Match(path []string) []string {
	if t.root == nil {
		return nil
	}

	var matches []string
	rev := make([]string, 0, len(path))
	t.match(t.root, path, 0, rev, &matches)
	return matches
}

// match consumes path segments from the last one backward. depth is the
// number of segments consumed so far; rev holds the trie keys chosen on
// the way down, in reverse pattern order.
func (t *Trie) match(node *trieNode, path []string, depth int, rev []string, matches *[]string) {
	if depth == len(path) {
		if node.ends > 0 {
			*matches = append(*matches, joinReversed(rev))
		}
		return
	}

	seg := path[len(path)-1-depth]

	if child := node.children[seg]; child != nil {
		t.match(child, path, depth+1, append(rev, seg), matches)
	}
	if seg != Wildcard {
		if child := node.children[Wildcard]; child != nil {
			t.match(child, path, depth+1, append(rev, Wildcard), matches)
		}
	}
}

// Contains reports whether the exact pattern is registered.
func (t *Trie) Contains(segments []string) bool {
	if t.root == nil {
		return false
	}

	node := t.root
	for i := len(segments) - 1; i >= 0; i-- {
		node = node.children[segments[i]]
		if node == nil {
			return false
		}
	}
	return node.ends > 0
}

// Size returns the number of pattern references held by the trie,
// counting duplicates.
func (t *Trie) Size() int {
	count := 0
	t.countEnds(t.root, &count)
	return count
}

func (t *Trie) countEnds(node *trieNode, count *int) {
	if node == nil {
		return
	}
	*count += node.ends
	for _, child := range node.children {
		t.countEnds(child, count)
	}
}

// NodeCount returns the total number of nodes in the trie.
// This is useful for verifying prune behavior.
func (t *Trie) NodeCount() int {
	count := 0
	t.countNodes(t.root, &count)
	return count
}

func (t *Trie) countNodes(node *trieNode, count *int) {
	if node == nil {
		return
	}
	*count++
	for _, child := range node.children {
		t.countNodes(child, count)
	}
}

// Clear removes all patterns from the trie.
func (t *Trie) Clear() {
	t.root = newTrieNode()
}

// joinReversed joins trie keys collected back-to-front into a forward
// dotted pattern.
func joinReversed(rev []string) string {
	if len(rev) == 0 {
		return ""
	}
	fwd := make([]string, len(rev))
	for i, seg := range rev {
		fwd[len(rev)-1-i] = seg
	}
	return Join(fwd)
}

package treewatch

import (
	"strconv"
	"strings"

	"github.com/dshills/treewatch/pattern"
)

// Segment is one resolved step of a path: either an object key or an
// array index. The classification is decided against the data shape at
// resolution time.
type Segment struct {
	key     string
	index   int
	isIndex bool
}

// String returns the segment as it appears in a dotted path.
func (s Segment) String() string {
	if s.isIndex {
		return strconv.Itoa(s.index)
	}
	return s.key
}

// IsIndex reports whether the segment was classified as an array index.
func (s Segment) IsIndex() bool {
	return s.isIndex
}

// resolve turns a raw dotted path into its segment sequence, classifying
// each part as a key or an index against the current tree shape: a part
// under an array node becomes a numeric index when it parses as a
// non-negative integer.
//
// Resolutions are cached by the raw string and reused verbatim on later
// calls, even after the tree shape at that path has changed. The cache is
// cleared only by Reset. Parts past a missing node default to string
// keys. Resolution never fails.
func (o *Observer) resolve(path string) []Segment {
	if path == "" {
		return nil
	}
	if segs, ok := o.cache[path]; ok {
		return segs
	}

	parts := strings.Split(path, pattern.Separator)
	segs := make([]Segment, 0, len(parts))
	node := o.root
	for _, part := range parts {
		var seg Segment
		if node.Kind() == Array {
			if i, err := strconv.Atoi(part); err == nil && i >= 0 {
				seg = Segment{index: i, isIndex: true}
			} else {
				seg = Segment{key: part}
			}
		} else {
			seg = Segment{key: part}
		}
		segs = append(segs, seg)
		node = childOf(node, seg)
	}

	o.cache[path] = segs
	return segs
}

// childOf descends one segment. Index segments address arrays; key
// segments address objects, and address arrays too when the key parses
// as a valid index, which happens when a cached resolution has gone
// stale against a shape change.
func childOf(v *Value, s Segment) *Value {
	switch v.Kind() {
	case Object:
		return v.fields[s.String()]
	case Array:
		if s.isIndex {
			return v.at(s.index)
		}
		if i, err := strconv.Atoi(s.key); err == nil {
			return v.at(i)
		}
		return nil
	default:
		return nil
	}
}

// node walks the segment sequence from the root, returning nil as soon
// as a segment is unresolvable.
func (o *Observer) node(segs []Segment) *Value {
	v := o.root
	for _, s := range segs {
		v = childOf(v, s)
		if v == nil {
			return nil
		}
	}
	return v
}

// pathStrings renders segments as event path elements.
func pathStrings(segs []Segment) []string {
	if len(segs) == 0 {
		return nil
	}
	out := make([]string, len(segs))
	for i, s := range segs {
		out[i] = s.String()
	}
	return out
}

// childPath extends an event path by one segment.
func childPath(base []string, seg string) []string {
	return append(base, seg)
}

package treewatch

import "strconv"

// Patch merges value into the container value at path. When both the
// current and incoming values are containers they merge recursively;
// every other pairing falls back to Set semantics, so a container
// replaced by a scalar tears down with a single set event and a scalar
// replaced by a container announces every created node.
//
// Patch follows the same navigation rules as Set: an unresolvable parent
// chain is a silent no-op, and the root only accepts container values.
func (o *Observer) Patch(path string, value any) {
	segs := o.resolve(path)
	nv := newValue(value)

	if len(segs) == 0 {
		if !nv.IsContainer() {
			return
		}
		o.patchNode(nil, o.root, nv)
		return
	}

	parent := o.node(segs[:len(segs)-1])
	if !parent.IsContainer() {
		return
	}
	current := childOf(parent, segs[len(segs)-1])
	if current.IsContainer() && nv.IsContainer() {
		o.patchNode(pathStrings(segs), current, nv)
		return
	}
	o.setAt(segs, nv)
}

// patchNode merges data into node in two passes. Pass one revisits every
// existing key of node that data also carries: container pairs merge
// recursively, every other pairing replays the set diff in place. Pass
// two assigns every key of data that node lacks; growing an array this
// way counts as insertion and emits an insert event after the new
// element's set events.
func (o *Observer) patchNode(path []string, node, data *Value) {
	switch node.kind {
	case Object:
		if data.kind != Object {
			return
		}
		for _, key := range node.keys {
			incoming, ok := data.field(key)
			if !ok {
				continue
			}
			o.patchChild(childPath(path, key), node, Segment{key: key}, node.fields[key], incoming)
		}
		for _, key := range data.keys {
			if _, ok := node.field(key); ok {
				continue
			}
			node.setField(key, data.fields[key])
			o.checkSet(childPath(path, key), data.fields[key], nil)
		}

	case Array:
		if data.kind != Array {
			return
		}
		shared := node.Len()
		if data.Len() < shared {
			shared = data.Len()
		}
		for i := 0; i < shared; i++ {
			seg := Segment{index: i, isIndex: true}
			o.patchChild(childPath(path, strconv.Itoa(i)), node, seg, node.at(i), data.at(i))
		}
		for i := node.Len(); i < data.Len(); i++ {
			el := data.at(i)
			node.elems = append(node.elems, el)
			o.checkSet(childPath(path, strconv.Itoa(i)), el, nil)
			o.dispatch(Change{
				Kind:  ChangeInsert,
				Path:  path,
				Value: el,
				Index: i,
				From:  -1, To: -1,
			})
		}
	}
}

// patchChild applies one pass-one merge step for an existing child.
func (o *Observer) patchChild(path []string, parent *Value, seg Segment, current, incoming *Value) {
	if current.IsContainer() && incoming.IsContainer() {
		o.patchNode(path, current, incoming)
		return
	}
	if !o.assign(parent, seg, incoming) {
		return
	}
	o.checkUnset(path, current, incoming)
	o.checkSet(path, incoming, current)
}

// assign writes a child into a container parent, reporting whether the
// segment was applicable to the parent's shape.
func (o *Observer) assign(parent *Value, seg Segment, v *Value) bool {
	switch parent.Kind() {
	case Object:
		parent.setField(seg.String(), v)
		return true
	case Array:
		i, ok := arrayIndex(seg)
		if !ok || i >= parent.Len() {
			return false
		}
		parent.setElem(i, v)
		return true
	default:
		return false
	}
}

package treewatch

import "strconv"

// Array mutation entry points. Every operation resolves its path to an
// array node, normalizes indices, splices, and emits a fully ordered
// event sequence: move events for every displaced element, then the
// structural insert/remove event, keeping numeric path segments valid
// after the shift.

// Insert inserts value into the array at path. The index is normalized:
// 0 prepends, -1 or anything at or past the length appends, an index
// below -1 counts back from the end (clamped to 0), and anything else
// inserts in place, shifting later elements right.
//
// One move event fires per shifted element, from the new end of the
// array backward to the insertion point, each reporting the element's
// pre-shift and post-shift index. Then an insert event fires for the new
// value at its final index, followed by recursive set events for the new
// value's own content. Inserting into a non-array is a no-op.
func (o *Observer) Insert(path string, value any, index int) {
	segs := o.resolve(path)
	arr := o.node(segs)
	if arr.Kind() != Array {
		return
	}

	length := arr.Len()
	var idx int
	switch {
	case index == 0:
		idx = 0
	case index == -1 || index >= length:
		idx = length
	case index < -1:
		idx = length + index + 1
		if idx < 0 {
			idx = 0
		}
	default:
		idx = index
	}

	nv := newValue(value)
	arr.insertElem(idx, nv)
	base := pathStrings(segs)

	for i := arr.Len() - 1; i > idx; i-- {
		o.dispatch(Change{
			Kind:  ChangeMove,
			Path:  base,
			Value: arr.at(i),
			Index: -1,
			From:  i - 1, To: i,
		})
	}
	o.dispatch(Change{
		Kind:  ChangeInsert,
		Path:  base,
		Value: nv,
		Index: idx,
		From:  -1, To: -1,
	})
	o.checkSet(childPath(base, strconv.Itoa(idx)), nv, nil)
}

// Move moves the array element at from to to. Both indices are
// normalized: negative counts back from the end, clamped to 0; anything
// at or past the length clamps to the last element. Equal indices after
// normalization are a no-op, as is a non-array or empty array target.
//
// One move event fires per element shifted to fill the gap, each
// announcing its own index change, followed by a final move event for
// the moved element itself.
func (o *Observer) Move(path string, from, to int) {
	segs := o.resolve(path)
	arr := o.node(segs)
	if arr.Kind() != Array || arr.Len() == 0 {
		return
	}

	length := arr.Len()
	from = clampIndex(from, length)
	to = clampIndex(to, length)
	if from == to {
		return
	}

	v := arr.at(from)
	arr.removeElem(from)
	arr.insertElem(to, v)
	base := pathStrings(segs)

	if to > from {
		// Elements between shifted one slot left.
		for i := from + 1; i <= to; i++ {
			o.dispatch(Change{
				Kind:  ChangeMove,
				Path:  base,
				Value: arr.at(i - 1),
				Index: -1,
				From:  i, To: i - 1,
			})
		}
	} else {
		// Elements between shifted one slot right.
		for i := from - 1; i >= to; i-- {
			o.dispatch(Change{
				Kind:  ChangeMove,
				Path:  base,
				Value: arr.at(i + 1),
				Index: -1,
				From:  i, To: i + 1,
			})
		}
	}
	o.dispatch(Change{
		Kind:  ChangeMove,
		Path:  base,
		Value: v,
		Index: -1,
		From:  from, To: to,
	})
}

// Remove removes the array element at the index. A negative index counts
// back from the end, so -1 removes the last element. An out-of-range
// index, empty array, or non-array target is a no-op.
//
// Recursive teardown events for the removed value fire first, then the
// element is spliced out, then one move event per following element,
// highest index first, then a remove event carrying the removed value at
// its original index.
func (o *Observer) Remove(path string, index int) {
	segs := o.resolve(path)
	arr := o.node(segs)
	if arr.Kind() != Array || arr.Len() == 0 {
		return
	}

	idx := index
	if idx < 0 {
		idx = arr.Len() + idx
	}
	if idx < 0 || idx >= arr.Len() {
		return
	}
	o.removeAt(arr, pathStrings(segs), idx)
}

// removeAt tears down and splices out one element, emitting the shared
// unset/move/remove sequence used by both Remove and array-parent Unset.
func (o *Observer) removeAt(arr *Value, arrPath []string, idx int) {
	v := arr.at(idx)
	oldLen := arr.Len()

	o.checkUnset(childPath(arrPath, strconv.Itoa(idx)), v, nil)
	arr.removeElem(idx)

	for i := oldLen - 1; i > idx; i-- {
		o.dispatch(Change{
			Kind:  ChangeMove,
			Path:  arrPath,
			Value: arr.at(i - 1),
			Index: -1,
			From:  i, To: i - 1,
		})
	}
	o.dispatch(Change{
		Kind:  ChangeRemove,
		Path:  arrPath,
		Value: v,
		Index: idx,
		From:  -1, To: -1,
	})
}

// clampIndex normalizes a possibly negative index against the array
// length: negative counts back from the end clamped to 0, and anything
// at or past the length clamps to the last element.
func clampIndex(i, length int) int {
	if i < 0 {
		i += length
		if i < 0 {
			return 0
		}
		return i
	}
	if i >= length {
		return length - 1
	}
	return i
}

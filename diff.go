package treewatch

import "strconv"

// checkSet emits the set events produced by newValue appearing at path in
// place of oldValue. Containers are recursed first, pairing each child of
// the new value with the old child of the same key, so the deepest
// changes are announced before their containing node's own event.
//
// The node's own set event is skipped only when both values are
// non-containers holding the same value. Container pairs always emit:
// the event signals that a set took place, not deep inequality.
func (o *Observer) checkSet(path []string, newValue, oldValue *Value) {
	switch newValue.Kind() {
	case Object:
		for _, key := range newValue.keys {
			o.checkSet(childPath(path, key), newValue.fields[key], lookup(oldValue, key))
		}
	case Array:
		for i, el := range newValue.elems {
			key := strconv.Itoa(i)
			o.checkSet(childPath(path, key), el, lookup(oldValue, key))
		}
	}

	if scalarsEqual(newValue, oldValue) {
		return
	}
	o.dispatch(Change{
		Kind:     ChangeSet,
		Path:     path,
		Value:    newValue,
		Previous: oldValue,
		Index:    -1, From: -1, To: -1,
	})
}

// checkUnset emits the teardown events produced by oldValue disappearing
// from path. Children are recursed first, pairing each old child with the
// new child of the same key. A node's own unset event fires only when the
// paired new value is absent, i.e. the key genuinely disappeared rather
// than changed shape.
func (o *Observer) checkUnset(path []string, oldValue, newValue *Value) {
	if oldValue == nil {
		return
	}

	switch oldValue.kind {
	case Object:
		for _, key := range oldValue.keys {
			o.checkUnset(childPath(path, key), oldValue.fields[key], lookup(newValue, key))
		}
	case Array:
		for i, el := range oldValue.elems {
			key := strconv.Itoa(i)
			o.checkUnset(childPath(path, key), el, lookup(newValue, key))
		}
	}

	if newValue != nil {
		return
	}
	o.dispatch(Change{
		Kind:  ChangeUnset,
		Path:  path,
		Value: oldValue,
		Index: -1, From: -1, To: -1,
	})
}

// lookup pairs a child across a diff: key access on objects, index
// access on arrays when the key is numeric, nil for everything else.
func lookup(v *Value, key string) *Value {
	switch v.Kind() {
	case Object:
		return v.fields[key]
	case Array:
		if i, ok := parseIndex(key); ok {
			return v.at(i)
		}
		return nil
	default:
		return nil
	}
}

// parseIndex parses a non-negative decimal array index.
func parseIndex(s string) (int, bool) {
	i, err := strconv.Atoi(s)
	if err != nil || i < 0 {
		return 0, false
	}
	return i, true
}

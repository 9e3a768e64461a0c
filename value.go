package treewatch

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

// Kind identifies the shape of a Value node.
type Kind uint8

const (
	// Invalid is the kind of a nil *Value, i.e. an absent node.
	Invalid Kind = iota

	// Null is an explicit JSON-style null.
	Null

	// Scalar is a leaf value: string, bool, number, or any other
	// non-container Go value.
	Scalar

	// Array is an ordered sequence of child nodes.
	Array

	// Object is a key-ordered map of child nodes.
	Object
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Scalar:
		return "scalar"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "invalid"
	}
}

// Value is one node of the container's data tree: a tagged variant over
// null, scalar, array, and object shapes. A nil *Value denotes an absent
// node ("undefined"), which is distinct from an explicit Null.
//
// Values returned by the container alias live internal state; callers
// must treat them as read-only.
type Value struct {
	kind   Kind
	scalar any
	elems  []*Value
	fields map[string]*Value
	keys   []string
}

// newValue converts a native Go value into a tree node. Maps with string
// keys become objects, slices and arrays become arrays, nil becomes Null,
// and everything else is kept as a scalar leaf. Map keys are sorted so
// that event sequences derived from Go maps are deterministic. An
// existing *Value is adopted as-is.
func newValue(data any) *Value {
	if data == nil {
		return &Value{kind: Null}
	}
	switch d := data.(type) {
	case *Value:
		if d == nil {
			return &Value{kind: Null}
		}
		return d
	case map[string]any:
		obj := newObject()
		keys := make([]string, 0, len(d))
		for k := range d {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			obj.setField(k, newValue(d[k]))
		}
		return obj
	case []any:
		arr := newArray(len(d))
		for _, el := range d {
			arr.elems = append(arr.elems, newValue(el))
		}
		return arr
	}

	// Fall back to reflection for other container shapes, such as
	// map[string]string or []int.
	rv := reflect.ValueOf(data)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return &Value{kind: Scalar, scalar: data}
		}
		obj := newObject()
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		for _, k := range keys {
			obj.setField(k, newValue(rv.MapIndex(reflect.ValueOf(k)).Interface()))
		}
		return obj
	case reflect.Slice, reflect.Array:
		arr := newArray(rv.Len())
		for i := 0; i < rv.Len(); i++ {
			arr.elems = append(arr.elems, newValue(rv.Index(i).Interface()))
		}
		return arr
	case reflect.Pointer:
		if rv.IsNil() {
			return &Value{kind: Null}
		}
		return newValue(rv.Elem().Interface())
	default:
		return &Value{kind: Scalar, scalar: data}
	}
}

func newObject() *Value {
	return &Value{kind: Object, fields: make(map[string]*Value)}
}

func newArray(capacity int) *Value {
	return &Value{kind: Array, elems: make([]*Value, 0, capacity)}
}

// Kind returns the node kind. It is nil-safe: a nil *Value is Invalid.
func (v *Value) Kind() Kind {
	if v == nil {
		return Invalid
	}
	return v.kind
}

// IsContainer reports whether the node is an array or an object.
func (v *Value) IsContainer() bool {
	return v != nil && (v.kind == Array || v.kind == Object)
}

// Len returns the number of elements of an array or keys of an object,
// and 0 for every other kind.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.kind {
	case Array:
		return len(v.elems)
	case Object:
		return len(v.keys)
	default:
		return 0
	}
}

// Keys returns a copy of an object's keys in their stored order, or nil
// for any other kind.
func (v *Value) Keys() []string {
	if v == nil || v.kind != Object {
		return nil
	}
	keys := make([]string, len(v.keys))
	copy(keys, v.keys)
	return keys
}

// Field returns the child under the key for objects, nil otherwise.
func (v *Value) Field(key string) *Value {
	if v == nil || v.kind != Object {
		return nil
	}
	return v.fields[key]
}

// Elem returns the element at the index for arrays, nil when out of
// bounds or for any other kind.
func (v *Value) Elem(i int) *Value {
	if v == nil || v.kind != Array || i < 0 || i >= len(v.elems) {
		return nil
	}
	return v.elems[i]
}

// Interface materializes the subtree into native Go values: nil for null,
// the scalar itself, []any for arrays, and map[string]any for objects.
// The result shares nothing with the container.
func (v *Value) Interface() any {
	if v == nil {
		return nil
	}
	switch v.kind {
	case Null:
		return nil
	case Scalar:
		return v.scalar
	case Array:
		out := make([]any, len(v.elems))
		for i, el := range v.elems {
			out[i] = el.Interface()
		}
		return out
	case Object:
		out := make(map[string]any, len(v.keys))
		for _, k := range v.keys {
			out[k] = v.fields[k].Interface()
		}
		return out
	default:
		return nil
	}
}

// String returns the scalar as a string, or a best-effort rendering of
// any other kind.
func (v *Value) String() string {
	if v == nil {
		return ""
	}
	switch v.kind {
	case Null:
		return "null"
	case Scalar:
		if s, ok := v.scalar.(string); ok {
			return s
		}
		return fmt.Sprint(v.scalar)
	default:
		return fmt.Sprint(v.Interface())
	}
}

// Float returns the scalar as float64, converting from any numeric type,
// and 0 for everything else.
func (v *Value) Float() float64 {
	if v == nil || v.kind != Scalar {
		return 0
	}
	switch n := v.scalar.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case string:
		f, _ := strconv.ParseFloat(n, 64)
		return f
	default:
		return 0
	}
}

// Int returns the scalar as int64, truncating floats, and 0 for
// everything else.
func (v *Value) Int() int64 {
	if v == nil || v.kind != Scalar {
		return 0
	}
	switch n := v.scalar.(type) {
	case int:
		return int64(n)
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	case uint:
		return int64(n)
	case uint8:
		return int64(n)
	case uint16:
		return int64(n)
	case uint32:
		return int64(n)
	case uint64:
		return int64(n)
	case float32:
		return int64(n)
	case float64:
		return int64(n)
	case string:
		i, _ := strconv.ParseInt(n, 10, 64)
		return i
	default:
		return 0
	}
}

// Bool returns the scalar as bool, and false for everything else.
func (v *Value) Bool() bool {
	if v == nil || v.kind != Scalar {
		return false
	}
	b, _ := v.scalar.(bool)
	return b
}

// MarshalJSON encodes the materialized subtree.
func (v *Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// field returns the object child and whether the key exists.
func (v *Value) field(key string) (*Value, bool) {
	if v == nil || v.kind != Object {
		return nil, false
	}
	child, ok := v.fields[key]
	return child, ok
}

// setField assigns an object key, keeping first-assignment key order.
func (v *Value) setField(key string, child *Value) {
	if _, ok := v.fields[key]; !ok {
		v.keys = append(v.keys, key)
	}
	v.fields[key] = child
}

// deleteField removes an object key and its order entry.
func (v *Value) deleteField(key string) {
	if _, ok := v.fields[key]; !ok {
		return
	}
	delete(v.fields, key)
	for i, k := range v.keys {
		if k == key {
			v.keys = append(v.keys[:i], v.keys[i+1:]...)
			break
		}
	}
}

// at returns the array element without bounds checking beyond nil-safety.
func (v *Value) at(i int) *Value {
	if v == nil || v.kind != Array || i < 0 || i >= len(v.elems) {
		return nil
	}
	return v.elems[i]
}

// setElem replaces the element at an existing index.
func (v *Value) setElem(i int, child *Value) {
	v.elems[i] = child
}

// insertElem splices a new element in at the index, shifting the rest
// right.
func (v *Value) insertElem(i int, child *Value) {
	v.elems = append(v.elems, nil)
	copy(v.elems[i+1:], v.elems[i:])
	v.elems[i] = child
}

// removeElem splices the element at the index out, shifting the rest
// left.
func (v *Value) removeElem(i int) {
	v.elems = append(v.elems[:i], v.elems[i+1:]...)
}

// extend appends Null placeholders until the array has length n.
func (v *Value) extend(n int) {
	for len(v.elems) < n {
		v.elems = append(v.elems, &Value{kind: Null})
	}
}

// scalarsEqual reports whether two non-container nodes hold the same
// value. Containers never compare equal here; the diff engine emits for
// container pairs unconditionally. Comparison is by value identity for
// comparable scalars and false otherwise.
func scalarsEqual(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.IsContainer() || b.IsContainer() {
		return false
	}
	if a.kind != b.kind {
		return false
	}
	if a.kind == Null {
		return true
	}
	return scalarEqual(a.scalar, b.scalar)
}

// scalarEqual compares two scalar payloads without panicking on
// uncomparable types.
func scalarEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}
	if !ta.Comparable() {
		return false
	}
	return a == b
}

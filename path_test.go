package treewatch

import "testing"

func TestResolve_Classification(t *testing.T) {
	o := New(map[string]any{
		"users": []any{
			map[string]any{"name": "ada"},
			map[string]any{"name": "grace"},
		},
		"config": map[string]any{"0": "zero"},
	})

	segs := o.resolve("users.1.name")
	if len(segs) != 3 {
		t.Fatalf("len(segs) = %d, want 3", len(segs))
	}
	if segs[0].IsIndex() || segs[0].String() != "users" {
		t.Errorf("segs[0] = %v, want key users", segs[0])
	}
	if !segs[1].IsIndex() || segs[1].String() != "1" {
		t.Errorf("segs[1] = %v, want index 1", segs[1])
	}
	if segs[2].IsIndex() {
		t.Errorf("segs[2] classified as index, want key")
	}

	// A numeric part under an object stays a string key.
	segs = o.resolve("config.0")
	if segs[1].IsIndex() {
		t.Error("numeric key under object classified as index")
	}
}

func TestResolve_MissingNodesDefaultToKeys(t *testing.T) {
	o := New(map[string]any{})

	segs := o.resolve("ghost.3.name")
	for i, s := range segs {
		if s.IsIndex() {
			t.Errorf("segs[%d] classified as index under missing node", i)
		}
	}
}

func TestResolve_CacheIsStaleByDesign(t *testing.T) {
	o := New(map[string]any{"data": []any{"a", "b"}})

	// First resolution classifies "1" as an array index.
	if segs := o.resolve("data.1"); !segs[1].IsIndex() {
		t.Fatal("expected index classification against array shape")
	}

	// Reshape: data becomes an object. The cached resolution is reused
	// verbatim, still classified as an index.
	o.Set("data", map[string]any{"1": "one"})
	if segs := o.resolve("data.1"); !segs[1].IsIndex() {
		t.Error("cached resolution should be reused after shape change")
	}

	// Reset clears the cache; resolution now sees the object shape.
	o.Reset()
	o.Set("data", map[string]any{"1": "one"})
	if segs := o.resolve("data.1"); segs[1].IsIndex() {
		t.Error("resolution after Reset should reclassify against new shape")
	}
}

func TestResolve_RootArrayIndex(t *testing.T) {
	o := New([]any{"a", "b", "c"})

	segs := o.resolve("2")
	if len(segs) != 1 || !segs[0].IsIndex() {
		t.Fatalf("resolve(2) = %v, want one index segment", segs)
	}
	if got := o.Get("2").String(); got != "c" {
		t.Errorf("Get(2) = %q, want c", got)
	}
}

func TestResolve_EmptyPath(t *testing.T) {
	o := New(map[string]any{"a": 1})
	if segs := o.resolve(""); segs != nil {
		t.Errorf("resolve(\"\") = %v, want nil", segs)
	}
	if o.Get("") != o.Root() {
		t.Error("Get(\"\") should return the root")
	}
}

package treewatch

import (
	"reflect"
	"testing"
)

func TestInsert_MiddleReindexing(t *testing.T) {
	o := New(map[string]any{"list": []any{"a", "b", "c"}})
	events := record(t, o, "move", "insert", "set")

	o.Insert("list", "x", 1)

	want := []any{"a", "x", "b", "c"}
	if got := o.Get("list").Interface(); !reflect.DeepEqual(got, want) {
		t.Errorf("list = %v, want %v", got, want)
	}

	// Displaced elements move from the new end backward, then the new
	// element's insert, then its set events.
	wantEvents := []recordedEvent{
		{name: "move", kind: ChangeMove, path: "list", value: "c", index: -1, from: 2, to: 3},
		{name: "move", kind: ChangeMove, path: "list", value: "b", index: -1, from: 1, to: 2},
		{name: "insert", kind: ChangeInsert, path: "list", value: "x", index: 1, from: -1, to: -1},
		{name: "set", kind: ChangeSet, path: "list.1", value: "x", index: -1, from: -1, to: -1},
	}
	if !reflect.DeepEqual(*events, wantEvents) {
		t.Errorf("events = %+v, want %+v", *events, wantEvents)
	}
}

func TestInsert_IndexNormalization(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  []any
	}{
		{"zero prepends", 0, []any{"x", "a", "b", "c"}},
		{"minus one appends", -1, []any{"a", "b", "c", "x"}},
		{"past end appends", 99, []any{"a", "b", "c", "x"}},
		{"at length appends", 3, []any{"a", "b", "c", "x"}},
		{"minus two before last", -2, []any{"a", "b", "x", "c"}},
		{"deep negative clamps to front", -99, []any{"x", "a", "b", "c"}},
		{"middle", 2, []any{"a", "b", "x", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := New(map[string]any{"list": []any{"a", "b", "c"}})
			o.Insert("list", "x", tt.index)
			if got := o.Get("list").Interface(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Insert(list, x, %d) = %v, want %v", tt.index, got, tt.want)
			}
		})
	}
}

func TestInsert_ContainerValueEmitsDeepSets(t *testing.T) {
	o := New(map[string]any{"list": []any{}})
	events := record(t, o, "set", "insert")

	o.Insert("list", map[string]any{"name": "earth"}, -1)

	want := []string{"insert list", "set list.0.name", "set list.0"}
	if got := eventSummary(*events); !reflect.DeepEqual(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
}

func TestInsert_NonArrayNoOp(t *testing.T) {
	o := New(map[string]any{"obj": map[string]any{}, "n": 1})
	events := record(t, o, "insert", "move", "set")

	o.Insert("obj", "x", 0)
	o.Insert("n", "x", 0)
	o.Insert("missing", "x", 0)

	if len(*events) != 0 {
		t.Errorf("no-op inserts fired events: %v", eventSummary(*events))
	}
}

func TestRemove_Reindexing(t *testing.T) {
	o := New(map[string]any{"list": []any{"a", "b", "c"}})
	events := record(t, o, "unset", "move", "remove")

	o.Remove("list", 0)

	want := []any{"b", "c"}
	if got := o.Get("list").Interface(); !reflect.DeepEqual(got, want) {
		t.Errorf("list = %v, want %v", got, want)
	}

	// Teardown first, then moves highest index first, then the remove
	// event at the original index.
	wantEvents := []recordedEvent{
		{name: "unset", kind: ChangeUnset, path: "list.0", value: "a", index: -1, from: -1, to: -1},
		{name: "move", kind: ChangeMove, path: "list", value: "c", index: -1, from: 2, to: 1},
		{name: "move", kind: ChangeMove, path: "list", value: "b", index: -1, from: 1, to: 0},
		{name: "remove", kind: ChangeRemove, path: "list", value: "a", index: 0, from: -1, to: -1},
	}
	if !reflect.DeepEqual(*events, wantEvents) {
		t.Errorf("events = %+v, want %+v", *events, wantEvents)
	}
}

func TestRemove_LastElementNoMoves(t *testing.T) {
	o := New(map[string]any{"list": []any{"a", "b"}})
	events := record(t, o, "move", "remove")

	o.Remove("list", -1)

	want := []recordedEvent{
		{name: "remove", kind: ChangeRemove, path: "list", value: "b", index: 1, from: -1, to: -1},
	}
	if !reflect.DeepEqual(*events, want) {
		t.Errorf("events = %+v, want %+v", *events, want)
	}
}

func TestRemove_ContainerTeardown(t *testing.T) {
	o := New(map[string]any{"list": []any{
		map[string]any{"name": "earth", "moons": []any{"luna"}},
	}})
	events := record(t, o, "unset", "remove")

	o.Remove("list", 0)

	want := []string{
		"unset list.0.moons.0",
		"unset list.0.moons",
		"unset list.0.name",
		"unset list.0",
		"remove list",
	}
	if got := eventSummary(*events); !reflect.DeepEqual(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
}

func TestRemove_OutOfRangeNoOp(t *testing.T) {
	o := New(map[string]any{"list": []any{"a"}, "empty": []any{}})
	events := record(t, o, "unset", "move", "remove")

	o.Remove("list", 1)
	o.Remove("list", -2)
	o.Remove("empty", 0)
	o.Remove("missing", 0)

	if len(*events) != 0 {
		t.Errorf("no-op removes fired events: %v", eventSummary(*events))
	}
	if o.Len("list") != 1 {
		t.Error("list mutated by out-of-range remove")
	}
}

func TestMove_Forward(t *testing.T) {
	o := New(map[string]any{"list": []any{"a", "b", "c", "d"}})
	events := record(t, o, "move")

	o.Move("list", 0, 2)

	want := []any{"b", "c", "a", "d"}
	if got := o.Get("list").Interface(); !reflect.DeepEqual(got, want) {
		t.Errorf("list = %v, want %v", got, want)
	}

	// Gap-fill moves first, then the moved element's own event.
	wantEvents := []recordedEvent{
		{name: "move", kind: ChangeMove, path: "list", value: "b", index: -1, from: 1, to: 0},
		{name: "move", kind: ChangeMove, path: "list", value: "c", index: -1, from: 2, to: 1},
		{name: "move", kind: ChangeMove, path: "list", value: "a", index: -1, from: 0, to: 2},
	}
	if !reflect.DeepEqual(*events, wantEvents) {
		t.Errorf("events = %+v, want %+v", *events, wantEvents)
	}
}

func TestMove_Backward(t *testing.T) {
	o := New(map[string]any{"list": []any{"a", "b", "c", "d"}})
	events := record(t, o, "move")

	o.Move("list", 3, 1)

	want := []any{"a", "d", "b", "c"}
	if got := o.Get("list").Interface(); !reflect.DeepEqual(got, want) {
		t.Errorf("list = %v, want %v", got, want)
	}

	wantEvents := []recordedEvent{
		{name: "move", kind: ChangeMove, path: "list", value: "c", index: -1, from: 2, to: 3},
		{name: "move", kind: ChangeMove, path: "list", value: "b", index: -1, from: 1, to: 2},
		{name: "move", kind: ChangeMove, path: "list", value: "d", index: -1, from: 3, to: 1},
	}
	if !reflect.DeepEqual(*events, wantEvents) {
		t.Errorf("events = %+v, want %+v", *events, wantEvents)
	}
}

func TestMove_Normalization(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []any
	}{
		{"negative from counts back", -1, 0, []any{"c", "a", "b"}},
		{"past-end to clamps to last", 0, 99, []any{"b", "c", "a"}},
		{"deep negative clamps to zero", 2, -99, []any{"c", "a", "b"}},
		{"equal after clamp is no-op", -1, 2, []any{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := New(map[string]any{"list": []any{"a", "b", "c"}})
			o.Move("list", tt.from, tt.to)
			if got := o.Get("list").Interface(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Move(list, %d, %d) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestMove_SymmetryRestoresOrder(t *testing.T) {
	o := New(map[string]any{"list": []any{"a", "b", "c", "d"}})

	o.Move("list", 1, 3)
	o.Move("list", 3, 1)

	want := []any{"a", "b", "c", "d"}
	if got := o.Get("list").Interface(); !reflect.DeepEqual(got, want) {
		t.Errorf("list = %v after move round-trip, want %v", got, want)
	}
}

func TestSet_ArrayAutoExtension(t *testing.T) {
	o := New(map[string]any{"list": []any{"a"}})
	events := record(t, o, "insert", "set")

	o.Set("list.3", "x")

	want := []any{"a", nil, nil, "x"}
	if got := o.Get("list").Interface(); !reflect.DeepEqual(got, want) {
		t.Errorf("list = %v, want %v", got, want)
	}

	// One insert per created slot, oldest index first, then the set.
	wantEvents := []recordedEvent{
		{name: "insert", kind: ChangeInsert, path: "list", value: nil, index: 1, from: -1, to: -1},
		{name: "insert", kind: ChangeInsert, path: "list", value: nil, index: 2, from: -1, to: -1},
		{name: "insert", kind: ChangeInsert, path: "list", value: "x", index: 3, from: -1, to: -1},
		{name: "set", kind: ChangeSet, path: "list.3", value: "x", index: -1, from: -1, to: -1},
	}
	if !reflect.DeepEqual(*events, wantEvents) {
		t.Errorf("events = %+v, want %+v", *events, wantEvents)
	}
}

func TestSet_ArrayIndexReplace(t *testing.T) {
	o := New(map[string]any{"list": []any{"a", "b"}})
	events := record(t, o, "set", "unset", "insert")

	o.Set("list.1", "z")

	want := []recordedEvent{
		{name: "set", kind: ChangeSet, path: "list.1", value: "z", prev: "b", index: -1, from: -1, to: -1},
	}
	if !reflect.DeepEqual(*events, want) {
		t.Errorf("events = %+v, want %+v", *events, want)
	}
}

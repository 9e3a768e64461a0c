package treewatch

import (
	"errors"
	"reflect"
	"testing"
)

func TestFromYAML(t *testing.T) {
	doc := []byte("name: earth\nmoons:\n  - name: luna\n")

	o, err := FromYAML(doc)
	if err != nil {
		t.Fatal(err)
	}
	if got := o.Get("name").String(); got != "earth" {
		t.Errorf("name = %q, want earth", got)
	}
	if got := o.Get("moons.0.name").String(); got != "luna" {
		t.Errorf("moons.0.name = %q, want luna", got)
	}
}

func TestFromYAML_SequenceRoot(t *testing.T) {
	o, err := FromYAML([]byte("- a\n- b\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := []any{"a", "b"}
	if got := o.Get("").Interface(); !reflect.DeepEqual(got, want) {
		t.Errorf("root = %v, want %v", got, want)
	}
}

func TestFromYAML_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{"scalar root", "42\n", ErrNotContainer},
		{"malformed", "a: [unclosed\n", ErrInvalidDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromYAML([]byte(tt.doc)); !errors.Is(err, tt.wantErr) {
				t.Errorf("FromYAML() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadYAML_EmitsFullDiff(t *testing.T) {
	o := New(map[string]any{"a": "x"})
	events := record(t, o, "set", "unset")

	if err := o.LoadYAML([]byte("b: y\n")); err != nil {
		t.Fatal(err)
	}

	want := []string{"unset a", "set b", "set "}
	if got := eventSummary(*events); !reflect.DeepEqual(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
}

func TestMarshalYAML_RoundTrip(t *testing.T) {
	o := New(map[string]any{"name": "earth", "tags": []any{"habitable"}})

	out, err := o.MarshalYAML()
	if err != nil {
		t.Fatal(err)
	}
	back, err := FromYAML(out)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(back.Get("").Interface(), o.Get("").Interface()) {
		t.Errorf("round trip = %v, want %v", back.Get("").Interface(), o.Get("").Interface())
	}
}

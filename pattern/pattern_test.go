package pattern

import (
	"reflect"
	"testing"
)

func TestSegments(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a.b.c", []string{"a", "b", "c"}},
		{"users.3.name", []string{"users", "3", "name"}},
		{"*.population", []string{"*", "population"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := Segments(tt.path)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Segments(%q) = %v, want %v", tt.path, got, tt.want)
			}
			if Join(got) != tt.path {
				t.Errorf("Join(Segments(%q)) = %q, want %q", tt.path, Join(got), tt.path)
			}
		})
	}
}

func TestSplitKind(t *testing.T) {
	tests := []struct {
		name     string
		wantPath string
		wantKind string
	}{
		{"users.*.name:set", "users.*.name", "set"},
		{"earth.population:unset", "earth.population", "unset"},
		{":set", "", "set"},
		{"users.*.name", "users.*.name", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, kind := SplitKind(tt.name)
			if path != tt.wantPath || kind != tt.wantKind {
				t.Errorf("SplitKind(%q) = (%q, %q), want (%q, %q)",
					tt.name, path, kind, tt.wantPath, tt.wantKind)
			}
		})
	}
}

func TestQualified(t *testing.T) {
	if got := Qualified("a.*", "set"); got != "a.*:set" {
		t.Errorf("Qualified = %q, want %q", got, "a.*:set")
	}
	if got := Qualified("", "unset"); got != ":unset" {
		t.Errorf("Qualified = %q, want %q", got, ":unset")
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		path string
		pat  string
		want bool
	}{
		{"earth.population", "earth.population", true},
		{"earth.population", "*.population", true},
		{"earth.population", "earth.*", true},
		{"earth.population", "*.*", true},
		{"earth.population", "mars.population", false},
		{"earth.population", "earth", false},
		{"earth.population", "earth.population.count", false},
		{"", "", true},
		{"a", "*", true},
	}

	for _, tt := range tests {
		t.Run(tt.path+"/"+tt.pat, func(t *testing.T) {
			if got := Matches(tt.path, tt.pat); got != tt.want {
				t.Errorf("Matches(%q, %q) = %v, want %v", tt.path, tt.pat, got, tt.want)
			}
		})
	}
}

func TestIsWildcard(t *testing.T) {
	if !IsWildcard("a.*.c") {
		t.Error("IsWildcard(a.*.c) = false, want true")
	}
	if IsWildcard("a.b.c") {
		t.Error("IsWildcard(a.b.c) = true, want false")
	}
}

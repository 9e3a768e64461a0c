package treewatch

import "github.com/goccy/go-yaml"

// FromYAML creates an Observer from a YAML document. The document's
// top-level value must be a mapping or a sequence.
func FromYAML(data []byte) (*Observer, error) {
	var root any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, ErrInvalidDocument
	}
	v := newValue(root)
	if !v.IsContainer() {
		return nil, ErrNotContainer
	}
	return New(v), nil
}

// LoadYAML replaces the container's root with the parsed document,
// emitting the full recursive diff between the old and new trees, as if
// by Set with the empty path.
func (o *Observer) LoadYAML(data []byte) error {
	var root any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return ErrInvalidDocument
	}
	v := newValue(root)
	if !v.IsContainer() {
		return ErrNotContainer
	}
	o.Set("", v)
	return nil
}

// MarshalYAML encodes the container's current root as a YAML document.
func (o *Observer) MarshalYAML() ([]byte, error) {
	return yaml.Marshal(o.root.Interface())
}

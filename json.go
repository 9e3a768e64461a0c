package treewatch

import (
	"encoding/json"
	"errors"

	"github.com/tidwall/gjson"
)

// Sentinel errors for the ingestion surfaces.
var (
	// ErrInvalidDocument is returned when a document cannot be parsed.
	ErrInvalidDocument = errors.New("treewatch: invalid document")

	// ErrNotContainer is returned when a document's top-level value is
	// not an object or an array.
	ErrNotContainer = errors.New("treewatch: root must be an object or array")
)

// FromJSON creates an Observer from a JSON document. The document's
// top-level value must be an object or an array.
func FromJSON(data []byte) (*Observer, error) {
	root, err := parseJSON(data)
	if err != nil {
		return nil, err
	}
	return New(root), nil
}

// LoadJSON replaces the container's root with the parsed document,
// emitting the full recursive diff between the old and new trees, as if
// by Set with the empty path.
func (o *Observer) LoadJSON(data []byte) error {
	root, err := parseJSON(data)
	if err != nil {
		return err
	}
	o.Set("", root)
	return nil
}

// parseJSON validates and materializes a JSON document into native Go
// values suitable for the value tree.
func parseJSON(data []byte) (any, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidDocument
	}
	result := gjson.ParseBytes(data)
	if !result.IsObject() && !result.IsArray() {
		return nil, ErrNotContainer
	}
	return result.Value(), nil
}

// MarshalJSON encodes the container's current root.
func (o *Observer) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.root)
}

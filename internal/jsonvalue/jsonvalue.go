// Package jsonvalue implements canonical-form equality for JSON values as
// used by storage.Value. Two values are considered equal if they decode to
// the same dynamic tree after a JSON round-trip, so a numerically equal but
// differently typed encoding (1 vs 1.0) compares equal.
package jsonvalue

import (
	"encoding/json"
	"reflect"
)

// Equal reports whether a and b marshal and then unmarshal to the same
// dynamic JSON tree. Marshal errors are treated as inequality.
func Equal(a, b any) bool {
	ca, err := canonicalize(a)
	if err != nil {
		return false
	}

	cb, err := canonicalize(b)
	if err != nil {
		return false
	}

	return reflect.DeepEqual(ca, cb)
}

// canonicalize marshals v to JSON and unmarshals it back into a dynamic
// any tree (map[string]any, []any, float64, string, bool, nil), which is
// the canonical shape this package compares against.
func canonicalize(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}

	return out, nil
}

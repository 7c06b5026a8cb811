// Package storage implements the open, schema-flexible claim store shared
// by every JOSE/JWT/DPoP container in this module: a map from string keys
// to arbitrary JSON values, with generic typed accessors that apply the
// JOSE-specific encoding rules (base64url bytes, NumericDate timestamps,
// BCP-47 locales, IANA time zones, lowercase UUIDs) on top of the plain
// map when a field declares them.
package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/halimath/jwx/internal/encoding"
	"github.com/halimath/jwx/internal/jsonvalue"
)

// ErrMalformedInput is returned by Decode when the given bytes are neither
// a JSON object nor a base64url string that decodes to one.
var ErrMalformedInput = errors.New("malformed input")

// Value is an open map from string key to any JSON-representable value. A
// present key whose value is JSON null is distinguishable from an absent
// key: Get reports presence separately from the value itself.
type Value map[string]any

// New returns an empty, ready to use Value.
func New() Value {
	return make(Value)
}

// Get returns the raw value stored under key and whether key is present.
// A present key with a JSON null value returns (nil, true).
func (v Value) Get(key string) (any, bool) {
	val, ok := v[key]
	return val, ok
}

// Set stores value under key, overwriting any previous value. Unlike
// TypedSet, Set performs no JOSE encoding and does not apply the
// empty-list/absence removal rules; use Remove to delete a key.
func (v Value) Set(key string, value any) {
	v[key] = value
}

// Remove deletes key from v. Removing an absent key is a no-op.
func (v Value) Remove(key string) {
	delete(v, key)
}

// Contains reports whether key is present in v, regardless of its value.
func (v Value) Contains(key string) bool {
	_, ok := v[key]
	return ok
}

// Keys returns the keys present in v in no particular order.
func (v Value) Keys() []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	return keys
}

// Merge returns a new Value containing every key from v and other. Keys
// present in both are resolved by invoking combine with v's and other's
// raw values, in that order; its result is stored for that key.
func (v Value) Merge(other Value, combine func(a, b any) any) Value {
	out := make(Value, len(v)+len(other))
	for k, val := range v {
		out[k] = val
	}
	for k, val := range other {
		if existing, ok := out[k]; ok {
			out[k] = combine(existing, val)
		} else {
			out[k] = val
		}
	}
	return out
}

// Filter returns a new Value retaining only the keys for which predicate
// returns true.
func (v Value) Filter(predicate func(key string, value any) bool) Value {
	out := make(Value)
	for k, val := range v {
		if predicate(k, val) {
			out[k] = val
		}
	}
	return out
}

// Equal reports whether v and other are canonical-form equal: both encode
// through a JSON round-trip to the same dynamic tree, so a claim stored as
// an integer and the numerically equal claim stored as a float compare
// equal.
func (v Value) Equal(other Value) bool {
	return jsonvalue.Equal(map[string]any(v), map[string]any(other))
}

// Encode always serializes v as a JSON object. Callers needing a compact,
// base64url representation must encode the returned bytes themselves via
// the internal/encoding package.
func (v Value) Encode() ([]byte, error) {
	return json.Marshal(map[string]any(v))
}

// Decode accepts two wire forms indistinguishably: a JSON object whose
// fields populate the returned Value directly, or a base64url-encoded
// string (optionally JSON-quoted) that decodes to the JSON object form.
func Decode(data []byte) (Value, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedInput)
	}

	if trimmed[0] == '{' {
		var m map[string]any
		if err := json.Unmarshal(trimmed, &m); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMalformedInput, err)
		}
		return Value(m), nil
	}

	encoded := string(trimmed)
	if trimmed[0] == '"' {
		if err := json.Unmarshal(trimmed, &encoded); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMalformedInput, err)
		}
	}

	raw, err := encoding.Decode(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedInput, err)
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedInput, err)
	}
	return Value(m), nil
}

// localizedSeparator delimits a localizable claim's base key from its
// BCP-47 locale tag, e.g. "lbl#de-DE".
const localizedSeparator = "#"

// localizedCandidates returns, for the given base key, the locale tags of
// every key of the form "base#<locale>" present in v.
func localizedCandidates(v Value, base string) map[string]string {
	prefix := base + localizedSeparator
	out := make(map[string]string)
	for k := range v {
		if strings.HasPrefix(k, prefix) {
			out[strings.TrimPrefix(k, prefix)] = k
		}
	}
	return out
}

// isEmptyList reports whether value is a slice or array of length zero, the
// case that TypedSet treats as key removal.
func isEmptyList(value any) bool {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Len() == 0
	default:
		return false
	}
}

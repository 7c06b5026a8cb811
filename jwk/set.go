package jwk

import (
	"encoding/json"
	"errors"

	"github.com/halimath/jwx/jwa"
)

// ErrKeyNotFound is returned by Match when no key in a Set supports the
// requested algorithm.
var ErrKeyNotFound = errors.New("jwk: no matching key found")

// KeyFilter defines a function type to use to filter Keys in a Set.
type KeyFilter func(k Key) bool

// WithID create a KeyFilter that filters Keys by ID.
func WithID(kid string) KeyFilter {
	return func(k Key) bool {
		return k.ID() == kid
	}
}

// Set implements a set of keys.
type Set []Key

// Has checks whether s contains at least one Key matching f.
func (s Set) Has(f KeyFilter) bool {
	for _, k := range s {
		if f(k) {
			return true
		}
	}
	return false
}

// First returns the first key in s which matches f or
// nil, if no key matches f.
func (s Set) First(f KeyFilter) Key {
	for _, k := range s {
		if f(k) {
			return k
		}
	}
	return nil
}

// Match selects the key from s that should be used to sign or verify with
// alg. Candidates are first narrowed to those whose Supports(alg) is true;
// among those, a key whose ID matches kid wins, otherwise the first
// compatible key in s is returned. kid is ignored when empty. ErrKeyNotFound
// is returned if no key in s supports alg.
func (s Set) Match(alg jwa.ID, kid string) (Key, error) {
	var first Key

	for _, k := range s {
		if !k.Supports(alg) {
			continue
		}
		if first == nil {
			first = k
		}
		if kid != "" && k.ID() == kid {
			return k, nil
		}
	}

	if first != nil {
		return first, nil
	}

	return nil, ErrKeyNotFound
}

const (
	ParamKey = "keys"
)

func (s Set) MarshalJSON() ([]byte, error) {
	type wrapper struct {
		Keys []Key `json:"keys"`
	}

	w := wrapper{Keys: s}

	return json.Marshal(w)
}

func (s *Set) UnmarshalJSON(data []byte) error {
	type setWrapper struct {
		Keys []json.RawMessage `json:"keys"`
	}

	var w setWrapper
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*s = make(Set, len(w.Keys))
	var err error

	for i, rm := range w.Keys {
		(*s)[i], err = UnmarshalKey(rm)
		if err != nil {
			return err
		}
	}

	return nil
}

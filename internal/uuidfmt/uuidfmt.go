// Package uuidfmt normalizes UUID values to the lowercase, hyphenated form
// JOSE claims expect, wrapping github.com/google/uuid.
package uuidfmt

import "github.com/google/uuid"

// Format parses s as a UUID (accepting any of uuid.Parse's supported
// representations) and returns its canonical lowercase, hyphenated string
// form. ok is false if s is not a valid UUID.
func Format(s string) (canonical string, ok bool) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", false
	}
	return id.String(), true
}

// New generates a fresh random (version 4) UUID in canonical form.
func New() string {
	return uuid.NewString()
}

package uuidfmt

import "testing"

func TestFormat(t *testing.T) {
	got, ok := Format("E1A3B9B2-1234-4A2B-9C3D-0123456789AB")
	if !ok {
		t.Fatal("expected a valid UUID to format")
	}
	if got != "e1a3b9b2-1234-4a2b-9c3d-0123456789ab" {
		t.Errorf("got %q", got)
	}
}

func TestFormat_invalid(t *testing.T) {
	if _, ok := Format("not-a-uuid"); ok {
		t.Error("expected an invalid UUID to be rejected")
	}
}

func TestNew(t *testing.T) {
	a := New()
	b := New()

	if a == b {
		t.Error("expected two generated UUIDs to differ")
	}
	if _, ok := Format(a); !ok {
		t.Errorf("generated UUID %q does not parse as one", a)
	}
}

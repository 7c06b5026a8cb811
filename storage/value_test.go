package storage

import (
	"testing"

	"github.com/go-test/deep"
)

func TestGetSet(t *testing.T) {
	v := New()
	v.Set("foo", "bar")

	got, ok := v.Get("foo")
	if !ok {
		t.Fatal("expected foo to be present")
	}
	if got != "bar" {
		t.Errorf("unexpected value: %v", got)
	}
}

func TestGetAbsentVsNull(t *testing.T) {
	v := New()
	v.Set("present", nil)

	if _, ok := v.Get("absent"); ok {
		t.Error("expected absent key to report not present")
	}

	val, ok := v.Get("present")
	if !ok {
		t.Error("expected present-with-null key to report present")
	}
	if val != nil {
		t.Errorf("expected nil value, got %v", val)
	}
}

func TestRemove(t *testing.T) {
	v := New()
	v.Set("foo", "bar")
	v.Remove("foo")

	if v.Contains("foo") {
		t.Error("expected foo to be removed")
	}
}

func TestContainsKeys(t *testing.T) {
	v := New()
	v.Set("a", 1)
	v.Set("b", 2)

	if !v.Contains("a") || !v.Contains("b") {
		t.Error("expected both keys present")
	}

	keys := v.Keys()
	if len(keys) != 2 {
		t.Errorf("unexpected keys: %v", keys)
	}
}

func TestMerge(t *testing.T) {
	a := New()
	a.Set("x", 1)
	a.Set("shared", "from-a")

	b := New()
	b.Set("y", 2)
	b.Set("shared", "from-b")

	merged := a.Merge(b, func(x, y any) any {
		return y
	})

	if got, _ := merged.Get("x"); got != 1 {
		t.Errorf("unexpected x: %v", got)
	}
	if got, _ := merged.Get("y"); got != 2 {
		t.Errorf("unexpected y: %v", got)
	}
	if got, _ := merged.Get("shared"); got != "from-b" {
		t.Errorf("unexpected shared: %v", got)
	}
}

func TestFilter(t *testing.T) {
	v := New()
	v.Set("keep", 1)
	v.Set("drop", 2)

	filtered := v.Filter(func(key string, value any) bool {
		return key == "keep"
	})

	if !filtered.Contains("keep") || filtered.Contains("drop") {
		t.Errorf("unexpected filtered value: %v", filtered)
	}
}

func TestEqualCanonicalForm(t *testing.T) {
	a := New()
	a.Set("n", 1)

	b := New()
	b.Set("n", 1.0)

	if !a.Equal(b) {
		t.Error("expected canonical-form equal values to compare equal")
	}

	c := New()
	c.Set("n", 2)

	if a.Equal(c) {
		t.Error("expected differing values to compare unequal")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	v := New()
	v.Set("iss", "test")
	v.Set("count", 3)

	encoded, err := v.Encode()
	if err != nil {
		t.Fatal(err)
	}

	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatal(err)
	}

	if !v.Equal(decoded) {
		if diff := deep.Equal(v, decoded); diff != nil {
			t.Error(diff)
		}
	}
}

func TestDecodeBase64URLForm(t *testing.T) {
	// {"sub":"john.doe"} base64url encoded, no padding.
	const encoded = "eyJzdWIiOiJqb2huLmRvZSJ9"

	v, err := Decode([]byte(encoded))
	if err != nil {
		t.Fatal(err)
	}

	sub, ok := v.Get("sub")
	if !ok || sub != "john.doe" {
		t.Errorf("unexpected sub: %v (ok=%v)", sub, ok)
	}
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode([]byte("not valid at all !!!"))
	if err == nil {
		t.Fatal("expected an error for malformed input")
	}
}

package storage

import (
	"testing"
	"time"
)

func TestTypedGetSetBytes(t *testing.T) {
	v := New()
	want := Bytes("hello, world")
	TypedSet(v, "b", &want)

	raw, _ := v.Get("b")
	if raw != "aGVsbG8sIHdvcmxk" {
		t.Errorf("expected base64url encoding, got %v", raw)
	}

	got, ok := TypedGet[Bytes](v, "b")
	if !ok {
		t.Fatal("expected ok")
	}
	if string(got) != string(want) {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestTypedGetSetNumericDate(t *testing.T) {
	v := New()
	ts := time.Unix(1562262618, 0).UTC()
	want := NumericDate(ts)
	TypedSet(v, "iat", &want)

	raw, _ := v.Get("iat")
	if raw != int64(1562262618) {
		t.Errorf("expected integer seconds, got %v (%T)", raw, raw)
	}

	got, ok := TypedGet[NumericDate](v, "iat")
	if !ok {
		t.Fatal("expected ok")
	}
	if !got.Time().Equal(ts) {
		t.Errorf("got %v want %v", got.Time(), ts)
	}
}

func TestTypedGetNumericDateFromFloat(t *testing.T) {
	v := New()
	v.Set("iat", float64(1562262618))

	got, ok := TypedGet[NumericDate](v, "iat")
	if !ok {
		t.Fatal("expected ok")
	}
	if got.Time().Unix() != 1562262618 {
		t.Errorf("unexpected time: %v", got.Time())
	}
}

func TestTypedGetSetLocale(t *testing.T) {
	v := New()
	want := Locale("en_US")
	TypedSet(v, "locale", &want)

	got, ok := TypedGet[Locale](v, "locale")
	if !ok {
		t.Fatal("expected ok")
	}
	if got != "en-US" {
		t.Errorf("expected canonical BCP-47 tag, got %q", got)
	}
}

func TestTypedGetSetTimeZone(t *testing.T) {
	v := New()
	want := TimeZone("Europe/Berlin")
	TypedSet(v, "tz", &want)

	got, ok := TypedGet[TimeZone](v, "tz")
	if !ok {
		t.Fatal("expected ok")
	}
	if got != "Europe/Berlin" {
		t.Errorf("unexpected tz: %q", got)
	}
}

func TestTypedGetSetUUID(t *testing.T) {
	v := New()
	want := UUID("E51F6790-E641-4C3E-9861-58B3B7F1E123")
	TypedSet(v, "id", &want)

	raw, _ := v.Get("id")
	if raw != "e51f6790-e641-4c3e-9861-58b3b7f1e123" {
		t.Errorf("expected lowercase canonical form, got %v", raw)
	}

	got, ok := TypedGet[UUID](v, "id")
	if !ok {
		t.Fatal("expected ok")
	}
	if got != "e51f6790-e641-4c3e-9861-58b3b7f1e123" {
		t.Errorf("unexpected uuid: %q", got)
	}
}

func TestTypedSetNilRemovesKey(t *testing.T) {
	v := New()
	v.Set("x", "present")

	var nilBytes *Bytes
	TypedSet(v, "x", nilBytes)

	if v.Contains("x") {
		t.Error("expected key to be removed")
	}
}

func TestTypedSetEmptyListRemovesKey(t *testing.T) {
	v := New()
	v.Set("aud", []string{"a"})

	empty := []string{}
	TypedSet(v, "aud", &empty)

	if v.Contains("aud") {
		t.Error("expected key to be removed by empty list")
	}
}

func TestTypedGetGenericFallback(t *testing.T) {
	v := New()
	v.Set("n", float64(42))

	got, ok := TypedGet[int](v, "n")
	if !ok {
		t.Fatal("expected ok via generic fallback")
	}
	if got != 42 {
		t.Errorf("unexpected value: %d", got)
	}
}

func TestTypedGetAbsentNeverPanics(t *testing.T) {
	v := New()

	got, ok := TypedGet[string](v, "missing")
	if ok || got != "" {
		t.Errorf("expected zero value and false, got %q, %v", got, ok)
	}
}

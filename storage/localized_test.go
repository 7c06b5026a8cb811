package storage

import "testing"

func TestGetLocalizedFallsBackToBaseKey(t *testing.T) {
	v := New()
	v.Set("lbl", "hello")

	got, ok := GetLocalized[string](v, "lbl")
	if !ok || got != "hello" {
		t.Errorf("unexpected value: %q, ok=%v", got, ok)
	}
}

func TestGetLocalizedPicksBestMatch(t *testing.T) {
	v := New()
	v.Set("lbl#en-US", "hello")
	v.Set("lbl#de-DE", "hallo")

	got, ok := GetLocalized[string](v, "lbl")
	if !ok {
		t.Fatal("expected ok")
	}
	if got != "hello" {
		t.Errorf("expected en-US (process default), got %q", got)
	}
}

func TestSetLocalizedWritesBaseKeyOnly(t *testing.T) {
	v := New()
	want := "hello"
	SetLocalized(v, "lbl", &want)

	if v.Contains("lbl#en-US") {
		t.Error("expected no locale-suffixed key to be written")
	}
	got, ok := v.Get("lbl")
	if !ok || got != "hello" {
		t.Errorf("unexpected value: %v", got)
	}
}

package jwa

import "testing"

func TestDefaultRegistrations(t *testing.T) {
	ids := []ID{None, HS256, HS384, HS512, RS256, RS384, RS512, PS256, PS384, PS512, ES256, ES384, ES512, EdDSA}

	for _, id := range ids {
		if _, ok := Lookup(id); !ok {
			t.Errorf("expected %s to be registered by default", id)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := Lookup("bogus"); ok {
		t.Error("expected bogus algorithm to be unknown")
	}

	if _, err := MustLookup("bogus"); err == nil {
		t.Error("expected an error from MustLookup")
	}
}

func TestRegisterOverwrite(t *testing.T) {
	Register("X-CUSTOM", Registration{KeyType: KeyTypeRSA, Form: FormRSAPSS})
	custom := Registration{KeyType: KeyTypeSymmetric, Form: FormHMAC}
	Register("X-CUSTOM", custom)

	got, ok := Lookup("X-CUSTOM")
	if !ok {
		t.Fatal("expected custom registration to be found")
	}
	if got.Form != FormHMAC {
		t.Errorf("unexpected form: %v", got.Form)
	}
}

func TestRegisteredIDsIncludesDefaults(t *testing.T) {
	ids := RegisteredIDs()
	found := false
	for _, id := range ids {
		if id == ES256 {
			found = true
		}
	}
	if !found {
		t.Error("expected ES256 in RegisteredIDs")
	}
}

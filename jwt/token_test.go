package jwt

import (
	"testing"
	"time"

	"github.com/halimath/jwx/jwa"
	"github.com/halimath/jwx/jwk"
	"github.com/halimath/jwx/storage"
)

func TestClaims_roundtrip(t *testing.T) {
	now := storage.NumericDate(time.Now().Truncate(time.Second))

	c := NewClaims()
	c.SetExpirationTime(now)

	encoded, err := c.Value().Encode()
	if err != nil {
		t.Fatal(err)
	}

	decoded, err := UnmarshalClaims(encoded)
	if err != nil {
		t.Fatal(err)
	}

	exp, ok := decoded.ExpirationTime()
	if !ok {
		t.Fatal("expected exp claim to be present")
	}
	if !exp.Time().Equal(now.Time()) {
		t.Errorf("got %v, want %v", exp.Time(), now.Time())
	}
}

func TestSign(t *testing.T) {
	claims := NewClaims()
	claims.SetSubject("john.doe")
	claims.SetIssuer("oauth-server")
	claims.SetAudience([]string{"oauth-server-demo-app"})

	token, err := Sign(jwa.None, jwk.Set{}, claims)
	if err != nil {
		t.Fatal(err)
	}

	compact, err := token.JWS().Compact()
	if err != nil {
		t.Fatal(err)
	}

	want := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJhdWQiOlsib2F1dGgtc2VydmVyLWRlbW8tYXBwIl0sImlzcyI6Im9hdXRoLXNlcnZlciIsInN1YiI6ImpvaG4uZG9lIn0."
	if compact != want {
		t.Errorf("got %s, want %s", compact, want)
	}
}

func TestDecode(t *testing.T) {
	token, err := Decode([]byte("eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJhdWQiOlsib2F1dGgtc2VydmVyLWRlbW8tYXBwIl0sImlzcyI6Im9hdXRoLXNlcnZlciIsInN1YiI6ImpvaG4uZG9lIn0."))
	if err != nil {
		t.Fatal(err)
	}

	alg, ok := token.JWS().ProtectedHeader(0).Algorithm()
	if !ok || alg != jwa.None {
		t.Errorf("unexpected algorithm: %v", alg)
	}

	typ, ok := token.JWS().ProtectedHeader(0).Type()
	if !ok || typ != "JWT" {
		t.Errorf("unexpected typ: %v", typ)
	}

	sub, _ := token.Claims().Subject()
	if sub != "john.doe" {
		t.Errorf("got subject %q, want %q", sub, "john.doe")
	}

	iss, _ := token.Claims().Issuer()
	if iss != "oauth-server" {
		t.Errorf("got issuer %q, want %q", iss, "oauth-server")
	}

	aud, _ := token.Claims().Audience()
	if len(aud) != 1 || aud[0] != "oauth-server-demo-app" {
		t.Errorf("got audience %v, want [oauth-server-demo-app]", aud)
	}
}

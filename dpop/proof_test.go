package dpop

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"testing"
	"time"

	"github.com/halimath/jwx/jwa"
	"github.com/halimath/jwx/jwk"
	"github.com/halimath/jwx/jws"
	"github.com/halimath/jwx/storage"
)

func generateKey(t *testing.T) *jwk.ECDSAPrivateKey {
	t.Helper()
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	return &jwk.ECDSAPrivateKey{PrivateKey: priv}
}

func TestGenerateVerify_roundtrip(t *testing.T) {
	key := generateKey(t)

	proof, err := Generate(Request{
		Method:    "GET",
		URI:       "https://resource.example.org/protectedresource?ignored=1",
		Key:       key,
		Algorithm: jwa.ES256,
	})
	if err != nil {
		t.Fatal(err)
	}

	compact, err := proof.JWS().Compact()
	if err != nil {
		t.Fatal(err)
	}

	verified, err := Verify([]byte(compact),
		Method("GET"),
		TargetURI("https://resource.example.org/protectedresource"),
	)
	if err != nil {
		t.Fatal(err)
	}

	htu, _ := verified.Claims().URI()
	if htu != "https://resource.example.org/protectedresource" {
		t.Errorf("got htu %q", htu)
	}
}

func TestVerify_wrongMethodPredicate(t *testing.T) {
	key := generateKey(t)

	proof, err := Generate(Request{
		Method:    "GET",
		URI:       "https://resource.example.org/protectedresource",
		Key:       key,
		Algorithm: jwa.ES256,
	})
	if err != nil {
		t.Fatal(err)
	}

	compact, err := proof.JWS().Compact()
	if err != nil {
		t.Fatal(err)
	}

	if _, err := Verify([]byte(compact), Method("POST")); err == nil {
		t.Fatal("expected a method mismatch error")
	}
}

func TestGenerate_rejectsSymmetricAlgorithm(t *testing.T) {
	key := generateKey(t)

	_, err := Generate(Request{
		Method:    "GET",
		URI:       "https://resource.example.org/protectedresource",
		Key:       key,
		Algorithm: jwa.HS256,
	})
	if err == nil {
		t.Fatal("expected HS256 to be rejected as a DPoP algorithm")
	}
}

func TestVerify_wrongTyp(t *testing.T) {
	// A token signed with typ "JWT" instead of "dpop+jwt" must not parse
	// as a DPoP proof, even though it otherwise carries the same claims
	// and an embedded jwk.
	key := generateKey(t)
	pub, err := publicJWK(key)
	if err != nil {
		t.Fatal(err)
	}

	claims := NewClaims()
	claims.SetID("id")
	claims.SetMethod("GET")
	if err := claims.SetURI("https://resource.example.org/protectedresource"); err != nil {
		t.Fatal(err)
	}
	claims.SetIssuedAt(storage.NumericDate(time.Now()))

	payload, err := claims.Value().Encode()
	if err != nil {
		t.Fatal(err)
	}

	header := jws.NewHeader()
	header.SetType("JWT")
	header.SetAlgorithm(jwa.ES256)
	if err := header.SetJWK(pub); err != nil {
		t.Fatal(err)
	}

	j, err := jws.Sign(payload, jws.SignRequest{Protected: header, Keys: jwk.Set{key}})
	if err != nil {
		t.Fatal(err)
	}

	compact, err := j.Compact()
	if err != nil {
		t.Fatal(err)
	}

	if _, err := Verify([]byte(compact)); err == nil {
		t.Fatal("expected wrong typ to be rejected")
	}
}

func mustCompact(t *testing.T, p *Proof) string {
	t.Helper()
	s, err := p.JWS().Compact()
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestReplayGuard(t *testing.T) {
	guard := NewReplayGuard(time.Minute)
	defer guard.Stop()

	if err := guard.Check("abc"); err != nil {
		t.Fatalf("first sighting should not be a replay: %v", err)
	}
	if err := guard.Check("abc"); err == nil {
		t.Fatal("second sighting should be a replay")
	}
	if err := guard.Check("def"); err != nil {
		t.Fatalf("different jti should not be a replay: %v", err)
	}
	if guard.Size() != 2 {
		t.Errorf("got size %d, want 2", guard.Size())
	}
}

func TestReplayGuard_predicateRejectsSecondProof(t *testing.T) {
	key := generateKey(t)
	guard := NewReplayGuard(time.Minute)
	defer guard.Stop()

	proof, err := Generate(Request{
		Method:    "GET",
		URI:       "https://resource.example.org/protectedresource",
		Key:       key,
		Algorithm: jwa.ES256,
		ID:        "fixed-jti",
	})
	if err != nil {
		t.Fatal(err)
	}

	compact := mustCompact(t, proof)

	if _, err := Verify([]byte(compact), guard.Predicate()); err != nil {
		t.Fatalf("first verification should succeed: %v", err)
	}
	if _, err := Verify([]byte(compact), guard.Predicate()); err == nil {
		t.Fatal("expected the replayed jti to be rejected")
	}
}

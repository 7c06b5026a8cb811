package jwk

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rsa"
	"encoding/json"
	"math/big"
	"testing"

	"github.com/go-test/deep"

	"github.com/halimath/jwx/jwa"
)

func TestSet_JSONSerialization(t *testing.T) {
	const jsonData = `{"keys":[{"use":"sig","kid":"1","kty":"EC","crv":"P-256","x":"AQ","y":"Ag"},{"use":"sig","kid":"1","kty":"RSA","n":"AQ","e":"Ag"},{"kty":"oct","k":"czNjcjN0"}]}`
	set := Set{
		&ECDSAPublicKey{
			KeyDescription: KeyDescription{
				KeyUse: UseSignature,
				KeyID:  "1",
			},
			PublicKey: &ecdsa.PublicKey{
				Curve: elliptic.P256(),
				X:     big.NewInt(1),
				Y:     big.NewInt(2),
			},
		},
		&RSAPublicKey{
			KeyDescription: KeyDescription{
				KeyUse: UseSignature,
				KeyID:  "1",
			},
			PublicKey: &rsa.PublicKey{
				N: big.NewInt(1),
				E: 2,
			},
		},
		&SymmetricKey{
			Bytes: []byte("s3cr3t"),
		},
	}

	t.Run("marshal", func(t *testing.T) {
		got, err := json.Marshal(set)
		if err != nil {
			t.Fatal(err)
		}

		if string(got) != jsonData {
			t.Errorf("want\n%s but got\n%s", jsonData, string(got))
		}
	})

	t.Run("unmarshal", func(t *testing.T) {
		var got Set

		if err := json.Unmarshal([]byte(jsonData), &got); err != nil {
			t.Fatal(err)
		}

		if diff := deep.Equal(set, got); diff != nil {
			t.Errorf("want\n%+v but got\n%+v", set, got)
		}
	})
}

func TestSet_MatchPrefersKID(t *testing.T) {
	set := Set{
		&SymmetricKey{KeyDescription: KeyDescription{KeyID: "a"}, Bytes: []byte("secret-a")},
		&SymmetricKey{KeyDescription: KeyDescription{KeyID: "b"}, Bytes: []byte("secret-b")},
	}

	k, err := set.Match(jwa.HS256, "b")
	if err != nil {
		t.Fatal(err)
	}
	if k.ID() != "b" {
		t.Errorf("expected key b, got %s", k.ID())
	}
}

func TestSet_MatchFallsBackToFirstCompatible(t *testing.T) {
	set := Set{
		&RSAPublicKey{PublicKey: &rsa.PublicKey{N: big.NewInt(1), E: 2}},
		&SymmetricKey{Bytes: []byte("secret")},
	}

	k, err := set.Match(jwa.HS256, "unknown-kid")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := k.(*SymmetricKey); !ok {
		t.Errorf("expected the symmetric key, got %T", k)
	}
}

func TestSet_MatchNotFound(t *testing.T) {
	set := Set{&SymmetricKey{Bytes: []byte("secret")}}

	if _, err := set.Match(jwa.RS256, ""); err != ErrKeyNotFound {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}
}

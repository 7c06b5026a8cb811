package jwk

import (
	"crypto/ed25519"
	"encoding/json"
	"testing"

	"github.com/go-test/deep"

	"github.com/halimath/jwx/jwa"
)

func TestOKPKey_JSONRoundTrip(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatal(err)
	}

	privKey := &OKPPrivateKey{
		KeyDescription: KeyDescription{KeyID: "ed-1"},
		PrivateKey:     priv,
	}

	data, err := json.Marshal(privKey)
	if err != nil {
		t.Fatal(err)
	}

	var gotPriv OKPPrivateKey
	if err := json.Unmarshal(data, &gotPriv); err != nil {
		t.Fatal(err)
	}

	if diff := deep.Equal(privKey, &gotPriv); diff != nil {
		t.Error(diff)
	}

	pubKey := privKey.Public()
	if !pub.Equal(pubKey.PublicKey) {
		t.Error("expected derived public key to match generated public key")
	}

	pubData, err := json.Marshal(pubKey)
	if err != nil {
		t.Fatal(err)
	}

	var gotPub OKPPublicKey
	if err := json.Unmarshal(pubData, &gotPub); err != nil {
		t.Fatal(err)
	}

	if !gotPub.PublicKey.Equal(pub) {
		t.Error("unexpected public key after round trip")
	}
}

func TestOKPKey_Supports(t *testing.T) {
	pub, _, _ := ed25519.GenerateKey(nil)
	k := &OKPPublicKey{PublicKey: pub}

	if !k.Supports(jwa.EdDSA) {
		t.Error("expected OKP key to support EdDSA")
	}
	if k.Supports(jwa.ES256) {
		t.Error("expected OKP key not to support ES256")
	}
}

func TestUnmarshalKey_DispatchesPublicAndPrivate(t *testing.T) {
	pub, priv, _ := ed25519.GenerateKey(nil)

	privKey := &OKPPrivateKey{PrivateKey: priv}
	data, _ := json.Marshal(privKey)

	k, err := UnmarshalKey(data)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := k.(*OKPPrivateKey); !ok {
		t.Errorf("expected *OKPPrivateKey, got %T", k)
	}

	pubKey := &OKPPublicKey{PublicKey: pub}
	pubData, _ := json.Marshal(pubKey)

	k, err = UnmarshalKey(pubData)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := k.(*OKPPublicKey); !ok {
		t.Errorf("expected *OKPPublicKey, got %T", k)
	}
}

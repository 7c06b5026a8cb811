package jwk

import (
	"crypto/ed25519"
	"encoding/json"
	"fmt"

	"github.com/halimath/jwx/internal/encoding"
	"github.com/halimath/jwx/jwa"
)

// OKPPublicKey implements an Octet Key Pair public key as specified in RFC
// 8037. This implementation is restricted to the Ed25519 curve, the only
// one the algorithms registered in jwa use.
type OKPPublicKey struct {
	KeyDescription
	ed25519.PublicKey
}

func (k *OKPPublicKey) Type() KeyType {
	return KeyTypeOKP
}

func (k *OKPPublicKey) Supports(alg jwa.ID) bool {
	reg, ok := jwa.Lookup(alg)
	return ok && reg.Form == jwa.FormEdDSA
}

type okpPublicKeyJSONWrapper struct {
	KeyDescription
	Type  KeyType `json:"kty"`
	Curve string  `json:"crv"`
	X     string  `json:"x"`
}

func (k *OKPPublicKey) MarshalJSON() ([]byte, error) {
	w := okpPublicKeyJSONWrapper{
		KeyDescription: k.KeyDescription,
		Type:           k.Type(),
		Curve:          "Ed25519",
		X:              encoding.Encode(k.PublicKey),
	}

	return json.Marshal(w)
}

func (k *OKPPublicKey) UnmarshalJSON(data []byte) error {
	var w okpPublicKeyJSONWrapper

	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	if w.Type != KeyTypeOKP {
		return fmt.Errorf("invalid key type: %s", w.Type)
	}

	if w.Curve != "Ed25519" {
		return fmt.Errorf("unsupported OKP curve: %s", w.Curve)
	}

	xBytes, err := encoding.Decode(w.X)
	if err != nil {
		return fmt.Errorf("invalid x value: %v", err)
	}

	if len(xBytes) != ed25519.PublicKeySize {
		return fmt.Errorf("invalid Ed25519 public key size: %d", len(xBytes))
	}

	k.KeyDescription = w.KeyDescription
	k.PublicKey = ed25519.PublicKey(xBytes)

	return nil
}

// OKPPrivateKey adds the private seed "d" to an OKPPublicKey.
type OKPPrivateKey struct {
	KeyDescription
	ed25519.PrivateKey
}

func (k *OKPPrivateKey) Type() KeyType {
	return KeyTypeOKP
}

func (k *OKPPrivateKey) Supports(alg jwa.ID) bool {
	reg, ok := jwa.Lookup(alg)
	return ok && reg.Form == jwa.FormEdDSA
}

// Public returns the public counterpart of k.
func (k *OKPPrivateKey) Public() *OKPPublicKey {
	pub, ok := k.PrivateKey.Public().(ed25519.PublicKey)
	if !ok {
		return nil
	}
	return &OKPPublicKey{
		KeyDescription: k.KeyDescription,
		PublicKey:      pub,
	}
}

type okpPrivateKeyJSONWrapper struct {
	KeyDescription
	Type  KeyType `json:"kty"`
	Curve string  `json:"crv"`
	X     string  `json:"x"`
	D     string  `json:"d"`
}

func (k *OKPPrivateKey) MarshalJSON() ([]byte, error) {
	seed := k.PrivateKey.Seed()
	pub, _ := k.PrivateKey.Public().(ed25519.PublicKey)

	w := okpPrivateKeyJSONWrapper{
		KeyDescription: k.KeyDescription,
		Type:           k.Type(),
		Curve:          "Ed25519",
		X:              encoding.Encode(pub),
		D:              encoding.Encode(seed),
	}

	return json.Marshal(w)
}

func (k *OKPPrivateKey) UnmarshalJSON(data []byte) error {
	var w okpPrivateKeyJSONWrapper

	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	if w.Type != KeyTypeOKP {
		return fmt.Errorf("invalid key type: %s", w.Type)
	}

	if w.Curve != "Ed25519" {
		return fmt.Errorf("unsupported OKP curve: %s", w.Curve)
	}

	dBytes, err := encoding.Decode(w.D)
	if err != nil {
		return fmt.Errorf("invalid d value: %v", err)
	}

	if len(dBytes) != ed25519.SeedSize {
		return fmt.Errorf("invalid Ed25519 seed size: %d", len(dBytes))
	}

	k.KeyDescription = w.KeyDescription
	k.PrivateKey = ed25519.NewKeyFromSeed(dBytes)

	return nil
}

package jwk

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/halimath/jwx/internal/encoding"
	"github.com/halimath/jwx/jwa"
)

type ECDSAPublicKey struct {
	KeyDescription
	*ecdsa.PublicKey
}

func (e *ECDSAPublicKey) Type() KeyType {
	return KeyTypeEC
}

// Supports reports whether alg is an ECDSA algorithm bound to this key's
// curve, per RFC 7518 section 3.4's curve/algorithm pairing.
func (e *ECDSAPublicKey) Supports(alg jwa.ID) bool {
	return ecdsaSupports(e.PublicKey.Curve, alg)
}

type ecdsaPublicKeyJSONWrapper struct {
	KeyDescription
	Type  KeyType `json:"kty"`
	Curve string  `json:"crv"`
	X     string  `json:"x"`
	Y     string  `json:"y"`
}

func (e *ECDSAPublicKey) MarshalJSON() ([]byte, error) {
	w := ecdsaPublicKeyJSONWrapper{
		KeyDescription: e.KeyDescription,
		Type:           e.Type(),
		Curve:          e.Params().Params().Name,
		X:              encoding.Encode(e.PublicKey.X.Bytes()),
		Y:              encoding.Encode(e.PublicKey.Y.Bytes()),
	}

	return json.Marshal(w)
}

var supportedCurves = map[string]elliptic.Curve{
	"P-256": elliptic.P256(),
	"P-384": elliptic.P384(),
	"P-521": elliptic.P521(),
}

func (e *ECDSAPublicKey) UnmarshalJSON(data []byte) error {
	var w ecdsaPublicKeyJSONWrapper

	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	if w.Type != KeyTypeEC {
		return fmt.Errorf("invalid key type: %s", w.Type)
	}

	crv, ok := supportedCurves[w.Curve]
	if !ok {
		return fmt.Errorf("invalid EC curve: %s", w.Curve)
	}

	xBytes, err := encoding.Decode(w.X)
	if err != nil {
		return fmt.Errorf("invalid x value: %v", err)
	}

	yBytes, err := encoding.Decode(w.Y)
	if err != nil {
		return fmt.Errorf("invalid y value: %v", err)
	}

	e.KeyDescription = w.KeyDescription
	e.PublicKey = &ecdsa.PublicKey{
		Curve: crv,
		X:     big.NewInt(0).SetBytes(xBytes),
		Y:     big.NewInt(0).SetBytes(yBytes),
	}

	return nil
}

// ECDSAPrivateKey adds the private scalar "d" to an ECDSAPublicKey,
// completing the key pair RFC 7518 section 6.2.2 describes.
type ECDSAPrivateKey struct {
	KeyDescription
	*ecdsa.PrivateKey
}

func (e *ECDSAPrivateKey) Type() KeyType {
	return KeyTypeEC
}

func (e *ECDSAPrivateKey) Supports(alg jwa.ID) bool {
	return ecdsaSupports(e.PrivateKey.Curve, alg)
}

// Public returns the public counterpart of e, suitable for distribution in
// a verification-only key set.
func (e *ECDSAPrivateKey) Public() *ECDSAPublicKey {
	return &ECDSAPublicKey{
		KeyDescription: e.KeyDescription,
		PublicKey:      &e.PrivateKey.PublicKey,
	}
}

type ecdsaPrivateKeyJSONWrapper struct {
	KeyDescription
	Type  KeyType `json:"kty"`
	Curve string  `json:"crv"`
	X     string  `json:"x"`
	Y     string  `json:"y"`
	D     string  `json:"d"`
}

func (e *ECDSAPrivateKey) MarshalJSON() ([]byte, error) {
	w := ecdsaPrivateKeyJSONWrapper{
		KeyDescription: e.KeyDescription,
		Type:           e.Type(),
		Curve:          e.PrivateKey.Curve.Params().Name,
		X:              encoding.Encode(e.PrivateKey.PublicKey.X.Bytes()),
		Y:              encoding.Encode(e.PrivateKey.PublicKey.Y.Bytes()),
		D:              encoding.Encode(e.PrivateKey.D.Bytes()),
	}

	return json.Marshal(w)
}

func (e *ECDSAPrivateKey) UnmarshalJSON(data []byte) error {
	var w ecdsaPrivateKeyJSONWrapper

	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	if w.Type != KeyTypeEC {
		return fmt.Errorf("invalid key type: %s", w.Type)
	}

	crv, ok := supportedCurves[w.Curve]
	if !ok {
		return fmt.Errorf("invalid EC curve: %s", w.Curve)
	}

	xBytes, err := encoding.Decode(w.X)
	if err != nil {
		return fmt.Errorf("invalid x value: %v", err)
	}

	yBytes, err := encoding.Decode(w.Y)
	if err != nil {
		return fmt.Errorf("invalid y value: %v", err)
	}

	dBytes, err := encoding.Decode(w.D)
	if err != nil {
		return fmt.Errorf("invalid d value: %v", err)
	}

	e.KeyDescription = w.KeyDescription
	e.PrivateKey = &ecdsa.PrivateKey{
		PublicKey: ecdsa.PublicKey{
			Curve: crv,
			X:     big.NewInt(0).SetBytes(xBytes),
			Y:     big.NewInt(0).SetBytes(yBytes),
		},
		D: big.NewInt(0).SetBytes(dBytes),
	}

	return nil
}

func ecdsaSupports(curve elliptic.Curve, alg jwa.ID) bool {
	reg, ok := jwa.Lookup(alg)
	if !ok || reg.KeyType != jwa.KeyTypeEC || reg.Curve == nil {
		return false
	}
	return reg.Curve == curve
}

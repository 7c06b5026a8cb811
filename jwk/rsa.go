package jwk

import (
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/halimath/jwx/internal/encoding"
	"github.com/halimath/jwx/jwa"
)

type RSAPublicKey struct {
	KeyDescription
	*rsa.PublicKey
}

func (e *RSAPublicKey) Type() KeyType {
	return KeyTypeRSA
}

// Supports reports whether alg is any registered RSA algorithm: RSA keys
// carry no curve restriction, so every RS*/PS* algorithm applies equally.
func (e *RSAPublicKey) Supports(alg jwa.ID) bool {
	return rsaSupports(alg)
}

type rsaPublicKeyJSONWrapper struct {
	KeyDescription
	Type KeyType `json:"kty"`
	N    string  `json:"n"`
	E    string  `json:"e"`
}

func (e *RSAPublicKey) MarshalJSON() ([]byte, error) {
	w := rsaPublicKeyJSONWrapper{
		KeyDescription: e.KeyDescription,
		Type:           e.Type(),
		N:              encoding.Encode(e.PublicKey.N.Bytes()),
		E:              encoding.Encode(big.NewInt(int64(e.PublicKey.E)).Bytes()),
	}

	return json.Marshal(w)
}

func (e *RSAPublicKey) UnmarshalJSON(data []byte) error {
	var w rsaPublicKeyJSONWrapper

	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	if w.Type != KeyTypeRSA {
		return fmt.Errorf("invalid key type: %s", w.Type)
	}

	nBytes, err := encoding.Decode(w.N)
	if err != nil {
		return fmt.Errorf("invalid n value: %v", err)
	}

	eBytes, err := encoding.Decode(w.E)
	if err != nil {
		return fmt.Errorf("invalid e value: %v", err)
	}

	e.KeyDescription = w.KeyDescription
	e.PublicKey = &rsa.PublicKey{
		N: big.NewInt(0).SetBytes(nBytes),
		E: int(big.NewInt(0).SetBytes(eBytes).Int64()),
	}

	return nil
}

// RSAPrivateKey adds the private exponent and CRT parameters RFC 7518
// section 6.3.2 describes to an RSAPublicKey.
type RSAPrivateKey struct {
	KeyDescription
	*rsa.PrivateKey
}

func (e *RSAPrivateKey) Type() KeyType {
	return KeyTypeRSA
}

func (e *RSAPrivateKey) Supports(alg jwa.ID) bool {
	return rsaSupports(alg)
}

// Public returns the public counterpart of e.
func (e *RSAPrivateKey) Public() *RSAPublicKey {
	return &RSAPublicKey{
		KeyDescription: e.KeyDescription,
		PublicKey:      &e.PrivateKey.PublicKey,
	}
}

type rsaPrivateKeyJSONWrapper struct {
	KeyDescription
	Type KeyType `json:"kty"`
	N    string  `json:"n"`
	E    string  `json:"e"`
	D    string  `json:"d"`
	P    string  `json:"p,omitempty"`
	Q    string  `json:"q,omitempty"`
}

func (e *RSAPrivateKey) MarshalJSON() ([]byte, error) {
	w := rsaPrivateKeyJSONWrapper{
		KeyDescription: e.KeyDescription,
		Type:           e.Type(),
		N:              encoding.Encode(e.PrivateKey.PublicKey.N.Bytes()),
		E:              encoding.Encode(big.NewInt(int64(e.PrivateKey.PublicKey.E)).Bytes()),
		D:              encoding.Encode(e.PrivateKey.D.Bytes()),
	}

	if len(e.PrivateKey.Primes) == 2 {
		w.P = encoding.Encode(e.PrivateKey.Primes[0].Bytes())
		w.Q = encoding.Encode(e.PrivateKey.Primes[1].Bytes())
	}

	return json.Marshal(w)
}

func (e *RSAPrivateKey) UnmarshalJSON(data []byte) error {
	var w rsaPrivateKeyJSONWrapper

	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	if w.Type != KeyTypeRSA {
		return fmt.Errorf("invalid key type: %s", w.Type)
	}

	nBytes, err := encoding.Decode(w.N)
	if err != nil {
		return fmt.Errorf("invalid n value: %v", err)
	}

	eBytes, err := encoding.Decode(w.E)
	if err != nil {
		return fmt.Errorf("invalid e value: %v", err)
	}

	dBytes, err := encoding.Decode(w.D)
	if err != nil {
		return fmt.Errorf("invalid d value: %v", err)
	}

	priv := &rsa.PrivateKey{
		PublicKey: rsa.PublicKey{
			N: big.NewInt(0).SetBytes(nBytes),
			E: int(big.NewInt(0).SetBytes(eBytes).Int64()),
		},
		D: big.NewInt(0).SetBytes(dBytes),
	}

	if w.P != "" && w.Q != "" {
		pBytes, err := encoding.Decode(w.P)
		if err != nil {
			return fmt.Errorf("invalid p value: %v", err)
		}
		qBytes, err := encoding.Decode(w.Q)
		if err != nil {
			return fmt.Errorf("invalid q value: %v", err)
		}
		priv.Primes = []*big.Int{big.NewInt(0).SetBytes(pBytes), big.NewInt(0).SetBytes(qBytes)}
	}

	e.KeyDescription = w.KeyDescription
	e.PrivateKey = priv

	return nil
}

func rsaSupports(alg jwa.ID) bool {
	reg, ok := jwa.Lookup(alg)
	return ok && reg.KeyType == jwa.KeyTypeRSA
}

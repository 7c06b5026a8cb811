package main

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"os"

	"github.com/halimath/jwx/jwa"
	"github.com/halimath/jwx/jwk"
)

func runKeygen(args []string) error {
	fs := newFlagSet("keygen")
	alg := fs.String("alg", "ES256", "algorithm the key will be used with")
	kid := fs.String("kid", "", "key ID to embed (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	key, err := generateKey(jwa.ID(*alg), *kid)
	if err != nil {
		return err
	}

	data, err := jwk.MarshalKey(key)
	if err != nil {
		return err
	}

	var pretty map[string]any
	if err := json.Unmarshal(data, &pretty); err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(pretty)
}

// generateKey produces a fresh private key compatible with alg, following
// the same family/curve pairing jwa.Registration encodes.
func generateKey(alg jwa.ID, kid string) (jwk.Key, error) {
	reg, ok := jwa.Lookup(alg)
	if !ok {
		return nil, fmt.Errorf("unknown algorithm %q", alg)
	}

	switch reg.KeyType {
	case jwa.KeyTypeSymmetric:
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return nil, err
		}
		k := &jwk.SymmetricKey{Bytes: buf}
		k.KeyID = kid
		return k, nil

	case jwa.KeyTypeRSA:
		priv, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			return nil, err
		}
		k := &jwk.RSAPrivateKey{PrivateKey: priv}
		k.KeyID = kid
		return k, nil

	case jwa.KeyTypeEC:
		if reg.Form == jwa.FormEdDSA {
			_, priv, err := ed25519.GenerateKey(rand.Reader)
			if err != nil {
				return nil, err
			}
			k := &jwk.OKPPrivateKey{PrivateKey: priv}
			k.KeyID = kid
			return k, nil
		}

		curve := reg.Curve
		if curve == nil {
			curve = elliptic.P256()
		}
		priv, err := ecdsa.GenerateKey(curve, rand.Reader)
		if err != nil {
			return nil, err
		}
		k := &jwk.ECDSAPrivateKey{PrivateKey: priv}
		k.KeyID = kid
		return k, nil

	default:
		return nil, fmt.Errorf("algorithm %q has no known key generation strategy", alg)
	}
}

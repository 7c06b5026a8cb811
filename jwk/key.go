package jwk

import (
	"encoding/json"
	"fmt"

	"github.com/halimath/jwx/jwa"
)

// KeyType defines the types of keys as specified in RFC 7518 section 6.1
// (https://www.rfc-editor.org/rfc/rfc7518.html#section-6.1)
type KeyType string

const (
	// Parameter "kty" for encoding the key type
	ParamKeyType = "kty"

	// Key Type Ellictic Curve (DSS)
	KeyTypeEC KeyType = "EC"

	// Key Type RSA
	KeyTypeRSA KeyType = "RSA"

	// Key Type Octet Stream
	KeyTypeOct KeyType = "oct"

	// Key Type Octet Key Pair (Ed25519 et al., RFC 8037)
	KeyTypeOKP KeyType = "OKP"
)

// --

// KeyUse defines the types of key use as specified in RFC 7517 section 4.2
// (https://datatracker.ietf.org/doc/html/rfc7517#section-4.2)
type KeyUse string

const (
	// Parameter "use" for encoding the key use
	ParamUse = "use"

	// Public Key use for signatures
	UseSignature KeyUse = "sig"

	// Public Key use for encryption
	UseEncryption KeyUse = "enc"
)

// --

// KeyOp defines the types of key operations as specified in RFC 7517 section 4.3
// (https://datatracker.ietf.org/doc/html/rfc7517#section-4.3)
type KeyOp string

const (
	// Parameter "key_ops" for encoding the key operations
	ParamKeyOps = "key_ops"

	// compute digital signature or MAC
	KeyOpsSign KeyOp = "sign"

	// verify digital signature or MAC
	KeyOpsVerify KeyOp = "verify"

	// encrypt content
	KeyOpsEncrypt KeyOp = "encrypt"

	// decrypt content and validate decryption, if applicable
	KeyOpsDecrypt KeyOp = "decrypt"

	// encrypt key
	KeyOpsKeyWrap KeyOp = "wrapKey"

	// decrypt key and validate decryption, if applicable
	KeyOpsUnwrapKey KeyOp = "unwrapKey"

	// derive key
	KeyOpsDeriveKey KeyOp = "deriveKey"

	// derive bits not to be used as a key
	KeyOpsDeriveBits KeyOp = "deriveBits"
)

const (
	// Parameter "alg" for encoding the key's algorithm
	ParamAlg = "alg"

	// Parameter "kid" for encoding the key's ID
	ParamKID = "kid"
)

// --

// Key defines the interface implemented by all keys.
// It defines getter for the common metadata parameters
// as specified in RFC 7517 section 4
// (https://datatracker.ietf.org/doc/html/rfc7517#section-4)
type Key interface {
	// The "kty" parameter
	Type() KeyType

	// The "use" parameter
	Use() KeyUse

	// The "key_ops" parameter
	Operations() []KeyOp

	// The "alg" parameter
	Algorithm() string

	// The "kid" parameter
	ID() string

	// Supports reports whether the key can be used with the given
	// algorithm, i.e. whether its key type (and, for EC/OKP keys, its
	// curve) matches what alg's jwa.Registration requires.
	Supports(alg jwa.ID) bool
}

// MarshalKey marshals k into a JWK representation and returns the JSON bytes
// as well as any error occured during marshaling. This is essentially just
// a wrapper for json.Marshal. It is provided here as a symmetric API to
// UnmarshalKey, which returns dynamic types.
func MarshalKey(k Key) ([]byte, error) {
	return json.Marshal(k)
}

// UnmarshalKey unmarshals JSON data as a JWK Key and returns an appropriate
// type depending on the kty and other attributes. Any error during unmarshaling
// as well as unsupported key types lead to an error being returned.
func UnmarshalKey(data []byte) (Key, error) {
	type keyWrapper struct {
		Type KeyType `json:"kty"`
		// Presence of "d" (RFC 7518 section 6.2.2.1, 6.3.2.1; RFC 8037
		// section 2) is what distinguishes a private key from its public
		// counterpart for every key type but oct, which has no public form.
		D string `json:"d"`
	}

	var kw keyWrapper
	if err := json.Unmarshal(data, &kw); err != nil {
		return nil, err
	}

	isPrivate := kw.D != ""

	switch kw.Type {
	case KeyTypeEC:
		if isPrivate {
			var k ECDSAPrivateKey
			if err := json.Unmarshal(data, &k); err != nil {
				return nil, err
			}
			return &k, nil
		}

		var k ECDSAPublicKey
		if err := json.Unmarshal(data, &k); err != nil {
			return nil, err
		}
		return &k, nil

	case KeyTypeRSA:
		if isPrivate {
			var k RSAPrivateKey
			if err := json.Unmarshal(data, &k); err != nil {
				return nil, err
			}
			return &k, nil
		}

		var k RSAPublicKey
		if err := json.Unmarshal(data, &k); err != nil {
			return nil, err
		}

		return &k, nil

	case KeyTypeOKP:
		if isPrivate {
			var k OKPPrivateKey
			if err := json.Unmarshal(data, &k); err != nil {
				return nil, err
			}
			return &k, nil
		}

		var k OKPPublicKey
		if err := json.Unmarshal(data, &k); err != nil {
			return nil, err
		}
		return &k, nil

	case KeyTypeOct:
		var k SymmetricKey
		if err := json.Unmarshal(data, &k); err != nil {
			return nil, err
		}

		return &k, nil

	default:
		return nil, fmt.Errorf("unsupported kty: %s", kw.Type)
	}
}

// KeyDescription provides a simple struct that implements
// the generic getters defined by Key. It is included in
// each key's struct definition and allows the values to
// be set.
type KeyDescription struct {
	KeyUse        KeyUse  `json:"use,omitempty"`
	KeyOperations []KeyOp `json:"key_ops,omitempty"`
	KeyAlgorithm  string  `json:"alg,omitempty"`
	KeyID         string  `json:"kid,omitempty"`
}

func (k *KeyDescription) Use() KeyUse {
	return k.KeyUse
}

func (k *KeyDescription) Operations() []KeyOp {
	return k.KeyOperations
}

func (k *KeyDescription) Algorithm() string {
	return k.KeyAlgorithm
}

func (k *KeyDescription) ID() string {
	return k.KeyID
}

package jws

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	"github.com/halimath/jwx/jwa"
)

// rsaPSSSigner implements a signature signer using RSASSA-PSS with MGF1 and
// the same hash function for both the digest and the mask generation, salt
// length equal to the hash length, as defined in RFC 7518 section 3.5
// (https://www.rfc-editor.org/rfc/rfc7518.html#section-3.5)
type rsaPSSSigner struct {
	alg        jwa.ID
	privateKey *rsa.PrivateKey
	h          crypto.Hash
	hf         func() hash.Hash
}

func (r *rsaPSSSigner) Alg() jwa.ID {
	return r.alg
}

func (r *rsaPSSSigner) Sign(data []byte) ([]byte, error) {
	h := r.hf()
	h.Write(data)
	hashed := h.Sum(nil)
	return rsa.SignPSS(rand.Reader, r.privateKey, r.h, hashed, &rsa.PSSOptions{
		SaltLength: rsa.PSSSaltLengthEqualsHash,
		Hash:       r.h,
	})
}

// PSSigner creates a new Signer for RSASSA-PSS signatures using alg as the
// algorithm and privateKey as the signing key.
func PSSigner(alg jwa.ID, privateKey *rsa.PrivateKey) (Signer, error) {
	switch alg {
	case jwa.PS256:
		return PS256Signer(privateKey), nil
	case jwa.PS384:
		return PS384Signer(privateKey), nil
	case jwa.PS512:
		return PS512Signer(privateKey), nil
	default:
		return nil, fmt.Errorf("unsupported RSA-PSS signature algorithm: %s", alg)
	}
}

// PS256Signer creates a Signer using the PS256 algorithm.
func PS256Signer(privateKey *rsa.PrivateKey) Signer {
	return &rsaPSSSigner{alg: jwa.PS256, privateKey: privateKey, h: crypto.SHA256, hf: sha256.New}
}

// PS384Signer creates a Signer using the PS384 algorithm.
func PS384Signer(privateKey *rsa.PrivateKey) Signer {
	return &rsaPSSSigner{alg: jwa.PS384, privateKey: privateKey, h: crypto.SHA384, hf: sha512.New384}
}

// PS512Signer creates a Signer using the PS512 algorithm.
func PS512Signer(privateKey *rsa.PrivateKey) Signer {
	return &rsaPSSSigner{alg: jwa.PS512, privateKey: privateKey, h: crypto.SHA512, hf: sha512.New}
}

type rsaPSSVerifier struct {
	alg       jwa.ID
	publicKey *rsa.PublicKey
	h         crypto.Hash
	hf        func() hash.Hash
}

func (r *rsaPSSVerifier) Verify(alg jwa.ID, data, signature []byte) error {
	if alg != r.alg {
		return fmt.Errorf("%w: algorithm mismatch", ErrInvalidSignature)
	}

	h := r.hf()
	h.Write(data)
	hashed := h.Sum(nil)
	if err := rsa.VerifyPSS(r.publicKey, r.h, hashed, signature, &rsa.PSSOptions{
		SaltLength: rsa.PSSSaltLengthEqualsHash,
		Hash:       r.h,
	}); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidSignature, err)
	}
	return nil
}

// PSVerifier creates a new Verifier for RSASSA-PSS signatures using alg as
// the algorithm and publicKey as the public key.
func PSVerifier(alg jwa.ID, publicKey *rsa.PublicKey) (Verifier, error) {
	switch alg {
	case jwa.PS256:
		return PS256Verifier(publicKey), nil
	case jwa.PS384:
		return PS384Verifier(publicKey), nil
	case jwa.PS512:
		return PS512Verifier(publicKey), nil
	default:
		return nil, fmt.Errorf("unsupported RSA-PSS signature algorithm: %s", alg)
	}
}

// PS256Verifier creates a Verifier for PS256.
func PS256Verifier(publicKey *rsa.PublicKey) Verifier {
	return &rsaPSSVerifier{alg: jwa.PS256, publicKey: publicKey, h: crypto.SHA256, hf: sha256.New}
}

// PS384Verifier creates a Verifier for PS384.
func PS384Verifier(publicKey *rsa.PublicKey) Verifier {
	return &rsaPSSVerifier{alg: jwa.PS384, publicKey: publicKey, h: crypto.SHA384, hf: sha512.New384}
}

// PS512Verifier creates a Verifier for PS512.
func PS512Verifier(publicKey *rsa.PublicKey) Verifier {
	return &rsaPSSVerifier{alg: jwa.PS512, publicKey: publicKey, h: crypto.SHA512, hf: sha512.New}
}

package jws

import (
	"crypto/ed25519"
	"fmt"

	"github.com/halimath/jwx/jwa"
)

// eddsaSigner implements a signature signer using Ed25519 as defined in
// RFC 8037 section 3.1 (https://www.rfc-editor.org/rfc/rfc8037#section-3.1).
// Ed25519 signs the message directly; unlike the other algorithm families
// in this package it performs no pre-hashing of its own.
type eddsaSigner struct {
	privateKey ed25519.PrivateKey
}

func (e *eddsaSigner) Alg() jwa.ID {
	return jwa.EdDSA
}

func (e *eddsaSigner) Sign(data []byte) ([]byte, error) {
	return ed25519.Sign(e.privateKey, data), nil
}

// EdDSASigner creates a new Signer for the EdDSA algorithm using privateKey
// as the signing key.
func EdDSASigner(privateKey ed25519.PrivateKey) Signer {
	return &eddsaSigner{privateKey: privateKey}
}

type eddsaVerifier struct {
	publicKey ed25519.PublicKey
}

func (e *eddsaVerifier) Verify(alg jwa.ID, data, signature []byte) error {
	if alg != jwa.EdDSA {
		return fmt.Errorf("%w: algorithm mismatch", ErrInvalidSignature)
	}

	if !ed25519.Verify(e.publicKey, data, signature) {
		return ErrInvalidSignature
	}
	return nil
}

// EdDSAVerifier creates a new Verifier for the EdDSA algorithm using
// publicKey as the verifying key.
func EdDSAVerifier(publicKey ed25519.PublicKey) Verifier {
	return &eddsaVerifier{publicKey: publicKey}
}

package jws

import (
	"crypto/ecdsa"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/halimath/jwx/jwa"
)

// ecdsaSigner implements a signature signer using ECDSA as defined in RFC
// 7518 section 3.4 (https://www.rfc-editor.org/rfc/rfc7518.html#section-3.4).
// The signature is the fixed-width big-endian concatenation R‖S, not the
// ASN.1 DER encoding crypto/ecdsa.Sign produces natively.
type ecdsaSigner struct {
	alg        jwa.ID
	privateKey *ecdsa.PrivateKey
	reg        jwa.Registration
}

func (e *ecdsaSigner) Alg() jwa.ID {
	return e.alg
}

func (e *ecdsaSigner) Sign(data []byte) ([]byte, error) {
	h := e.reg.Hash.New()
	h.Write(data)
	hashed := h.Sum(nil)

	r, s, err := ecdsa.Sign(rand.Reader, e.privateKey, hashed)
	if err != nil {
		return nil, err
	}

	return encodeECDSASignature(r, s, e.reg.SignatureSize), nil
}

// ECDSASigner creates a new Signer for ECDSA signatures using alg as the
// algorithm and privateKey as the signing key. privateKey's curve must
// match the curve alg's jwa.Registration requires.
func ECDSASigner(alg jwa.ID, privateKey *ecdsa.PrivateKey) (Signer, error) {
	reg, ok := jwa.Lookup(alg)
	if !ok || reg.Form != jwa.FormECDSA {
		return nil, fmt.Errorf("unsupported ECDSA signature algorithm: %s", alg)
	}
	if privateKey.Curve != reg.Curve {
		return nil, fmt.Errorf("%s requires curve %s, got %s", alg, reg.Curve.Params().Name, privateKey.Curve.Params().Name)
	}

	return &ecdsaSigner{alg: alg, privateKey: privateKey, reg: reg}, nil
}

// ES256Signer creates a Signer providing ECDSA using P-256 and SHA-256
// signatures using the given private key, which must use elliptic.P256()
// as its curve.
func ES256Signer(privateKey *ecdsa.PrivateKey) (Signer, error) {
	return ECDSASigner(jwa.ES256, privateKey)
}

// ES384Signer creates a Signer providing ECDSA using P-384 and SHA-384
// signatures using the given private key, which must use elliptic.P384()
// as its curve.
func ES384Signer(privateKey *ecdsa.PrivateKey) (Signer, error) {
	return ECDSASigner(jwa.ES384, privateKey)
}

// ES512Signer creates a Signer providing ECDSA using P-521 and SHA-512
// signatures using the given private key, which must use elliptic.P521()
// as its curve.
func ES512Signer(privateKey *ecdsa.PrivateKey) (Signer, error) {
	return ECDSASigner(jwa.ES512, privateKey)
}

// --

type ecdsaVerifier struct {
	alg       jwa.ID
	publicKey *ecdsa.PublicKey
	reg       jwa.Registration
}

func (e *ecdsaVerifier) Verify(alg jwa.ID, data, signature []byte) error {
	if alg != e.alg {
		return fmt.Errorf("%w: algorithm mismatch", ErrInvalidSignature)
	}

	if len(signature) != e.reg.SignatureSize {
		return fmt.Errorf("%w: unexpected signature length %d, want %d", ErrInvalidSignature, len(signature), e.reg.SignatureSize)
	}

	r, s := decodeECDSASignature(signature)

	h := e.reg.Hash.New()
	h.Write(data)
	hashed := h.Sum(nil)

	if !ecdsa.Verify(e.publicKey, hashed, r, s) {
		return ErrInvalidSignature
	}
	return nil
}

// ECDSAVerifier creates a new Verifier for ECDSA signatures using alg as
// the algorithm and publicKey as the verifying key.
func ECDSAVerifier(alg jwa.ID, publicKey *ecdsa.PublicKey) (Verifier, error) {
	reg, ok := jwa.Lookup(alg)
	if !ok || reg.Form != jwa.FormECDSA {
		return nil, fmt.Errorf("unsupported ECDSA signature algorithm: %s", alg)
	}
	if publicKey.Curve != reg.Curve {
		return nil, fmt.Errorf("%s requires curve %s, got %s", alg, reg.Curve.Params().Name, publicKey.Curve.Params().Name)
	}

	return &ecdsaVerifier{alg: alg, publicKey: publicKey, reg: reg}, nil
}

// ES256Verifier creates a Verifier verifying ECDSA using P-256 and SHA-256
// signatures using the given public key, which must use elliptic.P256() as
// its curve.
func ES256Verifier(publicKey *ecdsa.PublicKey) (Verifier, error) {
	return ECDSAVerifier(jwa.ES256, publicKey)
}

// ES384Verifier creates a Verifier verifying ECDSA using P-384 and SHA-384
// signatures using the given public key, which must use elliptic.P384() as
// its curve.
func ES384Verifier(publicKey *ecdsa.PublicKey) (Verifier, error) {
	return ECDSAVerifier(jwa.ES384, publicKey)
}

// ES512Verifier creates a Verifier verifying ECDSA using P-521 and SHA-512
// signatures using the given public key, which must use elliptic.P521() as
// its curve.
func ES512Verifier(publicKey *ecdsa.PublicKey) (Verifier, error) {
	return ECDSAVerifier(jwa.ES512, publicKey)
}

// --

// encodeECDSASignature concatenates r and s, each left-padded with zero
// bytes to half of size, per RFC 7518 section 3.4.
func encodeECDSASignature(r, s *big.Int, size int) []byte {
	half := size / 2
	out := make([]byte, size)

	rBytes := r.Bytes()
	copy(out[half-len(rBytes):half], rBytes)

	sBytes := s.Bytes()
	copy(out[size-len(sBytes):size], sBytes)

	return out
}

func decodeECDSASignature(signature []byte) (r, s *big.Int) {
	half := len(signature) / 2
	r = new(big.Int).SetBytes(signature[:half])
	s = new(big.Int).SetBytes(signature[half:])
	return r, s
}

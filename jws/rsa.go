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

// rsaSigner implements a signature signer using an RSASSA-PKCS1-v1_5 algorithm with
// SHA-2 based hashing as defined in RFC 7518 section 3.3
// (https://www.rfc-editor.org/rfc/rfc7518.html#section-3.3)
type rsaSigner struct {
	alg        jwa.ID
	privateKey *rsa.PrivateKey
	h          crypto.Hash
	hf         func() hash.Hash
}

func (r *rsaSigner) Alg() jwa.ID {
	return r.alg
}

func (r *rsaSigner) Sign(data []byte) ([]byte, error) {
	h := r.hf()
	h.Write(data)
	hashed := h.Sum(nil)
	return rsa.SignPKCS1v15(rand.Reader, r.privateKey, r.h, hashed)
}

// RSSigner creates a new Signer for RSASSA-PKCS1-v1_5 signatures using alg
// as the algorithm and privateKey as the signing key. If alg does not
// denote a supported RSA PKCS1v15 algorithm a non-nil error is returned.
func RSSigner(alg jwa.ID, privateKey *rsa.PrivateKey) (Signer, error) {
	switch alg {
	case jwa.RS256:
		return RS256Signer(privateKey), nil
	case jwa.RS384:
		return RS384Signer(privateKey), nil
	case jwa.RS512:
		return RS512Signer(privateKey), nil
	default:
		return nil, fmt.Errorf("unsupported RSA signature algorithm: %s", alg)
	}
}

// RS256Signer creates a new Signer using the RS256 algorithm as specified in
// RFC 7518 section 3.3
func RS256Signer(privateKey *rsa.PrivateKey) Signer {
	return &rsaSigner{
		alg:        jwa.RS256,
		privateKey: privateKey,
		h:          crypto.SHA256,
		hf:         sha256.New,
	}
}

// RS384Signer creates a new Signer using the RS384 algorithm as specified in
// RFC 7518 section 3.3
func RS384Signer(privateKey *rsa.PrivateKey) Signer {
	return &rsaSigner{
		alg:        jwa.RS384,
		privateKey: privateKey,
		h:          crypto.SHA384,
		hf:         sha512.New384,
	}
}

// RS512Signer creates a new Signer using the RS512 algorithm as specified in
// RFC 7518 section 3.3
func RS512Signer(privateKey *rsa.PrivateKey) Signer {
	return &rsaSigner{
		alg:        jwa.RS512,
		privateKey: privateKey,
		h:          crypto.SHA512,
		hf:         sha512.New,
	}
}

// --

// rsaVerifier implements a signature verifier using an RSASSA-PKCS1-v1_5 algorithm with
// SHA-2 based hashing as defined in RFC 7518 section 3.3
// (https://www.rfc-editor.org/rfc/rfc7518.html#section-3.3)
type rsaVerifier struct {
	alg       jwa.ID
	publicKey *rsa.PublicKey
	h         crypto.Hash
	hf        func() hash.Hash
}

func (r *rsaVerifier) Verify(alg jwa.ID, data, signature []byte) error {
	if alg != r.alg {
		return fmt.Errorf("%w: algorithm mismatch", ErrInvalidSignature)
	}

	h := r.hf()
	h.Write(data)
	hashed := h.Sum(nil)
	if err := rsa.VerifyPKCS1v15(r.publicKey, r.h, hashed, signature); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidSignature, err)
	}
	return nil
}

// RSVerifier creates a new Verifier for RSA based signatures using alg as the
// algorithm and publicKey as the public key. If algs does not denote a supported
// RSA algorithm (i.e. RS256, RS384 or RS512) a non-nil error is retured.
func RSVerifier(alg jwa.ID, publicKey *rsa.PublicKey) (Verifier, error) {
	switch alg {
	case jwa.RS256:
		return RS256Verifier(publicKey), nil
	case jwa.RS384:
		return RS384Verifier(publicKey), nil
	case jwa.RS512:
		return RS512Verifier(publicKey), nil
	default:
		return nil, fmt.Errorf("unsupported RSA signature algorithm: %s", alg)
	}
}

// RS256Verifier creates a Verifier for RS256 as defined in RFC 7518 section 3.3
// (https://www.rfc-editor.org/rfc/rfc7518.html#section-3.3)
func RS256Verifier(publicKey *rsa.PublicKey) Verifier {
	return &rsaVerifier{
		alg:       jwa.RS256,
		publicKey: publicKey,
		h:         crypto.SHA256,
		hf:        sha256.New,
	}
}

// RS384Verifier creates a Verifier for RS384 as defined in RFC 7518 section 3.3
// (https://www.rfc-editor.org/rfc/rfc7518.html#section-3.3)
func RS384Verifier(publicKey *rsa.PublicKey) Verifier {
	return &rsaVerifier{
		alg:       jwa.RS384,
		publicKey: publicKey,
		h:         crypto.SHA384,
		hf:        sha512.New384,
	}
}

// RS512Verifier creates a Verifier for RS512 as defined in RFC 7518 section 3.3
// (https://www.rfc-editor.org/rfc/rfc7518.html#section-3.3)
func RS512Verifier(publicKey *rsa.PublicKey) Verifier {
	return &rsaVerifier{
		alg:       jwa.RS512,
		publicKey: publicKey,
		h:         crypto.SHA512,
		hf:        sha512.New,
	}
}

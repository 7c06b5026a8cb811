package jwt

import (
	"errors"
	"fmt"

	"github.com/halimath/jwx/jwa"
	"github.com/halimath/jwx/jwk"
	"github.com/halimath/jwx/jws"
)

var (
	// ErrInvalidToken is returned by Decode when the given bytes do not
	// decode into a JWS carrying a JSON-object payload.
	ErrInvalidToken = errors.New("jwt: invalid token")

	// ErrVerificationFailed is returned by (*Token).Verify when the
	// signature check or any supplied Verifier rejects the token.
	ErrVerificationFailed = errors.New("jwt: verification failed")
)

// typHeaderValue is the conventional "typ" header value for a JWT, per
// RFC 7519 section 5.1. It is set on signing and not required on decode,
// matching how the teacher's JWS never enforced it either.
const typHeaderValue = "JWT"

// Token is an assembled, decoded JSON Web Token: a jws.JWS whose payload
// is a JSON claims object, paired with that payload already parsed into
// Claims so callers do not need to re-decode it themselves.
type Token struct {
	jws    *jws.JWS
	claims Claims
}

// JWS returns the underlying JWS, for callers needing access below the
// claims abstraction (e.g. to inspect headers or re-serialize).
func (t *Token) JWS() *jws.JWS {
	return t.jws
}

// Claims returns the token's claims.
func (t *Token) Claims() Claims {
	return t.claims
}

// Sign produces a compact-serializable Token carrying claims, signed with
// a key from keys selected by the §4.4 matching algorithm for alg.
func Sign(alg jwa.ID, keys jwk.Set, claims Claims) (*Token, error) {
	payload, err := claims.Value().Encode()
	if err != nil {
		return nil, err
	}

	header := jws.NewHeader()
	header.SetAlgorithm(alg)
	header.SetType(typHeaderValue)

	j, err := jws.Sign(payload, jws.SignRequest{
		Protected: header,
		Keys:      keys,
	})
	if err != nil {
		return nil, err
	}

	return &Token{jws: j, claims: claims}, nil
}

// Decode parses data as a JWS (in any of its three serializations) and
// interprets its payload as a JSON claims object.
func Decode(data []byte) (*Token, error) {
	j, err := jws.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}

	claims, err := UnmarshalClaims(j.Payload())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}

	return &Token{jws: j, claims: claims}, nil
}

// Verify checks t's signature against keys and then runs every supplied
// Verifier in order, stopping at the first error.
func (t *Token) Verify(keys jwk.Set, verifiers ...Verifier) error {
	if err := jws.Verify(t.jws, keys); err != nil {
		return fmt.Errorf("%w: %s", ErrVerificationFailed, err)
	}

	for _, v := range verifiers {
		if err := v.Verify(t); err != nil {
			return fmt.Errorf("%w: %s", ErrVerificationFailed, err)
		}
	}

	return nil
}

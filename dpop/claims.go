// Package dpop implements the claim schema and URI normalization rule for
// OAuth 2.0 Demonstrating Proof of Possession (DPoP) per RFC 9449: a DPoP
// proof is a JWS whose protected header carries typ="dpop+jwt" and an
// embedded "jwk" public key, and whose payload is the claim set defined
// in RFC 9449 section 4.2. Policy checks beyond structure and schema —
// whether htm/htu/nonce match the current request, whether iat falls in
// an acceptable window, whether a bound access token matches — are left
// to the caller, following the retrieved streamplace/go-dpop and
// BrettM86/coves DPoP verifiers, which likewise separate proof parsing
// from request-binding policy.
package dpop

import (
	"github.com/halimath/jwx/storage"
)

const (
	// ClaimID ("jti") is a unique identifier for the DPoP proof JWT.
	ClaimID = "jti"

	// ClaimMethod ("htm") is the HTTP method of the request to which the
	// proof is attached.
	ClaimMethod = "htm"

	// ClaimURI ("htu") is the HTTP target URI of the request, normalized
	// per NormalizeTargetURI.
	ClaimURI = "htu"

	// ClaimIssuedAt ("iat") is the time at which the proof was created.
	ClaimIssuedAt = "iat"

	// ClaimAccessTokenHash ("ath") is the base64url-encoded SHA-256 hash
	// of the ASCII encoding of the associated access token, present only
	// when the proof is bound to one.
	ClaimAccessTokenHash = "ath"

	// ClaimNonce ("nonce") is a server-provided nonce, present only once
	// the authorization server has started issuing them.
	ClaimNonce = "nonce"
)

// Claims is a view over storage.Value providing typed accessors for the
// six DPoP claims RFC 9449 section 4.2 registers, the same pattern
// jwt.Claims uses for RFC 7519's registered claims.
type Claims storage.Value

// NewClaims returns an empty, ready to use Claims.
func NewClaims() Claims {
	return Claims(storage.New())
}

// UnmarshalClaims decodes data (a JSON object, or a base64url string that
// decodes to one) into a Claims value.
func UnmarshalClaims(data []byte) (Claims, error) {
	v, err := storage.Decode(data)
	if err != nil {
		return nil, err
	}
	return Claims(v), nil
}

// Value returns the claims as their underlying storage.Value.
func (c Claims) Value() storage.Value {
	return storage.Value(c)
}

// ID returns the "jti" claim.
func (c Claims) ID() (string, bool) {
	return storage.TypedGet[string](storage.Value(c), ClaimID)
}

// SetID sets the "jti" claim.
func (c Claims) SetID(id string) {
	storage.TypedSet(storage.Value(c), ClaimID, &id)
}

// Method returns the "htm" claim.
func (c Claims) Method() (string, bool) {
	return storage.TypedGet[string](storage.Value(c), ClaimMethod)
}

// SetMethod sets the "htm" claim.
func (c Claims) SetMethod(method string) {
	storage.TypedSet(storage.Value(c), ClaimMethod, &method)
}

// URI returns the "htu" claim as stored, already normalized if it was
// written via SetURI.
func (c Claims) URI() (string, bool) {
	return storage.TypedGet[string](storage.Value(c), ClaimURI)
}

// SetURI normalizes uri per NormalizeTargetURI and stores it under "htu".
// It returns ErrInvalidTargetURI if uri does not parse as an absolute URI.
func (c Claims) SetURI(uri string) error {
	normalized, ok := NormalizeTargetURI(uri)
	if !ok {
		return ErrInvalidTargetURI
	}
	storage.TypedSet(storage.Value(c), ClaimURI, &normalized)
	return nil
}

// IssuedAt returns the "iat" claim.
func (c Claims) IssuedAt() (storage.NumericDate, bool) {
	return storage.TypedGet[storage.NumericDate](storage.Value(c), ClaimIssuedAt)
}

// SetIssuedAt sets the "iat" claim.
func (c Claims) SetIssuedAt(iat storage.NumericDate) {
	storage.TypedSet(storage.Value(c), ClaimIssuedAt, &iat)
}

// AccessTokenHash returns the "ath" claim: the base64url-encoded SHA-256
// digest of the bound access token, as produced by HashAccessToken.
func (c Claims) AccessTokenHash() (string, bool) {
	return storage.TypedGet[string](storage.Value(c), ClaimAccessTokenHash)
}

// SetAccessTokenHash sets the "ath" claim to the already base64url-encoded
// hash. Callers binding a proof to an access token should pass
// HashAccessToken(token).
func (c Claims) SetAccessTokenHash(hash string) {
	storage.TypedSet(storage.Value(c), ClaimAccessTokenHash, &hash)
}

// Nonce returns the "nonce" claim.
func (c Claims) Nonce() (string, bool) {
	return storage.TypedGet[string](storage.Value(c), ClaimNonce)
}

// SetNonce sets the "nonce" claim.
func (c Claims) SetNonce(nonce string) {
	storage.TypedSet(storage.Value(c), ClaimNonce, &nonce)
}

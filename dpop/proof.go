package dpop

import (
	"fmt"
	"time"

	"github.com/halimath/jwx/internal/uuidfmt"
	"github.com/halimath/jwx/jwa"
	"github.com/halimath/jwx/jwk"
	"github.com/halimath/jwx/jws"
	"github.com/halimath/jwx/storage"
)

// typeHeaderValue is the "typ" header value RFC 9449 section 4.2 requires
// on every DPoP proof.
const typeHeaderValue = "dpop+jwt"

// Proof is a decoded and structurally validated DPoP proof: a JWS whose
// protected header embeds the public key (jwk) that signed it and whose
// payload is a DPoP Claims set.
type Proof struct {
	jws    *jws.JWS
	claims Claims
	jwk    jwk.Key
}

// JWS returns the underlying JWS.
func (p *Proof) JWS() *jws.JWS {
	return p.jws
}

// Claims returns the proof's DPoP claim set.
func (p *Proof) Claims() Claims {
	return p.claims
}

// JWK returns the public key embedded in the proof's protected header.
func (p *Proof) JWK() jwk.Key {
	return p.jwk
}

// Request describes a DPoP proof to produce.
type Request struct {
	// Method is the HTTP method of the request this proof is attached
	// to, stored verbatim in "htm" (RFC 9449 recommends uppercase).
	Method string

	// URI is the HTTP target URI of the request; it is normalized per
	// NormalizeTargetURI before being stored in "htu".
	URI string

	// Key is the signing key; it must be an asymmetric private key
	// (*jwk.ECDSAPrivateKey, *jwk.RSAPrivateKey or *jwk.OKPPrivateKey).
	Key jwk.Key

	// Algorithm selects the signature algorithm; it must resolve to an
	// asymmetric jwa.Registration (symmetric HMAC algorithms and "none"
	// are not valid DPoP proof algorithms).
	Algorithm jwa.ID

	// ID, if non-empty, is stored as "jti" verbatim. A fresh random
	// UUIDv4 is generated otherwise, following the jti generation shown
	// in the retrieved go-dpop and coves examples.
	ID string

	// IssuedAt, if non-zero, is stored as "iat". time.Now() is used
	// otherwise.
	IssuedAt time.Time

	// Nonce, if non-empty, is stored as "nonce".
	Nonce string

	// AccessToken, if non-empty, is hashed via HashAccessToken and stored
	// as "ath", binding the proof to that access token.
	AccessToken string
}

// Generate produces a signed DPoP proof for req.
func Generate(req Request) (*Proof, error) {
	if req.Method == "" {
		return nil, fmt.Errorf("%w: method is required", ErrInvalidProof)
	}

	reg, ok := jwa.Lookup(req.Algorithm)
	if !ok || reg.KeyType == jwa.KeyTypeSymmetric {
		return nil, fmt.Errorf("%w: %s is not a supported asymmetric DPoP algorithm", ErrInvalidProof, req.Algorithm)
	}

	pub, err := publicJWK(req.Key)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingJWK, err)
	}

	id := req.ID
	if id == "" {
		id = uuidfmt.New()
	}

	issuedAt := req.IssuedAt
	if issuedAt.IsZero() {
		issuedAt = time.Now()
	}

	claims := NewClaims()
	claims.SetID(id)
	claims.SetMethod(req.Method)
	if err := claims.SetURI(req.URI); err != nil {
		return nil, err
	}
	claims.SetIssuedAt(storage.NumericDate(issuedAt))
	if req.Nonce != "" {
		claims.SetNonce(req.Nonce)
	}
	if req.AccessToken != "" {
		claims.SetAccessTokenHash(HashAccessToken(req.AccessToken))
	}

	payload, err := claims.Value().Encode()
	if err != nil {
		return nil, err
	}

	header := jws.NewHeader()
	header.SetType(typeHeaderValue)
	header.SetAlgorithm(req.Algorithm)
	if err := header.SetJWK(pub); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingJWK, err)
	}

	j, err := jws.Sign(payload, jws.SignRequest{
		Protected: header,
		Keys:      jwk.Set{req.Key},
	})
	if err != nil {
		return nil, err
	}

	return &Proof{jws: j, claims: claims, jwk: pub}, nil
}

// Verify decodes data as a DPoP proof and checks everything the library
// can check without request context: exactly one signature slot, a
// "dpop+jwt" typ header, an asymmetric algorithm, a parseable embedded
// jwk that the signature actually verifies against, and presence of the
// jti/htm/htu/iat claims RFC 9449 section 4.2 requires. Anything tied to
// the current request — htm/htu matching, nonce, time window, access
// token binding — is left to the supplied predicates, run in order after
// structural validation succeeds.
func Verify(data []byte, predicates ...Predicate) (*Proof, error) {
	j, err := jws.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidProof, err)
	}

	if j.NumSignatures() != 1 {
		return nil, fmt.Errorf("%w: a DPoP proof carries exactly one signature", ErrInvalidProof)
	}

	header := j.ProtectedHeader(0)

	typ, ok := header.Type()
	if !ok || typ != typeHeaderValue {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProof, ErrUnsupportedType)
	}

	alg, ok := header.Algorithm()
	if !ok {
		return nil, fmt.Errorf("%w: missing alg", ErrInvalidProof)
	}

	reg, ok := jwa.Lookup(alg)
	if !ok || reg.KeyType == jwa.KeyTypeSymmetric {
		return nil, fmt.Errorf("%w: %s is not a supported asymmetric DPoP algorithm", ErrInvalidProof, alg)
	}

	pub, ok := header.JWK()
	if !ok {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProof, ErrMissingJWK)
	}

	if err := jws.Verify(j, jwk.Set{pub}); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidProof, err)
	}

	claims, err := UnmarshalClaims(j.Payload())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidProof, err)
	}

	if _, ok := claims.ID(); !ok {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProof, ErrMissingClaims)
	}
	if _, ok := claims.Method(); !ok {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProof, ErrMissingClaims)
	}
	if _, ok := claims.URI(); !ok {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProof, ErrMissingClaims)
	}
	if _, ok := claims.IssuedAt(); !ok {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProof, ErrMissingClaims)
	}

	proof := &Proof{jws: j, claims: claims, jwk: pub}

	for _, predicate := range predicates {
		if err := predicate(proof); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidProof, err)
		}
	}

	return proof, nil
}

// publicJWK extracts the jwk.Key to embed in a proof's protected header:
// the public counterpart of a private key, or the key itself if it is
// already public.
func publicJWK(key jwk.Key) (jwk.Key, error) {
	switch k := key.(type) {
	case *jwk.ECDSAPrivateKey:
		return k.Public(), nil
	case *jwk.RSAPrivateKey:
		return k.Public(), nil
	case *jwk.OKPPrivateKey:
		pub := k.Public()
		if pub == nil {
			return nil, fmt.Errorf("key has no public counterpart")
		}
		return pub, nil
	case *jwk.ECDSAPublicKey, *jwk.RSAPublicKey, *jwk.OKPPublicKey:
		return key, nil
	default:
		return nil, fmt.Errorf("key of type %T cannot produce a DPoP proof", key)
	}
}

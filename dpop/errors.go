package dpop

import "errors"

var (
	// ErrInvalidProof is returned when a proof fails structural or schema
	// validation: wrong "typ", missing registered claims, or a signature
	// that does not verify. It wraps the more specific sentinel where one
	// applies, mirroring the retrieved go-dpop package's own
	// ErrInvalidProof/ErrMissingClaims pairing.
	ErrInvalidProof = errors.New("dpop: invalid proof")

	// ErrMissingClaims is returned when one of the required claims (jti,
	// htm, htu, iat) is absent from the payload.
	ErrMissingClaims = errors.New("dpop: missing required claims")

	// ErrUnsupportedType is returned when the protected header's "typ"
	// is not "dpop+jwt".
	ErrUnsupportedType = errors.New("dpop: unsupported typ header")

	// ErrMissingJWK is returned when the protected header carries no
	// embeddable "jwk" public key, or it fails to parse as one.
	ErrMissingJWK = errors.New("dpop: missing or invalid jwk header")

	// ErrInvalidTargetURI is returned by Claims.SetURI when the given
	// string does not parse as an absolute URI.
	ErrInvalidTargetURI = errors.New("dpop: invalid target URI")

	// ErrReplayed is returned by ReplayGuard.Check when a jti has already
	// been seen within its retention window.
	ErrReplayed = errors.New("dpop: proof replayed")
)

package jwt

import (
	"fmt"
	"time"
)

// Verifier defines the interface for types that check some property of a
// decoded token beyond its signature, such as a registered claim.
type Verifier interface {
	Verify(token *Token) error
}

// VerifierFunc is a convenience type that wraps a single function as a
// Verifier.
type VerifierFunc func(token *Token) error

func (f VerifierFunc) Verify(token *Token) error {
	return f(token)
}

// --

// Issuer returns a Verifier that requires the "iss" claim to equal
// issuer.
func Issuer(issuer string) Verifier {
	return VerifierFunc(func(token *Token) error {
		iss, ok := token.claims.Issuer()
		if !ok || iss != issuer {
			return fmt.Errorf("invalid issuer: %q", iss)
		}
		return nil
	})
}

// Audience returns a Verifier that requires the "aud" claim to contain
// audience.
func Audience(audience string) Verifier {
	return VerifierFunc(func(token *Token) error {
		aud, ok := token.claims.Audience()
		if ok {
			for _, a := range aud {
				if a == audience {
					return nil
				}
			}
		}
		return fmt.Errorf("missing audience: %s", audience)
	})
}

// NotBefore returns a Verifier that requires the current time, shifted
// forward by leeway to accommodate clock skew, to be at or after the
// "nbf" claim. A token without an "nbf" claim is rejected.
func NotBefore(leeway time.Duration) Verifier {
	return VerifierFunc(func(token *Token) error {
		nbf, ok := token.claims.NotBefore()
		if !ok {
			return fmt.Errorf("token is missing nbf")
		}

		now := time.Now().Add(leeway)
		if nbf.Time().After(now) {
			return fmt.Errorf("token used before nbf: %s", nbf.Time().Format(time.RFC3339))
		}

		return nil
	})
}

// ExpirationTime returns a Verifier that requires the current time,
// shifted forward by leeway, to be before the "exp" claim. A token
// without an "exp" claim is rejected.
func ExpirationTime(leeway time.Duration) Verifier {
	return VerifierFunc(func(token *Token) error {
		exp, ok := token.claims.ExpirationTime()
		if !ok {
			return fmt.Errorf("token is missing exp")
		}

		now := time.Now().Add(leeway)
		if exp.Time().Before(now) {
			return fmt.Errorf("token used after exp: %s", exp.Time().Format(time.RFC3339))
		}

		return nil
	})
}

// MaxAge returns a Verifier that requires the "iat" claim to be no older
// than maxAge. A token without an "iat" claim is rejected.
func MaxAge(maxAge time.Duration) Verifier {
	return VerifierFunc(func(token *Token) error {
		iat, ok := token.claims.IssuedAt()
		if !ok {
			return fmt.Errorf("token is missing iat")
		}

		if iat.Time().Before(time.Now().Add(-maxAge)) {
			return fmt.Errorf("token too old: %s", iat.Time().Format(time.RFC3339))
		}

		return nil
	})
}

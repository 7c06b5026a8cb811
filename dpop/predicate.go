package dpop

import (
	"fmt"
	"time"
)

// Predicate checks one request-bound property of a structurally valid
// Proof, the same shape jwt.Verifier uses for registered-claim checks.
type Predicate func(p *Proof) error

// Method returns a Predicate requiring the "htm" claim to equal expected.
func Method(expected string) Predicate {
	return func(p *Proof) error {
		htm, ok := p.claims.Method()
		if !ok || htm != expected {
			return fmt.Errorf("htm mismatch: got %q, want %q", htm, expected)
		}
		return nil
	}
}

// TargetURI returns a Predicate requiring the "htu" claim to equal the
// normalized form of expected.
func TargetURI(expected string) Predicate {
	return func(p *Proof) error {
		normalized, ok := NormalizeTargetURI(expected)
		if !ok {
			return fmt.Errorf("invalid expected target URI: %s", expected)
		}
		htu, ok := p.claims.URI()
		if !ok || htu != normalized {
			return fmt.Errorf("htu mismatch: got %q, want %q", htu, normalized)
		}
		return nil
	}
}

// Nonce returns a Predicate requiring the "nonce" claim to equal expected.
func Nonce(expected string) Predicate {
	return func(p *Proof) error {
		nonce, ok := p.claims.Nonce()
		if !ok || nonce != expected {
			return fmt.Errorf("nonce mismatch")
		}
		return nil
	}
}

// MaxAge returns a Predicate requiring the "iat" claim to be no older
// than maxAge.
func MaxAge(maxAge time.Duration) Predicate {
	return func(p *Proof) error {
		iat, ok := p.claims.IssuedAt()
		if !ok {
			return fmt.Errorf("missing iat")
		}
		if iat.Time().Before(time.Now().Add(-maxAge)) {
			return fmt.Errorf("proof too old: %s", iat.Time().Format(time.RFC3339))
		}
		return nil
	}
}

// AccessTokenBinding returns a Predicate requiring the "ath" claim to
// equal HashAccessToken(token), binding the proof to that access token
// per RFC 9449 section 7.
func AccessTokenBinding(token string) Predicate {
	expected := HashAccessToken(token)
	return func(p *Proof) error {
		ath, ok := p.claims.AccessTokenHash()
		if !ok || ath != expected {
			return fmt.Errorf("ath mismatch")
		}
		return nil
	}
}

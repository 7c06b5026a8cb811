package jwt

import (
	"github.com/halimath/jwx/storage"
)

const (
	// The "sub" (subject) claim identifies the principal that is the
	// subject of the JWT.  The claims in a JWT are normally statements
	// about the subject.  The subject value MUST either be scoped to be
	// locally unique in the context of the issuer or be globally unique.
	// The processing of this claim is generally application specific.  The
	// "sub" value is a case-sensitive string containing a StringOrURI
	// value.  Use of this claim is OPTIONAL.
	// (https://datatracker.ietf.org/doc/html/rfc7519#section-4.1.2)
	ClaimSubject = "sub"

	// The "iss" (issuer) claim identifies the principal that issued the
	// JWT.  The processing of this claim is generally application specific.
	// The "iss" value is a case-sensitive string containing a StringOrURI
	// value.  Use of this claim is OPTIONAL.
	// (https://datatracker.ietf.org/doc/html/rfc7519#section-4.1.1)
	ClaimIssuer = "iss"

	// The "aud" (audience) claim identifies the recipients that the JWT is
	// intended for.  In the general case, the "aud" value is an array of
	// case-sensitive strings, each containing a StringOrURI value. In the
	// special case when the JWT has one audience, the "aud" value MAY be a
	// single case-sensitive string. Use of this claim is OPTIONAL.
	// (https://datatracker.ietf.org/doc/html/rfc7519#section-4.1.3)
	ClaimAudience = "aud"

	// The "exp" (expiration time) claim identifies the expiration time on
	// or after which the JWT MUST NOT be accepted for processing. Its
	// value MUST be a number containing a NumericDate value. Use of this
	// claim is OPTIONAL.
	// (https://datatracker.ietf.org/doc/html/rfc7519#section-4.1.4)
	ClaimExpirationTime = "exp"

	// The "nbf" (not before) claim identifies the time before which the
	// JWT MUST NOT be accepted for processing. Its value MUST be a number
	// containing a NumericDate value. Use of this claim is OPTIONAL.
	// (https://datatracker.ietf.org/doc/html/rfc7519#section-4.1.5)
	ClaimNotBefore = "nbf"

	// The "iat" (issued at) claim identifies the time at which the JWT was
	// issued. Its value MUST be a number containing a NumericDate value.
	// Use of this claim is OPTIONAL.
	// (https://datatracker.ietf.org/doc/html/rfc7519#section-4.1.6)
	ClaimIssuedAt = "iat"

	// The "jti" (JWT ID) claim provides a unique identifier for the JWT,
	// which can be used to prevent the JWT from being replayed. Use of
	// this claim is OPTIONAL.
	// (https://datatracker.ietf.org/doc/html/rfc7519#section-4.1.7)
	ClaimID = "jti"

	// ClaimLabel ("lbl") is a library-defined, non-registered claim
	// carrying a free-text, human-readable label, such as a
	// consent-screen display string. It is localizable: a caller may
	// store "lbl#de-DE" alongside "lbl" and have GetLocalizedLabel
	// resolve the best match for the process-wide locale preference.
	ClaimLabel = "lbl"
)

// Claims is a view over storage.Value providing typed accessors for the
// registered JWT claims (RFC 7519 section 4.1) plus the library-defined
// label claim. The underlying storage.Value still accepts any other
// claim name; Claims only adds convenience for the ones this package
// knows about.
type Claims storage.Value

// NewClaims returns an empty, ready to use Claims.
func NewClaims() Claims {
	return Claims(storage.New())
}

// UnmarshalClaims decodes data (a JSON object, or a base64url string that
// decodes to one; see storage.Decode) into a Claims value.
func UnmarshalClaims(data []byte) (Claims, error) {
	v, err := storage.Decode(data)
	if err != nil {
		return nil, err
	}
	return Claims(v), nil
}

// Value returns the claims as their underlying storage.Value, for callers
// needing the generic map-like operations (Merge, Filter, Equal, ...).
func (c Claims) Value() storage.Value {
	return storage.Value(c)
}

// Has reports whether claim is present in c.
func (c Claims) Has(claim string) bool {
	return storage.Value(c).Contains(claim)
}

// Issuer returns the "iss" claim.
func (c Claims) Issuer() (string, bool) {
	return storage.TypedGet[string](storage.Value(c), ClaimIssuer)
}

// SetIssuer sets the "iss" claim.
func (c Claims) SetIssuer(issuer string) {
	storage.TypedSet(storage.Value(c), ClaimIssuer, &issuer)
}

// Subject returns the "sub" claim.
func (c Claims) Subject() (string, bool) {
	return storage.TypedGet[string](storage.Value(c), ClaimSubject)
}

// SetSubject sets the "sub" claim.
func (c Claims) SetSubject(subject string) {
	storage.TypedSet(storage.Value(c), ClaimSubject, &subject)
}

// Audience returns the "aud" claim, normalizing both the single-string
// and array-of-strings wire forms RFC 7519 section 4.1.3 allows into a
// slice.
func (c Claims) Audience() ([]string, bool) {
	v, ok := storage.Value(c).Get(ClaimAudience)
	if !ok {
		return nil, false
	}

	switch val := v.(type) {
	case string:
		return []string{val}, true
	case []string:
		return val, true
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

// SetAudience sets the "aud" claim. A single-element slice is stored as
// an array; callers wanting the single-string wire form should Set it
// directly via c.Value().Set(ClaimAudience, "...").
func (c Claims) SetAudience(audience []string) {
	storage.Value(c).Set(ClaimAudience, audience)
}

// ExpirationTime returns the "exp" claim as a storage.NumericDate.
func (c Claims) ExpirationTime() (storage.NumericDate, bool) {
	return storage.TypedGet[storage.NumericDate](storage.Value(c), ClaimExpirationTime)
}

// SetExpirationTime sets the "exp" claim.
func (c Claims) SetExpirationTime(exp storage.NumericDate) {
	storage.TypedSet(storage.Value(c), ClaimExpirationTime, &exp)
}

// NotBefore returns the "nbf" claim as a storage.NumericDate.
func (c Claims) NotBefore() (storage.NumericDate, bool) {
	return storage.TypedGet[storage.NumericDate](storage.Value(c), ClaimNotBefore)
}

// SetNotBefore sets the "nbf" claim.
func (c Claims) SetNotBefore(nbf storage.NumericDate) {
	storage.TypedSet(storage.Value(c), ClaimNotBefore, &nbf)
}

// IssuedAt returns the "iat" claim as a storage.NumericDate.
func (c Claims) IssuedAt() (storage.NumericDate, bool) {
	return storage.TypedGet[storage.NumericDate](storage.Value(c), ClaimIssuedAt)
}

// SetIssuedAt sets the "iat" claim.
func (c Claims) SetIssuedAt(iat storage.NumericDate) {
	storage.TypedSet(storage.Value(c), ClaimIssuedAt, &iat)
}

// ID returns the "jti" claim.
func (c Claims) ID() (string, bool) {
	return storage.TypedGet[string](storage.Value(c), ClaimID)
}

// SetID sets the "jti" claim.
func (c Claims) SetID(id string) {
	storage.TypedSet(storage.Value(c), ClaimID, &id)
}

// Label returns the base, non-localized "lbl" claim.
func (c Claims) Label() (string, bool) {
	return storage.TypedGet[string](storage.Value(c), ClaimLabel)
}

// SetLabel sets the base "lbl" claim.
func (c Claims) SetLabel(label string) {
	storage.TypedSet(storage.Value(c), ClaimLabel, &label)
}

// GetLocalizedLabel returns the "lbl" claim in the variant best matching
// the process-wide locale preference set via localefmt.SetPreference,
// falling back to the base "lbl" claim.
func (c Claims) GetLocalizedLabel() (string, bool) {
	return storage.GetLocalized[string](storage.Value(c), ClaimLabel)
}

// SetLocalizedLabel sets the "lbl" claim for the given BCP-47 locale,
// storing it under the locale-suffixed key "lbl#<locale>".
func (c Claims) SetLocalizedLabel(locale storage.Locale, label string) {
	storage.TypedSet(storage.Value(c), ClaimLabel+"#"+string(locale), &label)
}

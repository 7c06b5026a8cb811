package dpop

import (
	"crypto/sha256"
	"net/url"

	"github.com/halimath/jwx/internal/encoding"
)

// NormalizeTargetURI implements the "htu" normalization rule of RFC 9449
// section 4.2, following RFC 3986 section 6.2.3: the query and fragment
// components are removed, an empty path is replaced with "/", and the
// scheme, userinfo, host and port are preserved verbatim. It returns
// ok=false if uri does not parse as an absolute URI, matching the
// query-and-fragment stripping the retrieved streamplace/go-dpop and
// BrettM86/coves DPoP implementations perform before comparing htu to the
// current request's URL.
func NormalizeTargetURI(uri string) (normalized string, ok bool) {
	u, err := url.Parse(uri)
	if err != nil || !u.IsAbs() {
		return "", false
	}

	u.RawQuery = ""
	u.Fragment = ""
	u.RawFragment = ""

	if u.Path == "" {
		u.Path = "/"
	}

	return u.String(), true
}

// HashAccessToken returns the "ath" claim value for token: the
// base64url-encoded (no padding) SHA-256 digest of the token's ASCII
// bytes, per RFC 9449 section 4.2.
func HashAccessToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return encoding.Encode(sum[:])
}

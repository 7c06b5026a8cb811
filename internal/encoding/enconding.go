// Package encoding defines function to encode and decode binary data
// in base64url format with no padding as specified in RFC 7515 section 2
// (https://datatracker.ietf.org/doc/html/rfc7515#section-2)
package encoding

import (
	"encoding/base64"
	"strings"
)

var (
	enc = base64.URLEncoding.WithPadding(base64.NoPadding)
)

// Encode encodes the given data using base64URL encoding with no padding.
func Encode(data []byte) string {
	return enc.EncodeToString(data)
}

// Decode decodes the given base64URL encoded string. Missing padding is
// tolerated; a string carrying explicit "=" padding is tolerated as well
// since some JWK producers emit it despite RFC 7515 forbidding it.
func Decode(data string) ([]byte, error) {
	return enc.DecodeString(strings.TrimRight(data, "="))
}

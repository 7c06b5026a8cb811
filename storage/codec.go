package storage

import (
	"encoding/json"
	"time"

	"github.com/halimath/jwx/internal/encoding"
	"github.com/halimath/jwx/internal/localefmt"
	"github.com/halimath/jwx/internal/uuidfmt"
)

// Bytes is a byte slice that reads and writes as base64url (no padding)
// per RFC 7515 section 2, instead of encoding/json's default standard
// base64 treatment of []byte.
type Bytes []byte

// NumericDate is a point in time encoded as the number of seconds since the
// Unix epoch, per RFC 7519 section 2.
type NumericDate time.Time

// Time returns n as a time.Time.
func (n NumericDate) Time() time.Time {
	return time.Time(n)
}

// Locale is a BCP-47 language tag, e.g. "en-US".
type Locale string

// TimeZone is an IANA time zone identifier, e.g. "Europe/Berlin".
type TimeZone string

// UUID is a lowercase, hyphenated universally unique identifier.
type UUID string

// TypedGet reads the value stored under key and coerces it into T. The
// coercion order is: (1) the raw value already has type T, (2) T is a
// JOSE field type (Bytes, NumericDate, Locale, TimeZone, UUID) with a
// dedicated decoder, (3) a generic JSON re-encode/decode of the raw value
// into T. If every step fails, or key is absent, TypedGet returns the zero
// value and false; it never panics or returns an error.
func TypedGet[T any](v Value, key string) (T, bool) {
	var zero T

	raw, ok := v.Get(key)
	if !ok {
		return zero, false
	}

	if t, ok := raw.(T); ok {
		return t, true
	}

	if t, ok := joseDecode[T](raw); ok {
		return t, true
	}

	return genericRoundTrip[T](raw)
}

// TypedSet writes value under key, encoding it with the JOSE field rules
// if T is a registered JOSE field type, or the generic JSON encoding
// otherwise. A nil value removes the key. A non-nil value that is an
// empty slice or array also removes the key.
func TypedSet[T any](v Value, key string, value *T) {
	if value == nil {
		v.Remove(key)
		return
	}

	if isEmptyList(*value) {
		v.Remove(key)
		return
	}

	if encoded, ok := joseEncode(*value); ok {
		v.Set(key, encoded)
		return
	}

	v.Set(key, *value)
}

// joseDecode applies the JOSE field decoding rule for T, if any is
// registered. It distinguishes T by type-asserting a pointer to the zero
// value, since Go generics offer no direct specialization on T.
func joseDecode[T any](raw any) (T, bool) {
	var zero T

	switch p := any(&zero).(type) {
	case *Bytes:
		s, ok := raw.(string)
		if !ok {
			return zero, false
		}
		b, err := encoding.Decode(s)
		if err != nil {
			return zero, false
		}
		*p = Bytes(b)
		return zero, true

	case *NumericDate:
		seconds, ok := numberToFloat(raw)
		if !ok {
			return zero, false
		}
		whole := int64(seconds)
		frac := seconds - float64(whole)
		*p = NumericDate(time.Unix(whole, int64(frac*1e9)).UTC())
		return zero, true

	case *Locale:
		s, ok := raw.(string)
		if !ok {
			return zero, false
		}
		tag, ok := localefmt.Format(s)
		if !ok {
			return zero, false
		}
		*p = Locale(tag)
		return zero, true

	case *TimeZone:
		s, ok := raw.(string)
		if !ok {
			return zero, false
		}
		if _, err := time.LoadLocation(s); err != nil {
			return zero, false
		}
		*p = TimeZone(s)
		return zero, true

	case *UUID:
		s, ok := raw.(string)
		if !ok {
			return zero, false
		}
		canon, ok := uuidfmt.Format(s)
		if !ok {
			return zero, false
		}
		*p = UUID(canon)
		return zero, true

	default:
		return zero, false
	}
}

// joseEncode applies the JOSE field encoding rule for value, if one is
// registered for its concrete type.
func joseEncode(value any) (any, bool) {
	switch val := value.(type) {
	case Bytes:
		return encoding.Encode(val), true
	case NumericDate:
		t := val.Time()
		if t.Nanosecond() == 0 {
			return t.Unix(), true
		}
		return float64(t.UnixNano()) / 1e9, true
	case Locale:
		tag, ok := localefmt.Format(string(val))
		if !ok {
			return string(val), true
		}
		return tag, true
	case TimeZone:
		return string(val), true
	case UUID:
		canon, ok := uuidfmt.Format(string(val))
		if !ok {
			return string(val), true
		}
		return canon, true
	default:
		return nil, false
	}
}

// numberToFloat coerces the JSON dynamic number representations
// (float64 from encoding/json, or json.Number) into a float64.
func numberToFloat(raw any) (float64, bool) {
	switch n := raw.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// genericRoundTrip marshals raw to JSON and unmarshals it into T, the
// fallback coercion step for types with no dedicated JOSE decoder (plain
// strings, numbers, structs, slices of strings, and so on).
func genericRoundTrip[T any](raw any) (T, bool) {
	var zero T

	b, err := json.Marshal(raw)
	if err != nil {
		return zero, false
	}

	var t T
	if err := json.Unmarshal(b, &t); err != nil {
		return zero, false
	}

	return t, true
}

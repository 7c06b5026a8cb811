// Package jws implements JSON Web Signatures as defined in RFC 7515
// (https://datatracker.ietf.org/doc/html/rfc7515): compact, flattened JSON
// and general JSON serializations, one or more signatures per payload, and
// protected/unprotected headers. Header and payload bytes are preserved
// exactly as decoded so that re-verifying or re-serializing a parsed JWS
// never reconstructs the signing input from re-encoded JSON, which would
// silently invalidate the signature.
package jws

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/halimath/jwx/internal/encoding"
	"github.com/halimath/jwx/jwa"
	"github.com/halimath/jwx/jwk"
)

// Error taxonomy. Each is returned wrapped via fmt.Errorf("%w: ...") so
// callers can match with errors.Is while still getting a specific message.
var (
	// ErrMalformedInput is returned when bytes cannot be parsed as any of
	// the three recognized JWS serializations.
	ErrMalformedInput = errors.New("jws: malformed input")

	// ErrAlgorithmMissing is returned when neither the protected nor the
	// unprotected header of a signature slot carries an "alg" parameter.
	ErrAlgorithmMissing = errors.New("jws: algorithm missing")

	// ErrUnknownAlgorithm is returned when "alg" names an identifier with
	// no jwa.Registration.
	ErrUnknownAlgorithm = errors.New("jws: unknown algorithm")

	// ErrKeyNotFound is returned when no supplied key matches a
	// signature's required (algorithm, kid) pair.
	ErrKeyNotFound = errors.New("jws: key not found")

	// ErrOperationNotAllowed is returned when verification is attempted
	// against alg=none, or a serialization is requested that the JWS's
	// shape cannot support (e.g. Compact with more than one signature).
	ErrOperationNotAllowed = errors.New("jws: operation not allowed")

	// ErrAuthenticationFailure is returned when a signature does not
	// verify, or when a JWS carries zero signature slots.
	ErrAuthenticationFailure = errors.New("jws: authentication failure")

	// ErrUnsupported is returned when a key does not implement the
	// algorithm it is asked to sign or verify with.
	ErrUnsupported = errors.New("jws: unsupported algorithm for key")
)

// Header JOSE header parameter names this package interprets directly; any
// other key is carried through untouched.
const (
	headerAlg = "alg"
	headerKID = "kid"
	headerTyp = "typ"
	headerCty = "cty"
	headerJWK = "jwk"
)

// Header is a JOSE header: an open map from parameter name to JSON value,
// with typed accessors for the parameters this package and its callers
// (jwt, dpop) interpret. It is the protected or unprotected half of a
// single signature slot.
type Header map[string]any

// NewHeader returns an empty, ready to use Header.
func NewHeader() Header {
	return make(Header)
}

// Get returns the raw value stored under key and whether key is present.
func (h Header) Get(key string) (any, bool) {
	v, ok := h[key]
	return v, ok
}

// Set stores value under key.
func (h Header) Set(key string, value any) {
	h[key] = value
}

// Algorithm returns the "alg" parameter.
func (h Header) Algorithm() (jwa.ID, bool) {
	s, ok := stringParam(h, headerAlg)
	return jwa.ID(s), ok
}

// SetAlgorithm sets the "alg" parameter.
func (h Header) SetAlgorithm(alg jwa.ID) {
	h.Set(headerAlg, string(alg))
}

// KeyID returns the "kid" parameter.
func (h Header) KeyID() (string, bool) {
	return stringParam(h, headerKID)
}

// SetKeyID sets the "kid" parameter.
func (h Header) SetKeyID(kid string) {
	h.Set(headerKID, kid)
}

// Type returns the "typ" parameter, e.g. "JWT" or "dpop+jwt".
func (h Header) Type() (string, bool) {
	return stringParam(h, headerTyp)
}

// SetType sets the "typ" parameter.
func (h Header) SetType(typ string) {
	h.Set(headerTyp, typ)
}

// ContentType returns the "cty" parameter.
func (h Header) ContentType() (string, bool) {
	return stringParam(h, headerCty)
}

// SetContentType sets the "cty" parameter.
func (h Header) SetContentType(cty string) {
	h.Set(headerCty, cty)
}

// JWK decodes the "jwk" parameter, the public key corresponding to the key
// used to sign, as a jwk.Key.
func (h Header) JWK() (jwk.Key, bool) {
	raw, ok := h.Get(headerJWK)
	if !ok {
		return nil, false
	}

	b, err := json.Marshal(raw)
	if err != nil {
		return nil, false
	}

	k, err := jwk.UnmarshalKey(b)
	if err != nil {
		return nil, false
	}

	return k, true
}

// SetJWK embeds key's public JWK representation under the "jwk" parameter.
// A private EC, RSA or OKP key is reduced to its public counterpart first;
// any other key (such as a symmetric key) is embedded as given.
func (h Header) SetJWK(key jwk.Key) error {
	switch k := key.(type) {
	case *jwk.ECDSAPrivateKey:
		key = k.Public()
	case *jwk.RSAPrivateKey:
		key = k.Public()
	case *jwk.OKPPrivateKey:
		pub := k.Public()
		if pub == nil {
			return fmt.Errorf("key has no public counterpart")
		}
		key = pub
	}

	b, err := jwk.MarshalKey(key)
	if err != nil {
		return err
	}

	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}

	h.Set(headerJWK, m)
	return nil
}

func stringParam(h Header, key string) (string, bool) {
	if h == nil {
		return "", false
	}
	v, ok := h[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func isEmpty(h Header) bool {
	return len(h) == 0
}

// --

// signature is one (protected header, optional unprotected header,
// signature bytes) triple, preserving the exact base64url segments a
// decoded JWS carried so the signing input can be reconstructed without
// re-encoding JSON.
type signature struct {
	protected    Header
	protectedRaw string
	unprotected  Header
	bytes        []byte
	bytesRaw     string
}

// JWS is a JOSE JSON Web Signature: a payload plus one or more signature
// slots. Constructed only via Sign or Decode; once constructed its
// protected bytes and signatures are never mutated, since mutating a
// signed field would silently invalidate the signature it carries.
type JWS struct {
	payload    []byte
	payloadRaw string
	signatures []signature
}

// Payload returns a copy of j's payload bytes.
func (j *JWS) Payload() []byte {
	b := make([]byte, len(j.payload))
	copy(b, j.payload)
	return b
}

// NumSignatures returns the number of signature slots j carries.
func (j *JWS) NumSignatures() int {
	return len(j.signatures)
}

// ProtectedHeader returns the protected header of signature slot i, or nil
// if that slot carries no protected header.
func (j *JWS) ProtectedHeader(i int) Header {
	return j.signatures[i].protected
}

// UnprotectedHeader returns the unprotected header of signature slot i, or
// nil if that slot carries no unprotected header.
func (j *JWS) UnprotectedHeader(i int) Header {
	return j.signatures[i].unprotected
}

// Signature returns the raw signature bytes of slot i.
func (j *JWS) Signature(i int) []byte {
	b := make([]byte, len(j.signatures[i].bytes))
	copy(b, j.signatures[i].bytes)
	return b
}

// resolveAlgorithm implements the fallback order spec.md §4.6.3/4.6.4
// require: protected header first, then unprotected.
func resolveAlgorithm(protected, unprotected Header) (jwa.ID, bool) {
	if alg, ok := protected.Algorithm(); ok {
		return alg, true
	}
	if alg, ok := unprotected.Algorithm(); ok {
		return alg, true
	}
	return "", false
}

func resolveKeyID(protected, unprotected Header) (string, bool) {
	if kid, ok := protected.KeyID(); ok {
		return kid, true
	}
	if kid, ok := unprotected.KeyID(); ok {
		return kid, true
	}
	return "", false
}

func encodeHeader(h Header) (string, error) {
	if isEmpty(h) {
		return "", nil
	}
	b, err := json.Marshal(map[string]any(h))
	if err != nil {
		return "", err
	}
	return encoding.Encode(b), nil
}

func decodeProtectedRaw(raw string) (Header, error) {
	if raw == "" {
		return nil, nil
	}
	b, err := encoding.Decode(raw)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return Header(m), nil
}

func decodeUnprotectedJSON(raw json.RawMessage) (Header, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return Header(m), nil
}

// --

// SignRequest describes one signature slot to produce: the protected and
// unprotected headers to carry (either may be nil, but at least one must
// resolve an "alg") and the key set Sign selects a signing key from via
// the §4.4 matching algorithm (algorithm support first, then "kid" if
// present, otherwise the first compatible key).
type SignRequest struct {
	Protected   Header
	Unprotected Header
	Keys        jwk.Set
}

// Sign produces a JWS over payload with one signature slot per request, in
// request order. Resolving "alg"/"kid" and selecting a key both follow the
// protected-then-unprotected, then-§4.4-matching rules spec.md §4.6.3
// describes. alg=none produces an empty signature; the engine accepts
// this unconditionally during signing (it is Verify that refuses it) —
// callers wanting to prevent unsecured tokens from ever being produced
// should not include alg=none in their own signing paths.
func Sign(payload []byte, requests ...SignRequest) (*JWS, error) {
	if len(requests) == 0 {
		return nil, fmt.Errorf("%w: at least one signature request is required", ErrAlgorithmMissing)
	}

	payloadRaw := encoding.Encode(payload)
	slots := make([]signature, 0, len(requests))

	for _, req := range requests {
		alg, ok := resolveAlgorithm(req.Protected, req.Unprotected)
		if !ok {
			return nil, ErrAlgorithmMissing
		}

		protectedRaw, err := encodeHeader(req.Protected)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMalformedInput, err)
		}

		var sigBytes []byte
		if alg == jwa.None {
			sigBytes = []byte{}
		} else {
			kid, _ := resolveKeyID(req.Protected, req.Unprotected)

			key, err := req.Keys.Match(alg, kid)
			if err != nil {
				return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, err)
			}

			signer, err := SignerFromKey(alg, key)
			if err != nil {
				return nil, fmt.Errorf("%w: %s", ErrUnsupported, err)
			}

			input := protectedRaw + "." + payloadRaw
			sigBytes, err = signer.Sign([]byte(input))
			if err != nil {
				return nil, err
			}
		}

		slots = append(slots, signature{
			protected:    req.Protected,
			protectedRaw: protectedRaw,
			unprotected:  req.Unprotected,
			bytes:        sigBytes,
			bytesRaw:     encoding.Encode(sigBytes),
		})
	}

	return &JWS{payload: payload, payloadRaw: payloadRaw, signatures: slots}, nil
}

// Verify checks every signature slot of j against keys, in strict mode: a
// JWS is valid only if every slot verifies. alg=none always fails with
// ErrOperationNotAllowed, regardless of keys, closing the
// algorithm-stripping hole RFC 7515's "none" accommodates for signing-only
// use (e.g. tests). An empty signature set fails with
// ErrAuthenticationFailure.
func Verify(j *JWS, keys jwk.Set) error {
	if len(j.signatures) == 0 {
		return ErrAuthenticationFailure
	}

	for _, slot := range j.signatures {
		alg, ok := resolveAlgorithm(slot.protected, slot.unprotected)
		if !ok {
			return ErrAlgorithmMissing
		}

		if alg == jwa.None {
			return ErrOperationNotAllowed
		}

		if _, ok := jwa.Lookup(alg); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownAlgorithm, alg)
		}

		kid, _ := resolveKeyID(slot.protected, slot.unprotected)

		key, err := keys.Match(alg, kid)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrKeyNotFound, err)
		}

		verifier, err := VerifierFromKey(alg, key)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrUnsupported, err)
		}

		input := slot.protectedRaw + "." + j.payloadRaw
		if err := verifier.Verify(alg, []byte(input), slot.bytes); err != nil {
			return fmt.Errorf("%w: %s", ErrAuthenticationFailure, err)
		}
	}

	return nil
}

// --

// Decode parses data as a JWS in any of the three wire serializations,
// detected by its leading bytes per spec.md §4.6.2: "ey" for compact,
// "{" for a JSON form. The exact base64url segments of every protected
// header and the payload are preserved for later signing-input
// reconstruction; Decode never re-encodes decoded JSON.
func Decode(data []byte) (*JWS, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedInput)
	}

	if trimmed[0] == '{' {
		return decodeJSON(trimmed)
	}

	if bytes.HasPrefix(trimmed, []byte("ey")) {
		return decodeCompact(string(trimmed))
	}

	return nil, fmt.Errorf("%w: unrecognized serialization", ErrMalformedInput)
}

func decodeCompact(s string) (*JWS, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: compact form requires exactly three segments", ErrMalformedInput)
	}

	protected, err := decodeProtectedRaw(parts[0])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid protected header: %s", ErrMalformedInput, err)
	}

	payload, err := encoding.Decode(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid payload: %s", ErrMalformedInput, err)
	}

	sigBytes, err := encoding.Decode(parts[2])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid signature: %s", ErrMalformedInput, err)
	}

	return &JWS{
		payload:    payload,
		payloadRaw: parts[1],
		signatures: []signature{{
			protected:    protected,
			protectedRaw: parts[0],
			bytes:        sigBytes,
			bytesRaw:     parts[2],
		}},
	}, nil
}

type jsonSignature struct {
	Protected string          `json:"protected,omitempty"`
	Header    json.RawMessage `json:"header,omitempty"`
	Signature string          `json:"signature"`
}

func decodeJSON(data []byte) (*JWS, error) {
	var generic map[string]json.RawMessage
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedInput, err)
	}

	payloadField, ok := generic["payload"]
	if !ok {
		return nil, fmt.Errorf("%w: missing payload", ErrMalformedInput)
	}

	var payloadRaw string
	if err := json.Unmarshal(payloadField, &payloadRaw); err != nil {
		return nil, fmt.Errorf("%w: invalid payload field: %s", ErrMalformedInput, err)
	}

	payload, err := encoding.Decode(payloadRaw)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid payload: %s", ErrMalformedInput, err)
	}

	if sigsField, ok := generic["signatures"]; ok {
		var sigs []jsonSignature
		if err := json.Unmarshal(sigsField, &sigs); err != nil {
			return nil, fmt.Errorf("%w: invalid signatures: %s", ErrMalformedInput, err)
		}

		slots := make([]signature, 0, len(sigs))
		for _, s := range sigs {
			slot, err := decodeJSONSignature(s)
			if err != nil {
				return nil, err
			}
			slots = append(slots, slot)
		}

		return &JWS{payload: payload, payloadRaw: payloadRaw, signatures: slots}, nil
	}

	if sigField, ok := generic["signature"]; ok {
		var flat jsonSignature
		flat.Signature = ""
		if err := json.Unmarshal(sigField, &flat.Signature); err != nil {
			return nil, fmt.Errorf("%w: invalid signature field: %s", ErrMalformedInput, err)
		}
		if p, ok := generic["protected"]; ok {
			if err := json.Unmarshal(p, &flat.Protected); err != nil {
				return nil, fmt.Errorf("%w: invalid protected field: %s", ErrMalformedInput, err)
			}
		}
		if h, ok := generic["header"]; ok {
			flat.Header = h
		}

		slot, err := decodeJSONSignature(flat)
		if err != nil {
			return nil, err
		}

		return &JWS{payload: payload, payloadRaw: payloadRaw, signatures: []signature{slot}}, nil
	}

	return nil, fmt.Errorf("%w: neither \"signature\" nor \"signatures\" present", ErrMalformedInput)
}

func decodeJSONSignature(s jsonSignature) (signature, error) {
	protected, err := decodeProtectedRaw(s.Protected)
	if err != nil {
		return signature{}, fmt.Errorf("%w: invalid protected header: %s", ErrMalformedInput, err)
	}

	unprotected, err := decodeUnprotectedJSON(s.Header)
	if err != nil {
		return signature{}, fmt.Errorf("%w: invalid header: %s", ErrMalformedInput, err)
	}

	sigBytes, err := encoding.Decode(s.Signature)
	if err != nil {
		return signature{}, fmt.Errorf("%w: invalid signature: %s", ErrMalformedInput, err)
	}

	return signature{
		protected:    protected,
		protectedRaw: s.Protected,
		unprotected:  unprotected,
		bytes:        sigBytes,
		bytesRaw:     s.Signature,
	}, nil
}

// --

// Compact serializes j in compact form. Per spec.md §4.6.5 this requires
// exactly one signature slot carrying no unprotected header; other shapes
// return ErrOperationNotAllowed.
func (j *JWS) Compact() (string, error) {
	if len(j.signatures) != 1 {
		return "", fmt.Errorf("%w: compact form requires exactly one signature", ErrOperationNotAllowed)
	}
	slot := j.signatures[0]
	if !isEmpty(slot.unprotected) {
		return "", fmt.Errorf("%w: compact form cannot carry an unprotected header", ErrOperationNotAllowed)
	}
	return slot.protectedRaw + "." + j.payloadRaw + "." + slot.bytesRaw, nil
}

// Flattened serializes j in flattened JSON form. It requires exactly one
// signature slot; use General for more.
func (j *JWS) Flattened() ([]byte, error) {
	if len(j.signatures) != 1 {
		return nil, fmt.Errorf("%w: flattened form requires exactly one signature", ErrOperationNotAllowed)
	}
	slot := j.signatures[0]

	out := map[string]any{
		"payload":   j.payloadRaw,
		"signature": slot.bytesRaw,
	}
	if slot.protectedRaw != "" {
		out["protected"] = slot.protectedRaw
	}
	if !isEmpty(slot.unprotected) {
		out["header"] = map[string]any(slot.unprotected)
	}

	return json.Marshal(out)
}

// General serializes j in general JSON form, the only form able to carry
// more than one signature.
func (j *JWS) General() ([]byte, error) {
	sigs := make([]map[string]any, 0, len(j.signatures))
	for _, slot := range j.signatures {
		m := map[string]any{"signature": slot.bytesRaw}
		if slot.protectedRaw != "" {
			m["protected"] = slot.protectedRaw
		}
		if !isEmpty(slot.unprotected) {
			m["header"] = map[string]any(slot.unprotected)
		}
		sigs = append(sigs, m)
	}

	out := map[string]any{
		"payload":    j.payloadRaw,
		"signatures": sigs,
	}
	return json.Marshal(out)
}

// Serialize picks the serialization spec.md §4.6.5 mandates: compact when
// j has exactly one signature slot with no unprotected header, flattened
// JSON for one slot with an unprotected header, general JSON otherwise.
func (j *JWS) Serialize() ([]byte, error) {
	if len(j.signatures) == 1 && isEmpty(j.signatures[0].unprotected) {
		s, err := j.Compact()
		if err != nil {
			return nil, err
		}
		return []byte(s), nil
	}
	if len(j.signatures) == 1 {
		return j.Flattened()
	}
	return j.General()
}

// --

// Signer is implemented by per-algorithm signing adapters (HMAC, RSA,
// ECDSA, EdDSA). Sign calculates the signature or MAC over data and
// returns the raw signature bytes in the form spec.md §4.4 fixes per
// algorithm family (fixed-width r‖s for ECDSA, not DER; 64 raw bytes for
// Ed25519; and so on).
type Signer interface {
	Alg() jwa.ID
	Sign(data []byte) ([]byte, error)
}

// Verifier is implemented by per-algorithm verifying adapters. Verify
// returns nil for a valid signature and a non-nil error otherwise; it
// must not modify data or signature.
type Verifier interface {
	Verify(alg jwa.ID, data, signature []byte) error
}

// SignerVerifier combines Signer and Verifier, used for symmetric (HMAC)
// algorithms where the same secret signs and verifies.
type SignerVerifier interface {
	Signer
	Verifier
}

// ErrInvalidSignature is returned by per-algorithm Verify implementations
// when a signature does not match, wrapped into ErrAuthenticationFailure
// by the engine's Verify.
var ErrInvalidSignature = errors.New("jws: invalid signature")

type symmetricSignature struct {
	Signer
}

func (s *symmetricSignature) Verify(alg jwa.ID, data, signature []byte) error {
	if alg != s.Alg() {
		return fmt.Errorf("%w: algorithm mismatch", ErrInvalidSignature)
	}

	sig, err := s.Sign(data)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidSignature, err)
	}

	if !bytes.Equal(sig, signature) {
		return ErrInvalidSignature
	}
	return nil
}

// SymmetricSignature adapts a Signer whose Sign is deterministic (such as
// HMAC) into a SignerVerifier by re-computing and comparing.
func SymmetricSignature(s Signer) SignerVerifier {
	return &symmetricSignature{Signer: s}
}

// None returns a SignerVerifier for alg=none: Sign always returns an
// empty signature. Signing with it is only meaningful for interop tests;
// the engine's Verify refuses alg=none unconditionally regardless of
// whether a None() verifier is supplied.
func None() SignerVerifier {
	return SymmetricSignature(&noneSigner{})
}

type noneSigner struct{}

func (m *noneSigner) Alg() jwa.ID                        { return jwa.None }
func (m *noneSigner) Sign(data []byte) ([]byte, error)   { return []byte{}, nil }

// --

// SignerFromKey adapts key into a Signer for alg, dispatching on key's
// concrete type the way jws's per-algorithm files construct adapters
// directly from crypto/* key types.
func SignerFromKey(alg jwa.ID, key jwk.Key) (Signer, error) {
	reg, ok := jwa.Lookup(alg)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, alg)
	}

	switch k := key.(type) {
	case *jwk.SymmetricKey:
		return HSSignerVerifier(alg, k.Bytes)

	case *jwk.RSAPrivateKey:
		switch reg.Form {
		case jwa.FormRSAPKCS1v15:
			return RSSigner(alg, k.PrivateKey)
		case jwa.FormRSAPSS:
			return PSSigner(alg, k.PrivateKey)
		default:
			return nil, fmt.Errorf("%s: not an RSA signature algorithm", alg)
		}

	case *jwk.ECDSAPrivateKey:
		return ECDSASigner(alg, k.PrivateKey)

	case *jwk.OKPPrivateKey:
		if reg.Form != jwa.FormEdDSA {
			return nil, fmt.Errorf("%s: not EdDSA", alg)
		}
		return EdDSASigner(k.PrivateKey), nil

	default:
		return nil, fmt.Errorf("key of type %T cannot sign", key)
	}
}

// VerifierFromKey adapts key into a Verifier for alg.
func VerifierFromKey(alg jwa.ID, key jwk.Key) (Verifier, error) {
	reg, ok := jwa.Lookup(alg)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, alg)
	}

	switch k := key.(type) {
	case *jwk.SymmetricKey:
		return HSSignerVerifier(alg, k.Bytes)

	case *jwk.RSAPublicKey:
		switch reg.Form {
		case jwa.FormRSAPKCS1v15:
			return RSVerifier(alg, k.PublicKey)
		case jwa.FormRSAPSS:
			return PSVerifier(alg, k.PublicKey)
		default:
			return nil, fmt.Errorf("%s: not an RSA signature algorithm", alg)
		}

	case *jwk.RSAPrivateKey:
		switch reg.Form {
		case jwa.FormRSAPKCS1v15:
			return RSVerifier(alg, &k.PrivateKey.PublicKey)
		case jwa.FormRSAPSS:
			return PSVerifier(alg, &k.PrivateKey.PublicKey)
		default:
			return nil, fmt.Errorf("%s: not an RSA signature algorithm", alg)
		}

	case *jwk.ECDSAPublicKey:
		return ECDSAVerifier(alg, k.PublicKey)

	case *jwk.ECDSAPrivateKey:
		return ECDSAVerifier(alg, &k.PrivateKey.PublicKey)

	case *jwk.OKPPublicKey:
		if reg.Form != jwa.FormEdDSA {
			return nil, fmt.Errorf("%s: not EdDSA", alg)
		}
		return EdDSAVerifier(k.PublicKey), nil

	case *jwk.OKPPrivateKey:
		if reg.Form != jwa.FormEdDSA {
			return nil, fmt.Errorf("%s: not EdDSA", alg)
		}
		pub := k.Public()
		if pub == nil {
			return nil, fmt.Errorf("key has no public counterpart")
		}
		return EdDSAVerifier(pub.PublicKey), nil

	default:
		return nil, fmt.Errorf("key of type %T cannot verify", key)
	}
}

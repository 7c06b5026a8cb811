// Package jwa implements the algorithm registry described in RFC 7518
// (JSON Web Algorithms): a process-wide, mutable mapping from algorithm
// identifier to the key type, optional curve, and hash function it
// requires. It generalizes the one-off SignatureAlgorithm constants the
// jws package used to define per file (ALG_HS256 in hmac.go, ALG_RS256 in
// rsa.go, and so on) into the single dispatch table spec.md calls for,
// following the registry/dispatch shape of the retrieved
// github.com/shogo82148/goat jwa package, but guarded by a sync.RWMutex so
// registration is safe during concurrent verification, not just at init.
package jwa

import (
	"crypto"
	"crypto/elliptic"
	"fmt"
	"sync"
)

// KeyType names the family of cryptographic key an algorithm operates on.
type KeyType string

const (
	KeyTypeSymmetric KeyType = "oct"
	KeyTypeRSA       KeyType = "RSA"
	KeyTypeEC        KeyType = "EC"
)

// SignatureForm names the signature construction an algorithm uses, beyond
// its key type and hash.
type SignatureForm string

const (
	FormNone        SignatureForm = "none"
	FormHMAC        SignatureForm = "HMAC"
	FormRSAPKCS1v15 SignatureForm = "RSA-PKCS1v15"
	FormRSAPSS      SignatureForm = "RSA-PSS"
	FormECDSA       SignatureForm = "ECDSA"
	FormEdDSA       SignatureForm = "EdDSA"
)

// ID is a JWA algorithm identifier, e.g. "ES256".
type ID string

const (
	None  ID = "none"
	HS256 ID = "HS256"
	HS384 ID = "HS384"
	HS512 ID = "HS512"
	RS256 ID = "RS256"
	RS384 ID = "RS384"
	RS512 ID = "RS512"
	PS256 ID = "PS256"
	PS384 ID = "PS384"
	PS512 ID = "PS512"
	ES256 ID = "ES256"
	ES384 ID = "ES384"
	ES512 ID = "ES512"
	EdDSA ID = "EdDSA"
)

// Registration describes everything the jws engine and jwk package need to
// know about an algorithm identifier: its key family, optional curve, hash
// function, and signature construction.
type Registration struct {
	KeyType KeyType
	Curve   elliptic.Curve // nil for symmetric/OKP algorithms
	Hash    crypto.Hash    // zero value for "none" and EdDSA, which hash internally or not at all
	Form    SignatureForm

	// SignatureSize is the fixed output length in bytes for ECDSA
	// algorithms (raw r‖s concatenation) and EdDSA; zero for algorithms whose
	// signature length is not fixed by the algorithm alone.
	SignatureSize int
}

var (
	mu       sync.RWMutex
	registry = map[ID]Registration{}
)

func init() {
	register(None, Registration{KeyType: KeyTypeSymmetric, Form: FormNone})
	register(HS256, Registration{KeyType: KeyTypeSymmetric, Hash: crypto.SHA256, Form: FormHMAC})
	register(HS384, Registration{KeyType: KeyTypeSymmetric, Hash: crypto.SHA384, Form: FormHMAC})
	register(HS512, Registration{KeyType: KeyTypeSymmetric, Hash: crypto.SHA512, Form: FormHMAC})
	register(RS256, Registration{KeyType: KeyTypeRSA, Hash: crypto.SHA256, Form: FormRSAPKCS1v15})
	register(RS384, Registration{KeyType: KeyTypeRSA, Hash: crypto.SHA384, Form: FormRSAPKCS1v15})
	register(RS512, Registration{KeyType: KeyTypeRSA, Hash: crypto.SHA512, Form: FormRSAPKCS1v15})
	register(PS256, Registration{KeyType: KeyTypeRSA, Hash: crypto.SHA256, Form: FormRSAPSS})
	register(PS384, Registration{KeyType: KeyTypeRSA, Hash: crypto.SHA384, Form: FormRSAPSS})
	register(PS512, Registration{KeyType: KeyTypeRSA, Hash: crypto.SHA512, Form: FormRSAPSS})
	register(ES256, Registration{KeyType: KeyTypeEC, Curve: elliptic.P256(), Hash: crypto.SHA256, Form: FormECDSA, SignatureSize: 64})
	register(ES384, Registration{KeyType: KeyTypeEC, Curve: elliptic.P384(), Hash: crypto.SHA384, Form: FormECDSA, SignatureSize: 96})
	register(ES512, Registration{KeyType: KeyTypeEC, Curve: elliptic.P521(), Hash: crypto.SHA512, Form: FormECDSA, SignatureSize: 132})
	register(EdDSA, Registration{KeyType: KeyTypeEC, Form: FormEdDSA, SignatureSize: 64})
}

// register installs a Registration without taking the lock; only safe
// from init.
func register(id ID, reg Registration) {
	registry[id] = reg
}

// Register adds or overwrites the Registration for id. Registrations are
// expected during process initialization; the registry never forgets an
// entry once added.
func Register(id ID, reg Registration) {
	mu.Lock()
	defer mu.Unlock()
	registry[id] = reg
}

// Lookup returns the Registration for id and whether it is known.
func Lookup(id ID) (Registration, bool) {
	mu.RLock()
	defer mu.RUnlock()
	reg, ok := registry[id]
	return reg, ok
}

// RegisteredIDs returns every algorithm identifier currently registered,
// in no particular order.
func RegisteredIDs() []ID {
	mu.RLock()
	defer mu.RUnlock()

	ids := make([]ID, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	return ids
}

// ErrUnknownAlgorithm is returned (wrapped) wherever an ID has no
// Registration.
type ErrUnknownAlgorithm struct {
	ID ID
}

func (e *ErrUnknownAlgorithm) Error() string {
	return fmt.Sprintf("jwa: unknown algorithm: %s", e.ID)
}

// MustLookup returns the Registration for id or an *ErrUnknownAlgorithm
// error.
func MustLookup(id ID) (Registration, error) {
	reg, ok := Lookup(id)
	if !ok {
		return Registration{}, &ErrUnknownAlgorithm{ID: id}
	}
	return reg, nil
}

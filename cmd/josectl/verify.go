package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/halimath/jwx/jwk"
	"github.com/halimath/jwx/jwt"
)

func runJWTVerify(args []string) error {
	fs := newFlagSet("jwt-verify")
	keyFile := fs.String("key", "", "path to a JWK (or JWK set) file holding the verification key (required)")
	iss := fs.String("iss", "", "require this issuer")
	aud := fs.String("aud", "", "require this audience member")
	leeway := fs.Duration("leeway", 0, "clock skew leeway applied to exp/nbf checks")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("expected exactly one argument: the compact token (or \"-\" for stdin)")
	}
	if *keyFile == "" {
		return fmt.Errorf("-key is required")
	}

	keyData, err := readAll(*keyFile)
	if err != nil {
		return err
	}
	keys, err := unmarshalKeys(keyData)
	if err != nil {
		return err
	}

	tokenData, err := readAll(fs.Arg(0))
	if err != nil {
		return err
	}

	token, err := jwt.Decode(tokenData)
	if err != nil {
		return err
	}

	var verifiers []jwt.Verifier
	if *iss != "" {
		verifiers = append(verifiers, jwt.Issuer(*iss))
	}
	if *aud != "" {
		verifiers = append(verifiers, jwt.Audience(*aud))
	}
	if _, ok := token.Claims().ExpirationTime(); ok {
		verifiers = append(verifiers, jwt.ExpirationTime(*leeway))
	}
	if _, ok := token.Claims().NotBefore(); ok {
		verifiers = append(verifiers, jwt.NotBefore(*leeway))
	}

	if err := token.Verify(keys, verifiers...); err != nil {
		return err
	}

	claims := token.Claims().Value()
	var parts []string
	for k := range claims {
		parts = append(parts, k)
	}
	fmt.Fprintln(os.Stderr, "signature and claims valid")
	fmt.Printf("claims: %s\n", strings.Join(parts, ", "))
	return nil
}

// unmarshalKeys accepts either a single JWK or a JWK set and normalizes
// both into a jwk.Set.
func unmarshalKeys(data []byte) (jwk.Set, error) {
	if set, err := unmarshalKeySet(data); err == nil {
		return set, nil
	}

	key, err := jwk.UnmarshalKey(data)
	if err != nil {
		return nil, err
	}
	return jwk.Set{key}, nil
}

func unmarshalKeySet(data []byte) (jwk.Set, error) {
	var set jwk.Set
	if err := set.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("empty key set")
	}
	return set, nil
}

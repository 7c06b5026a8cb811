package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/halimath/jwx/jwa"
	"github.com/halimath/jwx/jwk"
	"github.com/halimath/jwx/jwt"
	"github.com/halimath/jwx/storage"
)

func runJWTSign(args []string) error {
	fs := newFlagSet("jwt-sign")
	keyFile := fs.String("key", "", "path to a JWK file holding the signing key (required)")
	alg := fs.String("alg", "", "signature algorithm; defaults to the key's own \"alg\" member")
	iss := fs.String("iss", "", "issuer (\"iss\") claim")
	sub := fs.String("sub", "", "subject (\"sub\") claim")
	aud := fs.String("aud", "", "comma-separated audience (\"aud\") claim")
	exp := fs.Duration("exp", 0, "lifetime from now, e.g. 1h (sets \"exp\")")
	jti := fs.String("jti", "", "JWT ID (\"jti\") claim")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *keyFile == "" {
		return fmt.Errorf("-key is required")
	}

	data, err := readAll(*keyFile)
	if err != nil {
		return err
	}
	key, err := jwk.UnmarshalKey(data)
	if err != nil {
		return err
	}

	algID := jwa.ID(*alg)
	if algID == "" {
		algID = jwa.ID(key.Algorithm())
	}
	if algID == "" {
		return fmt.Errorf("-alg is required when the key has no \"alg\" member")
	}

	claims := jwt.NewClaims()
	now := time.Now()
	claims.SetIssuedAt(storage.NumericDate(now))
	if *iss != "" {
		claims.SetIssuer(*iss)
	}
	if *sub != "" {
		claims.SetSubject(*sub)
	}
	if *aud != "" {
		claims.SetAudience(strings.Split(*aud, ","))
	}
	if *exp > 0 {
		claims.SetExpirationTime(storage.NumericDate(now.Add(*exp)))
	}
	if *jti != "" {
		claims.SetID(*jti)
	}

	token, err := jwt.Sign(algID, jwk.Set{key}, claims)
	if err != nil {
		return err
	}

	compact, err := token.JWS().Compact()
	if err != nil {
		return err
	}

	fmt.Println(compact)
	return nil
}

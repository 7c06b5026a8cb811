package jwt_test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"time"

	"github.com/halimath/jwx/jwa"
	"github.com/halimath/jwx/jwk"
	"github.com/halimath/jwx/jwt"
	"github.com/halimath/jwx/storage"
)

func Example_standardClaimsWithHS256() {
	key := &jwk.SymmetricKey{Bytes: []byte("sh256-secret-key")}
	keys := jwk.Set{key}

	claims := jwt.NewClaims()
	claims.SetID("17")
	claims.SetSubject("john.doe")
	claims.SetIssuer("test")
	claims.SetAudience([]string{"test", "anotherTest"})
	claims.SetExpirationTime(storage.NumericDate(time.Now().Add(time.Hour)))

	token, err := jwt.Sign(jwa.HS256, keys, claims)
	if err != nil {
		panic(err)
	}

	compact, err := token.JWS().Compact()
	if err != nil {
		panic(err)
	}

	token2, err := jwt.Decode([]byte(compact))
	if err != nil {
		panic(err)
	}

	if err := token2.Verify(keys, jwt.ExpirationTime(time.Second)); err != nil {
		panic(err)
	}

	sub, _ := token2.Claims().Subject()
	fmt.Printf("Subject: %s\n", sub)

	// Output: Subject: john.doe
}

func Example_customClaimsWithHS256() {
	key := &jwk.SymmetricKey{Bytes: []byte("sh256-secret-key")}
	keys := jwk.Set{key}

	claims := jwt.NewClaims()
	claims.SetID("17")
	claims.SetSubject("john.doe")
	claims.SetIssuer("test")
	claims.SetAudience([]string{"test", "anotherTest"})
	claims.SetExpirationTime(storage.NumericDate(time.Now().Add(time.Hour)))
	claims.Value().Set("example.com/fullname", "John Doe")

	token, err := jwt.Sign(jwa.HS256, keys, claims)
	if err != nil {
		panic(err)
	}

	compact, err := token.JWS().Compact()
	if err != nil {
		panic(err)
	}

	token2, err := jwt.Decode([]byte(compact))
	if err != nil {
		panic(err)
	}

	if err := token2.Verify(keys, jwt.ExpirationTime(time.Second)); err != nil {
		panic(err)
	}

	fullname, _ := token2.Claims().Value().Get("example.com/fullname")
	fmt.Printf("Full name: %s\n", fullname)

	// Output: Full name: John Doe
}

func Example_standardClaimsWithRS256() {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		panic(err)
	}

	key := &jwk.RSAPrivateKey{PrivateKey: privateKey}
	keys := jwk.Set{key}

	claims := jwt.NewClaims()
	claims.SetID("17")
	claims.SetSubject("john.doe")
	claims.SetIssuer("test")
	claims.SetAudience([]string{"test", "anotherTest"})
	claims.SetExpirationTime(storage.NumericDate(time.Now().Add(time.Hour)))

	token, err := jwt.Sign(jwa.RS256, keys, claims)
	if err != nil {
		panic(err)
	}

	compact, err := token.JWS().Compact()
	if err != nil {
		panic(err)
	}

	token2, err := jwt.Decode([]byte(compact))
	if err != nil {
		panic(err)
	}

	if err := token2.Verify(keys, jwt.ExpirationTime(time.Second)); err != nil {
		panic(err)
	}

	sub, _ := token2.Claims().Subject()
	fmt.Printf("Subject: %s\n", sub)

	// Output: Subject: john.doe
}

func Example_standardClaimsWithES256() {
	privateKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		panic(err)
	}

	key := &jwk.ECDSAPrivateKey{PrivateKey: privateKey}
	keys := jwk.Set{key}

	claims := jwt.NewClaims()
	claims.SetID("17")
	claims.SetSubject("john.doe")
	claims.SetIssuer("test")
	claims.SetAudience([]string{"test", "anotherTest"})
	claims.SetExpirationTime(storage.NumericDate(time.Now().Add(time.Hour)))

	token, err := jwt.Sign(jwa.ES256, keys, claims)
	if err != nil {
		panic(err)
	}

	compact, err := token.JWS().Compact()
	if err != nil {
		panic(err)
	}

	token2, err := jwt.Decode([]byte(compact))
	if err != nil {
		panic(err)
	}

	if err := token2.Verify(keys, jwt.ExpirationTime(time.Second)); err != nil {
		panic(err)
	}

	sub, _ := token2.Claims().Subject()
	fmt.Printf("Subject: %s\n", sub)

	// Output: Subject: john.doe
}

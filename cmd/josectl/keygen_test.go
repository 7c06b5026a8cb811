package main

import (
	"testing"

	"github.com/halimath/jwx/jwa"
	"github.com/halimath/jwx/jwk"
)

func TestGenerateKey(t *testing.T) {
	tests := []struct {
		alg  jwa.ID
		want jwk.KeyType
	}{
		{jwa.HS256, jwk.KeyTypeOct},
		{jwa.RS256, jwk.KeyTypeRSA},
		{jwa.ES256, jwk.KeyTypeEC},
		{jwa.EdDSA, jwk.KeyTypeOKP},
	}

	for _, tt := range tests {
		t.Run(string(tt.alg), func(t *testing.T) {
			key, err := generateKey(tt.alg, "test-kid")
			if err != nil {
				t.Fatal(err)
			}
			if key.Type() != tt.want {
				t.Errorf("got key type %s, want %s", key.Type(), tt.want)
			}
			if key.ID() != "test-kid" {
				t.Errorf("got kid %q, want test-kid", key.ID())
			}
			if !key.Supports(tt.alg) {
				t.Errorf("generated key does not support %s", tt.alg)
			}
		})
	}
}

func TestGenerateKey_unknownAlgorithm(t *testing.T) {
	if _, err := generateKey("bogus", ""); err == nil {
		t.Fatal("expected an error for an unknown algorithm")
	}
}

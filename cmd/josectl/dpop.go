package main

import (
	"fmt"
	"os"

	"github.com/halimath/jwx/dpop"
	"github.com/halimath/jwx/jwa"
	"github.com/halimath/jwx/jwk"
)

func runDPoPProve(args []string) error {
	fs := newFlagSet("dpop-prove")
	keyFile := fs.String("key", "", "path to a private JWK (required)")
	alg := fs.String("alg", "ES256", "DPoP proof algorithm")
	htm := fs.String("htm", "", "HTTP method (required)")
	htu := fs.String("htu", "", "HTTP target URI (required)")
	nonce := fs.String("nonce", "", "server-provided nonce, if any")
	accessToken := fs.String("ath", "", "access token to bind via \"ath\", if any")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *keyFile == "" || *htm == "" || *htu == "" {
		return fmt.Errorf("-key, -htm and -htu are required")
	}

	data, err := readAll(*keyFile)
	if err != nil {
		return err
	}
	key, err := jwk.UnmarshalKey(data)
	if err != nil {
		return err
	}

	proof, err := dpop.Generate(dpop.Request{
		Method:      *htm,
		URI:         *htu,
		Key:         key,
		Algorithm:   jwa.ID(*alg),
		Nonce:       *nonce,
		AccessToken: *accessToken,
	})
	if err != nil {
		return err
	}

	compact, err := proof.JWS().Compact()
	if err != nil {
		return err
	}

	fmt.Println(compact)
	return nil
}

func runDPoPVerify(args []string) error {
	fs := newFlagSet("dpop-verify")
	htm := fs.String("htm", "", "expected HTTP method (required)")
	htu := fs.String("htu", "", "expected HTTP target URI (required)")
	nonce := fs.String("nonce", "", "expected nonce, if any")
	maxAge := fs.Duration("max-age", 0, "maximum proof age; 0 disables the check")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("expected exactly one argument: the compact proof (or \"-\" for stdin)")
	}
	if *htm == "" || *htu == "" {
		return fmt.Errorf("-htm and -htu are required")
	}

	data, err := readAll(fs.Arg(0))
	if err != nil {
		return err
	}

	predicates := []dpop.Predicate{
		dpop.Method(*htm),
		dpop.TargetURI(*htu),
	}
	if *nonce != "" {
		predicates = append(predicates, dpop.Nonce(*nonce))
	}
	if *maxAge > 0 {
		predicates = append(predicates, dpop.MaxAge(*maxAge))
	}

	proof, err := dpop.Verify(data, predicates...)
	if err != nil {
		return err
	}

	jti, _ := proof.Claims().ID()
	fmt.Fprintf(os.Stderr, "proof valid, jti=%s\n", jti)
	return nil
}

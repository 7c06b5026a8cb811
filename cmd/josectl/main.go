// Command josectl is a small command-line front-end over this module's
// jwk, jws, jwt and dpop packages: generate a signing key, sign and
// verify a JWT, or generate and verify a DPoP proof. It exists to give
// the library a runnable demonstrator, not to be a feature-complete
// token tool.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
)

type command struct {
	usage string
	run   func(args []string) error
}

var commands = map[string]command{
	"keygen":      {"josectl keygen -alg <alg> [-kid <kid>]", runKeygen},
	"jwt-sign":    {"josectl jwt-sign -key <file> -alg <alg> [-iss ...] [-sub ...] [-aud ...] [-exp <duration>]", runJWTSign},
	"jwt-verify":  {"josectl jwt-verify -key <file> [-iss ...] [-aud ...]", runJWTVerify},
	"dpop-prove":  {"josectl dpop-prove -key <file> -alg <alg> -htm <method> -htu <uri>", runDPoPProve},
	"dpop-verify": {"josectl dpop-verify -htm <method> -htu <uri>", runDPoPVerify},
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd, ok := commands[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "josectl: unknown command %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}

	if err := cmd.run(os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "josectl: %s\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: josectl <command> [flags]")
	fmt.Fprintln(os.Stderr, "commands:")
	for name, cmd := range commands {
		fmt.Fprintf(os.Stderr, "  %-12s %s\n", name, cmd.usage)
	}
}

// readAll reads a whole file, or stdin when path is "-".
func readAll(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	return fs
}

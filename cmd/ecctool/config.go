// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	dcrsecp "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/weierstrass/curve"
	"github.com/decred/weierstrass/ecdsa"
	"github.com/decred/weierstrass/internal/version"
	"github.com/decred/weierstrass/secp256k1"
	flags "github.com/jessevdk/go-flags"
	"golang.org/x/term"
)

const (
	defaultDebugLevel = "info"
	defaultHash       = "sha256"
)

// stdout is where command results are written.
var stdout io.Writer = os.Stdout

// errSignatureInvalid is returned by the verify command when the signature is
// well formed but not valid.
var errSignatureInvalid = errors.New("signature is not valid")

// config defines the options shared by all commands.
type config struct {
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}"`
	LogDir     string `long:"logdir" description:"Directory to write a rotated log file to in addition to standard error"`
}

// keyOptions defines how a command obtains the private key.
type keyOptions struct {
	PrivKey   string `long:"privkey" description:"Hex-encoded private key"`
	PromptKey bool   `long:"promptkey" description:"Read the hex-encoded private key from the terminal without echo"`
}

func zero(b []byte) {
	for i := 0; i < len(b); i++ {
		b[i] = 0x00
	}
}

// readSecret reads a secret from the terminal without echoing it.
var readSecret = func() ([]byte, error) {
	fmt.Fprint(os.Stderr, "Private key: ")
	secret, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprint(os.Stderr, "\n")
	return secret, err
}

// parsePrivKey parses a hex-encoded secp256k1 private key.
func parsePrivKey(s string) (*ecdsa.KeyPair, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 64 {
		return nil, fmt.Errorf("private key must be 1 to 64 hex characters")
	}
	d, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("private key is not valid hex")
	}
	return ecdsa.NewKeyPair(secp256k1.Curve(), d)
}

// keyPair returns the key pair selected by the key options.
func (o *keyOptions) keyPair() (*ecdsa.KeyPair, error) {
	switch {
	case o.PromptKey && o.PrivKey != "":
		return nil, errors.New("--privkey and --promptkey are mutually " +
			"exclusive")

	case o.PromptKey:
		secret, err := readSecret()
		if err != nil {
			return nil, fmt.Errorf("unable to read private key: %w", err)
		}
		defer zero(secret)
		return parsePrivKey(string(secret))

	case o.PrivKey != "":
		return parsePrivKey(o.PrivKey)
	}
	return nil, errors.New("one of --privkey or --promptkey is required")
}

// parsePubKey parses a hex-encoded secp256k1 public key in the compressed or
// uncompressed format.
func parsePubKey(s string) (curve.Point, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return curve.Point{}, fmt.Errorf("public key is not valid hex: %w",
			err)
	}
	pubKey, err := dcrsecp.ParsePubKey(b)
	if err != nil {
		return curve.Point{}, err
	}
	return secp256k1.FromPubKey(pubKey)
}

// parseScalar parses a hex-encoded signature component.
func parseScalar(name, s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("signature %s is not valid hex", name)
	}
	return v, nil
}

// serializePubKey returns the uncompressed hex encoding of a public key.
func serializePubKey(q curve.Point) (string, error) {
	pubKey, err := secp256k1.ToPubKey(q)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(pubKey.SerializeUncompressed()), nil
}

// keygenCmd generates a new key pair.
type keygenCmd struct{}

func (c *keygenCmd) Execute(args []string) error {
	kp, err := ecdsa.GenerateKeyPair(secp256k1.Curve())
	if err != nil {
		return err
	}
	pubKey, err := serializePubKey(kp.Public())
	if err != nil {
		return err
	}
	log.Debugf("Generated key pair on %s", kp.Curve())
	fmt.Fprintf(stdout, "privkey: %064x\n", kp.D())
	fmt.Fprintf(stdout, "pubkey:  %s\n", pubKey)
	return nil
}

// pubkeyCmd derives the public key of a private key.
type pubkeyCmd struct {
	keyOptions
}

func (c *pubkeyCmd) Execute(args []string) error {
	kp, err := c.keyPair()
	if err != nil {
		return err
	}
	pubKey, err := serializePubKey(kp.Public())
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, pubKey)
	return nil
}

// signCmd signs a message.
type signCmd struct {
	keyOptions
	Hash          string `long:"hash" default:"sha256" description:"Message digest {sha256, blake256, blake3, keccak256}"`
	Deterministic bool   `long:"deterministic" description:"Derive the nonce from the key and digest per RFC 6979 instead of drawing it at random"`
	Args          struct {
		Message string `positional-arg-name:"message"`
	} `positional-args:"yes" required:"yes"`
}

func (c *signCmd) Execute(args []string) error {
	kp, err := c.keyPair()
	if err != nil {
		return err
	}
	hashFn, err := ecdsa.HashFuncByName(c.Hash)
	if err != nil {
		return err
	}

	digest := hashFn.Sum([]byte(c.Args.Message))
	var sig *ecdsa.Signature
	if c.Deterministic {
		sig, err = ecdsa.SignDigestDeterministic(kp.Curve(), digest, kp.D())
	} else {
		sig, err = ecdsa.SignDigest(kp.Curve(), digest, kp.D())
	}
	if err != nil {
		return err
	}
	log.Debugf("Signed %s digest %x", hashFn, digest)
	fmt.Fprintf(stdout, "%064x %064x\n", sig.R(), sig.S())
	return nil
}

// verifyCmd verifies a signature.
type verifyCmd struct {
	Hash string `long:"hash" default:"sha256" description:"Message digest {sha256, blake256, blake3, keccak256}"`
	Args struct {
		PubKey  string `positional-arg-name:"pubkey"`
		R       string `positional-arg-name:"r"`
		S       string `positional-arg-name:"s"`
		Message string `positional-arg-name:"message"`
	} `positional-args:"yes" required:"yes"`
}

func (c *verifyCmd) Execute(args []string) error {
	q, err := parsePubKey(c.Args.PubKey)
	if err != nil {
		return err
	}
	r, err := parseScalar("r", c.Args.R)
	if err != nil {
		return err
	}
	s, err := parseScalar("s", c.Args.S)
	if err != nil {
		return err
	}
	hashFn, err := ecdsa.HashFuncByName(c.Hash)
	if err != nil {
		return err
	}

	digest := hashFn.Sum([]byte(c.Args.Message))
	ok, err := ecdsa.VerifyDigest(secp256k1.Curve(), digest, q,
		ecdsa.NewSignature(r, s))
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, ok)
	if !ok {
		return errSignatureInvalid
	}
	return nil
}

// versionCmd shows the version.
type versionCmd struct{}

func (c *versionCmd) Execute(args []string) error {
	fmt.Fprintf(stdout, "ecctool version %s\n", version.String())
	return nil
}

// newParser returns the command line parser for the passed config with all
// commands registered.  Logging is set up before any command runs.
func newParser(cfg *config) (*flags.Parser, error) {
	parser := flags.NewParser(cfg, flags.Default)
	commands := []struct {
		name, short string
		data        interface{}
	}{
		{"keygen", "Generate a new secp256k1 key pair", &keygenCmd{}},
		{"pubkey", "Show the public key of a private key", &pubkeyCmd{}},
		{"sign", "Sign a message", &signCmd{Hash: defaultHash}},
		{"verify", "Verify the signature of a message", &verifyCmd{Hash: defaultHash}},
		{"version", "Show the version", &versionCmd{}},
	}
	for _, c := range commands {
		_, err := parser.AddCommand(c.name, c.short, c.short, c.data)
		if err != nil {
			return nil, err
		}
	}
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		if err := setupLogging(cfg); err != nil {
			return err
		}
		return cmd.Execute(args)
	}
	return parser, nil
}

// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"errors"
	"math/big"
	"testing"

	dcrsecp "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/weierstrass/curve"
)

// TestPubKeyInterop ensures public keys derived here match the ones derived by
// the optimized implementation and convert in both directions.
func TestPubKeyInterop(t *testing.T) {
	s := New()
	for i := 0; i < 4; i++ {
		privKey, err := dcrsecp.GeneratePrivateKey()
		if err != nil {
			t.Fatalf("unable to generate private key: %v", err)
		}
		d := FromPrivKey(privKey)

		pub, err := s.GeneratePublicKey(d)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		dcrPub, err := ToPubKey(pub)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !dcrPub.IsEqual(privKey.PubKey()) {
			t.Fatalf("mismatched public key for private key %x -- got %x, "+
				"want %x", d, dcrPub.SerializeUncompressed(),
				privKey.PubKey().SerializeUncompressed())
		}

		back, err := FromPubKey(privKey.PubKey())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !back.Equal(pub) {
			t.Fatalf("round trip mismatch -- got %v, want %v", back, pub)
		}

		roundTrip, err := ToPrivKey(d)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if FromPrivKey(roundTrip).Cmp(d) != 0 {
			t.Fatalf("private key round trip mismatch for %x", d)
		}
	}
}

// TestInteropErrors ensures values that can't be represented by the optimized
// implementation are rejected.
func TestInteropErrors(t *testing.T) {
	if _, err := ToPubKey(curve.Identity()); !errors.Is(err,
		ErrPubKeyNotOnCurve) {

		t.Fatalf("mismatched err -- got %v, want %v", err, ErrPubKeyNotOnCurve)
	}

	n := Curve().N()
	scalars := []*big.Int{nil, big.NewInt(0), big.NewInt(-1), n}
	for _, v := range scalars {
		if _, err := ToPrivKey(v); !errors.Is(err, ErrScalarOutOfRange) {
			t.Errorf("ToPrivKey(%v): mismatched err -- got %v, want %v", v,
				err, ErrScalarOutOfRange)
		}
		if _, err := ToSignature(v, big.NewInt(1)); !errors.Is(err,
			ErrScalarOutOfRange) {

			t.Errorf("ToSignature(%v, 1): mismatched err -- got %v, want %v",
				v, err, ErrScalarOutOfRange)
		}
		if _, err := ToSignature(big.NewInt(1), v); !errors.Is(err,
			ErrScalarOutOfRange) {

			t.Errorf("ToSignature(1, %v): mismatched err -- got %v, want %v",
				v, err, ErrScalarOutOfRange)
		}
	}

	r, s := big.NewInt(12345), new(big.Int).Sub(n, big.NewInt(1))
	sig, err := ToSignature(r, s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gotR, gotS := FromSignature(sig)
	if gotR.Cmp(r) != 0 || gotS.Cmp(s) != 0 {
		t.Fatalf("signature round trip mismatch -- got (%x, %x), want "+
			"(%x, %x)", gotR, gotS, r, s)
	}
}

// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	cryptorand "crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/decred/dcrd/crypto/rand"
	"github.com/decred/weierstrass/curve"
)

// KeyPair is an ECDSA private key d in [1, n) along with its public key
// Q = d*G on a given curve.
type KeyPair struct {
	curve *curve.Curve
	d     *big.Int
	q     curve.Point
}

// randScalar draws an integer uniformly at random from [1, n) using the passed
// random source.
func randScalar(r io.Reader, n *big.Int) (*big.Int, error) {
	nMinusOne := new(big.Int).Sub(n, big.NewInt(1))
	v, err := cryptorand.Int(r, nMinusOne)
	if err != nil {
		str := fmt.Sprintf("unable to read from random source: %v", err)
		return nil, makeError(ErrRNGFailure, str)
	}
	return v.Add(v, big.NewInt(1)), nil
}

// checkPrivateKey returns ErrInvalidPrivateKey when d is not in [1, n).
func checkPrivateKey(d, n *big.Int) error {
	if d == nil || d.Sign() <= 0 || d.Cmp(n) >= 0 {
		return makeError(ErrInvalidPrivateKey, "private key is not in the "+
			"range [1, n)")
	}
	return nil
}

// GenerateKeyPair returns a new key pair for the passed curve using the
// default cryptographically secure random source.
func GenerateKeyPair(c *curve.Curve) (*KeyPair, error) {
	return GenerateKeyPairFromRand(c, rand.Reader())
}

// GenerateKeyPairFromRand returns a new key pair for the passed curve with the
// private key drawn uniformly from [1, n) using the passed random source.
// ErrRNGFailure is returned when the source fails.
func GenerateKeyPairFromRand(c *curve.Curve, r io.Reader) (*KeyPair, error) {
	d, err := randScalar(r, c.N())
	if err != nil {
		return nil, err
	}
	return NewKeyPair(c, d)
}

// NewKeyPair returns the key pair for the passed private key, which must be
// in [1, n).
func NewKeyPair(c *curve.Curve, d *big.Int) (*KeyPair, error) {
	if err := checkPrivateKey(d, c.N()); err != nil {
		return nil, err
	}
	q, err := c.ScalarBaseMult(d)
	if err != nil {
		return nil, err
	}
	return &KeyPair{curve: c, d: new(big.Int).Set(d), q: q}, nil
}

// Curve returns the curve of the key pair.
func (kp *KeyPair) Curve() *curve.Curve {
	return kp.curve
}

// D returns a copy of the private key.
func (kp *KeyPair) D() *big.Int {
	return new(big.Int).Set(kp.d)
}

// Public returns the public key.
func (kp *KeyPair) Public() curve.Point {
	return kp.q
}

// Sign signs the SHA-256 digest of the passed message with the private key.
func (kp *KeyPair) Sign(msg []byte) (*Signature, error) {
	return Sign(kp.curve, msg, kp.d)
}

// Verify returns whether or not the passed signature is valid for the message
// under the public key.
func (kp *KeyPair) Verify(msg []byte, sig *Signature) (bool, error) {
	return Verify(kp.curve, msg, kp.q, sig)
}

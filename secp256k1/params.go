// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// References:
//   [SECG]: Recommended Elliptic Curve Domain Parameters
//     https://www.secg.org/sec2-v2.pdf

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/decred/weierstrass/curve"
)

// Name is the name of the curve.
const Name = "secp256k1"

// fromHex parses a hard-coded hex constant and panics when it is malformed.
func fromHex(s string) *big.Int {
	r, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("invalid hex in source file: " + s)
	}
	return r
}

// Params returns the secp256k1 domain parameters as defined in section 2.4.1
// of [SECG].
func Params() curve.Params {
	return curve.Params{
		Name: Name,
		P:    fromHex("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f"),
		A:    big.NewInt(0),
		B:    big.NewInt(7),
		N:    fromHex("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"),
		H:    1,
		Gx:   fromHex("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"),
		Gy:   fromHex("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"),
	}
}

var initonce sync.Once
var s256 *curve.Curve

// initS256 validates and creates the shared secp256k1 curve.
func initS256() {
	c, err := curve.New(Params())
	if err != nil {
		panic(fmt.Sprintf("invalid secp256k1 parameters: %v", err))
	}
	s256 = c
}

// Curve returns the shared secp256k1 curve.  It is created on first use and is
// safe for concurrent use.
func Curve() *curve.Curve {
	initonce.Do(initS256)
	return s256
}

// Secp256k1 provides the secp256k1 curve along with a shorthand for deriving
// public keys.
type Secp256k1 struct {
	*curve.Curve
}

// New returns the secp256k1 preset backed by the shared curve.
func New() *Secp256k1 {
	return &Secp256k1{Curve: Curve()}
}

// GeneratePublicKey returns the public key d*G for the private key d.
func (s *Secp256k1) GeneratePublicKey(d *big.Int) (curve.Point, error) {
	return s.ScalarBaseMult(d)
}

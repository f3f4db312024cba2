// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"fmt"
	"math/big"

	dcrsecp "github.com/decred/dcrd/dcrec/secp256k1/v4"
	dcrecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/decred/weierstrass/curve"
)

// scalarSize is the size of a serialized private key or signature component.
const scalarSize = 32

// checkScalar returns ErrScalarOutOfRange when v is not in [1, n).
func checkScalar(name string, v *big.Int) error {
	if v == nil || v.Sign() <= 0 || v.Cmp(Curve().N()) >= 0 {
		str := fmt.Sprintf("%s is not in the range [1, n)", name)
		return makeError(ErrScalarOutOfRange, str)
	}
	return nil
}

// toModNScalar converts v, which must be in [0, n), to a mod n scalar.
func toModNScalar(v *big.Int) *dcrsecp.ModNScalar {
	var buf [scalarSize]byte
	v.FillBytes(buf[:])
	var s dcrsecp.ModNScalar
	s.SetBytes(&buf)
	return &s
}

// fromModNScalar converts the passed mod n scalar to a big integer.
func fromModNScalar(s *dcrsecp.ModNScalar) *big.Int {
	b := s.Bytes()
	return new(big.Int).SetBytes(b[:])
}

// ToPubKey converts an affine point on secp256k1 to a public key of the
// optimized implementation.
func ToPubKey(pt curve.Point) (*dcrsecp.PublicKey, error) {
	x, y, ok := pt.Coordinates()
	if !ok || !Curve().IsOnCurve(pt) {
		str := fmt.Sprintf("point %v is not a valid secp256k1 public key", pt)
		return nil, makeError(ErrPubKeyNotOnCurve, str)
	}

	var fx, fy dcrsecp.FieldVal
	fx.SetByteSlice(x.Bytes())
	fy.SetByteSlice(y.Bytes())
	return dcrsecp.NewPublicKey(&fx, &fy), nil
}

// FromPubKey converts a public key of the optimized implementation to an
// affine point on secp256k1.
func FromPubKey(pubKey *dcrsecp.PublicKey) (curve.Point, error) {
	pt, err := Curve().NewPoint(pubKey.X(), pubKey.Y())
	if err != nil {
		return curve.Point{}, Error{Err: ErrPubKeyNotOnCurve,
			Description: err.Error()}
	}
	return pt, nil
}

// ToPrivKey converts the private key d to a private key of the optimized
// implementation.
func ToPrivKey(d *big.Int) (*dcrsecp.PrivateKey, error) {
	if err := checkScalar("private key", d); err != nil {
		return nil, err
	}
	return dcrsecp.NewPrivateKey(toModNScalar(d)), nil
}

// FromPrivKey converts a private key of the optimized implementation to its
// integer form.
func FromPrivKey(privKey *dcrsecp.PrivateKey) *big.Int {
	return fromModNScalar(&privKey.Key)
}

// ToSignature converts the signature (r, s) to a signature of the optimized
// implementation.
func ToSignature(r, s *big.Int) (*dcrecdsa.Signature, error) {
	if err := checkScalar("signature r", r); err != nil {
		return nil, err
	}
	if err := checkScalar("signature s", s); err != nil {
		return nil, err
	}
	return dcrecdsa.NewSignature(toModNScalar(r), toModNScalar(s)), nil
}

// FromSignature returns the (r, s) values of a signature of the optimized
// implementation.
func FromSignature(sig *dcrecdsa.Signature) (r, s *big.Int) {
	sigR, sigS := sig.R(), sig.S()
	return fromModNScalar(&sigR), fromModNScalar(&sigS)
}

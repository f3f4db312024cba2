// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"fmt"
	"math/big"
)

// Signature is an ECDSA signature (r, s).  Signatures produced by this
// package always have r and s in [1, n), however a Signature may hold any
// values so that untrusted signatures can be verified.
type Signature struct {
	r, s *big.Int
}

// NewSignature instantiates a new signature given the passed r and s values.
// The values are copied.
func NewSignature(r, s *big.Int) *Signature {
	sig := &Signature{r: new(big.Int), s: new(big.Int)}
	if r != nil {
		sig.r.Set(r)
	}
	if s != nil {
		sig.s.Set(s)
	}
	return sig
}

// value returns a copy of v, treating nil as zero.
func value(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v)
}

// R returns a copy of the r value of the signature.  The zero value Signature
// has r = 0.
func (sig *Signature) R() *big.Int {
	return value(sig.r)
}

// S returns a copy of the s value of the signature.  The zero value Signature
// has s = 0.
func (sig *Signature) S() *big.Int {
	return value(sig.s)
}

// IsEqual compares this Signature instance to the one passed, returning true
// if both Signatures are equivalent.  A signature is equivalent to another if
// they both have the same scalar value for R and S.  A nil signature is only
// equal to another nil signature.
func (sig *Signature) IsEqual(otherSig *Signature) bool {
	if sig == nil || otherSig == nil {
		return sig == otherSig
	}
	return sig.R().Cmp(otherSig.R()) == 0 && sig.S().Cmp(otherSig.S()) == 0
}

// String returns the signature as the hex encoded pair (r, s).
func (sig *Signature) String() string {
	return fmt.Sprintf("(%x, %x)", sig.R(), sig.S())
}

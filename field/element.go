// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package field

import (
	"fmt"
	"math/big"
)

var (
	// bigOne and bigTwo are provided for convenience since they are used
	// repeatedly and must never be modified.
	bigOne = big.NewInt(1)
	bigTwo = big.NewInt(2)
)

// Element is an element of the prime field Z/pZ.  It consists of a value in
// the range [0, p) along with the modulus p of the field it belongs to.
//
// Elements are immutable.  Every arithmetic operation returns a new element
// and the accessors return copies of the underlying integers, so an Element
// may be freely shared between goroutines.
//
// The zero value is not a valid element.  Operations on it return
// ErrInvalidModulus.
type Element struct {
	n *big.Int
	p *big.Int
}

// validateModulus ensures the passed modulus can describe a field.
func validateModulus(p *big.Int) error {
	if p == nil {
		return makeError(ErrInvalidModulus, "field modulus is missing")
	}
	if p.Cmp(bigTwo) < 0 {
		str := fmt.Sprintf("field modulus %s is less than 2", p)
		return makeError(ErrInvalidModulus, str)
	}
	return nil
}

// New returns the element of the field with modulus p that has the passed
// value.  The value must already be in the range [0, p), otherwise
// ErrValueOutOfRange is returned.  Use NewReduced to construct an element from
// an arbitrary integer.
func New(value, p *big.Int) (Element, error) {
	if err := validateModulus(p); err != nil {
		return Element{}, err
	}
	if value == nil || value.Sign() < 0 || value.Cmp(p) >= 0 {
		str := fmt.Sprintf("value %v is not in the range [0, %s)", value, p)
		return Element{}, makeError(ErrValueOutOfRange, str)
	}
	return Element{n: new(big.Int).Set(value), p: new(big.Int).Set(p)}, nil
}

// NewReduced returns the element of the field with modulus p that is
// congruent to the passed value.  Negative values are reduced into [0, p) as
// well.
func NewReduced(value, p *big.Int) (Element, error) {
	if err := validateModulus(p); err != nil {
		return Element{}, err
	}
	if value == nil {
		return Element{}, makeError(ErrValueOutOfRange, "value is missing")
	}

	// Mod uses Euclidean division, so the result is never negative.
	n := new(big.Int).Mod(value, p)
	return Element{n: n, p: new(big.Int).Set(p)}, nil
}

// NewFromUint64 returns the element of the field with modulus p that is
// congruent to v.
func NewFromUint64(v uint64, p *big.Int) (Element, error) {
	return NewReduced(new(big.Int).SetUint64(v), p)
}

// Zero returns the additive identity of the field with modulus p.
func Zero(p *big.Int) (Element, error) {
	return NewFromUint64(0, p)
}

// One returns the multiplicative identity of the field with modulus p.
func One(p *big.Int) (Element, error) {
	return NewFromUint64(1, p)
}

// withValue returns an element in the same field as e with the passed value,
// which must already be reduced.  The modulus is shared since it is never
// modified.
func (e Element) withValue(n *big.Int) Element {
	return Element{n: n, p: e.p}
}

// valid returns an error when e is the zero value rather than an element
// created by one of the constructors.
func (e Element) valid() error {
	if e.p == nil || e.n == nil {
		return makeError(ErrInvalidModulus, "element does not belong to a field")
	}
	return nil
}

// compatible returns an error unless e and o are valid elements of the same
// field.
func (e Element) compatible(o Element) error {
	if err := e.valid(); err != nil {
		return err
	}
	if err := o.valid(); err != nil {
		return err
	}
	if e.p != o.p && e.p.Cmp(o.p) != 0 {
		str := fmt.Sprintf("operands belong to different fields (p = %s "+
			"and p = %s)", e.p, o.p)
		return makeError(ErrFieldMismatch, str)
	}
	return nil
}

// Add returns (e + o) mod p.
func (e Element) Add(o Element) (Element, error) {
	if err := e.compatible(o); err != nil {
		return Element{}, err
	}
	n := new(big.Int).Add(e.n, o.n)
	if n.Cmp(e.p) >= 0 {
		n.Sub(n, e.p)
	}
	return e.withValue(n), nil
}

// Sub returns (e - o) mod p.  It is computed as (e + p - o) mod p so the
// intermediate value is never negative.
func (e Element) Sub(o Element) (Element, error) {
	if err := e.compatible(o); err != nil {
		return Element{}, err
	}
	n := new(big.Int).Add(e.n, e.p)
	n.Sub(n, o.n)
	n.Mod(n, e.p)
	return e.withValue(n), nil
}

// Mul returns (e * o) mod p.
func (e Element) Mul(o Element) (Element, error) {
	if err := e.compatible(o); err != nil {
		return Element{}, err
	}
	n := new(big.Int).Mul(e.n, o.n)
	n.Mod(n, e.p)
	return e.withValue(n), nil
}

// Div returns e / o, that is e * o^(p-2) mod p.  The inverse is computed via
// Fermat's little theorem and is therefore only correct when p is prime.
//
// ErrDivideByZero is returned when o is zero.
func (e Element) Div(o Element) (Element, error) {
	if err := e.compatible(o); err != nil {
		return Element{}, err
	}
	inv, err := o.Inverse()
	if err != nil {
		return Element{}, err
	}
	return e.Mul(inv)
}

// Inverse returns e^-1 = e^(p-2) mod p.  ErrDivideByZero is returned when e is
// zero.
func (e Element) Inverse() (Element, error) {
	if err := e.valid(); err != nil {
		return Element{}, err
	}
	if e.n.Sign() == 0 {
		return Element{}, makeError(ErrDivideByZero, "the zero element "+
			"has no multiplicative inverse")
	}
	exp := new(big.Int).Sub(e.p, bigTwo)
	return e.withValue(new(big.Int).Exp(e.n, exp, e.p)), nil
}

// Neg returns -e mod p.
func (e Element) Neg() (Element, error) {
	if err := e.valid(); err != nil {
		return Element{}, err
	}
	if e.n.Sign() == 0 {
		return e, nil
	}
	return e.withValue(new(big.Int).Sub(e.p, e.n)), nil
}

// Square returns e^2 mod p.
func (e Element) Square() (Element, error) {
	return e.Mul(e)
}

// Exp returns e^k mod p for a non-negative exponent k.
func (e Element) Exp(k *big.Int) (Element, error) {
	if err := e.valid(); err != nil {
		return Element{}, err
	}
	if k == nil || k.Sign() < 0 {
		return Element{}, makeError(ErrValueOutOfRange, "exponent must be "+
			"non-negative")
	}
	return e.withValue(new(big.Int).Exp(e.n, k, e.p)), nil
}

// MulInt returns (k * e) mod p for a small unsigned integer k.
func (e Element) MulInt(k uint64) (Element, error) {
	if err := e.valid(); err != nil {
		return Element{}, err
	}
	n := new(big.Int).SetUint64(k)
	n.Mul(n, e.n)
	n.Mod(n, e.p)
	return e.withValue(n), nil
}

// Value returns a copy of the value of the element.
func (e Element) Value() *big.Int {
	if e.n == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(e.n)
}

// Modulus returns a copy of the modulus of the field the element belongs to.
// It is nil for the zero value.
func (e Element) Modulus() *big.Int {
	if e.p == nil {
		return nil
	}
	return new(big.Int).Set(e.p)
}

// IsZero returns whether or not the element is the additive identity.
func (e Element) IsZero() bool {
	return e.n == nil || e.n.Sign() == 0
}

// IsOne returns whether or not the element is the multiplicative identity.
func (e Element) IsOne() bool {
	return e.n != nil && e.n.Cmp(bigOne) == 0
}

// IsOdd returns whether or not the value of the element is odd.
func (e Element) IsOdd() bool {
	return e.n != nil && e.n.Bit(0) == 1
}

// SameField returns whether or not e and o belong to the same field.
func (e Element) SameField(o Element) bool {
	return e.compatible(o) == nil
}

// Equals returns whether or not the two elements have the same value and
// belong to the same field.
func (e Element) Equals(o Element) bool {
	return e.SameField(o) && e.n.Cmp(o.n) == 0
}

// Bytes returns the big-endian encoding of the value padded to the byte
// length of the modulus.
func (e Element) Bytes() []byte {
	if e.valid() != nil {
		return nil
	}
	b := make([]byte, (e.p.BitLen()+7)/8)
	return e.n.FillBytes(b)
}

// String returns the value of the element as a hex string.
func (e Element) String() string {
	if e.n == nil {
		return "<invalid>"
	}
	return e.n.Text(16)
}

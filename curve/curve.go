// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package curve

// References:
//   [SECG]: Recommended Elliptic Curve Domain Parameters
//     https://www.secg.org/sec2-v2.pdf
//
//   [GECC]: Guide to Elliptic Curve Cryptography (Hankerson, Menezes, Vanstone)

import (
	"fmt"
	"math/big"

	"github.com/decred/weierstrass/field"
)

// primalityRounds is the number of Miller-Rabin rounds used when validating
// the field prime and group order of a curve.
const primalityRounds = 20

// Params houses the domain parameters of a short Weierstrass curve
// y^2 = x^3 + a*x + b over the prime field of order P with a base point
// G = (Gx, Gy) of prime order N and cofactor H.  H must be at least 1.
type Params struct {
	Name   string
	P      *big.Int
	A, B   *big.Int
	N      *big.Int
	H      int
	Gx, Gy *big.Int
}

// Curve is a validated short Weierstrass curve together with its base point
// and group order.
//
// A Curve is immutable after construction and is intended to be shared by
// pointer between any number of goroutines.
type Curve struct {
	name string
	p    *big.Int
	n    *big.Int
	h    int
	a, b field.Element
	g    Point
}

// New validates the passed domain parameters and returns the curve they
// describe.
//
// The following conditions are enforced:
//   - P is prime
//   - A and B are in [0, P) and the curve is non-singular
//   - G is on the curve
//   - N is prime and N*G is the point at infinity
//   - H is at least 1
func New(params Params) (*Curve, error) {
	if params.P == nil || !params.P.ProbablyPrime(primalityRounds) {
		str := fmt.Sprintf("field modulus %v is not prime", params.P)
		return nil, makeError(ErrInvalidPrime, str)
	}
	p := new(big.Int).Set(params.P)

	a, err := field.New(params.A, p)
	if err != nil {
		return nil, fmt.Errorf("invalid coefficient a: %w", err)
	}
	b, err := field.New(params.B, p)
	if err != nil {
		return nil, fmt.Errorf("invalid coefficient b: %w", err)
	}

	// The curve is singular when its discriminant 4a^3 + 27b^2 is zero.
	var ops arith
	fourA3 := ops.mulInt(ops.exp(a, 3), 4)
	disc := ops.add(fourA3, ops.mulInt(ops.square(b), 27))
	if ops.err != nil {
		return nil, ops.err
	}
	if disc.IsZero() {
		str := fmt.Sprintf("curve with a = %s and b = %s is singular", a, b)
		return nil, makeError(ErrSingularCurve, str)
	}

	if params.N == nil || !params.N.ProbablyPrime(primalityRounds) {
		str := fmt.Sprintf("group order %v is not prime", params.N)
		return nil, makeError(ErrInvalidOrder, str)
	}
	if params.H < 1 {
		str := fmt.Sprintf("cofactor %d is not positive", params.H)
		return nil, makeError(ErrInvalidOrder, str)
	}

	c := &Curve{
		name: params.Name,
		p:    p,
		n:    new(big.Int).Set(params.N),
		h:    params.H,
		a:    a,
		b:    b,
	}
	c.g, err = c.NewPoint(params.Gx, params.Gy)
	if err != nil {
		return nil, fmt.Errorf("invalid base point: %w", err)
	}

	nG, err := c.ScalarMult(c.g, c.n)
	if err != nil {
		return nil, err
	}
	if !nG.IsIdentity() {
		str := fmt.Sprintf("%v is not the order of the base point", c.n)
		return nil, makeError(ErrInvalidOrder, str)
	}

	return c, nil
}

// Name returns the name of the curve.
func (c *Curve) Name() string {
	return c.name
}

// P returns a copy of the prime modulus of the coordinate field.
func (c *Curve) P() *big.Int {
	return new(big.Int).Set(c.p)
}

// N returns a copy of the order of the base point.
func (c *Curve) N() *big.Int {
	return new(big.Int).Set(c.n)
}

// H returns the cofactor of the curve.
func (c *Curve) H() int {
	return c.h
}

// A returns the coefficient a of the curve equation.
func (c *Curve) A() field.Element {
	return c.a
}

// B returns the coefficient b of the curve equation.
func (c *Curve) B() field.Element {
	return c.b
}

// G returns the base point of the curve.
func (c *Curve) G() Point {
	return c.g
}

// Params returns a copy of the domain parameters of the curve.
func (c *Curve) Params() Params {
	gx, gy, _ := c.g.Coordinates()
	return Params{
		Name: c.name,
		P:    c.P(),
		A:    c.a.Value(),
		B:    c.b.Value(),
		N:    c.N(),
		H:    c.h,
		Gx:   gx.Value(),
		Gy:   gy.Value(),
	}
}

// FieldElement returns the element of the coordinate field congruent to v.
func (c *Curve) FieldElement(v *big.Int) (field.Element, error) {
	return field.NewReduced(v, c.p)
}

// NewPoint returns the affine point (x, y) after ensuring it is on the curve.
// The coordinates must be in the range [0, p).
func (c *Curve) NewPoint(x, y *big.Int) (Point, error) {
	fx, err := field.New(x, c.p)
	if err != nil {
		return Point{}, err
	}
	fy, err := field.New(y, c.p)
	if err != nil {
		return Point{}, err
	}
	pt, err := NewAffinePoint(fx, fy)
	if err != nil {
		return Point{}, err
	}
	if !c.IsOnCurve(pt) {
		str := fmt.Sprintf("point %v is not on curve %s", pt, c.name)
		return Point{}, makeError(ErrOffCurve, str)
	}
	return pt, nil
}

// IsOnCurve returns whether or not the point satisfies the curve equation
// y^2 = x^3 + a*x + b (mod p).  The point at infinity is on every curve, while
// an affine point with coordinates from another field is on none.
func (c *Curve) IsOnCurve(pt Point) bool {
	x, y, ok := pt.Coordinates()
	if !ok {
		return true
	}
	if !x.SameField(c.a) || !y.SameField(c.a) {
		return false
	}

	var ops arith
	lhs := ops.square(y)
	rhs := ops.add(ops.add(ops.exp(x, 3), ops.mul(c.a, x)), c.b)
	return ops.err == nil && lhs.Equals(rhs)
}

// requireOnCurve returns ErrOffCurve when the passed point is not on the
// curve.
func (c *Curve) requireOnCurve(pt Point) error {
	if !c.IsOnCurve(pt) {
		str := fmt.Sprintf("point %v is not on curve %s", pt, c.name)
		return makeError(ErrOffCurve, str)
	}
	return nil
}

// Add returns the sum of the two points using the chord rule.
//
// The point at infinity is the identity, so ∞ + P = P and P + ∞ = P, and the
// sum of a point and its negation is the point at infinity.  Otherwise, with
// P1 = (x1, y1) and P2 = (x2, y2):
//
//	s  = (y2 - y1) / (x2 - x1)
//	x3 = s^2 - x1 - x2
//	y3 = s(x1 - x3) - y1
//
// The chord rule is undefined when the points are equal, so ErrInvalidPoint is
// returned in that case.  Use Double, or Sum which handles both cases.
func (c *Curve) Add(p1, p2 Point) (Point, error) {
	if err := c.requireOnCurve(p1); err != nil {
		return Point{}, err
	}
	if err := c.requireOnCurve(p2); err != nil {
		return Point{}, err
	}

	x1, y1, ok := p1.Coordinates()
	if !ok {
		return p2, nil
	}
	x2, y2, ok := p2.Coordinates()
	if !ok {
		return p1, nil
	}

	var ops arith
	if x1.Equals(x2) {
		// P + (-P) = ∞.
		sum := ops.add(y1, y2)
		if ops.err != nil {
			return Point{}, ops.err
		}
		if sum.IsZero() {
			return Identity(), nil
		}

		// Two points on the curve with the same x coordinate are either
		// negations of each other or equal.
		return Point{}, makeError(ErrInvalidPoint, "the chord rule is "+
			"undefined for equal points")
	}

	s := ops.div(ops.sub(y2, y1), ops.sub(x2, x1))
	return c.finish(&ops, x1, y1, x2, s)
}

// Double returns 2*P using the tangent rule.  With P = (x1, y1):
//
//	s  = (3x1^2 + a) / 2y1
//	x3 = s^2 - 2x1
//	y3 = s(x1 - x3) - y1
//
// The tangent at a point with y1 = 0 is vertical, so such a point has order
// two and doubles to the point at infinity.
func (c *Curve) Double(pt Point) (Point, error) {
	if err := c.requireOnCurve(pt); err != nil {
		return Point{}, err
	}
	x1, y1, ok := pt.Coordinates()
	if !ok {
		return Identity(), nil
	}
	if y1.IsZero() {
		return Identity(), nil
	}

	var ops arith
	num := ops.add(ops.mulInt(ops.square(x1), 3), c.a)
	s := ops.div(num, ops.mulInt(y1, 2))
	return c.finish(&ops, x1, y1, x1, s)
}

// finish completes a point addition or doubling given the slope s of the line
// through the operands and ensures the result is on the curve.
func (c *Curve) finish(ops *arith, x1, y1, x2, s field.Element) (Point, error) {
	x3 := ops.sub(ops.sub(ops.square(s), x1), x2)
	y3 := ops.sub(ops.mul(s, ops.sub(x1, x3)), y1)
	if ops.err != nil {
		return Point{}, ops.err
	}

	result := Point{x: x3, y: y3, affine: true}
	if !c.IsOnCurve(result) {
		str := fmt.Sprintf("group operation produced point %v which is "+
			"not on curve %s", result, c.name)
		return Point{}, makeError(ErrInternal, str)
	}
	return result, nil
}

// Sum returns p1 + p2 for any two points on the curve, selecting the tangent
// rule when the points are equal and the chord rule otherwise.
func (c *Curve) Sum(p1, p2 Point) (Point, error) {
	if !p1.IsIdentity() && p1.Equal(p2) {
		return c.Double(p1)
	}
	return c.Add(p1, p2)
}

// Negate returns -P, which is (x, -y) for an affine point and the point at
// infinity for the point at infinity.
func (c *Curve) Negate(pt Point) (Point, error) {
	if err := c.requireOnCurve(pt); err != nil {
		return Point{}, err
	}
	x, y, ok := pt.Coordinates()
	if !ok {
		return Identity(), nil
	}
	negY, err := y.Neg()
	if err != nil {
		return Point{}, err
	}
	return Point{x: x, y: negY, affine: true}, nil
}

// ScalarMult returns k*P for a non-negative scalar k.
//
// It uses the left-to-right binary method (see Algorithm 3.27 in [GECC]) which
// processes the bits of k from the most significant bit down, doubling for
// every bit and adding P for every set bit.  The result is the same as the
// recursive definition
//
//	0*P = ∞, 1*P = P, k*P = P + (k-1)*P for odd k, k*P = (k/2)*(2P) for even k
//
// without the recursion.  The running sum may equal P when k is larger than
// the order of P, in which case the tangent rule is used.
//
// This is not constant time.
func (c *Curve) ScalarMult(pt Point, k *big.Int) (Point, error) {
	if err := c.requireOnCurve(pt); err != nil {
		return Point{}, err
	}
	if k == nil || k.Sign() < 0 {
		return Point{}, makeError(ErrInvalidScalar, "scalar must be "+
			"non-negative")
	}
	if k.Sign() == 0 || pt.IsIdentity() {
		return Identity(), nil
	}

	result := pt
	for i := k.BitLen() - 2; i >= 0; i-- {
		var err error
		result, err = c.Double(result)
		if err != nil {
			return Point{}, err
		}
		if k.Bit(i) == 1 {
			result, err = c.Sum(result, pt)
			if err != nil {
				return Point{}, err
			}
		}
	}
	return result, nil
}

// ScalarBaseMult returns k*G where G is the base point of the curve.
func (c *Curve) ScalarBaseMult(k *big.Int) (Point, error) {
	return c.ScalarMult(c.g, k)
}

// String returns the name of the curve.
func (c *Curve) String() string {
	return c.name
}

// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package curve implements the group law of short Weierstrass elliptic curves
y^2 = x^3 + a*x + b over prime fields in affine coordinates.

A Curve is built from its domain parameters with New, which validates them,
and is read-only afterwards.  Points are values of the Point type, which is a
tagged variant that is either the point at infinity or an affine point, so the
identity of the group is never confused with a coordinate pair.

The package provides point addition (the chord rule), point doubling (the
tangent rule), a complete Sum that selects between the two, negation, and
scalar multiplication via the binary double-and-add method.

None of the operations are constant time.  They are intended for reference and
educational purposes, and for cross-checking optimized implementations.
*/
package curve

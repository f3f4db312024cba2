// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package curve

import (
	"fmt"

	"github.com/decred/weierstrass/field"
)

// Point is an element of the group of points of a short Weierstrass curve.  It
// is either the point at infinity, which is the identity of the group, or an
// affine point (x, y) with both coordinates in the same prime field.
//
// The zero value is the point at infinity.  The point at infinity has no
// coordinates, so it is never represented by a sentinel such as (0, 0).
//
// Points are immutable and safe for concurrent use.
type Point struct {
	x, y   field.Element
	affine bool
}

// Identity returns the point at infinity.
func Identity() Point {
	return Point{}
}

// NewAffinePoint returns the affine point with the passed coordinates.  Both
// coordinates must belong to the same field.
//
// Note that the point is not checked against any curve equation since a point
// does not carry its curve.  Use Curve.NewPoint to create a point that is known
// to be on a given curve.
func NewAffinePoint(x, y field.Element) (Point, error) {
	if !x.SameField(y) {
		// Run an operation between the two to surface the precise field
		// error for the caller.
		if _, err := x.Add(y); err != nil {
			return Point{}, err
		}
	}
	return Point{x: x, y: y, affine: true}, nil
}

// IsIdentity returns whether or not the point is the point at infinity.
func (p Point) IsIdentity() bool {
	return !p.affine
}

// X returns the affine x coordinate of the point.  ErrInvalidPoint is returned
// for the point at infinity.
func (p Point) X() (field.Element, error) {
	if !p.affine {
		return field.Element{}, makeError(ErrInvalidPoint, "the point at "+
			"infinity has no affine x coordinate")
	}
	return p.x, nil
}

// Y returns the affine y coordinate of the point.  ErrInvalidPoint is returned
// for the point at infinity.
func (p Point) Y() (field.Element, error) {
	if !p.affine {
		return field.Element{}, makeError(ErrInvalidPoint, "the point at "+
			"infinity has no affine y coordinate")
	}
	return p.y, nil
}

// Coordinates returns the affine coordinates of the point along with true, or
// false when the point is the point at infinity.
func (p Point) Coordinates() (x, y field.Element, ok bool) {
	return p.x, p.y, p.affine
}

// Equal returns whether or not the two points are the same group element.
func (p Point) Equal(o Point) bool {
	if !p.affine || !o.affine {
		return p.affine == o.affine
	}
	return p.x.Equals(o.x) && p.y.Equals(o.y)
}

// String returns the point in a human-readable form.
func (p Point) String() string {
	if !p.affine {
		return "Identity"
	}
	return fmt.Sprintf("(%s, %s)", p.x, p.y)
}

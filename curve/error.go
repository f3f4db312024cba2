// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package curve

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrOffCurve indicates a point presented to a curve operation does not
	// satisfy the curve equation.
	ErrOffCurve = ErrorKind("ErrOffCurve")

	// ErrInvalidPoint indicates the point at infinity was provided where an
	// affine point is required, or the chord formula was requested for two
	// equal points, which is the doubling case.
	ErrInvalidPoint = ErrorKind("ErrInvalidPoint")

	// ErrInvalidScalar indicates a scalar multiplication was requested with a
	// missing or negative scalar.
	ErrInvalidScalar = ErrorKind("ErrInvalidScalar")

	// ErrSingularCurve indicates the curve coefficients describe a singular
	// curve, that is 4a^3 + 27b^2 = 0 mod p.
	ErrSingularCurve = ErrorKind("ErrSingularCurve")

	// ErrInvalidPrime indicates the modulus of the coordinate field is missing
	// or not prime.
	ErrInvalidPrime = ErrorKind("ErrInvalidPrime")

	// ErrInvalidOrder indicates the group order is missing, not prime, or is
	// not the order of the base point.
	ErrInvalidOrder = ErrorKind("ErrInvalidOrder")

	// ErrInternal indicates an internal invariant was violated, such as a
	// group operation on valid inputs producing a point that is not on the
	// curve.  It is never expected in practice.
	ErrInternal = ErrorKind("ErrInternal")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to elliptic curve operations.  It has full
// support for errors.Is and errors.As, so the caller can ascertain the specific
// reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

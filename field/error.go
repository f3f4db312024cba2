// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package field

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidModulus indicates a field was requested with a modulus that is
	// missing or smaller than two.
	ErrInvalidModulus = ErrorKind("ErrInvalidModulus")

	// ErrValueOutOfRange indicates a value provided for a field element is
	// negative or not less than the field modulus.
	ErrValueOutOfRange = ErrorKind("ErrValueOutOfRange")

	// ErrFieldMismatch indicates an operation was attempted on two elements
	// that belong to fields with different moduli.
	ErrFieldMismatch = ErrorKind("ErrFieldMismatch")

	// ErrDivideByZero indicates a division by, or an inversion of, the zero
	// element was attempted.
	ErrDivideByZero = ErrorKind("ErrDivideByZero")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to field arithmetic.  It has full support
// for errors.Is and errors.As, so the caller can ascertain the specific reason
// for the error by checking the underlying error.
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

// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrBadNonce indicates the ephemeral nonce used to sign produced the
	// point at infinity, r = 0 or s = 0, or was outside of the range [1, n).
	ErrBadNonce = ErrorKind("ErrBadNonce")

	// ErrRNGFailure indicates the random source failed to provide bytes.
	ErrRNGFailure = ErrorKind("ErrRNGFailure")

	// ErrInvalidPrivateKey indicates a private key is missing or not in the
	// range [1, n).
	ErrInvalidPrivateKey = ErrorKind("ErrInvalidPrivateKey")

	// ErrInvalidPubKey indicates a public key is the point at infinity or is
	// not on the curve.
	ErrInvalidPubKey = ErrorKind("ErrInvalidPubKey")

	// ErrUnknownHash indicates a hash function name is not registered.
	ErrUnknownHash = ErrorKind("ErrUnknownHash")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to an ECDSA operation.  It has full support
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

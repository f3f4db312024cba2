// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package field implements arithmetic in prime fields Z/pZ of arbitrary size.

An Element couples a value with the modulus of the field it belongs to, so
arithmetic between elements of different fields is detected and reported with
ErrFieldMismatch instead of silently producing a meaningless result.  Division
computes the inverse via Fermat's little theorem, b^-1 = b^(p-2) mod p, and is
therefore only defined for prime moduli.

The same type serves both the coordinate field of an elliptic curve (modulus p)
and the scalar field of its group (modulus n).

Errors returned by this package are of type Error and wrap an ErrorKind, so
they may be checked with errors.Is and errors.As.
*/
package field

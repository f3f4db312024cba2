// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package ecdsa implements the Elliptic Curve Digital Signature Algorithm over
any curve provided by the curve package.

Private keys are integers in [1, n) where n is the order of the base point of
the curve, and public keys are the points d*G.  Signatures are the pair of
integers (r, s) with both values in [1, n).  No signature encoding is provided
and s is not normalized to the lower half of the group order.

All arithmetic on r, s, nonces and private keys is performed modulo the group
order n by way of elements of the field of order n.  Messages are hashed with
SHA-256 unless a digest from another registered hash function is signed with
the Digest variants.

Nonces are drawn from a cryptographically secure random source by default.
The Deterministic variants derive nonces per RFC 6979 with HMAC-SHA256 instead,
which produces the same signature as other RFC 6979 implementations over
secp256k1 up to the choice of s or n - s.

This package is not constant time and must not be used where timing side
channels are a concern.
*/
package ecdsa

// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

// References:
//   [GECC]: Guide to Elliptic Curve Cryptography (Hankerson, Menezes, Vanstone)
//
//   [SEC1]: Elliptic Curve Cryptography (May 31, 2009, Version 2.0)
//     https://www.secg.org/sec1-v2.pdf

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/decred/dcrd/crypto/rand"
	"github.com/decred/weierstrass/curve"
	"github.com/decred/weierstrass/field"
)

// maxNonceAttempts is the number of nonces signing tries before giving up with
// ErrBadNonce.  A bad nonce occurs with probability about 1/n per attempt, so
// this is only ever reached on tiny test curves or with a broken source.
const maxNonceAttempts = 64

// scalars performs arithmetic modulo the group order n by way of elements of
// the field of order n.  It records the first error encountered.
type scalars struct {
	n   *big.Int
	err error
}

func (sc *scalars) elem(v *big.Int) field.Element {
	if sc.err != nil {
		return field.Element{}
	}
	e, err := field.NewReduced(v, sc.n)
	sc.err = err
	return e
}

func (sc *scalars) do(e field.Element, err error) field.Element {
	if sc.err != nil {
		return field.Element{}
	}
	sc.err = err
	return e
}

// hashToInt converts the passed digest to the integer e that is signed, which
// is the digest interpreted as a big-endian integer reduced modulo n.
func hashToInt(digest []byte, n *big.Int) *big.Int {
	e := new(big.Int).SetBytes(digest)
	return e.Mod(e, n)
}

// signWithNonce is the core of the signing algorithm for a reduced message
// integer e.  It is 4.29 in [GECC] with the nonce supplied by the caller.
//
// 1. R = k*G, fail when R is the point at infinity
// 2. r = R.x mod n, fail when r = 0
// 3. s = k^-1(e + dr) mod n, fail when s = 0
// 4. Return (r, s)
func signWithNonce(c *curve.Curve, e, d, k *big.Int) (*Signature, error) {
	n := c.N()
	if k == nil || k.Sign() <= 0 || k.Cmp(n) >= 0 {
		return nil, makeError(ErrBadNonce, "nonce is not in the range [1, n)")
	}

	// Step 1.
	kG, err := c.ScalarBaseMult(k)
	if err != nil {
		return nil, err
	}
	xR, _, ok := kG.Coordinates()
	if !ok {
		return nil, makeError(ErrBadNonce, "nonce produced the point at "+
			"infinity")
	}

	// Step 2.
	sc := scalars{n: n}
	r := sc.elem(xR.Value())
	if sc.err == nil && r.IsZero() {
		return nil, makeError(ErrBadNonce, "nonce produced r = 0")
	}

	// Step 3.
	sum := sc.do(sc.elem(e).Add(sc.do(sc.elem(d).Mul(r))))
	s := sc.do(sum.Div(sc.elem(k)))
	if sc.err != nil {
		return nil, fmt.Errorf("unable to compute signature: %w", sc.err)
	}
	if s.IsZero() {
		return nil, makeError(ErrBadNonce, "nonce produced s = 0")
	}

	// Step 4.
	return &Signature{r: r.Value(), s: s.Value()}, nil
}

// SignWithNonce signs the passed digest with private key d using the caller
// supplied nonce k.  It makes a single attempt and returns ErrBadNonce when k
// is not in [1, n) or produces an invalid signature.
//
// Reusing a nonce for two different digests reveals the private key.  Use
// SignDigest or SignDigestDeterministic unless the nonce is managed
// externally.
func SignWithNonce(c *curve.Curve, digest []byte, d, k *big.Int) (*Signature, error) {
	n := c.N()
	if err := checkPrivateKey(d, n); err != nil {
		return nil, err
	}
	return signWithNonce(c, hashToInt(digest, n), d, k)
}

// SignDigestWithRand signs the passed digest with private key d using nonces
// drawn uniformly from [1, n) with the passed random source.  Nonces that
// produce an invalid signature are replaced by fresh draws.
func SignDigestWithRand(c *curve.Curve, r io.Reader, digest []byte, d *big.Int) (*Signature, error) {
	n := c.N()
	if err := checkPrivateKey(d, n); err != nil {
		return nil, err
	}
	e := hashToInt(digest, n)
	for attempt := 1; attempt <= maxNonceAttempts; attempt++ {
		k, err := randScalar(r, n)
		if err != nil {
			return nil, err
		}
		sig, err := signWithNonce(c, e, d, k)
		if isBadNonce(err) {
			log.Debugf("Rejected random nonce (attempt %d): %v", attempt, err)
			continue
		}
		return sig, err
	}
	str := fmt.Sprintf("no valid nonce after %d attempts", maxNonceAttempts)
	return nil, makeError(ErrBadNonce, str)
}

// SignDigest signs the passed digest with private key d using nonces from the
// default cryptographically secure random source.
func SignDigest(c *curve.Curve, digest []byte, d *big.Int) (*Signature, error) {
	return SignDigestWithRand(c, rand.Reader(), digest, d)
}

// SignWithRand signs the SHA-256 digest of the passed message with private key
// d using nonces drawn with the passed random source.
func SignWithRand(c *curve.Curve, r io.Reader, msg []byte, d *big.Int) (*Signature, error) {
	return SignDigestWithRand(c, r, SHA256.Sum(msg), d)
}

// Sign signs the SHA-256 digest of the passed message with private key d using
// nonces from the default cryptographically secure random source.
func Sign(c *curve.Curve, msg []byte, d *big.Int) (*Signature, error) {
	return SignDigestWithRand(c, rand.Reader(), SHA256.Sum(msg), d)
}

// SignDigestDeterministic signs the passed digest with private key d using
// deterministic nonces per RFC 6979 with HMAC-SHA256.  Signing the same digest
// with the same key always produces the same signature.
func SignDigestDeterministic(c *curve.Curve, digest []byte, d *big.Int) (*Signature, error) {
	n := c.N()
	if err := checkPrivateKey(d, n); err != nil {
		return nil, err
	}
	e := hashToInt(digest, n)
	nonces := newNonceRFC6979(d, digest, n)
	for attempt := 1; attempt <= maxNonceAttempts; attempt++ {
		sig, err := signWithNonce(c, e, d, nonces.Next())
		if isBadNonce(err) {
			log.Debugf("Rejected deterministic nonce (attempt %d): %v",
				attempt, err)
			continue
		}
		return sig, err
	}
	str := fmt.Sprintf("no valid nonce after %d attempts", maxNonceAttempts)
	return nil, makeError(ErrBadNonce, str)
}

// SignDeterministic signs the SHA-256 digest of the passed message with
// private key d using deterministic RFC 6979 nonces.
func SignDeterministic(c *curve.Curve, msg []byte, d *big.Int) (*Signature, error) {
	return SignDigestDeterministic(c, SHA256.Sum(msg), d)
}

// isBadNonce returns whether or not the passed error is ErrBadNonce.
func isBadNonce(err error) bool {
	return errors.Is(err, ErrBadNonce)
}

// inRange returns whether or not v is in [1, n).  A nil v is not.
func inRange(v, n *big.Int) bool {
	return v != nil && v.Sign() > 0 && v.Cmp(n) < 0
}

// VerifyDigest returns whether or not the passed signature is valid for the
// digest under public key q.  It is 4.30 in [GECC]:
//
// 1. Fail if r and s are not in [1, n)
// 2. e = digest mod n
// 3. w = s^-1 mod n
// 4. u1 = ew mod n, u2 = rw mod n
// 5. X = u1*G + u2*Q, fail if X is the point at infinity
// 6. Verified if X.x mod n = r
//
// A well-formed signature that does not verify returns false without an
// error.  ErrInvalidPubKey is returned when q is the point at infinity or is
// not on the curve.
func VerifyDigest(c *curve.Curve, digest []byte, q curve.Point, sig *Signature) (bool, error) {
	if q.IsIdentity() {
		return false, makeError(ErrInvalidPubKey, "public key is the point "+
			"at infinity")
	}
	if !c.IsOnCurve(q) {
		str := fmt.Sprintf("public key %v is not on curve %s", q, c.Name())
		return false, makeError(ErrInvalidPubKey, str)
	}

	// Step 1.
	n := c.N()
	if sig == nil || !inRange(sig.r, n) || !inRange(sig.s, n) {
		return false, nil
	}

	// Steps 2 through 4.
	sc := scalars{n: n}
	w := sc.do(sc.elem(sig.s).Inverse())
	u1 := sc.do(sc.elem(hashToInt(digest, n)).Mul(w))
	u2 := sc.do(sc.elem(sig.r).Mul(w))
	if sc.err != nil {
		return false, fmt.Errorf("unable to verify signature: %w", sc.err)
	}

	// Step 5.
	u1G, err := c.ScalarBaseMult(u1.Value())
	if err != nil {
		return false, err
	}
	u2Q, err := c.ScalarMult(q, u2.Value())
	if err != nil {
		return false, err
	}
	x, err := c.Sum(u1G, u2Q)
	if err != nil {
		return false, err
	}
	xX, _, ok := x.Coordinates()
	if !ok {
		return false, nil
	}

	// Step 6.
	v := new(big.Int).Mod(xX.Value(), n)
	return v.Cmp(sig.r) == 0, nil
}

// Verify returns whether or not the passed signature is valid for the SHA-256
// digest of the message under public key q.
func Verify(c *curve.Curve, msg []byte, q curve.Point, sig *Signature) (bool, error) {
	return VerifyDigest(c, SHA256.Sum(msg), q, sig)
}

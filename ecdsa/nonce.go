// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

// References:
//   [RFC6979]: Deterministic Usage of the Digital Signature Algorithm (DSA)
//     and Elliptic Curve Digital Signature Algorithm (ECDSA)
//     https://www.rfc-editor.org/rfc/rfc6979

import (
	"crypto/hmac"
	"crypto/sha256"
	"math/big"
)

var (
	// singleZero and singleOne are the separator bytes of steps D and F of
	// section 3.2 in [RFC6979].
	singleZero = []byte{0x00}
	singleOne  = []byte{0x01}
)

// bits2int converts the passed octets to an integer and keeps only the qlen
// leftmost bits per section 2.3.2 of [RFC6979].
func bits2int(b []byte, qlen int) *big.Int {
	v := new(big.Int).SetBytes(b)
	if blen := len(b) * 8; blen > qlen {
		v.Rsh(v, uint(blen-qlen))
	}
	return v
}

// int2octets returns the big-endian encoding of x padded to rlen bytes per
// section 2.3.3 of [RFC6979].  x must be less than 2^(8*rlen).
func int2octets(x *big.Int, rlen int) []byte {
	out := make([]byte, rlen)
	return x.FillBytes(out)
}

// bits2octets converts the passed hash to an integer reduced modulo n and
// returns its octet encoding per section 2.3.4 of [RFC6979].
func bits2octets(hash []byte, n *big.Int, rlen int) []byte {
	z := bits2int(hash, n.BitLen())
	if z.Cmp(n) >= 0 {
		z.Sub(z, n)
	}
	return int2octets(z, rlen)
}

// nonceRFC6979 produces the stream of deterministic nonces defined by section
// 3.2 of [RFC6979] using HMAC-SHA256.  The first candidate is the nonce the RFC
// specifies and every following candidate is the one the RFC produces when
// the previous nonce is rejected by the signing code.
type nonceRFC6979 struct {
	n    *big.Int
	qlen int
	k, v []byte
	used bool
}

// hmacSHA256 returns HMAC-SHA256 keyed by key over the concatenation of the
// passed data.
func hmacSHA256(key []byte, data ...[]byte) []byte {
	mac := hmac.New(sha256.New, key)
	for _, d := range data {
		mac.Write(d)
	}
	return mac.Sum(nil)
}

// newNonceRFC6979 initializes the nonce stream for the passed private key and
// message hash over a group of order n.
func newNonceRFC6979(privKey *big.Int, hash []byte, n *big.Int) *nonceRFC6979 {
	qlen := n.BitLen()
	rlen := (qlen + 7) / 8
	key := append(int2octets(privKey, rlen), bits2octets(hash, n, rlen)...)

	// Step B.
	//
	// V = 0x01 0x01 0x01 ... 0x01
	v := make([]byte, sha256.Size)
	for i := range v {
		v[i] = 0x01
	}

	// Step C.
	//
	// K = 0x00 0x00 0x00 ... 0x00
	k := make([]byte, sha256.Size)

	// Step D.
	//
	// K = HMAC_K(V || 0x00 || int2octets(x) || bits2octets(h1))
	k = hmacSHA256(k, v, singleZero, key)

	// Step E.
	//
	// V = HMAC_K(V)
	v = hmacSHA256(k, v)

	// Step F.
	//
	// K = HMAC_K(V || 0x01 || int2octets(x) || bits2octets(h1))
	k = hmacSHA256(k, v, singleOne, key)

	// Step G.
	//
	// V = HMAC_K(V)
	v = hmacSHA256(k, v)

	return &nonceRFC6979{n: n, qlen: qlen, k: k, v: v}
}

// Next returns the next nonce candidate in [1, n).
func (g *nonceRFC6979) Next() *big.Int {
	for {
		// Every candidate after the first, whether it was rejected here or
		// by the caller, starts from updated state.
		//
		// K = HMAC_K(V || 0x00)
		// V = HMAC_K(V)
		if g.used {
			g.k = hmacSHA256(g.k, g.v, singleZero)
			g.v = hmacSHA256(g.k, g.v)
		}
		g.used = true

		// Step H1 and H2.
		//
		// Set T to the empty sequence and append V = HMAC_K(V) until T has
		// at least qlen bits.
		var t []byte
		for len(t)*8 < g.qlen {
			g.v = hmacSHA256(g.k, g.v)
			t = append(t, g.v...)
		}

		// Step H3.
		//
		// k = bits2int(T) is the nonce when it is in [1, n).
		k := bits2int(t, g.qlen)
		if k.Sign() > 0 && k.Cmp(g.n) < 0 {
			return k
		}
	}
}

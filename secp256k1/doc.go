// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package secp256k1 provides the secp256k1 curve used by Bitcoin and Decred as a
preset of the generic short Weierstrass curve implementation.

The curve is y^2 = x^3 + 7 over the prime field of order
2^256 - 2^32 - 977 with the standard base point and group order from [SECG].

Since the generic implementation favors clarity over speed, this package also
converts keys and signatures to and from the types of the optimized
github.com/decred/dcrd/dcrec/secp256k1/v4 module so results can be checked
against, or handed off to, a production implementation.

References:

	[SECG]: Recommended Elliptic Curve Domain Parameters
	  https://www.secg.org/sec2-v2.pdf
*/
package secp256k1

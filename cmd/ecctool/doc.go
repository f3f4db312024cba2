// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Ecctool generates secp256k1 key pairs and signs and verifies messages with
ECDSA.

Usage:

	ecctool [OPTIONS] <command> [command OPTIONS] [args]

Application Options:

	-d, --debuglevel= Logging level {trace, debug, info, warn, error,
	                  critical, off}
	    --logdir=     Directory to write a rotated log file to in addition to
	                  standard error

Commands:

	keygen   Generate a new secp256k1 key pair
	pubkey   Show the public key of a private key
	sign     Sign a message
	verify   Verify the signature of a message
	version  Show the version

The pubkey and sign commands take the private key with --privkey or read it
from the terminal without echo with --promptkey.  Signatures are printed as the
hex-encoded r and s values separated by a space, and verify takes the public
key, r, s and the message as arguments:

	$ ecctool sign --promptkey --deterministic "Hello, world"
	$ ecctool verify <pubkey> <r> <s> "Hello, world"

Messages are hashed with SHA-256 unless --hash selects blake256, blake3 or
keccak256.
*/
package main

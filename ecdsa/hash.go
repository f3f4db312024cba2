// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"strings"

	"github.com/decred/dcrd/crypto/blake256"
	"golang.org/x/crypto/sha3"
	"lukechampine.com/blake3"
)

// HashFunc is a message digest algorithm used to reduce a message to the
// integer that is signed.  All registered hash functions produce 32-byte
// digests.
type HashFunc struct {
	name string
	sum  func(msg []byte) []byte
}

// Name returns the registered name of the hash function.
func (h *HashFunc) Name() string {
	return h.name
}

// Sum returns the digest of the passed message.
func (h *HashFunc) Sum(msg []byte) []byte {
	return h.sum(msg)
}

// String returns the registered name of the hash function.
func (h *HashFunc) String() string {
	return h.name
}

var (
	// SHA256 is the default message digest.
	SHA256 = &HashFunc{name: "sha256", sum: func(msg []byte) []byte {
		digest := sha256.Sum256(msg)
		return digest[:]
	}}

	// BLAKE256 is the 14-round BLAKE-256 digest used by Decred.
	BLAKE256 = &HashFunc{name: "blake256", sum: func(msg []byte) []byte {
		digest := blake256.Sum256(msg)
		return digest[:]
	}}

	// BLAKE3 is the BLAKE3 digest with a 32-byte output.
	BLAKE3 = &HashFunc{name: "blake3", sum: func(msg []byte) []byte {
		digest := blake3.Sum256(msg)
		return digest[:]
	}}

	// Keccak256 is the original Keccak-256 digest prior to the padding
	// change made by the SHA-3 standard.
	Keccak256 = &HashFunc{name: "keccak256", sum: func(msg []byte) []byte {
		h := sha3.NewLegacyKeccak256()
		h.Write(msg)
		return h.Sum(nil)
	}}
)

// hashFuncs houses the registered hash functions keyed by name.
var hashFuncs = map[string]*HashFunc{
	SHA256.name:    SHA256,
	BLAKE256.name:  BLAKE256,
	BLAKE3.name:    BLAKE3,
	Keccak256.name: Keccak256,
}

// HashFuncByName returns the registered hash function with the passed
// case-insensitive name.
func HashFuncByName(name string) (*HashFunc, error) {
	h, ok := hashFuncs[strings.ToLower(name)]
	if !ok {
		str := fmt.Sprintf("unknown hash function %q (supported: %s)", name,
			strings.Join(HashFuncNames(), ", "))
		return nil, makeError(ErrUnknownHash, str)
	}
	return h, nil
}

// HashFuncNames returns the sorted names of all registered hash functions.
func HashFuncNames() []string {
	names := make([]string, 0, len(hashFuncs))
	for name := range hashFuncs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

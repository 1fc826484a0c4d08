// Package kdf provides the two symmetric primitives the hybrid KEM
// combiner is built on: a fixed-output key derivation function (SHA3-256)
// used to hash the combiner transcript, and a pseudorandom generator
// (SHAKE-256) used to expand a seed into sub-seeds.
//
// Both operate on raw concatenated bytes with no length-prefix framing of
// any kind — the combiner transcript is a bare concatenation, and framing it
// would change the shared secret the construction produces for every
// ciphersuite.
package kdf

import (
	"golang.org/x/crypto/sha3"
)

// OutputSize is the fixed output length of Hash.
const OutputSize = 32

// Hash computes SHA3-256 over the raw concatenation of parts, with no
// separators, length prefixes, or domain tags beyond what the caller has
// already folded into parts itself.
func Hash(parts ...[]byte) [OutputSize]byte {
	h := sha3.New256()
	for _, p := range parts {
		h.Write(p)
	}
	var out [OutputSize]byte
	h.Sum(out[:0])
	return out
}

// Expand runs SHAKE-256 over the raw concatenation of parts and squeezes n
// bytes of output.
//
// Expand satisfies prefix-consistency: for n <= m, Expand(n, parts...) is a
// prefix of Expand(m, parts...), since both draw from the same absorbed
// XOF state and squeezing is just reading further into one continuous
// stream.
func Expand(n int, parts ...[]byte) []byte {
	x := sha3.NewShake256()
	for _, p := range parts {
		x.Write(p)
	}
	out := make([]byte, n)
	x.Read(out)
	return out
}

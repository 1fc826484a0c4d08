// Package pqkem implements the post-quantum Kem capability the hybrid
// combiner consumes: fixed-size byte interfaces over ML-KEM-768 and
// ML-KEM-1024 (NIST FIPS 203), seeded so that the decapsulation key is the
// 64-byte (d || z) ML-KEM seed rather than the expanded private state.
//
// Every implementation reconstructs its full decapsulation key from the
// seed on every call to Decaps; nothing is cached between calls, per the
// combiner's "no observable state across calls" requirement.
package pqkem

import "github.com/concretekem/hybridkem/internal/constants"

// Kem is the post-quantum half of a hybrid construction.
type Kem interface {
	// Name identifies the KEM for error messages and logging.
	Name() string

	// SeedSize is the length of the seed DeriveKeyPair and Decaps expect
	// (64 bytes for both ML-KEM-768 and ML-KEM-1024: d || z).
	SeedSize() int

	// EncapsulationKeySize is the wire length of an encapsulation key.
	EncapsulationKeySize() int

	// CiphertextSize is the wire length of a ciphertext.
	CiphertextSize() int

	// SharedSecretSize is the length of a shared secret (32 bytes).
	SharedSecretSize() int

	// RandomnessSize is the length EncapsDerand's randomness argument must
	// have (32 bytes: the ML-KEM encapsulation coin m).
	RandomnessSize() int

	// DeriveKeyPair deterministically derives the encapsulation key for
	// seed. The matching decapsulation key is never materialized here — it
	// is reconstructed from seed by Decaps on demand.
	DeriveKeyPair(seed []byte) (ek []byte, err error)

	// Encaps encapsulates against ek, drawing fresh randomness from
	// crypto/rand.
	Encaps(ek []byte) (ct, ss []byte, err error)

	// EncapsDerand deterministically encapsulates against ek using
	// randomness in place of an RNG read.
	EncapsDerand(ek, randomness []byte) (ct, ss []byte, err error)

	// Decaps reconstructs the decapsulation key from seed and decapsulates
	// ct against it.
	Decaps(seed, ct []byte) (ss []byte, err error)
}

// ByName returns the Kem implementation for a named suite's post-quantum
// side.
func ByName(s constants.Suite) Kem {
	switch s {
	case constants.P256MLKEM768, constants.X25519MLKEM768:
		return MLKEM768()
	case constants.P384MLKEM1024:
		return MLKEM1024()
	default:
		return nil
	}
}

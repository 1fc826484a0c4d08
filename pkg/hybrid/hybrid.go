// Package hybrid implements the generic hybrid KEM combiner framework: four
// parameterised constructions — GU, GC, KU, KC — built from the Cartesian
// product of {group-based, KEM-based} traditional sides and {Universal,
// C2PRI} KDF transcripts.
//
// Only GC (group-based, C2PRI) is bound to a named ciphersuite by package
// ciphersuite. The other three exist so the framework is complete and are
// exercised directly by this package's tests.
package hybrid

import "github.com/concretekem/hybridkem/pkg/kdf"

// CombinerStyle selects which fields the final KDF transcript binds.
type CombinerStyle int

const (
	// C2PRI omits ct_pq and ek_pq from the transcript, relying on the PQ
	// KEM's ciphertext second-preimage resistance.
	C2PRI CombinerStyle = iota

	// Universal binds every field: ss_pq, ss_t, ct_pq, ct_t, ek_pq, ek_t.
	Universal
)

// Kem is any fixed-size byte KEM usable as either half of a hybrid
// construction. pkg/pqkem's Kem implementations satisfy this structurally;
// so does groupKem, the adapter in this package that lets a NominalGroup
// stand in as a full KEM for the KU/KC constructions.
type Kem interface {
	SeedSize() int
	EncapsulationKeySize() int
	CiphertextSize() int
	SharedSecretSize() int
	RandomnessSize() int
	DeriveKeyPair(seed []byte) (ek []byte, err error)
	Encaps(ek []byte) (ct, ss []byte, err error)
	EncapsDerand(ek, randomness []byte) (ct, ss []byte, err error)
	Decaps(seed, ct []byte) (ss []byte, err error)
}

// transcript assembles the final shared secret given every component the
// two combiner styles might bind, omitting ct_pq/ek_pq for C2PRI.
func transcript(style CombinerStyle, ssPQ, ssT, ctPQ, ctT, ekPQ, ekT, label []byte) []byte {
	var out [kdf.OutputSize]byte
	if style == Universal {
		out = kdf.Hash(ssPQ, ssT, ctPQ, ctT, ekPQ, ekT, label)
	} else {
		out = kdf.Hash(ssPQ, ssT, ctT, ekT, label)
	}
	return out[:]
}

package hybrid

import (
	"crypto/rand"

	"github.com/concretekem/hybridkem/internal/errors"
	"github.com/concretekem/hybridkem/pkg/group"
)

// groupKem adapts a NominalGroup into a full KEM, DHKEM-style: both the
// encapsulation key and the ciphertext are group elements, and the shared
// secret is the group's own DH output. The KU/KC constructions need a Full
// KEM traditional side; since every concrete traditional primitive this
// framework ships is a NominalGroup, groupKem is what gives those two
// constructions something real to run against.
//
// As with pqkem.Kem, the "seed" DeriveKeyPair and Decaps take is not a
// persisted private key — it is the value random_scalar deterministically
// re-derives the scalar from on every call.
type groupKem struct {
	g group.Group
}

// AsKem exposes g as a Kem for use as the traditional side of KU or KC.
func AsKem(g group.Group) Kem {
	return groupKem{g: g}
}

func (k groupKem) SeedSize() int             { return k.g.SeedSize() }
func (k groupKem) EncapsulationKeySize() int { return k.g.ElementSize() }
func (k groupKem) CiphertextSize() int       { return k.g.ElementSize() }
func (k groupKem) SharedSecretSize() int     { return k.g.SharedSecretSize() }
func (k groupKem) RandomnessSize() int       { return k.g.SeedSize() }

func (k groupKem) DeriveKeyPair(seed []byte) ([]byte, error) {
	scalar, err := k.g.RandomScalar(seed)
	if err != nil {
		return nil, err
	}
	return k.g.PublicKey(scalar).Bytes(), nil
}

func (k groupKem) EncapsDerand(ek, randomness []byte) ([]byte, []byte, error) {
	peer, err := k.g.ParseElement(ek)
	if err != nil {
		return nil, nil, err
	}
	scalar, err := k.g.RandomScalar(randomness)
	if err != nil {
		return nil, nil, err
	}
	ct := k.g.PublicKey(scalar).Bytes()
	ss, err := k.g.DH(scalar, peer)
	if err != nil {
		return nil, nil, err
	}
	return ct, ss, nil
}

func (k groupKem) Encaps(ek []byte) ([]byte, []byte, error) {
	randomness := make([]byte, k.RandomnessSize())
	if _, err := rand.Read(randomness); err != nil {
		return nil, nil, errors.Primitive("groupKem.Encaps", err)
	}
	return k.EncapsDerand(ek, randomness)
}

func (k groupKem) Decaps(seed, ct []byte) ([]byte, error) {
	scalar, err := k.g.RandomScalar(seed)
	if err != nil {
		return nil, err
	}
	peer, err := k.g.ParseElement(ct)
	if err != nil {
		return nil, err
	}
	return k.g.DH(scalar, peer)
}

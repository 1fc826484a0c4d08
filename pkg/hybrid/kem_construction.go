package hybrid

import (
	"crypto/rand"

	"github.com/concretekem/hybridkem/internal/errors"
	"github.com/concretekem/hybridkem/pkg/kdf"
)

// KemConstruction is a hybrid KEM combiner whose traditional side is itself
// a full KEM rather than a bare NominalGroup: KC when Style is C2PRI, KU
// when Style is Universal. Neither is bound to a named ciphersuite — they
// exist to round out the framework's 2x2 matrix of traditional-side and
// combiner-style choices.
type KemConstruction struct {
	PQ    Kem
	T     Kem
	Style CombinerStyle
	Label []byte
}

func (c *KemConstruction) SeedSize() int { return 32 }

func (c *KemConstruction) EncapsulationKeySize() int {
	return c.PQ.EncapsulationKeySize() + c.T.EncapsulationKeySize()
}

func (c *KemConstruction) CiphertextSize() int {
	return c.PQ.CiphertextSize() + c.T.CiphertextSize()
}

func (c *KemConstruction) RandomnessSize() int {
	return c.PQ.RandomnessSize() + c.T.RandomnessSize()
}

func (c *KemConstruction) SharedSecretSize() int { return kdf.OutputSize }

func (c *KemConstruction) expandDecapsKey(seed []byte) (seedPQ, seedT, ekPQ, ekT []byte, err error) {
	if len(seed) != c.SeedSize() {
		return nil, nil, nil, nil, errors.BadLength("KemConstruction.expandDecapsKey", c.SeedSize(), len(seed))
	}
	expanded := kdf.Expand(c.PQ.SeedSize()+c.T.SeedSize(), seed)
	seedPQ = expanded[:c.PQ.SeedSize()]
	seedT = expanded[c.PQ.SeedSize():]

	ekPQ, err = c.PQ.DeriveKeyPair(seedPQ)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	ekT, err = c.T.DeriveKeyPair(seedT)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return seedPQ, seedT, ekPQ, ekT, nil
}

// DeriveKeyPair deterministically derives ek = ek_pq || ek_t from seed.
func (c *KemConstruction) DeriveKeyPair(seed []byte) (dk, ek []byte, err error) {
	_, _, ekPQ, ekT, err := c.expandDecapsKey(seed)
	if err != nil {
		return nil, nil, err
	}
	ek = append(append([]byte{}, ekPQ...), ekT...)
	dk = append([]byte{}, seed...)
	return dk, ek, nil
}

func (c *KemConstruction) splitEK(ek []byte) (ekPQ, ekT []byte, err error) {
	if len(ek) != c.EncapsulationKeySize() {
		return nil, nil, errors.BadLength("KemConstruction.encaps", c.EncapsulationKeySize(), len(ek))
	}
	return ek[:c.PQ.EncapsulationKeySize()], ek[c.PQ.EncapsulationKeySize():], nil
}

// EncapsDerand deterministically encapsulates against ek using randomness in
// place of RNG reads.
func (c *KemConstruction) EncapsDerand(ek, randomness []byte) (ct, ss []byte, err error) {
	ekPQ, ekT, err := c.splitEK(ek)
	if err != nil {
		return nil, nil, err
	}
	if len(randomness) != c.RandomnessSize() {
		return nil, nil, errors.BadLength("KemConstruction.encaps", c.RandomnessSize(), len(randomness))
	}
	randPQ := randomness[:c.PQ.RandomnessSize()]
	randT := randomness[c.PQ.RandomnessSize():]

	ctPQ, ssPQ, err := c.PQ.EncapsDerand(ekPQ, randPQ)
	if err != nil {
		return nil, nil, err
	}
	ctT, ssT, err := c.T.EncapsDerand(ekT, randT)
	if err != nil {
		return nil, nil, err
	}

	ct = append(append([]byte{}, ctPQ...), ctT...)
	ss = transcript(c.Style, ssPQ, ssT, ctPQ, ctT, ekPQ, ekT, c.Label)
	return ct, ss, nil
}

// Encaps encapsulates against ek, drawing fresh randomness from crypto/rand.
func (c *KemConstruction) Encaps(ek []byte) (ct, ss []byte, err error) {
	randomness := make([]byte, c.RandomnessSize())
	if _, err := rand.Read(randomness); err != nil {
		return nil, nil, errors.Primitive("KemConstruction.Encaps", err)
	}
	return c.EncapsDerand(ek, randomness)
}

// Decaps recovers the shared secret ct was created for, given dk.
func (c *KemConstruction) Decaps(dk, ct []byte) (ss []byte, err error) {
	if len(ct) != c.CiphertextSize() {
		return nil, errors.BadLength("KemConstruction.decaps", c.CiphertextSize(), len(ct))
	}
	ctPQ := ct[:c.PQ.CiphertextSize()]
	ctT := ct[c.PQ.CiphertextSize():]

	seedPQ, seedT, ekPQ, ekT, err := c.expandDecapsKey(dk)
	if err != nil {
		return nil, err
	}
	ssPQ, err := c.PQ.Decaps(seedPQ, ctPQ)
	if err != nil {
		return nil, err
	}
	ssT, err := c.T.Decaps(seedT, ctT)
	if err != nil {
		return nil, err
	}
	return transcript(c.Style, ssPQ, ssT, ctPQ, ctT, ekPQ, ekT, c.Label), nil
}

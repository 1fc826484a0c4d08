package hybrid

import (
	"crypto/rand"

	"github.com/concretekem/hybridkem/internal/errors"
	"github.com/concretekem/hybridkem/pkg/group"
	"github.com/concretekem/hybridkem/pkg/kdf"
)

// GroupConstruction is a hybrid KEM combiner whose traditional side is a
// NominalGroup: GC when Style is C2PRI (the construction every named
// ciphersuite binds to), GU when Style is Universal (reference-only).
type GroupConstruction struct {
	PQ    Kem
	T     group.Group
	Style CombinerStyle
	Label []byte
}

// SeedSize is the top-level decapsulation-key seed length: always 32.
func (c *GroupConstruction) SeedSize() int { return 32 }

func (c *GroupConstruction) EncapsulationKeySize() int {
	return c.PQ.EncapsulationKeySize() + c.T.ElementSize()
}

func (c *GroupConstruction) CiphertextSize() int {
	return c.PQ.CiphertextSize() + c.T.ElementSize()
}

func (c *GroupConstruction) RandomnessSize() int {
	return c.PQ.RandomnessSize() + c.T.SeedSize()
}

func (c *GroupConstruction) SharedSecretSize() int { return kdf.OutputSize }

// expandDecapsKey runs the PRG over seed and splits its output into the PQ
// sub-seed and the traditional-side scalar seed, deriving both sub-keys.
// Nothing derived here is cached by the caller across calls.
func (c *GroupConstruction) expandDecapsKey(seed []byte) (seedPQ []byte, dkT group.Scalar, ekPQ []byte, ekT group.Element, err error) {
	if len(seed) != c.SeedSize() {
		return nil, nil, nil, nil, errors.BadLength("GroupConstruction.expandDecapsKey", c.SeedSize(), len(seed))
	}
	expanded := kdf.Expand(c.PQ.SeedSize()+c.T.SeedSize(), seed)
	seedPQ = expanded[:c.PQ.SeedSize()]
	seedT := expanded[c.PQ.SeedSize():]

	ekPQ, err = c.PQ.DeriveKeyPair(seedPQ)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	dkT, err = c.T.RandomScalar(seedT)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	ekT = c.T.PublicKey(dkT)
	return seedPQ, dkT, ekPQ, ekT, nil
}

// DeriveKeyPair deterministically derives ek = ek_pq || ek_t from seed. The
// decapsulation key is the seed itself, verbatim.
func (c *GroupConstruction) DeriveKeyPair(seed []byte) (dk, ek []byte, err error) {
	_, _, ekPQ, ekT, err := c.expandDecapsKey(seed)
	if err != nil {
		return nil, nil, err
	}
	ek = append(append([]byte{}, ekPQ...), ekT.Bytes()...)
	dk = append([]byte{}, seed...)
	return dk, ek, nil
}

func (c *GroupConstruction) splitEK(ek []byte) (ekPQ []byte, ekT group.Element, err error) {
	if len(ek) != c.EncapsulationKeySize() {
		return nil, nil, errors.BadLength("GroupConstruction.encaps", c.EncapsulationKeySize(), len(ek))
	}
	ekPQ = ek[:c.PQ.EncapsulationKeySize()]
	ekT, err = c.T.ParseElement(ek[c.PQ.EncapsulationKeySize():])
	if err != nil {
		return nil, nil, err
	}
	return ekPQ, ekT, nil
}

// EncapsDerand deterministically encapsulates against ek using randomness in
// place of RNG reads.
func (c *GroupConstruction) EncapsDerand(ek, randomness []byte) (ct, ss []byte, err error) {
	ekPQ, ekT, err := c.splitEK(ek)
	if err != nil {
		return nil, nil, err
	}
	if len(randomness) != c.RandomnessSize() {
		return nil, nil, errors.BadLength("GroupConstruction.encaps", c.RandomnessSize(), len(randomness))
	}
	randPQ := randomness[:c.PQ.RandomnessSize()]
	seedE := randomness[c.PQ.RandomnessSize():]

	ctPQ, ssPQ, err := c.PQ.EncapsDerand(ekPQ, randPQ)
	if err != nil {
		return nil, nil, err
	}
	skE, err := c.T.RandomScalar(seedE)
	if err != nil {
		return nil, nil, err
	}
	ctT := c.T.PublicKey(skE)
	ssT, err := c.T.DH(skE, ekT)
	if err != nil {
		return nil, nil, err
	}

	ct = append(append([]byte{}, ctPQ...), ctT.Bytes()...)
	ss = transcript(c.Style, ssPQ, ssT, ctPQ, ctT.Bytes(), ekPQ, ekT.Bytes(), c.Label)
	return ct, ss, nil
}

// Encaps encapsulates against ek, drawing fresh randomness from crypto/rand.
func (c *GroupConstruction) Encaps(ek []byte) (ct, ss []byte, err error) {
	randomness := make([]byte, c.RandomnessSize())
	if _, err := rand.Read(randomness); err != nil {
		return nil, nil, errors.Primitive("GroupConstruction.Encaps", err)
	}
	return c.EncapsDerand(ek, randomness)
}

// Decaps recovers the shared secret ct was created for, given dk.
func (c *GroupConstruction) Decaps(dk, ct []byte) (ss []byte, err error) {
	if len(ct) != c.CiphertextSize() {
		return nil, errors.BadLength("GroupConstruction.decaps", c.CiphertextSize(), len(ct))
	}
	ctPQ := ct[:c.PQ.CiphertextSize()]
	ctTBytes := ct[c.PQ.CiphertextSize():]

	seedPQ, dkT, ekPQ, ekT, err := c.expandDecapsKey(dk)
	if err != nil {
		return nil, err
	}
	ssPQ, err := c.PQ.Decaps(seedPQ, ctPQ)
	if err != nil {
		return nil, err
	}
	ctT, err := c.T.ParseElement(ctTBytes)
	if err != nil {
		return nil, err
	}
	ssT, err := c.T.DH(dkT, ctT)
	if err != nil {
		return nil, err
	}
	return transcript(c.Style, ssPQ, ssT, ctPQ, ctTBytes, ekPQ, ekT.Bytes(), c.Label), nil
}

package pqkem

import (
	"crypto/rand"

	"github.com/cloudflare/circl/kem/mlkem/mlkem768"

	"github.com/concretekem/hybridkem/internal/errors"
)

// mlkem768Kem implements Kem for ML-KEM-768 (NIST FIPS 203, category 1).
type mlkem768Kem struct{}

// MLKEM768 returns the ML-KEM-768 post-quantum KEM.
func MLKEM768() Kem {
	return mlkem768Kem{}
}

func (mlkem768Kem) Name() string { return "ML-KEM-768" }

func (mlkem768Kem) SeedSize() int { return 64 }

func (mlkem768Kem) EncapsulationKeySize() int { return mlkem768.PublicKeySize }

func (mlkem768Kem) CiphertextSize() int { return mlkem768.CiphertextSize }

func (mlkem768Kem) SharedSecretSize() int { return mlkem768.SharedKeySize }

func (mlkem768Kem) RandomnessSize() int { return mlkem768.EncapsulationSeedSize }

func (k mlkem768Kem) DeriveKeyPair(seed []byte) ([]byte, error) {
	if len(seed) != k.SeedSize() {
		return nil, errors.BadLength("MLKEM768.DeriveKeyPair", k.SeedSize(), len(seed))
	}
	pk, _ := mlkem768.NewKeyFromSeed(seed)
	ek := make([]byte, mlkem768.PublicKeySize)
	pk.Pack(ek)
	return ek, nil
}

func (k mlkem768Kem) EncapsDerand(ek, randomness []byte) ([]byte, []byte, error) {
	if len(ek) != k.EncapsulationKeySize() {
		return nil, nil, errors.BadLength("MLKEM768.EncapsDerand", k.EncapsulationKeySize(), len(ek))
	}
	if len(randomness) != k.RandomnessSize() {
		return nil, nil, errors.BadLength("MLKEM768.EncapsDerand", k.RandomnessSize(), len(randomness))
	}
	pk := new(mlkem768.PublicKey)
	if err := pk.Unpack(ek); err != nil {
		return nil, nil, errors.Primitive("MLKEM768.EncapsDerand", err)
	}
	ct := make([]byte, mlkem768.CiphertextSize)
	ss := make([]byte, mlkem768.SharedKeySize)
	pk.EncapsulateTo(ct, ss, randomness)
	return ct, ss, nil
}

func (k mlkem768Kem) Encaps(ek []byte) ([]byte, []byte, error) {
	seed := make([]byte, mlkem768.EncapsulationSeedSize)
	if _, err := rand.Read(seed); err != nil {
		return nil, nil, errors.Primitive("MLKEM768.Encaps", err)
	}
	return k.EncapsDerand(ek, seed)
}

func (k mlkem768Kem) Decaps(seed, ct []byte) ([]byte, error) {
	if len(seed) != k.SeedSize() {
		return nil, errors.BadLength("MLKEM768.Decaps", k.SeedSize(), len(seed))
	}
	if len(ct) != k.CiphertextSize() {
		return nil, errors.BadLength("MLKEM768.Decaps", k.CiphertextSize(), len(ct))
	}
	_, sk := mlkem768.NewKeyFromSeed(seed)
	ss := make([]byte, mlkem768.SharedKeySize)
	sk.DecapsulateTo(ss, ct)
	return ss, nil
}

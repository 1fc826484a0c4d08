package pqkem

import (
	"crypto/rand"

	"github.com/cloudflare/circl/kem/mlkem/mlkem1024"

	"github.com/concretekem/hybridkem/internal/errors"
)

// mlkem1024Kem implements Kem for ML-KEM-1024 (NIST FIPS 203, category 5).
type mlkem1024Kem struct{}

// MLKEM1024 returns the ML-KEM-1024 post-quantum KEM.
func MLKEM1024() Kem {
	return mlkem1024Kem{}
}

func (mlkem1024Kem) Name() string { return "ML-KEM-1024" }

func (mlkem1024Kem) SeedSize() int { return 64 }

func (mlkem1024Kem) EncapsulationKeySize() int { return mlkem1024.PublicKeySize }

func (mlkem1024Kem) CiphertextSize() int { return mlkem1024.CiphertextSize }

func (mlkem1024Kem) SharedSecretSize() int { return mlkem1024.SharedKeySize }

func (mlkem1024Kem) RandomnessSize() int { return mlkem1024.EncapsulationSeedSize }

func (k mlkem1024Kem) DeriveKeyPair(seed []byte) ([]byte, error) {
	if len(seed) != k.SeedSize() {
		return nil, errors.BadLength("MLKEM1024.DeriveKeyPair", k.SeedSize(), len(seed))
	}
	pk, _ := mlkem1024.NewKeyFromSeed(seed)
	ek := make([]byte, mlkem1024.PublicKeySize)
	pk.Pack(ek)
	return ek, nil
}

func (k mlkem1024Kem) EncapsDerand(ek, randomness []byte) ([]byte, []byte, error) {
	if len(ek) != k.EncapsulationKeySize() {
		return nil, nil, errors.BadLength("MLKEM1024.EncapsDerand", k.EncapsulationKeySize(), len(ek))
	}
	if len(randomness) != k.RandomnessSize() {
		return nil, nil, errors.BadLength("MLKEM1024.EncapsDerand", k.RandomnessSize(), len(randomness))
	}
	pk := new(mlkem1024.PublicKey)
	if err := pk.Unpack(ek); err != nil {
		return nil, nil, errors.Primitive("MLKEM1024.EncapsDerand", err)
	}
	ct := make([]byte, mlkem1024.CiphertextSize)
	ss := make([]byte, mlkem1024.SharedKeySize)
	pk.EncapsulateTo(ct, ss, randomness)
	return ct, ss, nil
}

func (k mlkem1024Kem) Encaps(ek []byte) ([]byte, []byte, error) {
	seed := make([]byte, mlkem1024.EncapsulationSeedSize)
	if _, err := rand.Read(seed); err != nil {
		return nil, nil, errors.Primitive("MLKEM1024.Encaps", err)
	}
	return k.EncapsDerand(ek, seed)
}

func (k mlkem1024Kem) Decaps(seed, ct []byte) ([]byte, error) {
	if len(seed) != k.SeedSize() {
		return nil, errors.BadLength("MLKEM1024.Decaps", k.SeedSize(), len(seed))
	}
	if len(ct) != k.CiphertextSize() {
		return nil, errors.BadLength("MLKEM1024.Decaps", k.CiphertextSize(), len(ct))
	}
	_, sk := mlkem1024.NewKeyFromSeed(seed)
	ss := make([]byte, mlkem1024.SharedKeySize)
	sk.DecapsulateTo(ss, ct)
	return ss, nil
}

// Package vectors generates and verifies deterministic test vectors for the
// three named concrete hybrid KEM ciphersuites, and renders them to the
// IETF-style Markdown block format.
package vectors

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/concretekem/hybridkem/internal/errors"
	"github.com/concretekem/hybridkem/pkg/ciphersuite"
)

// HybridKemTestVector is one deterministic (seed, randomness) -> (keys,
// ciphertext, shared secret) tuple for a single hybrid KEM instance, with
// hex-encoded fields matching the wire-format field names used for
// interoperability with other implementations of this construction.
type HybridKemTestVector struct {
	Seed             HexBytes `json:"seed"`
	Randomness       HexBytes `json:"randomness"`
	EncapsulationKey HexBytes `json:"encapsulation_key"`
	DecapsulationKey HexBytes `json:"decapsulation_key"`
	Ciphertext       HexBytes `json:"ciphertext"`
	SharedSecret     HexBytes `json:"shared_secret"`
}

// TestVectors is the complete test-vector collection for all three named
// ciphersuites, keyed by their IANA-style identifiers in snake_case.
type TestVectors struct {
	QsfP256Mlkem768Shake256Sha3256   []HybridKemTestVector `json:"qsf_p256_mlkem768_shake256_sha3256"`
	QsfX25519Mlkem768Shake256Sha3256 []HybridKemTestVector `json:"qsf_x25519_mlkem768_shake256_sha3256"`
	QsfP384Mlkem1024Shake256Sha3256  []HybridKemTestVector `json:"qsf_p384_mlkem1024_shake256_sha3256"`
}

// HexBytes is a byte slice that marshals to and from a lowercase hex string
// in JSON, rather than Go's default base64 encoding for []byte.
type HexBytes []byte

func (b HexBytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(b))
}

func (b *HexBytes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("decoding hex field: %w", err)
	}
	*b = decoded
	return nil
}

// suiteIndex orders the three named ciphersuites for the generator's base
// offset below: P256=0, X25519=1, P384=2.
func suiteIndex(s *ciphersuite.Suite) int {
	for i, candidate := range ciphersuite.All() {
		if candidate == s {
			return i
		}
	}
	return 0
}

// Generate produces count deterministic test vectors for s. Vector i uses
// seed = [i+base]*SeedSize and randomness = [i+base+100]*RandomnessSize,
// where base = 1 + 10*suiteIndex(s) — the offset that reproduces the seeds
// of the generator's S1/S2/S3 worked scenarios at i == 0 (X-Wing), 5 (P-256)
// and 9 (P-384), and their randomness bytes too except for P-256, whose
// randomness byte here is one higher than its scenario's (see vectors_test.go,
// which pins those three scenarios independently as literal-byte unit tests
// rather than deriving them through this loop).
func Generate(s *ciphersuite.Suite, count int) ([]HybridKemTestVector, error) {
	base := 1 + 10*suiteIndex(s)
	out := make([]HybridKemTestVector, 0, count)
	for i := 0; i < count; i++ {
		seed := bytes.Repeat([]byte{byte(i + base)}, s.SeedSize())
		randomness := bytes.Repeat([]byte{byte(i + base + 100)}, s.RandomnessSize())

		dk, ek, err := s.DeriveKeyPair(seed)
		if err != nil {
			return nil, fmt.Errorf("vector %d: derive_key_pair: %w", i, err)
		}
		ct, ss, err := s.EncapsDerand(ek, randomness)
		if err != nil {
			return nil, fmt.Errorf("vector %d: encaps_derand: %w", i, err)
		}
		out = append(out, HybridKemTestVector{
			Seed:             seed,
			Randomness:       randomness,
			EncapsulationKey: ek,
			DecapsulationKey: dk,
			Ciphertext:       ct,
			SharedSecret:     ss,
		})
	}
	return out, nil
}

// GenerateAll produces count vectors for each of the three named
// ciphersuites.
func GenerateAll(count int) (TestVectors, error) {
	var tv TestVectors
	var err error
	if tv.QsfP256Mlkem768Shake256Sha3256, err = Generate(ciphersuite.P256MLKEM768, count); err != nil {
		return tv, err
	}
	if tv.QsfX25519Mlkem768Shake256Sha3256, err = Generate(ciphersuite.X25519MLKEM768, count); err != nil {
		return tv, err
	}
	if tv.QsfP384Mlkem1024Shake256Sha3256, err = Generate(ciphersuite.P384MLKEM1024, count); err != nil {
		return tv, err
	}
	return tv, nil
}

// MismatchError reports which field of which vector failed verification. It
// is the error model's mismatch type, so it unwraps to ErrVectorMismatch.
type MismatchError = errors.MismatchError

// Verify recomputes every field of v from (seed, randomness) alone using s,
// and compares against the vector's recorded values. It reports the first
// mismatching field (EK, DK, CT, SS-encaps, or SS-decaps); a nil return
// means every field matched.
func Verify(s *ciphersuite.Suite, v HybridKemTestVector) error {
	dk, ek, err := s.DeriveKeyPair(v.Seed)
	if err != nil {
		return fmt.Errorf("derive_key_pair: %w", err)
	}
	if !bytes.Equal(ek, v.EncapsulationKey) {
		return &MismatchError{Field: "EK", Expected: hex.EncodeToString(v.EncapsulationKey), Actual: hex.EncodeToString(ek)}
	}
	if !bytes.Equal(dk, v.DecapsulationKey) {
		return &MismatchError{Field: "DK", Expected: hex.EncodeToString(v.DecapsulationKey), Actual: hex.EncodeToString(dk)}
	}

	ct, ssEncaps, err := s.EncapsDerand(ek, v.Randomness)
	if err != nil {
		return fmt.Errorf("encaps_derand: %w", err)
	}
	if !bytes.Equal(ct, v.Ciphertext) {
		return &MismatchError{Field: "CT", Expected: hex.EncodeToString(v.Ciphertext), Actual: hex.EncodeToString(ct)}
	}
	if !bytes.Equal(ssEncaps, v.SharedSecret) {
		return &MismatchError{Field: "SS-encaps", Expected: hex.EncodeToString(v.SharedSecret), Actual: hex.EncodeToString(ssEncaps)}
	}

	ssDecaps, err := s.Decaps(dk, ct)
	if err != nil {
		return fmt.Errorf("decaps: %w", err)
	}
	if !bytes.Equal(ssDecaps, v.SharedSecret) {
		return &MismatchError{Field: "SS-decaps", Expected: hex.EncodeToString(v.SharedSecret), Actual: hex.EncodeToString(ssDecaps)}
	}
	return nil
}

// VerifyAll verifies every vector in tv against its named ciphersuite,
// returning one error per failing vector in (suite, index) order. A nil,
// empty result means every vector verified.
func VerifyAll(tv TestVectors) []error {
	var errs []error
	groups := []struct {
		suite   *ciphersuite.Suite
		vectors []HybridKemTestVector
	}{
		{ciphersuite.P256MLKEM768, tv.QsfP256Mlkem768Shake256Sha3256},
		{ciphersuite.X25519MLKEM768, tv.QsfX25519Mlkem768Shake256Sha3256},
		{ciphersuite.P384MLKEM1024, tv.QsfP384Mlkem1024Shake256Sha3256},
	}
	for _, g := range groups {
		for i, v := range g.vectors {
			if err := Verify(g.suite, v); err != nil {
				errs = append(errs, fmt.Errorf("%s vector %d: %w", g.suite, i, err))
			}
		}
	}
	return errs
}

// Package fuzz provides fuzz tests for the parsing functions that handle
// untrusted wire-format input: encapsulation keys and ciphertexts for each
// of the three named ciphersuites.
//
// Run fuzz tests with:
//
//	go test -fuzz=FuzzSplitEncapsulationKey -fuzztime=30s ./test/fuzz/
//	go test -fuzz=FuzzSplitCiphertext -fuzztime=30s ./test/fuzz/
//	go test -fuzz=FuzzDecaps -fuzztime=30s ./test/fuzz/
//	go test -fuzz=FuzzVerify -fuzztime=30s ./test/fuzz/
package fuzz

import (
	"bytes"
	"testing"

	"github.com/concretekem/hybridkem/pkg/ciphersuite"
	"github.com/concretekem/hybridkem/pkg/vectors"
)

func validKeyPair(s *ciphersuite.Suite, seedByte byte) (dk, ek []byte) {
	seed := bytes.Repeat([]byte{seedByte}, s.SeedSize())
	dk, ek, _ = s.DeriveKeyPair(seed)
	return dk, ek
}

// FuzzSplitEncapsulationKey fuzzes SplitEncapsulationKey for each suite.
// This is security-critical as it processes encapsulation keys that may
// have arrived over an untrusted channel.
func FuzzSplitEncapsulationKey(f *testing.F) {
	for _, s := range ciphersuite.All() {
		_, ek := validKeyPair(s, 0x11)
		f.Add(s.String(), ek)
	}
	f.Add(ciphersuite.X25519MLKEM768.String(), []byte{})
	f.Add(ciphersuite.X25519MLKEM768.String(), make([]byte, ciphersuite.X25519MLKEM768.EncapsulationKeySize()-1))
	f.Add(ciphersuite.X25519MLKEM768.String(), make([]byte, ciphersuite.X25519MLKEM768.EncapsulationKeySize()+1))

	f.Fuzz(func(t *testing.T, suiteName string, data []byte) {
		s, err := ciphersuite.ParseName(suiteName)
		if err != nil {
			s = ciphersuite.X25519MLKEM768
		}
		ekPQ, ekT, err := s.SplitEncapsulationKey(data)
		if err != nil {
			return
		}
		if len(ekPQ)+len(ekT) != len(data) {
			t.Errorf("split lengths %d+%d do not sum to input length %d", len(ekPQ), len(ekT), len(data))
		}
	})
}

// FuzzSplitCiphertext fuzzes SplitCiphertext for each suite.
func FuzzSplitCiphertext(f *testing.F) {
	for _, s := range ciphersuite.All() {
		_, ek := validKeyPair(s, 0x12)
		ct, _, err := s.Encaps(ek)
		if err == nil {
			f.Add(s.String(), ct)
		}
	}
	f.Add(ciphersuite.P384MLKEM1024.String(), []byte{})
	f.Add(ciphersuite.P384MLKEM1024.String(), make([]byte, ciphersuite.P384MLKEM1024.CiphertextSize()-1))

	f.Fuzz(func(t *testing.T, suiteName string, data []byte) {
		s, err := ciphersuite.ParseName(suiteName)
		if err != nil {
			s = ciphersuite.P384MLKEM1024
		}
		ctPQ, ctT, err := s.SplitCiphertext(data)
		if err != nil {
			return
		}
		if len(ctPQ)+len(ctT) != len(data) {
			t.Errorf("split lengths %d+%d do not sum to input length %d", len(ctPQ), len(ctT), len(data))
		}
	})
}

// FuzzDecaps fuzzes Decaps with a valid decapsulation key and arbitrary
// ciphertext bytes. Should never panic regardless of input; a ciphertext of
// the wrong length fails with an error, while a tampered one of the right
// length may decapsulate to a different shared secret without an error.
func FuzzDecaps(f *testing.F) {
	s := ciphersuite.X25519MLKEM768
	dk, ek := validKeyPair(s, 0x13)
	ct, _, _ := s.Encaps(ek)
	f.Add(ct)
	f.Add([]byte{})
	f.Add(make([]byte, s.CiphertextSize()))
	f.Add(make([]byte, s.CiphertextSize()+5))

	f.Fuzz(func(t *testing.T, data []byte) {
		// Should not panic regardless of input.
		_, _ = s.Decaps(dk, data)
	})
}

// FuzzVerify fuzzes vectors.Verify against a generated, structurally valid
// vector whose shared secret is mutated by the fuzzer. A tampered field
// must be reported as a mismatch, never cause a panic.
func FuzzVerify(f *testing.F) {
	vs, err := vectors.Generate(ciphersuite.P256MLKEM768, 1)
	if err != nil || len(vs) == 0 {
		f.Skip("could not generate seed vector")
	}
	v := vs[0]
	f.Add([]byte(v.SharedSecret))

	f.Fuzz(func(t *testing.T, tamperedSecret []byte) {
		mutated := v
		mutated.SharedSecret = tamperedSecret
		// Should not panic regardless of the mutated field's length or content.
		_ = vectors.Verify(ciphersuite.P256MLKEM768, mutated)
	})
}

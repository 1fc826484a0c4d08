package ciphersuite

import (
	"bytes"
	"context"
	"testing"
)

func seedOf(n int, b byte) []byte {
	return bytes.Repeat([]byte{b}, n)
}

func testSuiteRoundTrip(t *testing.T, s *Suite) {
	t.Helper()
	seed := seedOf(s.SeedSize(), 0x91)
	dk, ek, err := s.DeriveKeyPair(seed)
	if err != nil {
		t.Fatalf("DeriveKeyPair: %v", err)
	}
	if !bytes.Equal(dk, seed) {
		t.Error("dk must equal seed verbatim, per the seed-identity invariant")
	}
	if len(ek) != s.EncapsulationKeySize() {
		t.Errorf("ek length = %d, want %d", len(ek), s.EncapsulationKeySize())
	}

	randomness := seedOf(s.RandomnessSize(), 0x92)
	ct, ssEncaps, err := s.EncapsDerand(ek, randomness)
	if err != nil {
		t.Fatalf("EncapsDerand: %v", err)
	}
	if len(ct) != s.CiphertextSize() {
		t.Errorf("ct length = %d, want %d", len(ct), s.CiphertextSize())
	}

	ssDecaps, err := s.Decaps(dk, ct)
	if err != nil {
		t.Fatalf("Decaps: %v", err)
	}
	if !bytes.Equal(ssEncaps, ssDecaps) {
		t.Error("decaps must recover the shared secret encaps_derand produced")
	}
	if len(ssDecaps) != s.SharedSecretSize() {
		t.Errorf("ss length = %d, want %d", len(ssDecaps), s.SharedSecretSize())
	}
}

func TestP256MLKEM768(t *testing.T) { testSuiteRoundTrip(t, P256MLKEM768) }
func TestX25519MLKEM768(t *testing.T) { testSuiteRoundTrip(t, X25519MLKEM768) }
func TestP384MLKEM1024(t *testing.T) { testSuiteRoundTrip(t, P384MLKEM1024) }

func TestPerSuiteLengths(t *testing.T) {
	tests := []struct {
		s          *Suite
		ek, ct, rd int
	}{
		{P256MLKEM768, 1249, 1153, 80},
		{X25519MLKEM768, 1216, 1120, 64},
		{P384MLKEM1024, 1665, 1665, 104},
	}
	for _, tt := range tests {
		if got := tt.s.EncapsulationKeySize(); got != tt.ek {
			t.Errorf("%s: EncapsulationKeySize = %d, want %d", tt.s, got, tt.ek)
		}
		if got := tt.s.CiphertextSize(); got != tt.ct {
			t.Errorf("%s: CiphertextSize = %d, want %d", tt.s, got, tt.ct)
		}
		if got := tt.s.RandomnessSize(); got != tt.rd {
			t.Errorf("%s: RandomnessSize = %d, want %d", tt.s, got, tt.rd)
		}
		if got := tt.s.SharedSecretSize(); got != 32 {
			t.Errorf("%s: SharedSecretSize = %d, want 32", tt.s, got)
		}
	}
}

func TestSplitEncapsulationKeyAndCiphertext(t *testing.T) {
	s := X25519MLKEM768
	seed := seedOf(s.SeedSize(), 0x93)
	_, ek, err := s.DeriveKeyPair(seed)
	if err != nil {
		t.Fatalf("DeriveKeyPair: %v", err)
	}
	ekPQ, ekT, err := s.SplitEncapsulationKey(ek)
	if err != nil {
		t.Fatalf("SplitEncapsulationKey: %v", err)
	}
	if len(ekPQ) != 1184 || len(ekT) != 32 {
		t.Errorf("ekPQ/ekT lengths = %d/%d, want 1184/32", len(ekPQ), len(ekT))
	}

	randomness := seedOf(s.RandomnessSize(), 0x94)
	ct, _, err := s.EncapsDerand(ek, randomness)
	if err != nil {
		t.Fatalf("EncapsDerand: %v", err)
	}
	ctPQ, ctT, err := s.SplitCiphertext(ct)
	if err != nil {
		t.Fatalf("SplitCiphertext: %v", err)
	}
	if len(ctPQ) != 1088 || len(ctT) != 32 {
		t.Errorf("ctPQ/ctT lengths = %d/%d, want 1088/32", len(ctPQ), len(ctT))
	}
}

func TestParseName(t *testing.T) {
	tests := []struct {
		name string
		want *Suite
	}{
		{"p256", P256MLKEM768},
		{"X25519", X25519MLKEM768},
		{"x-wing", X25519MLKEM768},
		{"P384", P384MLKEM1024},
		{"QSF-P256-MLKEM768-SHAKE256-SHA3256", P256MLKEM768},
	}
	for _, tt := range tests {
		got, err := ParseName(tt.name)
		if err != nil {
			t.Errorf("ParseName(%q): %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}

	if _, err := ParseName("bogus"); err == nil {
		t.Error("ParseName(\"bogus\") should have returned an error")
	}
}

func TestByName(t *testing.T) {
	if ByName(P256MLKEM768.ID()) != P256MLKEM768 {
		t.Error("ByName did not return the canonical P256MLKEM768 suite")
	}
}

func TestSuiteCtxWrappersMatchUntraced(t *testing.T) {
	s := P256MLKEM768
	ctx := context.Background()
	seed := seedOf(s.SeedSize(), 0x95)

	dk, ek, err := s.DeriveKeyPairCtx(ctx, seed)
	if err != nil {
		t.Fatalf("DeriveKeyPairCtx: %v", err)
	}
	if !bytes.Equal(dk, seed) {
		t.Error("DeriveKeyPairCtx must match DeriveKeyPair's seed-identity invariant")
	}

	randomness := seedOf(s.RandomnessSize(), 0x96)
	ct, ssEncaps, err := s.EncapsDerandCtx(ctx, ek, randomness)
	if err != nil {
		t.Fatalf("EncapsDerandCtx: %v", err)
	}

	ssDecaps, err := s.DecapsCtx(ctx, dk, ct)
	if err != nil {
		t.Fatalf("DecapsCtx: %v", err)
	}
	if !bytes.Equal(ssEncaps, ssDecaps) {
		t.Error("traced decaps must recover the traced encaps_derand's shared secret")
	}

	if _, _, err := s.EncapsCtx(ctx, ek); err != nil {
		t.Errorf("EncapsCtx: %v", err)
	}
}

func TestFIPSApproval(t *testing.T) {
	if !P256MLKEM768.IsFIPSApproved() || !P384MLKEM1024.IsFIPSApproved() {
		t.Error("NIST-curve ciphersuites must be FIPS approved")
	}
	if X25519MLKEM768.IsFIPSApproved() {
		t.Error("X-Wing (X25519-based) must not be reported as FIPS approved")
	}
	// CheckFIPSCompliance is a no-op outside a "fips" build.
	if err := CheckFIPSCompliance(X25519MLKEM768); err != nil {
		t.Errorf("CheckFIPSCompliance in a standard build: %v", err)
	}
}

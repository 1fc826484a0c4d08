package vectors

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/concretekem/hybridkem/pkg/ciphersuite"
)

// repeat returns n copies of b, matching the generator's "canned inputs:
// zeros everywhere except the byte value shown" scenarios.
func repeat(n int, b byte) []byte {
	return bytes.Repeat([]byte{b}, n)
}

// These three scenarios reproduce the generator's worked examples: all
// bytes uniform across seed and randomness. They check the round-trip
// property directly (encaps_derand's ss equals decaps's ss) rather than
// against a precomputed cross-implementation hash, which this module has no
// way to obtain without running code.
func TestScenarioXWing(t *testing.T) {
	testScenario(t, ciphersuite.X25519MLKEM768, 0x0B, 0x6F)
}

func TestScenarioP256(t *testing.T) {
	testScenario(t, ciphersuite.P256MLKEM768, 0x06, 0x69)
}

func TestScenarioP384(t *testing.T) {
	testScenario(t, ciphersuite.P384MLKEM1024, 0x1E, 0x82)
}

func testScenario(t *testing.T, s *ciphersuite.Suite, seedByte, randByte byte) {
	t.Helper()
	seed := repeat(s.SeedSize(), seedByte)
	randomness := repeat(s.RandomnessSize(), randByte)

	dk, ek, err := s.DeriveKeyPair(seed)
	if err != nil {
		t.Fatalf("DeriveKeyPair: %v", err)
	}
	if !bytes.Equal(dk, seed) {
		t.Error("dk must equal seed verbatim")
	}
	ct, ssEncaps, err := s.EncapsDerand(ek, randomness)
	if err != nil {
		t.Fatalf("EncapsDerand: %v", err)
	}
	ssDecaps, err := s.Decaps(dk, ct)
	if err != nil {
		t.Fatalf("Decaps: %v", err)
	}
	if !bytes.Equal(ssEncaps, ssDecaps) {
		t.Error("round-trip equality of ss must hold")
	}
}

func TestGenerateAndVerify(t *testing.T) {
	tv, err := GenerateAll(10)
	if err != nil {
		t.Fatalf("GenerateAll: %v", err)
	}
	if len(tv.QsfP256Mlkem768Shake256Sha3256) != 10 ||
		len(tv.QsfX25519Mlkem768Shake256Sha3256) != 10 ||
		len(tv.QsfP384Mlkem1024Shake256Sha3256) != 10 {
		t.Fatal("GenerateAll must produce 10 vectors per ciphersuite")
	}
	if errs := VerifyAll(tv); len(errs) != 0 {
		t.Fatalf("VerifyAll reported %d failures on freshly generated vectors: %v", len(errs), errs)
	}
}

func TestVerifyDetectsTampering(t *testing.T) {
	vs, err := Generate(ciphersuite.X25519MLKEM768, 1)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	v := vs[0]
	v.SharedSecret[0] ^= 0xFF

	err = Verify(ciphersuite.X25519MLKEM768, v)
	if err == nil {
		t.Fatal("Verify must reject a tampered shared_secret")
	}
	mismatch, ok := err.(*MismatchError)
	if !ok {
		t.Fatalf("Verify error type = %T, want *MismatchError", err)
	}
	if mismatch.Field != "SS-encaps" {
		t.Errorf("mismatch field = %q, want %q", mismatch.Field, "SS-encaps")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	tv, err := GenerateAll(2)
	if err != nil {
		t.Fatalf("GenerateAll: %v", err)
	}
	data, err := json.Marshal(tv)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded TestVectors
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if errs := VerifyAll(decoded); len(errs) != 0 {
		t.Fatalf("VerifyAll after JSON round trip reported failures: %v", errs)
	}
}

func TestRenderMarkdown(t *testing.T) {
	tv, err := GenerateAll(1)
	if err != nil {
		t.Fatalf("GenerateAll: %v", err)
	}
	md := RenderMarkdown(tv)
	if !strings.Contains(md, "## QSF-X25519-MLKEM768-SHAKE256-SHA3256 (X-Wing)") {
		t.Error("Markdown is missing the X-Wing section header")
	}
	if !strings.Contains(md, "~~~\n") {
		t.Error("Markdown is missing fenced blocks")
	}
	for _, line := range strings.Split(md, "\n") {
		if len(line) > wrapColumn && !strings.Contains(line, " ") {
			t.Errorf("hex line exceeds %d columns: %q", wrapColumn, line)
		}
	}
}

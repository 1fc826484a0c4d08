package kdf

import (
	"bytes"
	"testing"
)

func testInput() []byte {
	b := make([]byte, 100)
	for i := range b {
		b[i] = byte(i)*17 + 42
	}
	return b
}

func TestHashDeterministic(t *testing.T) {
	in := testInput()
	a := Hash(in)
	b := Hash(in)
	if a != b {
		t.Error("Hash should be deterministic")
	}
}

func TestHashSensitivity(t *testing.T) {
	in := testInput()
	a := Hash(in)
	in2 := append([]byte(nil), in...)
	in2[0]++
	b := Hash(in2)
	if a == b {
		t.Error("different inputs should produce different hashes")
	}
}

func TestHashConcatenationMatchesSingleSlice(t *testing.T) {
	x := []byte("hello ")
	y := []byte("world")
	a := Hash(x, y)
	b := Hash(append(append([]byte{}, x...), y...))
	if a != b {
		t.Error("Hash(parts...) must equal Hash over the plain concatenation (no framing)")
	}
}

func TestExpandLength(t *testing.T) {
	out := Expand(112, []byte("seed"))
	if len(out) != 112 {
		t.Errorf("Expand returned %d bytes, want 112", len(out))
	}
}

func TestExpandPrefixConsistency(t *testing.T) {
	seed := []byte("some arbitrary seed material")
	short := Expand(32, seed)
	long := Expand(136, seed)
	if !bytes.Equal(short, long[:32]) {
		t.Error("Expand must be prefix-consistent across output lengths")
	}
}

func TestExpandDeterministic(t *testing.T) {
	seed := []byte("seed")
	a := Expand(64, seed)
	b := Expand(64, seed)
	if !bytes.Equal(a, b) {
		t.Error("Expand should be deterministic")
	}
}

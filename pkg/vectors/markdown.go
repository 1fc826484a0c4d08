package vectors

import (
	"encoding/hex"
	"fmt"
	"strings"
)

const wrapColumn = 64

// wrapHex breaks a hex string into wrapColumn-wide lines.
func wrapHex(s string) string {
	var b strings.Builder
	for len(s) > wrapColumn {
		b.WriteString(s[:wrapColumn])
		b.WriteByte('\n')
		s = s[wrapColumn:]
	}
	b.WriteString(s)
	return b.String()
}

// field pairs a Markdown block's label with the value it renders.
type field struct {
	label string
	value HexBytes
}

// renderFields writes one "label = hex" block per field, wrapped at
// wrapColumn, inside a fenced block.
func renderFields(b *strings.Builder, fields []field) {
	b.WriteString("~~~\n")
	for _, f := range fields {
		fmt.Fprintf(b, "%s = %s\n", f.label, wrapHex(hex.EncodeToString(f.value)))
	}
	b.WriteString("~~~\n")
}

func vectorFields(v HybridKemTestVector) []field {
	return []field{
		{"seed", v.Seed},
		{"randomness", v.Randomness},
		{"encapsulation_key", v.EncapsulationKey},
		{"decapsulation_key", v.DecapsulationKey},
		{"ciphertext", v.Ciphertext},
		{"shared_secret", v.SharedSecret},
	}
}

// renderSuite writes one Markdown section for a named ciphersuite: a
// summary header (vector count, EK/CT/SS byte lengths) followed by one
// fenced block per vector.
func renderSuite(b *strings.Builder, title string, vs []HybridKemTestVector) {
	fmt.Fprintf(b, "## %s\n\n", title)
	if len(vs) > 0 {
		fmt.Fprintf(b, "%d vectors; encapsulation_key %d bytes, ciphertext %d bytes, shared_secret %d bytes.\n\n",
			len(vs), len(vs[0].EncapsulationKey), len(vs[0].Ciphertext), len(vs[0].SharedSecret))
	}
	for i, v := range vs {
		fmt.Fprintf(b, "### Vector %d\n\n", i)
		renderFields(b, vectorFields(v))
		b.WriteByte('\n')
	}
}

// RenderMarkdown renders tv as the IETF-style Markdown block format: one
// section per named ciphersuite, each vector's fields as a 64-column-wrapped
// "label = hex" block inside a fenced ~~~ block.
func RenderMarkdown(tv TestVectors) string {
	var b strings.Builder
	b.WriteString("# Concrete Hybrid KEM Test Vectors\n\n")
	renderSuite(&b, "QSF-P256-MLKEM768-SHAKE256-SHA3256", tv.QsfP256Mlkem768Shake256Sha3256)
	renderSuite(&b, "QSF-X25519-MLKEM768-SHAKE256-SHA3256 (X-Wing)", tv.QsfX25519Mlkem768Shake256Sha3256)
	renderSuite(&b, "QSF-P384-MLKEM1024-SHAKE256-SHA3256", tv.QsfP384Mlkem1024Shake256Sha3256)
	return b.String()
}

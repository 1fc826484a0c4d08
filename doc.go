// Package hybridkem implements concrete hybrid Key Encapsulation Mechanisms
// combining an ML-KEM post-quantum KEM with a traditional elliptic-curve
// Diffie-Hellman group, per the IRTF CFRG concrete-hybrid-KEMs design.
//
// The combined shared secret is secure if either the post-quantum or the
// traditional component is secure: a practical hedge against both a future
// quantum adversary and an undiscovered flaw in ML-KEM itself.
//
// # Quick Start
//
// For the three named ciphersuites:
//
//	import "github.com/concretekem/hybridkem/pkg/ciphersuite"
//
//	suite := ciphersuite.X25519MLKEM768 // the X-Wing ciphersuite
//	dk, ek, _ := suite.DeriveKeyPair(seed)
//	ct, ss, _ := suite.Encaps(ek)
//	recovered, _ := suite.Decaps(dk, ct)
//
// For the generic combiner that the ciphersuites bind:
//
//	import "github.com/concretekem/hybridkem/pkg/hybrid"
//
//	c := &hybrid.GroupConstruction{PQ: pqKem, T: group, Style: hybrid.C2PRI, Label: label}
//
// # Package Structure
//
//   - pkg/ciphersuite: the three named ciphersuites (QSF-P256-MLKEM768,
//     X-Wing, QSF-P384-MLKEM1024), bound and ready to use
//   - pkg/hybrid: the generic GU/GC/KU/KC combiner framework
//   - pkg/pqkem: the ML-KEM-768/1024 post-quantum KEM wrapper
//   - pkg/group: the NominalGroup abstraction over P-256/P-384/X25519
//   - pkg/kdf: the unframed KDF (SHA3-256) and PRG (SHAKE256) primitives
//   - pkg/vectors: deterministic test-vector generation, verification, and
//     Markdown rendering
//   - pkg/log: structured logging and tracing
//   - internal/constants: per-ciphersuite byte lengths and labels
//   - internal/errors: the three-kind error model (bad length, primitive
//     failure, vector mismatch)
//
// # Security Properties
//
//   - Post-quantum security: ML-KEM-768 (Category 1) or ML-KEM-1024
//     (Category 5), per NIST FIPS 203
//   - Classical security: P-256, P-384 (NIST FIPS 186-5), or X25519 (RFC 7748)
//   - Hybrid guarantee: the shared secret is secure if either component is
//   - Seed-only decapsulation keys: a 32-byte seed IS the decapsulation key;
//     the post-quantum and traditional sub-keys are re-derived from it on
//     every call, never cached
//
// # Testing
//
//	go test ./...                               # All tests
//	go test -fuzz=FuzzDecaps ./test/fuzz/        # Fuzz tests
//	go test -bench=. ./test/benchmark            # Benchmarks
//	hybridkem selftest                           # Round-trip conformance check
//
// # References
//
//   - NIST FIPS 203: Module-Lattice-Based Key-Encapsulation Mechanism Standard
//   - NIST FIPS 186-5: Digital Signature Standard (P-256, P-384 parameters)
//   - RFC 7748: Elliptic Curves for Security (X25519)
//   - draft-irtf-cfrg-concrete-hybrid-kems
package hybridkem

// Package group implements the NominalGroup abstraction the hybrid KEM
// combiner uses for its traditional (non-post-quantum) side: a scalar is
// derived from a seed, a public element is the generator raised to that
// scalar, and two parties holding a scalar and a peer's element can compute
// a shared secret.
//
// crypto/ecdh's ECDH method already fuses "exponentiate" and "encode the
// resulting element as a shared secret" into one call (it returns the
// X-coordinate for the NIST curves and the raw u-coordinate for X25519), so
// this package exposes that fused operation directly (DH) rather than
// modeling a standalone Exp over arbitrary group elements — outside that
// fused DH step the combiner never exponentiates anything but the generator,
// so a generic Exp would add a degree of freedom nothing here uses.
package group

import "github.com/concretekem/hybridkem/internal/constants"

// Element is a wire-encoded group element (a public key).
type Element interface {
	Bytes() []byte
}

// Group is the traditional side of a hybrid KEM combiner.
type Group interface {
	// Name identifies the group for error messages and logging.
	Name() string

	// SeedSize is the length of the seed RandomScalar expects.
	SeedSize() int

	// ElementSize is the wire-encoded length of an Element.
	ElementSize() int

	// SharedSecretSize is the length of DH's output.
	SharedSecretSize() int

	// RandomScalar derives a scalar deterministically from seed.
	RandomScalar(seed []byte) (Scalar, error)

	// PublicKey returns the generator raised to s, i.e. s's public element.
	PublicKey(s Scalar) Element

	// DH computes the Diffie-Hellman shared secret between s and peer,
	// already encoded as a shared-secret byte string (not a raw element).
	DH(s Scalar, peer Element) ([]byte, error)

	// ParseElement decodes an Element from its wire encoding.
	ParseElement(data []byte) (Element, error)
}

// Scalar is an opaque private scalar belonging to a specific Group
// implementation. Implementations type-assert their own concrete type.
type Scalar interface {
	group() // unexported method: only this package's types satisfy Scalar
}

// ByName returns the Group implementation for a named suite's traditional
// side.
func ByName(s constants.Suite) Group {
	switch s {
	case constants.P256MLKEM768:
		return P256()
	case constants.X25519MLKEM768:
		return X25519()
	case constants.P384MLKEM1024:
		return P384()
	default:
		return nil
	}
}

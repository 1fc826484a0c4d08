package group

import (
	"crypto/ecdh"

	"github.com/concretekem/hybridkem/internal/constants"
	"github.com/concretekem/hybridkem/internal/errors"
)

type x25519Group struct{}

// X25519 returns the Curve25519 Diffie-Hellman group (RFC 7748). The
// 32-byte seed is used directly as the (to-be-clamped) private scalar —
// crypto/ecdh applies RFC 7748 clamping internally when the key is used.
func X25519() Group {
	return x25519Group{}
}

func (x25519Group) Name() string { return "X25519" }

func (x25519Group) SeedSize() int { return constants.X25519SeedSize }

func (x25519Group) ElementSize() int { return constants.X25519ElementSize }

func (x25519Group) SharedSecretSize() int { return constants.X25519SharedSecretSize }

type x25519Scalar struct {
	priv *ecdh.PrivateKey
}

func (x25519Scalar) group() {}

func (x25519Group) RandomScalar(seed []byte) (Scalar, error) {
	if len(seed) != constants.X25519SeedSize {
		return nil, errors.BadLength("x25519.RandomScalar", constants.X25519SeedSize, len(seed))
	}
	priv, err := ecdh.X25519().NewPrivateKey(seed)
	if err != nil {
		return nil, errors.Primitive("x25519.RandomScalar", err)
	}
	return x25519Scalar{priv: priv}, nil
}

type x25519Element struct {
	pub *ecdh.PublicKey
}

func (e x25519Element) Bytes() []byte { return e.pub.Bytes() }

func (x25519Group) PublicKey(s Scalar) Element {
	sc := s.(x25519Scalar)
	return x25519Element{pub: sc.priv.PublicKey()}
}

func (x25519Group) DH(s Scalar, peer Element) ([]byte, error) {
	sc := s.(x25519Scalar)
	pe := peer.(x25519Element)
	secret, err := sc.priv.ECDH(pe.pub)
	if err != nil {
		return nil, errors.Primitive("x25519.DH", err)
	}
	return secret, nil
}

func (x25519Group) ParseElement(data []byte) (Element, error) {
	if len(data) != constants.X25519ElementSize {
		return nil, errors.BadLength("x25519.ParseElement", constants.X25519ElementSize, len(data))
	}
	pub, err := ecdh.X25519().NewPublicKey(data)
	if err != nil {
		return nil, errors.Primitive("x25519.ParseElement", err)
	}
	return x25519Element{pub: pub}, nil
}

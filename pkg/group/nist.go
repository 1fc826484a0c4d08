package group

import (
	"crypto/ecdh"
	"crypto/elliptic"
	"math/big"

	"github.com/concretekem/hybridkem/internal/constants"
	"github.com/concretekem/hybridkem/internal/errors"
)

// nistGroup implements Group for a NIST prime-order curve using wide-seed
// reduction: RandomScalar interprets the entire seed (48 bytes for P-256,
// 72 for P-384 — at least 16 bytes wider than the scalar, large enough that
// reduction bias is negligible) as a big-endian integer and reduces it modulo the curve
// order, rather than truncating to the first 32 bytes. This diverges from
// the reference implementation's P-256 code (which declares a 48-byte seed
// but only ever reduces the first 32 bytes of it) in favor of reducing the
// full wide seed, which is the textually preferred resolution for this
// construction.
type nistGroup struct {
	name      string
	curve     ecdh.Curve
	order     *big.Int
	scalarLen int
	seedLen   int
	elemLen   int
	ssLen     int
}

// P256 returns the NIST P-256 Diffie-Hellman group.
func P256() Group {
	return &nistGroup{
		name:      "P-256",
		curve:     ecdh.P256(),
		order:     elliptic.P256().Params().N,
		scalarLen: 32,
		seedLen:   constants.P256SeedSize,
		elemLen:   constants.P256ElementSize,
		ssLen:     constants.P256SharedSecretSize,
	}
}

// P384 returns the NIST P-384 Diffie-Hellman group.
func P384() Group {
	return &nistGroup{
		name:      "P-384",
		curve:     ecdh.P384(),
		order:     elliptic.P384().Params().N,
		scalarLen: 48,
		seedLen:   constants.P384SeedSize,
		elemLen:   constants.P384ElementSize,
		ssLen:     constants.P384SharedSecretSize,
	}
}

func (g *nistGroup) Name() string { return g.name }

func (g *nistGroup) SeedSize() int { return g.seedLen }

func (g *nistGroup) ElementSize() int { return g.elemLen }

func (g *nistGroup) SharedSecretSize() int { return g.ssLen }

type nistScalar struct {
	priv *ecdh.PrivateKey
}

func (nistScalar) group() {}

// reduceSeed interprets seed as a big-endian integer and reduces it modulo
// order, returning a scalarLen-byte big-endian encoding.
func reduceSeed(seed []byte, order *big.Int, scalarLen int) []byte {
	n := new(big.Int).SetBytes(seed)
	n.Mod(n, order)
	out := make([]byte, scalarLen)
	n.FillBytes(out)
	return out
}

func (g *nistGroup) RandomScalar(seed []byte) (Scalar, error) {
	if len(seed) != g.seedLen {
		return nil, errors.BadLength(g.name+".RandomScalar", g.seedLen, len(seed))
	}
	scalar := reduceSeed(seed, g.order, g.scalarLen)
	priv, err := g.curve.NewPrivateKey(scalar)
	if err != nil {
		return nil, errors.Primitive(g.name+".RandomScalar", err)
	}
	return nistScalar{priv: priv}, nil
}

type nistElement struct {
	pub *ecdh.PublicKey
}

func (e nistElement) Bytes() []byte { return e.pub.Bytes() }

func (g *nistGroup) PublicKey(s Scalar) Element {
	sc := s.(nistScalar)
	return nistElement{pub: sc.priv.PublicKey()}
}

func (g *nistGroup) DH(s Scalar, peer Element) ([]byte, error) {
	sc := s.(nistScalar)
	pe := peer.(nistElement)
	secret, err := sc.priv.ECDH(pe.pub)
	if err != nil {
		return nil, errors.Primitive(g.name+".DH", err)
	}
	return secret, nil
}

func (g *nistGroup) ParseElement(data []byte) (Element, error) {
	if len(data) != g.elemLen {
		return nil, errors.BadLength(g.name+".ParseElement", g.elemLen, len(data))
	}
	pub, err := g.curve.NewPublicKey(data)
	if err != nil {
		return nil, errors.Primitive(g.name+".ParseElement", err)
	}
	return nistElement{pub: pub}, nil
}

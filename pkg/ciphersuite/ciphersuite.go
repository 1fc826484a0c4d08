// Package ciphersuite binds the generic combiner in pkg/hybrid to the three
// named concrete hybrid KEM ciphersuites: QSF-P256-MLKEM768-SHAKE256-SHA3256,
// QSF-X25519-MLKEM768-SHAKE256-SHA3256 (X-Wing), and
// QSF-P384-MLKEM1024-SHAKE256-SHA3256. Each is the GC construction (a
// NominalGroup traditional side, C2PRI transcript) parameterised by its own
// group, post-quantum KEM, and label.
package ciphersuite

import (
	"context"
	"fmt"
	"strings"

	"github.com/concretekem/hybridkem/internal/constants"
	"github.com/concretekem/hybridkem/internal/errors"
	"github.com/concretekem/hybridkem/pkg/group"
	"github.com/concretekem/hybridkem/pkg/hybrid"
	"github.com/concretekem/hybridkem/pkg/log"
	"github.com/concretekem/hybridkem/pkg/pqkem"
)

// Suite is one of the three named concrete hybrid KEM ciphersuites, bound
// and ready to use.
type Suite struct {
	id constants.Suite
	c  *hybrid.GroupConstruction
}

var (
	P256MLKEM768   = newSuite(constants.P256MLKEM768)
	X25519MLKEM768 = newSuite(constants.X25519MLKEM768)
	P384MLKEM1024  = newSuite(constants.P384MLKEM1024)
)

func newSuite(id constants.Suite) *Suite {
	return &Suite{
		id: id,
		c: &hybrid.GroupConstruction{
			PQ:    pqkem.ByName(id),
			T:     group.ByName(id),
			Style: hybrid.C2PRI,
			Label: id.Label(),
		},
	}
}

// ByName returns the bound Suite for a constants.Suite identifier, or nil
// if it does not name one of the three ciphersuites.
func ByName(id constants.Suite) *Suite {
	switch id {
	case constants.P256MLKEM768:
		return P256MLKEM768
	case constants.X25519MLKEM768:
		return X25519MLKEM768
	case constants.P384MLKEM1024:
		return P384MLKEM1024
	default:
		return nil
	}
}

// ID returns the underlying constants.Suite identifier.
func (s *Suite) ID() constants.Suite { return s.id }

// String returns the ciphersuite's IANA-style name.
func (s *Suite) String() string { return s.id.String() }

func (s *Suite) SeedSize() int             { return s.c.SeedSize() }
func (s *Suite) EncapsulationKeySize() int { return s.c.EncapsulationKeySize() }
func (s *Suite) CiphertextSize() int       { return s.c.CiphertextSize() }
func (s *Suite) RandomnessSize() int       { return s.c.RandomnessSize() }
func (s *Suite) SharedSecretSize() int     { return s.c.SharedSecretSize() }

// DeriveKeyPair deterministically derives (dk, ek) from seed. In a "fips"
// build it fails with CheckFIPSCompliance's error for a suite that is not
// FIPS-approved.
func (s *Suite) DeriveKeyPair(seed []byte) (dk, ek []byte, err error) {
	if err := CheckFIPSCompliance(s); err != nil {
		return nil, nil, err
	}
	return s.c.DeriveKeyPair(seed)
}

// Encaps encapsulates against ek, drawing fresh randomness from crypto/rand.
func (s *Suite) Encaps(ek []byte) (ct, ss []byte, err error) {
	return s.c.Encaps(ek)
}

// EncapsDerand deterministically encapsulates against ek using randomness in
// place of RNG reads.
func (s *Suite) EncapsDerand(ek, randomness []byte) (ct, ss []byte, err error) {
	return s.c.EncapsDerand(ek, randomness)
}

// Decaps recovers the shared secret ct was created for, given dk.
func (s *Suite) Decaps(dk, ct []byte) (ss []byte, err error) {
	return s.c.Decaps(dk, ct)
}

// DeriveKeyPairCtx is DeriveKeyPair traced as a span under ctx.
func (s *Suite) DeriveKeyPairCtx(ctx context.Context, seed []byte) (dk, ek []byte, err error) {
	_, end := log.StartSpan(ctx, log.SpanDeriveKeyPair, log.WithAttributes(map[string]interface{}{"suite": s.String()}))
	defer func() { end(err) }()
	dk, ek, err = s.DeriveKeyPair(seed)
	return dk, ek, err
}

// EncapsCtx is Encaps traced as a span under ctx.
func (s *Suite) EncapsCtx(ctx context.Context, ek []byte) (ct, ss []byte, err error) {
	_, end := log.StartSpan(ctx, log.SpanEncaps, log.WithAttributes(map[string]interface{}{"suite": s.String()}))
	defer func() { end(err) }()
	ct, ss, err = s.Encaps(ek)
	return ct, ss, err
}

// EncapsDerandCtx is EncapsDerand traced as a span under ctx.
func (s *Suite) EncapsDerandCtx(ctx context.Context, ek, randomness []byte) (ct, ss []byte, err error) {
	_, end := log.StartSpan(ctx, log.SpanEncapsDerand, log.WithAttributes(map[string]interface{}{"suite": s.String()}))
	defer func() { end(err) }()
	ct, ss, err = s.EncapsDerand(ek, randomness)
	return ct, ss, err
}

// DecapsCtx is Decaps traced as a span under ctx.
func (s *Suite) DecapsCtx(ctx context.Context, dk, ct []byte) (ss []byte, err error) {
	_, end := log.StartSpan(ctx, log.SpanDecaps, log.WithAttributes(map[string]interface{}{"suite": s.String()}))
	defer func() { end(err) }()
	ss, err = s.Decaps(dk, ct)
	return ss, err
}

// SplitEncapsulationKey splits a wire-encoded ek into its ek_pq and ek_t
// halves without parsing either further.
func (s *Suite) SplitEncapsulationKey(ek []byte) (ekPQ, ekT []byte, err error) {
	if len(ek) != s.EncapsulationKeySize() {
		return nil, nil, errors.BadLength("Suite.SplitEncapsulationKey", s.EncapsulationKeySize(), len(ek))
	}
	pqLen := s.c.PQ.EncapsulationKeySize()
	return ek[:pqLen], ek[pqLen:], nil
}

// SplitCiphertext splits a wire-encoded ct into its ct_pq and ct_t halves.
func (s *Suite) SplitCiphertext(ct []byte) (ctPQ, ctT []byte, err error) {
	if len(ct) != s.CiphertextSize() {
		return nil, nil, errors.BadLength("Suite.SplitCiphertext", s.CiphertextSize(), len(ct))
	}
	pqLen := s.c.PQ.CiphertextSize()
	return ct[:pqLen], ct[pqLen:], nil
}

// All returns the three named ciphersuites in table order.
func All() []*Suite {
	return []*Suite{P256MLKEM768, X25519MLKEM768, P384MLKEM1024}
}

// ParseName resolves a short, case-insensitive suite name (as typed on a
// command line) to its bound Suite. Recognises "p256", "x25519" (or
// "x-wing"), and "p384", along with each suite's full IANA-style name. It
// returns an error listing the recognised names if name matches none.
func ParseName(name string) (*Suite, error) {
	switch strings.ToLower(name) {
	case "p256", "p256-mlkem768", "qsf-p256-mlkem768-shake256-sha3256":
		return P256MLKEM768, nil
	case "x25519", "x-wing", "x25519-mlkem768", "qsf-x25519-mlkem768-shake256-sha3256":
		return X25519MLKEM768, nil
	case "p384", "p384-mlkem1024", "qsf-p384-mlkem1024-shake256-sha3256":
		return P384MLKEM1024, nil
	default:
		return nil, fmt.Errorf("unknown ciphersuite %q: want one of p256, x25519, p384", name)
	}
}

// IsFIPSApproved reports whether s's traditional side is a NIST curve. This
// is a static property of the ciphersuite, independent of the build tag;
// FIPSMode and CheckFIPSCompliance are what make it load-bearing.
func (s *Suite) IsFIPSApproved() bool {
	switch s.id {
	case constants.P256MLKEM768, constants.P384MLKEM1024:
		return true
	default:
		return false
	}
}

// CheckFIPSCompliance returns an error if the binary was built with the
// "fips" tag and s is not FIPS-approved. In a standard build it always
// returns nil.
func CheckFIPSCompliance(s *Suite) error {
	if FIPSMode() && !s.IsFIPSApproved() {
		return errors.Primitive("CheckFIPSCompliance", errNotFIPSApproved{suite: s.String()})
	}
	return nil
}

type errNotFIPSApproved struct{ suite string }

func (e errNotFIPSApproved) Error() string {
	return e.suite + " is not FIPS 140-3 approved"
}

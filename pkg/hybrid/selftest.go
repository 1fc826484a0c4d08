package hybrid

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/concretekem/hybridkem/internal/constants"
	"github.com/concretekem/hybridkem/pkg/group"
	"github.com/concretekem/hybridkem/pkg/pqkem"
)

// selfTestScenario is one of the generator's canned round-trip checks: a
// seed and a matching randomness string, all bytes uniform, run through
// derive_key_pair -> encaps_derand -> decaps.
type selfTestScenario struct {
	name     string
	suite    constants.Suite
	seedByte byte
	randByte byte
}

var selfTestScenarios = []selfTestScenario{
	{name: "X25519+MLKEM768", suite: constants.X25519MLKEM768, seedByte: 0x0B, randByte: 0x6F},
	{name: "P256+MLKEM768", suite: constants.P256MLKEM768, seedByte: 0x06, randByte: 0x69},
	{name: "P384+MLKEM1024", suite: constants.P384MLKEM1024, seedByte: 0x1E, randByte: 0x82},
}

func newGC(s constants.Suite) *GroupConstruction {
	return &GroupConstruction{
		PQ:    pqkem.ByName(s),
		T:     group.ByName(s),
		Style: C2PRI,
		Label: s.Label(),
	}
}

// runScenario exercises one self-test scenario's full round trip and checks
// that decaps recovers the shared secret encaps_derand produced. This does
// not compare against a precomputed cross-implementation value: confirming
// bitwise agreement with another implementation of this construction would
// require a reference shared secret computed outside this module, which
// this self-test does not have access to. It instead checks the property
// every conformant implementation must satisfy on its own: the round trip
// is internally consistent.
func runScenario(sc selfTestScenario) error {
	c := newGC(sc.suite)

	seed := bytes.Repeat([]byte{sc.seedByte}, c.SeedSize())
	randomness := bytes.Repeat([]byte{sc.randByte}, c.RandomnessSize())

	dk, ek, err := c.DeriveKeyPair(seed)
	if err != nil {
		return fmt.Errorf("%s: derive_key_pair: %w", sc.name, err)
	}
	if !bytes.Equal(dk, seed) {
		return fmt.Errorf("%s: derive_key_pair: dk != seed", sc.name)
	}
	if len(ek) != c.EncapsulationKeySize() {
		return fmt.Errorf("%s: derive_key_pair: ek length = %d, want %d", sc.name, len(ek), c.EncapsulationKeySize())
	}

	ct, ssEncaps, err := c.EncapsDerand(ek, randomness)
	if err != nil {
		return fmt.Errorf("%s: encaps_derand: %w", sc.name, err)
	}
	if len(ct) != c.CiphertextSize() {
		return fmt.Errorf("%s: encaps_derand: ct length = %d, want %d", sc.name, len(ct), c.CiphertextSize())
	}

	ssDecaps, err := c.Decaps(dk, ct)
	if err != nil {
		return fmt.Errorf("%s: decaps: %w", sc.name, err)
	}
	if !bytes.Equal(ssEncaps, ssDecaps) {
		return fmt.Errorf("%s: decaps produced a different shared secret than encaps_derand", sc.name)
	}
	return nil
}

var (
	selfTestOnce   sync.Once
	selfTestErr    error
	selfTestPassed bool
)

// RunSelfTest runs the three generator scenarios once and caches the
// result; later calls return the cached outcome without re-running.
func RunSelfTest() error {
	selfTestOnce.Do(func() {
		for _, sc := range selfTestScenarios {
			if err := runScenario(sc); err != nil {
				selfTestErr = err
				return
			}
		}
		selfTestPassed = true
	})
	return selfTestErr
}

// SelfTestPassed reports whether RunSelfTest has run and succeeded. It does
// not trigger the self-test itself.
func SelfTestPassed() bool {
	return selfTestPassed
}

func init() {
	_ = RunSelfTest()
}

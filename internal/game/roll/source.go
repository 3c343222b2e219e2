// Package roll provides the randomness abstraction for the Duskhall Arena
// combat engine. Ability triggers, crit rolls, and enemy action choices all
// draw from an injected Source so outcomes are reproducible in tests.
package roll

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand"
)

// Source is the randomness provider for combat rolls.
//
// Implementations MUST be safe for sequential use from a single goroutine;
// the engine never draws concurrently.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// cryptoSource implements Source using crypto/rand.
type cryptoSource struct{}

// NewCryptoSource returns a Source backed by crypto/rand.
//
// Postcondition: Every value returned by Intn is uniformly distributed in [0, n).
func NewCryptoSource() Source {
	return &cryptoSource{}
}

// Intn returns a cryptographically secure random int in [0, n).
//
// Precondition: n > 0. Panics with "roll: Intn called with n <= 0" if n <= 0.
// Panics with "roll: crypto/rand failure: <err>" if crypto/rand fails.
func (c *cryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("roll: Intn called with n <= 0")
	}
	val, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("roll: crypto/rand failure: " + err.Error())
	}
	return int(val.Int64())
}

// seededSource implements Source using math/rand with a fixed seed,
// so a full combat run can be replayed exactly.
type seededSource struct {
	rng *mrand.Rand
}

// NewSeededSource returns a deterministic Source seeded with seed.
//
// Postcondition: Two sources created with the same seed produce identical
// Intn sequences.
func NewSeededSource(seed int64) Source {
	return &seededSource{rng: mrand.New(mrand.NewSource(seed))}
}

// Intn returns a pseudo-random int in [0, n).
//
// Precondition: n > 0. Panics with "roll: Intn called with n <= 0" if n <= 0.
func (s *seededSource) Intn(n int) int {
	if n <= 0 {
		panic("roll: Intn called with n <= 0")
	}
	return s.rng.Intn(n)
}

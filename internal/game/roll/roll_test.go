package roll_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pgregory.net/rapid"

	"github.com/duskhall/arena/internal/game/roll"
)

// fixedSrc is a deterministic Source for testing. It returns val for every
// Intn call regardless of the bound.
type fixedSrc struct{ val int }

func (f fixedSrc) Intn(_ int) int { return f.val }

func TestSeededSource_Reproducible(t *testing.T) {
	a := roll.NewSeededSource(42)
	b := roll.NewSeededSource(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000), "draw %d diverged", i)
	}
}

func TestSeededSource_Bounds(t *testing.T) {
	src := roll.NewSeededSource(7)
	for i := 0; i < 1000; i++ {
		v := src.Intn(6)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 6)
	}
}

func TestSeededSource_PanicsOnInvalidBound(t *testing.T) {
	src := roll.NewSeededSource(1)
	assert.Panics(t, func() { src.Intn(0) })
	assert.Panics(t, func() { src.Intn(-3) })
}

func TestCryptoSource_Bounds(t *testing.T) {
	src := roll.NewCryptoSource()
	for i := 0; i < 100; i++ {
		v := src.Intn(20)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 20)
	}
}

func TestChance_Extremes(t *testing.T) {
	src := roll.NewSeededSource(1)
	assert.False(t, roll.Chance(src, 0))
	assert.False(t, roll.Chance(src, -0.5))
	assert.True(t, roll.Chance(src, 1))
	assert.True(t, roll.Chance(src, 2.0))
}

func TestChance_ThresholdBoundary(t *testing.T) {
	// A draw just under p*scale succeeds; a draw at or above it fails.
	assert.True(t, roll.Chance(fixedSrc{val: 249_999}, 0.25))
	assert.False(t, roll.Chance(fixedSrc{val: 250_000}, 0.25))
	assert.True(t, roll.Chance(fixedSrc{val: 0}, 0.5))
	assert.False(t, roll.Chance(fixedSrc{val: 500_000}, 0.5))
}

func TestChance_Property_ExtremesNeverSurprise(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Int64().Draw(rt, "seed")
		src := roll.NewSeededSource(seed)
		assert.False(rt, roll.Chance(src, 0), "p=0 must never succeed")
		assert.True(rt, roll.Chance(src, 1), "p=1 must always succeed")
	})
}

func TestPick_Bounds(t *testing.T) {
	src := roll.NewSeededSource(99)
	for i := 0; i < 200; i++ {
		v := roll.Pick(src, 3)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 3)
	}
}

func TestLoggedSource_Delegates(t *testing.T) {
	src := roll.NewLoggedSource(fixedSrc{val: 4}, zap.NewNop())
	assert.Equal(t, 4, src.Intn(10))
}

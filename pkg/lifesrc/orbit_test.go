package lifesrc

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

func binomial(n, k int) int {
	num, den := 1, 1
	for i := 0; i < k; i++ {
		num *= n - i
		den *= i + 1
	}
	return num / den
}

func TestAllPatternsForCountMatchesBinomial(t *testing.T) {
	for c := 0; c <= 8; c++ {
		pats := AllPatternsForCount(c)
		assert.Len(t, pats, binomial(8, c), "count %d", c)
		for _, p := range pats {
			assert.Equal(t, c, bits.OnesCount8(p))
		}
	}
}

func TestCountZeroAndEightAreUnambiguous(t *testing.T) {
	_, total0 := OrbitLetter(0)
	assert.Equal(t, 1, total0)
	_, total8 := OrbitLetter(0xFF)
	assert.Equal(t, 1, total8)
}

func TestCountOneHasOrthogonalAndDiagonalOrbits(t *testing.T) {
	// Index 0 (N) is orthogonal; index 1 (NE) is diagonal. They must not
	// share an orbit, since no rotation/reflection of the square maps an
	// edge-adjacent neighbor onto a corner-adjacent one.
	letterN, total := OrbitLetter(1 << 0)
	letterNE, _ := OrbitLetter(1 << 1)
	assert.Equal(t, 2, total)
	assert.NotEqual(t, letterN, letterNE)
}

func TestPatternsForLetterPartitionTheCount(t *testing.T) {
	for c := 0; c <= 8; c++ {
		all := AllPatternsForCount(c)
		letters := LettersForCount(c)
		seen := map[uint8]bool{}
		for _, l := range letters {
			for _, p := range PatternsForLetter(c, l) {
				assert.False(t, seen[p], "pattern %08b seen twice", p)
				seen[p] = true
			}
		}
		assert.Len(t, seen, len(all), "count %d: orbits did not cover every pattern exactly once", c)
	}
}

func TestOrbitLetterIsStableUnderRotationAndReflection(t *testing.T) {
	// The N+NE pattern, its quarter-turn rotation (E+SE), and its mirror
	// image across the vertical axis (N+NW) are one orbit, so all three
	// must carry the same letter.
	shape := uint8(1<<0 | 1<<1)
	letter, _ := OrbitLetter(shape)
	rotated := uint8(1<<2 | 1<<3)
	letter2, _ := OrbitLetter(rotated)
	assert.Equal(t, letter, letter2)
	reflected := uint8(1<<0 | 1<<7)
	letter3, _ := OrbitLetter(reflected)
	assert.Equal(t, letter, letter3)
}

func TestUnrecognizedLetterYieldsNil(t *testing.T) {
	assert.Nil(t, PatternsForLetter(1, 'z'))
	assert.Nil(t, AllPatternsForCount(9))
	assert.Nil(t, AllPatternsForCount(-1))
}

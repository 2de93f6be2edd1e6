package lifesrc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateNot(t *testing.T) {
	assert.Equal(t, Dead, Alive.Not())
	assert.Equal(t, Alive, Dead.Not())
}

func TestStateNotPanicsOnUnknown(t *testing.T) {
	assert.Panics(t, func() { Unknown.Not() })
}

func TestStateNotPanicsOnDying(t *testing.T) {
	assert.Panics(t, func() { DyingState(1).Not() })
}

func TestDyingStateRoundTrip(t *testing.T) {
	for k := 1; k <= 5; k++ {
		s := DyingState(k)
		got, ok := s.IsDying()
		assert.True(t, ok)
		assert.Equal(t, k, got)
		assert.False(t, s.IsLive())
	}
}

func TestIsLive(t *testing.T) {
	assert.True(t, Alive.IsLive())
	assert.False(t, Dead.IsLive())
	assert.False(t, Unknown.IsLive())
}

func TestGlyph(t *testing.T) {
	assert.Equal(t, byte('?'), Unknown.Glyph())
	assert.Equal(t, byte('.'), Dead.Glyph())
	assert.Equal(t, byte('O'), Alive.Glyph())
	assert.Equal(t, byte('A'), DyingState(1).Glyph())
	assert.Equal(t, byte('B'), DyingState(2).Glyph())
}

func TestBackgroundAt(t *testing.T) {
	b0 := Background{B0: true}
	assert.Equal(t, Dead, b0.At(0))
	assert.Equal(t, Alive, b0.At(1))
	assert.Equal(t, Dead, b0.At(2))

	plain := Background{B0: false}
	assert.Equal(t, Dead, plain.At(0))
	assert.Equal(t, Dead, plain.At(1))
}

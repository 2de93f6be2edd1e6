package lifesrc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlankDescIsAllUnknown(t *testing.T) {
	d := BlankDesc()
	assert.Equal(t, Unknown, d.Self())
	assert.Equal(t, Unknown, d.Succ())
	assert.Equal(t, uint8(0xFF), d.UnknownMask())
	assert.Equal(t, uint8(0), d.AliveMask())
	assert.Equal(t, 0, d.MinAlive())
	assert.Equal(t, 8, d.MaxAlive())
}

func TestNewDescAllAliveNeighbors(t *testing.T) {
	d := NewDesc(Alive, Dead)
	assert.Equal(t, Alive, d.Self())
	assert.Equal(t, Dead, d.Succ())
	assert.Equal(t, uint8(0xFF), d.AliveMask())
	assert.Equal(t, uint8(0), d.UnknownMask())
	assert.Equal(t, 8, d.AliveCount())
}

func TestNewDescAllDeadNeighbors(t *testing.T) {
	d := NewDesc(Dead, Dead)
	assert.Equal(t, uint8(0), d.AliveMask())
	assert.Equal(t, uint8(0), d.UnknownMask())
	assert.Equal(t, 0, d.MaxAlive())
}

func TestWithSelfAndSucc(t *testing.T) {
	d := BlankDesc()
	d = d.withSelf(Alive)
	d = d.withSucc(Dead)
	assert.Equal(t, Alive, d.Self())
	assert.Equal(t, Dead, d.Succ())
	assert.Equal(t, uint8(0xFF), d.UnknownMask(), "withSelf/withSucc must not disturb neighbor bits")
}

func TestWithNeighborTransitions(t *testing.T) {
	d := BlankDesc()
	d = d.withNeighbor(3, Alive)
	assert.True(t, d.AliveMask()&(1<<3) != 0)
	assert.True(t, d.UnknownMask()&(1<<3) == 0)
	assert.Equal(t, 1, d.AliveCount())
	assert.Equal(t, 7, d.UnknownCount())

	d = d.withNeighbor(3, Dead)
	assert.True(t, d.AliveMask()&(1<<3) == 0)
	assert.True(t, d.UnknownMask()&(1<<3) == 0)

	d = d.withNeighbor(3, Unknown)
	assert.True(t, d.UnknownMask()&(1<<3) != 0)
}

func TestWithNeighborDyingIsNotAlive(t *testing.T) {
	d := BlankDesc()
	d = d.withNeighbor(0, DyingState(2))
	assert.Equal(t, uint8(0), d.AliveMask())
	assert.Equal(t, uint8(0), d.UnknownMask())
}

func TestMinMaxAliveBounds(t *testing.T) {
	d := BlankDesc()
	d = d.withNeighbor(0, Alive)
	d = d.withNeighbor(1, Dead)
	assert.Equal(t, 1, d.MinAlive())
	assert.Equal(t, 1+6, d.MaxAlive())
}

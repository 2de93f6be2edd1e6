package lifesrc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuilderWiresPeriodOneSelfLoop exercises the period=1 wraparound
// path of buildWorld directly: with no net translation or transform, a
// single cell's own successor (and predecessor) must be itself, and its
// Moore neighborhood must be entirely background sentinels.
func TestBuilderWiresPeriodOneSelfLoop(t *testing.T) {
	cfg := Config{
		Width:        1,
		Height:       1,
		Period:       1,
		TransformStr: "Id",
		SymmetryStr:  "C1",
		NewStateStr:  "Alive",
		RuleString:   "B3/S23",
	}
	w, err := NewWorld(cfg)
	require.NoError(t, err)
	require.Len(t, w.searchList, 1)

	c := w.searchList[0]
	assert.Same(t, c, c.Succ)
	assert.Same(t, c, c.Pred)
	assert.True(t, c.IsFront)
	for _, n := range c.Nbhd {
		require.NotNil(t, n)
		assert.NotSame(t, c, n)
		assert.Equal(t, Dead, n.State) // B3/S23 is not a B0 rule
	}
}

// TestUnsatisfiableRuleExhaustsSearch drives a full Search to
// completion on the smallest possible unsatisfiable configuration: a
// single cell, period 1, under a rule with no births and no survivals
// ("B/S"), with non_empty_front requiring at least one live front cell.
// Every candidate for the lone cell is either forced to conflict with
// the all-dead rule (Alive) or leaves the front permanently empty
// (Dead), so the search space is exhausted and Search must report
// StatusNone.
func TestUnsatisfiableRuleExhaustsSearch(t *testing.T) {
	cfg := Config{
		Width:         1,
		Height:        1,
		Period:        1,
		TransformStr:  "Id",
		SymmetryStr:   "C1",
		NewStateStr:   "Alive",
		NonEmptyFront: true,
		RuleString:    "B/S",
	}
	w, err := NewWorld(cfg)
	require.NoError(t, err)
	assert.False(t, w.rule.Background().B0)

	status := w.Search(0)
	assert.Equal(t, StatusNone, status)
	assert.GreaterOrEqual(t, w.Conflicts(), uint64(1))
}

// TestSearchResumesAfterStepBudget checks the StatusSearching/resume
// contract: on a fresh world with the unsatisfiable rule above, calling
// Search with a maxStep of 1 again each time it reports StatusSearching
// must still end with the same StatusNone an unbounded run reaches.
func TestSearchResumesAfterStepBudget(t *testing.T) {
	cfg := Config{
		Width:         1,
		Height:        1,
		Period:        1,
		TransformStr:  "Id",
		SymmetryStr:   "C1",
		NewStateStr:   "Alive",
		NonEmptyFront: true,
		RuleString:    "B/S",
	}
	w, err := NewWorld(cfg)
	require.NoError(t, err)

	status := w.Search(1)
	for status == StatusSearching {
		status = w.Search(1)
	}
	assert.Equal(t, StatusNone, status)
}

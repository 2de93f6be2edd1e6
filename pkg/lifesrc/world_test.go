package lifesrc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

// TestGliderFound pins the canonical glider scenario: a 5x5 board,
// period 4, translated by (1,1), under Conway's Life. A glider is the
// minimal-population solution for this translation/period, so the
// engine (scanning front-to-back, choosing Alive by default) is
// expected to land on a five-cell generation 0.
func TestGliderFound(t *testing.T) {
	cfg := Config{
		Width: 5, Height: 5, Period: 4,
		DX: 1, DY: 1,
		TransformStr:  "Id",
		SymmetryStr:   "C1",
		NewStateStr:   "Alive",
		NonEmptyFront: true,
		RuleString:    "B3/S23",
	}
	w, err := NewWorld(cfg)
	require.NoError(t, err)

	status := w.Search(0)
	require.Equal(t, StatusFound, status)
	assert.Equal(t, 5, w.CellCount(0))
	assert.Equal(t, 5, strings.Count(w.DisplayGen(0), "O"))
	assertRoundTrips(t, w)
}

// TestStillLifeForcedEmpty checks that a zero cell-count cap, without a
// non-empty-front requirement, is satisfiable with the all-dead pattern
// and is reported as Found (not silently backed-up-past because the
// pattern coincides with the rule's background).
func TestStillLifeForcedEmpty(t *testing.T) {
	cfg := Config{
		Width: 3, Height: 3, Period: 1,
		TransformStr:  "Id",
		SymmetryStr:   "C1",
		NewStateStr:   "Alive",
		MaxCellCount:  intPtr(0),
		NonEmptyFront: false,
		RuleString:    "B3/S23",
	}
	w, err := NewWorld(cfg)
	require.NoError(t, err)

	status := w.Search(0)
	require.Equal(t, StatusFound, status)
	assert.Equal(t, 0, w.CellCount(0))
	assert.False(t, w.Nontrivial())
}

// TestNonEmptyFrontConflictsWithZeroCap is scenario 6: the same setup as
// TestStillLifeForcedEmpty, but non_empty_front additionally demands a
// live front cell, which a zero cap can never supply. No pattern
// satisfies both constraints.
func TestNonEmptyFrontConflictsWithZeroCap(t *testing.T) {
	cfg := Config{
		Width: 3, Height: 3, Period: 1,
		TransformStr:  "Id",
		SymmetryStr:   "C1",
		NewStateStr:   "Alive",
		MaxCellCount:  intPtr(0),
		NonEmptyFront: true,
		RuleString:    "B3/S23",
	}
	w, err := NewWorld(cfg)
	require.NoError(t, err)

	status := w.Search(0)
	assert.Equal(t, StatusNone, status)
}

// TestUnsatisfiableRealBoard pins a board-scale (not 1x1) unsatisfiable
// configuration: no Conway's Life pattern with a live front cell has
// period 2 and moves by (1,0) inside a 3x3 box.
func TestUnsatisfiableRealBoard(t *testing.T) {
	cfg := Config{
		Width: 3, Height: 3, Period: 2,
		DX: 1, DY: 0,
		TransformStr:  "Id",
		SymmetryStr:   "C1",
		NewStateStr:   "Alive",
		NonEmptyFront: true,
		RuleString:    "B3/S23",
	}
	w, err := NewWorld(cfg)
	require.NoError(t, err)

	status := w.Search(0)
	assert.Equal(t, StatusNone, status)
}

// TestSymmetryC2 checks that any Found pattern under an imposed C2
// symmetry is point-symmetric about the board center at generation 0,
// which at period 1 is the only generation.
func TestSymmetryC2(t *testing.T) {
	cfg := Config{
		Width: 7, Height: 7, Period: 1,
		TransformStr:  "Id",
		SymmetryStr:   "C2",
		NewStateStr:   "Alive",
		NonEmptyFront: true,
		RuleString:    "B3/S23",
	}
	w, err := NewWorld(cfg)
	require.NoError(t, err)

	status := w.Search(0)
	require.Equal(t, StatusFound, status)

	for x := 0; x < w.Width; x++ {
		for y := 0; y < w.Height; y++ {
			c := w.cellAt(x, y, 0)
			partner := w.cellAt(w.Width-1-x, w.Height-1-y, 0)
			require.NotNil(t, c)
			require.NotNil(t, partner)
			assert.Equal(t, c.State, partner.State, "cell (%d,%d) and its C2 partner disagree", x, y)
		}
	}
}

// TestB0RuleAlternatingBackground checks the structural half of scenario
// 5 that is independent of search outcome: a rule containing B0 births
// on an empty neighborhood, so out-of-range cells must be Dead at even
// generations and Alive at odd ones, and the builder's sentinel cells
// must reflect that alternation.
func TestB0RuleAlternatingBackground(t *testing.T) {
	cfg := Config{
		Width: 4, Height: 4, Period: 2,
		TransformStr: "Id",
		SymmetryStr:  "C1",
		NewStateStr:  "Dead",
		RuleString:   "B03/S23",
	}
	w, err := NewWorld(cfg)
	require.NoError(t, err)

	bg := w.rule.Background()
	require.True(t, bg.B0)
	assert.Equal(t, Dead, bg.At(0))
	assert.Equal(t, Alive, bg.At(1))

	// Out-of-range neighbors of an edge cell are background sentinels;
	// verify their committed state matches the generation's background.
	edge0 := w.cellAt(0, 0, 0)
	require.NotNil(t, edge0)
	assert.Equal(t, Dead, edge0.Nbhd[0].State) // N neighbor of (0,0) is out of range
	edge1 := w.cellAt(0, 0, 1)
	require.NotNil(t, edge1)
	assert.Equal(t, Alive, edge1.Nbhd[0].State)
}

// assertRoundTrips checks the spec's round-trip invariant directly
// against a Found world: stepping the rule by hand from generation 0
// must reproduce every later generation, and generation p must equal
// the transform+translation of generation 0 (assertRoundTrips only
// covers the Id-transform, non-Generations case its callers use).
func assertRoundTrips(t *testing.T, w *World) {
	t.Helper()
	tr, ok := w.rule.(*TotalisticRule)
	require.True(t, ok)

	grid := make([][]State, w.Width)
	for x := range grid {
		grid[x] = make([]State, w.Height)
		for y := range grid[x] {
			c := w.cellAt(x, y, 0)
			require.NotNil(t, c)
			grid[x][y] = c.State
		}
	}

	at := func(g [][]State, x, y int) State {
		if x < 0 || x >= w.Width || y < 0 || y >= w.Height {
			return Dead
		}
		return g[x][y]
	}
	step := func(g [][]State) [][]State {
		next := make([][]State, w.Width)
		for x := range next {
			next[x] = make([]State, w.Height)
			for y := range next[x] {
				count := 0
				for _, off := range neighborOffsets {
					if at(g, x+off[0], y+off[1]) == Alive {
						count++
					}
				}
				if g[x][y] == Alive && tr.survival[count] {
					next[x][y] = Alive
				} else if g[x][y] == Dead && tr.birth[count] {
					next[x][y] = Alive
				} else {
					next[x][y] = Dead
				}
			}
		}
		return next
	}

	cur := grid
	for gen := 1; gen < w.Period; gen++ {
		cur = step(cur)
		for x := 0; x < w.Width; x++ {
			for y := 0; y < w.Height; y++ {
				c := w.cellAt(x, y, gen)
				require.NotNil(t, c)
				assert.Equal(t, cur[x][y], c.State, "generation %d cell (%d,%d)", gen, x, y)
			}
		}
	}

	// generation p at (x,y) is identified, via the builder's wraparound
	// wiring, with generation 0 at (x-dx, y-dy) (Id transform case).
	final := step(cur)
	for x := 0; x < w.Width; x++ {
		for y := 0; y < w.Height; y++ {
			tx, ty := x-w.DX, y-w.DY
			if tx < 0 || tx >= w.Width || ty < 0 || ty >= w.Height {
				continue
			}
			assert.Equal(t, final[x][y], grid[tx][ty], "wraparound at (%d,%d)", x, y)
		}
	}
}

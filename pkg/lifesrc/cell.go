package lifesrc

// Cell is one space-time point of the search, grounded field-for-field
// on original_source/lib/src/cells.rs's LifeCell. The graph is
// arena-allocated by the builder (see builder.go) and all links below
// are non-owning pointers into that arena, cyclic by construction
// (pred/succ/nbhd/sym all point back into the same slice); Go has no
// borrow checker, so ownership is simply "the arena outlives the
// search", the same discipline the teacher's FDStore applies to its
// []*FDVar arena in fd.go.
type Cell struct {
	Coord      Coord
	Background State

	// State is Unknown until assigned. Kept as a plain field (not an
	// atomic) because the engine is single-goroutine over cell
	// mutation, per spec §5.
	State State
	Desc  Desc

	Pred *Cell
	Succ *Cell
	Nbhd [8]*Cell
	Sym  []*Cell

	// Level is set when the cell is assigned (the decision depth at
	// assignment time) and cleared (via ok=false) when unassigned.
	Level   int
	hasLevel bool

	// Reason records why State was assigned; zero value when
	// unassigned.
	Reason Reason

	// Seen is scratch state used only during Analyze; must read false
	// on entry to a fresh Analyze call (cleared by ClearCell, and
	// swept defensively at the end of Analyze).
	Seen bool

	IsGen0   bool
	IsFront  bool
}

// HasLevel reports whether Level currently holds a meaningful value
// (i.e., the cell is assigned).
func (c *Cell) HasLevel() bool { return c.hasLevel }

func (c *Cell) setLevel(level int) {
	c.Level = level
	c.hasLevel = true
}

func (c *Cell) clearLevel() {
	c.Level = 0
	c.hasLevel = false
}

// neighborIndex returns the index (0..7) of other within c.Nbhd, or -1
// if other is not a neighbor of c. Used by update-desc bookkeeping.
func (c *Cell) neighborIndex(other *Cell) int {
	for i, n := range c.Nbhd {
		if n == other {
			return i
		}
	}
	return -1
}

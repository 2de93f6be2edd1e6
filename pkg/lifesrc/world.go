package lifesrc

import "math/rand"

// World owns the cell arena, the propagation stack, and every search
// cursor/counter named in spec §3/§4.2. It is the sole mutable state of
// a search; nothing outside World is ever touched while a search is in
// flight (spec §5's "Global state: none").
type World struct {
	rule Rule

	Width, Height, Period int
	DX, DY                int
	TransformVal          Transform
	SymmetryVal           Symmetry
	SearchOrderVal        SearchOrder
	NewStateVal           NewState
	NonEmptyFront         bool

	// cells is the full arena: real cells plus, appended after them, one
	// background sentinel per generation (built in builder.go's buildWorld).
	cells []*Cell

	// searchList is the static enumeration order over real (x, y, t)
	// cells that get_unknown/decide scan (spec §3 "Search list").
	searchList []*Cell

	// setStack is the propagation stack; checkIndex partitions it into
	// already-propagated (below) and pending (at or above).
	setStack   []*Cell
	checkIndex int

	// searchIndex is the lowest search-list index not yet known assigned;
	// decide resumes scanning from here.
	searchIndex int

	// level is the current decision depth: the number of Assume reasons
	// currently on the stack.
	level int

	maxCellCount    int
	hasMaxCellCount bool

	cellCount       []int // per generation
	frontCellCount  int
	frontUnknownCnt int
	conflictCount   uint64

	rng *rand.Rand

	monitor *SearchMonitor

	started   bool
	reduceMax bool
}

// RuleInUse returns the rule this world was built with.
func (w *World) RuleInUse() Rule { return w.rule }

// Conflicts returns the number of conflicts encountered so far.
func (w *World) Conflicts() uint64 { return w.conflictCount }

// CellCount returns the number of Alive cells committed in generation t.
func (w *World) CellCount(t int) int {
	if t < 0 || t >= len(w.cellCount) {
		return 0
	}
	return w.cellCount[t]
}

// SetMaxCellCount installs (or clears, with ok=false) a cap on
// cell_count(0), per spec §6.2.
func (w *World) SetMaxCellCount(max int, ok bool) {
	w.maxCellCount = max
	w.hasMaxCellCount = ok
}

// SetMonitor installs an observability sink; nil is valid and disables
// recording (SearchMonitor's methods are nil-safe, per monitor.go).
func (w *World) SetMonitor(m *SearchMonitor) { w.monitor = m }

// SetCell implements spec §4.2's set_cell: assigns state to cell with
// reason, pushing it onto the propagation stack and updating every
// counter and descriptor that depends on it. It is idempotent when
// cell.State already equals state. A genuine conflict (cell already
// holds a different committed state, or a counter constraint is
// violated) is reported via the returned *ConflReason rather than an
// error, matching the engine-internal-only nature of conflicts (spec §7).
func (w *World) SetCell(cell *Cell, state State, reason Reason) *ConflReason {
	if cell.State != Unknown {
		if cell.State == state {
			return nil
		}
		if reason.Kind == ReasonSym {
			return &ConflReason{Kind: ConflSym, Cell0: reason.Cell0, Partner: cell}
		}
		return &ConflReason{Kind: ConflRule, Cell0: reason.Cell0}
	}

	old := cell.State
	cell.State = state
	cell.setLevel(w.level)
	cell.Reason = reason
	w.setStack = append(w.setStack, cell)

	w.rule.UpdateDesc(cell, cell, old, state)
	if cell.Pred != nil {
		w.rule.UpdateDesc(cell.Pred, cell, old, state)
	}
	for _, n := range cell.Nbhd {
		if n != nil {
			w.rule.UpdateDesc(n, cell, old, state)
		}
	}

	if state == Alive && cell.Coord.T >= 0 && cell.Coord.T < len(w.cellCount) {
		w.cellCount[cell.Coord.T]++
	}
	if cell.IsFront {
		w.frontUnknownCnt--
		if state == Alive {
			w.frontCellCount++
		}
	}

	if w.hasMaxCellCount && w.cellCount[0] > w.maxCellCount {
		return &ConflReason{Kind: ConflCellCount}
	}
	if w.NonEmptyFront && w.frontCellCount == 0 && w.frontUnknownCnt == 0 {
		return &ConflReason{Kind: ConflCellCount}
	}

	return nil
}

// ClearCell implements spec §4.2's clear_cell: unassigns cell, rolling
// back every counter/descriptor contribution SetCell made.
func (w *World) ClearCell(cell *Cell) {
	if cell.State == Unknown {
		return
	}
	old := cell.State

	if old == Alive && cell.Coord.T >= 0 && cell.Coord.T < len(w.cellCount) {
		w.cellCount[cell.Coord.T]--
	}
	if cell.IsFront {
		w.frontUnknownCnt++
		if old == Alive {
			w.frontCellCount--
		}
	}

	w.rule.UpdateDesc(cell, cell, old, Unknown)
	if cell.Pred != nil {
		w.rule.UpdateDesc(cell.Pred, cell, old, Unknown)
	}
	for _, n := range cell.Nbhd {
		if n != nil {
			w.rule.UpdateDesc(n, cell, old, Unknown)
		}
	}

	cell.State = Unknown
	cell.clearLevel()
	cell.Reason = Reason{}
	cell.Seen = false
}

// GetUnknown implements spec §4.2's get_unknown: the first Unknown cell
// in the search list at or after startIndex.
func (w *World) GetUnknown(startIndex int) (int, *Cell, bool) {
	for i := startIndex; i < len(w.searchList); i++ {
		if w.searchList[i].State == Unknown {
			return i, w.searchList[i], true
		}
	}
	return 0, nil, false
}

// Proceed implements spec §4.3: drains the propagation stack,
// symmetry-propagating and consistifying each newly-set cell and its
// 10-cell neighborhood (self, predecessor, 8 neighbors), until the
// stack is fully checked or a conflict is found.
func (w *World) Proceed() *ConflReason {
	if w.monitor != nil {
		w.monitor.startPropagation()
		defer w.monitor.endPropagation()
	}
	for w.checkIndex < len(w.setStack) {
		c := w.setStack[w.checkIndex]

		for _, s := range c.Sym {
			if s.State != Unknown {
				if s.State != c.State {
					return &ConflReason{Kind: ConflSym, Cell0: c, Partner: s}
				}
				continue
			}
			if cr := w.SetCell(s, c.State, Reason{Kind: ReasonSym, Cell0: c, Partner: s}); cr != nil {
				return cr
			}
		}

		if cr := w.rule.Consistify(w, c); cr != nil {
			return cr
		}
		if c.Pred != nil {
			if cr := w.rule.Consistify(w, c.Pred); cr != nil {
				return cr
			}
		}
		for _, n := range c.Nbhd {
			if n != nil {
				if cr := w.rule.Consistify(w, n); cr != nil {
					return cr
				}
			}
		}

		w.checkIndex++
	}
	return nil
}

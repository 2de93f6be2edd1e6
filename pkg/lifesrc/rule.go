package lifesrc

// Rule is the strategy interface capturing a two-state or Generations,
// totalistic or non-totalistic, life-like cellular automaton, per spec
// §4.1. World never inspects a cell's neighborhood directly; every piece
// of domain knowledge about "what transition is legal" is reached
// through this interface.
type Rule interface {
	// Name returns the rule string this Rule was parsed from (or
	// would canonically serialize to).
	Name() string

	// Background reports whether this rule births on zero live
	// neighbors (B0), which determines generation-parity background
	// alternation (spec §3).
	Background() Background

	// Generations returns the number n of states for a Generations
	// rule (n >= 3), or 0 for an ordinary two-state rule.
	Generations() int

	// NewDesc seeds a descriptor for a cell with all neighbors in
	// selfState and a known successor state.
	NewDesc(selfState, succState State) Desc

	// UpdateDesc is invoked by SetCell/ClearCell whenever source's state
	// changes from old to new, for every target whose descriptor
	// encodes information about source: source itself (self bits),
	// source's predecessor (succ bits), and each of source's neighbors
	// (that neighbor's bits). Implementations determine target's role
	// relative to source (self/succ/neighbor) and update only the
	// corresponding bits; it must be idempotent under clear-then-re-set
	// of the same state.
	UpdateDesc(target, source *Cell, old, new State)

	// Consistify consults cell.Desc and cell.State. If the rule's
	// transition table, given the descriptor's partial information,
	// uniquely forces new states for cell, its successor, or one or
	// more neighbors, it emits those via world.SetCell(..., Reason{Kind:
	// ReasonRule, Cell0: cell}) and returns nil. If the descriptor is
	// provably incompatible with the transition, it returns a
	// ConflReason{Kind: ConflRule, Cell0: cell}. If nothing is forced,
	// it returns nil having emitted nothing.
	Consistify(w *World, cell *Cell) *ConflReason
}

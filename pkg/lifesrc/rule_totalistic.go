package lifesrc

// TotalisticRule implements Rule for outer-totalistic life-like automata:
// the transition depends only on the alive-neighbor *count*, not which
// specific neighbors are alive. Generations > 0 turns it into a
// Generations totalistic rule (spec §6.1's "3457/357/5" grammar);
// Generations == 0 is the ordinary two-state "B3/S23" grammar.
type TotalisticRule struct {
	baseRule
	birth    [9]bool // birth[c] true iff a dead cell with c live neighbors is born
	survival [9]bool // survival[c] true iff a live cell with c live neighbors survives
}

var _ Rule = (*TotalisticRule)(nil)

// NewTotalisticRule builds a rule from explicit birth/survival count
// sets. generations is 0 for a two-state rule, or n>=3 for Generations.
func NewTotalisticRule(name string, birth, survival [9]bool, generations int) *TotalisticRule {
	return &TotalisticRule{
		baseRule: baseRule{name: name, b0: birth[0], generations: generations},
		birth:    birth,
		survival: survival,
	}
}

// transition returns the forced successor state for a cell known to be
// in state self with exactly count live neighbors.
func (r *TotalisticRule) transition(self State, count int) State {
	if s, ok := r.decayTransition(self); ok {
		return s
	}
	switch self {
	case Dead:
		if r.birth[count] {
			return Alive
		}
		return Dead
	case Alive:
		if r.survival[count] {
			return Alive
		}
		return r.afterSurvivalFailure()
	default:
		return Unknown
	}
}

// constantOverRange reports whether transition(self, c) is the same
// State for every c in [lo, hi], and if so returns it.
func (r *TotalisticRule) constantOverRange(self State, lo, hi int) (State, bool) {
	want := r.transition(self, lo)
	for c := lo + 1; c <= hi; c++ {
		if r.transition(self, c) != want {
			return Unknown, false
		}
	}
	return want, true
}

// feasible reports whether some count in [lo, hi] transitions self to
// want.
func (r *TotalisticRule) feasible(self State, lo, hi int, want State) bool {
	for c := lo; c <= hi; c++ {
		if r.transition(self, c) == want {
			return true
		}
	}
	return false
}

// Consistify implements the count-based local consistency described in
// SPEC_FULL.md §4.1/DESIGN.md: direct forward forcing (self+range ->
// succ), single-neighbor forcing (self+succ -> one unknown neighbor),
// and reverse forcing (succ+range -> self), each computed in O(range)
// rather than by enumerating all 2^8 neighbor combinations, since a
// totalistic rule only ever depends on the count.
func (r *TotalisticRule) Consistify(w *World, cell *Cell) *ConflReason {
	d := cell.Desc
	self, succ := d.Self(), d.Succ()
	lo, hi := d.MinAlive(), d.MaxAlive()

	// A dying cell's transition ignores its neighborhood entirely.
	if self != Unknown {
		if forced, ok := r.decayTransition(self); ok {
			if succ == Unknown {
				if cr := setCellFromRule(w, cell, cell.Succ, forced); cr != nil {
					return cr
				}
				return nil
			}
			if succ != forced {
				return &ConflReason{Kind: ConflRule, Cell0: cell}
			}
			return nil
		}
	}

	if self != Unknown {
		// Forward: does every achievable count force the same succ?
		if forced, ok := r.constantOverRange(self, lo, hi); ok {
			if succ == Unknown {
				if cell.Succ != nil {
					if cr := setCellFromRule(w, cell, cell.Succ, forced); cr != nil {
						return cr
					}
				}
			} else if succ != forced {
				return &ConflReason{Kind: ConflRule, Cell0: cell}
			}
		} else if succ != Unknown && !r.feasible(self, lo, hi, succ) {
			return &ConflReason{Kind: ConflRule, Cell0: cell}
		}
	}

	// Single-unknown-neighbor forcing requires both self and succ
	// known (a dying self already returned above).
	if self != Unknown && succ != Unknown {
		unknownMask := d.UnknownMask()
		for i := 0; i < 8; i++ {
			if unknownMask&(1<<i) == 0 {
				continue
			}
			n := cell.Nbhd[i]
			if n == nil || n.State != Unknown {
				continue
			}
			aliveFeasible := r.feasible(self, lo+1, hi, succ)
			deadFeasible := r.feasible(self, lo, hi-1, succ)
			switch {
			case aliveFeasible && !deadFeasible:
				if cr := setCellFromRule(w, cell, n, Alive); cr != nil {
					return cr
				}
			case deadFeasible && !aliveFeasible:
				if cr := setCellFromRule(w, cell, n, Dead); cr != nil {
					return cr
				}
			case !aliveFeasible && !deadFeasible:
				return &ConflReason{Kind: ConflRule, Cell0: cell}
			}
		}
	}

	// Reverse: self unknown, succ known, neighbor range pinned enough
	// to test every self-candidate. A candidate survives if it can
	// possibly produce succ somewhere in [lo,hi]; self is forced only
	// when exactly one candidate survives and does so for every count
	// in range (a candidate that is merely feasible for part of the
	// range stays a live possibility, not a forced value).
	if self == Unknown && succ != Unknown {
		var forcedMatch State
		forcedCount, possibleCount := 0, 0
		for _, cand := range r.selfCandidates() {
			if s, ok := r.decayTransition(cand); ok {
				if s == succ {
					possibleCount++
					forcedMatch = cand
					forcedCount++
				}
				continue
			}
			if !r.feasible(cand, lo, hi, succ) {
				continue
			}
			possibleCount++
			if w2, ok := r.constantOverRange(cand, lo, hi); ok && w2 == succ {
				forcedMatch = cand
				forcedCount++
			}
		}
		if possibleCount == 0 {
			return &ConflReason{Kind: ConflRule, Cell0: cell}
		}
		if possibleCount == 1 && forcedCount == 1 {
			if cr := setCellFromRule(w, cell, cell, forcedMatch); cr != nil {
				return cr
			}
		}
	}

	return nil
}

package lifesrc

// NonTotalisticRule implements Rule for isotropic (Hensel-notation)
// life-like automata: the transition depends on the exact configuration
// of alive neighbors, not just their count, per spec §4.1's "Non-
// totalistic rules substitute per-configuration bitmaps." Birth and
// survival are each a 256-entry table indexed by the 8-bit neighbor
// alive-mask (bit i = neighbor i alive), expanded at parse time from
// Hensel letters via the orbit table (orbit.go) so every rotation/
// reflection of an accepted configuration is present.
type NonTotalisticRule struct {
	baseRule
	birth, survival [256]bool
}

var _ Rule = (*NonTotalisticRule)(nil)

// NewNonTotalisticRule builds a rule from explicit 256-entry
// birth/survival configuration tables.
func NewNonTotalisticRule(name string, birth, survival [256]bool, generations int) *NonTotalisticRule {
	return &NonTotalisticRule{
		baseRule: baseRule{name: name, b0: birth[0], generations: generations},
		birth:    birth,
		survival: survival,
	}
}

func (r *NonTotalisticRule) transition(self State, pattern uint8) State {
	if s, ok := r.decayTransition(self); ok {
		return s
	}
	switch self {
	case Dead:
		if r.birth[pattern] {
			return Alive
		}
		return Dead
	case Alive:
		if r.survival[pattern] {
			return Alive
		}
		return r.afterSurvivalFailure()
	default:
		return Unknown
	}
}

// achievablePatterns enumerates every 8-bit configuration consistent
// with the known alive mask and the free choice of each unknown
// neighbor, calling f for each.
func achievablePatterns(alive, unknown uint8, f func(pattern uint8)) {
	// Enumerate every subset of the unknown bits and OR it onto alive.
	sub := uint8(0)
	for {
		f(alive | sub)
		if sub == unknown {
			return
		}
		sub = (sub - unknown) & unknown
	}
}

func (r *NonTotalisticRule) constantOverPatterns(self State, alive, unknown uint8) (State, bool) {
	want, any := Unknown, false
	ok := true
	achievablePatterns(alive, unknown, func(p uint8) {
		t := r.transition(self, p)
		if !any {
			want, any = t, true
		} else if t != want {
			ok = false
		}
	})
	if !any || !ok {
		return Unknown, false
	}
	return want, true
}

func (r *NonTotalisticRule) feasiblePatterns(self State, alive, unknown uint8, wantSucc State) bool {
	found := false
	achievablePatterns(alive, unknown, func(p uint8) {
		if !found && r.transition(self, p) == wantSucc {
			found = true
		}
	})
	return found
}

// Consistify mirrors TotalisticRule.Consistify's three forcing rules
// (forward, single-neighbor, reverse), but over explicit configuration
// enumeration (at most 2^8 = 256 patterns, since a cell has exactly 8
// neighbors) rather than the O(range) count arithmetic a totalistic
// rule allows.
func (r *NonTotalisticRule) Consistify(w *World, cell *Cell) *ConflReason {
	d := cell.Desc
	self, succ := d.Self(), d.Succ()
	aliveMask, unknownMask := d.AliveMask(), d.UnknownMask()

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
		if forced, ok := r.constantOverPatterns(self, aliveMask, unknownMask); ok {
			if succ == Unknown {
				if cell.Succ != nil {
					if cr := setCellFromRule(w, cell, cell.Succ, forced); cr != nil {
						return cr
					}
				}
			} else if succ != forced {
				return &ConflReason{Kind: ConflRule, Cell0: cell}
			}
		} else if succ != Unknown && !r.feasiblePatterns(self, aliveMask, unknownMask, succ) {
			return &ConflReason{Kind: ConflRule, Cell0: cell}
		}
	}

	if self != Unknown && succ != Unknown {
		for i := 0; i < 8; i++ {
			bit := uint8(1) << i
			if unknownMask&bit == 0 {
				continue
			}
			n := cell.Nbhd[i]
			if n == nil || n.State != Unknown {
				continue
			}
			restUnknown := unknownMask &^ bit
			aliveFeasible := r.feasiblePatterns(self, aliveMask|bit, restUnknown, succ)
			deadFeasible := r.feasiblePatterns(self, aliveMask, restUnknown, succ)
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

	if self == Unknown && succ != Unknown {
		var forcedMatch State
		forcedCount, possibleCount := 0, 0
		for _, cand := range r.selfCandidates() {
			if s, ok := r.decayTransition(cand); ok {
				if s == succ {
					possibleCount++
					forcedMatch, forcedCount = cand, forcedCount+1
				}
				continue
			}
			if !r.feasiblePatterns(cand, aliveMask, unknownMask, succ) {
				continue
			}
			possibleCount++
			if w2, ok := r.constantOverPatterns(cand, aliveMask, unknownMask); ok && w2 == succ {
				forcedMatch, forcedCount = cand, forcedCount+1
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

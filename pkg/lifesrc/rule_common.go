package lifesrc

// baseRule implements the NewDesc/UpdateDesc/Background/Generations
// members of Rule, which are identical across every rule family because
// this module uses one generalized Desc layout (SPEC_FULL.md §3) rather
// than a per-family descriptor width. Concrete rule types embed baseRule
// and add their own Consistify, which is the one member that genuinely
// varies (totalistic count-based vs. non-totalistic configuration-based,
// per spec §4.1's closing sentence).
type baseRule struct {
	name        string
	b0          bool
	generations int // 0 for an ordinary two-state rule; n>=3 for Generations
}

func (b *baseRule) Name() string            { return b.name }
func (b *baseRule) Background() Background  { return Background{B0: b.b0} }
func (b *baseRule) Generations() int        { return b.generations }

func (b *baseRule) NewDesc(selfState, succState State) Desc {
	return NewDesc(selfState, succState)
}

func (b *baseRule) UpdateDesc(target, source *Cell, old, new State) {
	if target == nil {
		return
	}
	// target == source and target.Succ == source are not mutually
	// exclusive: at period 1 with no net translation, a cell is its own
	// successor, and both the self and succ bits must track it.
	matched := false
	if target == source {
		target.Desc = target.Desc.withSelf(new)
		matched = true
	}
	if target.Succ == source {
		target.Desc = target.Desc.withSucc(new)
		matched = true
	}
	if matched {
		return
	}
	if idx := target.neighborIndex(source); idx >= 0 {
		target.Desc = target.Desc.withNeighbor(idx, new)
	}
}

// decayTransition returns the forced successor state for a cell already
// known to be in a Dying_k state, independent of its neighborhood: it
// always advances to Dying_{k+1}, or to Dead from Dying_{n-2}. ok is
// false if self is not a Dying state (the caller must then consult the
// birth/survival table instead).
func (b *baseRule) decayTransition(self State) (State, bool) {
	k, ok := self.IsDying()
	if !ok {
		return Unknown, false
	}
	if b.generations >= 3 && k < b.generations-2 {
		return DyingState(k + 1), true
	}
	return Dead, true
}

// afterSurvivalFailure returns the state a living cell falls to when it
// does not survive: Dying_1 for a Generations rule, Dead otherwise.
func (b *baseRule) afterSurvivalFailure() State {
	if b.generations >= 3 {
		return DyingState(1)
	}
	return Dead
}

// selfCandidates enumerates every State a cell could be in under this
// rule: Dead, Alive, and (for a Generations rule) Dying_1..Dying_{n-2}.
func (b *baseRule) selfCandidates() []State {
	cands := []State{Dead, Alive}
	for k := 1; b.generations >= 3 && k <= b.generations-2; k++ {
		cands = append(cands, DyingState(k))
	}
	return cands
}

// setCellFromRule emits a forced assignment for target with ReasonRule,
// sourced from cell0 (the cell being consistified), or maps the SetCell
// conflict into a ConflReason for the caller.
func setCellFromRule(w *World, cell0, target *Cell, state State) *ConflReason {
	if target.State == state {
		return nil
	}
	return w.SetCell(target, state, Reason{Kind: ReasonRule, Cell0: cell0})
}

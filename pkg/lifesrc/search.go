package lifesrc

// Status is the result of a Search invocation, per spec §6.4.
type Status int

const (
	// StatusFound: a satisfying pattern was committed; inspect it via
	// DisplayGen/CellCount.
	StatusFound Status = iota
	// StatusNone: the search space is exhausted; no pattern exists.
	StatusNone
	// StatusSearching: the step budget (maxStep) was exceeded; call
	// Search again to resume.
	StatusSearching
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "Found"
	case StatusNone:
		return "None"
	case StatusSearching:
		return "Searching"
	default:
		return "Status(?)"
	}
}

// SetReduceMax controls whether, after returning Found, Search tightens
// max_cell_count to one less than the minimum per-generation cell count
// of the pattern just found, so a subsequent Search looks only for
// sparser patterns (spec §4.7's "optionally tighten max_cell_count").
func (w *World) SetReduceMax(v bool) { w.reduceMax = v }

// Decide implements spec §4.4: assigns the next Unknown cell a state per
// NewStateVal, opening a new decision level. applied is false when no
// Unknown cell remains (the None case of decide()).
func (w *World) Decide() (applied bool, cr *ConflReason) {
	i, c, ok := w.GetUnknown(w.searchIndex)
	if !ok {
		return false, nil
	}

	var state State
	switch {
	case w.NewStateVal.Random:
		if w.rng.Intn(2) == 0 {
			state = Dead
		} else {
			state = Alive
		}
	case w.NewStateVal.Choose == Dead:
		state = c.Background
	default:
		state = c.Background.Not()
	}

	w.level++
	if w.monitor != nil {
		w.monitor.recordDecision(w.level)
		w.monitor.recordStackDepth(len(w.setStack) + 1)
	}
	logger.Debug().Stringer("cell", c.Coord).Stringer("state", state).Int("level", w.level).Msg("decide")
	cr = w.SetCell(c, state, Reason{Kind: ReasonAssume, AssumeIndex: i})
	w.searchIndex = i + 1
	return true, cr
}

// Cancel implements spec §4.5's cancel: pops the propagation stack,
// clearing every cell whose reason is not Assume, until it pops one
// whose reason is Assume(i). Returns that cell, the state it held, and
// true; returns ok=false if the stack is exhausted first.
func (w *World) Cancel() (*Cell, State, bool) {
	for len(w.setStack) > 0 {
		c := w.setStack[len(w.setStack)-1]
		w.setStack = w.setStack[:len(w.setStack)-1]

		if c.Reason.Kind == ReasonAssume {
			w.checkIndex = len(w.setStack)
			w.searchIndex = c.Reason.AssumeIndex + 1
			state := c.State
			w.ClearCell(c)
			w.level--
			return c, state, true
		}
		w.ClearCell(c)
	}
	return nil, Unknown, false
}

// Backup implements spec §4.5's backup: repeatedly cancels, retrying the
// flipped assignment at each decision, until one succeeds (true) or the
// stack is exhausted (false).
func (w *World) Backup() bool {
	for {
		c, state, ok := w.Cancel()
		if !ok {
			return false
		}
		if cr := w.SetCell(c, state.Not(), Reason{Kind: ReasonConflict}); cr == nil {
			if w.monitor != nil {
				w.monitor.recordBacktrack()
			}
			logger.Debug().Stringer("cell", c.Coord).Stringer("flipped_to", state.Not()).Int("level", w.level).Msg("backtrack")
			return true
		}
	}
}

// conflPremises expands a top-level ConflReason (one with no associated
// target cell) into its premise cells, per spec §4.6.
func conflPremises(cr *ConflReason) []*Cell {
	switch cr.Kind {
	case ConflRule:
		return ruleDescPremises(cr.Cell0, nil)
	case ConflSym:
		var out []*Cell
		if cr.Cell0 != nil {
			out = append(out, cr.Cell0)
		}
		if cr.Partner != nil {
			out = append(out, cr.Partner)
		}
		return out
	default:
		return nil
	}
}

// Analyze implements spec §4.6's first-UIP-style conflict analysis. The
// open question of whether a non-UIP Assume should be treated as the cut
// point is resolved (per SPEC_FULL.md/DESIGN.md) in favor of always
// stopping at the first Assume encountered while popping the stack,
// rather than continuing to scan past it: this module's propagation is
// weak enough (no implication graph is materialized) that chasing a
// "truer" UIP past the first decision variable buys nothing but
// complexity, and backup() is always the fallback if the flipped
// assignment fails anyway.
func (w *World) Analyze(cr *ConflReason) bool {
	if cr.Kind == ConflCellCount || cr.Kind == ConflGeneric {
		return w.Backup()
	}

	conflictLevel := w.level
	counter := 0
	maxLevel := 0
	var learnt []*Cell
	var seen []*Cell

	addPremise := func(p *Cell) {
		if p == nil || !p.HasLevel() {
			return
		}
		if p.Level == conflictLevel && !p.Seen {
			p.Seen = true
			seen = append(seen, p)
			counter++
			return
		}
		if p.Level > 0 {
			if p.Level > maxLevel {
				maxLevel = p.Level
			}
			for _, l := range learnt {
				if l == p {
					return
				}
			}
			learnt = append(learnt, p)
		}
	}
	for _, p := range conflPremises(cr) {
		addPremise(p)
	}
	defer func() {
		for _, c := range seen {
			c.Seen = false
		}
	}()

	for len(w.setStack) > 0 {
		r := w.setStack[len(w.setStack)-1]
		w.setStack = w.setStack[:len(w.setStack)-1]

		switch r.Reason.Kind {
		case ReasonAssume:
			w.checkIndex = len(w.setStack)
			w.searchIndex = r.Reason.AssumeIndex + 1
			state := r.State
			w.ClearCell(r)
			w.level--
			for maxLevel < w.level {
				if _, _, ok := w.Cancel(); !ok {
					return false
				}
			}
			clause := append([]*Cell(nil), learnt...)
			if cr2 := w.SetCell(r, state.Not(), Reason{Kind: ReasonClause, Clause: clause}); cr2 == nil {
				if w.monitor != nil {
					w.monitor.recordBackjump()
				}
				logger.Debug().Stringer("cell", r.Coord).Int("learnt", len(clause)).Int("level", w.level).Msg("backjump")
				return true
			}
			return w.Backup()

		case ReasonInit:
			w.ClearCell(r)
			return false

		case ReasonConflict:
			w.ClearCell(r)
			return w.Backup()

		default: // ReasonRule, ReasonSym, ReasonClause
			wasSeen := r.Seen
			level := r.Level
			reason := r.Reason
			w.ClearCell(r)
			if !wasSeen {
				continue
			}
			if level == conflictLevel {
				counter--
			}
			for _, p := range premisesOf(reason.Kind, reason.Cell0, reason.Partner, reason.Clause, r) {
				addPremise(p)
			}
		}
	}
	return false
}

// Nontrivial reports whether the current committed pattern differs from
// the rule's background at some cell. It is informational only: a
// caller can use it to tell a genuine pattern from a forced-empty
// result (e.g. max_cell_count=0 driving every cell back to background
// through real conflict-driven backtracking, per spec §8's "still life
// forced empty" scenario, which a Found result must still report). It
// no longer gates Search's own Found/Backup decision — see Search.
func (w *World) Nontrivial() bool {
	for _, c := range w.searchList {
		if c.State != c.Background {
			return true
		}
	}
	return false
}

// Search implements spec §4.7's driver loop. maxStep <= 0 means no step
// budget (run to completion). Call Search again after StatusSearching
// to resume.
func (w *World) Search(maxStep int) Status {
	if !w.started {
		w.started = true
		if _, _, ok := w.GetUnknown(0); !ok {
			if !w.Backup() {
				return StatusNone
			}
		}
	}

	step := 0
	for {
		if cr := w.Proceed(); cr != nil {
			w.conflictCount++
			if w.monitor != nil {
				w.monitor.recordConflict()
			}
			logger.Debug().Err(cr).Uint64("conflicts", w.conflictCount).Msg("conflict")
			if !w.Analyze(cr) {
				return StatusNone
			}
		} else {
			applied, cr := w.Decide()
			switch {
			case !applied:
				// Every cell is committed. The cell-count constraints
				// are checked once more here, since the cap may have
				// been tightened (reduce_max, SetMaxCellCount) after
				// the pattern was committed; a violation backs up.
				if (w.hasMaxCellCount && w.cellCount[0] > w.maxCellCount) ||
					(w.NonEmptyFront && w.frontCellCount == 0) {
					if !w.Backup() {
						return StatusNone
					}
					break
				}
				// Whether the commitment matches the background
				// everywhere (the forced-empty case, e.g.
				// max_cell_count=0) or not, it is a real result of
				// search and is reported as Found; only the pre-loop
				// check above treats an a priori empty search list as
				// not worth reporting.
				if w.reduceMax {
					w.tightenMaxCellCount()
				}
				return StatusFound
			case cr != nil:
				if !w.Backup() {
					return StatusNone
				}
			}
		}

		step++
		if maxStep > 0 && step > maxStep {
			return StatusSearching
		}
	}
}

func (w *World) tightenMaxCellCount() {
	min := w.cellCount[0]
	for _, c := range w.cellCount[1:] {
		if c < min {
			min = c
		}
	}
	w.SetMaxCellCount(min-1, true)
}

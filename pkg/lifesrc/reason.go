package lifesrc

import "fmt"

// ReasonKind tags why a cell's state was assigned, per spec §3 "Reasons"
// and §9 "Conflict reasons as tagged variants".
type ReasonKind int

const (
	// ReasonInit is the sentinel reason at the bottom of the set
	// stack: forced by initial boundary/background consistency.
	ReasonInit ReasonKind = iota
	// ReasonAssume marks a decision: opens a new decision level.
	ReasonAssume
	// ReasonRule marks an assignment implied by consistify on some cell.
	ReasonRule
	// ReasonSym marks an assignment implied by symmetry partnership.
	ReasonSym
	// ReasonClause marks an assignment implied by a learnt conflict
	// clause during conflict analysis.
	ReasonClause
	// ReasonConflict marks the flipped assignment after a resolved
	// conflict (backup/analyze).
	ReasonConflict
)

// Reason records why a cell was assigned, with the payload the kind
// requires.
type Reason struct {
	Kind ReasonKind

	// AssumeIndex is valid for ReasonAssume: the search-list index
	// that was decided.
	AssumeIndex int

	// Cell0 is valid for ReasonRule (the cell whose consistify forced
	// this assignment) and ReasonSym (the symmetry source cell).
	Cell0 *Cell

	// Partner is valid for ReasonSym when the assignment came from a
	// specific partner rather than the cell being consistified
	// directly (kept distinct from Cell0 to match spec's
	// Sym(c_src[, c_partner])).
	Partner *Cell

	// Clause is valid for ReasonClause: the learnt set of premise
	// cells that justify the flipped assignment.
	Clause []*Cell
}

func (r Reason) String() string {
	switch r.Kind {
	case ReasonInit:
		return "Init"
	case ReasonAssume:
		return fmt.Sprintf("Assume(%d)", r.AssumeIndex)
	case ReasonRule:
		return fmt.Sprintf("Rule(%v)", r.Cell0.Coord)
	case ReasonSym:
		if r.Partner != nil {
			return fmt.Sprintf("Sym(%v,%v)", r.Cell0.Coord, r.Partner.Coord)
		}
		return fmt.Sprintf("Sym(%v)", r.Cell0.Coord)
	case ReasonClause:
		return fmt.Sprintf("Clause(%d cells)", len(r.Clause))
	case ReasonConflict:
		return "Conflict"
	default:
		return "Reason(?)"
	}
}

// ConflReasonKind tags the kind of conflict detected during propagation.
type ConflReasonKind int

const (
	// ConflRule: the descriptor's committed state is provably
	// incompatible with the rule's transition table.
	ConflRule ConflReasonKind = iota
	// ConflSym: two symmetry partners committed to different states.
	ConflSym
	// ConflCellCount: max_cell_count exceeded, or the front-empty
	// condition (non_empty_front) was violated.
	ConflCellCount
	// ConflGeneric: a generic conflict used to re-enter backtracking
	// (the Conflict reason of spec §3).
	ConflGeneric
	// ConflInit: the sentinel at the bottom of the stack; analysis
	// cannot proceed past it.
	ConflInit
)

// ConflReason is returned internally by SetCell/Proceed/Consistify; it
// never escapes the engine (spec §7).
type ConflReason struct {
	Kind ConflReasonKind

	// Cell0/Partner mirror Reason's payload for ConflRule/ConflSym, so
	// premise expansion (spec §4.6) can reuse the same cell references.
	Cell0   *Cell
	Partner *Cell
}

func (r ConflReason) Error() string {
	switch r.Kind {
	case ConflRule:
		return fmt.Sprintf("lifesrc: rule conflict at %v", r.Cell0.Coord)
	case ConflSym:
		return fmt.Sprintf("lifesrc: symmetry conflict between %v and %v", r.Cell0.Coord, r.Partner.Coord)
	case ConflCellCount:
		return "lifesrc: cell-count constraint violated"
	case ConflGeneric:
		return "lifesrc: conflict"
	case ConflInit:
		return "lifesrc: exhausted search space"
	default:
		return "lifesrc: conflict(?)"
	}
}

// premisesOf expands a conflict/set reason into the cells whose current
// assignment justifies it, per spec §4.6 "Premise expansion by reason".
// target is excluded from the result (a cell is never its own premise).
func premisesOf(kind ReasonKind, cell0, partner *Cell, clause []*Cell, target *Cell) []*Cell {
	switch kind {
	case ReasonRule:
		return ruleDescPremises(cell0, target)
	case ReasonSym:
		var out []*Cell
		if cell0 != nil && cell0 != target {
			out = append(out, cell0)
		}
		if partner != nil && partner != target {
			out = append(out, partner)
		}
		return out
	case ReasonClause:
		out := make([]*Cell, 0, len(clause))
		for _, c := range clause {
			if c != target {
				out = append(out, c)
			}
		}
		return out
	default: // Init, Conflict, Assume
		return nil
	}
}

// ruleDescPremises returns the cells whose descriptor bits are
// non-trivial in cell0.Desc: cell0 itself if self bits are set, its
// successor if succ bits are set, and each neighbor whose alive/unknown
// bit is set, per spec §4.6. A cell that fills more than one of these
// roles at once (at period 1 with no net translation, cell0 can be its
// own successor) is still reported exactly once.
func ruleDescPremises(cell0, target *Cell) []*Cell {
	var out []*Cell
	add := func(c *Cell) {
		if c == nil || c == target {
			return
		}
		for _, o := range out {
			if o == c {
				return
			}
		}
		out = append(out, c)
	}

	d := cell0.Desc
	if d.Self() != Unknown {
		add(cell0)
	}
	if d.Succ() != Unknown {
		add(cell0.Succ)
	}
	alive, unk := d.AliveMask(), d.UnknownMask()
	for i := 0; i < 8; i++ {
		if (alive|unk)&(1<<i) == 0 {
			continue
		}
		add(cell0.Nbhd[i])
	}
	return out
}

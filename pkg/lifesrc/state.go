// Package lifesrc searches for space-time patterns in Moore-neighborhood,
// outer-totalistic or non-totalistic, two-state or Generations cellular
// automata, using a conflict-driven backtracking propagation engine over a
// fixed cell graph built from a declarative Config.
package lifesrc

import "fmt"

// State is the committed value of a cell. The zero value is Unknown.
type State int

const (
	// Unknown means the cell's state has not yet been decided.
	Unknown State = iota
	// Dead is the quiescent state.
	Dead
	// Alive is the living state; only Alive counts toward a neighbor's
	// alive-count.
	Alive
)

// DyingBase is added to DyingState(k) to obtain a State value distinct
// from Unknown/Dead/Alive. A Generations rule with n states has dying
// levels 1..n-2.
const DyingBase = 2

// DyingState returns the State value for the k-th dying level
// (1 <= k <= 24) of a Generations rule.
func DyingState(k int) State {
	return State(DyingBase + k)
}

// IsDying reports whether s is a Dying_k state, and if so returns k.
func (s State) IsDying() (k int, ok bool) {
	if int(s) > DyingBase {
		return int(s) - DyingBase, true
	}
	return 0, false
}

// Not flips Dead and Alive. It must not be called on Unknown or a Dying
// state; those are not binary-complementable.
func (s State) Not() State {
	switch s {
	case Alive:
		return Dead
	case Dead:
		return Alive
	default:
		panic(fmt.Sprintf("lifesrc: State.Not() called on %v", s))
	}
}

// IsLive reports whether s counts as a living cell for cell-count
// purposes and for a neighbor's alive-count. Only Alive is live; Dying_k
// states are not, matching standard Generations semantics.
func (s State) IsLive() bool {
	return s == Alive
}

func (s State) String() string {
	switch {
	case s == Unknown:
		return "Unknown"
	case s == Dead:
		return "Dead"
	case s == Alive:
		return "Alive"
	default:
		k, _ := s.IsDying()
		return fmt.Sprintf("Dying(%d)", k)
	}
}

// Glyph renders s the way DisplayGen does: '.' Dead, 'O' Alive, the
// letter 'A'+k-1 for Dying_k ('A'..'Y' for Dying_1..Dying_25), '?'
// Unknown or a dying level past 25.
func (s State) Glyph() byte {
	switch {
	case s == Unknown:
		return '?'
	case s == Dead:
		return '.'
	case s == Alive:
		return 'O'
	default:
		k, _ := s.IsDying()
		if k < 1 || k > 25 {
			return '?'
		}
		return 'A' + byte(k-1)
	}
}

// Background is the presumed state of out-of-range cells for a given
// generation. Rules with B0 (birth on 0 live neighbors) alternate
// Dead/Alive by generation parity; all other rules are always Dead.
type Background struct {
	// B0 is true when the rule births on zero live neighbors.
	B0 bool
}

// At returns the background state for generation t.
func (b Background) At(t int) State {
	if !b.B0 {
		return Dead
	}
	if t%2 == 0 {
		return Dead
	}
	return Alive
}

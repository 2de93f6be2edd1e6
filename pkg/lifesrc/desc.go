package lifesrc

import "math/bits"

// Desc is the compact neighborhood descriptor for a cell: its own
// committed view of (self, successor, 8 neighbors), per spec §3/§4.1.
// Bit layout, generalized over the reference two-state totalistic
// layout to also cover Generations and non-totalistic rules (see
// SPEC_FULL.md §3):
//
//	bits [0:5)   self state code (State values fit directly: Unknown=0,
//	             Dead=1, Alive=2, Dying_k=2+k)
//	bits [5:10)  successor state code, same encoding
//	bits [10:18) neighbor alive bits, one per neighbor index 0..7
//	bits [18:26) neighbor unknown bits, one per neighbor index 0..7
type Desc uint32

const (
	descSelfShift  = 0
	descSuccShift  = 5
	descStateMask  = 0x1F
	descAliveShift = 10
	descUnkShift   = 18
	descNbhdMask   = 0xFF
)

// NewDesc builds a descriptor for a cell whose 8 neighbors are all in
// selfState, with the given successor state. This is the seed used when
// a cell is first allocated with only its background committed (spec
// §4.1's new_desc).
func NewDesc(selfState, succState State) Desc {
	d := Desc(int(selfState)&descStateMask) << descSelfShift
	d |= Desc(int(succState)&descStateMask) << descSuccShift
	if selfState.IsLive() {
		d |= Desc(descNbhdMask) << descAliveShift
	} else if selfState == Unknown {
		d |= Desc(descNbhdMask) << descUnkShift
	}
	return d
}

// BlankDesc is the descriptor of a cell with nothing committed: self,
// successor, and all 8 neighbors Unknown. Builder.go seeds every
// searchable (non-sentinel) cell with this value before wiring-dependent
// corrections are folded in via recomputeDesc.
func BlankDesc() Desc {
	return Desc(descNbhdMask) << descUnkShift
}

// Self returns the descriptor's self state code.
func (d Desc) Self() State { return State((d >> descSelfShift) & descStateMask) }

// Succ returns the descriptor's successor state code.
func (d Desc) Succ() State { return State((d >> descSuccShift) & descStateMask) }

// withSelf returns a copy of d with the self state code replaced.
func (d Desc) withSelf(s State) Desc {
	return (d &^ (Desc(descStateMask) << descSelfShift)) | (Desc(int(s)&descStateMask) << descSelfShift)
}

// withSucc returns a copy of d with the successor state code replaced.
func (d Desc) withSucc(s State) Desc {
	return (d &^ (Desc(descStateMask) << descSuccShift)) | (Desc(int(s)&descStateMask) << descSuccShift)
}

// withNeighbor returns a copy of d with neighbor index i's alive/unknown
// bits updated to reflect newState.
func (d Desc) withNeighbor(i int, newState State) Desc {
	aliveBit := Desc(1) << (descAliveShift + i)
	unkBit := Desc(1) << (descUnkShift + i)
	d &^= aliveBit | unkBit
	switch newState {
	case Unknown:
		d |= unkBit
	case Alive:
		d |= aliveBit
	default:
		// Dead or Dying: neither alive nor unknown.
	}
	return d
}

// AliveMask returns the 8-bit mask of neighbor indices known Alive.
func (d Desc) AliveMask() uint8 {
	return uint8((d >> descAliveShift) & descNbhdMask)
}

// UnknownMask returns the 8-bit mask of neighbor indices not yet known.
func (d Desc) UnknownMask() uint8 {
	return uint8((d >> descUnkShift) & descNbhdMask)
}

// AliveCount returns the number of neighbors known Alive.
func (d Desc) AliveCount() int {
	return bits.OnesCount8(d.AliveMask())
}

// UnknownCount returns the number of neighbors not yet known.
func (d Desc) UnknownCount() int {
	return bits.OnesCount8(d.UnknownMask())
}

// MinAlive and MaxAlive bound the eventual alive-neighbor count given
// the current partial information: MinAlive if every unknown resolves
// Dead, MaxAlive if every unknown resolves Alive.
func (d Desc) MinAlive() int { return d.AliveCount() }
func (d Desc) MaxAlive() int { return d.AliveCount() + d.UnknownCount() }

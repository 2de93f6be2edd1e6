package lifesrc

// Transform is one of the 8 elements of the dihedral group D8, applied
// to the board (not the neighborhood) after the last generation before
// it wraps back to generation 0, per original_source/lib/src/config.rs's
// Transform enum.
type Transform int

const (
	Id Transform = iota
	Rotate90
	Rotate180
	Rotate270
	FlipRow
	FlipCol
	FlipDiag
	FlipAntidiag
)

func (t Transform) String() string {
	switch t {
	case Id:
		return "Id"
	case Rotate90:
		return "R90"
	case Rotate180:
		return "R180"
	case Rotate270:
		return "R270"
	case FlipRow:
		return "F-"
	case FlipCol:
		return "F|"
	case FlipDiag:
		return "F\\"
	case FlipAntidiag:
		return "F/"
	default:
		return "Unknown"
	}
}

func ParseTransform(s string) (Transform, error) {
	switch s {
	case "Id", "":
		return Id, nil
	case "R90":
		return Rotate90, nil
	case "R180":
		return Rotate180, nil
	case "R270":
		return Rotate270, nil
	case "F-":
		return FlipRow, nil
	case "F|":
		return FlipCol, nil
	case "F\\":
		return FlipDiag, nil
	case "F/":
		return FlipAntidiag, nil
	default:
		return Id, configErrorf(ErrInvalidRuleString, "invalid transform %q", s)
	}
}

// SquareWorld reports whether t requires a square world.
func (t Transform) SquareWorld() bool {
	switch t {
	case Rotate90, Rotate270, FlipDiag, FlipAntidiag:
		return true
	default:
		return false
	}
}

// Inverse returns t's inverse element in D8: rotations invert to their
// opposite rotation, and every reflection is its own inverse.
func (t Transform) Inverse() Transform {
	switch t {
	case Rotate90:
		return Rotate270
	case Rotate270:
		return Rotate90
	default:
		return t
	}
}

// Apply maps a board coordinate (x, y) in a width x height world through
// t, returning the coordinate it lands on. Used to wire a cell at
// generation period-1's successor back to generation 0 (spec §4.5):
// the successor of (x, y, period-1) is (t.Inverse().Apply(x, y, w, h)
// - (dx, dy), 0).
func (t Transform) Apply(x, y, width, height int) (int, int) {
	switch t {
	case Id:
		return x, y
	case Rotate90:
		return y, width - 1 - x
	case Rotate180:
		return width - 1 - x, height - 1 - y
	case Rotate270:
		return height - 1 - y, x
	case FlipRow:
		return x, height - 1 - y
	case FlipCol:
		return width - 1 - x, y
	case FlipDiag:
		return y, x
	case FlipAntidiag:
		return height - 1 - y, width - 1 - x
	default:
		return x, y
	}
}

// Symmetry names a subgroup of D8 under which the search requires the
// pattern to be invariant, per original_source/lib/src/config.rs's
// Symmetry enum.
type Symmetry int

const (
	C1 Symmetry = iota
	C2
	C4
	D2Row
	D2Col
	D2Diag
	D2Antidiag
	D4Ortho
	D4Diag
	D8
)

func (s Symmetry) String() string {
	switch s {
	case C1:
		return "C1"
	case C2:
		return "C2"
	case C4:
		return "C4"
	case D2Row:
		return "D2-"
	case D2Col:
		return "D2|"
	case D2Diag:
		return "D2\\"
	case D2Antidiag:
		return "D2/"
	case D4Ortho:
		return "D4+"
	case D4Diag:
		return "D4X"
	case D8:
		return "D8"
	default:
		return "Unknown"
	}
}

func ParseSymmetry(s string) (Symmetry, error) {
	switch s {
	case "C1", "":
		return C1, nil
	case "C2":
		return C2, nil
	case "C4":
		return C4, nil
	case "D2-":
		return D2Row, nil
	case "D2|":
		return D2Col, nil
	case "D2\\":
		return D2Diag, nil
	case "D2/":
		return D2Antidiag, nil
	case "D4+":
		return D4Ortho, nil
	case "D4X":
		return D4Diag, nil
	case "D8":
		return D8, nil
	default:
		return C1, configErrorf(ErrInvalidRuleString, "invalid symmetry %q", s)
	}
}

// SquareWorld reports whether s requires a square world.
func (s Symmetry) SquareWorld() bool {
	switch s {
	case C4, D2Diag, D2Antidiag, D4Diag, D8:
		return true
	default:
		return false
	}
}

// Elements returns the board-coordinate transforms whose orbit a cell at
// (x, y) must be set identically under, to satisfy s (spec §4.4's
// "symmetry wires each cell to its orbit-mates").
func (s Symmetry) Elements() []Transform {
	switch s {
	case C1:
		return []Transform{Id}
	case C2:
		return []Transform{Id, Rotate180}
	case C4:
		return []Transform{Id, Rotate90, Rotate180, Rotate270}
	case D2Row:
		return []Transform{Id, FlipRow}
	case D2Col:
		return []Transform{Id, FlipCol}
	case D2Diag:
		return []Transform{Id, FlipDiag}
	case D2Antidiag:
		return []Transform{Id, FlipAntidiag}
	case D4Ortho:
		return []Transform{Id, FlipRow, FlipCol, Rotate180}
	case D4Diag:
		return []Transform{Id, FlipDiag, FlipAntidiag, Rotate180}
	case D8:
		return []Transform{Id, Rotate90, Rotate180, Rotate270, FlipRow, FlipCol, FlipDiag, FlipAntidiag}
	default:
		return []Transform{Id}
	}
}

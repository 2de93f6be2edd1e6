package lifesrc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransformInverseRoundTrips(t *testing.T) {
	all := []Transform{Id, Rotate90, Rotate180, Rotate270, FlipRow, FlipCol, FlipDiag, FlipAntidiag}
	for _, tr := range all {
		x, y := tr.Apply(2, 3, 8, 8)
		bx, by := tr.Inverse().Apply(x, y, 8, 8)
		assert.Equal(t, 2, bx, "transform %v did not invert on x", tr)
		assert.Equal(t, 3, by, "transform %v did not invert on y", tr)
	}
}

func TestTransformStringParseRoundTrip(t *testing.T) {
	all := []Transform{Id, Rotate90, Rotate180, Rotate270, FlipRow, FlipCol, FlipDiag, FlipAntidiag}
	for _, tr := range all {
		parsed, err := ParseTransform(tr.String())
		assert.NoError(t, err)
		assert.Equal(t, tr, parsed)
	}
}

func TestParseTransformRejectsGarbage(t *testing.T) {
	_, err := ParseTransform("bogus")
	assert.Error(t, err)
}

func TestSymmetryElementsIncludeIdentity(t *testing.T) {
	all := []Symmetry{C1, C2, C4, D2Row, D2Col, D2Diag, D2Antidiag, D4Ortho, D4Diag, D8}
	for _, sym := range all {
		elems := sym.Elements()
		assert.Contains(t, elems, Id)
	}
}

func TestSquareWorldRequirements(t *testing.T) {
	assert.True(t, Rotate90.SquareWorld())
	assert.False(t, Id.SquareWorld())
	assert.True(t, C4.SquareWorld())
	assert.False(t, C2.SquareWorld())
}

func TestD8SymmetryHasEightDistinctElements(t *testing.T) {
	elems := D8.Elements()
	seen := map[Transform]bool{}
	for _, e := range elems {
		seen[e] = true
	}
	assert.Len(t, seen, 8)
}

package lifesrc

import (
	"fmt"
	"strings"
)

// DisplayGen renders generation t of the committed pattern as a
// width x height grid of glyphs, one line per row, grounded on
// StoreToString's strings.Builder line-assembly style: '.' Dead, 'O'
// Alive, the letter 'A'+k-1 for Dying_k ('A'..'Y' for Dying_1..Dying_25),
// '?' Unknown.
func (w *World) DisplayGen(t int) string {
	var b strings.Builder
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			c := w.cellAt(x, y, t)
			if c == nil {
				b.WriteByte('?')
				continue
			}
			b.WriteByte(c.State.Glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// cellAt looks up the real cell at (x, y, t) by scanning searchList;
// used only by display/snapshot code, off the hot propagation path.
func (w *World) cellAt(x, y, t int) *Cell {
	for _, c := range w.searchList {
		if c.Coord.X == x && c.Coord.Y == y && c.Coord.T == t {
			return c
		}
	}
	return nil
}

// Summary renders a one-line status report: conflict count and
// per-generation living cell counts, used by cmd/lifesrc's log line
// once the search stops.
func (w *World) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "conflicts=%d cells=[", w.conflictCount)
	for t := 0; t < w.Period; t++ {
		if t > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", w.CellCount(t))
	}
	b.WriteString("]")
	return b.String()
}

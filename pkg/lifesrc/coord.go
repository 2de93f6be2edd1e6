package lifesrc

import "fmt"

// Coord identifies a cell by position and generation.
type Coord struct {
	X, Y, T int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,t=%d)", c.X, c.Y, c.T)
}

package life

import "cmp"

// Coord identifies a single cell on the unbounded plane.
type Coord struct {
	X, Y int64
}

// Compare orders coordinates by X first and Y second.
func (c Coord) Compare(o Coord) int {
	if r := cmp.Compare(c.X, o.X); r != 0 {
		return r
	}
	return cmp.Compare(c.Y, o.Y)
}

// Less reports whether c sorts before o.
func (c Coord) Less(o Coord) bool { return c.Compare(o) < 0 }

// Add returns the component-wise sum of c and o.
func (c Coord) Add(o Coord) Coord { return Coord{X: c.X + o.X, Y: c.Y + o.Y} }

func compareCoords(a, b Coord) int { return a.Compare(b) }

// Neighbors returns the eight cells surrounding c, clockwise from the upper left.
func Neighbors(c Coord) [8]Coord {
	return [8]Coord{
		{c.X - 1, c.Y - 1},
		{c.X, c.Y - 1},
		{c.X + 1, c.Y - 1},
		{c.X + 1, c.Y},
		{c.X + 1, c.Y + 1},
		{c.X, c.Y + 1},
		{c.X - 1, c.Y + 1},
		{c.X - 1, c.Y},
	}
}

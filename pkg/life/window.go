package life

import (
	"fmt"
	"slices"
)

// Window is an axis-aligned viewport covering [X, X+W) x [Y, Y+H).
type Window struct {
	X, Y int64
	W, H int
}

// NewWindow returns a window with the given origin and size.
func NewWindow(x, y int64, w, h int) Window {
	return Window{X: x, Y: y, W: w, H: h}
}

// Empty reports whether the window covers no cells.
func (win Window) Empty() bool { return win.W <= 0 || win.H <= 0 }

// Origin returns the upper-left cell of the window.
func (win Window) Origin() Coord { return Coord{X: win.X, Y: win.Y} }

// Contains reports whether c lies inside the window.
func (win Window) Contains(c Coord) bool {
	if win.Empty() {
		return false
	}
	return c.X >= win.X && c.X < win.X+int64(win.W) &&
		c.Y >= win.Y && c.Y < win.Y+int64(win.H)
}

// Pan returns the window shifted by (dx, dy).
func (win Window) Pan(dx, dy int64) Window {
	win.X += dx
	win.Y += dy
	return win
}

// LiveCells appends every living cell inside win to out, in ascending order,
// and returns the extended slice.
//
// The sorted alive list is narrowed with two binary searches and the remaining
// slice is filtered by Y. Because ordering is X-major the slice still spans
// every row between the bounds, so tall worlds scan more than they return.
func (w *World) LiveCells(win Window, out []Coord) []Coord {
	if w.dirty {
		w.Finish()
	}
	if win.Empty() {
		return out
	}
	alive := w.current().alive
	bottom := win.Y + int64(win.H)
	lo, _ := slices.BinarySearchFunc(alive, Coord{X: win.X, Y: win.Y}, compareCoords)
	hi, _ := slices.BinarySearchFunc(alive, Coord{X: win.X + int64(win.W) - 1, Y: bottom}, compareCoords)
	if lo > hi {
		panic(fmt.Sprintf("life: window lower bound %d exceeds upper bound %d", lo, hi))
	}
	for _, c := range alive[lo:hi] {
		if c.Y >= win.Y && c.Y < bottom {
			out = append(out, c)
		}
	}
	return out
}

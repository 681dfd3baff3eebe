package core

import "sparse-life/pkg/life"

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Rasterize clears the grid and sets a 1 for every cell that falls inside
// both win and the grid, relative to the window origin.
func (g *ByteGrid) Rasterize(win life.Window, cells []life.Coord) {
	g.Clear()
	for _, c := range cells {
		if !win.Contains(c) {
			continue
		}
		x := int(c.X - win.X)
		y := int(c.Y - win.Y)
		if x >= g.W || y >= g.H {
			continue
		}
		g.data[g.Index(x, y)] = 1
	}
}

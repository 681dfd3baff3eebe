//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"sparse-life/internal/core"
	"sparse-life/pkg/life"
)

// GridPainter rasterizes a window of live cells into a single RGBA image.
type GridPainter struct {
	grid *core.ByteGrid
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a viewport of w*h cells.
func NewGridPainter(w, h int) *GridPainter {
	grid := core.NewByteGrid(w, h)
	gp := &GridPainter{grid: grid, buf: make([]byte, 4*grid.W*grid.H)}
	gp.img = ebiten.NewImage(grid.W, grid.H)
	return gp
}

// Blit uploads the cells inside win into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, win life.Window, cells []life.Coord, on, off color.Color, scale int) {
	gp.grid.Rasterize(win, cells)
	fillBinaryRGBA(gp.buf, gp.grid.Cells(), on, off)
	gp.img.ReplacePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.grid.W, gp.grid.H }

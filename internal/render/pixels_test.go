package render

import (
	"image/color"
	"slices"
	"testing"

	"sparse-life/internal/core"
	"sparse-life/pkg/life"
)

func TestFillBinaryRGBAFromRaster(t *testing.T) {
	win := life.NewWindow(10, 10, 2, 1)
	grid := core.NewByteGrid(win.W, win.H)
	grid.Rasterize(win, []life.Coord{{X: 11, Y: 10}})

	buf := make([]byte, 4*len(grid.Cells()))
	fillBinaryRGBA(buf, grid.Cells(), color.White, color.RGBA{R: 1, G: 2, B: 3, A: 255})

	want := []byte{1, 2, 3, 255, 255, 255, 255, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("pixels = %v, expected %v", buf, want)
	}
}

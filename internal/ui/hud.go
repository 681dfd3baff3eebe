//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"sparse-life/internal/core"
	"sparse-life/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the status panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	title      string
	viewport   string
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width, title: buildTitle(sim)}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached snapshot and viewport description.
func (h *HUD) Update(win life.Window, paused bool) {
	if h == nil {
		return
	}
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		h.snapshot = provider.Parameters()
	} else {
		h.snapshot = core.ParameterSnapshot{Groups: []core.ParameterGroup{{
			Name: "World",
			Params: []core.Parameter{
				{Label: "Generation", Value: fmt.Sprint(h.sim.Generation())},
				{Label: "Population", Value: fmt.Sprint(h.sim.Population())},
			},
		}}}
	}
	h.viewport = fmt.Sprintf("x %d y %d  %dx%d", win.X, win.Y, win.W, win.H)
	if paused {
		h.viewport += "  paused"
	}
}

// Draw paints the HUD panel at offsetX with the given pixel height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	y += lineHeight
	text.Draw(h.panel, h.viewport, face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
	for _, group := range h.snapshot.Groups {
		y += lineHeight + groupGap
		text.Draw(h.panel, group.Name, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
		for _, param := range group.Params {
			y += lineHeight
			line := fmt.Sprintf("%s: %s", param.Label, param.Value)
			text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Status"
	}
	return fmt.Sprintf("%s Status", strings.ToUpper(sim.Name()[:1])+sim.Name()[1:])
}

const (
	panelPadding   = 12
	headerBaseline = 18
	lineHeight     = 16
	groupGap       = 8
)

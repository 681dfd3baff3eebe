//go:build ebiten

package app

import (
	"image/color"
	"time"

	"sparse-life/internal/core"
	"sparse-life/internal/render"
	"sparse-life/internal/ui"
	"sparse-life/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	win     life.Window
	cells   []life.Coord

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game viewing sim through a cfg.Width x cfg.Height window.
func New(sim core.Sim, cfg *Config) *Game {
	win := life.NewWindow(0, 0, cfg.Width, cfg.Height)
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(win.W, win.H),
		hud:      ui.NewHUD(sim, cfg.HUD),
		win:      win,
		onColor:  color.White,
		offColor: color.Black,
		scale:    cfg.Scale,
		seed:     cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		g.win.X, g.win.Y = 0, 0
	}
	g.pan()

	if (!g.paused) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	g.hud.Update(g.win, g.paused)
	return nil
}

func (g *Game) pan() {
	step := int64(1)
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		step = 8
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.win = g.win.Pan(-step, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.win = g.win.Pan(step, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.win = g.win.Pan(0, -step)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.win = g.win.Pan(0, step)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.cells = g.sim.LiveCells(g.win, g.cells[:0])
	g.painter.Blit(screen, g.win, g.cells, g.onColor, g.offColor, g.scale)
	g.hud.Draw(screen, g.win.W*g.scale, g.win.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.win.W*g.scale + g.hud.Width(), g.win.H * g.scale
}

// Package term renders a window of the world to a terminal and turns
// keystrokes into viewport and playback commands.
package term

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"sparse-life/internal/core"
	"sparse-life/pkg/life"
)

// panStep is how many cells a single navigation key moves the window.
const panStep = 3

// Display draws live cells and a status row onto a tcell screen.
type Display struct {
	screen tcell.Screen
	glyph  rune
	cell   tcell.Style
	status tcell.Style
}

// NewDisplay wraps an initialised screen.
func NewDisplay(screen tcell.Screen) *Display {
	return &Display{
		screen: screen,
		glyph:  '@',
		cell:   tcell.StyleDefault.Foreground(tcell.ColorGreen),
		status: tcell.StyleDefault.Reverse(true),
	}
}

// BestWindow returns a window at the origin covering the screen minus the
// status row.
func (d *Display) BestWindow() life.Window {
	w, h := d.screen.Size()
	if h > 1 {
		h--
	}
	return life.NewWindow(0, 0, w, h)
}

// Draw clears the screen, plots every cell inside win and writes status on
// the bottom row.
func (d *Display) Draw(cells []life.Coord, win life.Window, status string) {
	d.screen.Clear()
	for _, c := range cells {
		if !win.Contains(c) {
			continue
		}
		d.screen.SetContent(int(c.X-win.X), int(c.Y-win.Y), d.glyph, nil, d.cell)
	}
	_, h := d.screen.Size()
	d.drawText(0, h-1, status)
	d.screen.Show()
}

func (d *Display) drawText(x, y int, text string) {
	w, _ := d.screen.Size()
	for _, r := range text {
		if x >= w {
			return
		}
		d.screen.SetContent(x, y, r, nil, d.status)
		x++
	}
}

// Command is the playback action requested by a keystroke.
type Command int

const (
	// CommandNone means the key was consumed (or ignored) without a playback change.
	CommandNone Command = iota
	// CommandQuit asks the loop to exit.
	CommandQuit
	// CommandPause toggles automatic stepping.
	CommandPause
	// CommandStep advances exactly one generation.
	CommandStep
)

// HandleKey applies navigation keys to win and maps the rest to commands.
// w/a/s/d and the arrow keys pan, r returns to the origin.
func HandleKey(ev *tcell.EventKey, win *life.Window) Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CommandQuit
	case tcell.KeyUp:
		*win = win.Pan(0, -panStep)
		return CommandNone
	case tcell.KeyDown:
		*win = win.Pan(0, panStep)
		return CommandNone
	case tcell.KeyLeft:
		*win = win.Pan(-panStep, 0)
		return CommandNone
	case tcell.KeyRight:
		*win = win.Pan(panStep, 0)
		return CommandNone
	case tcell.KeyRune:
	default:
		return CommandNone
	}

	switch ev.Rune() {
	case 'q':
		return CommandQuit
	case ' ':
		return CommandPause
	case 'n':
		return CommandStep
	case 'w':
		*win = win.Pan(0, -panStep)
	case 's':
		*win = win.Pan(0, panStep)
	case 'a':
		*win = win.Pan(-panStep, 0)
	case 'd':
		*win = win.Pan(panStep, 0)
	case 'r':
		win.X, win.Y = 0, 0
	}
	return CommandNone
}

// Status formats the status row for sim viewed through win. The counters come
// first so a narrow terminal still shows them.
func Status(sim core.Sim, win life.Window, paused bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "generation %d | population %d | x: %d, y: %d, w: %d, h: %d",
		sim.Generation(), sim.Population(), win.X, win.Y, win.W, win.H)
	if provider, ok := sim.(core.ParameterProvider); ok {
		if p, ok := provider.Parameters().Lookup("pattern"); ok {
			fmt.Fprintf(&b, " | %s", p.Value)
		}
	}
	if paused {
		b.WriteString(" | paused")
	}
	return b.String()
}

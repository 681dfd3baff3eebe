package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"sparse-life/internal/core"
	"sparse-life/pkg/life"
)

// Run drives sim on an initialised screen until the user quits. One
// generation is computed per due tick at tps ticks per second. The caller
// owns the screen and must Fini it.
func Run(sim core.Sim, screen tcell.Screen, tps int) {
	screen.HideCursor()
	display := NewDisplay(screen)
	win := display.BestWindow()

	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	stepper := core.NewFixedStep(tps)
	ticker := time.NewTicker(stepper.Interval())
	defer ticker.Stop()

	paused := false
	var cells []life.Coord
	for {
		cells = sim.LiveCells(win, cells[:0])
		display.Draw(cells, win, Status(sim, win, paused))

		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				best := display.BestWindow()
				win.W, win.H = best.W, best.H
				screen.Sync()
			case *tcell.EventKey:
				switch HandleKey(ev, &win) {
				case CommandQuit:
					return
				case CommandPause:
					paused = !paused
				case CommandStep:
					sim.Step()
				}
			}
		case <-ticker.C:
			if stepper.ShouldStep() && !paused {
				sim.Step()
			}
		}
	}
}

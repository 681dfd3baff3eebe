// Package life simulates Conway's Game of Life on an unbounded plane by
// tracking only the living cells and the dead cells next to them.
package life

import "runtime"

// World owns two generation buffers and flips between them on every Evolve.
// A World is not safe for concurrent use.
type World struct {
	buffers    [2]cells
	flipped    bool
	dirty      bool
	generation uint64
	workers    int
}

// Option customises a World created by New.
type Option func(*World)

// WithWorkers sets how many goroutines evolution and normalization may fan out
// to. Values below one run everything on the calling goroutine.
func WithWorkers(n int) Option {
	return func(w *World) { w.workers = n }
}

// New returns an empty World at generation zero.
func New(opts ...Option) *World {
	w := &World{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *World) current() *cells {
	if w.flipped {
		return &w.buffers[1]
	}
	return &w.buffers[0]
}

func (w *World) next() *cells {
	if w.flipped {
		return &w.buffers[0]
	}
	return &w.buffers[1]
}

// MakeAlive marks c as alive in the current generation. The change becomes
// visible once the world is finished, either explicitly or by Action.
func (w *World) MakeAlive(c Coord) {
	w.current().makeAlive(c)
	w.dirty = true
}

// Finish sorts and deduplicates pending cells and rebuilds the boundary.
func (w *World) Finish() {
	w.current().normalize(w.workers)
	w.dirty = false
}

// Action runs f against the world and then finishes it once, so bulk seeding
// pays for a single normalization.
func (w *World) Action(f func(w *World)) {
	f(w)
	w.Finish()
}

// Evolve advances the world by one generation.
func (w *World) Evolve() {
	if w.dirty {
		w.Finish()
	}
	w.current().evolveInto(w.next(), w.workers)
	w.flipped = !w.flipped
	w.generation++
}

// Generation returns the number of completed Evolve calls.
func (w *World) Generation() uint64 { return w.generation }

// PopulationSize returns the number of living cells.
func (w *World) PopulationSize() int {
	if w.dirty {
		w.Finish()
	}
	return len(w.current().alive)
}

// Alive returns a copy of the living cells in ascending order.
func (w *World) Alive() []Coord {
	if w.dirty {
		w.Finish()
	}
	return append([]Coord(nil), w.current().alive...)
}

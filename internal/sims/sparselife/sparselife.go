// Package sparselife adapts the sparse Life engine to the simulation registry.
package sparselife

import (
	"errors"
	"fmt"
	"log"
	"os"

	"sparse-life/internal/core"
	rngcore "sparse-life/pkg/core"
	"sparse-life/pkg/life"
	"sparse-life/pkg/rle"
)

// ErrUnknownPattern is returned when Config.Pattern names no built-in pattern.
var ErrUnknownPattern = errors.New("unknown pattern")

// Life drives a sparse World seeded from a pattern file, a built-in pattern or
// a random soup.
type Life struct {
	cfg   Config
	seed  int64
	world *life.World
}

// New returns a Life simulation with an empty world. Call Reset or Load to seed it.
func New(cfg Config) *Life {
	l := &Life{cfg: cfg, seed: cfg.Seed}
	l.world = l.newWorld()
	return l
}

func (l *Life) newWorld() *life.World {
	if l.cfg.Workers > 0 {
		return life.New(life.WithWorkers(l.cfg.Workers))
	}
	return life.New()
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// World exposes the underlying world.
func (l *Life) World() *life.World { return l.world }

// Load replaces the world with a freshly seeded one. On failure the world is
// left empty and the error describes what could not be read.
func (l *Life) Load(seed int64) error {
	l.seed = seed
	world := l.newWorld()
	origin := life.Coord{X: l.cfg.OriginX, Y: l.cfg.OriginY}

	var err error
	world.Action(func(w *life.World) {
		placer := life.NewPlacer(origin, w)
		switch {
		case l.cfg.File != "":
			err = seedFile(l.cfg.File, placer)
		case l.cfg.Pattern != "":
			err = seedPattern(l.cfg.Pattern, placer)
		default:
			seedSoup(rngcore.NewRNG(seed), l.cfg, placer)
		}
	})
	if err != nil {
		l.world = l.newWorld()
		return err
	}
	l.world = world
	return nil
}

// Reset reseeds the world, logging rather than returning load failures.
func (l *Life) Reset(seed int64) {
	if err := l.Load(seed); err != nil {
		log.Printf("life: reset: %v", err)
	}
}

// Step advances the simulation by one generation.
func (l *Life) Step() { l.world.Evolve() }

// Generation returns the number of completed steps since the last reset.
func (l *Life) Generation() uint64 { return l.world.Generation() }

// Population returns the number of living cells.
func (l *Life) Population() int { return l.world.PopulationSize() }

// LiveCells appends the living cells inside win to out.
func (l *Life) LiveCells(win life.Window, out []life.Coord) []life.Coord {
	return l.world.LiveCells(win, out)
}

func seedFile(path string, p rle.Placer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open pattern: %w", err)
	}
	defer f.Close()
	if _, err := rle.Decode(f, p); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func seedPattern(name string, p rle.Placer) error {
	text, ok := Pattern(name)
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownPattern, name)
	}
	if _, err := rle.DecodeString(text, p); err != nil {
		return fmt.Errorf("decode built-in %s: %w", name, err)
	}
	return nil
}

func seedSoup(rng *rngcore.RNG, cfg Config, p rle.Placer) {
	for y := 0; y < cfg.SoupHeight; y++ {
		for x := 0; x < cfg.SoupWidth; x++ {
			if rng.Chance(cfg.Density) {
				p.MakeCellAlive(life.Coord{X: int64(x), Y: int64(y)})
			}
		}
	}
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		l := New(c)
		l.Reset(c.Seed)
		return l
	})
}

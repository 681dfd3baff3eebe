package life

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func seeded(cs ...Coord) *World {
	w := New(WithWorkers(1))
	w.Action(func(w *World) {
		for _, c := range cs {
			w.MakeAlive(c)
		}
	})
	return w
}

func TestNewWorldIsEmpty(t *testing.T) {
	w := New()
	if w.Generation() != 0 {
		t.Fatalf("new world at generation %d", w.Generation())
	}
	if w.PopulationSize() != 0 {
		t.Fatalf("new world has population %d", w.PopulationSize())
	}
}

func TestEmptyWorldStaysEmpty(t *testing.T) {
	w := New()
	for i := 0; i < 5; i++ {
		w.Evolve()
		if w.PopulationSize() != 0 {
			t.Fatalf("generation %d has population %d", w.Generation(), w.PopulationSize())
		}
	}
}

func TestGenerationCounter(t *testing.T) {
	w := seeded(Coord{0, 0}, Coord{1, 0}, Coord{2, 0})
	for i := uint64(1); i <= 10; i++ {
		w.Evolve()
		if w.Generation() != i {
			t.Fatalf("after %d evolutions generation is %d", i, w.Generation())
		}
	}
}

func TestIsolatedCellDies(t *testing.T) {
	w := seeded(Coord{4, -4})
	w.Evolve()
	if w.PopulationSize() != 0 {
		t.Fatalf("single cell survived: %v", w.Alive())
	}
}

func TestBlockIsStill(t *testing.T) {
	block := []Coord{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	w := seeded(block...)
	for i := 0; i < 3; i++ {
		w.Evolve()
		if got := w.Alive(); !slices.Equal(got, block) {
			t.Fatalf("block changed at generation %d: %v", w.Generation(), got)
		}
	}
}

func TestTriangleCollapsesToSingleCell(t *testing.T) {
	w := seeded(Coord{1, 0}, Coord{0, 2}, Coord{2, 2})
	w.Evolve()
	if got, want := w.Alive(), []Coord{{1, 1}}; !slices.Equal(got, want) {
		t.Fatalf("alive = %v, expected %v", got, want)
	}
	w.Evolve()
	if w.PopulationSize() != 0 {
		t.Fatalf("expected extinction, got %v", w.Alive())
	}
}

func TestBlinkerOscillation(t *testing.T) {
	vertical := []Coord{{2, 1}, {2, 2}, {2, 3}}
	horizontal := []Coord{{1, 2}, {2, 2}, {3, 2}}
	w := seeded(vertical...)

	w.Evolve()
	if got := w.Alive(); !slices.Equal(got, horizontal) {
		t.Fatalf("after first step alive = %v, expected %v", got, horizontal)
	}
	w.Evolve()
	if got := w.Alive(); !slices.Equal(got, vertical) {
		t.Fatalf("after second step alive = %v, expected %v", got, vertical)
	}
}

func TestGliderTravelsAcrossNegativeSpace(t *testing.T) {
	glider := []Coord{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	start := Coord{-50, -50}
	var shifted []Coord
	for _, c := range glider {
		shifted = append(shifted, c.Add(start))
	}
	w := seeded(shifted...)

	for i := 0; i < 4*20; i++ {
		w.Evolve()
	}

	var want []Coord
	for _, c := range shifted {
		want = append(want, c.Add(Coord{20, 20}))
	}
	slices.SortFunc(want, compareCoords)
	if got := w.Alive(); !slices.Equal(got, want) {
		t.Fatalf("glider after 80 generations = %v, expected %v", got, want)
	}
}

func TestDuplicateSeedsCollapse(t *testing.T) {
	w := New()
	w.Action(func(w *World) {
		for i := 0; i < 3; i++ {
			w.MakeAlive(Coord{0, 0})
			w.MakeAlive(Coord{5, 5})
			w.MakeAlive(Coord{-5, 5})
		}
	})
	if w.PopulationSize() != 3 {
		t.Fatalf("expected population 3, got %d", w.PopulationSize())
	}
}

func TestMakeAliveOutsideActionIsFinishedLazily(t *testing.T) {
	w := New()
	w.MakeAlive(Coord{0, 0})
	w.MakeAlive(Coord{0, 0})
	w.MakeAlive(Coord{1, 0})
	if w.PopulationSize() != 2 {
		t.Fatalf("expected population 2, got %d", w.PopulationSize())
	}

	w.MakeAlive(Coord{2, 0})
	w.Evolve()
	if got, want := w.Alive(), []Coord{{1, -1}, {1, 0}, {1, 1}}; !slices.Equal(got, want) {
		t.Fatalf("alive = %v, expected %v", got, want)
	}
}

func TestParallelEvolutionMatchesSequential(t *testing.T) {
	defer func(old int) { minChunk = old }(minChunk)
	minChunk = 16

	rng := rand.New(rand.NewPCG(2024, 0))
	var soup []Coord
	for i := 0; i < 3000; i++ {
		soup = append(soup, Coord{X: int64(rng.IntN(90)), Y: int64(rng.IntN(90))})
	}

	seq := New(WithWorkers(1))
	par := New(WithWorkers(6))
	for _, w := range []*World{seq, par} {
		w.Action(func(w *World) {
			for _, c := range soup {
				w.MakeAlive(c)
			}
		})
	}

	for i := 0; i < 25; i++ {
		seq.Evolve()
		par.Evolve()
		if !slices.Equal(seq.Alive(), par.Alive()) {
			t.Fatalf("worlds diverged at generation %d", seq.Generation())
		}
		checkInvariant(t, par.current())
	}
}

func TestPlacerAppliesOrigin(t *testing.T) {
	w := New()
	w.Action(func(w *World) {
		p := NewPlacer(Coord{10, -3}, w)
		p.MakeCellAlive(Coord{0, 0})
		p.MakeCellAlive(Coord{2, 1})
	})
	if got, want := w.Alive(), []Coord{{10, -3}, {12, -2}}; !slices.Equal(got, want) {
		t.Fatalf("alive = %v, expected %v", got, want)
	}
}

package sparselife

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"sparse-life/internal/core"
	"sparse-life/pkg/life"
	"sparse-life/pkg/rle"
)

func TestFromMapParsesAndIgnoresInvalid(t *testing.T) {
	c := FromMap(map[string]string{
		"pattern": "acorn",
		"seed":    "-9",
		"soup_w":  "0",
		"soup_h":  "12",
		"density": "1.5",
		"x":       "-40",
		"y":       "nope",
		"workers": "3",
	})
	def := DefaultConfig()
	if c.Pattern != "acorn" || c.Seed != -9 || c.SoupHeight != 12 || c.OriginX != -40 || c.Workers != 3 {
		t.Fatalf("unexpected parsed config %+v", c)
	}
	if c.SoupWidth != def.SoupWidth || c.Density != def.Density || c.OriginY != def.OriginY {
		t.Fatalf("invalid values must keep defaults, got %+v", c)
	}
	if FromMap(nil) != def {
		t.Fatal("nil map must yield defaults")
	}
}

func TestSoupResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SoupWidth = 24
	cfg.SoupHeight = 16

	l := New(cfg)
	l.Reset(7)
	first := l.World().Alive()
	if len(first) == 0 {
		t.Fatal("soup produced no cells")
	}
	for _, c := range first {
		if c.X < 0 || c.X >= 24 || c.Y < 0 || c.Y >= 16 {
			t.Fatalf("soup cell %v outside the soup area", c)
		}
	}

	l.Step()
	l.Reset(7)
	if l.Generation() != 0 {
		t.Fatalf("reset left generation at %d", l.Generation())
	}
	if !slices.Equal(first, l.World().Alive()) {
		t.Fatal("Reset with the same seed is not deterministic")
	}

	l.Reset(8)
	if slices.Equal(first, l.World().Alive()) {
		t.Fatal("different seeds should produce different soups")
	}
}

func TestBuiltinPatternsDecode(t *testing.T) {
	for _, name := range Patterns() {
		text, ok := Pattern(name)
		if !ok {
			t.Fatalf("pattern %q listed but missing", name)
		}
		var count int
		h, err := rle.DecodeString(text, placerFunc(func(c life.Coord) {
			count++
			if c.X < 0 || c.Y < 0 {
				t.Fatalf("%s: negative cell %v", name, c)
			}
		}))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if count == 0 || h.Width == 0 || h.Height == 0 {
			t.Fatalf("%s: decoded %d cells in %dx%d", name, count, h.Width, h.Height)
		}
	}
}

func TestPatternSeededAtOrigin(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pattern = "glider"
	cfg.OriginX, cfg.OriginY = 100, -100

	l := New(cfg)
	if err := l.Load(0); err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []life.Coord{{X: 100, Y: -98}, {X: 101, Y: -100}, {X: 101, Y: -98}, {X: 102, Y: -99}, {X: 102, Y: -98}}
	if got := l.World().Alive(); !slices.Equal(got, want) {
		t.Fatalf("alive = %v, expected %v", got, want)
	}
}

func TestDiehardVanishes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pattern = "diehard"
	l := New(cfg)
	if err := l.Load(0); err != nil {
		t.Fatalf("load: %v", err)
	}
	for i := 0; i < 130; i++ {
		l.Step()
		if l.Generation() == 100 && l.Population() == 0 {
			t.Fatal("diehard died before generation 100")
		}
	}
	if l.Population() != 0 {
		t.Fatalf("diehard still has %d cells at generation %d", l.Population(), l.Generation())
	}
}

func TestGliderGunGrows(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pattern = "gosper-glider-gun"
	l := New(cfg)
	if err := l.Load(0); err != nil {
		t.Fatalf("load: %v", err)
	}
	start := l.Population()
	if start != 36 {
		t.Fatalf("gun should start with 36 cells, got %d", start)
	}
	for i := 0; i < 120; i++ {
		l.Step()
	}
	if l.Population() <= start {
		t.Fatalf("gun population %d did not grow past %d", l.Population(), start)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "line.rle")
	if err := os.WriteFile(path, []byte("x = 3, y = 1\n3o!\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg := DefaultConfig()
	cfg.File = path
	cfg.Pattern = "gosper-glider-gun"
	l := New(cfg)
	if err := l.Load(0); err != nil {
		t.Fatalf("load: %v", err)
	}
	if l.Population() != 3 {
		t.Fatalf("file should take precedence, population %d", l.Population())
	}
}

func TestLoadFailuresLeaveEmptyWorld(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pattern = "no-such-thing"
	l := New(cfg)
	if err := l.Load(0); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("expected ErrUnknownPattern, got %v", err)
	}
	if l.Population() != 0 {
		t.Fatal("failed load must leave an empty world")
	}

	cfg = DefaultConfig()
	cfg.File = filepath.Join(t.TempDir(), "missing.rle")
	l = New(cfg)
	if err := l.Load(0); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "bad.rle")
	if err := os.WriteFile(path, []byte("x = 1, y = 1, rule = B36/S23\no!"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg.File = path
	l = New(cfg)
	if err := l.Load(0); !errors.Is(err, rle.ErrUnsupportedRule) {
		t.Fatalf("expected rle.ErrUnsupportedRule, got %v", err)
	}
}

func TestParametersSnapshot(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pattern = "blinker"
	l := New(cfg)
	if err := l.Load(5); err != nil {
		t.Fatalf("load: %v", err)
	}
	l.Step()
	snap := l.Parameters()
	for key, want := range map[string]string{
		"pattern":    "blinker",
		"seed":       "5",
		"generation": "1",
		"population": "3",
	} {
		p, ok := snap.Lookup(key)
		if !ok || p.Value != want {
			t.Fatalf("%s = %+v (found=%v), expected %q", key, p, ok, want)
		}
	}
	if _, ok := snap.Lookup("density"); ok {
		t.Fatal("density is only reported for soups")
	}
}

func TestRegistered(t *testing.T) {
	factory, ok := core.Sims()["life"]
	if !ok {
		t.Fatal("life sim not registered")
	}
	sim := factory(map[string]string{"pattern": "block"})
	if sim.Name() != "life" || sim.Population() != 4 {
		t.Fatalf("factory sim %q has population %d", sim.Name(), sim.Population())
	}
	if got := sim.LiveCells(life.NewWindow(0, 0, 1, 1), nil); len(got) != 1 {
		t.Fatalf("expected the block corner in a 1x1 window, got %v", got)
	}
}

type placerFunc func(c life.Coord)

func (f placerFunc) MakeCellAlive(c life.Coord) { f(c) }

package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters shared by the front-ends.
type Config struct {
	Sim     string
	Scale   int
	TPS     int
	Seed    int64
	Width   int
	Height  int
	HUD     int
	Pattern string
	File    string
	Density float64
	SoupW   int
	SoupH   int
	X       int64
	Y       int64
	Workers int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:     "life",
		Scale:   4,
		TPS:     15,
		Seed:    42,
		Width:   200,
		Height:  150,
		HUD:     220,
		Density: 0.35,
		SoupW:   64,
		SoupH:   48,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random soups")
	fs.IntVar(&c.Width, "w", c.Width, "viewport width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "viewport height in cells")
	fs.IntVar(&c.HUD, "hud", c.HUD, "status panel width in pixels (0 hides it)")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "built-in pattern to seed")
	fs.StringVar(&c.File, "file", c.File, "RLE pattern file to seed (overrides -pattern)")
	fs.Float64Var(&c.Density, "density", c.Density, "live cell probability for random soups")
	fs.IntVar(&c.SoupW, "soup-w", c.SoupW, "random soup width")
	fs.IntVar(&c.SoupH, "soup-h", c.SoupH, "random soup height")
	fs.Int64Var(&c.X, "x", c.X, "x offset applied to the seeded pattern")
	fs.Int64Var(&c.Y, "y", c.Y, "y offset applied to the seeded pattern")
	fs.IntVar(&c.Workers, "workers", c.Workers, "evolution goroutines (0 uses GOMAXPROCS)")
}

// SimOptions converts the seeding flags into the string map sim factories accept.
func (c *Config) SimOptions() map[string]string {
	opts := map[string]string{
		"seed":    strconv.FormatInt(c.Seed, 10),
		"density": strconv.FormatFloat(c.Density, 'f', -1, 64),
		"soup_w":  strconv.Itoa(c.SoupW),
		"soup_h":  strconv.Itoa(c.SoupH),
		"x":       strconv.FormatInt(c.X, 10),
		"y":       strconv.FormatInt(c.Y, 10),
		"workers": strconv.Itoa(c.Workers),
	}
	if c.Pattern != "" {
		opts["pattern"] = c.Pattern
	}
	if c.File != "" {
		opts["file"] = c.File
	}
	return opts
}

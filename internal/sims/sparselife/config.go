package sparselife

import "strconv"

// Config controls how the world is seeded on Reset.
type Config struct {
	// Pattern names a built-in pattern. File takes precedence when both are set;
	// with neither, a random soup is generated.
	Pattern string
	File    string

	Seed int64

	SoupWidth  int
	SoupHeight int
	Density    float64

	OriginX int64
	OriginY int64

	// Workers caps evolution fan-out; zero uses GOMAXPROCS.
	Workers int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Seed:       42,
		SoupWidth:  64,
		SoupHeight: 48,
		Density:    0.35,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["pattern"]; ok {
		c.Pattern = v
	}
	if v, ok := cfg["file"]; ok {
		c.File = v
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["soup_w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.SoupWidth = parsed
		}
	}
	if v, ok := cfg["soup_h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.SoupHeight = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["x"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.OriginX = parsed
		}
	}
	if v, ok := cfg["y"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.OriginY = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Workers = parsed
		}
	}
	return c
}

package core

import "sparse-life/pkg/life"

// Sim defines the contract front-ends drive a simulation through.
type Sim interface {
	Name() string
	Reset(seed int64)
	Step()
	Generation() uint64
	Population() int
	LiveCells(win life.Window, out []life.Coord) []life.Coord
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

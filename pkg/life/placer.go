package life

// Placer forwards cell notifications to a World, shifted by a fixed origin.
// It satisfies the single-method capability pattern decoders seed through.
type Placer struct {
	origin Coord
	world  *World
}

// NewPlacer returns a Placer that seeds w relative to origin.
func NewPlacer(origin Coord, w *World) *Placer {
	return &Placer{origin: origin, world: w}
}

// MakeCellAlive marks origin+c alive.
func (p *Placer) MakeCellAlive(c Coord) {
	p.world.MakeAlive(p.origin.Add(c))
}

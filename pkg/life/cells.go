package life

import "slices"

// cells is one generation of the world: the living cells plus the dead cells
// bordering them. After normalize both lists are sorted, duplicate free and
// disjoint, and every boundary cell touches at least one living cell.
type cells struct {
	alive    []Coord
	boundary []Coord
}

// makeAlive records c as alive. Sorting, deduplication and the boundary
// rebuild are deferred to normalize.
func (s *cells) makeAlive(c Coord) {
	s.alive = append(s.alive, c)
}

// clear empties both lists while keeping their backing arrays.
func (s *cells) clear() {
	s.alive = s.alive[:0]
	s.boundary = s.boundary[:0]
}

func (s *cells) isAlive(c Coord) bool {
	_, ok := slices.BinarySearchFunc(s.alive, c, compareCoords)
	return ok
}

// normalize restores the set invariant after a batch of makeAlive calls.
func (s *cells) normalize(workers int) {
	sortCoords(workers, s.alive)
	s.alive = slices.Compact(s.alive)

	s.boundary = expand(workers, s.alive, func(c Coord, out []Coord) []Coord {
		for _, n := range Neighbors(c) {
			if !s.isAlive(n) {
				out = append(out, n)
			}
		}
		return out
	}, s.boundary[:0])
	sortCoords(workers, s.boundary)
	s.boundary = slices.Compact(s.boundary)
}

// liveNeighborCount returns how many of c's neighbors are alive.
func (s *cells) liveNeighborCount(c Coord) int {
	n := 0
	for _, nb := range Neighbors(c) {
		if s.isAlive(nb) {
			n++
		}
	}
	return n
}

// evolveInto writes the following generation into next. s must be normalized
// and is left untouched; next is cleared first and normalized on return.
func (s *cells) evolveInto(next *cells, workers int) {
	if s == next {
		panic("life: evolveInto needs a separate destination buffer")
	}
	next.clear()
	next.alive = filter(workers, s.alive, func(c Coord) bool {
		return nextState(true, s.liveNeighborCount(c))
	}, next.alive)
	next.alive = filter(workers, s.boundary, func(c Coord) bool {
		return nextState(false, s.liveNeighborCount(c))
	}, next.alive)
	next.normalize(workers)
}

// nextState applies B3/S23.
func nextState(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

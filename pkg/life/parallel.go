package life

import (
	"slices"

	"golang.org/x/sync/errgroup"
)

// minChunk is the smallest slice handed to a worker. Inputs shorter than two
// chunks are processed inline.
var minChunk = 2048

// span is a half-open index range [lo, hi).
type span struct{ lo, hi int }

func split(n, workers int) []span {
	if workers <= 1 || n < 2*minChunk {
		return []span{{0, n}}
	}
	size := (n + workers - 1) / workers
	if size < minChunk {
		size = minChunk
	}
	parts := make([]span, 0, (n+size-1)/size)
	for lo := 0; lo < n; lo += size {
		parts = append(parts, span{lo, min(lo+size, n)})
	}
	return parts
}

// join waits for every worker of g. Workers in this file never return an
// error, so there is nothing to report.
func join(g *errgroup.Group) {
	_ = g.Wait()
}

// expand applies f to every element of in and appends what it emits to out.
// Per-chunk results are joined in chunk order so the output does not depend on
// scheduling.
func expand(workers int, in []Coord, f func(c Coord, out []Coord) []Coord, out []Coord) []Coord {
	parts := split(len(in), workers)
	if len(parts) == 1 {
		for _, c := range in {
			out = f(c, out)
		}
		return out
	}

	results := make([][]Coord, len(parts))
	var eg errgroup.Group
	for i, p := range parts {
		eg.Go(func() error {
			var local []Coord
			for _, c := range in[p.lo:p.hi] {
				local = f(c, local)
			}
			results[i] = local
			return nil
		})
	}
	join(&eg)

	for _, r := range results {
		out = append(out, r...)
	}
	return out
}

// filter appends to out the elements of in for which keep reports true, in
// input order.
func filter(workers int, in []Coord, keep func(Coord) bool, out []Coord) []Coord {
	return expand(workers, in, func(c Coord, dst []Coord) []Coord {
		if keep(c) {
			dst = append(dst, c)
		}
		return dst
	}, out)
}

// sortCoords sorts cs ascending. Large inputs are sorted chunk-wise in parallel
// and then merged pairwise.
func sortCoords(workers int, cs []Coord) {
	parts := split(len(cs), workers)
	if len(parts) == 1 {
		slices.SortFunc(cs, compareCoords)
		return
	}

	var eg errgroup.Group
	for _, p := range parts {
		eg.Go(func() error {
			slices.SortFunc(cs[p.lo:p.hi], compareCoords)
			return nil
		})
	}
	join(&eg)

	src, dst := cs, make([]Coord, len(cs))
	for len(parts) > 1 {
		merged := make([]span, 0, (len(parts)+1)/2)
		var level errgroup.Group
		for i := 0; i < len(parts); i += 2 {
			if i+1 == len(parts) {
				p := parts[i]
				copy(dst[p.lo:p.hi], src[p.lo:p.hi])
				merged = append(merged, p)
				continue
			}
			a, b := parts[i], parts[i+1]
			level.Go(func() error {
				mergeInto(dst[a.lo:b.hi], src[a.lo:a.hi], src[b.lo:b.hi])
				return nil
			})
			merged = append(merged, span{a.lo, b.hi})
		}
		join(&level)
		parts = merged
		src, dst = dst, src
	}
	if &src[0] != &cs[0] {
		copy(cs, src)
	}
}

// mergeInto merges the sorted slices a and b into dst, which must have room
// for both.
func mergeInto(dst, a, b []Coord) {
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		if b[j].Less(a[i]) {
			dst[k] = b[j]
			j++
		} else {
			dst[k] = a[i]
			i++
		}
		k++
	}
	k += copy(dst[k:], a[i:])
	copy(dst[k:], b[j:])
}

package lookup

import (
	"math"
)

// searcher locates the bracketing interval of a query coordinate within a
// strictly increasing sample sequence. A sequence whose spacing is uniform
// to within UniformTol is detected at init time and searched with O(1)
// arithmetic; all other sequences use binary search.
type searcher struct {
	xs      []float64
	uniform bool

	// Mean point spacing, used by the arithmetic fast path.
	dx float64

	// Width of the guard band around each domain boundary.
	slop float64
}

func (s *searcher) init(xs []float64) {
	n := len(xs)
	s.xs = xs
	s.dx = (xs[n-1] - xs[0]) / float64(n-1)
	s.slop = (xs[n-1] - xs[0]) * BoundaryTol

	minDx, maxDx := math.Inf(+1), math.Inf(-1)
	for i := 0; i < n-1; i++ {
		dx := xs[i+1] - xs[i]
		if dx < minDx { minDx = dx }
		if dx > maxDx { maxDx = dx }
	}
	s.uniform = maxDx-minDx <= UniformTol*s.dx
}

// inBounds returns true if u is inside the sampled domain or within the
// boundary guard band.
func (s *searcher) inBounds(u float64) bool {
	return u >= s.xs[0]-s.slop && u <= s.xs[len(s.xs)-1]+s.slop
}

// clamp maps a point inside the guard band back onto the nearest boundary
// sample. Points inside the domain are returned unchanged.
func (s *searcher) clamp(u float64) float64 {
	if u < s.xs[0] {
		return s.xs[0]
	}
	if u > s.xs[len(s.xs)-1] {
		return s.xs[len(s.xs)-1]
	}
	return u
}

// wrap reduces u modulo the domain period into [xs[0], xs[n-1]).
func (s *searcher) wrap(u float64) float64 {
	x0, x1 := s.xs[0], s.xs[len(s.xs)-1]
	u = x0 + math.Mod(u-x0, x1-x0)
	if u < x0 {
		u += x1 - x0
	}
	return u
}

// search returns the index of the bracket [xs[i], xs[i+1]] containing u.
// u must already be inside the domain.
func (s *searcher) search(u float64) int {
	if s.uniform {
		i := int((u - s.xs[0]) / s.dx)
		if i < 0 {
			i = 0
		} else if i > len(s.xs)-2 {
			i = len(s.xs) - 2
		}
		// Round-off in the division can push the guess off by one.
		if i > 0 && u < s.xs[i] {
			i--
		} else if i < len(s.xs)-2 && u > s.xs[i+1] {
			i++
		}
		return i
	}

	lo, hi := 0, len(s.xs)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if u >= s.xs[mid] {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// exact reports whether u coincides with a stored sample, and its index.
func (s *searcher) exact(u float64) (int, bool) {
	i := s.search(u)
	if u == s.xs[i] { return i, true }
	if u == s.xs[i+1] { return i + 1, true }
	return 0, false
}

// corner picks the single sample index used along one axis by the floor,
// ceil, and nearest interpolants. Exact hits on a sample always select
// that sample.
func (s *searcher) corner(u float64, interp Interpolant) int {
	if i, ok := s.exact(u); ok {
		return i
	}
	i := s.search(u)
	switch interp {
	case Ceil:
		return i + 1
	case Nearest:
		if u-s.xs[i] > s.xs[i+1]-u {
			return i + 1
		}
	}
	return i
}

/*Package lookup implements interpolation over tabulated functions.

The package provides two table types. Table maps a scalar argument to a
scalar value through a strictly increasing sequence of domain samples, with
a choice of five interpolants and optional logarithmic reparameterization
of the argument and value axes. Table2D maps a coordinate pair to a scalar
value over a rectangular, possibly non-uniform grid, with a configurable
policy for queries that fall outside the grid.

Both types are immutable once constructed. Evaluation is a pure function of
the table and the query point, so a single table may be shared between
goroutines without synchronization. Tables whose samples are uniformly
spaced locate brackets in O(1) arithmetic; all other tables fall back to a
binary search.
*/
package lookup

import (
	"fmt"
	"strings"
)

// Interpolant selects the rule used to compute a value between two domain
// samples.
type Interpolant int

const (
	// Linear interpolates on the straight line between the bracketing
	// samples.
	Linear Interpolant = iota
	// Spline evaluates a natural cubic spline fit over the full table.
	Spline
	// Floor returns the value at the lower bracketing sample.
	Floor
	// Ceil returns the value at the upper bracketing sample.
	Ceil
	// Nearest returns the value at whichever bracketing sample is closer.
	Nearest
)

// ParseInterpolant converts a string such as those found in config files
// into an Interpolant.
func ParseInterpolant(s string) (Interpolant, error) {
	switch strings.ToLower(s) {
	case "linear":
		return Linear, nil
	case "spline":
		return Spline, nil
	case "floor":
		return Floor, nil
	case "ceil":
		return Ceil, nil
	case "nearest":
		return Nearest, nil
	}
	return 0, &ConfigError{
		fmt.Sprintf("Unrecognized interpolant, '%s'.", s),
	}
}

func (ip Interpolant) String() string {
	switch ip {
	case Linear:
		return "linear"
	case Spline:
		return "spline"
	case Floor:
		return "floor"
	case Ceil:
		return "ceil"
	case Nearest:
		return "nearest"
	}
	return fmt.Sprintf("Interpolant(%d)", int(ip))
}

func (ip Interpolant) valid() bool {
	return ip >= Linear && ip <= Nearest
}

// EdgeMode selects the behavior of a Table2D for query points outside the
// sampled grid.
type EdgeMode int

const (
	// Raise fails with a DomainError for out of bounds queries.
	Raise EdgeMode = iota
	// Wrap treats the table as periodic along both axes and reduces
	// queries into the primary domain before lookup.
	Wrap
	// Constant returns a fixed fill value for out of bounds queries.
	Constant
)

// ParseEdgeMode converts a string such as those found in config files into
// an EdgeMode.
func ParseEdgeMode(s string) (EdgeMode, error) {
	switch strings.ToLower(s) {
	case "raise":
		return Raise, nil
	case "wrap":
		return Wrap, nil
	case "constant":
		return Constant, nil
	}
	return 0, &ConfigError{
		fmt.Sprintf("Unrecognized edge mode, '%s'.", s),
	}
}

func (em EdgeMode) String() string {
	switch em {
	case Raise:
		return "raise"
	case Wrap:
		return "wrap"
	case Constant:
		return "constant"
	}
	return fmt.Sprintf("EdgeMode(%d)", int(em))
}

func (em EdgeMode) valid() bool {
	return em >= Raise && em <= Constant
}

const (
	// BoundaryTol sets the width of the guard band around the domain
	// boundaries, as a fraction of the domain width. A query within
	// BoundaryTol*(argMax - argMin) of a boundary is clamped to that
	// boundary instead of failing. This absorbs the round-off picked up
	// when a caller computes an endpoint coordinate through intervening
	// floating point arithmetic.
	BoundaryTol = 1e-6

	// UniformTol sets the spread of consecutive sample spacings, as a
	// fraction of the mean spacing, below which an axis is treated as
	// uniformly spaced and brackets are located arithmetically.
	UniformTol = 1e-6

	// WrapTol sets the relative tolerance used to check that the first
	// and last rows and columns of a wrapped Table2D represent the same
	// physical values.
	WrapTol = 1e-12
)

package lookup

import (
	"fmt"
	"math"
)

// Table2D interpolates a tabulated function of two variables sampled on a
// rectangular, possibly non-uniform grid. It is immutable once constructed
// and safe for concurrent use.
type Table2D struct {
	x, y []float64
	z    [][]float64 // z[i][j] is the value at (x[i], y[j]).

	interp   Interpolant
	edge     EdgeMode
	constant float64

	xs, ys searcher
}

// NewTable2D creates a Table2D over grid coordinates x and y with values
// z, where z[i][j] is the value at (x[i], y[j]). Out of bounds queries
// fail with a DomainError. Both coordinate slices must be strictly
// increasing. All slices are copied.
func NewTable2D(
	x, y []float64, z [][]float64, interp Interpolant,
) (*Table2D, error) {
	return NewTable2DEdge(x, y, z, interp, Raise, 0)
}

// NewTable2DEdge creates a Table2D with an explicit edge policy. With edge
// mode Wrap the table is treated as periodic, which requires its first and
// last rows and columns to hold matching values. constant is only used
// with edge mode Constant, where it is returned for every out of bounds
// query.
func NewTable2DEdge(
	x, y []float64, z [][]float64,
	interp Interpolant, edge EdgeMode, constant float64,
) (*Table2D, error) {
	if !interp.valid() {
		return nil, &ConfigError{
			fmt.Sprintf("Unrecognized interpolant, '%d'.", int(interp)),
		}
	}
	if interp == Spline {
		return nil, &ConfigError{
			"The 'spline' interpolant is not supported by Table2D.",
		}
	}
	if !edge.valid() {
		return nil, &ConfigError{
			fmt.Sprintf("Unrecognized edge mode, '%d'.", int(edge)),
		}
	}
	if len(x) < 2 || len(y) < 2 {
		return nil, &ConfigError{fmt.Sprintf(
			"Table2D requires at least a 2 x 2 grid, but was given "+
				"%d x %d.", len(x), len(y),
		)}
	}
	for i := 0; i < len(x)-1; i++ {
		if x[i+1] <= x[i] {
			return nil, &ConfigError{fmt.Sprintf(
				"Table2D x not strictly increasing: x[%d] = %g, "+
					"x[%d] = %g.", i, x[i], i+1, x[i+1],
			)}
		}
	}
	for j := 0; j < len(y)-1; j++ {
		if y[j+1] <= y[j] {
			return nil, &ConfigError{fmt.Sprintf(
				"Table2D y not strictly increasing: y[%d] = %g, "+
					"y[%d] = %g.", j, y[j], j+1, y[j+1],
			)}
		}
	}
	if len(z) != len(x) {
		return nil, &ConfigError{fmt.Sprintf(
			"Table2D given %d rows of values for %d x coordinates.",
			len(z), len(x),
		)}
	}
	for i := range z {
		if len(z[i]) != len(y) {
			return nil, &ConfigError{fmt.Sprintf(
				"Table2D row %d has %d values for %d y coordinates.",
				i, len(z[i]), len(y),
			)}
		}
	}

	t := &Table2D{
		x:        make([]float64, len(x)),
		y:        make([]float64, len(y)),
		z:        make([][]float64, len(z)),
		interp:   interp,
		edge:     edge,
		constant: constant,
	}
	copy(t.x, x)
	copy(t.y, y)
	for i := range z {
		t.z[i] = make([]float64, len(z[i]))
		copy(t.z[i], z[i])
	}

	if edge == Wrap {
		if err := t.checkPeriodic(); err != nil {
			return nil, err
		}
	}

	t.xs.init(t.x)
	t.ys.init(t.y)
	return t, nil
}

// checkPeriodic verifies that the first and last rows and columns hold
// matching values, so that wrapping x[0] onto x[nx-1] is consistent.
func (t *Table2D) checkPeriodic() error {
	nx, ny := len(t.x), len(t.y)
	for j := 0; j < ny; j++ {
		if !wrapClose(t.z[0][j], t.z[nx-1][j]) {
			return &ConfigError{fmt.Sprintf(
				"Table2D with edge mode 'wrap' requires matching first "+
					"and last rows, but z[0][%d] = %g and z[%d][%d] = %g.",
				j, t.z[0][j], nx-1, j, t.z[nx-1][j],
			)}
		}
	}
	for i := 0; i < nx; i++ {
		if !wrapClose(t.z[i][0], t.z[i][ny-1]) {
			return &ConfigError{fmt.Sprintf(
				"Table2D with edge mode 'wrap' requires matching first "+
					"and last columns, but z[%d][0] = %g and z[%d][%d] = %g.",
				i, t.z[i][0], i, ny-1, t.z[i][ny-1],
			)}
		}
	}
	return nil
}

func wrapClose(a, b float64) bool {
	return math.Abs(a-b) <= WrapTol*math.Max(math.Abs(a), math.Abs(b))
}

// Eval returns the interpolated value at (px, py).
func (t *Table2D) Eval(px, py float64) (float64, error) {
	switch t.edge {
	case Raise:
		if !t.xs.inBounds(px) || !t.ys.inBounds(py) {
			return 0, &DomainError{fmt.Sprintf(
				"Point (%g, %g) out of range [%g, %g] x [%g, %g].",
				px, py, t.x[0], t.x[len(t.x)-1],
				t.y[0], t.y[len(t.y)-1],
			)}
		}
		px, py = t.xs.clamp(px), t.ys.clamp(py)
	case Wrap:
		px, py = t.xs.wrap(px), t.ys.wrap(py)
	case Constant:
		if !t.xs.inBounds(px) || !t.ys.inBounds(py) {
			return t.constant, nil
		}
		px, py = t.xs.clamp(px), t.ys.clamp(py)
	}

	if t.interp != Linear {
		i := t.xs.corner(px, t.interp)
		j := t.ys.corner(py, t.interp)
		return t.z[i][j], nil
	}

	i, j := t.xs.search(px), t.ys.search(py)
	dx := (px - t.x[i]) / (t.x[i+1] - t.x[i])
	dy := (py - t.y[j]) / (t.y[j+1] - t.y[j])
	return (1-dx)*(1-dy)*t.z[i][j] +
		dx*(1-dy)*t.z[i+1][j] +
		(1-dx)*dy*t.z[i][j+1] +
		dx*dy*t.z[i+1][j+1], nil
}

// EvalAll evaluates the table at every coordinate pair
// (pxs[i], pys[i]). pxs and pys must have the same length. If an output
// slice is given, the results are written to it (it is still returned as
// a convenience); otherwise a new slice is allocated. Elements are
// computed independently of one another.
//
// If more than one output slice is provided, only the first is used.
func (t *Table2D) EvalAll(
	pxs, pys []float64, out ...[]float64,
) ([]float64, error) {
	if len(pxs) != len(pys) {
		return nil, &ShapeError{fmt.Sprintf(
			"Coordinate slices have mismatched lengths, %d and %d.",
			len(pxs), len(pys),
		)}
	}
	if len(out) == 0 { out = [][]float64{make([]float64, len(pxs))} }
	if len(out[0]) != len(pxs) {
		return nil, &ShapeError{fmt.Sprintf(
			"Output slice has length %d, but %d points were given.",
			len(out[0]), len(pxs),
		)}
	}
	for i := range pxs {
		z, err := t.Eval(pxs[i], pys[i])
		if err != nil { return nil, err }
		out[0][i] = z
	}
	return out[0], nil
}

// EvalGrid evaluates the table over the outer product of pxs and pys,
// returning a len(pxs) x len(pys) matrix with out[i][j] holding the value
// at (pxs[i], pys[j]).
func (t *Table2D) EvalGrid(pxs, pys []float64) ([][]float64, error) {
	out := make([][]float64, len(pxs))
	for i := range pxs {
		out[i] = make([]float64, len(pys))
		for j := range pys {
			z, err := t.Eval(pxs[i], pys[j])
			if err != nil { return nil, err }
			out[i][j] = z
		}
	}
	return out, nil
}

// X returns a copy of the table's x coordinates.
func (t *Table2D) X() []float64 {
	out := make([]float64, len(t.x))
	copy(out, t.x)
	return out
}

// Y returns a copy of the table's y coordinates.
func (t *Table2D) Y() []float64 {
	out := make([]float64, len(t.y))
	copy(out, t.y)
	return out
}

// Z returns a copy of the table's value grid.
func (t *Table2D) Z() [][]float64 {
	out := make([][]float64, len(t.z))
	for i := range t.z {
		out[i] = make([]float64, len(t.z[i]))
		copy(out[i], t.z[i])
	}
	return out
}

// Interpolant returns the table's interpolant.
func (t *Table2D) Interpolant() Interpolant { return t.interp }

// EdgeMode returns the table's edge policy.
func (t *Table2D) EdgeMode() EdgeMode { return t.edge }

// Constant returns the fill value used with edge mode Constant.
func (t *Table2D) Constant() float64 { return t.constant }

// Equal returns true if both tables were constructed from the same
// coordinates, values, interpolant, edge mode, and constant.
func (t *Table2D) Equal(u *Table2D) bool {
	if t.interp != u.interp || t.edge != u.edge ||
		t.constant != u.constant ||
		len(t.x) != len(u.x) || len(t.y) != len(u.y) {
		return false
	}
	for i := range t.x {
		if t.x[i] != u.x[i] {
			return false
		}
	}
	for j := range t.y {
		if t.y[j] != u.y[j] {
			return false
		}
	}
	for i := range t.z {
		for j := range t.z[i] {
			if t.z[i][j] != u.z[i][j] {
				return false
			}
		}
	}
	return true
}

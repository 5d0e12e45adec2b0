package lookup

// spline holds the precomputed state of a natural cubic spline fit: the
// second derivative at every sample and the squared width of every
// interval. Both boundary second derivatives are zero.
type spline struct {
	xs, ys, y2s, sqrs []float64
}

// newSpline fits a natural cubic spline through the given samples. xs must
// be strictly increasing and must not be modified afterwards. The fit is
// O(n); evaluation within a known bracket is O(1).
func newSpline(xs, ys []float64) *spline {
	sp := &spline{
		xs:   xs,
		ys:   ys,
		y2s:  make([]float64, len(xs)),
		sqrs: make([]float64, len(xs)-1),
	}

	for i := range sp.sqrs {
		sp.sqrs[i] = (xs[i+1] - xs[i]) * (xs[i+1] - xs[i])
	}
	sp.secondDerivatives()
	return sp
}

// eval computes the spline at u, which must lie within the bracket
// [xs[i], xs[i+1]].
func (sp *spline) eval(i int, u float64) float64 {
	a := (sp.xs[i+1] - u) / (sp.xs[i+1] - sp.xs[i])
	b := 1 - a
	c := (a*a*a - a) * sp.sqrs[i] / 6
	d := (b*b*b - b) * sp.sqrs[i] / 6
	return a*sp.ys[i] + b*sp.ys[i+1] + c*sp.y2s[i] + d*sp.y2s[i+1]
}

// secondDerivatives computes the second derivative at every sample. The
// interior values solve a tridiagonal system; the boundary values are
// pinned to zero, which is what makes the spline "natural".
func (sp *spline) secondDerivatives() {
	n := len(sp.xs)
	sp.y2s[0], sp.y2s[n-1] = 0, 0
	if n == 2 {
		return
	}

	as, bs := make([]float64, n-2), make([]float64, n-2)
	cs, rs := make([]float64, n-2), make([]float64, n-2)

	xs, ys := sp.xs, sp.ys
	for i := range rs {
		// j indexes into xs and ys.
		j := i + 1

		as[i] = (xs[j] - xs[j-1]) / 6
		bs[i] = (xs[j+1] - xs[j-1]) / 3
		cs[i] = (xs[j+1] - xs[j]) / 6
		rs[i] = ((ys[j+1] - ys[j]) / (xs[j+1] - xs[j])) -
			((ys[j] - ys[j-1]) / (xs[j] - xs[j-1]))
	}

	triDiagAt(as, bs, cs, rs, sp.y2s[1:n-1])
}

// triDiagAt solves the system of equations
//
// | b0 c0 ..    |   | out0 |   | r0 |
// | a1 b1 c1 .. |   | out1 |   | r1 |
// | ..          | * | ..   | = | .. |
// | ..    an bn |   | outn |   | rn |
//
// for out0 .. outn in place in the given slice. The sub- and
// super-diagonal entries a0 and cn are ignored. Strictly increasing
// sample coordinates always yield a solvable system here, so a zero
// pivot cannot occur.
func triDiagAt(as, bs, cs, rs, out []float64) {
	tmp := make([]float64, len(as))

	beta := bs[0]
	out[0] = rs[0] / beta

	for i := 1; i < len(out); i++ {
		tmp[i] = cs[i-1] / beta
		beta = bs[i] - as[i]*tmp[i]
		out[i] = (rs[i] - as[i]*out[i-1]) / beta
	}

	for i := len(out) - 2; i >= 0; i-- {
		out[i] -= tmp[i+1] * out[i+1]
	}
}

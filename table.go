package lookup

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
)

// Table interpolates a tabulated function of one variable. It is immutable
// once constructed and safe for concurrent use.
type Table struct {
	// The samples as given by the caller.
	args, vals []float64

	// The samples the interpolant actually sees. These differ from args
	// and vals only when a log flag is set, in which case the transform
	// is applied once here rather than on every query.
	iargs, ivals []float64

	interp     Interpolant
	xLog, fLog bool

	xs searcher
	sp *spline
}

// New creates a Table from domain samples args and their function values
// vals. args must be strictly increasing and both slices must have the
// same length, at least 2. The slices are copied.
func New(args, vals []float64, interp Interpolant) (*Table, error) {
	return NewLog(args, vals, interp, false, false)
}

// NewLog creates a Table which interpolates against log(args) and/or
// log(vals). With fLog set, results are exponentiated back before being
// returned, so Eval still reports values in the caller's units. Whichever
// axis is log-transformed must be strictly positive.
func NewLog(
	args, vals []float64, interp Interpolant, xLog, fLog bool,
) (*Table, error) {
	if !interp.valid() {
		return nil, &ConfigError{
			fmt.Sprintf("Unrecognized interpolant, '%d'.", int(interp)),
		}
	}
	if len(args) != len(vals) {
		return nil, &ConfigError{fmt.Sprintf(
			"Table given len(args) = %d but len(vals) = %d.",
			len(args), len(vals),
		)}
	}
	if len(args) < 2 {
		return nil, &ConfigError{fmt.Sprintf(
			"Table requires at least 2 points, but was given %d.", len(args),
		)}
	}
	for i := 0; i < len(args)-1; i++ {
		if args[i+1] <= args[i] {
			return nil, &ConfigError{fmt.Sprintf(
				"Table args not strictly increasing: args[%d] = %g, "+
					"args[%d] = %g.", i, args[i], i+1, args[i+1],
			)}
		}
	}

	t := &Table{
		args:   make([]float64, len(args)),
		vals:   make([]float64, len(vals)),
		interp: interp,
		xLog:   xLog,
		fLog:   fLog,
	}
	copy(t.args, args)
	copy(t.vals, vals)

	t.iargs, t.ivals = t.args, t.vals
	if xLog {
		t.iargs = make([]float64, len(args))
		for i, x := range t.args {
			if x <= 0 {
				return nil, &ConfigError{fmt.Sprintf(
					"Table with x_log set requires positive args, "+
						"but args[%d] = %g.", i, x,
				)}
			}
			t.iargs[i] = math.Log(x)
		}
	}
	if fLog {
		t.ivals = make([]float64, len(vals))
		for i, v := range t.vals {
			if v <= 0 {
				return nil, &ConfigError{fmt.Sprintf(
					"Table with f_log set requires positive vals, "+
						"but vals[%d] = %g.", i, v,
				)}
			}
			t.ivals[i] = math.Log(v)
		}
	}

	t.xs.init(t.iargs)
	if interp == Spline {
		t.sp = newSpline(t.iargs, t.ivals)
	}
	return t, nil
}

// Eval returns the interpolated value at x.
func (t *Table) Eval(x float64) (float64, error) {
	u := x
	if t.xLog {
		if x <= 0 {
			return 0, &DomainError{fmt.Sprintf(
				"Argument %g given to Table with x_log set is not positive.",
				x,
			)}
		}
		u = math.Log(x)
	}

	if !t.xs.inBounds(u) {
		return 0, &DomainError{fmt.Sprintf(
			"Argument %g out of range [%g, %g].",
			x, t.args[0], t.args[len(t.args)-1],
		)}
	}
	u = t.xs.clamp(u)

	// An exact hit on a sample returns the stored value directly. This
	// also covers queries pulled onto a boundary by the guard band.
	if i, ok := t.xs.exact(u); ok {
		return t.untransform(t.ivals[i]), nil
	}

	i := t.xs.search(u)
	var v float64
	switch t.interp {
	case Linear:
		x1, x2 := t.iargs[i], t.iargs[i+1]
		v1, v2 := t.ivals[i], t.ivals[i+1]
		v = ((v2-v1)/(x2-x1))*(u-x1) + v1
	case Spline:
		v = t.sp.eval(i, u)
	case Floor:
		v = t.ivals[i]
	case Ceil:
		v = t.ivals[i+1]
	case Nearest:
		if u-t.iargs[i] > t.iargs[i+1]-u {
			v = t.ivals[i+1]
		} else {
			v = t.ivals[i]
		}
	}
	return t.untransform(v), nil
}

// EvalAll evaluates the table at every element of xs. If an output slice
// is given, the results are written to it (it is still returned as a
// convenience); otherwise a new slice of the same length as xs is
// allocated. Elements are computed independently of one another, so
// callers may shard large inputs across goroutines themselves.
//
// If more than one output slice is provided, only the first is used.
func (t *Table) EvalAll(xs []float64, out ...[]float64) ([]float64, error) {
	if len(out) == 0 { out = [][]float64{make([]float64, len(xs))} }
	if len(out[0]) != len(xs) {
		return nil, &ShapeError{fmt.Sprintf(
			"Output slice has length %d, but %d points were given.",
			len(out[0]), len(xs),
		)}
	}
	for i, x := range xs {
		y, err := t.Eval(x)
		if err != nil { return nil, err }
		out[0][i] = y
	}
	return out[0], nil
}

func (t *Table) untransform(v float64) float64 {
	if t.fLog {
		return math.Exp(v)
	}
	return v
}

// Args returns a copy of the table's domain samples, in the caller's
// original units regardless of the log flags.
func (t *Table) Args() []float64 {
	out := make([]float64, len(t.args))
	copy(out, t.args)
	return out
}

// Vals returns a copy of the table's function values, in the caller's
// original units regardless of the log flags.
func (t *Table) Vals() []float64 {
	out := make([]float64, len(t.vals))
	copy(out, t.vals)
	return out
}

// Interpolant returns the table's interpolant.
func (t *Table) Interpolant() Interpolant { return t.interp }

// XLog returns true if the table interpolates against log(args).
func (t *Table) XLog() bool { return t.xLog }

// FLog returns true if the table interpolates against log(vals).
func (t *Table) FLog() bool { return t.fLog }

// Len returns the number of domain samples.
func (t *Table) Len() int { return len(t.args) }

// XMin returns the smallest domain sample.
func (t *Table) XMin() float64 { return t.args[0] }

// XMax returns the largest domain sample.
func (t *Table) XMax() float64 { return t.args[len(t.args)-1] }

// Equal returns true if both tables were constructed from the same args,
// vals, interpolant, and log flags.
func (t *Table) Equal(u *Table) bool {
	if t.interp != u.interp || t.xLog != u.xLog || t.fLog != u.fLog ||
		len(t.args) != len(u.args) {
		return false
	}
	for i := range t.args {
		if t.args[i] != u.args[i] || t.vals[i] != u.vals[i] {
			return false
		}
	}
	return true
}

// Hash returns a hash of the tuple that defines the table. Tables that
// compare Equal hash identically.
func (t *Table) Hash() uint64 {
	h := fnv.New64a()
	buf := make([]byte, 8)

	h.Write([]byte{byte(t.interp), boolByte(t.xLog), boolByte(t.fLog)})
	for _, x := range t.args {
		binary.LittleEndian.PutUint64(buf, math.Float64bits(x))
		h.Write(buf)
	}
	for _, v := range t.vals {
		binary.LittleEndian.PutUint64(buf, math.Float64bits(v))
		h.Write(buf)
	}
	return h.Sum64()
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

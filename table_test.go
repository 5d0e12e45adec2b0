package lookup

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var allInterps = []Interpolant{Linear, Spline, Floor, Ceil, Nearest}

func mustTable(t *testing.T, args, vals []float64, interp Interpolant) *Table {
	tab, err := New(args, vals, interp)
	if err != nil { t.Fatal(err.Error()) }
	return tab
}

func TestEvalAtSamples(t *testing.T) {
	args := []float64{0, 1, 2, 3, 4, 5, 6}
	vals := []float64{0, 1, 4, 9, 16, 25, 36}

	for _, interp := range allInterps {
		tab := mustTable(t, args, vals, interp)
		for i := range args {
			y, err := tab.Eval(args[i])
			assert.NoError(t, err, interp.String())
			assert.Equal(t, vals[i], y,
				"%s interpolant at sample %d", interp, i)
		}
	}
}

func TestEvalLinear(t *testing.T) {
	// f(x) = x^2 sampled on the integers.
	args := []float64{0, 1, 2, 3, 4, 5, 6}
	vals := []float64{0, 1, 4, 9, 16, 25, 36}
	tab := mustTable(t, args, vals, Linear)

	y, err := tab.Eval(2.5)
	assert.NoError(t, err)
	assert.InDelta(t, 6.5, y, 1e-14, "midpoint of bracket [2, 3]")

	y, err = tab.Eval(3.5)
	assert.NoError(t, err)
	assert.InDelta(t, 12.5, y, 1e-14, "midpoint of bracket [3, 4]")

	y, err = tab.Eval(3)
	assert.NoError(t, err)
	assert.Equal(t, 9.0, y, "exact sample")
}

func TestEvalBracketRules(t *testing.T) {
	args := []float64{0, 1, 2, 3, 4, 5, 6}
	vals := []float64{0, 1, 4, 9, 16, 25, 36}
	eps := 1e-3

	floor := mustTable(t, args, vals, Floor)
	ceil := mustTable(t, args, vals, Ceil)
	nearest := mustTable(t, args, vals, Nearest)

	for i := 0; i < len(args)-1; i++ {
		lo, hi := args[i]+eps, args[i+1]-eps

		y, err := floor.Eval(lo)
		assert.NoError(t, err)
		assert.Equal(t, vals[i], y, "floor near lower bracket edge")
		y, err = floor.Eval(hi)
		assert.NoError(t, err)
		assert.Equal(t, vals[i], y, "floor near upper bracket edge")

		y, err = ceil.Eval(lo)
		assert.NoError(t, err)
		assert.Equal(t, vals[i+1], y, "ceil near lower bracket edge")
		y, err = ceil.Eval(hi)
		assert.NoError(t, err)
		assert.Equal(t, vals[i+1], y, "ceil near upper bracket edge")

		y, err = nearest.Eval(lo)
		assert.NoError(t, err)
		assert.Equal(t, vals[i], y, "nearest near lower bracket edge")
		y, err = nearest.Eval(hi)
		assert.NoError(t, err)
		assert.Equal(t, vals[i+1], y, "nearest near upper bracket edge")
	}
}

// A uniformly spaced table takes the arithmetic lookup path and an
// irregular one takes the binary search path. Sampling the same straight
// line on both must give identical results, since linear interpolation
// reproduces the line exactly either way.
func TestUniformAndIrregularAgree(t *testing.T) {
	f := func(x float64) float64 { return 2*x + 1 }

	uniform := []float64{0, 1, 2, 3, 4, 5, 6}
	irregular := []float64{0, 0.7, 1.4, 2, 3.3, 4.1, 5.5, 6}

	uniformVals := make([]float64, len(uniform))
	for i, x := range uniform { uniformVals[i] = f(x) }
	irregularVals := make([]float64, len(irregular))
	for i, x := range irregular { irregularVals[i] = f(x) }

	tab1 := mustTable(t, uniform, uniformVals, Linear)
	tab2 := mustTable(t, irregular, irregularVals, Linear)

	for _, x := range []float64{0, 0.25, 1.9, 2.5, 3.75, 5.9, 6} {
		y1, err := tab1.Eval(x)
		assert.NoError(t, err)
		y2, err := tab2.Eval(x)
		assert.NoError(t, err)
		assert.InDelta(t, f(x), y1, 1e-12, "uniform path at %g", x)
		assert.InDelta(t, f(x), y2, 1e-12, "search path at %g", x)
	}
}

func TestSplineEval(t *testing.T) {
	// A natural cubic spline through collinear points has zero second
	// derivatives everywhere, so it reproduces the line.
	args := []float64{0, 0.5, 1, 1.5, 2, 3, 4}
	vals := make([]float64, len(args))
	for i, x := range args { vals[i] = 2*x + 1 }

	tab := mustTable(t, args, vals, Spline)
	for _, x := range []float64{0, 0.1, 0.75, 1.9, 2.5, 3.99, 4} {
		y, err := tab.Eval(x)
		assert.NoError(t, err)
		assert.InDelta(t, 2*x+1, y, 1e-12, "spline at %g", x)
	}

	// At the samples themselves the spline is exact by construction.
	curved := []float64{2, 1, 1, 0, 2, 3, 1}
	tab = mustTable(t, args, curved, Spline)
	for i := range args {
		y, err := tab.Eval(args[i])
		assert.NoError(t, err)
		assert.InDelta(t, curved[i], y, 1e-12, "spline at sample %d", i)
	}
}

func TestTwoPointSpline(t *testing.T) {
	tab := mustTable(t, []float64{0, 1}, []float64{3, 5}, Spline)
	y, err := tab.Eval(0.5)
	assert.NoError(t, err)
	assert.InDelta(t, 4.0, y, 1e-14, "two point spline is a line")
}

func TestRoundoffGuard(t *testing.T) {
	args := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	tab := mustTable(t, args, args, Linear)

	y, err := tab.Eval(1 - 1e-7)
	assert.NoError(t, err, "query inside the lower guard band")
	assert.Equal(t, 1.0, y, "guard band clamps to the boundary sample")

	y, err = tab.Eval(10 + 1e-7)
	assert.NoError(t, err, "query inside the upper guard band")
	assert.Equal(t, 10.0, y, "guard band clamps to the boundary sample")

	_, err = tab.Eval(1 - 1e-2)
	assert.IsType(t, &DomainError{}, err, "query below the domain")
	_, err = tab.Eval(10 + 1e-2)
	assert.IsType(t, &DomainError{}, err, "query above the domain")
}

func TestLogModesAgree(t *testing.T) {
	// Strictly positive, linearly related data: the log variants should
	// agree with the plain table to interpolation accuracy.
	n := 1000
	xs := make([]float64, n)
	for i := range xs { xs[i] = 0.01 * float64(i+1) }

	tab1, err := New(xs, xs, Linear)
	assert.NoError(t, err)
	tab2, err := NewLog(xs, xs, Linear, true, true)
	assert.NoError(t, err)
	tab3, err := NewLog(xs, xs, Linear, true, false)
	assert.NoError(t, err)
	tab4, err := NewLog(xs, xs, Linear, false, true)
	assert.NoError(t, err)

	for _, x := range []float64{2.641, 3.985, 8.123125} {
		y1, err := tab1.Eval(x)
		assert.NoError(t, err)
		for _, tab := range []*Table{tab2, tab3, tab4} {
			y, err := tab.Eval(x)
			assert.NoError(t, err)
			assert.InDelta(t, y1, y, 1e-3, "log mode at %g", x)
		}
	}

	assert.True(t, tab2.XLog())
	assert.True(t, tab2.FLog())
	assert.True(t, tab3.XLog())
	assert.False(t, tab3.FLog())
	assert.False(t, tab1.XLog())
	assert.False(t, tab1.FLog())
}

func TestLogTablesRejectNegativeData(t *testing.T) {
	xs := []float64{-3, -2, -1}
	_, err := NewLog(xs, xs, Linear, true, false)
	assert.IsType(t, &ConfigError{}, err, "x_log with negative args")
	_, err = NewLog(xs, xs, Linear, false, true)
	assert.IsType(t, &ConfigError{}, err, "f_log with negative vals")
	_, err = NewLog(xs, xs, Linear, true, true)
	assert.IsType(t, &ConfigError{}, err, "both logs with negative data")
}

func TestConstructionErrors(t *testing.T) {
	xs := []float64{1, 2, 3}

	_, err := New([]float64{1, 2}, xs, Linear)
	assert.IsType(t, &ConfigError{}, err, "mismatched lengths")

	_, err = New([]float64{1}, []float64{1}, Linear)
	assert.IsType(t, &ConfigError{}, err, "too few points")

	_, err = New([]float64{1, 1, 2}, xs, Linear)
	assert.IsType(t, &ConfigError{}, err, "repeated arg")

	_, err = New([]float64{1, 3, 2}, xs, Linear)
	assert.IsType(t, &ConfigError{}, err, "decreasing arg")

	_, err = New(xs, xs, Interpolant(99))
	assert.IsType(t, &ConfigError{}, err, "unknown interpolant")
}

func TestEvalAll(t *testing.T) {
	args := []float64{0, 1, 2, 3, 4, 5, 6}
	vals := []float64{0, 1, 4, 9, 16, 25, 36}
	tab := mustTable(t, args, vals, Linear)

	xs := []float64{0.1, 0.8, 2.3, 3, 5.6, 5.9}
	ys, err := tab.EvalAll(xs)
	assert.NoError(t, err)
	assert.Equal(t, len(xs), len(ys), "output shape matches input shape")
	for i, x := range xs {
		y, err := tab.Eval(x)
		assert.NoError(t, err)
		assert.Equal(t, y, ys[i], "EvalAll agrees with Eval at %g", x)
	}

	// Caller-supplied output slice.
	out := make([]float64, len(xs))
	ys2, err := tab.EvalAll(xs, out)
	assert.NoError(t, err)
	assert.Equal(t, ys, ys2)
	assert.Equal(t, ys, out, "results written into the supplied slice")

	_, err = tab.EvalAll(xs, make([]float64, 2))
	assert.IsType(t, &ShapeError{}, err, "wrong output length")

	_, err = tab.EvalAll([]float64{0.1, 100})
	assert.IsType(t, &DomainError{}, err, "out of bounds element")
}

func TestTableRoundTrip(t *testing.T) {
	args := []float64{0.7, 3.3, 14.1, 15.6, 29, 34.1, 42.5}
	vals := make([]float64, len(args))
	for i, x := range args { vals[i] = math.Sin(x * math.Pi / 180) }

	for _, interp := range allInterps {
		for _, xLog := range []bool{false, true} {
			for _, fLog := range []bool{false, true} {
				tab, err := NewLog(args, vals, interp, xLog, fLog)
				assert.NoError(t, err)

				rebuilt, err := NewLog(
					tab.Args(), tab.Vals(), tab.Interpolant(),
					tab.XLog(), tab.FLog(),
				)
				assert.NoError(t, err)
				assert.True(t, tab.Equal(rebuilt),
					"rebuilt %s table compares equal", interp)
				assert.Equal(t, tab.Hash(), rebuilt.Hash(),
					"rebuilt %s table hashes identically", interp)
			}
		}
	}
}

func TestTableInequality(t *testing.T) {
	x := []float64{1, 2, 3}
	f := []float64{4, 5, 6}
	x2 := []float64{1.1, 2.2, 3.3}
	f2 := []float64{4.4, 5.5, 6.6}

	base, err := New(x, f, Linear)
	assert.NoError(t, err)

	others := []*Table{}
	add := func(tab *Table, err error) {
		assert.NoError(t, err)
		others = append(others, tab)
	}
	add(New(x, f2, Linear))
	add(New(x2, f, Linear))
	add(New(x, f, Floor))
	add(NewLog(x, f, Linear, true, false))
	add(NewLog(x, f, Linear, false, true))

	for i, other := range others {
		assert.False(t, base.Equal(other), "table %d compares unequal", i)
		assert.NotEqual(t, base.Hash(), other.Hash(),
			"table %d hashes differently", i)
	}
}

func TestAccessorsCopy(t *testing.T) {
	args := []float64{1, 2, 3}
	vals := []float64{4, 5, 6}
	tab := mustTable(t, args, vals, Linear)

	assert.Equal(t, 3, tab.Len())
	assert.Equal(t, 1.0, tab.XMin())
	assert.Equal(t, 3.0, tab.XMax())

	// Mutating accessor output or the construction slices must not
	// change the table.
	tab.Args()[0] = -100
	tab.Vals()[0] = -100
	args[1] = -100
	vals[1] = -100

	y, err := tab.Eval(2)
	assert.NoError(t, err)
	assert.Equal(t, 5.0, y, "table owns its data outright")
}

func BenchmarkEvalLinearUniform(b *testing.B) {
	n := 1000
	xs, ys := make([]float64, n), make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
		ys[i] = math.Sqrt(float64(i))
	}
	tab, _ := New(xs, ys, Linear)
	for i := 0; i < b.N; i++ {
		tab.Eval(float64(i % (n - 1)))
	}
}

func BenchmarkEvalSplineIrregular(b *testing.B) {
	n := 1000
	xs, ys := make([]float64, n), make([]float64, n)
	for i := range xs {
		xs[i] = float64(i) + 0.3*math.Sin(float64(i))
		ys[i] = math.Sqrt(float64(i))
	}
	tab, _ := New(xs, ys, Spline)
	for i := 0; i < b.N; i++ {
		tab.Eval(float64(i % (n - 2)))
	}
}

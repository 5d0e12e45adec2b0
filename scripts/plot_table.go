package main

import (
	"log"
	"os"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/ellongley/lookup"
)

// Plots the curve of a tabulated function at high resolution on top of its
// samples, once per interpolant, so that the interpolants can be compared
// by eye.
func main() {
	if len(os.Args) != 3 {
		log.Fatalf("Usage: $ %s table_file out.png", os.Args[0])
	}
	tableFile, outFile := os.Args[1], os.Args[2]

	interps := []lookup.Interpolant{
		lookup.Linear, lookup.Spline, lookup.Nearest,
	}
	styles := []string{"r", "b", "g"}

	plt.Figure()
	for k, interp := range interps {
		t, err := lookup.ReadTable(tableFile, interp)
		if err != nil { log.Fatal(err.Error()) }

		xs := linspace(t.XMin(), t.XMax(), 300)
		ys, err := t.EvalAll(xs)
		if err != nil { log.Fatal(err.Error()) }

		plt.Plot(xs, ys, styles[k], plt.LW(2))
	}

	t, err := lookup.ReadTable(tableFile, lookup.Linear)
	if err != nil { log.Fatal(err.Error()) }
	plt.Plot(t.Args(), t.Vals(), "ok")

	plt.XLabel("$x$", plt.FontSize(16))
	plt.YLabel("$f(x)$", plt.FontSize(16))
	plt.SaveFig(outFile)
	plt.Execute()
}

func linspace(lo, hi float64, n int) []float64 {
	xs := make([]float64, n)
	dx := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo + float64(i)*dx
	}
	xs[n-1] = hi
	return xs
}

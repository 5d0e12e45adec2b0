package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"

	"gopkg.in/gcfg.v1"

	"github.com/ellongley/lookup"
)

const ExampleTableFile = `[Table]

# Path to a whitespace-separated table file. The first column holds the
# arguments and the second holds the values. A third column, if present,
# holds error weights and is ignored here.
File = path/to/table.dat

# Alternatively, give the samples inline. Repeat the Arg and Val keys once
# per sample. A config file must set either File or the inline samples,
# never both.
# Arg = 0
# Arg = 1
# Val = 10
# Val = 20

# One of 'linear', 'spline', 'floor', 'ceil', or 'nearest'. Default is
# linear.
Interpolant = linear

# Interpolate against log(args) and/or log(vals). The corresponding
# samples must be positive.
# XLog = false
# FLog = false`

type TableConfig struct {
	File        string
	Arg, Val    []float64
	Interpolant string
	XLog, FLog  bool
}

type TableWrapper struct {
	Table TableConfig
}

// load builds a table out of the parsed config file, enforcing that
// exactly one of the two sample sources was given.
func (con *TableConfig) load() (*lookup.Table, error) {
	inline := len(con.Arg) > 0 || len(con.Val) > 0
	if con.File != "" && inline {
		return nil, &lookup.ConfigError{
			Msg: "Config file sets both File and inline Arg/Val samples.",
		}
	}
	if con.File == "" && !inline {
		return nil, &lookup.ConfigError{
			Msg: "Config file sets neither File nor inline Arg/Val samples.",
		}
	}

	interp := lookup.Linear
	if con.Interpolant != "" {
		var err error
		interp, err = lookup.ParseInterpolant(con.Interpolant)
		if err != nil { return nil, err }
	}

	if con.File != "" {
		t, err := lookup.ReadTable(con.File, interp)
		if err != nil || (!con.XLog && !con.FLog) { return t, err }
		return lookup.NewLog(t.Args(), t.Vals(), interp, con.XLog, con.FLog)
	}
	return lookup.NewLog(con.Arg, con.Val, interp, con.XLog, con.FLog)
}

func main() {
	var configPath string
	var exampleConfig bool

	flag.StringVar(&configPath, "Config", "",
		"Path to a table config file.")
	flag.BoolVar(&exampleConfig, "ExampleConfig", false,
		"Print an example config file and exit.")
	flag.Parse()

	if exampleConfig {
		fmt.Println(ExampleTableFile)
		return
	}

	if configPath == "" {
		log.Fatalf("Usage: $ tabeval -Config table.config x1 [x2 ...]")
	}
	if len(flag.Args()) == 0 {
		log.Fatalf("No evaluation points given.")
	}

	wrap := &TableWrapper{}
	if err := gcfg.ReadFileInto(wrap, configPath); err != nil {
		log.Fatal(err.Error())
	}
	t, err := wrap.Table.load()
	if err != nil { log.Fatal(err.Error()) }

	xs := make([]float64, len(flag.Args()))
	for i, arg := range flag.Args() {
		x, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			log.Fatalf("Could not parse evaluation point '%s'.", arg)
		}
		xs[i] = x
	}

	ys, err := t.EvalAll(xs)
	if err != nil { log.Fatal(err.Error()) }
	for i := range xs {
		fmt.Printf("%g %g\n", xs[i], ys[i])
	}
}

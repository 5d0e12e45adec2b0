package lookup

import (
	"fmt"

	"github.com/phil-mansfield/table"
)

// ReadTable loads a Table from a whitespace separated text file. The first
// column holds the domain samples and the second holds the function
// values.
func ReadTable(path string, interp Interpolant) (*Table, error) {
	cols, err := table.ReadTable(path, []int{0, 1}, nil)
	if err != nil {
		return nil, &ConfigError{fmt.Sprintf(
			"Could not read table from '%s': %s", path, err.Error(),
		)}
	}
	return New(cols[0], cols[1], interp)
}

// ReadTableWeights loads a Table from a three column text file whose
// columns hold the domain samples, the function values, and per-sample
// error weights, in that order. The weights do not affect interpolation;
// they are returned for callers that fit or rescale the tabulated data.
func ReadTableWeights(
	path string, interp Interpolant,
) (*Table, []float64, error) {
	cols, err := table.ReadTable(path, []int{0, 1, 2}, nil)
	if err != nil {
		return nil, nil, &ConfigError{fmt.Sprintf(
			"Could not read table from '%s': %s", path, err.Error(),
		)}
	}
	t, err := New(cols[0], cols[1], interp)
	if err != nil {
		return nil, nil, err
	}
	return t, cols[2], nil
}

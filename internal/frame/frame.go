// Package frame provides the column-ordered tabular input form accepted by
// the prediction API. A frame is split into one Nx1 array per column before
// being handed to a backend, preserving the declared column order.
package frame

import (
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrColumnCountMismatch = errors.New("frame: column count does not match column names")
	ErrRaggedColumns       = errors.New("frame: columns have differing lengths")
)

// Frame is a rectangular, column-ordered table of float64 values.
type Frame struct {
	names []string
	cols  [][]float64
	rows  int
}

// New creates a frame from named columns. All columns must have equal length.
func New(names []string, cols [][]float64) (*Frame, error) {
	if len(names) != len(cols) {
		return nil, fmt.Errorf("%w: %d names, %d columns", ErrColumnCountMismatch, len(names), len(cols))
	}

	rows := 0
	if len(cols) > 0 {
		rows = len(cols[0])
	}
	for i, col := range cols {
		if len(col) != rows {
			return nil, fmt.Errorf("%w: column %q has %d rows, expected %d", ErrRaggedColumns, names[i], len(col), rows)
		}
	}

	copied := make([][]float64, len(cols))
	for i, col := range cols {
		copied[i] = slices.Clone(col)
	}

	return &Frame{
		names: slices.Clone(names),
		cols:  copied,
		rows:  rows,
	}, nil
}

// Names returns the column names in declared order.
func (f *Frame) Names() []string {
	return slices.Clone(f.names)
}

// Rows returns the number of rows.
func (f *Frame) Rows() int {
	return f.rows
}

// Cols returns the number of columns.
func (f *Frame) Cols() int {
	return len(f.cols)
}

// Split returns one Nx1 matrix per column, in declared column order.
// Each column becomes one logical backend input.
func (f *Frame) Split() []*mat.Dense {
	out := make([]*mat.Dense, len(f.cols))
	for i, col := range f.cols {
		out[i] = mat.NewDense(f.rows, 1, slices.Clone(col))
	}

	return out
}

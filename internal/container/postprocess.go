package container

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// selectOutput picks one declared output from the raw backend result.
// Construction guarantees the declared count; a backend returning fewer
// arrays than declared is an engine contract violation, reported as such.
func selectOutput(outputs []*mat.Dense, i int) (*mat.Dense, error) {
	if i >= len(outputs) {
		return nil, fmt.Errorf("container: backend returned %d outputs, need output %d", len(outputs), i)
	}

	return outputs[i], nil
}

// flatten materializes a matrix as a one-dimensional host array in row-major
// order.
func flatten(m *mat.Dense) []float64 {
	r, c := m.Dims()
	out := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		out = append(out, m.RawRowView(i)...)
	}

	return out
}

// Package adapter normalizes caller-supplied inputs into the form a specific
// backend requires: ordered device tensors for the in-process backend, a
// named host-array set for the portable backend.
//
// The adapter performs no shape, rank or dtype-range validation; rejecting
// malformed tensors is the backend engine's responsibility.
package adapter

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/ekisa-team/tensorbridge/internal/frame"
	"github.com/ekisa-team/tensorbridge/internal/tensor"
)

// ForInProcess converts raw positional inputs into the ordered tensor
// arguments the in-process backend expects. A single tabular frame is first
// split into one Nx1 column per declared column, preserving column order.
// Converted tensors are transferred to device when it is set and not the
// default compute device.
func ForInProcess(device tensor.Device, raw ...any) ([]*tensor.Tensor, error) {
	items := expandFrame(raw)

	out := make([]*tensor.Tensor, len(items))
	for i, v := range items {
		t, err := coerceTensor(i, v)
		if err != nil {
			return nil, err
		}

		if device != "" && device != tensor.DeviceCPU {
			t = t.To(device)
		}

		out[i] = t
	}

	return out, nil
}

// ForPortable converts raw positional inputs into the named input set the
// portable backend expects, keyed by the session's declared input names in
// positional order.
//
// When fewer positional inputs arrive than there are declared names, the
// caller is assumed to have passed a single pre-grouped collection, which is
// unwrapped one level. After unwrapping the input count must equal the
// declared name count exactly.
func ForPortable(inputNames []string, raw ...any) (map[string]*mat.Dense, error) {
	items := expandFrame(raw)

	if len(items) < len(inputNames) && len(items) == 1 {
		items = unwrap(items[0])
	}

	if len(items) != len(inputNames) {
		return nil, fmt.Errorf("%w: got %d inputs for %d declared names",
			ErrInputArityMismatch, len(items), len(inputNames))
	}

	named := make(map[string]*mat.Dense, len(items))
	for i, v := range items {
		m, err := coerceDense(i, v)
		if err != nil {
			return nil, err
		}

		named[inputNames[i]] = m
	}

	return named, nil
}

// expandFrame splits a single tabular frame into per-column inputs.
func expandFrame(raw []any) []any {
	if len(raw) != 1 {
		return raw
	}

	f, ok := raw[0].(*frame.Frame)
	if !ok {
		return raw
	}

	cols := f.Split()
	items := make([]any, len(cols))
	for i, col := range cols {
		items[i] = col
	}

	return items
}

// unwrap flattens one level of a pre-grouped input collection.
func unwrap(v any) []any {
	switch group := v.(type) {
	case []any:
		return group
	case []*mat.Dense:
		items := make([]any, len(group))
		for i, m := range group {
			items[i] = m
		}
		return items
	case []*tensor.Tensor:
		items := make([]any, len(group))
		for i, t := range group {
			items[i] = t
		}
		return items
	case [][]float64:
		items := make([]any, len(group))
		for i, col := range group {
			items[i] = col
		}
		return items
	default:
		return []any{v}
	}
}

// coerceTensor maps one positional input to the in-process native tensor
// representation with floating-point elements.
func coerceTensor(i int, v any) (*tensor.Tensor, error) {
	switch in := v.(type) {
	case *tensor.Tensor:
		return in, nil
	case *mat.Dense:
		return tensor.FromDense(in), nil
	case []float64:
		if len(in) == 0 {
			return nil, fmt.Errorf("%w: input %d is an empty array", ErrUnsupportedInputType, i)
		}
		return tensor.FromSlice(in, len(in))
	case [][]float64:
		m, err := denseFromRows(i, in)
		if err != nil {
			return nil, err
		}
		return tensor.FromDense(m), nil
	default:
		return nil, fmt.Errorf("%w: input %d has type %T", ErrUnsupportedInputType, i, v)
	}
}

// coerceDense maps one positional input to a host-resident array for the
// portable backend. Device tensors are moved back to the host first.
func coerceDense(i int, v any) (*mat.Dense, error) {
	switch in := v.(type) {
	case *mat.Dense:
		return in, nil
	case *tensor.Tensor:
		return in.Host().Dense(), nil
	case []float64:
		t, err := tensor.FromColumn(in)
		if err != nil {
			return nil, fmt.Errorf("%w: input %d is an empty array", ErrUnsupportedInputType, i)
		}
		return t.Dense(), nil
	case [][]float64:
		return denseFromRows(i, in)
	default:
		return nil, fmt.Errorf("%w: input %d has type %T", ErrUnsupportedInputType, i, v)
	}
}

func denseFromRows(i int, rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: input %d is an empty array", ErrUnsupportedInputType, i)
	}

	c := len(rows[0])
	for _, row := range rows[1:] {
		if len(row) != c {
			return nil, fmt.Errorf("%w: input %d has ragged rows", ErrUnsupportedInputType, i)
		}
	}

	m := mat.NewDense(len(rows), c, nil)
	for j, row := range rows {
		m.SetRow(j, row)
	}

	return m, nil
}

// Package tensor holds the native value representation of the in-process
// tensor-compute runtime: dense float64 tensors with an explicit device tag.
//
// The package also owns the runtime's process-wide execution state (thread
// counts, gradient tracking). That state is intentionally global: it mirrors
// the semantics of the underlying compute runtime, where thread configuration
// applies to the whole process and not to a single session.
package tensor

import (
	"fmt"
	"slices"
	"sync/atomic"

	"gonum.org/v1/gonum/mat"
)

// Device identifies where a tensor's storage lives.
type Device string

const (
	// DeviceCPU is the default compute device. Tensors on the CPU are
	// host-resident and can be materialized as plain arrays directly.
	DeviceCPU Device = "cpu"

	// DeviceCUDA marks storage on a CUDA accelerator. Such tensors must be
	// moved back to the CPU before their values can be read.
	DeviceCUDA Device = "cuda"
)

// Process-wide runtime state. NumThreads 0 means "use all threads".
var (
	numThreads        atomic.Int64
	numInteropThreads atomic.Int64
	gradDisabled      atomic.Bool
)

// SetNumThreads fixes the intra-op thread count of the compute runtime.
//
// This mutates process-wide state: constructing a second container with a
// different thread count changes the effective concurrency of every
// previously built in-process container. Accepted limitation.
func SetNumThreads(n int) {
	numThreads.Store(int64(n))
}

// NumThreads returns the configured intra-op thread count (0 = all threads).
func NumThreads() int {
	return int(numThreads.Load())
}

// SetNumInteropThreads fixes the inter-op thread count of the compute runtime.
// Same process-wide caveat as SetNumThreads.
func SetNumInteropThreads(n int) {
	numInteropThreads.Store(int64(n))
}

// NumInteropThreads returns the configured inter-op thread count
// (0 = runtime default).
func NumInteropThreads() int {
	return int(numInteropThreads.Load())
}

// SetGradEnabled toggles gradient tracking for subsequent graph executions
// and returns the previous setting. Inference paths disable tracking for the
// duration of a call and restore the previous value afterwards.
func SetGradEnabled(on bool) bool {
	return !gradDisabled.Swap(!on)
}

// GradEnabled reports whether gradient tracking is currently enabled.
// Graph implementations consult this before retaining any autograd state.
func GradEnabled() bool {
	return !gradDisabled.Load()
}

// Tensor is a dense tensor in row-major order. The zero value is not usable;
// construct tensors through New, FromSlice, FromColumn or FromDense.
//
// Tensor is not safe for concurrent mutation. The prediction layer treats
// tensors as immutable once handed to a backend.
type Tensor struct {
	data   []float64
	shape  []int
	device Device
}

// New creates a zero-filled CPU tensor with the given shape.
func New(shape ...int) (*Tensor, error) {
	size, err := sizeOf(shape)
	if err != nil {
		return nil, err
	}

	return &Tensor{
		data:   make([]float64, size),
		shape:  slices.Clone(shape),
		device: DeviceCPU,
	}, nil
}

// FromSlice creates a CPU tensor wrapping a copy of data with the given shape.
func FromSlice(data []float64, shape ...int) (*Tensor, error) {
	size, err := sizeOf(shape)
	if err != nil {
		return nil, err
	}
	if size != len(data) {
		return nil, fmt.Errorf("tensor: shape %v does not match %d elements", shape, len(data))
	}

	return &Tensor{
		data:   slices.Clone(data),
		shape:  slices.Clone(shape),
		device: DeviceCPU,
	}, nil
}

// FromColumn creates an Nx1 CPU tensor from a single column of values.
// An empty column is rejected, tensors always have at least one element.
func FromColumn(col []float64) (*Tensor, error) {
	return FromSlice(col, len(col), 1)
}

// FromDense creates a CPU tensor from a gonum matrix. Values are copied.
func FromDense(m *mat.Dense) *Tensor {
	r, c := m.Dims()
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		data = append(data, m.RawRowView(i)...)
	}

	return &Tensor{
		data:   data,
		shape:  []int{r, c},
		device: DeviceCPU,
	}
}

// Shape returns a copy of the tensor's dimensions.
func (t *Tensor) Shape() []int {
	return slices.Clone(t.shape)
}

// Rows returns the leading dimension.
func (t *Tensor) Rows() int {
	return t.shape[0]
}

// Len returns the total number of elements.
func (t *Tensor) Len() int {
	return len(t.data)
}

// Device returns the device the tensor's storage lives on.
func (t *Tensor) Device() Device {
	return t.device
}

// To returns a tensor with the same values placed on the given device.
// Transfers to the current device return the receiver unchanged.
func (t *Tensor) To(device Device) *Tensor {
	if device == t.device {
		return t
	}

	return &Tensor{
		data:   slices.Clone(t.data),
		shape:  slices.Clone(t.shape),
		device: device,
	}
}

// Host moves the tensor to the CPU.
func (t *Tensor) Host() *Tensor {
	return t.To(DeviceCPU)
}

// SliceRows returns a CPU-shaped view copy of rows [from, to) along the
// leading dimension, used for batched scoring.
func (t *Tensor) SliceRows(from, to int) (*Tensor, error) {
	if from < 0 || to > t.shape[0] || from >= to {
		return nil, fmt.Errorf("tensor: row slice [%d, %d) out of range for %d rows", from, to, t.shape[0])
	}

	stride := len(t.data) / t.shape[0]
	shape := slices.Clone(t.shape)
	shape[0] = to - from

	return &Tensor{
		data:   slices.Clone(t.data[from*stride : to*stride]),
		shape:  shape,
		device: t.device,
	}, nil
}

// Dense materializes the tensor as a gonum matrix. One-dimensional tensors
// become Nx1 columns. The tensor must already be host-resident; reading
// device memory directly is a programmer bug, not a runtime condition.
func (t *Tensor) Dense() *mat.Dense {
	if t.device != DeviceCPU {
		panic(fmt.Sprintf("tensor: Dense called on %s tensor, move it to the host first", t.device))
	}

	rows := t.shape[0]
	cols := 1
	if len(t.shape) > 1 {
		cols = len(t.data) / rows
	}

	return mat.NewDense(rows, cols, slices.Clone(t.data))
}

// Float64s returns a copy of the flattened element values.
// The tensor must be host-resident.
func (t *Tensor) Float64s() []float64 {
	if t.device != DeviceCPU {
		panic(fmt.Sprintf("tensor: Float64s called on %s tensor, move it to the host first", t.device))
	}

	return slices.Clone(t.data)
}

func sizeOf(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, fmt.Errorf("tensor: shape cannot be empty")
	}

	size := 1
	for i, dim := range shape {
		if dim <= 0 {
			return 0, fmt.Errorf("tensor: shape[%d] must be positive, got %d", i, dim)
		}
		size *= dim
	}

	return size, nil
}

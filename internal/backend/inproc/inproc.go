// Package inproc is the in-process tensor-compute backend. It wraps an
// executable computation graph produced by model conversion and runs it
// directly, with gradient tracking disabled for the duration of each call.
package inproc

import (
	"context"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/ekisa-team/tensorbridge/internal/backend"
	"github.com/ekisa-team/tensorbridge/internal/tensor"
)

// Graph is the executable in-process computation graph handed over by the
// conversion pipeline. Implementations own all numeric computation; this
// layer only dispatches into them.
type Graph interface {
	// InputNames returns the graph's declared input names, in order.
	InputNames() []string

	// OutputNames returns the graph's declared output names, in order.
	OutputNames() []string

	// Device returns the device the graph's parameters live on. Inputs are
	// expected on the same device.
	Device() tensor.Device

	// Forward executes the graph on ordered tensor arguments.
	Forward(ctx context.Context, inputs ...*tensor.Tensor) ([]*tensor.Tensor, error)
}

// Backend wraps a Graph behind the backend.Backend capability.
type Backend struct {
	graph   Graph
	inputs  []string
	outputs []string
}

// New wraps a graph and applies the resource configuration to the compute
// runtime before first use.
//
// The thread settings are process-wide: building a second backend with a
// different thread count changes the effective concurrency of every existing
// one. Accepted limitation of the underlying runtime, documented rather than
// serialized away.
func New(graph Graph, res backend.ResourceConfig) (*Backend, error) {
	if graph == nil {
		return nil, fmt.Errorf("inproc: graph artifact is nil")
	}

	// Operators of converted graphs execute sequentially; inter-op
	// parallelism only adds scheduling overhead.
	if tensor.NumInteropThreads() != 1 {
		tensor.SetNumInteropThreads(1)
	}
	if res.Threads > 0 {
		tensor.SetNumThreads(res.Threads)
	}

	return &Backend{
		graph:   graph,
		inputs:  slices.Clone(graph.InputNames()),
		outputs: slices.Clone(graph.OutputNames()),
	}, nil
}

// Kind returns the backend identifier.
func (b *Backend) Kind() backend.Kind {
	return backend.KindInProcess
}

// InputNames returns the graph's declared input names.
func (b *Backend) InputNames() []string {
	return slices.Clone(b.inputs)
}

// OutputNames returns the graph's declared output names.
func (b *Backend) OutputNames() []string {
	return slices.Clone(b.outputs)
}

// Device returns the graph's target device, consulted by the input adapter
// when transferring converted tensors.
func (b *Backend) Device() tensor.Device {
	return b.graph.Device()
}

// Run executes the graph on ordered tensor arguments. Gradient tracking is
// disabled for the duration of the call and outputs are moved to host memory
// before being returned as plain arrays.
func (b *Backend) Run(ctx context.Context, in backend.Inputs) ([]*mat.Dense, error) {
	prev := tensor.SetGradEnabled(false)
	defer tensor.SetGradEnabled(prev)

	outs, err := b.graph.Forward(ctx, in.Ordered...)
	if err != nil {
		return nil, fmt.Errorf("inproc: graph execution failed: %w", err)
	}

	arrays := make([]*mat.Dense, len(outs))
	for i, t := range outs {
		arrays[i] = t.Host().Dense()
	}

	return arrays, nil
}

// Close releases the backend. The graph has no session state of its own.
func (b *Backend) Close() error {
	return nil
}

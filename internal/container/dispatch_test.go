package container

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/ekisa-team/tensorbridge/internal/backend"
	"github.com/ekisa-team/tensorbridge/internal/backend/inproc"
	"github.com/ekisa-team/tensorbridge/internal/tensor"
)

// deviceGraph echoes its inputs on its own device and records the device of
// every argument it was handed.
type deviceGraph struct {
	device tensor.Device
	seen   []tensor.Device
}

func (g *deviceGraph) InputNames() []string  { return []string{"input"} }
func (g *deviceGraph) OutputNames() []string { return []string{"output"} }
func (g *deviceGraph) Device() tensor.Device { return g.device }

func (g *deviceGraph) Forward(_ context.Context, inputs ...*tensor.Tensor) ([]*tensor.Tensor, error) {
	outs := make([]*tensor.Tensor, len(inputs))
	for i, in := range inputs {
		g.seen = append(g.seen, in.Device())
		outs[i] = in.To(g.device)
	}
	return outs, nil
}

func TestTransformer_InProcessDispatch(t *testing.T) {
	graph := &deviceGraph{device: tensor.DeviceCUDA}
	b, err := inproc.New(graph, backend.ResourceConfig{})
	require.NoError(t, err)

	tr, err := NewTransformer(b, backend.ResourceConfig{}, nil)
	require.NoError(t, err)

	in := mat.NewDense(5, 2, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	out, err := tr.Transform(context.Background(), in)
	require.NoError(t, err)

	// The matrix argument was coerced to an ordered tensor and moved to the
	// graph's device before Forward ran; the output came back hosted.
	require.Len(t, graph.seen, 1)
	assert.Equal(t, tensor.DeviceCUDA, graph.seen[0])
	assert.True(t, mat.Equal(in, out))
}

func TestRegressor_InProcessDispatch(t *testing.T) {
	graph := &deviceGraph{device: tensor.DeviceCPU}
	b, err := inproc.New(graph, backend.ResourceConfig{})
	require.NoError(t, err)

	r, err := NewRegressor(b, backend.ResourceConfig{}, nil)
	require.NoError(t, err)

	got, err := r.Predict(context.Background(), []float64{1.5, 2.5, 3.5})
	require.NoError(t, err)

	require.Len(t, graph.seen, 1)
	assert.Equal(t, tensor.DeviceCPU, graph.seen[0])
	assert.Equal(t, []float64{1.5, 2.5, 3.5}, got)
}

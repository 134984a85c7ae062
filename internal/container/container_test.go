package container

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/ekisa-team/tensorbridge/internal/backend"
)

// fakeBackend is a deterministic portable-kind backend: run maps the adapted
// named inputs to canned or derived outputs.
type fakeBackend struct {
	kind    backend.Kind
	inputs  []string
	outputs []string
	run     func(in backend.Inputs) []*mat.Dense
	calls   int
}

func (b *fakeBackend) Kind() backend.Kind    { return b.kind }
func (b *fakeBackend) InputNames() []string  { return b.inputs }
func (b *fakeBackend) OutputNames() []string { return b.outputs }
func (b *fakeBackend) Close() error          { return nil }

func (b *fakeBackend) Run(_ context.Context, in backend.Inputs) ([]*mat.Dense, error) {
	b.calls++
	return b.run(in), nil
}

// echoBackend returns its single named input unchanged.
func echoBackend() *fakeBackend {
	return &fakeBackend{
		kind:    backend.KindPortable,
		inputs:  []string{"x"},
		outputs: []string{"y"},
		run: func(in backend.Inputs) []*mat.Dense {
			return []*mat.Dense{mat.DenseCopyOf(in.Named["x"])}
		},
	}
}

func twoOutputBackend(labels, scores []float64) *fakeBackend {
	return &fakeBackend{
		kind:    backend.KindPortable,
		inputs:  []string{"x"},
		outputs: []string{"label", "score"},
		run: func(in backend.Inputs) []*mat.Dense {
			return []*mat.Dense{
				mat.NewDense(len(labels), 1, labels),
				mat.NewDense(len(scores), 1, scores),
			}
		},
	}
}

func TestConstructionInvariants(t *testing.T) {
	one := echoBackend()
	two := twoOutputBackend([]float64{1}, []float64{1})
	res := backend.ResourceConfig{}

	// One-output modes reject two-output backends and vice versa, at
	// construction, never on first call.
	_, err := NewTransformer(two, res, nil)
	assert.ErrorIs(t, err, ErrOutputCount)

	_, err = NewRegressor(two, res, nil)
	assert.ErrorIs(t, err, ErrOutputCount)

	_, err = NewClassifier(one, res, nil)
	assert.ErrorIs(t, err, ErrOutputCount)

	_, err = NewAnomalyDetector(one, res, nil)
	assert.ErrorIs(t, err, ErrOutputCount)

	_, err = NewTransformer(one, res, nil)
	assert.NoError(t, err)

	_, err = NewClassifier(two, res, nil)
	assert.NoError(t, err)
}

func TestParseTaskMode(t *testing.T) {
	mode, err := ParseTaskMode("anomaly_detector")
	require.NoError(t, err)
	assert.Equal(t, TaskAnomalyDetector, mode)

	_, err = ParseTaskMode("clusterer")
	assert.ErrorIs(t, err, ErrUnknownTaskMode)
}

func TestFactory(t *testing.T) {
	c, err := New(TaskTransformer, echoBackend(), backend.ResourceConfig{}, nil)
	require.NoError(t, err)
	assert.IsType(t, &Transformer{}, c)
	assert.Equal(t, TaskTransformer, c.Mode())

	c, err = New(TaskAnomalyDetector, twoOutputBackend([]float64{1}, []float64{1}), backend.ResourceConfig{}, nil)
	require.NoError(t, err)
	assert.IsType(t, &AnomalyDetector{}, c)

	_, err = New(TaskMode("clusterer"), echoBackend(), backend.ResourceConfig{}, nil)
	assert.ErrorIs(t, err, ErrUnknownTaskMode)
}

func TestTransformer_LeadingDimension(t *testing.T) {
	tr, err := NewTransformer(echoBackend(), backend.ResourceConfig{}, nil)
	require.NoError(t, err)

	in := mat.NewDense(10, 3, nil)
	for i := 0; i < 10; i++ {
		in.SetRow(i, []float64{float64(i), float64(i) * 2, float64(i) * 3})
	}

	out, err := tr.Transform(context.Background(), in)
	require.NoError(t, err)

	r, c := out.Dims()
	assert.Equal(t, 10, r)
	assert.Equal(t, 3, c)
	assert.True(t, mat.Equal(in, out))
}

func TestTransformer_Idempotent(t *testing.T) {
	tr, err := NewTransformer(echoBackend(), backend.ResourceConfig{}, nil)
	require.NoError(t, err)

	in := mat.NewDense(4, 2, []float64{1, 2, 3, 4, 5, 6, 7, 8})

	first, err := tr.Transform(context.Background(), in)
	require.NoError(t, err)
	second, err := tr.Transform(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRegressor_PredictFlattens(t *testing.T) {
	r, err := NewRegressor(echoBackend(), backend.ResourceConfig{}, nil)
	require.NoError(t, err)

	got, err := r.Predict(context.Background(), mat.NewDense(3, 1, []float64{1.5, 2.5, 3.5}))
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2.5, 3.5}, got)
}

func TestClassifier_OutputSelection(t *testing.T) {
	b := twoOutputBackend([]float64{0, 1, 1}, []float64{0.1, 0.9, 0.8})
	cl, err := NewClassifier(b, backend.ResourceConfig{}, nil)
	require.NoError(t, err)

	labels, err := cl.Predict(context.Background(), mat.NewDense(3, 1, []float64{1, 2, 3}))
	require.NoError(t, err)
	r, c := labels.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 1, c)
	assert.Equal(t, 1.0, labels.At(1, 0))

	proba, err := cl.PredictProba(context.Background(), mat.NewDense(3, 1, []float64{1, 2, 3}))
	require.NoError(t, err)
	assert.Equal(t, 0.9, proba.At(1, 0))
}

func TestBatchedScoring(t *testing.T) {
	b := echoBackend()
	tr, err := NewTransformer(b, backend.ResourceConfig{BatchSize: 4}, nil)
	require.NoError(t, err)

	in := mat.NewDense(10, 2, nil)
	for i := 0; i < 10; i++ {
		in.SetRow(i, []float64{float64(i), float64(-i)})
	}

	out, err := tr.Transform(context.Background(), in)
	require.NoError(t, err)

	// 10 rows in partitions of 4: three backend calls, stacked back in order.
	assert.Equal(t, 3, b.calls)
	assert.True(t, mat.Equal(in, out))
}

func TestBatchedScoring_SmallInputSingleCall(t *testing.T) {
	b := echoBackend()
	tr, err := NewTransformer(b, backend.ResourceConfig{BatchSize: 64}, nil)
	require.NoError(t, err)

	_, err = tr.Transform(context.Background(), mat.NewDense(8, 1, nil))
	require.NoError(t, err)
	assert.Equal(t, 1, b.calls)
}

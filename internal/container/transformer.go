package container

import (
	"context"

	"gonum.org/v1/gonum/mat"

	"github.com/ekisa-team/tensorbridge/internal/backend"
)

// Transformer is the container variant for data transformers. Its single
// operation returns the transformed data unchanged.
type Transformer struct {
	base
}

// NewTransformer builds a transformer container. The backend must declare
// exactly one output.
func NewTransformer(b backend.Backend, res backend.ResourceConfig, extra ExtraConfig) (*Transformer, error) {
	if err := requireOutputs(b, TaskTransformer, 1); err != nil {
		return nil, err
	}

	return &Transformer{base: newBase(b, res, extra)}, nil
}

// Mode returns TaskTransformer.
func (t *Transformer) Mode() TaskMode {
	return TaskTransformer
}

// Transform runs the model and returns the transformed output data as a
// host-resident array.
func (t *Transformer) Transform(ctx context.Context, inputs ...any) (*mat.Dense, error) {
	outs, err := t.run(ctx, inputs)
	if err != nil {
		return nil, err
	}

	return selectOutput(outs, 0)
}

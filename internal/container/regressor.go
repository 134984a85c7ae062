package container

import (
	"context"

	"github.com/ekisa-team/tensorbridge/internal/backend"
)

// Regressor is the container variant for regression models.
type Regressor struct {
	base
}

// NewRegressor builds a regressor container. In pure regression mode the
// backend must declare exactly one output.
func NewRegressor(b backend.Backend, res backend.ResourceConfig, extra ExtraConfig) (*Regressor, error) {
	if err := requireOutputs(b, TaskRegressor, 1); err != nil {
		return nil, err
	}

	return &Regressor{base: newBase(b, res, extra)}, nil
}

// Mode returns TaskRegressor.
func (r *Regressor) Mode() TaskMode {
	return TaskRegressor
}

// Predict returns the predicted values, flattened to one dimension.
func (r *Regressor) Predict(ctx context.Context, inputs ...any) ([]float64, error) {
	outs, err := r.run(ctx, inputs)
	if err != nil {
		return nil, err
	}

	out, err := selectOutput(outs, 0)
	if err != nil {
		return nil, err
	}

	return flatten(out), nil
}

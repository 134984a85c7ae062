package container

import (
	"context"

	"gonum.org/v1/gonum/mat"

	"github.com/ekisa-team/tensorbridge/internal/backend"
)

// Classifier is the container variant for classification models. The backend
// declares two outputs: predicted labels first, class probabilities second.
type Classifier struct {
	base
}

// NewClassifier builds a classifier container. The backend must declare
// exactly two outputs.
func NewClassifier(b backend.Backend, res backend.ResourceConfig, extra ExtraConfig) (*Classifier, error) {
	if err := requireOutputs(b, TaskClassifier, 2); err != nil {
		return nil, err
	}

	return &Classifier{base: newBase(b, res, extra)}, nil
}

// Mode returns TaskClassifier.
func (c *Classifier) Mode() TaskMode {
	return TaskClassifier
}

// Predict returns the predicted class labels for the input data.
func (c *Classifier) Predict(ctx context.Context, inputs ...any) (*mat.Dense, error) {
	outs, err := c.run(ctx, inputs)
	if err != nil {
		return nil, err
	}

	return selectOutput(outs, 0)
}

// PredictProba returns the probability estimates.
func (c *Classifier) PredictProba(ctx context.Context, inputs ...any) (*mat.Dense, error) {
	outs, err := c.run(ctx, inputs)
	if err != nil {
		return nil, err
	}

	return selectOutput(outs, 1)
}

package container

import (
	"context"

	"gonum.org/v1/gonum/floats"

	"github.com/ekisa-team/tensorbridge/internal/backend"
)

// AnomalyDetector is the container variant for anomaly detection models
// (isolation forests and the like). The backend declares two outputs:
// predicted classes first, decision scores second.
type AnomalyDetector struct {
	base
}

// NewAnomalyDetector builds an anomaly detection container. The backend must
// declare exactly two outputs.
func NewAnomalyDetector(b backend.Backend, res backend.ResourceConfig, extra ExtraConfig) (*AnomalyDetector, error) {
	if err := requireOutputs(b, TaskAnomalyDetector, 2); err != nil {
		return nil, err
	}

	return &AnomalyDetector{base: newBase(b, res, extra)}, nil
}

// Mode returns TaskAnomalyDetector.
func (d *AnomalyDetector) Mode() TaskMode {
	return TaskAnomalyDetector
}

// Predict returns the predicted classes (-1 or 1), flattened to one
// dimension.
func (d *AnomalyDetector) Predict(ctx context.Context, inputs ...any) ([]float64, error) {
	outs, err := d.run(ctx, inputs)
	if err != nil {
		return nil, err
	}

	out, err := selectOutput(outs, 0)
	if err != nil {
		return nil, err
	}

	return flatten(out), nil
}

// DecisionFunction returns the decision scores, flattened to one dimension.
// When the score-shift key is present in the extra configuration, its value
// is added to every score; this reproduces the scoring convention of older
// estimator versions and is skipped entirely when the key is absent.
func (d *AnomalyDetector) DecisionFunction(ctx context.Context, inputs ...any) ([]float64, error) {
	outs, err := d.run(ctx, inputs)
	if err != nil {
		return nil, err
	}

	out, err := selectOutput(outs, 1)
	if err != nil {
		return nil, err
	}

	scores := flatten(out)
	if shift, ok := d.extra.lookupFloat(KeyScoreShift); ok {
		floats.AddConst(shift, scores)
	}

	return scores, nil
}

// ScoreSamples returns the decision scores plus the configured score offset.
// Unlike the shift applied by DecisionFunction, the offset key is required:
// a missing key is a lookup failure, not a no-op.
func (d *AnomalyDetector) ScoreSamples(ctx context.Context, inputs ...any) ([]float64, error) {
	offset, err := d.extra.requireFloat(KeyScoreOffset)
	if err != nil {
		return nil, err
	}

	scores, err := d.DecisionFunction(ctx, inputs...)
	if err != nil {
		return nil, err
	}

	floats.AddConst(offset, scores)

	return scores, nil
}

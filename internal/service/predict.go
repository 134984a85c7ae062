// Package service exposes the uniform prediction API over the container
// registry: callers address containers by ID and operation, and operations
// outside a container's task-mode contract are rejected immediately.
package service

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/ekisa-team/tensorbridge/internal/container"
	"github.com/ekisa-team/tensorbridge/internal/model"
)

// Predictor is the service abstraction for prediction calls.
type Predictor struct {
	containers *model.Registry
}

// NewPredictor creates a new Predictor service.
func NewPredictor(containers *model.Registry) *Predictor {
	return &Predictor{
		containers: containers,
	}
}

// Transform runs the transform operation of a transformer container.
func (s *Predictor) Transform(ctx context.Context, id string, inputs ...any) (*mat.Dense, error) {
	c, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	t, ok := c.(*container.Transformer)
	if !ok {
		return nil, s.reject("transform", c)
	}

	return t.Transform(ctx, inputs...)
}

// Predict runs the predict operation of a regressor, classifier or anomaly
// detection container. The result type follows the task mode: []float64 for
// regressors and anomaly detectors (flattened values or -1/1 classes),
// *mat.Dense for classifiers (unflattened labels).
func (s *Predictor) Predict(ctx context.Context, id string, inputs ...any) (any, error) {
	c, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	switch v := c.(type) {
	case *container.Regressor:
		return v.Predict(ctx, inputs...)
	case *container.Classifier:
		return v.Predict(ctx, inputs...)
	case *container.AnomalyDetector:
		return v.Predict(ctx, inputs...)
	default:
		return nil, s.reject("predict", c)
	}
}

// PredictProba runs the predict-proba operation of a classifier container.
func (s *Predictor) PredictProba(ctx context.Context, id string, inputs ...any) (*mat.Dense, error) {
	c, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	cl, ok := c.(*container.Classifier)
	if !ok {
		return nil, s.reject("predict_proba", c)
	}

	return cl.PredictProba(ctx, inputs...)
}

// DecisionFunction runs the decision-function operation of an anomaly
// detection container.
func (s *Predictor) DecisionFunction(ctx context.Context, id string, inputs ...any) ([]float64, error) {
	c, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	d, ok := c.(*container.AnomalyDetector)
	if !ok {
		return nil, s.reject("decision_function", c)
	}

	return d.DecisionFunction(ctx, inputs...)
}

// ScoreSamples runs the score-samples operation of an anomaly detection
// container.
func (s *Predictor) ScoreSamples(ctx context.Context, id string, inputs ...any) ([]float64, error) {
	c, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	d, ok := c.(*container.AnomalyDetector)
	if !ok {
		return nil, s.reject("score_samples", c)
	}

	return d.ScoreSamples(ctx, inputs...)
}

func (s *Predictor) lookup(id string) (container.Container, error) {
	instance, ok := s.containers.Get(id)
	if !ok || instance.Container == nil {
		return nil, model.ErrNotFound
	}

	return instance.Container, nil
}

func (s *Predictor) reject(op string, c container.Container) error {
	return fmt.Errorf("%w: %s on %s container", ErrUnsupportedOperation, op, c.Mode())
}

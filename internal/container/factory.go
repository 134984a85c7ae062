package container

import (
	"fmt"

	"github.com/ekisa-team/tensorbridge/internal/backend"
)

// New assembles the container variant for the given task mode. The mode and
// backend pairing is fixed for the container's lifetime.
func New(mode TaskMode, b backend.Backend, res backend.ResourceConfig, extra ExtraConfig) (Container, error) {
	switch mode {
	case TaskTransformer:
		return NewTransformer(b, res, extra)
	case TaskRegressor:
		return NewRegressor(b, res, extra)
	case TaskClassifier:
		return NewClassifier(b, res, extra)
	case TaskAnomalyDetector:
		return NewAnomalyDetector(b, res, extra)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTaskMode, mode)
	}
}

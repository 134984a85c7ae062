package container

import (
	"fmt"
	"maps"
)

// Well-known ExtraConfig keys, fixed constants shared with the conversion
// pipeline that produces the artifact.
const (
	// KeyScoreShift holds the scalar added to anomaly decision scores when
	// present, reproducing the scoring convention of older estimator
	// versions. Absent key means no correction.
	KeyScoreShift = "score_shift"

	// KeyScoreOffset holds the scalar that separates score_samples from
	// decision_function. Required whenever ScoreSamples is called.
	KeyScoreOffset = "score_offset"
)

// ExtraConfig is an opaque key-value mapping carrying cross-cutting metadata
// produced by the conversion pipeline. It is copied at container construction
// and looked up by key at prediction time, never mutated.
type ExtraConfig map[string]any

func (c ExtraConfig) clone() ExtraConfig {
	if c == nil {
		return nil
	}

	return maps.Clone(c)
}

// lookupFloat returns the numeric value under key, if present.
func (c ExtraConfig) lookupFloat(key string) (float64, bool) {
	v, ok := c[key]
	if !ok {
		return 0, false
	}

	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

// requireFloat returns the numeric value under key or fails with
// ErrMissingConfigKey. Used by accessors that have no "if present" guard.
func (c ExtraConfig) requireFloat(key string) (float64, error) {
	v, ok := c.lookupFloat(key)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMissingConfigKey, key)
	}

	return v, nil
}

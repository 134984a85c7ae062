// Package container assembles one model artifact, one execution backend and
// one task mode into a single prediction surface mirroring the familiar
// estimator API: Transform, Predict, PredictProba, DecisionFunction and
// ScoreSamples, depending on the task mode.
//
// Variants are distinct types composed of a backend value, so the set of
// legal operations for a task mode is fixed at compile time for direct
// callers; the service layer rejects the rest dynamically. Construction
// invariants (declared output counts) fail eagerly, never on first call.
package container

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/ekisa-team/tensorbridge/internal/adapter"
	"github.com/ekisa-team/tensorbridge/internal/backend"
	"github.com/ekisa-team/tensorbridge/internal/tensor"
)

// TaskMode is the semantic role of a contained model. It determines the legal
// operations and how raw backend outputs are interpreted. Regression and
// anomaly detection are distinct values of one enumeration: a container is
// never both.
type TaskMode string

const (
	TaskTransformer     TaskMode = "transformer"
	TaskRegressor       TaskMode = "regressor"
	TaskClassifier      TaskMode = "classifier"
	TaskAnomalyDetector TaskMode = "anomaly_detector"
)

// ParseTaskMode maps a configuration string to a TaskMode.
func ParseTaskMode(s string) (TaskMode, error) {
	switch TaskMode(s) {
	case TaskTransformer, TaskRegressor, TaskClassifier, TaskAnomalyDetector:
		return TaskMode(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTaskMode, s)
	}
}

// Container is the common surface of every task-mode variant, used by the
// registry and service layers. Operation methods live on the concrete types.
type Container interface {
	// Mode returns the container's task mode.
	Mode() TaskMode

	// Backend returns the wrapped execution backend.
	Backend() backend.Backend

	// Close releases the backend session.
	Close() error
}

// base carries the state shared by all variants: the backend, the opaque
// extra configuration, and the batch size from the resource configuration.
// All fields are fixed at construction.
type base struct {
	backend backend.Backend
	extra   ExtraConfig
	batch   int
}

func newBase(b backend.Backend, res backend.ResourceConfig, extra ExtraConfig) base {
	return base{
		backend: b,
		extra:   extra.clone(),
		batch:   res.BatchSize,
	}
}

// Backend returns the wrapped execution backend.
func (c *base) Backend() backend.Backend {
	return c.backend
}

// Close releases the backend session.
func (c *base) Close() error {
	return c.backend.Close()
}

// run is the body shared by every operation: input adaptation, backend
// execution (batched when configured), raw outputs back to the caller's
// post-processing.
func (c *base) run(ctx context.Context, raw []any) ([]*mat.Dense, error) {
	in, err := c.adapt(raw)
	if err != nil {
		return nil, err
	}

	if c.batch > 0 {
		if rows, ok := batchableRows(in); ok && rows > c.batch {
			return c.runBatched(ctx, in, rows)
		}
	}

	return c.backend.Run(ctx, in)
}

// adapt resolves the backend-specific input form once at dispatch time.
func (c *base) adapt(raw []any) (backend.Inputs, error) {
	switch c.backend.Kind() {
	case backend.KindInProcess:
		device := tensor.DeviceCPU
		if d, ok := c.backend.(interface{ Device() tensor.Device }); ok {
			device = d.Device()
		}

		ordered, err := adapter.ForInProcess(device, raw...)
		if err != nil {
			return backend.Inputs{}, err
		}
		return backend.Inputs{Ordered: ordered}, nil

	case backend.KindPortable:
		named, err := adapter.ForPortable(c.backend.InputNames(), raw...)
		if err != nil {
			return backend.Inputs{}, err
		}
		return backend.Inputs{Named: named}, nil

	default:
		return backend.Inputs{}, fmt.Errorf("%w: %q", backend.ErrUnknownKind, c.backend.Kind())
	}
}

// runBatched scores the input in row partitions of the configured batch size
// and stacks the per-partition outputs back together in order.
func (c *base) runBatched(ctx context.Context, in backend.Inputs, rows int) ([]*mat.Dense, error) {
	var stacked []*mat.Dense

	for from := 0; from < rows; from += c.batch {
		to := min(from+c.batch, rows)

		part, err := sliceInputs(in, from, to)
		if err != nil {
			return nil, err
		}

		outs, err := c.backend.Run(ctx, part)
		if err != nil {
			return nil, err
		}

		if stacked == nil {
			stacked = outs
			continue
		}
		if len(outs) != len(stacked) {
			return nil, fmt.Errorf("container: batch returned %d outputs, expected %d", len(outs), len(stacked))
		}
		for i := range stacked {
			stacked[i] = stackRows(stacked[i], outs[i])
		}
	}

	return stacked, nil
}

// batchableRows reports the shared leading dimension of the adapted inputs.
// Inputs with differing row counts (broadcast arguments) are scored in one
// call instead of being partitioned.
func batchableRows(in backend.Inputs) (int, bool) {
	rows := -1

	for _, t := range in.Ordered {
		if rows < 0 {
			rows = t.Rows()
		} else if t.Rows() != rows {
			return 0, false
		}
	}
	for _, m := range in.Named {
		r, _ := m.Dims()
		if rows < 0 {
			rows = r
		} else if r != rows {
			return 0, false
		}
	}

	if rows < 0 {
		return 0, false
	}
	return rows, true
}

func sliceInputs(in backend.Inputs, from, to int) (backend.Inputs, error) {
	var part backend.Inputs

	if in.Ordered != nil {
		part.Ordered = make([]*tensor.Tensor, len(in.Ordered))
		for i, t := range in.Ordered {
			s, err := t.SliceRows(from, to)
			if err != nil {
				return backend.Inputs{}, err
			}
			part.Ordered[i] = s
		}
	}

	if in.Named != nil {
		part.Named = make(map[string]*mat.Dense, len(in.Named))
		for name, m := range in.Named {
			_, cols := m.Dims()
			part.Named[name] = m.Slice(from, to, 0, cols).(*mat.Dense)
		}
	}

	return part, nil
}

func stackRows(top, bottom *mat.Dense) *mat.Dense {
	tr, tc := top.Dims()
	br, _ := bottom.Dims()

	out := mat.NewDense(tr+br, tc, nil)
	for i := 0; i < tr; i++ {
		out.SetRow(i, top.RawRowView(i))
	}
	for i := 0; i < br; i++ {
		out.SetRow(tr+i, bottom.RawRowView(i))
	}

	return out
}

// requireOutputs enforces a task mode's declared-output invariant at
// construction time.
func requireOutputs(b backend.Backend, mode TaskMode, want int) error {
	if got := len(b.OutputNames()); got != want {
		return fmt.Errorf("%w: %s requires exactly %d declared outputs, got %d",
			ErrOutputCount, mode, want, got)
	}

	return nil
}

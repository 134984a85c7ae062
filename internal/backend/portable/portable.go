// Package portable is the portable standalone-graph backend. Construction
// parses a serialized graph description once into a long-lived engine session
// and captures the session's declared input and output names; every call
// after that is a plain named-inputs run.
package portable

import (
	"context"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/ekisa-team/tensorbridge/internal/backend"
)

// Session is one parsed, executable portable graph. Sessions return arrays
// that are already host-resident.
type Session interface {
	// InputNames returns the graph's declared input names, in order.
	InputNames() []string

	// OutputNames returns the graph's declared output names, in order.
	OutputNames() []string

	// Run executes the graph on inputs keyed by declared input name and
	// returns one array per declared output, in declared order.
	Run(ctx context.Context, inputs map[string]*mat.Dense) ([]*mat.Dense, error)

	// Close releases the session.
	Close() error
}

// Backend wraps an engine session behind the backend.Backend capability.
type Backend struct {
	session Session
	inputs  []string
	outputs []string
}

// New parses the serialized artifact into a session with the configured
// execution resources. It fails with backend.ErrBackendUnavailable when no
// portable inference engine is registered in the process.
func New(artifact []byte, res backend.ResourceConfig) (*Backend, error) {
	e, ok := registeredEngine()
	if !ok {
		return nil, fmt.Errorf("portable: %w", backend.ErrBackendUnavailable)
	}

	session, err := e.NewSession(artifact, res.SessionOptions())
	if err != nil {
		return nil, fmt.Errorf("portable: %s failed to parse artifact: %w", e.Name(), err)
	}

	return &Backend{
		session: session,
		inputs:  slices.Clone(session.InputNames()),
		outputs: slices.Clone(session.OutputNames()),
	}, nil
}

// Kind returns the backend identifier.
func (b *Backend) Kind() backend.Kind {
	return backend.KindPortable
}

// InputNames returns the session's declared input names.
func (b *Backend) InputNames() []string {
	return slices.Clone(b.inputs)
}

// OutputNames returns the session's declared output names.
func (b *Backend) OutputNames() []string {
	return slices.Clone(b.outputs)
}

// Run hands the named input set to the session. Outputs come back
// host-resident already; no transfer is needed.
func (b *Backend) Run(ctx context.Context, in backend.Inputs) ([]*mat.Dense, error) {
	outs, err := b.session.Run(ctx, in.Named)
	if err != nil {
		return nil, fmt.Errorf("portable: session run failed: %w", err)
	}

	return outs, nil
}

// Close releases the underlying session.
func (b *Backend) Close() error {
	return b.session.Close()
}

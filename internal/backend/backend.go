// Package backend defines the execution-backend capability shared by every
// container: a single Run primitive over an already-converted model artifact,
// plus the resource configuration applied to a session before first use.
package backend

import (
	"context"

	"gonum.org/v1/gonum/mat"

	"github.com/ekisa-team/tensorbridge/internal/tensor"
)

// Kind identifies a concrete execution backend.
type Kind string

const (
	// KindInProcess executes an in-process computation graph directly.
	KindInProcess Kind = "inprocess"

	// KindPortable executes a serialized portable graph through a standalone
	// inference engine session.
	KindPortable Kind = "portable"
)

// Inputs is the adapted per-call input set. Exactly one of the two forms is
// populated, matching the backend kind: the in-process backend consumes
// ordered tensor arguments, the portable backend consumes inputs keyed by its
// session's declared input names.
type Inputs struct {
	Ordered []*tensor.Tensor
	Named   map[string]*mat.Dense
}

// Backend is a concrete execution engine wrapping one model artifact.
//
// Run executes the artifact against adapted inputs and returns one
// host-resident array per declared output, in declared output order.
// Backends perform no input validation beyond what their engine enforces;
// malformed tensors are rejected by the engine itself.
type Backend interface {
	// Kind returns the backend identifier.
	Kind() Kind

	// InputNames returns the artifact's declared input names, in order.
	InputNames() []string

	// OutputNames returns the artifact's declared output names, in order.
	OutputNames() []string

	// Run executes the wrapped artifact.
	Run(ctx context.Context, in Inputs) ([]*mat.Dense, error)

	// Close releases the backend's session resources.
	Close() error
}

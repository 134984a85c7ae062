package backend

import "errors"

var (
	// ErrBackendUnavailable means the required inference engine is absent from
	// the environment. Fatal at container construction, never recoverable at
	// call time.
	ErrBackendUnavailable = errors.New("backend: required inference engine is not available")

	// ErrUnknownKind means a backend kind outside the supported enumeration.
	ErrUnknownKind = errors.New("backend: unknown backend kind")
)

package adapter

import "errors"

var (
	// ErrUnsupportedInputType means a positional input is neither a native
	// array nor the backend's native tensor type. Reported immediately with
	// the offending index and type, never retried.
	ErrUnsupportedInputType = errors.New("adapter: unsupported input type")

	// ErrInputArityMismatch means the input count does not equal the
	// backend's declared input count after unwrapping.
	ErrInputArityMismatch = errors.New("adapter: input count does not match declared inputs")
)

package model

import "errors"

// Error definitions for the model package.
var (
	ErrNotFound = errors.New("container not found in registry")
)

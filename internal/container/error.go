package container

import "errors"

var (
	// ErrOutputCount means the backend's declared output count violates the
	// task mode's construction invariant.
	ErrOutputCount = errors.New("container: backend output count violates task-mode contract")

	// ErrMissingConfigKey means a required extra-configuration key is absent.
	ErrMissingConfigKey = errors.New("container: required extra config key is missing")

	// ErrUnknownTaskMode means a task mode outside the supported enumeration.
	ErrUnknownTaskMode = errors.New("container: unknown task mode")
)

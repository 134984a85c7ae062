// Package env resolves the runtime environment the process runs in.
package env

import (
	"os"
	"strings"

	"github.com/ekisa-team/tensorbridge/internal/envvar"
)

// Environment is the runtime environment of the process.
type Environment string

const (
	// Development is the default environment.
	Development Environment = "development"

	// Production enables production logging defaults.
	Production Environment = "production"
)

// FromEnv resolves the environment from TENSORBRIDGE_ENV.
// Unrecognized or empty values fall back to Development.
func FromEnv() Environment {
	switch strings.ToLower(os.Getenv(envvar.TensorbridgeEnv)) {
	case "production", "prod":
		return Production
	default:
		return Development
	}
}

package model

import (
	"time"

	"github.com/ekisa-team/tensorbridge/internal/config"
	"github.com/ekisa-team/tensorbridge/internal/container"
)

// Status is the current lifecycle status of a container instance.
type Status string

const (
	// StatusUnloaded indicates that the container has not been built yet.
	StatusUnloaded Status = "unloaded"

	// StatusLoaded indicates that the container is built and serving.
	StatusLoaded Status = "loaded"

	// StatusFailed indicates that building the container failed.
	StatusFailed Status = "failed"
)

// Instance represents one configured container and its lifecycle state.
type Instance struct {
	Config    *config.ContainerConfig `json:"config"`
	LoadedAt  *time.Time              `json:"loaded_at,omitempty"`
	ID        string                  `json:"id"`
	Container container.Container     `json:"-"`
	Status    Status                  `json:"status"`
	Error     string                  `json:"error,omitempty"`
}

// NewInstance creates a new container instance record.
func NewInstance(cfg *config.ContainerConfig, id string) *Instance {
	return &Instance{
		ID:     id,
		Config: cfg,
		Status: StatusUnloaded,
	}
}

// SetContainer attaches the built container and marks the instance loaded.
func (i *Instance) SetContainer(c container.Container) {
	i.Container = c
	i.Status = StatusLoaded
	now := time.Now()
	i.LoadedAt = &now
}

// SetError records a build failure.
func (i *Instance) SetError(err error) {
	i.Status = StatusFailed
	i.Error = err.Error()
}

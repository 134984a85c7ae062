package model

import (
	"sync"
)

// Registry stores loaded container instances.
type Registry struct {
	instances map[string]*Instance
	mu        sync.RWMutex
}

// NewRegistry creates a new container registry.
func NewRegistry() *Registry {
	return &Registry{
		instances: make(map[string]*Instance),
	}
}

// Set adds a container instance to the registry.
func (r *Registry) Set(instance *Instance) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.instances[instance.ID] = instance
}

// Get returns the container instance with the given ID.
func (r *Registry) Get(id string) (*Instance, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	instance, ok := r.instances[id]
	return instance, ok
}

// List returns all container instances.
func (r *Registry) List() []*Instance {
	r.mu.RLock()
	defer r.mu.RUnlock()

	instances := make([]*Instance, 0, len(r.instances))
	for _, instance := range r.instances {
		instances = append(instances, instance)
	}

	return instances
}

// Delete removes the container instance with the given ID, closing its
// container if one was built.
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	instance, ok := r.instances[id]
	if !ok {
		return nil
	}

	delete(r.instances, id)

	if instance.Container != nil {
		return instance.Container.Close()
	}
	return nil
}

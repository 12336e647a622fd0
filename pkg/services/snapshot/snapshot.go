// Package snapshot is the boundary to the external collaborators that
// discover resources and collect metrics. By the time a Source returns, all
// blocking collection has finished; the engine itself never performs I/O.
package snapshot

import (
	"context"
	"fmt"
	"sync"

	"github.com/de-tools/rightsize/pkg/models/domain"
	"golang.org/x/exp/maps"
)

// Source supplies one complete snapshot of resource configurations and their
// trailing utilization.
type Source interface {
	Name() string
	Resources(ctx context.Context) ([]domain.ResourceUsage, error)
}

// SourceFactory builds a Source from a location (file path, endpoint, ...).
type SourceFactory func(location string) (Source, error)

// Registry manages named snapshot source factories.
type Registry interface {
	Register(name string, factory SourceFactory) error
	Create(name, location string) (Source, error)
	ListSources() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]SourceFactory
}

func NewRegistry(factories map[string]SourceFactory) Registry {
	if factories == nil {
		factories = make(map[string]SourceFactory)
	}
	return &registry{factories: factories}
}

func (r *registry) Register(name string, factory SourceFactory) error {
	if name == "" {
		return fmt.Errorf("source name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("source %q is already registered", name)
	}
	r.factories[name] = factory
	return nil
}

func (r *registry) Create(name, location string) (Source, error) {
	r.mu.RLock()
	factory, exists := r.factories[name]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("source %q is not registered", name)
	}
	return factory(location)
}

func (r *registry) ListSources() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return maps.Keys(r.factories)
}

package config

import (
	"sort"
	"sync"

	"github.com/kbukum/pipekit/errors"
	"github.com/kbukum/pipekit/pipeline"
)

// SourceFactory builds a source from its declared parameters.
type SourceFactory[T any] func(params map[string]interface{}) (pipeline.Source[T], error)

// FilterFactory builds a filter from its declared parameters.
type FilterFactory[T any] func(params map[string]interface{}) (pipeline.Filter[T], error)

// SinkFactory builds a sink from its declared parameters.
type SinkFactory[T any] func(params map[string]interface{}) (pipeline.Sink[T], error)

// Registry provides named component lookup for config-driven assembly.
type Registry[T any] struct {
	mu      sync.RWMutex
	sources map[string]SourceFactory[T]
	filters map[string]FilterFactory[T]
	sinks   map[string]SinkFactory[T]
}

// NewRegistry creates a new empty Registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		sources: make(map[string]SourceFactory[T]),
		filters: make(map[string]FilterFactory[T]),
		sinks:   make(map[string]SinkFactory[T]),
	}
}

// RegisterSource adds a source factory under name.
func (r *Registry[T]) RegisterSource(name string, factory SourceFactory[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources[name] = factory
}

// RegisterFilter adds a filter factory under name.
func (r *Registry[T]) RegisterFilter(name string, factory FilterFactory[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filters[name] = factory
}

// RegisterSink adds a sink factory under name.
func (r *Registry[T]) RegisterSink(name string, factory SinkFactory[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sinks[name] = factory
}

func (r *Registry[T]) source(name string, params map[string]interface{}) (pipeline.Source[T], error) {
	r.mu.RLock()
	factory, ok := r.sources[name]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.NotFound("source", name)
	}
	return factory(params)
}

func (r *Registry[T]) filter(name string, params map[string]interface{}) (pipeline.Filter[T], error) {
	r.mu.RLock()
	factory, ok := r.filters[name]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.NotFound("filter", name)
	}
	return factory(params)
}

func (r *Registry[T]) sink(name string, params map[string]interface{}) (pipeline.Sink[T], error) {
	r.mu.RLock()
	factory, ok := r.sinks[name]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.NotFound("sink", name)
	}
	return factory(params)
}

// Sources returns sorted names of all registered source factories.
func (r *Registry[T]) Sources() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.sources)
}

// Filters returns sorted names of all registered filter factories.
func (r *Registry[T]) Filters() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.filters)
}

// Sinks returns sorted names of all registered sink factories.
func (r *Registry[T]) Sinks() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.sinks)
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

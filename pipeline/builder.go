package pipeline

import "github.com/kbukum/pipekit/errors"

// Builder accumulates pipeline configuration and validates it on Build.
// The zero value is not usable; create one with New.
type Builder[T any] struct {
	source   Source[T]
	filters  []Filter[T]
	sinks    []Sink[T]
	consumed bool
}

// New returns an empty builder: no source, no filters, no sinks.
func New[T any]() *Builder[T] {
	return &Builder[T]{}
}

// Source sets the pipeline's source, silently replacing any previously
// set one.
func (b *Builder[T]) Source(s Source[T]) *Builder[T] {
	b.source = s
	return b
}

// AddFilter appends a filter. Evaluation order is append order.
func (b *Builder[T]) AddFilter(f Filter[T]) *Builder[T] {
	b.filters = append(b.filters, f)
	return b
}

// AddSink appends a sink. Invocation order is append order.
func (b *Builder[T]) AddSink(s Sink[T]) *Builder[T] {
	b.sinks = append(b.sinks, s)
	return b
}

// Build consumes the builder and returns a runnable pipeline.
//
// It fails with a MISSING_SOURCE configuration error when no source was
// ever set, and with BUILDER_CONSUMED when called a second time.
// Mutating the builder after Build has no effect on the built pipeline.
func (b *Builder[T]) Build() (*Pipeline[T], error) {
	if b.consumed {
		return nil, errors.BuilderConsumed()
	}
	b.consumed = true

	if b.source == nil {
		return nil, errors.MissingSource()
	}

	// Own copies of the sequences so the assembly stays immutable.
	filters := make([]Filter[T], len(b.filters))
	copy(filters, b.filters)
	sinks := make([]Sink[T], len(b.sinks))
	copy(sinks, b.sinks)

	return &Pipeline[T]{
		source:  b.source,
		filters: filters,
		sinks:   sinks,
	}, nil
}

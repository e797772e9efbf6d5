package pipeline

import (
	"context"
	"fmt"

	"github.com/kbukum/pipekit/errors"
)

// Source yields the items a pipeline processes, one per call.
type Source[T any] interface {
	// Next returns the next item. Returns (zero, false) when exhausted.
	// Exhaustion is terminal: a well-behaved source never yields again
	// after reporting it. Sources cannot fail; an implementation that
	// can no longer continue must report exhaustion.
	Next(ctx context.Context) (T, bool)
}

// Filter decides whether an item continues through the pipeline.
type Filter[T any] interface {
	// Keep returns true to keep the item, false to drop it. Keep must
	// be total over any item the source can yield — a filter cannot
	// fail; fallible logic must resolve internally and drop on the
	// failure path.
	Keep(ctx context.Context, item T) bool
}

// Sink durably records items that survive filtering.
type Sink[T any] interface {
	// Save records the item. Any error is fatal to the whole run.
	Save(ctx context.Context, item T) error
}

// SourceFunc adapts an ordinary function to the Source interface.
type SourceFunc[T any] func(ctx context.Context) (T, bool)

// Next implements Source.
func (f SourceFunc[T]) Next(ctx context.Context) (T, bool) { return f(ctx) }

// FilterFunc adapts an ordinary predicate to the Filter interface.
type FilterFunc[T any] func(ctx context.Context, item T) bool

// Keep implements Filter.
func (f FilterFunc[T]) Keep(ctx context.Context, item T) bool { return f(ctx, item) }

// SinkFunc adapts an ordinary function to the Sink interface.
type SinkFunc[T any] func(ctx context.Context, item T) error

// Save implements Sink.
func (f SinkFunc[T]) Save(ctx context.Context, item T) error { return f(ctx, item) }

// Namer is optionally implemented by components that expose a stable
// name for logs, metrics, and error details.
type Namer interface {
	Name() string
}

// componentName resolves a component's display name, falling back when
// the component does not implement Namer.
func componentName(v any, fallback string) string {
	if n, ok := v.(Namer); ok && n.Name() != "" {
		return n.Name()
	}
	return fallback
}

// Pipeline is a validated, immutable composition of one source, ordered
// filters, and ordered sinks. Build one with a Builder.
type Pipeline[T any] struct {
	source   Source[T]
	filters  []Filter[T]
	sinks    []Sink[T]
	consumed bool
}

// Run drives the pipeline to completion or first failure.
//
// Per iteration: pull one item; evaluate filters in configured order,
// short-circuiting on the first drop; hand surviving items to every
// sink in configured order. The first sink error aborts the run
// immediately — no further sinks run for that item, no further items
// are pulled — and is returned wrapped with the cause preserved
// (reachable via errors.Is / errors.As). Source exhaustion returns nil.
//
// Run is one-shot: a second call is rejected with a PIPELINE_CONSUMED
// error. There is no retry and no per-item success report.
func (p *Pipeline[T]) Run(ctx context.Context) error {
	if p.consumed {
		return errors.PipelineConsumed()
	}
	p.consumed = true

	for {
		item, ok := p.source.Next(ctx)
		if !ok {
			return nil
		}

		if !p.keep(ctx, item) {
			continue
		}

		for i, sink := range p.sinks {
			if err := sink.Save(ctx, item); err != nil {
				name := componentName(sink, fmt.Sprintf("sink[%d]", i))
				return errors.SinkFailure(name, err)
			}
		}
	}
}

// keep reports whether every filter keeps the item.
func (p *Pipeline[T]) keep(ctx context.Context, item T) bool {
	for _, f := range p.filters {
		if !f.Keep(ctx, item) {
			return false
		}
	}
	return true
}
